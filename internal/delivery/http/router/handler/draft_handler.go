package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"trailforge/internal/delivery/http/response"
	"trailforge/internal/domain/entity"
	"trailforge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DraftHandlerParams holds dependencies for DraftHandler, injected by Fx.
type DraftHandlerParams struct {
	fx.In

	DraftUC usecase.DraftUsecase
	Logger  *slog.Logger
}

// DraftHandler holds dependencies for draft-session handlers
type DraftHandler struct {
	draftUC usecase.DraftUsecase
	logger  *slog.Logger
}

// NewDraftHandler is the constructor for DraftHandler
func NewDraftHandler(params DraftHandlerParams) *DraftHandler {
	return &DraftHandler{
		draftUC: params.DraftUC,
		logger:  params.Logger,
	}
}

// PointRequest represents a single coordinate in a request body
type PointRequest struct {
	Lat float64 `json:"lat" validate:"min=-90,max=90"`
	Lng float64 `json:"lng" validate:"min=-180,max=180"`
}

// MovePointRequest represents the target index for a point move
type MovePointRequest struct {
	To int `json:"to" validate:"min=0"`
}

// StartEditRequest represents the source route for an edit session
type StartEditRequest struct {
	RouteID string `json:"route_id" validate:"required"`
}

// StartDraw opens an empty drafting session
func (h *DraftHandler) StartDraw(c echo.Context) error {
	draftID := h.draftUC.StartDraw()

	return response.Success(c, http.StatusCreated, map[string]string{"draft_id": draftID}, "Draft session started")
}

// StartEdit opens a session seeded from an existing route
func (h *DraftHandler) StartEdit(c echo.Context) error {
	var req StartEditRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid edit session input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	draftID, err := h.draftUC.StartEdit(req.RouteID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"draft_id": draftID}, "Edit session started")
}

// Discard drops a draft session
func (h *DraftHandler) Discard(c echo.Context) error {
	if err := h.draftUC.Discard(c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Draft discarded"}, "Draft discarded successfully")
}

// View returns a render snapshot of a draft session
func (h *DraftHandler) View(c echo.Context) error {
	view, err := h.draftUC.View(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Draft retrieved successfully")
}

// AppendPoint adds a point at the end of the draft geometry
func (h *DraftHandler) AppendPoint(c echo.Context) error {
	var req PointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point input")
	}

	if err := h.draftUC.AppendPoint(c.Param("id"), entity.Coordinate{Lat: req.Lat, Lng: req.Lng}); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.View(c)
}

// InsertPoint inserts a point at the given index
func (h *DraftHandler) InsertPoint(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid point index")
	}

	var req PointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point input")
	}

	if err := h.draftUC.InsertPoint(c.Param("id"), index, entity.Coordinate{Lat: req.Lat, Lng: req.Lng}); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.View(c)
}

// InsertAfter inserts a default-positioned point after the given index
func (h *DraftHandler) InsertAfter(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid point index")
	}

	point, err := h.draftUC.InsertAfter(c.Param("id"), index)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, point, "Point inserted successfully")
}

// UpdatePoint replaces the point at the given index
func (h *DraftHandler) UpdatePoint(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid point index")
	}

	var req PointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid point input")
	}

	if err := h.draftUC.UpdatePoint(c.Param("id"), index, entity.Coordinate{Lat: req.Lat, Lng: req.Lng}); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.View(c)
}

// DeletePoint removes the point at the given index
func (h *DraftHandler) DeletePoint(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid point index")
	}

	if err := h.draftUC.DeletePoint(c.Param("id"), index); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.View(c)
}

// MovePoint moves a point to a new index
func (h *DraftHandler) MovePoint(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid point index")
	}

	var req MovePointRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid move input")
	}

	if err := h.draftUC.MovePoint(c.Param("id"), index, req.To); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.View(c)
}

// UndoLast removes the most recently appended point
func (h *DraftHandler) UndoLast(c echo.Context) error {
	if err := h.draftUC.UndoLast(c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.View(c)
}

// ClearPoints empties the draft geometry
func (h *DraftHandler) ClearPoints(c echo.Context) error {
	if err := h.draftUC.ClearPoints(c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.View(c)
}

// Focus marks a point as focused for the map to pan to
func (h *DraftHandler) Focus(c echo.Context) error {
	index, err := pathIndex(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INDEX", "Invalid point index")
	}

	if err := h.draftUC.Focus(c.Param("id"), index); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.View(c)
}

// Focused returns the focused point, if any
func (h *DraftHandler) Focused(c echo.Context) error {
	focus, err := h.draftUC.Focused(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if focus == nil {
		return response.NotFound(c, "NO_FOCUS", "No point is focused")
	}

	return response.Success(c, http.StatusOK, focus, "Focused point retrieved successfully")
}

// Bound returns the bounding box of the draft geometry
func (h *DraftHandler) Bound(c echo.Context) error {
	bound, err := h.draftUC.Bound(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bound, "Bounding box retrieved successfully")
}

// Commit persists a draw-mode session as a new route
func (h *DraftHandler) Commit(c echo.Context) error {
	var req usecase.CreateRouteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	route, err := h.draftUC.Commit(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, route, "Route created successfully")
}

// CommitUpdate persists an edit-mode session against its source route
func (h *DraftHandler) CommitUpdate(c echo.Context) error {
	var req usecase.UpdateRouteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	route, err := h.draftUC.CommitUpdate(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route, "Route updated successfully")
}

func pathIndex(c echo.Context) (int, error) {
	return strconv.Atoi(c.Param("index"))
}
