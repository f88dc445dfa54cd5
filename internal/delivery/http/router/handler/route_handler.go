package handler

import (
	"log/slog"
	"net/http"

	"trailforge/internal/delivery/http/response"
	"trailforge/internal/domain/service"
	"trailforge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Share   service.ShareService
	Logger  *slog.Logger
}

// RouteHandler holds dependencies for route-related handlers
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	share   service.ShareService
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		share:   params.Share,
		logger:  params.Logger,
	}
}

// ResolveQRRequest represents the request body for resolving a shared route QR
type ResolveQRRequest struct {
	QRData string `json:"qr_data" validate:"required"`
}

// CreateRoute handles saving a new route
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	var req usecase.CreateRouteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	route, err := h.routeUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, route, "Route created successfully")
}

// UpdateRoute handles a partial edit of an existing route
func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	var req usecase.UpdateRouteInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	route, err := h.routeUC.Update(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route, "Route updated successfully")
}

// DeleteRoute handles removing a route
func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	if err := h.routeUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Route deleted"}, "Route deleted successfully")
}

// ListRoutes handles listing the route collection
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.routeUC.List(), "Routes retrieved successfully")
}

// GetRoute handles retrieving one route by id
func (h *RouteHandler) GetRoute(c echo.Context) error {
	route, err := h.routeUC.Get(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route, "Route retrieved successfully")
}

// RefreshRoutes handles reloading the collection from the remote service
func (h *RouteHandler) RefreshRoutes(c echo.Context) error {
	if err := h.routeUC.Refresh(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, h.routeUC.List(), "Routes refreshed successfully")
}

// SelectRoute handles marking a route as selected
func (h *RouteHandler) SelectRoute(c echo.Context) error {
	if err := h.routeUC.Select(c.Param("id")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"selected_id": c.Param("id")}, "Route selected successfully")
}

// SelectedRoute handles retrieving the currently selected route
func (h *RouteHandler) SelectedRoute(c echo.Context) error {
	route, ok := h.routeUC.Selected()
	if !ok {
		return response.NotFound(c, "NO_SELECTION", "No route is selected")
	}

	return response.Success(c, http.StatusOK, route, "Selected route retrieved successfully")
}

// GenerateRouteQR handles generating a share QR code for a route
func (h *RouteHandler) GenerateRouteQR(c echo.Context) error {
	route, err := h.routeUC.Get(c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	qrCode, err := h.share.GenerateRouteQR(route)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Type", "image/png")
	c.Response().Header().Set("Content-Disposition", "inline; filename=route-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}

// ResolveRouteQR handles resolving a scanned share QR back to a route
func (h *RouteHandler) ResolveRouteQR(c echo.Context) error {
	var req ResolveQRRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid QR input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	routeID, err := h.share.ParseRouteQR(req.QRData)
	if err != nil {
		return response.BadRequest(c, "INVALID_QR", err.Error())
	}

	// A scanned QR may reference a route this client has not loaded yet.
	route, err := h.routeUC.Resolve(c.Request().Context(), routeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, route, "Route resolved successfully")
}

// Regions handles listing the known regions
func (h *RouteHandler) Regions(c echo.Context) error {
	regions, err := h.routeUC.Regions(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, regions, "Regions retrieved successfully")
}

// TrekNames handles listing the known trek names
func (h *RouteHandler) TrekNames(c echo.Context) error {
	names, err := h.routeUC.TrekNames(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, names, "Trek names retrieved successfully")
}

// DifficultyLevels handles listing the known difficulty levels
func (h *RouteHandler) DifficultyLevels(c echo.Context) error {
	levels, err := h.routeUC.DifficultyLevels(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, levels, "Difficulty levels retrieved successfully")
}

// HealthCheck responds with service liveness
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
