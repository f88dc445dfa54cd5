package usecase

import (
	"context"

	"trailforge/internal/domain/entity"
)

// DraftView is a read snapshot of a draft session for rendering.
type DraftView struct {
	ID              string            `json:"id"`
	RouteID         string            `json:"route_id,omitempty"` // set in edit mode
	Waypoints       []entity.Waypoint `json:"waypoints"`
	DistanceMeters  float64           `json:"distance_meters"`
	DurationSeconds float64           `json:"duration_seconds"`
	FocusedIndex    *int              `json:"focused_index,omitempty"`
}

// FocusView is the focused-point projection the map collaborator pans to.
type FocusView struct {
	Index int               `json:"index"`
	Point entity.Coordinate `json:"point"`
}

// BoundView is the bounding box the map collaborator fits to, as
// south-west / north-east corners.
type BoundView struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// DraftUsecase manages draft sessions: each session wraps one edit buffer,
// created empty for draw mode or seeded from an existing route for edit
// mode. Point mutations only ever touch the buffer; the route collection
// changes on commit alone.
type DraftUsecase interface {
	// StartDraw opens an empty drafting session and returns its id.
	StartDraw() string

	// StartEdit opens a session seeded from the stored route's geometry.
	StartEdit(routeID string) (string, error)

	// Discard drops the session and its buffer.
	Discard(draftID string) error

	// View returns a render snapshot of the session.
	View(draftID string) (*DraftView, error)

	// Point mutations.
	AppendPoint(draftID string, c entity.Coordinate) error
	InsertPoint(draftID string, index int, c entity.Coordinate) error
	InsertAfter(draftID string, index int) (entity.Coordinate, error)
	UpdatePoint(draftID string, index int, c entity.Coordinate) error
	DeletePoint(draftID string, index int) error
	MovePoint(draftID string, from, to int) error
	UndoLast(draftID string) error
	ClearPoints(draftID string) error

	// Focus drives map pan/zoom toward a single point.
	Focus(draftID string, index int) error
	Focused(draftID string) (*FocusView, error)
	Bound(draftID string) (*BoundView, error)

	// Commit persists a draw-mode session as a new route via the
	// persistence coordinator, then discards the session.
	Commit(ctx context.Context, draftID string, input *CreateRouteInput) (*entity.Route, error)

	// CommitUpdate persists an edit-mode session against its source route,
	// then discards the session.
	CommitUpdate(ctx context.Context, draftID string, input *UpdateRouteInput) (*entity.Route, error)
}
