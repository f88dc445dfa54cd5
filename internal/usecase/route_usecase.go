// Package usecase declares the application use-case interfaces and their
// input/output shapes.
package usecase

import (
	"context"

	"trailforge/internal/domain/entity"
)

// CreateRouteInput carries the metadata and geometry for a new route.
// Validation tags mirror the save-form requirements; geometry must hold at
// least two points.
type CreateRouteInput struct {
	Name         string              `json:"name" validate:"required,min=3"`
	Region       string              `json:"region" validate:"required"`
	Difficulty   string              `json:"difficulty" validate:"required"`
	MinAltitude  int                 `json:"min_altitude" validate:"min=0"`
	MaxAltitude  int                 `json:"max_altitude" validate:"required,gt=0"`
	Description  string              `json:"description,omitempty"`
	TrekName     string              `json:"trek_name,omitempty"`
	DurationDays int                 `json:"duration_days,omitempty" validate:"min=0"`
	Geometry     []entity.Coordinate `json:"geometry" validate:"required,min=2"`

	// DistanceOverrideMeters replaces the computed geodesic distance when
	// the caller supplies a measured value. Duration is still derived from
	// the effective distance.
	DistanceOverrideMeters *float64 `json:"distance_override_meters,omitempty"`
}

// UpdateRouteInput carries a partial route edit. Absent (nil) fields leave
// the existing value unchanged; a non-nil Geometry replaces the whole
// geometry and triggers metric recomputation.
type UpdateRouteInput struct {
	Name         *string             `json:"name,omitempty" validate:"omitempty,min=3"`
	Region       *string             `json:"region,omitempty"`
	Difficulty   *string             `json:"difficulty,omitempty"`
	MinAltitude  *int                `json:"min_altitude,omitempty" validate:"omitempty,min=0"`
	MaxAltitude  *int                `json:"max_altitude,omitempty" validate:"omitempty,gt=0"`
	Description  *string             `json:"description,omitempty"`
	TrekName     *string             `json:"trek_name,omitempty"`
	DurationDays *int                `json:"duration_days,omitempty" validate:"omitempty,min=0"`
	Geometry     []entity.Coordinate `json:"geometry,omitempty" validate:"omitempty,min=2"`
}

// RouteUsecase coordinates route persistence: it owns the collection,
// decides between the local and remote tiers per operation, and classifies
// remote failures. All failure modes are absorbed here and surfaced as
// domain AppErrors; callers never see raw transport errors.
type RouteUsecase interface {
	// Create validates the input and persists a new route, remotely when
	// authenticated, locally otherwise.
	Create(ctx context.Context, input *CreateRouteInput) (*entity.Route, error)

	// Update applies a partial edit to the route with the given id.
	// Local-id routes are edited in place regardless of authentication.
	Update(ctx context.Context, id string, input *UpdateRouteInput) (*entity.Route, error)

	// Delete removes the route with the given id, honoring the same
	// local-id bypass as Update.
	Delete(ctx context.Context, id string) error

	// Refresh replaces the collection from the remote list plus the local
	// tier.
	Refresh(ctx context.Context) error

	// RestoreLocal loads the local-route snapshot into the collection.
	RestoreLocal(ctx context.Context) error

	// Resolve returns the route with the given id, fetching it from the
	// remote service when it is not in the collection. Resolved remote
	// routes are added to the collection.
	Resolve(ctx context.Context, id string) (*entity.Route, error)

	// Collection reads.
	List() []*entity.Route
	Get(id string) (*entity.Route, error)
	Select(id string) error
	Selected() (*entity.Route, bool)

	// Read-only metadata lookups for the surrounding forms.
	Regions(ctx context.Context) ([]string, error)
	TrekNames(ctx context.Context) ([]string, error)
	DifficultyLevels(ctx context.Context) ([]string, error)
}
