// Package repository declares the data-access ports the use cases depend on.
package repository

import (
	"context"
	"fmt"

	"trailforge/internal/domain/entity"
)

// RemoteError carries the structured outcome of a failed remote call, so
// the coordinator can classify it without unwinding transport exceptions.
type RemoteError struct {
	StatusCode int    // HTTP-like status, 0 when the transport itself failed
	Message    string // Response message or transport error text
}

// Error implements the error interface
func (e *RemoteError) Error() string {
	if e.StatusCode == 0 {
		return e.Message
	}

	return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
}

// RouteRepository is the remote route service port. Implementations return
// *RemoteError for every non-success response; they never panic on
// transport failures.
type RouteRepository interface {
	// CreateRoute persists a new route and returns the stored version with
	// its server-assigned id.
	CreateRoute(ctx context.Context, route *entity.Route) (*entity.Route, error)

	// UpdateRoute replaces geometry and metadata of an existing route.
	UpdateRoute(ctx context.Context, id string, route *entity.Route) (*entity.Route, error)

	// DeleteRoute removes the route with the given id.
	DeleteRoute(ctx context.Context, id string) error

	// ListRoutes returns all routes visible to the caller.
	ListRoutes(ctx context.Context) ([]*entity.Route, error)

	// FindRouteByID returns a single route.
	FindRouteByID(ctx context.Context, id string) (*entity.Route, error)

	// Read-only metadata lookups consumed by the surrounding forms.
	Regions(ctx context.Context) ([]string, error)
	TrekNames(ctx context.Context) ([]string, error)
	DifficultyLevels(ctx context.Context) ([]string, error)
}
