package service

import (
	"context"

	"trailforge/internal/domain/entity"
)

// SnapshotStore persists the device-local tier of the route collection so
// local-only routes survive restarts. Remote routes are never snapshotted;
// the remote service owns them.
type SnapshotStore interface {
	SaveLocalRoutes(ctx context.Context, routes []*entity.Route) error
	LoadLocalRoutes(ctx context.Context) ([]*entity.Route, error)
}
