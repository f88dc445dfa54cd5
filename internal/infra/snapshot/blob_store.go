// Package snapshot persists locally-owned routes to a blob bucket so they
// survive process restarts. The bucket URL decides the backend; file://
// paths serve the common on-device case.
package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"

	"trailforge/config"
	"trailforge/internal/domain/entity"
	"trailforge/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	"gocloud.dev/gcerrors"
)

const snapshotKey = "local-routes.json"

type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// StoreParams holds dependencies for SnapshotStore, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// noopStore is used when no bucket is configured; local routes then live
// only for the lifetime of the process.
type noopStore struct{}

func (noopStore) SaveLocalRoutes(_ context.Context, _ []*entity.Route) error { return nil }

func (noopStore) LoadLocalRoutes(_ context.Context) ([]*entity.Route, error) { return nil, nil }

// NewSnapshotStore opens the configured bucket and registers its shutdown.
func NewSnapshotStore(params StoreParams) (service.SnapshotStore, error) {
	cfg := params.Config.Snapshot
	if cfg == nil || cfg.BucketURL == "" {
		params.Logger.Info("Snapshot bucket not configured, local routes will not survive restarts")

		return noopStore{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open snapshot bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStore{bucket: bucket, logger: params.Logger}, nil
}

// SaveLocalRoutes overwrites the snapshot with the given routes.
func (s *blobStore) SaveLocalRoutes(ctx context.Context, routes []*entity.Route) error {
	data, err := json.Marshal(routes)
	if err != nil {
		return errors.Wrap(err, "encode local routes")
	}

	if err := s.bucket.WriteAll(ctx, snapshotKey, data, nil); err != nil {
		return errors.Wrap(err, "write local routes snapshot")
	}

	s.logger.Debug("Local routes snapshot saved", slog.Int("count", len(routes)))

	return nil
}

// LoadLocalRoutes reads the snapshot. A missing snapshot is not an error;
// it just means no local routes have been saved yet.
func (s *blobStore) LoadLocalRoutes(ctx context.Context) ([]*entity.Route, error) {
	data, err := s.bucket.ReadAll(ctx, snapshotKey)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrap(err, "read local routes snapshot")
	}

	var routes []*entity.Route
	if err := json.Unmarshal(data, &routes); err != nil {
		return nil, errors.Wrap(err, "decode local routes snapshot")
	}

	return routes, nil
}
