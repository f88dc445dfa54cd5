// Package impl contains the use-case service implementations.
package impl

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"trailforge/config"
	"trailforge/internal/domain/entity"
	domainerrors "trailforge/internal/domain/errors"
	"trailforge/internal/domain/repository"
	"trailforge/internal/domain/service"
	"trailforge/internal/errors"
	"trailforge/internal/geo"
	"trailforge/internal/store"
	"trailforge/internal/usecase"

	"github.com/go-playground/validator/v10"
)

type routeService struct {
	// mu guards the collection. It is never held across a remote call, so
	// overlapping saves against the same id stay unserialized: the
	// last-resolved response wins, as in the original save policy.
	mu sync.Mutex

	collection   *store.Collection
	remote       repository.RouteRepository
	authGate     service.AuthGate
	notifier     service.Notifier
	publisher    service.EventPublisher
	snapshots    service.SnapshotStore
	validate     *validator.Validate
	requiredRole string
	logger       *slog.Logger
}

// NewRouteService creates the persistence coordinator. The auth gate,
// notifier, publisher and snapshot store are explicit dependencies so tests
// can inject deterministic collaborators.
func NewRouteService(
	collection *store.Collection,
	remote repository.RouteRepository,
	authGate service.AuthGate,
	notifier service.Notifier,
	publisher service.EventPublisher,
	snapshots service.SnapshotStore,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.RouteUsecase {
	requiredRole := ""
	if cfg.Auth != nil {
		requiredRole = cfg.Auth.RequiredRole
	}

	return &routeService{
		collection:   collection,
		remote:       remote,
		authGate:     authGate,
		notifier:     notifier,
		publisher:    publisher,
		snapshots:    snapshots,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		requiredRole: requiredRole,
		logger:       logger,
	}
}

// Create validates the input and persists a new route. Unauthenticated
// callers get a device-local route and no network call is ever made for
// them; authenticated callers go through the remote route service.
func (s *routeService) Create(ctx context.Context, input *usecase.CreateRouteInput) (*entity.Route, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, s.failValidation("Save failed", err)
	}

	route := buildRoute(input)

	if !s.authGate.IsAuthenticated() {
		route.ID = entity.NewLocalID()
		route.IsLocal = true

		s.mu.Lock()
		s.collection.Upsert(route)
		s.collection.Select(route.ID)
		s.mu.Unlock()

		s.persistLocalSnapshot(ctx)
		s.publishEvent(ctx, service.RouteEventCreated, route)
		s.notifier.Notify("Route saved locally", "Sign in to sync it with the server", service.SeverityInfo)

		return route, nil
	}

	if !s.hasRequiredRole() {
		return nil, s.failAuthRequired("Save failed")
	}

	created, err := s.remote.CreateRoute(ctx, route)
	if err != nil {
		return nil, s.failRemote("Save failed", err)
	}
	created.IsLocal = false

	s.mu.Lock()
	s.collection.Upsert(created)
	s.collection.Select(created.ID)
	s.mu.Unlock()

	s.publishEvent(ctx, service.RouteEventCreated, created)
	s.notifier.Notify("Route saved", created.Name, service.SeverityInfo)

	return created, nil
}

// Update applies a partial edit. Local-id routes are edited in place
// regardless of authentication state; remote routes require the auth gate
// to pass before any network call.
func (s *routeService) Update(ctx context.Context, id string, input *usecase.UpdateRouteInput) (*entity.Route, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, s.failValidation("Update failed", err)
	}

	if entity.IsLocalID(id) {
		return s.updateLocal(ctx, id, input)
	}

	if !s.authGate.IsAuthenticated() || !s.hasRequiredRole() {
		return nil, s.failAuthRequired("Update failed")
	}

	s.mu.Lock()
	existing, ok := s.collection.Get(id)
	s.mu.Unlock()
	if !ok {
		return nil, s.failNotFound("Update failed")
	}

	candidate := existing.Clone()
	applyRouteUpdates(candidate, input)

	updated, err := s.remote.UpdateRoute(ctx, id, candidate)
	if err != nil {
		return nil, s.failRemote("Update failed", err)
	}
	updated.IsLocal = false

	// Replacing the slot keeps the selection on the updated id.
	s.mu.Lock()
	s.collection.Upsert(updated)
	s.mu.Unlock()

	s.publishEvent(ctx, service.RouteEventUpdated, updated)
	s.notifier.Notify("Route updated", updated.Name, service.SeverityInfo)

	return updated, nil
}

// updateLocal edits a device-local route in place. Local routes have no
// remote failure surface; only validation can reject them.
func (s *routeService) updateLocal(ctx context.Context, id string, input *usecase.UpdateRouteInput) (*entity.Route, error) {
	s.mu.Lock()
	existing, ok := s.collection.Get(id)
	if !ok {
		s.mu.Unlock()

		return nil, s.failNotFound("Update failed")
	}

	updated := existing.Clone()
	applyRouteUpdates(updated, input)
	s.collection.Upsert(updated)
	s.mu.Unlock()

	s.persistLocalSnapshot(ctx)
	s.publishEvent(ctx, service.RouteEventUpdated, updated)
	s.notifier.Notify("Route updated locally", updated.Name, service.SeverityInfo)

	return updated, nil
}

// Delete removes a route, with the same local-id bypass as Update.
func (s *routeService) Delete(ctx context.Context, id string) error {
	if entity.IsLocalID(id) {
		s.mu.Lock()
		removed := s.collection.Remove(id)
		s.mu.Unlock()
		if !removed {
			return s.failNotFound("Delete failed")
		}

		s.persistLocalSnapshot(ctx)
		s.publishEvent(ctx, service.RouteEventDeleted, &entity.Route{ID: id, IsLocal: true})
		s.notifier.Notify("Route deleted", "Removed from this device", service.SeverityInfo)

		return nil
	}

	if !s.authGate.IsAuthenticated() || !s.hasRequiredRole() {
		return s.failAuthRequired("Delete failed")
	}

	if err := s.remote.DeleteRoute(ctx, id); err != nil {
		return s.failRemote("Delete failed", err)
	}

	s.mu.Lock()
	s.collection.Remove(id)
	s.mu.Unlock()

	s.publishEvent(ctx, service.RouteEventDeleted, &entity.Route{ID: id})
	s.notifier.Notify("Route deleted", "Removed from the server", service.SeverityInfo)

	return nil
}

// Refresh replaces the collection with the remote list followed by the
// device-local tier. The first loaded route becomes selected.
func (s *routeService) Refresh(ctx context.Context) error {
	remoteRoutes, err := s.remote.ListRoutes(ctx)
	if err != nil {
		return s.failRemote("Refresh failed", err)
	}

	s.mu.Lock()
	locals := s.collection.LocalRoutes()
	s.collection.Load(append(remoteRoutes, locals...))
	s.mu.Unlock()

	return nil
}

// RestoreLocal loads the local-route snapshot into the collection, usually
// once at startup.
func (s *routeService) RestoreLocal(ctx context.Context) error {
	if s.snapshots == nil {
		return nil
	}

	locals, err := s.snapshots.LoadLocalRoutes(ctx)
	if err != nil {
		return errors.Wrap(err, "load local route snapshot")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, route := range locals {
		s.collection.Upsert(route)
	}
	if _, ok := s.collection.SelectedID(); !ok && s.collection.Len() > 0 {
		s.collection.Select(s.collection.Routes()[0].ID)
	}

	return nil
}

// Resolve looks a route up by id, falling back to the remote service for
// ids the collection does not hold, as when resolving a scanned share QR.
// Resolved remote routes join the collection.
func (s *routeService) Resolve(ctx context.Context, id string) (*entity.Route, error) {
	s.mu.Lock()
	route, ok := s.collection.Get(id)
	s.mu.Unlock()
	if ok {
		return route, nil
	}

	// Local ids never exist remotely.
	if entity.IsLocalID(id) {
		return nil, domainerrors.ErrRouteNotFound
	}

	fetched, err := s.remote.FindRouteByID(ctx, id)
	if err != nil {
		var remoteErr *repository.RemoteError
		if errors.As(err, &remoteErr) && remoteErr.StatusCode == http.StatusNotFound {
			return nil, domainerrors.ErrRouteNotFound
		}

		return nil, domainerrors.ErrRemoteFailure.WithDetails(err.Error())
	}
	fetched.IsLocal = false

	s.mu.Lock()
	s.collection.Upsert(fetched)
	s.mu.Unlock()

	return fetched, nil
}

func (s *routeService) List() []*entity.Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collection.Routes()
}

func (s *routeService) Get(id string) (*entity.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	route, ok := s.collection.Get(id)
	if !ok {
		return nil, domainerrors.ErrRouteNotFound
	}

	return route, nil
}

func (s *routeService) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.collection.Select(id) {
		return domainerrors.ErrRouteNotFound
	}

	return nil
}

func (s *routeService) Selected() (*entity.Route, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.collection.Selected()
}

func (s *routeService) Regions(ctx context.Context) ([]string, error) {
	regions, err := s.remote.Regions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch regions")
	}

	return regions, nil
}

func (s *routeService) TrekNames(ctx context.Context) ([]string, error) {
	names, err := s.remote.TrekNames(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch trek names")
	}

	return names, nil
}

func (s *routeService) DifficultyLevels(ctx context.Context) ([]string, error) {
	levels, err := s.remote.DifficultyLevels(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetch difficulty levels")
	}

	return levels, nil
}

// hasRequiredRole reports whether the session carries the configured role.
// An empty configuration disables the role check.
func (s *routeService) hasRequiredRole() bool {
	if s.requiredRole == "" {
		return true
	}

	return s.authGate.HasRole(s.requiredRole)
}

// failValidation notifies and returns the validation error. No network call
// has happened when this fires.
func (s *routeService) failValidation(title string, err error) error {
	appErr := domainerrors.ErrValidationFailed.WithDetails(err.Error())
	s.notifier.Notify(title, appErr.Message(), service.SeverityError)

	return appErr
}

// failAuthRequired notifies, triggers the re-authentication flow, and
// returns the auth error. The store is never mutated on this path.
func (s *routeService) failAuthRequired(title string) error {
	appErr := domainerrors.ErrAuthRequired
	s.notifier.Notify(title, appErr.Message(), service.SeverityError)
	s.authGate.OnAuthRequired()

	return appErr
}

func (s *routeService) failNotFound(title string) error {
	appErr := domainerrors.ErrRouteNotFound
	s.notifier.Notify(title, appErr.Message(), service.SeverityError)

	return appErr
}

// failRemote classifies a remote failure: authorization-pattern failures
// become SessionExpired and trigger the re-authentication flow, everything
// else surfaces as RemoteFailure. The store is never mutated on any remote
// failure path.
func (s *routeService) failRemote(title string, err error) error {
	if isAuthFailure(err) {
		appErr := domainerrors.ErrSessionExpired.WithDetails(err.Error())
		s.notifier.Notify(title, appErr.Message(), service.SeverityError)
		s.authGate.OnAuthRequired()

		return appErr
	}

	appErr := domainerrors.ErrRemoteFailure.WithDetails(err.Error())
	s.notifier.Notify(title, appErr.Message(), service.SeverityError)

	return appErr
}

// persistLocalSnapshot writes the device-local tier. Snapshot failures are
// logged, not surfaced; the in-memory collection stays authoritative.
func (s *routeService) persistLocalSnapshot(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	s.mu.Lock()
	locals := s.collection.LocalRoutes()
	s.mu.Unlock()

	if err := s.snapshots.SaveLocalRoutes(ctx, locals); err != nil {
		s.logger.Warn("Failed to persist local route snapshot", slog.Any("error", err))
	}
}

// publishEvent emits a route lifecycle event, fire-and-forget.
func (s *routeService) publishEvent(ctx context.Context, eventType string, route *entity.Route) {
	if s.publisher == nil {
		return
	}

	event := &service.RouteEvent{
		Type:           eventType,
		RouteID:        route.ID,
		Name:           route.Name,
		Region:         route.Region,
		DistanceMeters: route.DistanceMeters,
		IsLocal:        route.IsLocal,
	}
	if err := s.publisher.PublishRouteEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish route event",
			slog.String("type", eventType),
			slog.String("route_id", route.ID),
			slog.Any("error", err),
		)
	}
}

// buildRoute assembles a route from the create input. Distance comes from
// the geometry unless the caller supplied a measured override; duration is
// always derived from the effective distance.
func buildRoute(input *usecase.CreateRouteInput) *entity.Route {
	geometry := make([]entity.Coordinate, len(input.Geometry))
	copy(geometry, input.Geometry)

	distance := geo.DistanceMeters(geometry)
	if input.DistanceOverrideMeters != nil {
		distance = *input.DistanceOverrideMeters
	}

	return &entity.Route{
		Name:            input.Name,
		Geometry:        geometry,
		DistanceMeters:  distance,
		DurationSeconds: geo.EstimatedDurationSeconds(distance),
		Difficulty:      input.Difficulty,
		Region:          input.Region,
		TrekName:        input.TrekName,
		MinAltitude:     input.MinAltitude,
		MaxAltitude:     input.MaxAltitude,
		Description:     input.Description,
		DurationDays:    input.DurationDays,
		CreatedAt:       time.Now(),
	}
}

// applyRouteUpdates applies the partial edit to the route. Absent fields
// leave existing values unchanged; a replaced geometry always recomputes
// the derived metrics.
func applyRouteUpdates(route *entity.Route, input *usecase.UpdateRouteInput) {
	if input.Name != nil {
		route.Name = *input.Name
	}
	if input.Region != nil {
		route.Region = *input.Region
	}
	if input.Difficulty != nil {
		route.Difficulty = *input.Difficulty
	}
	if input.MinAltitude != nil {
		route.MinAltitude = *input.MinAltitude
	}
	if input.MaxAltitude != nil {
		route.MaxAltitude = *input.MaxAltitude
	}
	if input.Description != nil {
		route.Description = *input.Description
	}
	if input.TrekName != nil {
		route.TrekName = *input.TrekName
	}
	if input.DurationDays != nil {
		route.DurationDays = *input.DurationDays
	}
	if input.Geometry != nil {
		route.Geometry = make([]entity.Coordinate, len(input.Geometry))
		copy(route.Geometry, input.Geometry)
		route.DistanceMeters = geo.DistanceMeters(route.Geometry)
		route.DurationSeconds = geo.EstimatedDurationSeconds(route.DistanceMeters)
	}
}
