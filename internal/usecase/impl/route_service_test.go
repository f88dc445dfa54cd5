package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"trailforge/config"
	"trailforge/internal/domain/entity"
	domainerrors "trailforge/internal/domain/errors"
	"trailforge/internal/domain/repository"
	"trailforge/internal/domain/service"
	mockRepo "trailforge/internal/mocks/repository"
	mockSvc "trailforge/internal/mocks/service"
	"trailforge/internal/store"
	"trailforge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type routeServiceFixture struct {
	collection *store.Collection
	remote     *mockRepo.MockRouteRepository
	gate       *mockSvc.MockAuthGate
	notifier   *mockSvc.MockNotifier
	publisher  *mockSvc.MockEventPublisher
	snapshots  *mockSvc.MockSnapshotStore
	service    usecase.RouteUsecase
}

func newRouteServiceFixture(t *testing.T, cfg *config.Config) *routeServiceFixture {
	t.Helper()

	f := &routeServiceFixture{
		collection: store.NewCollection(),
		remote:     mockRepo.NewMockRouteRepository(t),
		gate:       mockSvc.NewMockAuthGate(t),
		notifier:   mockSvc.NewMockNotifier(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
		snapshots:  mockSvc.NewMockSnapshotStore(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.service = NewRouteService(f.collection, f.remote, f.gate, f.notifier, f.publisher, f.snapshots, cfg, logger)

	return f
}

func validCreateInput() *usecase.CreateRouteInput {
	return &usecase.CreateRouteInput{
		Name:        "Annapurna Circuit",
		Region:      "Annapurna",
		Difficulty:  "hard",
		MinAltitude: 800,
		MaxAltitude: 5416,
		Geometry: []entity.Coordinate{
			{Lat: 28.5, Lng: 84.0},
			{Lat: 28.6, Lng: 84.1},
			{Lat: 28.7, Lng: 84.2},
		},
	}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)

	return appErr.ErrorCode()
}

func TestRouteService_Create_Unauthenticated_SavesLocally(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.gate.EXPECT().IsAuthenticated().Return(false)
	f.snapshots.EXPECT().SaveLocalRoutes(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().
		Notify("Route saved locally", mock.Anything, service.SeverityInfo).
		Once()

	route, err := f.service.Create(ctx, validCreateInput())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(route.ID, entity.LocalIDPrefix))
	assert.True(t, route.IsLocal)
	assert.Len(t, route.Geometry, 3)
	assert.Greater(t, route.DistanceMeters, 0.0)
	assert.Greater(t, route.DurationSeconds, 0.0)

	selected, ok := f.service.Selected()
	require.True(t, ok)
	assert.Equal(t, route.ID, selected.ID)
}

func TestRouteService_Create_DistanceOverride(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.gate.EXPECT().IsAuthenticated().Return(false)
	f.snapshots.EXPECT().SaveLocalRoutes(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().
		Notify("Route saved locally", mock.Anything, service.SeverityInfo).
		Once()

	input := validCreateInput()
	override := 42000.0
	input.DistanceOverrideMeters = &override

	route, err := f.service.Create(ctx, input)
	require.NoError(t, err)

	assert.Equal(t, 42000.0, route.DistanceMeters)
	// Duration always follows the effective distance: 42 km at 72 s/km.
	assert.InDelta(t, 3024.0, route.DurationSeconds, 1e-9)
}

func TestRouteService_Create_ValidationFailure(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.notifier.EXPECT().
		Notify("Save failed", mock.Anything, service.SeverityError).
		Once()

	input := validCreateInput()
	input.Geometry = input.Geometry[:1]

	route, err := f.service.Create(ctx, input)
	require.Error(t, err)
	assert.Nil(t, route)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, err))
	assert.Empty(t, f.service.List())
}

func TestRouteService_Create_Authenticated_RemoteSuccess(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	created := &entity.Route{ID: "srv-1", Name: "Annapurna Circuit"}

	f.gate.EXPECT().IsAuthenticated().Return(true)
	f.remote.EXPECT().CreateRoute(ctx, mock.AnythingOfType("*entity.Route")).Return(created, nil)
	f.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().
		Notify("Route saved", "Annapurna Circuit", service.SeverityInfo).
		Once()

	route, err := f.service.Create(ctx, validCreateInput())
	require.NoError(t, err)

	assert.Equal(t, "srv-1", route.ID)
	assert.False(t, route.IsLocal)

	selected, ok := f.service.Selected()
	require.True(t, ok)
	assert.Equal(t, "srv-1", selected.ID)
}

func TestRouteService_Create_SessionExpired(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.gate.EXPECT().IsAuthenticated().Return(true)
	f.remote.EXPECT().
		CreateRoute(ctx, mock.AnythingOfType("*entity.Route")).
		Return(nil, &repository.RemoteError{StatusCode: 401, Message: "Unauthorized"})
	f.notifier.EXPECT().
		Notify("Save failed", domainerrors.ErrSessionExpired.Message(), service.SeverityError).
		Once()
	f.gate.EXPECT().OnAuthRequired().Once()

	route, err := f.service.Create(ctx, validCreateInput())
	require.Error(t, err)
	assert.Nil(t, route)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(t, err))

	// A failed save never mutates the collection.
	assert.Empty(t, f.service.List())
}

func TestRouteService_Create_RemoteFailure(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.gate.EXPECT().IsAuthenticated().Return(true)
	f.remote.EXPECT().
		CreateRoute(ctx, mock.AnythingOfType("*entity.Route")).
		Return(nil, &repository.RemoteError{StatusCode: 500, Message: "Internal Server Error"})
	f.notifier.EXPECT().
		Notify("Save failed", domainerrors.ErrRemoteFailure.Message(), service.SeverityError).
		Once()

	route, err := f.service.Create(ctx, validCreateInput())
	require.Error(t, err)
	assert.Nil(t, route)
	assert.Equal(t, "REMOTE_FAILURE", errorCode(t, err))
	assert.Empty(t, f.service.List())
}

func TestRouteService_Create_MissingRequiredRole(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{RequiredRole: "editor"}}
	f := newRouteServiceFixture(t, cfg)
	ctx := context.Background()

	f.gate.EXPECT().IsAuthenticated().Return(true)
	f.gate.EXPECT().HasRole("editor").Return(false)
	f.notifier.EXPECT().
		Notify("Save failed", domainerrors.ErrAuthRequired.Message(), service.SeverityError).
		Once()
	f.gate.EXPECT().OnAuthRequired().Once()

	route, err := f.service.Create(ctx, validCreateInput())
	require.Error(t, err)
	assert.Nil(t, route)
	assert.Equal(t, "AUTH_REQUIRED", errorCode(t, err))
}

func TestRouteService_Update_LocalID_NoAuthNeeded(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	local := &entity.Route{ID: "local-abc", Name: "Old name", IsLocal: true}
	f.collection.Load([]*entity.Route{local})

	f.snapshots.EXPECT().SaveLocalRoutes(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().
		Notify("Route updated locally", "New name", service.SeverityInfo).
		Once()

	name := "New name"
	route, err := f.service.Update(ctx, "local-abc", &usecase.UpdateRouteInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "New name", route.Name)
	assert.True(t, route.IsLocal)

	stored, err := f.service.Get("local-abc")
	require.NoError(t, err)
	assert.Equal(t, "New name", stored.Name)
}

func TestRouteService_Update_GeometryRecomputesMetrics(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	local := &entity.Route{ID: "local-abc", Name: "Trail", IsLocal: true, DistanceMeters: 10}
	f.collection.Load([]*entity.Route{local})

	f.snapshots.EXPECT().SaveLocalRoutes(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().
		Notify("Route updated locally", "Trail", service.SeverityInfo).
		Once()

	geometry := []entity.Coordinate{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 1},
	}
	route, err := f.service.Update(ctx, "local-abc", &usecase.UpdateRouteInput{Geometry: geometry})
	require.NoError(t, err)

	assert.Greater(t, route.DistanceMeters, 100000.0)
	assert.InDelta(t, route.DistanceMeters/1000*72, route.DurationSeconds, 1e-9)
}

func TestRouteService_Update_Unauthenticated_RemoteRoute(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.collection.Load([]*entity.Route{{ID: "srv-1", Name: "Trail"}})

	f.gate.EXPECT().IsAuthenticated().Return(false)
	f.notifier.EXPECT().
		Notify("Update failed", domainerrors.ErrAuthRequired.Message(), service.SeverityError).
		Once()
	f.gate.EXPECT().OnAuthRequired().Once()

	name := "New name"
	route, err := f.service.Update(ctx, "srv-1", &usecase.UpdateRouteInput{Name: &name})
	require.Error(t, err)
	assert.Nil(t, route)
	assert.Equal(t, "AUTH_REQUIRED", errorCode(t, err))

	// The stored route is untouched on the failure path.
	stored, err := f.service.Get("srv-1")
	require.NoError(t, err)
	assert.Equal(t, "Trail", stored.Name)
}

func TestRouteService_Update_RemoteSuccess_KeepsSelection(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.collection.Load([]*entity.Route{{ID: "srv-1", Name: "Trail"}, {ID: "srv-2", Name: "Other"}})
	require.True(t, f.collection.Select("srv-1"))

	updated := &entity.Route{ID: "srv-1", Name: "Renamed"}

	f.gate.EXPECT().IsAuthenticated().Return(true)
	f.remote.EXPECT().UpdateRoute(ctx, "srv-1", mock.AnythingOfType("*entity.Route")).Return(updated, nil)
	f.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().
		Notify("Route updated", "Renamed", service.SeverityInfo).
		Once()

	route, err := f.service.Update(ctx, "srv-1", &usecase.UpdateRouteInput{Name: &updated.Name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", route.Name)

	selected, ok := f.service.Selected()
	require.True(t, ok)
	assert.Equal(t, "srv-1", selected.ID)
	assert.Equal(t, "Renamed", selected.Name)
}

func TestRouteService_Update_NotFound(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.gate.EXPECT().IsAuthenticated().Return(true)
	f.notifier.EXPECT().
		Notify("Update failed", domainerrors.ErrRouteNotFound.Message(), service.SeverityError).
		Once()

	name := "New name"
	_, err := f.service.Update(ctx, "missing", &usecase.UpdateRouteInput{Name: &name})
	require.Error(t, err)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, err))
}

func TestRouteService_Delete_LocalID_NoAuthNeeded(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.collection.Load([]*entity.Route{{ID: "local-abc", IsLocal: true}})

	f.snapshots.EXPECT().SaveLocalRoutes(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().
		Notify("Route deleted", "Removed from this device", service.SeverityInfo).
		Once()

	require.NoError(t, f.service.Delete(ctx, "local-abc"))
	assert.Empty(t, f.service.List())
}

func TestRouteService_Delete_SelectedClearsSelection(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.collection.Load([]*entity.Route{{ID: "local-abc", IsLocal: true}, {ID: "local-def", IsLocal: true}})
	require.True(t, f.collection.Select("local-abc"))

	f.snapshots.EXPECT().SaveLocalRoutes(ctx, mock.Anything).Return(nil)
	f.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().
		Notify("Route deleted", "Removed from this device", service.SeverityInfo).
		Once()

	require.NoError(t, f.service.Delete(ctx, "local-abc"))

	_, ok := f.service.Selected()
	assert.False(t, ok)
}

func TestRouteService_Delete_Remote_SessionExpired(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.collection.Load([]*entity.Route{{ID: "srv-1"}})

	f.gate.EXPECT().IsAuthenticated().Return(true)
	f.remote.EXPECT().
		DeleteRoute(ctx, "srv-1").
		Return(&repository.RemoteError{Message: "token not authenticated"})
	f.notifier.EXPECT().
		Notify("Delete failed", domainerrors.ErrSessionExpired.Message(), service.SeverityError).
		Once()
	f.gate.EXPECT().OnAuthRequired().Once()

	err := f.service.Delete(ctx, "srv-1")
	require.Error(t, err)
	assert.Equal(t, "SESSION_EXPIRED", errorCode(t, err))

	// The route is still present after the failed delete.
	assert.Len(t, f.service.List(), 1)
}

func TestRouteService_Refresh_KeepsLocalTier(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.collection.Load([]*entity.Route{
		{ID: "stale-remote"},
		{ID: "local-abc", IsLocal: true},
	})

	fresh := []*entity.Route{{ID: "srv-1"}, {ID: "srv-2"}}
	f.remote.EXPECT().ListRoutes(ctx).Return(fresh, nil)

	require.NoError(t, f.service.Refresh(ctx))

	routes := f.service.List()
	require.Len(t, routes, 3)
	assert.Equal(t, "srv-1", routes[0].ID)
	assert.Equal(t, "srv-2", routes[1].ID)
	assert.Equal(t, "local-abc", routes[2].ID)

	selected, ok := f.service.Selected()
	require.True(t, ok)
	assert.Equal(t, "srv-1", selected.ID)
}

func TestRouteService_Refresh_RemoteFailure(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.collection.Load([]*entity.Route{{ID: "srv-1"}})

	f.remote.EXPECT().
		ListRoutes(ctx).
		Return(nil, &repository.RemoteError{StatusCode: 503, Message: "Service Unavailable"})
	f.notifier.EXPECT().
		Notify("Refresh failed", domainerrors.ErrRemoteFailure.Message(), service.SeverityError).
		Once()

	err := f.service.Refresh(ctx)
	require.Error(t, err)
	assert.Equal(t, "REMOTE_FAILURE", errorCode(t, err))

	// The collection keeps its previous contents.
	assert.Len(t, f.service.List(), 1)
}

func TestRouteService_RestoreLocal(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	saved := []*entity.Route{
		{ID: "local-abc", Name: "Saved trail", IsLocal: true},
		{ID: "local-def", Name: "Another", IsLocal: true},
	}
	f.snapshots.EXPECT().LoadLocalRoutes(ctx).Return(saved, nil)

	require.NoError(t, f.service.RestoreLocal(ctx))

	assert.Len(t, f.service.List(), 2)
	selected, ok := f.service.Selected()
	require.True(t, ok)
	assert.Equal(t, "local-abc", selected.ID)
}

func TestRouteService_Select_AbsentID(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	f.collection.Load([]*entity.Route{{ID: "srv-1"}})

	err := f.service.Select("missing")
	require.Error(t, err)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, err))

	selected, ok := f.service.Selected()
	require.True(t, ok)
	assert.Equal(t, "srv-1", selected.ID)
}

func TestRouteService_Resolve_PrefersCollection(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.collection.Load([]*entity.Route{{ID: "srv-1", Name: "Trail"}})

	// No remote expectations: a collection hit must not touch the network.
	route, err := f.service.Resolve(ctx, "srv-1")
	require.NoError(t, err)
	assert.Equal(t, "Trail", route.Name)
}

func TestRouteService_Resolve_FetchesUnknownRemote(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	fetched := &entity.Route{ID: "srv-9", Name: "Shared trail"}
	f.remote.EXPECT().FindRouteByID(ctx, "srv-9").Return(fetched, nil)

	route, err := f.service.Resolve(ctx, "srv-9")
	require.NoError(t, err)
	assert.Equal(t, "Shared trail", route.Name)

	// The resolved route joined the collection.
	stored, err := f.service.Get("srv-9")
	require.NoError(t, err)
	assert.Equal(t, "Shared trail", stored.Name)
}

func TestRouteService_Resolve_RemoteNotFound(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.remote.EXPECT().
		FindRouteByID(ctx, "srv-9").
		Return(nil, &repository.RemoteError{StatusCode: 404, Message: "Not Found"})

	_, err := f.service.Resolve(ctx, "srv-9")
	require.Error(t, err)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, err))
}

func TestRouteService_Resolve_LocalIDNeverFetched(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	_, err := f.service.Resolve(ctx, "local-missing")
	require.Error(t, err)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, err))
}

func TestRouteService_Get_NotFound(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})

	_, err := f.service.Get("missing")
	require.Error(t, err)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, err))
}

func TestRouteService_MetadataLookups(t *testing.T) {
	f := newRouteServiceFixture(t, &config.Config{})
	ctx := context.Background()

	f.remote.EXPECT().Regions(ctx).Return([]string{"Annapurna", "Everest"}, nil)
	f.remote.EXPECT().TrekNames(ctx).Return([]string{"Annapurna Circuit"}, nil)
	f.remote.EXPECT().DifficultyLevels(ctx).Return([]string{"easy", "moderate", "hard"}, nil)

	regions, err := f.service.Regions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Annapurna", "Everest"}, regions)

	names, err := f.service.TrekNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Annapurna Circuit"}, names)

	levels, err := f.service.DifficultyLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"easy", "moderate", "hard"}, levels)
}
