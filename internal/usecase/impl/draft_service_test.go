package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trailforge/config"
	"trailforge/internal/domain/entity"
	"trailforge/internal/domain/service"
	"trailforge/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type draftServiceFixture struct {
	routes *routeServiceFixture
	drafts usecase.DraftUsecase
}

func newDraftServiceFixture(t *testing.T) *draftServiceFixture {
	t.Helper()

	routes := newRouteServiceFixture(t, &config.Config{})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &draftServiceFixture{
		routes: routes,
		drafts: NewDraftService(routes.service, logger),
	}
}

func TestDraftService_StartDraw_EmptySession(t *testing.T) {
	f := newDraftServiceFixture(t)

	draftID := f.drafts.StartDraw()
	require.NotEmpty(t, draftID)

	view, err := f.drafts.View(draftID)
	require.NoError(t, err)
	assert.Empty(t, view.Waypoints)
	assert.Zero(t, view.DistanceMeters)
	assert.Empty(t, view.RouteID)
	assert.Nil(t, view.FocusedIndex)
}

func TestDraftService_StartEdit_SeedsFromRoute(t *testing.T) {
	f := newDraftServiceFixture(t)

	geometry := []entity.Coordinate{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}
	f.routes.collection.Load([]*entity.Route{{ID: "srv-1", Geometry: geometry}})

	draftID, err := f.drafts.StartEdit("srv-1")
	require.NoError(t, err)

	view, err := f.drafts.View(draftID)
	require.NoError(t, err)
	assert.Equal(t, "srv-1", view.RouteID)
	require.Len(t, view.Waypoints, 2)
	assert.Equal(t, "Start", view.Waypoints[0].Name)
	assert.Equal(t, "End", view.Waypoints[1].Name)
}

func TestDraftService_StartEdit_UnknownRoute(t *testing.T) {
	f := newDraftServiceFixture(t)

	_, err := f.drafts.StartEdit("missing")
	require.Error(t, err)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, err))
}

func TestDraftService_StartEdit_BufferIsolatedFromRoute(t *testing.T) {
	f := newDraftServiceFixture(t)

	geometry := []entity.Coordinate{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}
	f.routes.collection.Load([]*entity.Route{{ID: "srv-1", Geometry: geometry}})

	draftID, err := f.drafts.StartEdit("srv-1")
	require.NoError(t, err)

	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 3, Lng: 3}))

	// The stored route is untouched until commit.
	stored, err := f.routes.service.Get("srv-1")
	require.NoError(t, err)
	assert.Len(t, stored.Geometry, 2)
}

func TestDraftService_Discard(t *testing.T) {
	f := newDraftServiceFixture(t)

	draftID := f.drafts.StartDraw()
	require.NoError(t, f.drafts.Discard(draftID))

	_, err := f.drafts.View(draftID)
	require.Error(t, err)
	assert.Equal(t, "DRAFT_NOT_FOUND", errorCode(t, err))
}

func TestDraftService_UnknownSession(t *testing.T) {
	f := newDraftServiceFixture(t)

	err := f.drafts.AppendPoint("missing", entity.Coordinate{})
	require.Error(t, err)
	assert.Equal(t, "DRAFT_NOT_FOUND", errorCode(t, err))
}

func TestDraftService_PointLifecycle(t *testing.T) {
	f := newDraftServiceFixture(t)
	draftID := f.drafts.StartDraw()

	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 1, Lng: 1}))
	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 3, Lng: 3}))
	require.NoError(t, f.drafts.InsertPoint(draftID, 1, entity.Coordinate{Lat: 2, Lng: 2}))
	require.NoError(t, f.drafts.UpdatePoint(draftID, 0, entity.Coordinate{Lat: 0.5, Lng: 0.5}))

	view, err := f.drafts.View(draftID)
	require.NoError(t, err)
	require.Len(t, view.Waypoints, 3)
	assert.Equal(t, entity.Coordinate{Lat: 0.5, Lng: 0.5}, view.Waypoints[0].Coordinate)
	assert.Equal(t, entity.Coordinate{Lat: 2, Lng: 2}, view.Waypoints[1].Coordinate)
	assert.Greater(t, view.DistanceMeters, 0.0)
	assert.InDelta(t, view.DistanceMeters/1000*72, view.DurationSeconds, 1e-6)
}

func TestDraftService_DeletePoint_GuardsMinimum(t *testing.T) {
	f := newDraftServiceFixture(t)
	draftID := f.drafts.StartDraw()

	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 1, Lng: 1}))
	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 2, Lng: 2}))

	err := f.drafts.DeletePoint(draftID, 0)
	require.Error(t, err)
	assert.Equal(t, "GEOMETRY_TOO_SHORT", errorCode(t, err))

	err = f.drafts.DeletePoint(draftID, 9)
	require.Error(t, err)
	assert.Equal(t, "POINT_OUT_OF_RANGE", errorCode(t, err))

	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 3, Lng: 3}))
	require.NoError(t, f.drafts.DeletePoint(draftID, 1))
}

func TestDraftService_InsertAfter_ReturnsInserted(t *testing.T) {
	f := newDraftServiceFixture(t)
	draftID := f.drafts.StartDraw()

	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 0, Lng: 0}))
	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 2, Lng: 2}))

	inserted, err := f.drafts.InsertAfter(draftID, 0)
	require.NoError(t, err)
	assert.Equal(t, entity.Coordinate{Lat: 1, Lng: 1}, inserted)
}

func TestDraftService_FocusAndBound(t *testing.T) {
	f := newDraftServiceFixture(t)
	draftID := f.drafts.StartDraw()

	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 27.7, Lng: 85.3}))
	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 28.2, Lng: 84.0}))

	focus, err := f.drafts.Focused(draftID)
	require.NoError(t, err)
	assert.Nil(t, focus)

	require.NoError(t, f.drafts.Focus(draftID, 1))
	focus, err = f.drafts.Focused(draftID)
	require.NoError(t, err)
	require.NotNil(t, focus)
	assert.Equal(t, 1, focus.Index)
	assert.Equal(t, entity.Coordinate{Lat: 28.2, Lng: 84.0}, focus.Point)

	bound, err := f.drafts.Bound(draftID)
	require.NoError(t, err)
	require.NotNil(t, bound)
	assert.InDelta(t, 27.7, bound.MinLat, 1e-9)
	assert.InDelta(t, 84.0, bound.MinLng, 1e-9)
	assert.InDelta(t, 28.2, bound.MaxLat, 1e-9)
	assert.InDelta(t, 85.3, bound.MaxLng, 1e-9)
}

func TestDraftService_Commit_UsesBufferGeometry(t *testing.T) {
	f := newDraftServiceFixture(t)
	ctx := context.Background()
	draftID := f.drafts.StartDraw()

	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 28.5, Lng: 84.0}))
	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 28.6, Lng: 84.1}))

	f.routes.gate.EXPECT().IsAuthenticated().Return(false)
	f.routes.snapshots.EXPECT().SaveLocalRoutes(ctx, mock.Anything).Return(nil)
	f.routes.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.routes.notifier.EXPECT().
		Notify("Route saved locally", mock.Anything, service.SeverityInfo).
		Once()

	input := validCreateInput()
	input.Geometry = nil // commit always takes geometry from the buffer

	route, err := f.drafts.Commit(ctx, draftID, input)
	require.NoError(t, err)
	assert.Len(t, route.Geometry, 2)

	// The session is gone after a successful commit.
	_, err = f.drafts.View(draftID)
	require.Error(t, err)
	assert.Equal(t, "DRAFT_NOT_FOUND", errorCode(t, err))
}

func TestDraftService_Commit_FailureKeepsSession(t *testing.T) {
	f := newDraftServiceFixture(t)
	ctx := context.Background()
	draftID := f.drafts.StartDraw()

	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 28.5, Lng: 84.0}))

	f.routes.notifier.EXPECT().
		Notify("Save failed", mock.Anything, service.SeverityError).
		Once()

	// A one-point geometry fails validation in the coordinator.
	input := validCreateInput()
	input.Geometry = nil

	_, err := f.drafts.Commit(ctx, draftID, input)
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(t, err))

	// The session survives the failed commit for another attempt.
	_, err = f.drafts.View(draftID)
	require.NoError(t, err)
}

func TestDraftService_CommitUpdate_RequiresEditMode(t *testing.T) {
	f := newDraftServiceFixture(t)
	ctx := context.Background()
	draftID := f.drafts.StartDraw()

	_, err := f.drafts.CommitUpdate(ctx, draftID, &usecase.UpdateRouteInput{})
	require.Error(t, err)
	assert.Equal(t, "ROUTE_NOT_FOUND", errorCode(t, err))
}

func TestDraftService_CommitUpdate_LocalRoute(t *testing.T) {
	f := newDraftServiceFixture(t)
	ctx := context.Background()

	geometry := []entity.Coordinate{{Lat: 1, Lng: 1}, {Lat: 2, Lng: 2}}
	f.routes.collection.Load([]*entity.Route{{ID: "local-abc", Name: "Trail", IsLocal: true, Geometry: geometry}})

	draftID, err := f.drafts.StartEdit("local-abc")
	require.NoError(t, err)
	require.NoError(t, f.drafts.AppendPoint(draftID, entity.Coordinate{Lat: 3, Lng: 3}))

	f.routes.snapshots.EXPECT().SaveLocalRoutes(ctx, mock.Anything).Return(nil)
	f.routes.publisher.EXPECT().PublishRouteEvent(ctx, mock.Anything).Return(nil)
	f.routes.notifier.EXPECT().
		Notify("Route updated locally", "Trail", service.SeverityInfo).
		Once()

	route, err := f.drafts.CommitUpdate(ctx, draftID, &usecase.UpdateRouteInput{})
	require.NoError(t, err)
	assert.Len(t, route.Geometry, 3)

	stored, err := f.routes.service.Get("local-abc")
	require.NoError(t, err)
	assert.Len(t, stored.Geometry, 3)
}
