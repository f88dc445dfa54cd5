package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"trailforge/config"
	"trailforge/internal/domain/entity"
	"trailforge/internal/domain/repository"
	mockSvc "trailforge/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, serverURL string) (repository.RouteRepository, *mockSvc.MockAuthGate) {
	t.Helper()

	gate := mockSvc.NewMockAuthGate(t)
	cfg := &config.Config{
		Remote: &config.RemoteConfig{
			BaseURL: serverURL,
			Timeout: 5 * time.Second,
		},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRouteRepository(cfg, gate, logger), gate
}

func TestRouteRepository_CreateRoute_WireFormat(t *testing.T) {
	var captured routeRecord
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/routes", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		captured.ID = "srv-1"
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(captured)
	}))
	defer server.Close()

	repo, gate := newTestRepository(t, server.URL)
	gate.EXPECT().Token().Return("test-token")

	route := &entity.Route{
		Name:           "Annapurna Circuit",
		Region:         "Annapurna",
		Difficulty:     "hard",
		DistanceMeters: 42000,
		Geometry: []entity.Coordinate{
			{Lat: 28.5, Lng: 84.0},
			{Lat: 28.6, Lng: 84.1},
		},
	}

	created, err := repo.CreateRoute(context.Background(), route)
	require.NoError(t, err)

	// Geometry travels as [lng, lat] pairs and distance in kilometers.
	require.Len(t, captured.GeometryCoordinates, 2)
	assert.Equal(t, []float64{84.0, 28.5}, captured.GeometryCoordinates[0])
	assert.Equal(t, []float64{84.1, 28.6}, captured.GeometryCoordinates[1])
	assert.InDelta(t, 42.0, captured.DistanceKm, 1e-9)
	assert.Equal(t, "hard", captured.DifficultyLevel)

	// The response converts back to the in-memory shape.
	assert.Equal(t, "srv-1", created.ID)
	assert.False(t, created.IsLocal)
	require.Len(t, created.Geometry, 2)
	assert.InDelta(t, 28.5, created.Geometry[0].Lat, 1e-9)
	assert.InDelta(t, 84.0, created.Geometry[0].Lng, 1e-9)
	assert.InDelta(t, 42000, created.DistanceMeters, 1e-9)
	assert.InDelta(t, 42*72, created.DurationSeconds, 1e-9)
}

func TestRouteRepository_AnonymousRequestHasNoBearer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]routeRecord{})
	}))
	defer server.Close()

	repo, gate := newTestRepository(t, server.URL)
	gate.EXPECT().Token().Return("")

	routes, err := repo.ListRoutes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestRouteRepository_NonSuccessBecomesRemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "token expired"})
	}))
	defer server.Close()

	repo, gate := newTestRepository(t, server.URL)
	gate.EXPECT().Token().Return("stale")

	_, err := repo.ListRoutes(context.Background())
	require.Error(t, err)

	var remoteErr *repository.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusUnauthorized, remoteErr.StatusCode)
	assert.Equal(t, "token expired", remoteErr.Message)
}

func TestRouteRepository_ErrorEnvelopeFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected string
	}{
		{"error field", http.StatusBadRequest, `{"error":"bad geometry"}`, "bad geometry"},
		{"raw body", http.StatusConflict, "duplicate name", "duplicate name"},
		{"empty body", http.StatusBadGateway, "", "Bad Gateway"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			repo, gate := newTestRepository(t, server.URL)
			gate.EXPECT().Token().Return("")

			err := repo.DeleteRoute(context.Background(), "srv-1")
			require.Error(t, err)

			var remoteErr *repository.RemoteError
			require.ErrorAs(t, err, &remoteErr)
			assert.Equal(t, tt.status, remoteErr.StatusCode)
			assert.Equal(t, tt.expected, remoteErr.Message)
		})
	}
}

func TestRouteRepository_TransportErrorHasNoStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	repo, gate := newTestRepository(t, server.URL)
	gate.EXPECT().Token().Return("")

	_, err := repo.ListRoutes(context.Background())
	require.Error(t, err)

	var remoteErr *repository.RemoteError
	require.ErrorAs(t, err, &remoteErr)
	assert.Zero(t, remoteErr.StatusCode)
	assert.NotEmpty(t, remoteErr.Message)
}

func TestRouteRepository_MetadataEndpoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/v1/routes/regions":
			json.NewEncoder(w).Encode([]string{"Annapurna", "Everest"})
		case "/api/v1/routes/trek-names":
			json.NewEncoder(w).Encode([]string{"Annapurna Circuit"})
		case "/api/v1/routes/difficulty-levels":
			json.NewEncoder(w).Encode([]string{"easy", "moderate", "hard"})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	repo, gate := newTestRepository(t, server.URL)
	gate.EXPECT().Token().Return("")

	ctx := context.Background()

	regions, err := repo.Regions(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Annapurna", "Everest"}, regions)

	names, err := repo.TrekNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Annapurna Circuit"}, names)

	levels, err := repo.DifficultyLevels(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"easy", "moderate", "hard"}, levels)
}

func TestGeometryFromWire_SkipsMalformedPairs(t *testing.T) {
	pairs := [][]float64{
		{84.0, 28.5},
		{84.1},
		{},
		{84.2, 28.7},
	}

	points := geometryFromWire(pairs)
	require.Len(t, points, 2)
	assert.Equal(t, entity.Coordinate{Lat: 28.5, Lng: 84.0}, points[0])
	assert.Equal(t, entity.Coordinate{Lat: 28.7, Lng: 84.2}, points[1])
}
