// Package remote implements the RouteRepository port against the remote
// route service's REST API. Every non-success response is returned as a
// structured *repository.RemoteError so the coordinator's classifier works
// over values, not panics.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"trailforge/config"
	"trailforge/internal/domain/entity"
	"trailforge/internal/domain/repository"
	"trailforge/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

type routeRepository struct {
	baseURL    string
	httpClient *http.Client
	gate       service.AuthGate
	logger     *slog.Logger
}

// NewRouteRepository creates the HTTP adapter. The auth gate supplies the
// bearer token per request so a re-authentication mid-session takes effect
// without rebuilding the client.
func NewRouteRepository(cfg *config.Config, gate service.AuthGate, logger *slog.Logger) repository.RouteRepository {
	timeout := defaultTimeout
	if cfg.Remote != nil && cfg.Remote.Timeout > 0 {
		timeout = cfg.Remote.Timeout
	}

	baseURL := ""
	if cfg.Remote != nil {
		baseURL = strings.TrimRight(cfg.Remote.BaseURL, "/")
	}

	return &routeRepository{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		gate:       gate,
		logger:     logger,
	}
}

func (r *routeRepository) CreateRoute(ctx context.Context, route *entity.Route) (*entity.Route, error) {
	var record routeRecord
	if err := r.do(ctx, http.MethodPost, "/api/v1/routes", fromEntity(route), &record); err != nil {
		return nil, err
	}

	return record.toEntity(), nil
}

func (r *routeRepository) UpdateRoute(ctx context.Context, id string, route *entity.Route) (*entity.Route, error) {
	var record routeRecord
	if err := r.do(ctx, http.MethodPut, "/api/v1/routes/"+id, fromEntity(route), &record); err != nil {
		return nil, err
	}

	return record.toEntity(), nil
}

func (r *routeRepository) DeleteRoute(ctx context.Context, id string) error {
	return r.do(ctx, http.MethodDelete, "/api/v1/routes/"+id, nil, nil)
}

func (r *routeRepository) ListRoutes(ctx context.Context) ([]*entity.Route, error) {
	var records []routeRecord
	if err := r.do(ctx, http.MethodGet, "/api/v1/routes", nil, &records); err != nil {
		return nil, err
	}

	routes := make([]*entity.Route, 0, len(records))
	for i := range records {
		routes = append(routes, records[i].toEntity())
	}

	return routes, nil
}

func (r *routeRepository) FindRouteByID(ctx context.Context, id string) (*entity.Route, error) {
	var record routeRecord
	if err := r.do(ctx, http.MethodGet, "/api/v1/routes/"+id, nil, &record); err != nil {
		return nil, err
	}

	return record.toEntity(), nil
}

func (r *routeRepository) Regions(ctx context.Context) ([]string, error) {
	var regions []string
	if err := r.do(ctx, http.MethodGet, "/api/v1/routes/regions", nil, &regions); err != nil {
		return nil, err
	}

	return regions, nil
}

func (r *routeRepository) TrekNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.do(ctx, http.MethodGet, "/api/v1/routes/trek-names", nil, &names); err != nil {
		return nil, err
	}

	return names, nil
}

func (r *routeRepository) DifficultyLevels(ctx context.Context) ([]string, error) {
	var levels []string
	if err := r.do(ctx, http.MethodGet, "/api/v1/routes/difficulty-levels", nil, &levels); err != nil {
		return nil, err
	}

	return levels, nil
}

// do executes one request. Transport faults become a RemoteError with
// status 0; non-2xx responses carry the status and the response message.
func (r *routeRepository) do(ctx context.Context, method, path string, body, out any) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.baseURL+path, payload)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := r.gate.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return &repository.RemoteError{Message: err.Error()}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &repository.RemoteError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		r.logger.Debug("Remote route service returned non-success",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)

		return &repository.RemoteError{
			StatusCode: resp.StatusCode,
			Message:    responseMessage(raw, resp.StatusCode),
		}
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &repository.RemoteError{StatusCode: resp.StatusCode, Message: "malformed response: " + err.Error()}
	}

	return nil
}

// responseMessage extracts a human-readable message from an error body,
// falling back to the raw body or the status text.
func responseMessage(raw []byte, statusCode int) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}

	if text := strings.TrimSpace(string(raw)); text != "" {
		return text
	}

	return http.StatusText(statusCode)
}
