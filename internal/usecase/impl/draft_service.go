package impl

import (
	"context"
	"log/slog"
	"sync"

	"trailforge/internal/domain/entity"
	domainerrors "trailforge/internal/domain/errors"
	"trailforge/internal/editor"
	"trailforge/internal/geo"
	"trailforge/internal/usecase"

	"github.com/google/uuid"
)

// draft binds one edit buffer to its session id and, in edit mode, to the
// route it was seeded from.
type draft struct {
	id      string
	routeID string // empty in draw mode
	buffer  *editor.Buffer
}

type draftService struct {
	mu     sync.RWMutex
	drafts map[string]*draft

	routes usecase.RouteUsecase
	logger *slog.Logger
}

// NewDraftService creates the draft session registry. Commits go through
// the persistence coordinator; nothing else ever touches the collection.
func NewDraftService(routes usecase.RouteUsecase, logger *slog.Logger) usecase.DraftUsecase {
	return &draftService{
		drafts: make(map[string]*draft),
		routes: routes,
		logger: logger,
	}
}

// StartDraw opens an empty drafting session.
func (s *draftService) StartDraw() string {
	d := &draft{
		id:     uuid.NewString(),
		buffer: editor.NewBuffer(),
	}

	s.mu.Lock()
	s.drafts[d.id] = d
	s.mu.Unlock()

	return d.id
}

// StartEdit opens a session seeded with the stored route's geometry. The
// stored route itself stays untouched until commit.
func (s *draftService) StartEdit(routeID string) (string, error) {
	route, err := s.routes.Get(routeID)
	if err != nil {
		return "", err
	}

	buffer := editor.NewBuffer()
	buffer.Start(route.Geometry)

	d := &draft{
		id:      uuid.NewString(),
		routeID: route.ID,
		buffer:  buffer,
	}

	s.mu.Lock()
	s.drafts[d.id] = d
	s.mu.Unlock()

	return d.id, nil
}

// Discard drops the session; buffered points are lost by design.
func (s *draftService) Discard(draftID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.drafts[draftID]; !ok {
		return domainerrors.ErrDraftNotFound
	}
	delete(s.drafts, draftID)

	return nil
}

func (s *draftService) View(draftID string) (*usecase.DraftView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return nil, domainerrors.ErrDraftNotFound
	}

	distance := d.buffer.DistanceMeters()
	view := &usecase.DraftView{
		ID:              d.id,
		RouteID:         d.routeID,
		Waypoints:       d.buffer.Waypoints(),
		DistanceMeters:  distance,
		DurationSeconds: geo.EstimatedDurationSeconds(distance),
	}
	if index, ok := d.buffer.FocusedIndex(); ok {
		view.FocusedIndex = &index
	}

	return view, nil
}

func (s *draftService) AppendPoint(draftID string, c entity.Coordinate) error {
	return s.withDraft(draftID, func(d *draft) error {
		d.buffer.AppendPoint(c)

		return nil
	})
}

func (s *draftService) InsertPoint(draftID string, index int, c entity.Coordinate) error {
	return s.withDraft(draftID, func(d *draft) error {
		if !d.buffer.InsertPoint(index, c) {
			return domainerrors.ErrPointOutOfRange
		}

		return nil
	})
}

func (s *draftService) InsertAfter(draftID string, index int) (entity.Coordinate, error) {
	var inserted entity.Coordinate
	err := s.withDraft(draftID, func(d *draft) error {
		c, ok := d.buffer.InsertAfter(index)
		if !ok {
			return domainerrors.ErrPointOutOfRange
		}
		inserted = c

		return nil
	})

	return inserted, err
}

func (s *draftService) UpdatePoint(draftID string, index int, c entity.Coordinate) error {
	return s.withDraft(draftID, func(d *draft) error {
		if !d.buffer.UpdatePoint(index, c) {
			return domainerrors.ErrPointOutOfRange
		}

		return nil
	})
}

// DeletePoint refuses to shrink the geometry below two points; the guard
// lives in the buffer itself, not in the calling UI.
func (s *draftService) DeletePoint(draftID string, index int) error {
	return s.withDraft(draftID, func(d *draft) error {
		if index < 0 || index >= d.buffer.Len() {
			return domainerrors.ErrPointOutOfRange
		}
		if !d.buffer.DeletePoint(index) {
			return domainerrors.ErrGeometryTooShort
		}

		return nil
	})
}

func (s *draftService) MovePoint(draftID string, from, to int) error {
	return s.withDraft(draftID, func(d *draft) error {
		if !d.buffer.MovePoint(from, to) {
			return domainerrors.ErrPointOutOfRange
		}

		return nil
	})
}

func (s *draftService) UndoLast(draftID string) error {
	return s.withDraft(draftID, func(d *draft) error {
		d.buffer.UndoLast()

		return nil
	})
}

func (s *draftService) ClearPoints(draftID string) error {
	return s.withDraft(draftID, func(d *draft) error {
		d.buffer.Clear()

		return nil
	})
}

func (s *draftService) Focus(draftID string, index int) error {
	return s.withDraft(draftID, func(d *draft) error {
		if !d.buffer.Focus(index) {
			return domainerrors.ErrPointOutOfRange
		}

		return nil
	})
}

func (s *draftService) Focused(draftID string) (*usecase.FocusView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return nil, domainerrors.ErrDraftNotFound
	}

	index, ok := d.buffer.FocusedIndex()
	if !ok {
		return nil, nil
	}
	point, _ := d.buffer.Point(index)

	return &usecase.FocusView{Index: index, Point: point}, nil
}

func (s *draftService) Bound(draftID string) (*usecase.BoundView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return nil, domainerrors.ErrDraftNotFound
	}

	bound, ok := d.buffer.Bound()
	if !ok {
		return nil, nil
	}

	return &usecase.BoundView{
		MinLat: bound.Min.Lat(),
		MinLng: bound.Min.Lon(),
		MaxLat: bound.Max.Lat(),
		MaxLng: bound.Max.Lon(),
	}, nil
}

// Commit persists a draw-mode session as a new route. The buffered points
// become the create-input geometry; the session is discarded on success.
func (s *draftService) Commit(ctx context.Context, draftID string, input *usecase.CreateRouteInput) (*entity.Route, error) {
	s.mu.RLock()
	d, ok := s.drafts[draftID]
	s.mu.RUnlock()
	if !ok {
		return nil, domainerrors.ErrDraftNotFound
	}

	committed := *input
	committed.Geometry = d.buffer.Points()

	route, err := s.routes.Create(ctx, &committed)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()

	return route, nil
}

// CommitUpdate persists an edit-mode session against its source route.
func (s *draftService) CommitUpdate(ctx context.Context, draftID string, input *usecase.UpdateRouteInput) (*entity.Route, error) {
	s.mu.RLock()
	d, ok := s.drafts[draftID]
	s.mu.RUnlock()
	if !ok {
		return nil, domainerrors.ErrDraftNotFound
	}
	if d.routeID == "" {
		return nil, domainerrors.ErrRouteNotFound
	}

	committed := *input
	committed.Geometry = d.buffer.Points()

	route, err := s.routes.Update(ctx, d.routeID, &committed)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.drafts, draftID)
	s.mu.Unlock()

	return route, nil
}

// withDraft runs fn while holding the registry lock.
func (s *draftService) withDraft(draftID string, fn func(*draft) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[draftID]
	if !ok {
		return domainerrors.ErrDraftNotFound
	}

	return fn(d)
}
