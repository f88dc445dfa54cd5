// Package editor implements the ephemeral point buffer that backs active
// drawing and editing. A Buffer is independent of any stored route until it
// is committed; discarding it never touches the route collection.
package editor

import (
	"trailforge/internal/domain/entity"
	"trailforge/internal/geo"

	"github.com/paulmach/orb"
)

// MinRoutePoints is the smallest geometry a committable route may have.
// DeletePoint refuses to shrink the buffer below it.
const MinRoutePoints = 2

// insertOffset is applied when a default point is inserted after the tail
// and no successor exists to take a midpoint with.
const insertOffset = 0.001

const noFocus = -1

// Buffer is an ordered coordinate sequence under active editing, with an
// optional focused index consumed by the map collaborator for pan/zoom.
// Buffer is not safe for concurrent use; callers serialize access.
type Buffer struct {
	points  []entity.Coordinate
	focused int
}

// NewBuffer returns an empty buffer, ready for draw mode.
func NewBuffer() *Buffer {
	return &Buffer{focused: noFocus}
}

// Start replaces the buffer contents. Pass an existing route's geometry to
// seed edit mode, or nil to reset for draw mode. Focus is cleared.
func (b *Buffer) Start(initial []entity.Coordinate) {
	b.points = make([]entity.Coordinate, len(initial))
	copy(b.points, initial)
	b.focused = noFocus
}

// Len returns the number of points in the buffer.
func (b *Buffer) Len() int {
	return len(b.points)
}

// Points returns a copy of the buffered coordinates.
func (b *Buffer) Points() []entity.Coordinate {
	points := make([]entity.Coordinate, len(b.points))
	copy(points, b.points)

	return points
}

// Point returns the coordinate at index.
func (b *Buffer) Point(index int) (entity.Coordinate, bool) {
	if index < 0 || index >= len(b.points) {
		return entity.Coordinate{}, false
	}

	return b.points[index], true
}

// AppendPoint pushes a coordinate to the tail ("click to add point").
func (b *Buffer) AppendPoint(c entity.Coordinate) {
	b.points = append(b.points, c)
}

// InsertPoint inserts c before index, shifting subsequent points by one.
// index must be in [0, Len()]; anything else is a no-op.
func (b *Buffer) InsertPoint(index int, c entity.Coordinate) bool {
	if index < 0 || index > len(b.points) {
		return false
	}

	b.points = append(b.points, entity.Coordinate{})
	copy(b.points[index+1:], b.points[index:])
	b.points[index] = c

	return true
}

// InsertAfter inserts a default coordinate after index: the midpoint with
// the successor when one exists, otherwise the point offset by
// (+0.001, +0.001). Returns the inserted coordinate.
func (b *Buffer) InsertAfter(index int) (entity.Coordinate, bool) {
	if index < 0 || index >= len(b.points) {
		return entity.Coordinate{}, false
	}

	anchor := b.points[index]
	c := entity.Coordinate{Lat: anchor.Lat + insertOffset, Lng: anchor.Lng + insertOffset}
	if index+1 < len(b.points) {
		next := b.points[index+1]
		c = entity.Coordinate{Lat: (anchor.Lat + next.Lat) / 2, Lng: (anchor.Lng + next.Lng) / 2}
	}

	return c, b.InsertPoint(index+1, c)
}

// UpdatePoint replaces the point at index in place (drag-to-reposition).
// Out-of-range indices are a no-op.
func (b *Buffer) UpdatePoint(index int, c entity.Coordinate) bool {
	if index < 0 || index >= len(b.points) {
		return false
	}

	b.points[index] = c

	return true
}

// DeletePoint removes the point at index. The call is rejected as a no-op
// when the resulting length would drop below MinRoutePoints; this guard
// lives in the engine, not only in the calling UI.
func (b *Buffer) DeletePoint(index int) bool {
	if index < 0 || index >= len(b.points) {
		return false
	}
	if len(b.points)-1 < MinRoutePoints {
		return false
	}

	b.points = append(b.points[:index], b.points[index+1:]...)
	b.clampFocus()

	return true
}

// MovePoint removes the point at from and reinserts it at to, preserving
// the length and the multiset of points. Either index out of range is a
// no-op.
func (b *Buffer) MovePoint(from, to int) bool {
	if from < 0 || from >= len(b.points) || to < 0 || to >= len(b.points) {
		return false
	}
	if from == to {
		return true
	}

	moved := b.points[from]
	b.points = append(b.points[:from], b.points[from+1:]...)

	b.points = append(b.points, entity.Coordinate{})
	copy(b.points[to+1:], b.points[to:])
	b.points[to] = moved

	return true
}

// UndoLast removes the last point if any.
func (b *Buffer) UndoLast() bool {
	if len(b.points) == 0 {
		return false
	}

	b.points = b.points[:len(b.points)-1]
	b.clampFocus()

	return true
}

// Clear empties the buffer and drops focus.
func (b *Buffer) Clear() {
	b.points = b.points[:0]
	b.focused = noFocus
}

// Focus marks the point at index as focused for the map collaborator.
// Out-of-range indices are a no-op.
func (b *Buffer) Focus(index int) bool {
	if index < 0 || index >= len(b.points) {
		return false
	}

	b.focused = index

	return true
}

// ClearFocus drops the focused index.
func (b *Buffer) ClearFocus() {
	b.focused = noFocus
}

// FocusedIndex returns the focused index, or false when nothing is focused.
func (b *Buffer) FocusedIndex() (int, bool) {
	if b.focused == noFocus {
		return 0, false
	}

	return b.focused, true
}

// FocusedPoint returns the focused coordinate, or false when nothing is
// focused.
func (b *Buffer) FocusedPoint() (entity.Coordinate, bool) {
	if b.focused == noFocus {
		return entity.Coordinate{}, false
	}

	return b.points[b.focused], true
}

// Waypoints derives the Start/End/Point N labels from the current order.
// Labels are recomputed on every call, never stored.
func (b *Buffer) Waypoints() []entity.Waypoint {
	return entity.WaypointsFor(b.points)
}

// DistanceMeters returns the geodesic length of the buffered sequence.
func (b *Buffer) DistanceMeters() float64 {
	return geo.DistanceMeters(b.points)
}

// Bound returns the bounding box of the buffered points for map fit.
func (b *Buffer) Bound() (orb.Bound, bool) {
	return geo.Bound(b.points)
}

// clampFocus drops focus when the focused point no longer exists.
func (b *Buffer) clampFocus() {
	if b.focused >= len(b.points) {
		b.focused = noFocus
	}
}
