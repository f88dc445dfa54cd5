// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalIDPrefix marks routes that only exist on this device. A route whose
// id carries the prefix is never sent to the remote route service.
const LocalIDPrefix = "local-"

// Coordinate represents a geographic point as latitude/longitude in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Route is a persisted trekking route: an ordered geometry of at least two
// coordinates plus user-supplied metadata and derived metrics.
//
// DistanceMeters and DurationSeconds are always recomputed from Geometry,
// never mutated independently.
type Route struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Geometry        []Coordinate `json:"geometry"`
	DistanceMeters  float64      `json:"distance_meters"`
	DurationSeconds float64      `json:"duration_seconds"`
	Difficulty      string       `json:"difficulty"`
	Region          string       `json:"region,omitempty"`
	TrekName        string       `json:"trek_name,omitempty"`
	MinAltitude     int          `json:"min_altitude,omitempty"`
	MaxAltitude     int          `json:"max_altitude,omitempty"`
	Description     string       `json:"description,omitempty"`
	DurationDays    int          `json:"duration_days,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	IsLocal         bool         `json:"is_local"`
}

// NewLocalID generates a fresh route id carrying the local prefix.
func NewLocalID() string {
	return LocalIDPrefix + uuid.NewString()
}

// IsLocalID reports whether the id belongs to a device-local route.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, LocalIDPrefix)
}

// Waypoints returns the derived display labels for the route geometry.
func (r *Route) Waypoints() []Waypoint {
	return WaypointsFor(r.Geometry)
}

// Clone returns a deep copy of the route. Mutating the copy never affects
// the collection entry the original came from.
func (r *Route) Clone() *Route {
	clone := *r
	clone.Geometry = make([]Coordinate, len(r.Geometry))
	copy(clone.Geometry, r.Geometry)

	return &clone
}
