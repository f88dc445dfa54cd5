// Package geo provides pure geodesic helpers for route geometry. All
// functions are stateless and side-effect free.
package geo

import (
	"math"

	"trailforge/internal/domain/entity"

	"github.com/paulmach/orb"
)

const (
	earthRadiusMeters = 6371000.0

	// Heuristic walking-pace placeholder: 72 seconds per kilometer,
	// i.e. an assumed average travel speed of 50 km/h. Not measured
	// travel time and unrelated to the user-supplied duration-days field.
	secondsPerKm = 72.0
)

// SegmentMeters returns the great-circle distance between two points using
// the haversine formula. Symmetric: SegmentMeters(a, b) == SegmentMeters(b, a).
func SegmentMeters(a, b entity.Coordinate) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	deltaLat := (b.Lat - a.Lat) * math.Pi / 180
	deltaLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(latA)*math.Cos(latB)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// DistanceMeters sums the consecutive segment distances of an ordered point
// sequence. Zero or one points yield 0.
func DistanceMeters(points []entity.Coordinate) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += SegmentMeters(points[i-1], points[i])
	}

	return total
}

// EstimatedDurationSeconds converts a distance in meters into the heuristic
// travel-time estimate: (d / 1000) * 72.
func EstimatedDurationSeconds(distanceMeters float64) float64 {
	return distanceMeters / 1000 * secondsPerKm
}

// Bound returns the bounding box enclosing the points, for map fit/pan.
// The second return value is false when the sequence is empty.
func Bound(points []entity.Coordinate) (orb.Bound, bool) {
	if len(points) == 0 {
		return orb.Bound{}, false
	}

	multi := make(orb.MultiPoint, 0, len(points))
	for _, point := range points {
		multi = append(multi, orb.Point{point.Lng, point.Lat})
	}

	return multi.Bound(), true
}
