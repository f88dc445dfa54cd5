package remote

import (
	"time"

	"trailforge/internal/domain/entity"
	"trailforge/internal/geo"

	"github.com/paulmach/orb"
)

// routeRecord is the wire shape of a route on the remote service. Geometry
// coordinates travel as [longitude, latitude] pairs, the reverse of the
// in-memory {lat, lng} order; conversion happens here at the boundary, in
// both directions.
type routeRecord struct {
	ID                  string      `json:"id,omitempty"`
	Name                string      `json:"name"`
	Region              string      `json:"region"`
	MinAltitude         int         `json:"minAltitude"`
	MaxAltitude         int         `json:"maxAltitude"`
	DifficultyLevel     string      `json:"difficultyLevel"`
	DistanceKm          float64     `json:"distanceKm"`
	GeometryCoordinates [][]float64 `json:"geometryCoordinates"`
	Description         string      `json:"description,omitempty"`
	TrekName            string      `json:"trekName,omitempty"`
	DurationDays        int         `json:"durationDays,omitempty"`
	IsActive            bool        `json:"isActive"`
	CreatedAt           time.Time   `json:"createdAt,omitempty"`
}

// fromEntity converts an in-memory route into its wire shape.
func fromEntity(route *entity.Route) *routeRecord {
	return &routeRecord{
		ID:                  route.ID,
		Name:                route.Name,
		Region:              route.Region,
		MinAltitude:         route.MinAltitude,
		MaxAltitude:         route.MaxAltitude,
		DifficultyLevel:     route.Difficulty,
		DistanceKm:          route.DistanceMeters / 1000,
		GeometryCoordinates: geometryToWire(route.Geometry),
		Description:         route.Description,
		TrekName:            route.TrekName,
		DurationDays:        route.DurationDays,
		IsActive:            true,
		CreatedAt:           route.CreatedAt,
	}
}

// toEntity converts a wire record into an in-memory route. Derived metrics
// follow the record's distance; duration is recomputed from it.
func (r *routeRecord) toEntity() *entity.Route {
	distanceMeters := r.DistanceKm * 1000

	return &entity.Route{
		ID:              r.ID,
		Name:            r.Name,
		Geometry:        geometryFromWire(r.GeometryCoordinates),
		DistanceMeters:  distanceMeters,
		DurationSeconds: geo.EstimatedDurationSeconds(distanceMeters),
		Difficulty:      r.DifficultyLevel,
		Region:          r.Region,
		TrekName:        r.TrekName,
		MinAltitude:     r.MinAltitude,
		MaxAltitude:     r.MaxAltitude,
		Description:     r.Description,
		DurationDays:    r.DurationDays,
		CreatedAt:       r.CreatedAt,
		IsLocal:         false,
	}
}

// geometryToWire maps {lat, lng} coordinates to wire [lng, lat] pairs.
func geometryToWire(points []entity.Coordinate) [][]float64 {
	line := make(orb.LineString, 0, len(points))
	for _, point := range points {
		line = append(line, orb.Point{point.Lng, point.Lat})
	}

	wire := make([][]float64, 0, len(line))
	for _, point := range line {
		wire = append(wire, []float64{point.Lon(), point.Lat()})
	}

	return wire
}

// geometryFromWire maps wire [lng, lat] pairs back to {lat, lng}
// coordinates. Malformed pairs are skipped.
func geometryFromWire(pairs [][]float64) []entity.Coordinate {
	points := make([]entity.Coordinate, 0, len(pairs))
	for _, pair := range pairs {
		if len(pair) < 2 {
			continue
		}

		point := orb.Point{pair[0], pair[1]}
		points = append(points, entity.Coordinate{Lat: point.Lat(), Lng: point.Lon()})
	}

	return points
}
