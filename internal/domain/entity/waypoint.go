package entity

import "fmt"

// Waypoint is a geometry coordinate augmented with a derived display label
// and order. Waypoints are never stored; they are recomputed from the
// current geometry on every read.
type Waypoint struct {
	Coordinate
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// WaypointsFor derives labels for an ordered coordinate sequence: the first
// point is "Start", the last is "End", interior points are "Point N" with N
// counted from 1.
func WaypointsFor(points []Coordinate) []Waypoint {
	waypoints := make([]Waypoint, len(points))
	for i, point := range points {
		var name string
		switch {
		case i == 0:
			name = "Start"
		case i == len(points)-1:
			name = "End"
		default:
			name = fmt.Sprintf("Point %d", i+1)
		}

		waypoints[i] = Waypoint{
			Coordinate: point,
			Name:       name,
			Order:      i,
		}
	}

	return waypoints
}
