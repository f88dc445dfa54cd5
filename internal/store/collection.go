// Package store holds the authoritative in-memory collection of persisted
// and local routes, plus the single selection the UI renders around.
package store

import (
	"trailforge/internal/domain/entity"
)

// Collection is an insertion-ordered set of routes keyed by id with at most
// one selected entry. The selection, when set, always references a route
// present in the collection. Collection is not safe for concurrent use;
// callers serialize access.
type Collection struct {
	routes     []*entity.Route
	selectedID string
}

// NewCollection returns an empty collection with no selection.
func NewCollection() *Collection {
	return &Collection{}
}

// Load replaces the collection contents. The first route becomes selected;
// an empty load clears the selection.
func (c *Collection) Load(routes []*entity.Route) {
	c.routes = make([]*entity.Route, 0, len(routes))
	c.routes = append(c.routes, routes...)

	c.selectedID = ""
	if len(c.routes) > 0 {
		c.selectedID = c.routes[0].ID
	}
}

// Select sets the selection to id. Ids not present in the collection leave
// the selection unchanged.
func (c *Collection) Select(id string) bool {
	if _, ok := c.Get(id); !ok {
		return false
	}

	c.selectedID = id

	return true
}

// SelectedID returns the selected route id, or false when nothing is
// selected.
func (c *Collection) SelectedID() (string, bool) {
	if c.selectedID == "" {
		return "", false
	}

	return c.selectedID, true
}

// Selected returns the selected route, or false when nothing is selected.
func (c *Collection) Selected() (*entity.Route, bool) {
	if c.selectedID == "" {
		return nil, false
	}

	return c.Get(c.selectedID)
}

// Get returns the route with the given id.
func (c *Collection) Get(id string) (*entity.Route, bool) {
	for _, route := range c.routes {
		if route.ID == id {
			return route, true
		}
	}

	return nil, false
}

// Upsert inserts the route, or replaces the existing entry with the same id
// in its original slot.
func (c *Collection) Upsert(route *entity.Route) {
	for i, existing := range c.routes {
		if existing.ID == route.ID {
			c.routes[i] = route

			return
		}
	}

	c.routes = append(c.routes, route)
}

// Remove deletes the route with the given id. Removing the selected route
// clears the selection; removing any other route leaves it untouched.
func (c *Collection) Remove(id string) bool {
	for i, route := range c.routes {
		if route.ID == id {
			c.routes = append(c.routes[:i], c.routes[i+1:]...)
			if c.selectedID == id {
				c.selectedID = ""
			}

			return true
		}
	}

	return false
}

// Clear empties the collection and the selection.
func (c *Collection) Clear() {
	c.routes = nil
	c.selectedID = ""
}

// Routes returns the routes in insertion order.
func (c *Collection) Routes() []*entity.Route {
	routes := make([]*entity.Route, len(c.routes))
	copy(routes, c.routes)

	return routes
}

// LocalRoutes returns only the device-local routes, in insertion order.
func (c *Collection) LocalRoutes() []*entity.Route {
	var locals []*entity.Route
	for _, route := range c.routes {
		if route.IsLocal {
			locals = append(locals, route)
		}
	}

	return locals
}

// Len returns the number of routes in the collection.
func (c *Collection) Len() int {
	return len(c.routes)
}
