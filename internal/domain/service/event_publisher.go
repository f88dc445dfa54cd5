package service

import (
	"context"
)

// Route lifecycle event types
const (
	RouteEventCreated = "route.created"
	RouteEventUpdated = "route.updated"
	RouteEventDeleted = "route.deleted"
)

// RouteEvent represents a route lifecycle change published for downstream
// consumers (activity feeds, sync workers).
type RouteEvent struct {
	RequestID      string  `json:"request_id,omitempty"` // For distributed tracing
	Type           string  `json:"type"`
	RouteID        string  `json:"route_id"`
	Name           string  `json:"name,omitempty"`
	Region         string  `json:"region,omitempty"`
	DistanceMeters float64 `json:"distance_meters,omitempty"`
	IsLocal        bool    `json:"is_local"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishRouteEvent publishes a route lifecycle event for async processing
	PublishRouteEvent(ctx context.Context, event *RouteEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
