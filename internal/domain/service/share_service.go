package service

import (
	"trailforge/internal/domain/entity"
)

// ShareService defines the interface for route sharing artifacts
type ShareService interface {
	// GenerateRouteQR renders a QR code encoding a shareable reference to
	// the route.
	GenerateRouteQR(route *entity.Route) ([]byte, error)

	// ParseRouteQR parses QR code data and returns the route id.
	ParseRouteQR(qrData string) (string, error)
}
