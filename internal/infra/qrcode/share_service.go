package qrcode

import (
	"encoding/json"
	"fmt"

	"trailforge/internal/domain/entity"
	"trailforge/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type shareService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	RouteID string `json:"route_id"`
	Type    string `json:"type"`
}

// NewShareService creates a new route share service instance
func NewShareService(size int, errorCorrectionLevel string) service.ShareService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &shareService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateRouteQR generates a QR code for sharing a route
func (s *shareService) GenerateRouteQR(route *entity.Route) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		RouteID: route.ID,
		Type:    "route",
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseRouteQR parses QR code data and returns the route ID
func (s *shareService) ParseRouteQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "route" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.RouteID == "" {
		return "", fmt.Errorf("missing route ID in QR code data")
	}

	return data.RouteID, nil
}
