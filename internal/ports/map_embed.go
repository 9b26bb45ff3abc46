package ports

import "location-registry-service/internal/domain"

// Contract for addressing an external map view by coordinate.
type EmbedURLBuilder interface {
	// Return the embed URL for a committed coordinate.
	EmbedURL(c domain.Coordinate) string
}
