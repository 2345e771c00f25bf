package geo

import (
	"context"
	"fmt"
)

// Geocoder resuelve coordenadas a una dirección legible.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// FallbackAddress es la dirección degradada cuando el geocoding falla.
func FallbackAddress(lat, lng float64) string {
	return fmt.Sprintf("Lat: %.6f, Lng: %.6f", lat, lng)
}
