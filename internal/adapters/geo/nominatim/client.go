// Package nominatim resuelve coordenadas a direcciones legibles usando la
// API pública de Nominatim (OpenStreetMap).
package nominatim

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"pet-registry/internal/platform/httpclient"
	"pet-registry/internal/ports/geo"
)

const (
	DefaultBaseURL = "https://nominatim.openstreetmap.org"
	DefaultTimeout = 15 * time.Second
)

// Geocoder implementa geo.Geocoder sobre Nominatim. Nominatim pide un
// User-Agent identificable; sin él responde 403.
type Geocoder struct {
	client    *httpclient.Client
	userAgent string
}

func New(baseURL, userAgent string) (*Geocoder, error) {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = "pet-registry/1.0"
	}
	c, err := httpclient.NewWithBaseURL(baseURL, DefaultTimeout)
	if err != nil {
		return nil, err
	}
	return &Geocoder{client: c, userAgent: userAgent}, nil
}

// NewWithClient permite inyectar el http client (para tests).
func NewWithClient(c *httpclient.Client, userAgent string) *Geocoder {
	if strings.TrimSpace(userAgent) == "" {
		userAgent = "pet-registry/1.0"
	}
	return &Geocoder{client: c, userAgent: userAgent}
}

func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.6f", lat))
	q.Set("lon", fmt.Sprintf("%.6f", lng))
	q.Set("format", "jsonv2")
	q.Set("accept-language", "es")

	var out struct {
		DisplayName string `json:"display_name"`
	}
	err := g.client.DoJSON(ctx, "GET", "/reverse?"+q.Encode(), map[string]string{
		"User-Agent": g.userAgent,
	}, nil, &out)
	if err != nil {
		return "", err
	}

	name := strings.TrimSpace(out.DisplayName)
	if name == "" {
		return geo.FallbackAddress(lat, lng), nil
	}
	return name, nil
}
