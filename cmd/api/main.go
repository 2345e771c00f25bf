package main

import (
	"net/http"
	"os"
	"time"

	"pet-registry/internal/adapters/auth/idp"
	"pet-registry/internal/adapters/geo/nominatim"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/ports/auth"
	"pet-registry/internal/ports/geo"
	"pet-registry/internal/router"
)

// @title Pet Registry API
// @version 1.0
// @description Registro de mascotas y reportes de perdidos/encontrados.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	// Con IDP_BASE_URL + IDP_API_KEY verifica tokens reales;
	// sin config queda en modo dev (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if base := os.Getenv("IDP_BASE_URL"); base != "" {
		client := idp.NewClient(idp.Config{
			BaseURL: base,
			APIKey:  os.Getenv("IDP_API_KEY"),
		})
		verifier = idp.NewVerifier(client)
	}

	var geocoder geo.Geocoder
	if os.Getenv("GEOCODER_DISABLED") == "" {
		g, err := nominatim.New(os.Getenv("NOMINATIM_BASE_URL"), os.Getenv("NOMINATIM_USER_AGENT"))
		if err != nil {
			log.Warn("nominatim init failed, sightings keep raw coordinates", map[string]any{"error": err.Error()})
		} else {
			geocoder = g
		}
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		Geocoder:     geocoder,
		Logger:       log,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second, // uploads multipart tardan más
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
