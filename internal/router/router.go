package router

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"strings"

	blobmem "pet-registry/internal/adapters/blob/memory"
	blobs3 "pet-registry/internal/adapters/blob/s3"
	mem "pet-registry/internal/adapters/storage/memory"
	pg "pet-registry/internal/adapters/storage/postgres"
	"pet-registry/internal/domain/media"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/profiles"
	"pet-registry/internal/domain/reports"
	"pet-registry/internal/domain/sightings"
	"pet-registry/internal/middleware"
	"pet-registry/internal/platform/logger"
	"pet-registry/internal/platform/metrics"
	"pet-registry/internal/ports/auth"
	"pet-registry/internal/ports/blob"
	"pet-registry/internal/ports/geo"

	_ "pet-registry/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: si viene, se usa tal cual. Si no, por env (BLOB_DRIVER).
	BlobStore blob.Store

	// Opcional: si es nil, los avistamientos guardan la dirección cruda.
	Geocoder geo.Geocoder

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	var (
		profileRepo  profiles.Repository
		petRepo      pets.Repository
		reportRepo   reports.Repository
		sightingRepo sightings.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres open failed, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		profileRepo = pg.NewProfilesRepo(db)
		petRepo = pg.NewPetsRepo(db)
		reportRepo = pg.NewReportsRepo(db)
		sightingRepo = pg.NewSightingsRepo(db)
	} else {
		profileRepo = mem.NewProfilesRepo()
		petRepo = mem.NewPetsRepo()
		reportRepo = mem.NewReportsRepo()
		sightingRepo = mem.NewSightingsRepo()
	}

	store := opts.BlobStore
	if store == nil {
		store = openBlobStore(log)
	}

	// Services por módulo
	profilesSvc := profiles.NewService(profileRepo)
	petsSvc := pets.NewService(petRepo)
	reportsSvc := reports.NewService(reportRepo, petsSvc, profilesSvc)
	sightingsSvc := sightings.NewService(sightingRepo, reportsSvc, opts.Geocoder)
	mediaSvc := media.NewService(store, log)

	// Rutas por módulo
	profiles.RegisterRoutes(r, profilesSvc)
	pets.RegisterRoutes(r, petsSvc, profilesSvc)
	reports.RegisterRoutes(r, reportsSvc)
	sightings.RegisterRoutes(r, sightingsSvc)
	media.RegisterRoutes(r, mediaSvc, petsSvc, reportsSvc)

	return r
}

func openBlobStore(log logger.Logger) blob.Store {
	if strings.EqualFold(os.Getenv("BLOB_DRIVER"), "s3") {
		s, err := blobs3.OpenFromEnv(context.Background())
		if err == nil {
			return s
		}
		log.Warn("s3 blob store open failed, falling back to memory", map[string]any{"error": err.Error()})
	}
	return blobmem.NewStore()
}
