package sightings

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/domain/reports"
	"pet-registry/internal/ports/geo"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrBadState     = errors.New("invalid state")
)

type Service struct {
	repo       Repository
	reportsSvc *reports.Service
	geocoder   geo.Geocoder // puede ser nil; se degrada a coordenadas crudas
	now        func() time.Time
}

func NewService(repo Repository, reportsSvc *reports.Service, geocoder geo.Geocoder) *Service {
	return &Service{
		repo:       repo,
		reportsSvc: reportsSvc,
		geocoder:   geocoder,
		now:        time.Now,
	}
}

type CreateInput struct {
	ReporterName  string
	ReporterEmail string
	ReporterPhone string

	SightingDate     time.Time
	SightingTime     string
	SightingLocation string // si viene vacío se resuelve por geocoding
	Latitude         float64
	Longitude        float64

	Description     string
	PetCondition    string
	ConfidenceLevel int
	FollowUpNeeded  bool
}

// Create registra un avistamiento sobre un reporte activo. La distancia desde
// la última ubicación conocida se deriva acá, no la manda el cliente.
func (s *Service) Create(ctx context.Context, reportID string, in CreateInput) (Sighting, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return Sighting{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.ReporterName) == "" {
		return Sighting{}, ErrInvalidInput
	}
	if in.SightingDate.IsZero() {
		return Sighting{}, ErrInvalidInput
	}
	if in.ConfidenceLevel < 1 || in.ConfidenceLevel > 5 {
		return Sighting{}, ErrInvalidInput
	}

	rep, err := s.reportsSvc.GetByID(ctx, reportID)
	if err != nil {
		return Sighting{}, ErrNotFound
	}
	if rep.Status != lifecycle.ReportStatusActive {
		return Sighting{}, ErrBadState
	}

	location := strings.TrimSpace(in.SightingLocation)
	if location == "" {
		location = s.resolveAddress(ctx, in.Latitude, in.Longitude)
	}

	sg := Sighting{
		ID:                   uuid.NewString(),
		ReportID:             reportID,
		PetID:                rep.PetID,
		ReporterName:         strings.TrimSpace(in.ReporterName),
		ReporterEmail:        strings.TrimSpace(in.ReporterEmail),
		ReporterPhone:        strings.TrimSpace(in.ReporterPhone),
		SightingDate:         in.SightingDate,
		SightingTime:         strings.TrimSpace(in.SightingTime),
		SightingLocation:     location,
		Latitude:             in.Latitude,
		Longitude:            in.Longitude,
		Description:          strings.TrimSpace(in.Description),
		PetCondition:         strings.TrimSpace(in.PetCondition),
		ConfidenceLevel:      in.ConfidenceLevel,
		DistanceFromLastSeen: lifecycle.Distance(rep.Latitude, rep.Longitude, in.Latitude, in.Longitude),
		FollowUpNeeded:       in.FollowUpNeeded,
		Status:               StatusNew,
		CreatedAt:            s.now(),
	}

	if err := s.repo.Create(ctx, sg); err != nil {
		return Sighting{}, err
	}
	return sg, nil
}

func (s *Service) ListByReport(ctx context.Context, reportID string) ([]Sighting, error) {
	return s.repo.ListByReport(ctx, strings.TrimSpace(reportID))
}

// resolveAddress degrada a coordenadas crudas si el geocoding falla o no hay
// geocoder configurado.
func (s *Service) resolveAddress(ctx context.Context, lat, lng float64) string {
	if s.geocoder == nil {
		return geo.FallbackAddress(lat, lng)
	}
	addr, err := s.geocoder.ReverseGeocode(ctx, lat, lng)
	if err != nil || strings.TrimSpace(addr) == "" {
		return geo.FallbackAddress(lat, lng)
	}
	return addr
}
