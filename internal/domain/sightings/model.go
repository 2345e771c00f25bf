package sightings

import "time"

// SightingStatus del avistamiento.
// @Enum 1=new, 2=reviewed, 3=discarded
type SightingStatus int

const (
	StatusNew       SightingStatus = 1
	StatusReviewed  SightingStatus = 2
	StatusDiscarded SightingStatus = 3
)

// Sighting es un avistamiento reportado por terceros sobre un reporte activo.
// El que avista no necesita cuenta: deja sus datos de contacto en el documento.
type Sighting struct {
	ID       string
	ReportID string
	PetID    string

	ReporterName  string
	ReporterEmail string
	ReporterPhone string

	SightingDate     time.Time
	SightingTime     string // HH:MM
	SightingLocation string
	Latitude         float64
	Longitude        float64

	Description  string
	PetCondition string

	// 1 (dudoso) a 5 (seguro)
	ConfidenceLevel int

	// km desde la última ubicación conocida del reporte, derivado al crear
	DistanceFromLastSeen float64

	FollowUpNeeded bool
	Status         SightingStatus

	CreatedAt time.Time
}
