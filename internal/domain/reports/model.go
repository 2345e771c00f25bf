package reports

import (
	"time"

	"pet-registry/internal/domain/lifecycle"
)

// Report es un incidente publicado sobre una mascota (perdida, encontrada,
// en adopción). Referencia a la mascota y su dueño por id; el enriquecimiento
// (nombre del dueño, foto de la mascota) se computa al leer, nunca se guarda.
type Report struct {
	ID          string
	PetID       string
	OwnerUserID string

	ReportType lifecycle.ReportType

	IncidentDate     time.Time
	IncidentTime     string // HH:MM
	LastSeenLocation string
	Latitude         float64
	Longitude        float64

	Circumstances string
	RewardAmount  float64
	Images        []string

	Status lifecycle.ReportStatus

	CreatedAt  time.Time
	ResolvedAt *time.Time
}

// MaxImages es el tope de fotos por reporte.
const MaxImages = 3

// PetInfo y OwnerInfo son los datos derivados que acompañan un reporte leído.
type PetInfo struct {
	Name         string   `json:"name"`
	Species      int      `json:"species"`
	Images       []string `json:"images"`
	ColorPrimary string   `json:"color_primary"`
	BirthDate    string   `json:"birth_date"`
}

type OwnerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// Stats agrega contadores sobre el total de reportes.
type Stats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Resolved   int `json:"resolved"`
	WithReward int `json:"with_reward"`
	LostPets   int `json:"lost_pets"`
	FoundPets  int `json:"found_pets"`
	Adoptions  int `json:"adoptions"`
}
