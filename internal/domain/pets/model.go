package pets

import (
	"time"

	"pet-registry/internal/domain/lifecycle"
)

// Pet es el perfil de una mascota registrada. Pertenece a exactamente un
// usuario y nunca se borra: el "delete" es la transición a fallecida.
type Pet struct {
	ID          string
	OwnerUserID string

	Name      string
	Species   lifecycle.Species // 1=dog, 2=cat
	BreedID   string            // id del catálogo (ej: "golden_retriever")
	BirthDate time.Time
	Gender    lifecycle.Gender // 1=male, 2=female

	ColorPrimary   string   // debe pertenecer a la selección
	ColorSecondary []string // 0..2 adicionales
	FurType        string

	Description string
	Images      []string // URLs ordenadas; la primera es la principal

	CurrentStatus lifecycle.PetStatus

	HasPedigree bool
	IsDeceased  bool
	IsNeutered  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaxImages es el tope de fotos por mascota.
const MaxImages = 5
