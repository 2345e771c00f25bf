package profiles

import (
	"time"

	"pet-registry/internal/domain/lifecycle"
)

// Profile es el documento de usuario, uno por principal autenticado.
// Se crea en el primer sign-in si no existe.
type Profile struct {
	ID      string
	Name    string
	Email   string
	Phone   string
	Photo   string
	Address string
	Status  lifecycle.ProfileStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}
