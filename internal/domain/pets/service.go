package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-registry/internal/domain/lifecycle"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrBadState     = errors.New("invalid state")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name           string
	Species        lifecycle.Species
	BreedID        string
	BirthDate      time.Time
	Gender         lifecycle.Gender
	ColorPrimary   string
	ColorSecondary []string
	FurType        string
	Description    string
	HasPedigree    bool
	IsDeceased     bool
	IsNeutered     bool
}

func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Species != lifecycle.SpeciesDog && in.Species != lifecycle.SpeciesCat {
		return Pet{}, ErrInvalidInput
	}
	if in.Gender != lifecycle.GenderMale && in.Gender != lifecycle.GenderFemale {
		return Pet{}, ErrInvalidInput
	}
	if !KnownBreed(strings.TrimSpace(in.BreedID), in.Species) {
		return Pet{}, ErrInvalidInput
	}

	now := s.now()
	if in.BirthDate.IsZero() || !lifecycle.ValidBirthDate(in.BirthDate, now) {
		return Pet{}, ErrInvalidInput
	}
	if !ValidColorSelection(in.ColorPrimary, in.ColorSecondary) {
		return Pet{}, ErrInvalidInput
	}

	status := lifecycle.PetStatusHome
	if in.IsDeceased {
		status = lifecycle.PetStatusDeceased
	}

	p := Pet{
		ID:             uuid.NewString(),
		OwnerUserID:    ownerUserID,
		Name:           strings.TrimSpace(in.Name),
		Species:        in.Species,
		BreedID:        strings.TrimSpace(in.BreedID),
		BirthDate:      in.BirthDate,
		Gender:         in.Gender,
		ColorPrimary:   in.ColorPrimary,
		ColorSecondary: in.ColorSecondary,
		FurType:        strings.TrimSpace(in.FurType),
		Description:    strings.TrimSpace(in.Description),
		Images:         []string{},
		CurrentStatus:  status,
		HasPedigree:    in.HasPedigree,
		IsDeceased:     in.IsDeceased,
		IsNeutered:     in.IsNeutered,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

// List devuelve todas las mascotas, opcionalmente filtradas por estado.
// status 0 = sin filtro.
func (s *Service) List(ctx context.Context, status lifecycle.PetStatus) ([]Pet, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == 0 {
		return all, nil
	}

	out := make([]Pet, 0, len(all))
	for _, p := range all {
		if p.CurrentStatus == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, strings.TrimSpace(ownerUserID))
}

// UpdateInput con punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Name           *string
	BreedID        *string
	BirthDate      *time.Time
	Gender         *lifecycle.Gender
	ColorPrimary   *string
	ColorSecondary *[]string
	FurType        *string
	Description    *string
	HasPedigree    *bool
	IsNeutered     *bool
}

// UpdateProfile edita el perfil. Solo el dueño puede (chequeo server-side).
func (s *Service) UpdateProfile(ctx context.Context, petID, userID string, in UpdateInput) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if !lifecycle.IsOwner(p.OwnerUserID, userID) {
		return Pet{}, ErrForbidden
	}

	now := s.now()

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Pet{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.BreedID != nil {
		if !KnownBreed(strings.TrimSpace(*in.BreedID), p.Species) {
			return Pet{}, ErrInvalidInput
		}
		p.BreedID = strings.TrimSpace(*in.BreedID)
	}
	if in.BirthDate != nil {
		if !lifecycle.ValidBirthDate(*in.BirthDate, now) {
			return Pet{}, ErrInvalidInput
		}
		p.BirthDate = *in.BirthDate
	}
	if in.Gender != nil {
		if *in.Gender != lifecycle.GenderMale && *in.Gender != lifecycle.GenderFemale {
			return Pet{}, ErrInvalidInput
		}
		p.Gender = *in.Gender
	}

	// Colores: se validan juntos contra la selección resultante.
	primary := p.ColorPrimary
	secondary := p.ColorSecondary
	if in.ColorPrimary != nil {
		primary = *in.ColorPrimary
	}
	if in.ColorSecondary != nil {
		secondary = *in.ColorSecondary
	}
	if in.ColorPrimary != nil || in.ColorSecondary != nil {
		if !ValidColorSelection(primary, secondary) {
			return Pet{}, ErrInvalidInput
		}
		p.ColorPrimary = primary
		p.ColorSecondary = secondary
	}

	if in.FurType != nil {
		p.FurType = strings.TrimSpace(*in.FurType)
	}
	if in.Description != nil {
		p.Description = strings.TrimSpace(*in.Description)
	}
	if in.HasPedigree != nil {
		p.HasPedigree = *in.HasPedigree
	}
	if in.IsNeutered != nil {
		p.IsNeutered = *in.IsNeutered
	}

	p.UpdatedAt = now
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// SetStatus aplica una transición ya decidida por el coordinador de ciclo de
// vida (reports). No re-chequea guardas; los entrypoints de usuario sí.
func (s *Service) SetStatus(ctx context.Context, petID string, status lifecycle.PetStatus) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}

	p.CurrentStatus = status
	p.IsDeceased = status == lifecycle.PetStatusDeceased
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// MarkForAdoption: owner-only, solo desde casa.
func (s *Service) MarkForAdoption(ctx context.Context, petID, userID string) (Pet, error) {
	return s.guardedTransition(ctx, petID, userID, lifecycle.CanMarkForAdoption, lifecycle.PetStatusAdoption)
}

// RevertAdoption: owner-only, exige estar en adopción.
func (s *Service) RevertAdoption(ctx context.Context, petID, userID string) (Pet, error) {
	return s.guardedTransition(ctx, petID, userID, lifecycle.CanRevertAdoption, lifecycle.PetStatusHome)
}

// Decease es el soft-delete: la mascota pasa a fallecida, nunca se borra.
func (s *Service) Decease(ctx context.Context, petID, userID string) (Pet, error) {
	return s.guardedTransition(ctx, petID, userID, lifecycle.CanDecease, lifecycle.PetStatusDeceased)
}

func (s *Service) guardedTransition(ctx context.Context, petID, userID string, guard func(lifecycle.PetStatus) bool, to lifecycle.PetStatus) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if !lifecycle.IsOwner(p.OwnerUserID, userID) {
		return Pet{}, ErrForbidden
	}
	if !guard(p.CurrentStatus) {
		return Pet{}, ErrBadState
	}
	return s.SetStatus(ctx, petID, to)
}

// AppendImages agrega URLs ya subidas al documento, respetando MaxImages.
func (s *Service) AppendImages(ctx context.Context, petID, userID string, urls []string) (Pet, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if !lifecycle.IsOwner(p.OwnerUserID, userID) {
		return Pet{}, ErrForbidden
	}
	if len(p.Images)+len(urls) > MaxImages {
		return Pet{}, ErrInvalidInput
	}

	p.Images = append(p.Images, urls...)
	p.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

// OwnerOf expone el dueño sin acoplar otros módulos al modelo completo.
func (s *Service) OwnerOf(ctx context.Context, petID string) (string, error) {
	p, err := s.GetByID(ctx, petID)
	if err != nil {
		return "", err
	}
	return p.OwnerUserID, nil
}
