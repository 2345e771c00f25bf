package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-registry/internal/domain/contact"
	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/ports/auth"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
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

// Ensure devuelve el perfil del principal, creándolo si no existe.
// Equivale al check-and-create del primer sign-in.
func (s *Service) Ensure(ctx context.Context, claims auth.Claims) (Profile, error) {
	userID := strings.TrimSpace(claims.UserID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, userID)
	if err == nil {
		return p, nil
	}

	now := s.now()
	p = Profile{
		ID:        userID,
		Name:      strings.TrimSpace(claims.Name),
		Email:     strings.TrimSpace(claims.Email),
		Photo:     strings.TrimSpace(claims.Photo),
		Status:    lifecycle.ProfileActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Profile{}, ErrInvalidInput
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Profile{}, ErrNotFound
	}
	return p, nil
}

// UpdateInput con punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Name    *string
	Phone   *string
	Address *string
	Photo   *string
}

func (s *Service) Update(ctx context.Context, userID string, in UpdateInput) (Profile, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Profile{}, ErrInvalidInput
	}

	p, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, ErrNotFound
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return Profile{}, ErrInvalidInput
		}
		p.Name = name
	}
	if in.Phone != nil {
		phone := strings.TrimSpace(*in.Phone)
		if phone != "" && !contact.ValidPhone(phone) {
			return Profile{}, ErrInvalidInput
		}
		p.Phone = phone
	}
	if in.Address != nil {
		p.Address = strings.TrimSpace(*in.Address)
	}
	if in.Photo != nil {
		p.Photo = strings.TrimSpace(*in.Photo)
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Profile{}, err
	}
	return p, nil
}
