package reports

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/profiles"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrBadState     = errors.New("invalid state")
)

// Service coordina el ciclo de vida reporte+mascota. Las dos escrituras no
// son atómicas entre stores, así que cada transición compensa la primera
// escritura si la segunda falla, en vez de dejar estado inconsistente.
type Service struct {
	repo        Repository
	petsSvc     *pets.Service
	profilesSvc *profiles.Service
	now         func() time.Time
}

func NewService(repo Repository, petsSvc *pets.Service, profilesSvc *profiles.Service) *Service {
	return &Service{
		repo:        repo,
		petsSvc:     petsSvc,
		profilesSvc: profilesSvc,
		now:         time.Now,
	}
}

type SubmitInput struct {
	PetID            string
	ReportType       lifecycle.ReportType
	IncidentDate     time.Time
	IncidentTime     string
	LastSeenLocation string
	Latitude         float64
	Longitude        float64
	Circumstances    string
	RewardAmount     float64
	Images           []string
}

// Submit crea el reporte y transiciona la mascota en un solo paso lógico:
// reporte activo + mascota perdida/encontrada/en adopción.
// Precondiciones server-side: el caller es dueño y la mascota está en casa.
func (s *Service) Submit(ctx context.Context, userID string, in SubmitInput) (Report, error) {
	userID = strings.TrimSpace(userID)
	petID := strings.TrimSpace(in.PetID)
	if userID == "" || petID == "" {
		return Report{}, ErrInvalidInput
	}
	if !lifecycle.ValidReportType(in.ReportType) {
		return Report{}, ErrInvalidInput
	}
	if in.IncidentDate.IsZero() || strings.TrimSpace(in.LastSeenLocation) == "" {
		return Report{}, ErrInvalidInput
	}
	if in.RewardAmount < 0 {
		return Report{}, ErrInvalidInput
	}
	if len(in.Images) > MaxImages {
		return Report{}, ErrInvalidInput
	}

	p, err := s.petsSvc.GetByID(ctx, petID)
	if err != nil {
		return Report{}, ErrNotFound
	}
	if !lifecycle.IsOwner(p.OwnerUserID, userID) {
		return Report{}, ErrForbidden
	}
	if !lifecycle.CanReportLost(p.CurrentStatus) {
		return Report{}, ErrBadState
	}

	// A lo sumo un reporte activo por mascota.
	if _, err := s.repo.ActiveByPet(ctx, petID); err == nil {
		return Report{}, ErrBadState
	}

	now := s.now()
	images := in.Images
	if images == nil {
		images = []string{}
	}

	rep := Report{
		ID:               uuid.NewString(),
		PetID:            petID,
		OwnerUserID:      userID,
		ReportType:       in.ReportType,
		IncidentDate:     in.IncidentDate,
		IncidentTime:     strings.TrimSpace(in.IncidentTime),
		LastSeenLocation: strings.TrimSpace(in.LastSeenLocation),
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
		Circumstances:    strings.TrimSpace(in.Circumstances),
		RewardAmount:     in.RewardAmount,
		Images:           images,
		Status:           lifecycle.ReportStatusActive,
		CreatedAt:        now,
	}

	if err := s.repo.Create(ctx, rep); err != nil {
		return Report{}, err
	}

	if _, err := s.petsSvc.SetStatus(ctx, petID, lifecycle.StatusForReportType(in.ReportType)); err != nil {
		// Compensación: sin la transición de la mascota el reporte no debe
		// quedar activo.
		rep.Status = lifecycle.ReportStatusCancelled
		_ = s.repo.Update(ctx, rep)
		return Report{}, err
	}

	return rep, nil
}

// MarkSafe: la mascota vuelve a casa y el reporte activo (si existe) queda
// resuelto con resolvedAt estampado.
func (s *Service) MarkSafe(ctx context.Context, petID, userID string) (pets.Pet, error) {
	p, err := s.petsSvc.GetByID(ctx, petID)
	if err != nil {
		return pets.Pet{}, ErrNotFound
	}
	if !lifecycle.IsOwner(p.OwnerUserID, userID) {
		return pets.Pet{}, ErrForbidden
	}
	if !lifecycle.CanMarkSafe(p.CurrentStatus) {
		return pets.Pet{}, ErrBadState
	}

	prev := p.CurrentStatus
	updated, err := s.petsSvc.SetStatus(ctx, petID, lifecycle.PetStatusHome)
	if err != nil {
		return pets.Pet{}, err
	}

	rep, err := s.repo.ActiveByPet(ctx, petID)
	if err != nil {
		// Sin reporte activo no hay segunda escritura.
		return updated, nil
	}

	now := s.now()
	rep.Status = lifecycle.ReportStatusResolved
	rep.ResolvedAt = &now
	if err := s.repo.Update(ctx, rep); err != nil {
		// Compensación: volver la mascota a su estado anterior.
		_, _ = s.petsSvc.SetStatus(ctx, petID, prev)
		return pets.Pet{}, err
	}

	return updated, nil
}

// Cancel anula un reporte activo y devuelve la mascota a casa.
func (s *Service) Cancel(ctx context.Context, reportID, userID string) (Report, error) {
	rep, err := s.repo.GetByID(ctx, strings.TrimSpace(reportID))
	if err != nil {
		return Report{}, ErrNotFound
	}
	if !lifecycle.IsOwner(rep.OwnerUserID, userID) {
		return Report{}, ErrForbidden
	}
	if rep.Status != lifecycle.ReportStatusActive {
		return Report{}, ErrBadState
	}

	rep.Status = lifecycle.ReportStatusCancelled
	if err := s.repo.Update(ctx, rep); err != nil {
		return Report{}, err
	}

	if _, err := s.petsSvc.SetStatus(ctx, rep.PetID, lifecycle.PetStatusHome); err != nil {
		rep.Status = lifecycle.ReportStatusActive
		_ = s.repo.Update(ctx, rep)
		return Report{}, err
	}

	return rep, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Report, error) {
	rep, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Report{}, ErrNotFound
	}
	return rep, nil
}

func (s *Service) List(ctx context.Context) ([]Report, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Report, error) {
	return s.repo.ListByOwner(ctx, strings.TrimSpace(ownerUserID))
}

func (s *Service) ActiveByPet(ctx context.Context, petID string) (Report, error) {
	rep, err := s.repo.ActiveByPet(ctx, strings.TrimSpace(petID))
	if err != nil {
		return Report{}, ErrNotFound
	}
	return rep, nil
}

// AppendImages agrega URLs ya subidas al reporte, respetando MaxImages.
func (s *Service) AppendImages(ctx context.Context, reportID, userID string, urls []string) (Report, error) {
	rep, err := s.GetByID(ctx, reportID)
	if err != nil {
		return Report{}, err
	}
	if !lifecycle.IsOwner(rep.OwnerUserID, userID) {
		return Report{}, ErrForbidden
	}
	if len(rep.Images)+len(urls) > MaxImages {
		return Report{}, ErrInvalidInput
	}

	rep.Images = append(rep.Images, urls...)
	if err := s.repo.Update(ctx, rep); err != nil {
		return Report{}, err
	}
	return rep, nil
}

// Enrich computa PetInfo/OwnerInfo al leer. Tolera referencias huérfanas:
// un lookup fallido deja el campo en nil, el reporte se devuelve igual.
func (s *Service) Enrich(ctx context.Context, rep Report) (PetInfo, OwnerInfo, bool) {
	var petInfo PetInfo
	var ownerInfo OwnerInfo
	found := true

	if p, err := s.petsSvc.GetByID(ctx, rep.PetID); err == nil {
		images := p.Images
		if images == nil {
			images = []string{}
		}
		petInfo = PetInfo{
			Name:         p.Name,
			Species:      int(p.Species),
			Images:       images,
			ColorPrimary: p.ColorPrimary,
			BirthDate:    p.BirthDate.Format("2006-01-02"),
		}
	} else {
		found = false
	}

	if o, err := s.profilesSvc.GetByID(ctx, rep.OwnerUserID); err == nil {
		ownerInfo = OwnerInfo{Name: o.Name, Email: o.Email, Phone: o.Phone}
	} else {
		found = false
	}

	return petInfo, ownerInfo, found
}

// Stats recorre todos los reportes y agrega contadores.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}

	var st Stats
	st.Total = len(all)
	for _, r := range all {
		switch r.Status {
		case lifecycle.ReportStatusActive:
			st.Active++
		case lifecycle.ReportStatusResolved:
			st.Resolved++
		}
		if r.RewardAmount > 0 {
			st.WithReward++
		}
		switch r.ReportType {
		case lifecycle.ReportTypeLost:
			st.LostPets++
		case lifecycle.ReportTypeFound:
			st.FoundPets++
		case lifecycle.ReportTypeAdoption:
			st.Adoptions++
		}
	}
	return st, nil
}
