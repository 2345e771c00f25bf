package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mem "pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/profiles"
	"pet-registry/internal/domain/reports"
)

// flakyPetsRepo deja forzar fallos de Update para probar las compensaciones.
type flakyPetsRepo struct {
	pets.Repository
	failUpdate bool
}

func (r *flakyPetsRepo) Update(ctx context.Context, p pets.Pet) error {
	if r.failUpdate {
		return errors.New("storage down")
	}
	return r.Repository.Update(ctx, p)
}

type fixture struct {
	petsRepo    *flakyPetsRepo
	petsSvc     *pets.Service
	profilesSvc *profiles.Service
	svc         *reports.Service
}

func newFixture() *fixture {
	petsRepo := &flakyPetsRepo{Repository: mem.NewPetsRepo()}
	petsSvc := pets.NewService(petsRepo)
	profilesSvc := profiles.NewService(mem.NewProfilesRepo())
	svc := reports.NewService(mem.NewReportsRepo(), petsSvc, profilesSvc)
	return &fixture{
		petsRepo:    petsRepo,
		petsSvc:     petsSvc,
		profilesSvc: profilesSvc,
		svc:         svc,
	}
}

func (f *fixture) createPet(t *testing.T, ownerID string) pets.Pet {
	t.Helper()
	p, err := f.petsSvc.Create(context.Background(), ownerID, pets.CreateInput{
		Name:         "Milo",
		Species:      lifecycle.SpeciesDog,
		BreedID:      "mestizo",
		BirthDate:    time.Date(2022, 3, 10, 0, 0, 0, 0, time.UTC),
		Gender:       lifecycle.GenderMale,
		ColorPrimary: "negro",
	})
	if err != nil {
		t.Fatalf("create pet: %v", err)
	}
	return p
}

func submitInput(petID string) reports.SubmitInput {
	return reports.SubmitInput{
		PetID:            petID,
		ReportType:       lifecycle.ReportTypeLost,
		IncidentDate:     time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		IncidentTime:     "18:30",
		LastSeenLocation: "Parque Central, Oruro",
		Latitude:         -17.9647,
		Longitude:        -67.1060,
		RewardAmount:     100,
	}
}

func TestSubmit_CreatesActiveReportAndTransitionsPet(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.createPet(t, "owner-1")

	rep, err := f.svc.Submit(ctx, "owner-1", submitInput(p.ID))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rep.Status != lifecycle.ReportStatusActive {
		t.Fatalf("expected active report, got %d", rep.Status)
	}

	got, err := f.petsSvc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get pet: %v", err)
	}
	if got.CurrentStatus != lifecycle.PetStatusLost {
		t.Fatalf("expected pet lost, got %d", got.CurrentStatus)
	}
}

func TestSubmit_RejectsSecondActiveReport(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.createPet(t, "owner-1")

	if _, err := f.svc.Submit(ctx, "owner-1", submitInput(p.ID)); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if _, err := f.svc.Submit(ctx, "owner-1", submitInput(p.ID)); err != reports.ErrBadState {
		t.Fatalf("expected ErrBadState on second submit, got %v", err)
	}
}

func TestSubmit_NonOwnerForbidden(t *testing.T) {
	f := newFixture()
	p := f.createPet(t, "owner-1")

	if _, err := f.svc.Submit(context.Background(), "intruder", submitInput(p.ID)); err != reports.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestSubmit_CompensatesWhenPetWriteFails(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.createPet(t, "owner-1")

	f.petsRepo.failUpdate = true
	if _, err := f.svc.Submit(ctx, "owner-1", submitInput(p.ID)); err == nil {
		t.Fatal("expected submit to fail")
	}

	// El reporte no debe quedar activo si la mascota no transicionó.
	if _, err := f.svc.ActiveByPet(ctx, p.ID); err != reports.ErrNotFound {
		t.Fatalf("expected no active report after compensation, got %v", err)
	}

	got, err := f.petsSvc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get pet: %v", err)
	}
	if got.CurrentStatus != lifecycle.PetStatusHome {
		t.Fatalf("expected pet still home, got %d", got.CurrentStatus)
	}
}

func TestMarkSafe_ResolvesActiveReport(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.createPet(t, "owner-1")

	rep, err := f.svc.Submit(ctx, "owner-1", submitInput(p.ID))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	updated, err := f.svc.MarkSafe(ctx, p.ID, "owner-1")
	if err != nil {
		t.Fatalf("mark safe: %v", err)
	}
	if updated.CurrentStatus != lifecycle.PetStatusHome {
		t.Fatalf("expected pet home, got %d", updated.CurrentStatus)
	}

	got, err := f.svc.GetByID(ctx, rep.ID)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if got.Status != lifecycle.ReportStatusResolved {
		t.Fatalf("expected resolved report, got %d", got.Status)
	}
	if got.ResolvedAt == nil {
		t.Fatal("expected resolved_at set")
	}
}

func TestMarkSafe_WithoutActiveReportStillReturnsHome(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.createPet(t, "owner-1")

	// Perdida sin reporte (estado tocado por fuera del coordinador).
	if _, err := f.petsSvc.SetStatus(ctx, p.ID, lifecycle.PetStatusLost); err != nil {
		t.Fatalf("set status: %v", err)
	}

	updated, err := f.svc.MarkSafe(ctx, p.ID, "owner-1")
	if err != nil {
		t.Fatalf("mark safe: %v", err)
	}
	if updated.CurrentStatus != lifecycle.PetStatusHome {
		t.Fatalf("expected pet home, got %d", updated.CurrentStatus)
	}
}

func TestCancel_ReturnsPetHome(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	p := f.createPet(t, "owner-1")

	rep, err := f.svc.Submit(ctx, "owner-1", submitInput(p.ID))
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	cancelled, err := f.svc.Cancel(ctx, rep.ID, "owner-1")
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != lifecycle.ReportStatusCancelled {
		t.Fatalf("expected cancelled, got %d", cancelled.Status)
	}

	got, err := f.petsSvc.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get pet: %v", err)
	}
	if got.CurrentStatus != lifecycle.PetStatusHome {
		t.Fatalf("expected pet home after cancel, got %d", got.CurrentStatus)
	}
}

func TestStats_CountsByStatusAndType(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	p1 := f.createPet(t, "owner-1")
	p2 := f.createPet(t, "owner-1")

	if _, err := f.svc.Submit(ctx, "owner-1", submitInput(p1.ID)); err != nil {
		t.Fatalf("submit p1: %v", err)
	}

	in2 := submitInput(p2.ID)
	in2.ReportType = lifecycle.ReportTypeFound
	in2.RewardAmount = 0
	if _, err := f.svc.Submit(ctx, "owner-1", in2); err != nil {
		t.Fatalf("submit p2: %v", err)
	}

	if _, err := f.svc.MarkSafe(ctx, p2.ID, "owner-1"); err != nil {
		t.Fatalf("mark safe p2: %v", err)
	}

	st, err := f.svc.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if st.Total != 2 || st.Active != 1 || st.Resolved != 1 {
		t.Fatalf("unexpected totals: %+v", st)
	}
	if st.WithReward != 1 || st.LostPets != 1 || st.FoundPets != 1 {
		t.Fatalf("unexpected breakdown: %+v", st)
	}
}
