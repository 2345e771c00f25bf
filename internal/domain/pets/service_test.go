package pets_test

import (
	"context"
	"testing"
	"time"

	mem "pet-registry/internal/adapters/storage/memory"
	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/domain/pets"
)

func validInput() pets.CreateInput {
	return pets.CreateInput{
		Name:         "Luna",
		Species:      lifecycle.SpeciesCat,
		BreedID:      "mestizo_cat",
		BirthDate:    time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		Gender:       lifecycle.GenderFemale,
		ColorPrimary: "blanco",
	}
}

func TestCreate_ColorCardinality(t *testing.T) {
	cases := []struct {
		name      string
		primary   string
		secondary []string
		wantErr   bool
	}{
		{name: "solo primario", primary: "negro", secondary: nil},
		{name: "tres colores", primary: "negro", secondary: []string{"blanco", "marron"}},
		{name: "sin primario", primary: "", secondary: []string{"blanco"}, wantErr: true},
		{name: "cuatro colores", primary: "negro", secondary: []string{"blanco", "marron", "gris"}, wantErr: true},
		{name: "secundario repetido", primary: "negro", secondary: []string{"negro"}, wantErr: true},
		{name: "color desconocido", primary: "fucsia", secondary: nil, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := pets.NewService(mem.NewPetsRepo())
			in := validInput()
			in.ColorPrimary = tc.primary
			in.ColorSecondary = tc.secondary

			_, err := svc.Create(context.Background(), "owner-1", in)
			if tc.wantErr && err != pets.ErrInvalidInput {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestCreate_RejectsBreedOfOtherSpecies(t *testing.T) {
	svc := pets.NewService(mem.NewPetsRepo())
	in := validInput()
	in.BreedID = "golden_retriever" // raza de perro para un gato

	if _, err := svc.Create(context.Background(), "owner-1", in); err != pets.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreate_RejectsImplausibleBirthDate(t *testing.T) {
	svc := pets.NewService(mem.NewPetsRepo())

	in := validInput()
	in.BirthDate = time.Now().AddDate(0, 0, 1) // mañana
	if _, err := svc.Create(context.Background(), "owner-1", in); err != pets.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for future date, got %v", err)
	}

	in = validInput()
	in.BirthDate = time.Now().AddDate(-31, 0, 0)
	if _, err := svc.Create(context.Background(), "owner-1", in); err != pets.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for 31y, got %v", err)
	}
}

func TestAdoptionTransitions(t *testing.T) {
	svc := pets.NewService(mem.NewPetsRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// no-dueño no puede publicar
	if _, err := svc.MarkForAdoption(ctx, p.ID, "intruder"); err != pets.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := svc.MarkForAdoption(ctx, p.ID, "owner-1")
	if err != nil {
		t.Fatalf("mark for adoption: %v", err)
	}
	if got.CurrentStatus != lifecycle.PetStatusAdoption {
		t.Fatalf("expected adoption status, got %d", got.CurrentStatus)
	}

	// publicar dos veces no es válido
	if _, err := svc.MarkForAdoption(ctx, p.ID, "owner-1"); err != pets.ErrBadState {
		t.Fatalf("expected ErrBadState, got %v", err)
	}

	got, err = svc.RevertAdoption(ctx, p.ID, "owner-1")
	if err != nil {
		t.Fatalf("revert adoption: %v", err)
	}
	if got.CurrentStatus != lifecycle.PetStatusHome {
		t.Fatalf("expected home after revert, got %d", got.CurrentStatus)
	}
}

func TestDecease_IsSoftDelete(t *testing.T) {
	svc := pets.NewService(mem.NewPetsRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Decease(ctx, p.ID, "owner-1")
	if err != nil {
		t.Fatalf("decease: %v", err)
	}
	if got.CurrentStatus != lifecycle.PetStatusDeceased || !got.IsDeceased {
		t.Fatalf("expected deceased, got %+v", got)
	}

	// el documento sigue existiendo
	if _, err := svc.GetByID(ctx, p.ID); err != nil {
		t.Fatalf("expected pet readable after decease, got %v", err)
	}

	// fallecida dos veces no
	if _, err := svc.Decease(ctx, p.ID, "owner-1"); err != pets.ErrBadState {
		t.Fatalf("expected ErrBadState, got %v", err)
	}
}

func TestAppendImages_RespectsCap(t *testing.T) {
	svc := pets.NewService(mem.NewPetsRepo())
	ctx := context.Background()

	p, err := svc.Create(ctx, "owner-1", validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	urls := []string{"u1", "u2", "u3", "u4", "u5"}
	if _, err := svc.AppendImages(ctx, p.ID, "owner-1", urls); err != nil {
		t.Fatalf("append to cap: %v", err)
	}
	if _, err := svc.AppendImages(ctx, p.ID, "owner-1", []string{"u6"}); err != pets.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput beyond cap, got %v", err)
	}
}

func TestList_FiltersByStatus(t *testing.T) {
	svc := pets.NewService(mem.NewPetsRepo())
	ctx := context.Background()

	p1, _ := svc.Create(ctx, "owner-1", validInput())
	if _, err := svc.Create(ctx, "owner-2", validInput()); err != nil {
		t.Fatalf("create second: %v", err)
	}
	if _, err := svc.MarkForAdoption(ctx, p1.ID, "owner-1"); err != nil {
		t.Fatalf("adoption: %v", err)
	}

	all, err := svc.List(ctx, 0)
	if err != nil || len(all) != 2 {
		t.Fatalf("expected 2 pets, got %d err=%v", len(all), err)
	}

	adoption, err := svc.List(ctx, lifecycle.PetStatusAdoption)
	if err != nil || len(adoption) != 1 || adoption[0].ID != p1.ID {
		t.Fatalf("expected only p1 in adoption, got %+v err=%v", adoption, err)
	}
}
