package lifecycle

import (
	"testing"
	"time"
)

func TestPetStatusBadge_TotalWithFallback(t *testing.T) {
	for s := PetStatusHome; s <= PetStatusDeceased; s++ {
		b := PetStatusBadge(s)
		if b.Value != int(s) || b.Label == "" {
			t.Fatalf("status %d: unexpected badge %+v", s, b)
		}
	}

	// fuera de rango cae al primer badge, no rompe
	if got := PetStatusBadge(PetStatus(99)); got.Label != "En casa" {
		t.Fatalf("expected fallback badge, got %+v", got)
	}
	if got := PetStatusBadge(PetStatus(0)); got.Label != "En casa" {
		t.Fatalf("expected fallback badge for zero, got %+v", got)
	}
}

func TestReportBadges_Fallback(t *testing.T) {
	if got := ReportStatusBadge(ReportStatus(42)); got.Label != "Activo" {
		t.Fatalf("expected fallback to first report status, got %+v", got)
	}
	if got := ReportTypeBadge(ReportType(42)); got.Label != "Perdida" {
		t.Fatalf("expected fallback to first report type, got %+v", got)
	}
}

func TestAgeYears(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	if got := AgeYears(now, now); got != 0 {
		t.Fatalf("born today: expected 0, got %d", got)
	}

	// cumpleaños mañana: todavía no cumplió
	birth := time.Date(2020, 9, 2, 0, 0, 0, 0, time.UTC)
	if got := AgeYears(birth, now); got != 5 {
		t.Fatalf("birthday tomorrow: expected 5, got %d", got)
	}

	// cumpleaños hoy: ya cumplió
	birth = time.Date(2020, 9, 1, 0, 0, 0, 0, time.UTC)
	if got := AgeYears(birth, now); got != 6 {
		t.Fatalf("birthday today: expected 6, got %d", got)
	}

	// nunca negativa
	if got := AgeYears(now.AddDate(0, 6, 0), now); got != 0 {
		t.Fatalf("future birth: expected 0, got %d", got)
	}
}

func TestAgeStage(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		years int
		want  string
	}{
		{0, StageBaby},
		{1, StageYoung},
		{3, StageYoung},
		{4, StageAdult},
		{8, StageAdult},
		{9, StageSenior},
	}
	for _, tc := range cases {
		birth := now.AddDate(-tc.years, 0, 0)
		if got := AgeStage(birth, now); got != tc.want {
			t.Fatalf("%d years: expected %s, got %s", tc.years, tc.want, got)
		}
	}
}

func TestValidBirthDate(t *testing.T) {
	now := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	if ValidBirthDate(now.AddDate(0, 0, 1), now) {
		t.Fatal("future date should be invalid")
	}
	if ValidBirthDate(now.AddDate(-31, 0, 0), now) {
		t.Fatal("31 years should be invalid")
	}
	if !ValidBirthDate(now.AddDate(-1, 0, 0), now) {
		t.Fatal("1 year should be valid")
	}
	if !ValidBirthDate(now.AddDate(-30, 0, 1), now) {
		t.Fatal("just under 30 years should be valid")
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(-17.96, -67.10, -17.96, -67.10); got != 0 {
		t.Fatalf("same point: expected 0, got %v", got)
	}

	// simétrica
	a := Distance(-17.9647, -67.1060, -16.5000, -68.1500)
	b := Distance(-16.5000, -68.1500, -17.9647, -67.1060)
	if a != b {
		t.Fatalf("expected symmetric distance, got %v vs %v", a, b)
	}

	// Oruro - La Paz: del orden de 200km
	if a < 150 || a > 250 {
		t.Fatalf("implausible Oruro-La Paz distance: %v", a)
	}
}

func TestTransitionGuards(t *testing.T) {
	if !CanReportLost(PetStatusHome) || CanReportLost(PetStatusLost) {
		t.Fatal("report lost only from home")
	}
	if !CanMarkSafe(PetStatusLost) || !CanMarkSafe(PetStatusFound) || CanMarkSafe(PetStatusHome) {
		t.Fatal("mark safe only from lost/found")
	}
	if !CanMarkForAdoption(PetStatusHome) || CanMarkForAdoption(PetStatusLost) {
		t.Fatal("adoption only from home")
	}
	if !CanRevertAdoption(PetStatusAdoption) || CanRevertAdoption(PetStatusHome) {
		t.Fatal("revert only from adoption")
	}
	if !CanDecease(PetStatusLost) || CanDecease(PetStatusDeceased) {
		t.Fatal("decease from any state but deceased")
	}
}

func TestStatusForReportType(t *testing.T) {
	if StatusForReportType(ReportTypeLost) != PetStatusLost {
		t.Fatal("lost -> lost")
	}
	if StatusForReportType(ReportTypeFound) != PetStatusFound {
		t.Fatal("found -> found")
	}
	if StatusForReportType(ReportTypeAdoption) != PetStatusAdoption {
		t.Fatal("adoption -> adoption")
	}
	if StatusForReportType(ReportType(99)) != PetStatusLost {
		t.Fatal("unknown -> lost")
	}
}

func TestIsOwner(t *testing.T) {
	if !IsOwner("u1", "u1") {
		t.Fatal("same id should own")
	}
	if IsOwner("u1", "u2") || IsOwner("", "") || IsOwner("u1", "") {
		t.Fatal("unexpected ownership")
	}
}
