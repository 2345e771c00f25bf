package reports_test

import (
	"testing"

	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/domain/pets"
	"pet-registry/internal/domain/reports"
)

func TestJoinActive_OnlyActiveReportsPerPet(t *testing.T) {
	ps := []pets.Pet{{ID: "p1"}, {ID: "p2"}}
	rs := []reports.Report{
		{ID: "r1", PetID: "p1", Status: lifecycle.ReportStatusActive},
		{ID: "r2", PetID: "p1", Status: lifecycle.ReportStatusResolved},
		{ID: "r3", PetID: "p3", Status: lifecycle.ReportStatusActive}, // mascota fuera del set
	}

	got := reports.JoinActive(ps, rs)

	if len(got) != 2 {
		t.Fatalf("expected entries for 2 pets, got %d", len(got))
	}
	if len(got["p1"]) != 1 || got["p1"][0].ID != "r1" {
		t.Fatalf("expected p1 -> [r1], got %+v", got["p1"])
	}
	if len(got["p2"]) != 0 {
		t.Fatalf("expected p2 without active reports, got %+v", got["p2"])
	}
}
