package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/domain/reports"
)

type reportsRepo struct {
	mu   sync.RWMutex
	byID map[string]reports.Report
}

func NewReportsRepo() reports.Repository {
	return &reportsRepo{
		byID: make(map[string]reports.Report),
	}
}

func (r *reportsRepo) Create(ctx context.Context, rep reports.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(rep.ID) == "" {
		return errors.New("report id required")
	}
	if _, exists := r.byID[rep.ID]; exists {
		return errors.New("report already exists")
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *reportsRepo) Update(ctx context.Context, rep reports.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[rep.ID]; !exists {
		return ErrNotFound
	}
	r.byID[rep.ID] = rep
	return nil
}

func (r *reportsRepo) GetByID(ctx context.Context, id string) (reports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rep, ok := r.byID[id]
	if !ok {
		return reports.Report{}, ErrNotFound
	}
	return rep, nil
}

func (r *reportsRepo) List(ctx context.Context) ([]reports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reports.Report, 0, len(r.byID))
	for _, rep := range r.byID {
		out = append(out, rep)
	}
	sortReportsByCreatedDesc(out)
	return out, nil
}

func (r *reportsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]reports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]reports.Report, 0)
	for _, rep := range r.byID {
		if rep.OwnerUserID == ownerUserID {
			out = append(out, rep)
		}
	}
	sortReportsByCreatedDesc(out)
	return out, nil
}

func (r *reportsRepo) ActiveByPet(ctx context.Context, petID string) (reports.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rep := range r.byID {
		if rep.PetID == petID && rep.Status == lifecycle.ReportStatusActive {
			return rep, nil
		}
	}
	return reports.Report{}, ErrNotFound
}

func sortReportsByCreatedDesc(items []reports.Report) {
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
}
