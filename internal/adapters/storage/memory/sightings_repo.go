package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"pet-registry/internal/domain/sightings"
)

type sightingsRepo struct {
	mu   sync.RWMutex
	byID map[string]sightings.Sighting
}

func NewSightingsRepo() sightings.Repository {
	return &sightingsRepo{
		byID: make(map[string]sightings.Sighting),
	}
}

func (r *sightingsRepo) Create(ctx context.Context, s sightings.Sighting) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(s.ID) == "" {
		return errors.New("sighting id required")
	}
	if _, exists := r.byID[s.ID]; exists {
		return errors.New("sighting already exists")
	}
	r.byID[s.ID] = s
	return nil
}

func (r *sightingsRepo) GetByID(ctx context.Context, id string) (sightings.Sighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return sightings.Sighting{}, ErrNotFound
	}
	return s, nil
}

func (r *sightingsRepo) ListByReport(ctx context.Context, reportID string) ([]sightings.Sighting, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]sightings.Sighting, 0)
	for _, s := range r.byID {
		if s.ReportID == reportID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
