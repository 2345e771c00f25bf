package sightings

import "context"

type Repository interface {
	Create(ctx context.Context, s Sighting) error
	GetByID(ctx context.Context, id string) (Sighting, error)
	ListByReport(ctx context.Context, reportID string) ([]Sighting, error)
}
