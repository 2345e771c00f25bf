package reports

import "context"

type Repository interface {
	Create(ctx context.Context, r Report) error
	Update(ctx context.Context, r Report) error
	GetByID(ctx context.Context, id string) (Report, error)
	List(ctx context.Context) ([]Report, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]Report, error)
	// ActiveByPet devuelve el reporte activo de una mascota, o ErrNotFound.
	ActiveByPet(ctx context.Context, petID string) (Report, error)
}
