package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-registry/internal/domain/pets"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, owner_user_id,
			name, species, breed_id, birth_date, gender,
			color_primary, color_secondary, fur_type,
			description, images, current_status,
			has_pedigree, is_deceased, is_neutered,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Species,
		p.BreedID,
		p.BirthDate,
		p.Gender,
		p.ColorPrimary,
		toJSONList(p.ColorSecondary),
		p.FurType,
		p.Description,
		toJSONList(p.Images),
		p.CurrentStatus,
		p.HasPedigree,
		p.IsDeceased,
		p.IsNeutered,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PetsRepo) Update(ctx context.Context, p pets.Pet) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			breed_id = $4,
			birth_date = $5,
			gender = $6,
			color_primary = $7,
			color_secondary = $8,
			fur_type = $9,
			description = $10,
			images = $11,
			current_status = $12,
			has_pedigree = $13,
			is_deceased = $14,
			is_neutered = $15,
			updated_at = $16
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		p.BreedID,
		p.BirthDate,
		p.Gender,
		p.ColorPrimary,
		toJSONList(p.ColorSecondary),
		p.FurType,
		p.Description,
		toJSONList(p.Images),
		p.CurrentStatus,
		p.HasPedigree,
		p.IsDeceased,
		p.IsNeutered,
		p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

const petColumns = `
	id, owner_user_id,
	name, species, breed_id, birth_date, gender,
	color_primary, color_secondary, fur_type,
	description, images, current_status,
	has_pedigree, is_deceased, is_neutered,
	created_at, updated_at
`

func scanPet(row interface{ Scan(dest ...any) error }) (pets.Pet, error) {
	var p pets.Pet
	var colorSecondary, images []byte
	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Species,
		&p.BreedID,
		&p.BirthDate,
		&p.Gender,
		&p.ColorPrimary,
		&colorSecondary,
		&p.FurType,
		&p.Description,
		&images,
		&p.CurrentStatus,
		&p.HasPedigree,
		&p.IsDeceased,
		&p.IsNeutered,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return pets.Pet{}, err
	}
	p.ColorSecondary = fromJSONList(colorSecondary)
	p.Images = fromJSONList(images)
	return p, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	p, err := scanPet(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return pets.Pet{}, ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func collectPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
