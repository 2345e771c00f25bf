package postgres

import (
	"context"
	"database/sql"
	"strings"

	"pet-registry/internal/domain/sightings"
)

type SightingsRepo struct {
	db *sql.DB
}

func NewSightingsRepo(db *sql.DB) *SightingsRepo {
	return &SightingsRepo{db: db}
}

func (r *SightingsRepo) Create(ctx context.Context, s sightings.Sighting) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sightings (
			id, report_id, pet_id,
			reporter_name, reporter_email, reporter_phone,
			sighting_date, sighting_time, sighting_location,
			latitude, longitude,
			description, pet_condition,
			confidence_level, distance_from_last_seen,
			follow_up_needed, status, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`,
		s.ID,
		s.ReportID,
		s.PetID,
		s.ReporterName,
		s.ReporterEmail,
		s.ReporterPhone,
		s.SightingDate,
		s.SightingTime,
		s.SightingLocation,
		s.Latitude,
		s.Longitude,
		s.Description,
		s.PetCondition,
		s.ConfidenceLevel,
		s.DistanceFromLastSeen,
		s.FollowUpNeeded,
		s.Status,
		s.CreatedAt,
	)
	return err
}

const sightingColumns = `
	id, report_id, pet_id,
	reporter_name, reporter_email, reporter_phone,
	sighting_date, sighting_time, sighting_location,
	latitude, longitude,
	description, pet_condition,
	confidence_level, distance_from_last_seen,
	follow_up_needed, status, created_at
`

func scanSighting(row interface{ Scan(dest ...any) error }) (sightings.Sighting, error) {
	var s sightings.Sighting
	if err := row.Scan(
		&s.ID,
		&s.ReportID,
		&s.PetID,
		&s.ReporterName,
		&s.ReporterEmail,
		&s.ReporterPhone,
		&s.SightingDate,
		&s.SightingTime,
		&s.SightingLocation,
		&s.Latitude,
		&s.Longitude,
		&s.Description,
		&s.PetCondition,
		&s.ConfidenceLevel,
		&s.DistanceFromLastSeen,
		&s.FollowUpNeeded,
		&s.Status,
		&s.CreatedAt,
	); err != nil {
		return sightings.Sighting{}, err
	}
	return s, nil
}

func (r *SightingsRepo) GetByID(ctx context.Context, id string) (sightings.Sighting, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return sightings.Sighting{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+sightingColumns+`
		FROM sightings
		WHERE id = $1
	`, id)

	s, err := scanSighting(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return sightings.Sighting{}, ErrNotFound
		}
		return sightings.Sighting{}, err
	}
	return s, nil
}

func (r *SightingsRepo) ListByReport(ctx context.Context, reportID string) ([]sightings.Sighting, error) {
	reportID = strings.TrimSpace(reportID)
	if reportID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+sightingColumns+`
		FROM sightings
		WHERE report_id = $1
		ORDER BY created_at DESC
	`, reportID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]sightings.Sighting, 0)
	for rows.Next() {
		s, err := scanSighting(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
