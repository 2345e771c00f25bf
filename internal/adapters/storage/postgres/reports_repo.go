package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"pet-registry/internal/domain/lifecycle"
	"pet-registry/internal/domain/reports"
)

type ReportsRepo struct {
	db *sql.DB
}

func NewReportsRepo(db *sql.DB) *ReportsRepo {
	return &ReportsRepo{db: db}
}

func (r *ReportsRepo) Create(ctx context.Context, rep reports.Report) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reports (
			id, pet_id, owner_user_id, report_type,
			incident_date, incident_time, last_seen_location,
			latitude, longitude,
			circumstances, reward_amount, images, status,
			created_at, resolved_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		rep.ID,
		rep.PetID,
		rep.OwnerUserID,
		rep.ReportType,
		rep.IncidentDate,
		rep.IncidentTime,
		rep.LastSeenLocation,
		rep.Latitude,
		rep.Longitude,
		rep.Circumstances,
		rep.RewardAmount,
		toJSONList(rep.Images),
		rep.Status,
		rep.CreatedAt,
		toNullTime(rep.ResolvedAt),
	)
	return err
}

func (r *ReportsRepo) Update(ctx context.Context, rep reports.Report) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reports
		SET
			report_type = $2,
			incident_date = $3,
			incident_time = $4,
			last_seen_location = $5,
			latitude = $6,
			longitude = $7,
			circumstances = $8,
			reward_amount = $9,
			images = $10,
			status = $11,
			resolved_at = $12
		WHERE id = $1
	`,
		rep.ID,
		rep.ReportType,
		rep.IncidentDate,
		rep.IncidentTime,
		rep.LastSeenLocation,
		rep.Latitude,
		rep.Longitude,
		rep.Circumstances,
		rep.RewardAmount,
		toJSONList(rep.Images),
		rep.Status,
		toNullTime(rep.ResolvedAt),
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

const reportColumns = `
	id, pet_id, owner_user_id, report_type,
	incident_date, incident_time, last_seen_location,
	latitude, longitude,
	circumstances, reward_amount, images, status,
	created_at, resolved_at
`

func scanReport(row interface{ Scan(dest ...any) error }) (reports.Report, error) {
	var rep reports.Report
	var images []byte
	var resolvedAt sql.NullTime
	if err := row.Scan(
		&rep.ID,
		&rep.PetID,
		&rep.OwnerUserID,
		&rep.ReportType,
		&rep.IncidentDate,
		&rep.IncidentTime,
		&rep.LastSeenLocation,
		&rep.Latitude,
		&rep.Longitude,
		&rep.Circumstances,
		&rep.RewardAmount,
		&images,
		&rep.Status,
		&rep.CreatedAt,
		&resolvedAt,
	); err != nil {
		return reports.Report{}, err
	}
	rep.Images = fromJSONList(images)
	if resolvedAt.Valid {
		t := resolvedAt.Time
		rep.ResolvedAt = &t
	}
	return rep, nil
}

func (r *ReportsRepo) GetByID(ctx context.Context, id string) (reports.Report, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return reports.Report{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		WHERE id = $1
	`, id)

	rep, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return reports.Report{}, ErrNotFound
		}
		return reports.Report{}, err
	}
	return rep, nil
}

func (r *ReportsRepo) List(ctx context.Context) ([]reports.Report, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReports(rows)
}

func (r *ReportsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]reports.Report, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		WHERE owner_user_id = $1
		ORDER BY created_at DESC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectReports(rows)
}

func (r *ReportsRepo) ActiveByPet(ctx context.Context, petID string) (reports.Report, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return reports.Report{}, ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+reportColumns+`
		FROM reports
		WHERE pet_id = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, petID, lifecycle.ReportStatusActive)

	rep, err := scanReport(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return reports.Report{}, ErrNotFound
		}
		return reports.Report{}, err
	}
	return rep, nil
}

func collectReports(rows *sql.Rows) ([]reports.Report, error) {
	out := make([]reports.Report, 0)
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{Valid: false}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
