package postgres

import (
	"context"
	"errors"

	domain "tijaniyah/backend/internal/domain/prayer"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PrayerRepository persists prayer schedules in PostgreSQL.
type PrayerRepository struct {
	pool *pgxpool.Pool
}

// NewPrayerRepository constructs a repository.
func NewPrayerRepository(pool *pgxpool.Pool) *PrayerRepository {
	return &PrayerRepository{pool: pool}
}

// Upsert inserts or replaces the schedule for (date, location).
func (r *PrayerRepository) Upsert(ctx context.Context, schedule *domain.Schedule) error {
	const query = `
INSERT INTO prayer_schedules (id, date, location, fajr, dhuhr, asr, maghrib, isha, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (date, location) DO UPDATE
SET fajr = EXCLUDED.fajr,
    dhuhr = EXCLUDED.dhuhr,
    asr = EXCLUDED.asr,
    maghrib = EXCLUDED.maghrib,
    isha = EXCLUDED.isha,
    updated_at = EXCLUDED.updated_at
`
	_, err := r.pool.Exec(ctx, query,
		schedule.ID,
		schedule.Date,
		schedule.Location,
		schedule.Fajr,
		schedule.Dhuhr,
		schedule.Asr,
		schedule.Maghrib,
		schedule.Isha,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)
	return err
}

// Get fetches the schedule for one date and location.
func (r *PrayerRepository) Get(ctx context.Context, date, location string) (*domain.Schedule, error) {
	const query = `
SELECT id, date, location, fajr, dhuhr, asr, maghrib, isha, created_at, updated_at
FROM prayer_schedules WHERE date = $1 AND location = $2
`
	row := r.pool.QueryRow(ctx, query, date, location)
	schedule, err := scanSchedule(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return schedule, nil
}

// ListFrom returns up to limit schedules starting at fromDate, ascending.
func (r *PrayerRepository) ListFrom(ctx context.Context, location, fromDate string, limit int) ([]*domain.Schedule, error) {
	const query = `
SELECT id, date, location, fajr, dhuhr, asr, maghrib, isha, created_at, updated_at
FROM prayer_schedules
WHERE location = $1 AND date >= $2
ORDER BY date ASC
LIMIT $3
`
	rows, err := r.pool.Query(ctx, query, location, fromDate, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*domain.Schedule
	for rows.Next() {
		s, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return schedules, nil
}

func scanSchedule(row pgx.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	err := row.Scan(
		&s.ID,
		&s.Date,
		&s.Location,
		&s.Fajr,
		&s.Dhuhr,
		&s.Asr,
		&s.Maghrib,
		&s.Isha,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
