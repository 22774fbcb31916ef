package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/pkg/pagination"
)

type ScheduleRepo struct {
	pool *pgxpool.Pool
}

func NewScheduleRepo(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

func (r *ScheduleRepo) GetByDate(ctx context.Context, date time.Time) (*entity.DailySchedule, error) {
	schedules, err := r.ListRange(ctx, date, date)
	if err != nil {
		return nil, err
	}
	if len(schedules) == 0 {
		return nil, domain.ErrScheduleNotFound
	}
	return &schedules[0], nil
}

// ListRange returns the published schedules between from and to inclusive,
// ordered by date.
func (r *ScheduleRepo) ListRange(ctx context.Context, from, to time.Time) ([]entity.DailySchedule, error) {
	query := `
		SELECT date, name, athan, iqamah
		FROM schedule_entries
		WHERE date BETWEEN $1 AND $2
		ORDER BY date, position
	`
	rows, err := r.pool.Query(ctx, query, civilDate(from), civilDate(to))
	if err != nil {
		return nil, fmt.Errorf("querying schedule entries: %w", err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// ListPublished pages through published days, newest first.
func (r *ScheduleRepo) ListPublished(ctx context.Context, params pagination.Params) ([]entity.DailySchedule, *pagination.Info, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(DISTINCT date) FROM schedule_entries`).Scan(&total); err != nil {
		return nil, nil, fmt.Errorf("counting published days: %w", err)
	}

	query := `
		WITH days AS (
			SELECT DISTINCT date
			FROM schedule_entries
			ORDER BY date DESC
			LIMIT $1 OFFSET $2
		)
		SELECT e.date, e.name, e.athan, e.iqamah
		FROM schedule_entries e
		JOIN days d ON d.date = e.date
		ORDER BY e.date DESC, e.position
	`
	rows, err := r.pool.Query(ctx, query, params.Limit(), params.Offset())
	if err != nil {
		return nil, nil, fmt.Errorf("querying published days: %w", err)
	}
	defer rows.Close()

	schedules, err := scanSchedules(rows)
	if err != nil {
		return nil, nil, err
	}

	return schedules, pagination.NewInfo(params, total), nil
}

// scanSchedules groups consecutive rows of the same date into one schedule.
func scanSchedules(rows pgx.Rows) ([]entity.DailySchedule, error) {
	var schedules []entity.DailySchedule
	for rows.Next() {
		var (
			date time.Time
			p    entity.Prayer
		)
		if err := rows.Scan(&date, &p.Name, &p.Athan, &p.Iqamah); err != nil {
			return nil, fmt.Errorf("scanning schedule entry: %w", err)
		}

		n := len(schedules)
		if n == 0 || !schedules[n-1].Date.Equal(civilDate(date)) {
			schedules = append(schedules, *entity.NewDailySchedule(date, "", entity.SourcePublished, nil))
			n++
		}
		schedules[n-1].Prayers = append(schedules[n-1].Prayers, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}

	return schedules, nil
}

// Upsert replaces every entry of the schedule's date.
func (r *ScheduleRepo) Upsert(ctx context.Context, schedule *entity.DailySchedule) error {
	return r.UpsertMany(ctx, []entity.DailySchedule{*schedule})
}

// UpsertMany replaces the entries of each date in a single transaction.
func (r *ScheduleRepo) UpsertMany(ctx context.Context, schedules []entity.DailySchedule) error {
	if len(schedules) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now().UTC()
	batch := &pgx.Batch{}
	for _, s := range schedules {
		date := civilDate(s.Date)
		batch.Queue(`DELETE FROM schedule_entries WHERE date = $1`, date)
		for i, p := range s.Prayers {
			batch.Queue(`
				INSERT INTO schedule_entries (id, date, position, name, athan, iqamah, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			`, uuid.New(), date, i, p.Name, p.Athan, p.Iqamah, now, now)
		}
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("upserting schedule entries: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (r *ScheduleRepo) Delete(ctx context.Context, date time.Time) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM schedule_entries WHERE date = $1`, civilDate(date))
	if err != nil {
		return fmt.Errorf("deleting schedule entries: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrScheduleNotFound
	}
	return nil
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
