package repository

import (
	"context"
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/pkg/pagination"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/repository_mocks.go -package=mocks

// ScheduleRepository stores the schedules administrators publish. Dates are
// civil dates; only the year, month and day of the argument are used.
type ScheduleRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*entity.DailySchedule, error)
	ListRange(ctx context.Context, from, to time.Time) ([]entity.DailySchedule, error)
	ListPublished(ctx context.Context, params pagination.Params) ([]entity.DailySchedule, *pagination.Info, error)
	Upsert(ctx context.Context, schedule *entity.DailySchedule) error
	UpsertMany(ctx context.Context, schedules []entity.DailySchedule) error
	Delete(ctx context.Context, date time.Time) error
}

// ScheduleCache holds calculated schedules. A miss is reported as (nil, nil).
type ScheduleCache interface {
	Get(ctx context.Context, key string) (*entity.DailySchedule, error)
	Set(ctx context.Context, key string, schedule *entity.DailySchedule, ttl time.Duration) error
}
