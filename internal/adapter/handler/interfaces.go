package handler

import (
	"context"
	"io"
	"time"

	"github.com/paulmach/orb"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	domainqibla "github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/qibla"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/pkg/pagination"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/admin"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/prayer"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/qibla"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/timetable"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/handler_mocks.go -package=mocks

type PrayerService interface {
	ForDate(ctx context.Context, date time.Time, q prayer.Query) (*entity.DailySchedule, error)
	Today(ctx context.Context, q prayer.Query) (*entity.DailySchedule, error)
	Tomorrow(ctx context.Context, q prayer.Query) (*entity.DailySchedule, error)
	Week(ctx context.Context, q prayer.Query) ([]entity.DailySchedule, error)
	Month(ctx context.Context, year int, month time.Month, q prayer.Query) ([]entity.DailySchedule, error)
	Jummah(ctx context.Context) (*entity.DailySchedule, error)
	Current(ctx context.Context, q prayer.Query, at *valueobject.ClockTime) (*prayer.Current, error)
}

type ScheduleAdminService interface {
	Publish(ctx context.Context, date time.Time, prayers []entity.Prayer) (*entity.DailySchedule, error)
	Unpublish(ctx context.Context, date time.Time) error
	ImportCSV(ctx context.Context, r io.Reader) (*prayer.ImportResult, error)
	ListPublished(ctx context.Context, page, perPage int) ([]entity.DailySchedule, *pagination.Info, error)
}

type QiblaService interface {
	Direction(ctx context.Context, loc valueobject.Location, heading *float64) (*qibla.Direction, error)
	Path(ctx context.Context, loc valueobject.Location, segments int) (orb.LineString, *domainqibla.Result, error)
}

type TimetableService interface {
	Render(ctx context.Context, year int, month time.Month, format string) (*timetable.File, error)
	Publish(ctx context.Context, year int, month time.Month) ([]timetable.PublishedFile, error)
}

type AdminService interface {
	Login(ctx context.Context, username, password string) (*admin.Token, error)
}
