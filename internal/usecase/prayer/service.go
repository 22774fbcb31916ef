package prayer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/repository"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/calculation"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/schedule"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/observability"
)

//go:generate mockgen -source=service.go -destination=../../mocks/prayer_mocks.go -package=mocks

// TimezoneFinder maps a coordinate to an IANA zone name.
type TimezoneFinder interface {
	Lookup(latitude, longitude float64) (string, error)
}

// Query selects whose schedule is wanted. Without a location the mosque's
// schedule is served, including any published overrides.
type Query struct {
	Location *valueobject.Location
	Timezone string
}

type Option func(*Service)

// WithClock replaces the wall clock used for "today".
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

type Service struct {
	repo     repository.ScheduleRepository
	cache    repository.ScheduleCache
	tz       TimezoneFinder
	calc     *calculation.Calculator
	settings Settings
	logger   *zap.Logger
	now      func() time.Time
}

func NewService(
	repo repository.ScheduleRepository,
	cache repository.ScheduleCache,
	tz TimezoneFinder,
	settings Settings,
	logger *zap.Logger,
	opts ...Option,
) *Service {
	s := &Service{
		repo:     repo,
		cache:    cache,
		tz:       tz,
		calc:     calculation.NewCalculator(settings.Params),
		settings: settings,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type target struct {
	location valueobject.Location
	zone     *time.Location
	// mosque is set when published overrides apply.
	mosque bool
}

func (s *Service) resolveTarget(q Query) (*target, error) {
	if q.Location == nil {
		name := s.settings.Timezone
		if q.Timezone != "" {
			name = q.Timezone
		}
		zone, err := loadZone(name)
		if err != nil {
			return nil, err
		}
		return &target{
			location: s.settings.Location,
			zone:     zone,
			mosque:   zone.String() == s.settings.Timezone,
		}, nil
	}

	if !q.Location.IsValid() {
		return nil, domain.ErrInvalidLocation
	}

	if q.Timezone != "" {
		zone, err := loadZone(q.Timezone)
		if err != nil {
			return nil, err
		}
		return &target{location: *q.Location, zone: zone}, nil
	}

	name, err := s.tz.Lookup(q.Location.Latitude, q.Location.Longitude)
	if err != nil || name == "" {
		s.logger.Debug("timezone lookup failed, using default",
			zap.Float64("latitude", q.Location.Latitude),
			zap.Float64("longitude", q.Location.Longitude),
			zap.Error(err),
		)
		name = s.settings.DefaultTimezone
	}
	zone, err := loadZone(name)
	if err != nil {
		return nil, err
	}
	return &target{location: *q.Location, zone: zone}, nil
}

func loadZone(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, name)
	}
	zone, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, name)
	}
	return zone, nil
}

func (s *Service) today(zone *time.Location) time.Time {
	return civilDate(s.now().In(zone))
}

func (s *Service) ForDate(ctx context.Context, date time.Time, q Query) (*entity.DailySchedule, error) {
	t, err := s.resolveTarget(q)
	if err != nil {
		return nil, err
	}
	return s.forDate(ctx, civilDate(date), t)
}

func (s *Service) Today(ctx context.Context, q Query) (*entity.DailySchedule, error) {
	t, err := s.resolveTarget(q)
	if err != nil {
		return nil, err
	}
	return s.forDate(ctx, s.today(t.zone), t)
}

func (s *Service) Tomorrow(ctx context.Context, q Query) (*entity.DailySchedule, error) {
	t, err := s.resolveTarget(q)
	if err != nil {
		return nil, err
	}
	return s.forDate(ctx, s.today(t.zone).AddDate(0, 0, 1), t)
}

// Week returns seven consecutive schedules starting today.
func (s *Service) Week(ctx context.Context, q Query) ([]entity.DailySchedule, error) {
	t, err := s.resolveTarget(q)
	if err != nil {
		return nil, err
	}
	return s.forRange(ctx, s.today(t.zone), 7, t)
}

func (s *Service) Month(ctx context.Context, year int, month time.Month, q Query) ([]entity.DailySchedule, error) {
	if year < 1 || year > 9999 || month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: %04d-%02d", domain.ErrInvalidDate, year, int(month))
	}
	t, err := s.resolveTarget(q)
	if err != nil {
		return nil, err
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := first.AddDate(0, 1, -1).Day()
	return s.forRange(ctx, first, days, t)
}

// Timetable is the mosque's month, as printed and published.
func (s *Service) Timetable(ctx context.Context, year int, month time.Month) (*entity.Timetable, error) {
	days, err := s.Month(ctx, year, month, Query{})
	if err != nil {
		return nil, err
	}
	return &entity.Timetable{
		MosqueName: s.settings.Name,
		Year:       year,
		Month:      month,
		Timezone:   s.settings.Timezone,
		Days:       days,
	}, nil
}

// Jummah returns the fixed Friday congregation slot dated today.
func (s *Service) Jummah(ctx context.Context) (*entity.DailySchedule, error) {
	zone, err := loadZone(s.settings.Timezone)
	if err != nil {
		return nil, err
	}
	return entity.NewDailySchedule(s.today(zone), s.settings.Timezone, entity.SourceJummah, []entity.Prayer{
		{Name: entity.Jummah, Athan: s.settings.JummahTime, Iqamah: s.settings.JummahTime},
	}), nil
}

type Current struct {
	Schedule  *entity.DailySchedule
	Selection *schedule.Selection
	At        valueobject.ClockTime
	UntilNext time.Duration
	Progress  float64
}

// Current resolves today's schedule at the given clock time, or at the
// service clock in the target zone when at is nil.
func (s *Service) Current(ctx context.Context, q Query, at *valueobject.ClockTime) (*Current, error) {
	t, err := s.resolveTarget(q)
	if err != nil {
		return nil, err
	}

	now := s.now().In(t.zone)
	day, err := s.forDate(ctx, civilDate(now), t)
	if err != nil {
		return nil, err
	}

	clock := valueobject.ClockOf(now)
	if at != nil {
		clock = *at
	}

	sel, err := schedule.Resolve(day.Prayers, clock)
	if err != nil {
		return nil, fmt.Errorf("resolving schedule for %s: %w", day.DateString(), err)
	}
	if len(sel.Skipped) > 0 {
		s.logger.Warn("skipped malformed schedule entries",
			zap.String("date", day.DateString()),
			zap.Strings("prayers", sel.Skipped),
		)
	}

	return &Current{
		Schedule:  day,
		Selection: sel,
		At:        clock,
		UntilNext: sel.UntilNext(clock),
		Progress:  sel.Progress(clock),
	}, nil
}

func (s *Service) forDate(ctx context.Context, date time.Time, t *target) (*entity.DailySchedule, error) {
	if t.mosque {
		published, err := s.repo.GetByDate(ctx, date)
		switch {
		case err == nil:
			published.Timezone = t.zone.String()
			observability.ScheduleLookups.WithLabelValues(entity.SourcePublished).Inc()
			return published, nil
		case !errors.Is(err, domain.ErrScheduleNotFound):
			return nil, fmt.Errorf("getting published schedule: %w", err)
		}
	}
	return s.calculated(ctx, date, t)
}

func (s *Service) forRange(ctx context.Context, from time.Time, days int, t *target) ([]entity.DailySchedule, error) {
	published := make(map[string]entity.DailySchedule)
	if t.mosque {
		list, err := s.repo.ListRange(ctx, from, from.AddDate(0, 0, days-1))
		if err != nil {
			return nil, fmt.Errorf("listing published schedules: %w", err)
		}
		for _, p := range list {
			p.Timezone = t.zone.String()
			published[p.DateString()] = p
		}
	}

	schedules := make([]entity.DailySchedule, 0, days)
	for i := range days {
		date := from.AddDate(0, 0, i)
		if p, ok := published[date.Format(time.DateOnly)]; ok {
			observability.ScheduleLookups.WithLabelValues(entity.SourcePublished).Inc()
			schedules = append(schedules, p)
			continue
		}

		calculated, err := s.calculated(ctx, date, t)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, *calculated)
	}

	return schedules, nil
}

func (s *Service) calculated(ctx context.Context, date time.Time, t *target) (*entity.DailySchedule, error) {
	key := s.cacheKey(date, t)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("schedule cache read failed", zap.String("key", key), zap.Error(err))
	} else if cached != nil {
		observability.ScheduleLookups.WithLabelValues("cache").Inc()
		return cached, nil
	}

	times, err := s.calc.Times(date, t.location, t.zone)
	if err != nil {
		return nil, fmt.Errorf("calculating prayer times for %s: %w", date.Format(time.DateOnly), err)
	}

	day := entity.NewDailySchedule(date, t.zone.String(), entity.SourceCalculated, s.withIqamah(times))

	if err := s.cache.Set(ctx, key, day, s.settings.CacheTTL); err != nil {
		s.logger.Warn("schedule cache write failed", zap.String("key", key), zap.Error(err))
	}
	observability.ScheduleLookups.WithLabelValues(entity.SourceCalculated).Inc()

	return day, nil
}

func (s *Service) withIqamah(times calculation.Times) []entity.Prayer {
	athans := []struct {
		name string
		at   time.Time
	}{
		{entity.Fajr, times.Fajr},
		{entity.Dhuhr, times.Dhuhr},
		{entity.Asr, times.Asr},
		{entity.Maghrib, times.Maghrib},
		{entity.Isha, times.Isha},
	}

	prayers := make([]entity.Prayer, len(athans))
	for i, a := range athans {
		// iqamah stays on the athan's day
		iqamah := a.at.Add(s.settings.IqamahDelays[a.name])
		y, m, d := a.at.Date()
		if last := time.Date(y, m, d, 23, 59, 0, 0, a.at.Location()); iqamah.After(last) {
			iqamah = last
		}
		prayers[i] = entity.Prayer{
			Name:   a.name,
			Athan:  valueobject.ClockOf(a.at).Format12h(),
			Iqamah: valueobject.ClockOf(iqamah).Format12h(),
		}
	}
	return prayers
}

func (s *Service) cacheKey(date time.Time, t *target) string {
	params := s.calc.Params()
	return fmt.Sprintf("%s:%.4f,%.4f:%s:%s:%s",
		date.Format(time.DateOnly),
		t.location.Latitude, t.location.Longitude,
		t.zone.String(), params.Method.Name, params.Madhab,
	)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
