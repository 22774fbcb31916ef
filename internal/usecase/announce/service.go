// Package announce turns the daily schedule into timed events for mosque
// displays: a heads-up before each athan and a notice when a prayer begins.
package announce

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/schedule"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/observability"
)

//go:generate mockgen -source=service.go -destination=../../mocks/announce_mocks.go -package=mocks

const (
	EventUpcoming = "prayer.upcoming"
	EventStarted  = "prayer.started"
)

// ScheduleSource serves the schedule of a civil date; only the year, month
// and day of date are meaningful.
type ScheduleSource interface {
	ForDate(ctx context.Context, date time.Time) (*entity.DailySchedule, error)
}

type Publisher interface {
	Publish(ctx context.Context, topic string, payload []byte) error
}

type Event struct {
	Type         string    `json:"type"`
	Prayer       string    `json:"prayer"`
	Athan        string    `json:"athan"`
	Iqamah       string    `json:"iqamah"`
	Date         string    `json:"date"`
	At           time.Time `json:"at"`
	MinutesUntil *int      `json:"minutes_until,omitempty"`
}

type Config struct {
	Topic    string
	LeadTime time.Duration
	Zone     *time.Location
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// Service is not safe for concurrent Tick calls; Run drives it from a
// single goroutine.
type Service struct {
	source    ScheduleSource
	publisher Publisher
	cfg       Config
	logger    *zap.Logger
	now       func() time.Time

	date      string
	day       *entity.DailySchedule
	current   string
	announced map[string]bool
}

func NewService(source ScheduleSource, publisher Publisher, cfg Config, logger *zap.Logger, opts ...Option) *Service {
	if cfg.Zone == nil {
		cfg.Zone = time.UTC
	}
	s := &Service{
		source:    source,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
		announced: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Tick refreshes the schedule when the date changes and publishes whatever
// events are due at the current time. Events that fail to publish are retried
// on the next tick.
func (s *Service) Tick(ctx context.Context) error {
	now := s.now().In(s.cfg.Zone)
	clock := valueobject.ClockOf(now)
	date := now.Format(time.DateOnly)

	fresh := false
	if s.day == nil || s.date != date {
		y, m, d := now.Date()
		day, err := s.source.ForDate(ctx, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
		if err != nil {
			return fmt.Errorf("loading schedule for %s: %w", date, err)
		}
		if day.DateString() != date {
			s.logger.Warn("schedule date differs from local date",
				zap.String("schedule_date", day.DateString()),
				zap.String("local_date", date),
			)
		}
		s.day = day
		s.date = date
		s.announced = make(map[string]bool)
		fresh = true
	}

	sel, err := schedule.Resolve(s.day.Prayers, clock)
	if err != nil {
		return fmt.Errorf("resolving schedule: %w", err)
	}
	if fresh && len(sel.Skipped) > 0 {
		s.logger.Warn("skipped malformed schedule entries", zap.Strings("prayers", sel.Skipped))
	}

	// the prayer in progress when a schedule is loaded is not announced
	if fresh {
		s.current = ""
		if sel.Current != nil {
			s.current = sel.Current.Prayer.Name
		}
	}

	if sel.Current != nil && sel.Current.Prayer.Name != s.current {
		if err := s.publish(ctx, EventStarted, sel.Current.Prayer, now, nil); err != nil {
			return err
		}
		s.current = sel.Current.Prayer.Name
	}

	if !sel.NextIsTomorrow {
		until := sel.UntilNext(clock)
		key := sel.Next.Prayer.Name
		if until > 0 && until <= s.cfg.LeadTime && !s.announced[key] {
			minutes := int((until + time.Minute - 1) / time.Minute)
			if err := s.publish(ctx, EventUpcoming, sel.Next.Prayer, now, &minutes); err != nil {
				return err
			}
			s.announced[key] = true
		}
	}

	return nil
}

// Run ticks every interval until ctx is cancelled. Tick failures are logged
// and do not stop the loop.
func (s *Service) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("announcer started",
		zap.String("topic", s.cfg.Topic),
		zap.Duration("lead_time", s.cfg.LeadTime),
		zap.Duration("interval", interval),
	)

	for {
		if err := s.Tick(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("announcer tick failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			s.logger.Info("announcer stopped")
			return nil
		case <-ticker.C:
		}
	}
}

func (s *Service) publish(ctx context.Context, eventType string, p entity.Prayer, at time.Time, minutes *int) error {
	payload, err := json.Marshal(Event{
		Type:         eventType,
		Prayer:       p.Name,
		Athan:        p.Athan,
		Iqamah:       p.Iqamah,
		Date:         s.date,
		At:           at,
		MinutesUntil: minutes,
	})
	if err != nil {
		return fmt.Errorf("encoding %s event: %w", eventType, err)
	}

	if err := s.publisher.Publish(ctx, s.cfg.Topic, payload); err != nil {
		return fmt.Errorf("publishing %s for %s: %w", eventType, p.Name, err)
	}

	observability.AnnouncementsPublished.WithLabelValues(eventType).Inc()
	s.logger.Info("announcement published", zap.String("type", eventType), zap.String("prayer", p.Name))
	return nil
}
