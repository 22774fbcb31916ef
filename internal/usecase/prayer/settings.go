package prayer

import (
	"fmt"
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/calculation"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/config"
)

// Settings describe the mosque whose schedule is served by default.
type Settings struct {
	Name            string
	Location        valueobject.Location
	Timezone        string
	DefaultTimezone string
	Params          calculation.Params
	// IqamahDelays is the time between athan and iqamah per prayer name.
	IqamahDelays map[string]time.Duration
	JummahTime   string
	CacheTTL     time.Duration
}

func NewSettings(cfg config.MosqueConfig, cacheTTL time.Duration) (Settings, error) {
	method, err := calculation.LookupMethod(cfg.Method)
	if err != nil {
		return Settings{}, err
	}
	madhab, err := calculation.ParseMadhab(cfg.Madhab)
	if err != nil {
		return Settings{}, err
	}

	loc := valueobject.NewLocation(cfg.Latitude, cfg.Longitude)
	if !loc.IsValid() {
		return Settings{}, fmt.Errorf("mosque coordinates: %w", domain.ErrInvalidLocation)
	}
	for _, tz := range []string{cfg.Timezone, cfg.DefaultTimezone} {
		if _, err := time.LoadLocation(tz); err != nil {
			return Settings{}, fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, tz)
		}
	}
	if _, err := valueobject.ParseClock(cfg.JummahTime); err != nil {
		return Settings{}, fmt.Errorf("jummah time: %w", err)
	}

	return Settings{
		Name:            cfg.Name,
		Location:        *loc,
		Timezone:        cfg.Timezone,
		DefaultTimezone: cfg.DefaultTimezone,
		Params:          calculation.Params{Method: method, Madhab: madhab},
		IqamahDelays: map[string]time.Duration{
			entity.Fajr:    cfg.FajrIqamah,
			entity.Dhuhr:   cfg.DhuhrIqamah,
			entity.Asr:     cfg.AsrIqamah,
			entity.Maghrib: cfg.MaghribIqamah,
			entity.Isha:    cfg.IshaIqamah,
		},
		JummahTime: cfg.JummahTime,
		CacheTTL:   cacheTTL,
	}, nil
}
