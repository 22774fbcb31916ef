package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
)

const scheduleKeyPrefix = "schedule:"

type ScheduleCache struct {
	client *redis.Client
}

func NewScheduleCache(client *redis.Client) *ScheduleCache {
	return &ScheduleCache{client: client}
}

type cachedPrayer struct {
	Name   string `json:"name"`
	Athan  string `json:"athan"`
	Iqamah string `json:"iqamah"`
}

type cachedSchedule struct {
	Date     string         `json:"date"`
	Timezone string         `json:"timezone"`
	Source   string         `json:"source"`
	Prayers  []cachedPrayer `json:"prayers"`
}

func (c *ScheduleCache) Get(ctx context.Context, key string) (*entity.DailySchedule, error) {
	raw, err := c.client.Get(ctx, scheduleKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading cached schedule: %w", err)
	}

	var cached cachedSchedule
	if err := json.Unmarshal(raw, &cached); err != nil {
		return nil, fmt.Errorf("decoding cached schedule: %w", err)
	}

	date, err := time.Parse(time.DateOnly, cached.Date)
	if err != nil {
		return nil, fmt.Errorf("decoding cached schedule date: %w", err)
	}

	prayers := make([]entity.Prayer, len(cached.Prayers))
	for i, p := range cached.Prayers {
		prayers[i] = entity.Prayer{Name: p.Name, Athan: p.Athan, Iqamah: p.Iqamah}
	}

	return entity.NewDailySchedule(date, cached.Timezone, cached.Source, prayers), nil
}

func (c *ScheduleCache) Set(ctx context.Context, key string, schedule *entity.DailySchedule, ttl time.Duration) error {
	cached := cachedSchedule{
		Date:     schedule.DateString(),
		Timezone: schedule.Timezone,
		Source:   schedule.Source,
		Prayers:  make([]cachedPrayer, len(schedule.Prayers)),
	}
	for i, p := range schedule.Prayers {
		cached.Prayers[i] = cachedPrayer{Name: p.Name, Athan: p.Athan, Iqamah: p.Iqamah}
	}

	raw, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("encoding schedule: %w", err)
	}

	if err := c.client.Set(ctx, scheduleKeyPrefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("caching schedule: %w", err)
	}
	return nil
}
