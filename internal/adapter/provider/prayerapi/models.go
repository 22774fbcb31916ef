package prayerapi

import (
	"fmt"
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
)

// ScheduleResponse is the prayer-times document served by the backend:
// {"date": "2025-08-05", "prayers": [{"name", "athan", "iqamah"}]}.
type ScheduleResponse struct {
	Date     string           `json:"date"`
	Timezone string           `json:"timezone,omitempty"`
	Source   string           `json:"source,omitempty"`
	Prayers  []PrayerResponse `json:"prayers"`
}

type PrayerResponse struct {
	Name   string `json:"name"`
	Athan  string `json:"athan"`
	Iqamah string `json:"iqamah"`
}

func (r *ScheduleResponse) toEntity() (*entity.DailySchedule, error) {
	date, err := time.Parse(time.DateOnly, r.Date)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule date %q: %w", r.Date, err)
	}

	prayers := make([]entity.Prayer, len(r.Prayers))
	for i, p := range r.Prayers {
		prayers[i] = entity.Prayer{Name: p.Name, Athan: p.Athan, Iqamah: p.Iqamah}
	}

	return entity.NewDailySchedule(date, r.Timezone, r.Source, prayers), nil
}
