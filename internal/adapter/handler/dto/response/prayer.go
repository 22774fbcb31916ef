package response

import (
	"fmt"
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/schedule"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/prayer"
)

type PrayerResponse struct {
	Name   string `json:"name"`
	Athan  string `json:"athan"`
	Iqamah string `json:"iqamah"`
}

type ScheduleResponse struct {
	Date     string           `json:"date"`
	Timezone string           `json:"timezone,omitempty"`
	Source   string           `json:"source"`
	Prayers  []PrayerResponse `json:"prayers"`
}

type SchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

func ScheduleFromEntity(s *entity.DailySchedule) ScheduleResponse {
	resp := ScheduleResponse{
		Date:     s.DateString(),
		Timezone: s.Timezone,
		Source:   s.Source,
		Prayers:  make([]PrayerResponse, 0, len(s.Prayers)),
	}
	for _, p := range s.Prayers {
		resp.Prayers = append(resp.Prayers, PrayerResponse{Name: p.Name, Athan: p.Athan, Iqamah: p.Iqamah})
	}
	return resp
}

func SchedulesFromEntities(schedules []entity.DailySchedule) SchedulesResponse {
	resp := SchedulesResponse{Schedules: make([]ScheduleResponse, 0, len(schedules))}
	for i := range schedules {
		resp.Schedules = append(resp.Schedules, ScheduleFromEntity(&schedules[i]))
	}
	return resp
}

type SlotResponse struct {
	Index  int    `json:"index"`
	Name   string `json:"name"`
	Athan  string `json:"athan"`
	Iqamah string `json:"iqamah"`
}

type CurrentResponse struct {
	Date             string        `json:"date"`
	Timezone         string        `json:"timezone"`
	At               string        `json:"at"`
	Current          *SlotResponse `json:"current"`
	Next             SlotResponse  `json:"next"`
	NextIsTomorrow   bool          `json:"next_is_tomorrow"`
	SecondsUntilNext int64         `json:"seconds_until_next"`
	Countdown        string        `json:"countdown"`
	Progress         float64       `json:"progress"`
	Skipped          []string      `json:"skipped,omitempty"`
}

func CurrentFromResult(c *prayer.Current) CurrentResponse {
	resp := CurrentResponse{
		Date:             c.Schedule.DateString(),
		Timezone:         c.Schedule.Timezone,
		At:               c.At.String(),
		Next:             slotFrom(c.Selection.Next),
		NextIsTomorrow:   c.Selection.NextIsTomorrow,
		SecondsUntilNext: int64(c.UntilNext / time.Second),
		Countdown:        countdown(c.UntilNext),
		Progress:         c.Progress,
		Skipped:          c.Selection.Skipped,
	}
	if c.Selection.Current != nil {
		current := slotFrom(*c.Selection.Current)
		resp.Current = &current
	}
	return resp
}

func slotFrom(s schedule.Slot) SlotResponse {
	return SlotResponse{
		Index:  s.Index,
		Name:   s.Prayer.Name,
		Athan:  s.Prayer.Athan,
		Iqamah: s.Prayer.Iqamah,
	}
}

// countdown renders d as "2h 05m", or "12m" under an hour.
func countdown(d time.Duration) string {
	minutes := int((d + time.Minute - 1) / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
