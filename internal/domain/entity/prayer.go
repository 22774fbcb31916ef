package entity

import "time"

const (
	SourceCalculated = "calculated"
	SourcePublished  = "published"
	SourceJummah     = "jummah"
)

const (
	Fajr    = "Fajr"
	Sunrise = "Sunrise"
	Dhuhr   = "Dhuhr"
	Asr     = "Asr"
	Maghrib = "Maghrib"
	Isha    = "Isha"
	Jummah  = "Jummah"
)

// Prayer is one slot of a daily schedule. Athan and Iqamah keep the textual
// form they were published with ("1:49 PM" or "13:49").
type Prayer struct {
	Name   string
	Athan  string
	Iqamah string
}

type DailySchedule struct {
	Date     time.Time
	Timezone string
	Source   string
	Prayers  []Prayer
}

func NewDailySchedule(date time.Time, timezone, source string, prayers []Prayer) *DailySchedule {
	y, m, d := date.Date()
	return &DailySchedule{
		Date:     time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Timezone: timezone,
		Source:   source,
		Prayers:  prayers,
	}
}

func (s *DailySchedule) DateString() string {
	return s.Date.Format(time.DateOnly)
}

func (s *DailySchedule) IsEmpty() bool {
	return len(s.Prayers) == 0
}

// Find returns the prayer with the given name, if present.
func (s *DailySchedule) Find(name string) (Prayer, bool) {
	for _, p := range s.Prayers {
		if p.Name == name {
			return p, true
		}
	}
	return Prayer{}, false
}
