package entity

import "time"

// Timetable is a month of daily schedules for printing or download.
type Timetable struct {
	MosqueName string
	Year       int
	Month      time.Month
	Timezone   string
	Days       []DailySchedule
}

// PrayerNames lists every prayer name that appears in the month, in order of
// first appearance.
func (t *Timetable) PrayerNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, day := range t.Days {
		for _, p := range day.Prayers {
			if !seen[p.Name] {
				seen[p.Name] = true
				names = append(names, p.Name)
			}
		}
	}
	return names
}

func (t *Timetable) Title() string {
	return time.Date(t.Year, t.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
