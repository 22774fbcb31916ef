package valueobject

import (
	"fmt"
	"strings"
	"time"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
)

// ClockTime is a time of day normalized to seconds after midnight.
type ClockTime int

const secondsPerDay = 24 * 60 * 60

var clockLayouts = []string{
	"3:04 PM",
	"3:04PM",
	"3:04:05 PM",
	"3:04:05PM",
	"15:04",
	"15:04:05",
}

func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime(hour*3600 + minute*60 + second)
}

// ParseClock accepts 24-hour ("13:30", "05:00:00") and 12-hour ("1:30 PM") forms.
// 12 AM maps to hour 0 and 12 PM stays at hour 12.
func ParseClock(s string) (ClockTime, error) {
	value := strings.ToUpper(strings.TrimSpace(s))
	if value == "" {
		return 0, fmt.Errorf("%w: empty value", domain.ErrMalformedTime)
	}

	for _, layout := range clockLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return NewClockTime(t.Hour(), t.Minute(), t.Second()), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", domain.ErrMalformedTime, s)
}

func ClockOf(t time.Time) ClockTime {
	return NewClockTime(t.Hour(), t.Minute(), t.Second())
}

func (c ClockTime) Hour() int {
	return int(c) / 3600
}

func (c ClockTime) Minute() int {
	return int(c) % 3600 / 60
}

func (c ClockTime) Second() int {
	return int(c) % 60
}

func (c ClockTime) Before(other ClockTime) bool {
	return c < other
}

func (c ClockTime) After(other ClockTime) bool {
	return c > other
}

// Until returns the forward distance to other, wrapping past midnight.
func (c ClockTime) Until(other ClockTime) time.Duration {
	diff := int(other) - int(c)
	if diff < 0 {
		diff += secondsPerDay
	}
	return time.Duration(diff) * time.Second
}

// On anchors the clock time to the civil date of day in loc.
func (c ClockTime) On(day time.Time, loc *time.Location) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), c.Second(), 0, loc)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) Format12h() string {
	hour := c.Hour()
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour %= 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, c.Minute(), period)
}
