package valueobject_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input  string
		hour   int
		minute int
		second int
	}{
		{"12:00 AM", 0, 0, 0},
		{"12:00 PM", 12, 0, 0},
		{"01:30 PM", 13, 30, 0},
		{"1:30 PM", 13, 30, 0},
		{"1:30pm", 13, 30, 0},
		{" 5:22 am ", 5, 22, 0},
		{"11:59:30 PM", 23, 59, 30},
		{"13:30", 13, 30, 0},
		{"05:00:00", 5, 0, 0},
		{"0:00", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			clock, err := valueobject.ParseClock(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.hour, clock.Hour())
			assert.Equal(t, tt.minute, clock.Minute())
			assert.Equal(t, tt.second, clock.Second())
		})
	}
}

func TestParseClock_Malformed(t *testing.T) {
	for _, input := range []string{"", "   ", "25:00", "13:30 PM", "noon", "1:3o PM", "12:60"} {
		t.Run(input, func(t *testing.T) {
			_, err := valueobject.ParseClock(input)

			assert.ErrorIs(t, err, domain.ErrMalformedTime)
		})
	}
}

func TestClockTime_Until(t *testing.T) {
	assert.Equal(t, 2*time.Hour, valueobject.NewClockTime(13, 0, 0).Until(valueobject.NewClockTime(15, 0, 0)))
	assert.Equal(t, 2*time.Hour, valueobject.NewClockTime(23, 0, 0).Until(valueobject.NewClockTime(1, 0, 0)))
	assert.Equal(t, time.Duration(0), valueobject.NewClockTime(9, 0, 0).Until(valueobject.NewClockTime(9, 0, 0)))
}

func TestClockTime_Format(t *testing.T) {
	tests := []struct {
		clock valueobject.ClockTime
		h24   string
		h12   string
	}{
		{valueobject.NewClockTime(0, 5, 0), "00:05", "12:05 AM"},
		{valueobject.NewClockTime(12, 0, 0), "12:00", "12:00 PM"},
		{valueobject.NewClockTime(13, 30, 0), "13:30", "1:30 PM"},
		{valueobject.NewClockTime(23, 59, 59), "23:59", "11:59 PM"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.h24, tt.clock.String())
		assert.Equal(t, tt.h12, tt.clock.Format12h())

		parsed, err := valueobject.ParseClock(tt.clock.Format12h())
		require.NoError(t, err)
		assert.Equal(t, tt.clock.Hour(), parsed.Hour())
		assert.Equal(t, tt.clock.Minute(), parsed.Minute())
	}
}

func TestClockTime_On(t *testing.T) {
	zone, err := time.LoadLocation("America/Indiana/Indianapolis")
	require.NoError(t, err)

	day := time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)
	got := valueobject.NewClockTime(13, 51, 0).On(day, zone)

	assert.Equal(t, time.Date(2025, time.August, 5, 17, 51, 0, 0, time.UTC), got.UTC())
}

func TestClockOf(t *testing.T) {
	clock := valueobject.ClockOf(time.Date(2025, time.August, 5, 20, 53, 12, 999, time.UTC))

	assert.Equal(t, valueobject.NewClockTime(20, 53, 12), clock)
}

func TestLocation(t *testing.T) {
	assert.True(t, valueobject.NewLocation(39.7684, -86.1581).IsValid())
	assert.True(t, valueobject.NewLocation(90, 180).IsValid())
	assert.False(t, valueobject.NewLocation(90.1, 0).IsValid())
	assert.False(t, valueobject.NewLocation(0, -180.5).IsValid())
	assert.True(t, valueobject.NewLocation(0, 0).IsNullIsland())
	assert.False(t, valueobject.NewLocation(0, 0.5).IsNullIsland())
}
