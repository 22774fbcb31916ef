package calculation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/calculation"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/valueobject"
)

var indianapolis = valueobject.Location{Latitude: 39.7683333, Longitude: -86.1580556}

func loadZone(t *testing.T, name string) *time.Location {
	t.Helper()
	zone, err := time.LoadLocation(name)
	require.NoError(t, err)
	return zone
}

func assertClock(t *testing.T, want string, got time.Time) {
	t.Helper()
	expected, err := time.ParseInLocation("2006-01-02 15:04", want, got.Location())
	require.NoError(t, err)
	assert.WithinDuration(t, expected, got, 2*time.Minute, "want %s got %s", want, got.Format("2006-01-02 15:04"))
}

func TestCalculator_Times(t *testing.T) {
	zone := loadZone(t, "America/Indiana/Indianapolis")

	t.Run("summer ISNA standard", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.DefaultParams())

		times, err := calc.Times(time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC), indianapolis, zone)

		require.NoError(t, err)
		assertClock(t, "2025-08-05 05:22", times.Fajr)
		assertClock(t, "2025-08-05 06:48", times.Sunrise)
		assertClock(t, "2025-08-05 13:51", times.Dhuhr)
		assertClock(t, "2025-08-05 17:43", times.Asr)
		assertClock(t, "2025-08-05 20:53", times.Maghrib)
		assertClock(t, "2025-08-05 22:18", times.Isha)
		assert.Equal(t, zone, times.Fajr.Location())
	})

	t.Run("winter ISNA standard", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.DefaultParams())

		times, err := calc.Times(time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC), indianapolis, zone)

		require.NoError(t, err)
		assertClock(t, "2025-12-21 06:41", times.Fajr)
		assertClock(t, "2025-12-21 08:02", times.Sunrise)
		assertClock(t, "2025-12-21 12:43", times.Dhuhr)
		assertClock(t, "2025-12-21 15:06", times.Asr)
		assertClock(t, "2025-12-21 17:24", times.Maghrib)
		assertClock(t, "2025-12-21 18:44", times.Isha)
	})

	t.Run("hanafi asr is later", func(t *testing.T) {
		date := time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC)
		standard, err := calculation.NewCalculator(calculation.DefaultParams()).Times(date, indianapolis, zone)
		require.NoError(t, err)

		hanafi, err := calculation.NewCalculator(calculation.Params{
			Method: calculation.MethodISNA,
			Madhab: calculation.MadhabHanafi,
		}).Times(date, indianapolis, zone)
		require.NoError(t, err)

		assert.True(t, hanafi.Asr.After(standard.Asr))
		assertClock(t, "2025-08-05 18:49", hanafi.Asr)
		assert.Equal(t, standard.Fajr, hanafi.Fajr)
		assert.Equal(t, standard.Isha, hanafi.Isha)
	})

	t.Run("makkah isha follows maghrib by interval", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.Params{Method: calculation.MethodMakkah})

		times, err := calc.Times(time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC), valueobject.Location{Latitude: 21.4225, Longitude: 39.8262}, loadZone(t, "Asia/Riyadh"))

		require.NoError(t, err)
		assert.Equal(t, 90*time.Minute, times.Isha.Sub(times.Maghrib))
		assertClock(t, "2025-03-20 05:09", times.Fajr)
		assertClock(t, "2025-03-20 12:28", times.Dhuhr)
	})

	t.Run("results are whole minutes", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.DefaultParams())

		times, err := calc.Times(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), indianapolis, zone)

		require.NoError(t, err)
		for _, ts := range []time.Time{times.Fajr, times.Sunrise, times.Dhuhr, times.Asr, times.Maghrib, times.Isha} {
			assert.Zero(t, ts.Second())
			assert.Zero(t, ts.Nanosecond())
		}
	})

	t.Run("nil zone means UTC", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.DefaultParams())

		times, err := calc.Times(time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC),
			valueobject.Location{Latitude: 51.5074, Longitude: -0.1278}, nil)

		require.NoError(t, err)
		assert.Equal(t, time.UTC, times.Dhuhr.Location())
		assertClock(t, "2025-12-21 11:59", times.Dhuhr)
		assertClock(t, "2025-12-21 17:38", times.Isha)
	})

	t.Run("zone whose day splits the prayers is unavailable", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.DefaultParams())

		// Indianapolis' Maghrib is after midnight UTC
		_, err := calc.Times(time.Date(2025, time.August, 5, 0, 0, 0, 0, time.UTC), indianapolis, time.UTC)

		assert.ErrorIs(t, err, domain.ErrCalculationUnavailable)
	})
}

func TestCalculator_Ordering(t *testing.T) {
	cities := []struct {
		name string
		loc  valueobject.Location
		zone string
	}{
		{"indianapolis", indianapolis, "America/Indiana/Indianapolis"},
		{"cairo", valueobject.Location{Latitude: 30.0444, Longitude: 31.2357}, "Africa/Cairo"},
		{"jakarta", valueobject.Location{Latitude: -6.2088, Longitude: 106.8456}, "Asia/Jakarta"},
		{"cape town", valueobject.Location{Latitude: -33.9249, Longitude: 18.4241}, "Africa/Johannesburg"},
	}

	calc := calculation.NewCalculator(calculation.Params{Method: calculation.MethodMWL})

	for _, city := range cities {
		zone := loadZone(t, city.zone)
		for month := time.January; month <= time.December; month++ {
			times, err := calc.Times(time.Date(2025, month, 15, 0, 0, 0, 0, time.UTC), city.loc, zone)
			require.NoError(t, err, "%s %s", city.name, month)

			ordered := []time.Time{times.Fajr, times.Sunrise, times.Dhuhr, times.Asr, times.Maghrib, times.Isha}
			for i := 1; i < len(ordered); i++ {
				assert.True(t, ordered[i].After(ordered[i-1]), "%s %s: event %d not after %d", city.name, month, i, i-1)
			}
		}
	}
}

func TestCalculator_HighLatitude(t *testing.T) {
	t.Run("night portion when twilight persists", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.Params{Method: calculation.MethodMWL})

		times, err := calc.Times(time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
			valueobject.Location{Latitude: 51.5074, Longitude: -0.1278}, loadZone(t, "Europe/London"))

		require.NoError(t, err)
		assert.True(t, times.Fajr.Before(times.Sunrise))
		assert.True(t, times.Isha.After(times.Maghrib))
	})

	t.Run("isha that would pass midnight uses a seventh of the night", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.DefaultParams())
		zone := loadZone(t, "Europe/Helsinki")

		times, err := calc.Times(time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
			valueobject.Location{Latitude: 60.1699, Longitude: 24.9384}, zone)

		require.NoError(t, err)
		assertClock(t, "2025-06-21 22:50", times.Maghrib)
		assertClock(t, "2025-06-21 23:34", times.Isha)
		assertClock(t, "2025-06-21 02:38", times.Fajr)

		ordered := []time.Time{times.Fajr, times.Sunrise, times.Dhuhr, times.Asr, times.Maghrib, times.Isha}
		for i, at := range ordered {
			y, m, d := at.Date()
			assert.Equal(t, "2025-06-21", time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Format(time.DateOnly), "event %d", i)
			if i > 0 {
				assert.True(t, at.After(ordered[i-1]), "event %d not after %d", i, i-1)
			}
		}
	})

	t.Run("isha clamps to the last minute of the day", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.Params{Method: calculation.MethodMWL})
		zone := loadZone(t, "Europe/Helsinki")

		// Vaasa: sunset close to midnight leaves no room for a seventh of the night
		times, err := calc.Times(time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
			valueobject.Location{Latitude: 63.1, Longitude: 21.6}, zone)

		require.NoError(t, err)
		assertClock(t, "2025-06-21 23:47", times.Maghrib)
		assertClock(t, "2025-06-21 23:59", times.Isha)
	})

	t.Run("sunset past midnight is unavailable", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.Params{Method: calculation.MethodMWL})
		zone := loadZone(t, "Europe/Helsinki")

		// Oulu
		_, err := calc.Times(time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
			valueobject.Location{Latitude: 65.0121, Longitude: 25.4651}, zone)

		assert.ErrorIs(t, err, domain.ErrCalculationUnavailable)
	})

	t.Run("midnight sun is unavailable", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.DefaultParams())

		_, err := calc.Times(time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC),
			valueobject.Location{Latitude: 78.2232, Longitude: 15.6267}, time.UTC)

		assert.ErrorIs(t, err, domain.ErrCalculationUnavailable)
	})

	t.Run("polar night is unavailable", func(t *testing.T) {
		calc := calculation.NewCalculator(calculation.DefaultParams())

		_, err := calc.Times(time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC),
			valueobject.Location{Latitude: 78.2232, Longitude: 15.6267}, time.UTC)

		assert.ErrorIs(t, err, domain.ErrCalculationUnavailable)
	})
}

func TestCalculator_InvalidLocation(t *testing.T) {
	calc := calculation.NewCalculator(calculation.DefaultParams())

	_, err := calc.Times(time.Now(), valueobject.Location{Latitude: 95, Longitude: 0}, time.UTC)

	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

func TestLookupMethod(t *testing.T) {
	m, err := calculation.LookupMethod("isna")
	require.NoError(t, err)
	assert.Equal(t, calculation.MethodISNA, m)

	m, err = calculation.LookupMethod("Makkah")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, m.IshaInterval)

	_, err = calculation.LookupMethod("tehran")
	assert.Error(t, err)
}

func TestParseMadhab(t *testing.T) {
	m, err := calculation.ParseMadhab("Hanafi")
	require.NoError(t, err)
	assert.Equal(t, calculation.MadhabHanafi, m)

	m, err = calculation.ParseMadhab("shafi")
	require.NoError(t, err)
	assert.Equal(t, calculation.MadhabStandard, m)

	_, err = calculation.ParseMadhab("other")
	assert.Error(t, err)
}
