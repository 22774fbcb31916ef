package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prayerNames(schedule map[string]any) []string {
	var names []string
	for _, p := range schedule["prayers"].([]any) {
		names = append(names, p.(map[string]any)["name"].(string))
	}
	return names
}

func TestPrayerTimesE2E(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("today is calculated for the mosque", func(t *testing.T) {
		resp, err := app.get("/prayer-times/today", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var schedule map[string]any
		parseResponse(t, resp, &schedule)

		assert.Equal(t, "2025-08-05", schedule["date"])
		assert.Equal(t, "calculated", schedule["source"])
		assert.Equal(t, "America/Indiana/Indianapolis", schedule["timezone"])
		names := prayerNames(schedule)
		assert.Contains(t, names, "Fajr")
		assert.Contains(t, names, "Isha")
	})

	t.Run("tomorrow", func(t *testing.T) {
		resp, err := app.get("/prayer-times/tomorrow", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var schedule map[string]any
		parseResponse(t, resp, &schedule)
		assert.Equal(t, "2025-08-06", schedule["date"])
	})

	t.Run("today at a location resolves its timezone", func(t *testing.T) {
		resp, err := app.get("/prayer-times/today/location?latitude=51.5074&longitude=-0.1278", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var schedule map[string]any
		parseResponse(t, resp, &schedule)
		assert.Equal(t, "Europe/London", schedule["timezone"])
		assert.Equal(t, "calculated", schedule["source"])
	})

	t.Run("location endpoint requires coordinates", func(t *testing.T) {
		resp, err := app.get("/prayer-times/today/location", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("week returns seven days", func(t *testing.T) {
		resp, err := app.get("/prayer-times/week", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)
		assert.Len(t, body["schedules"], 7)
	})

	t.Run("month covers every day", func(t *testing.T) {
		resp, err := app.get("/prayer-times/month/2024/2", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)
		assert.Len(t, body["schedules"], 29)
	})

	t.Run("invalid date", func(t *testing.T) {
		resp, err := app.get("/prayer-times/2025-13-40", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("current prayer in the afternoon", func(t *testing.T) {
		resp, err := app.get("/prayer-times/current", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var current map[string]any
		parseResponse(t, resp, &current)
		assert.Equal(t, "Dhuhr", current["current"].(map[string]any)["name"])
		assert.Equal(t, "Asr", current["next"].(map[string]any)["name"])
		assert.Equal(t, false, current["next_is_tomorrow"])
	})

	t.Run("jummah", func(t *testing.T) {
		resp, err := app.get("/prayer-times/jummah", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var schedule map[string]any
		parseResponse(t, resp, &schedule)
		assert.Equal(t, "jummah", schedule["source"])
		assert.Equal(t, []string{"Jummah"}, prayerNames(schedule))
	})
}

func TestQiblaE2E(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("direction from Indianapolis", func(t *testing.T) {
		resp, err := app.get("/qibla?latitude=39.7684&longitude=-86.1581", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var qibla map[string]any
		parseResponse(t, resp, &qibla)
		assert.InDelta(t, 50.06, qibla["bearing"], 0.05)
		assert.InDelta(t, 11204.55, qibla["distance_km"], 1)
		assert.Equal(t, "NE", qibla["compass_point"])
		assert.NotContains(t, qibla, "rotation")
	})

	t.Run("rotation for a device heading", func(t *testing.T) {
		resp, err := app.get("/qibla?latitude=39.7684&longitude=-86.1581&heading=90", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var qibla map[string]any
		parseResponse(t, resp, &qibla)
		assert.InDelta(t, 320.06, qibla["rotation"], 0.05)
	})

	t.Run("out of range latitude", func(t *testing.T) {
		resp, err := app.get("/qibla?latitude=91&longitude=0", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("great circle path", func(t *testing.T) {
		resp, err := app.get("/qibla/path?latitude=51.5074&longitude=-0.1278&segments=8", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/geo+json", resp.Header.Get("Content-Type"))

		var feature map[string]any
		parseResponse(t, resp, &feature)
		assert.Equal(t, "Feature", feature["type"])
		geometry := feature["geometry"].(map[string]any)
		assert.Equal(t, "LineString", geometry["type"])
		assert.Len(t, geometry["coordinates"], 9)
	})
}
