package e2e_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLoginE2E(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("wrong password", func(t *testing.T) {
		resp, err := app.post("/admin/login", map[string]string{
			"username": testAdminUser,
			"password": "not-the-password",
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("protected routes require a token", func(t *testing.T) {
		resp, err := app.delete("/admin/schedules/2025-08-05", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("login issues a bearer token", func(t *testing.T) {
		token := app.login(t)
		assert.NotEmpty(t, token)
	})
}

func TestPublishedScheduleE2E(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	token := app.login(t)
	headers := authHeader(token)

	schedule := map[string]any{
		"prayers": []map[string]string{
			{"name": "Fajr", "athan": "5:15 AM", "iqamah": "5:45 AM"},
			{"name": "Dhuhr", "athan": "1:45 PM", "iqamah": "2:00 PM"},
			{"name": "Asr", "athan": "5:40 PM", "iqamah": "6:00 PM"},
			{"name": "Maghrib", "athan": "8:53 PM", "iqamah": "8:58 PM"},
			{"name": "Isha", "athan": "10:15 PM", "iqamah": "10:30 PM"},
		},
	}

	t.Run("publish overrides the calculated day", func(t *testing.T) {
		resp, err := app.put("/admin/schedules/2025-08-05", schedule, headers)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.get("/prayer-times/today", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var today map[string]any
		parseResponse(t, resp, &today)
		assert.Equal(t, "published", today["source"])
		first := today["prayers"].([]any)[0].(map[string]any)
		assert.Equal(t, "5:15 AM", first["athan"])
		assert.Equal(t, "5:45 AM", first["iqamah"])
	})

	t.Run("published times drive the current prayer", func(t *testing.T) {
		resp, err := app.get("/prayer-times/current?at=3:00%20PM", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var current map[string]any
		parseResponse(t, resp, &current)
		assert.Equal(t, "Dhuhr", current["current"].(map[string]any)["name"])
		assert.Equal(t, "2h 40m", current["countdown"])
	})

	t.Run("location requests ignore mosque overrides", func(t *testing.T) {
		resp, err := app.get("/prayer-times/today/location?latitude=51.5074&longitude=-0.1278", nil)
		require.NoError(t, err)

		var today map[string]any
		parseResponse(t, resp, &today)
		assert.Equal(t, "calculated", today["source"])
	})

	t.Run("invalid prayer is rejected", func(t *testing.T) {
		bad := map[string]any{
			"prayers": []map[string]string{
				{"name": "Fajr", "athan": "25:99", "iqamah": "5:45 AM"},
			},
		}
		resp, err := app.put("/admin/schedules/2025-08-06", bad, headers)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("unpublish falls back to calculation", func(t *testing.T) {
		resp, err := app.delete("/admin/schedules/2025-08-05", headers)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.get("/prayer-times/2025-08-05", nil)
		require.NoError(t, err)

		var day map[string]any
		parseResponse(t, resp, &day)
		assert.Equal(t, "calculated", day["source"])
	})

	t.Run("unpublish of a missing day", func(t *testing.T) {
		resp, err := app.delete("/admin/schedules/2025-08-05", headers)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestScheduleImportE2E(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	headers := authHeader(app.login(t))

	csv := "date,name,athan,iqamah\n" +
		"2025-08-10,Fajr,5:25 AM,5:50 AM\n" +
		"2025-08-10,Dhuhr,1:50 PM,2:10 PM\n" +
		"2025-08-11,Fajr,5:26 AM,5:50 AM\n" +
		"2025-08-11,Dhuhr,1:50 PM,2:10 PM\n"

	resp, err := app.postCSV("/admin/schedules/import", csv, headers)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]any
	parseResponse(t, resp, &result)
	assert.EqualValues(t, 2, result["days"])
	assert.EqualValues(t, 4, result["prayers"])

	resp, err = app.get("/admin/schedules?per_page=1", headers)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var page map[string]any
	parseResponse(t, resp, &page)
	listed := page["schedules"].([]any)
	require.Len(t, listed, 1)
	assert.Equal(t, "2025-08-11", listed[0].(map[string]any)["date"])
	assert.EqualValues(t, 2, page["pagination"].(map[string]any)["total_items"])

	resp, err = app.get("/prayer-times/2025-08-11", nil)
	require.NoError(t, err)

	var day map[string]any
	parseResponse(t, resp, &day)
	assert.Equal(t, "published", day["source"])
	assert.Equal(t, []string{"Fajr", "Dhuhr"}, prayerNames(day))
}

func TestTimetableE2E(t *testing.T) {
	app := setupTestApp(t)
	defer app.cleanup(t)

	t.Run("download csv", func(t *testing.T) {
		resp, err := app.get("/timetables/2025/9?format=csv", nil)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "2025-09.csv")
	})

	t.Run("publish uploads both formats", func(t *testing.T) {
		resp, err := app.post("/admin/timetables/2025/9/publish", nil, authHeader(app.login(t)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]any
		parseResponse(t, resp, &body)
		assert.Len(t, body["files"], 2)

		_, ok := app.Storage.Object("timetables/2025-09.pdf")
		assert.True(t, ok)
		_, ok = app.Storage.Object("timetables/2025-09.csv")
		assert.True(t, ok)
	})
}
