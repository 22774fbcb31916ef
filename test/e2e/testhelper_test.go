package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/export"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain/entity"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/timezone"
	adminUC "github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/admin"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/prayer"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/qibla"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/timetable"
)

const (
	testDBUser        = "testuser"
	testDBPassword    = "testpass"
	testDBName        = "testdb"
	testJWTSecret     = "test-secret-key-for-e2e-tests"
	testAdminUser     = "admin"
	testAdminPassword = "imam-password"
	apiBasePath       = "/api/v1"
)

// 2025-08-05 15:00 at the mosque (EDT).
var testNow = time.Date(2025, time.August, 5, 19, 0, 0, 0, time.UTC)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Storage    *stubFileStorage
	BaseURL    string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	logger := zap.NewNop()

	err = database.RunMigrations(ctx, pool, getMigrationsPath(), logger)
	require.NoError(t, err)

	scheduleRepo := pgRepo.NewScheduleRepo(pool)

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)
	passwordHasher := auth.NewPasswordHasher(bcrypt.MinCost)
	adminHash, err := passwordHasher.Hash(testAdminPassword)
	require.NoError(t, err)

	tzFinder, err := timezone.NewFinder()
	require.NoError(t, err)

	settings, err := prayer.NewSettings(config.MosqueConfig{
		Name:            "Test Masjid",
		Latitude:        39.7683333,
		Longitude:       -86.1580556,
		Timezone:        "America/Indiana/Indianapolis",
		DefaultTimezone: "America/New_York",
		Method:          "ISNA",
		Madhab:          "standard",
		FajrIqamah:      20 * time.Minute,
		DhuhrIqamah:     20 * time.Minute,
		AsrIqamah:       20 * time.Minute,
		MaghribIqamah:   5 * time.Minute,
		IshaIqamah:      20 * time.Minute,
		JummahTime:      "1:30 PM",
	}, time.Hour)
	require.NoError(t, err)

	// Stub storage and cache keep the suite to a single container
	fileStorage := &stubFileStorage{}

	prayerSvc := prayer.NewService(scheduleRepo, newMemoryCache(), tzFinder, settings, logger,
		prayer.WithClock(func() time.Time { return testNow }))
	qiblaSvc := qibla.NewService()
	timetableSvc := timetable.NewService(prayerSvc, fileStorage, logger, export.NewPDFExporter(), export.NewCSVExporter())
	adminSvc := adminUC.NewService(testAdminUser, adminHash, jwtSvc, passwordHasher)

	router := server.NewRouter(server.RouterConfig{
		PrayerHandler:    handler.NewPrayerHandler(prayerSvc),
		QiblaHandler:     handler.NewQiblaHandler(qiblaSvc),
		TimetableHandler: handler.NewTimetableHandler(timetableSvc),
		AdminHandler:     handler.NewAdminHandler(adminSvc, prayerSvc, timetableSvc),
		AuthMiddleware:   middleware.NewAuthMiddleware(jwtSvc),
		AllowedOrigins:   []string{"*"},
		Logger:           logger,
		Environment:      "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Storage:   fileStorage,
		BaseURL:   ts.URL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

func (app *TestApp) postCSV(path, body string, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodPost, app.BaseURL+apiBasePath+path, bytes.NewBufferString(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "text/csv")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return app.httpClient.Do(req)
}

func (app *TestApp) login(t *testing.T) string {
	t.Helper()

	resp, err := app.post("/admin/login", map[string]string{
		"username": testAdminUser,
		"password": testAdminPassword,
	}, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var loginResp map[string]any
	parseResponse(t, resp, &loginResp)
	return loginResp["access_token"].(string)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

type stubFileStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (s *stubFileStorage) Upload(_ context.Context, key string, reader io.Reader, _ string, _ int64) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects == nil {
		s.objects = make(map[string][]byte)
	}
	s.objects[key] = data
	return nil
}

func (s *stubFileStorage) GetURL(key string) string {
	return "https://stub-storage.example.com/" + key
}

func (s *stubFileStorage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}

type memoryCache struct {
	mu        sync.Mutex
	schedules map[string]entity.DailySchedule
}

func newMemoryCache() *memoryCache {
	return &memoryCache{schedules: make(map[string]entity.DailySchedule)}
}

func (c *memoryCache) Get(_ context.Context, key string) (*entity.DailySchedule, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.schedules[key]
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (c *memoryCache) Set(_ context.Context, key string, schedule *entity.DailySchedule, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.schedules[key] = *schedule
	return nil
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
