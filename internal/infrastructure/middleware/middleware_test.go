package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/domain"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/middleware"
)

type stubValidator struct {
	subject string
	err     error
}

func (s stubValidator) ValidateAccessToken(string) (string, error) {
	return s.subject, s.err
}

func setupRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"admin": c.GetString(middleware.AdminKey)})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	t.Run("accepts a valid bearer token", func(t *testing.T) {
		auth := middleware.NewAuthMiddleware(stubValidator{subject: "admin"})
		router := setupRouter(auth.RequireAuth())

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer token")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"admin":"admin"`)
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		auth := middleware.NewAuthMiddleware(stubValidator{subject: "admin"})
		router := setupRouter(auth.RequireAuth())

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a non bearer scheme", func(t *testing.T) {
		auth := middleware.NewAuthMiddleware(stubValidator{subject: "admin"})
		router := setupRouter(auth.RequireAuth())

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Basic abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		auth := middleware.NewAuthMiddleware(stubValidator{err: errors.New("bad")})
		router := setupRouter(auth.RequireAuth())

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer nope")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "request_id")
		assert.Contains(t, w.Body.String(), `"code":"TOKEN_INVALID"`)
	})

	t.Run("reports an expired token", func(t *testing.T) {
		auth := middleware.NewAuthMiddleware(stubValidator{err: domain.ErrTokenExpired})
		router := setupRouter(auth.RequireAuth())

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Authorization", "Bearer stale")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"TOKEN_EXPIRED"`)
		assert.NotContains(t, w.Body.String(), `"admin"`)
	})
}

func TestRequestID(t *testing.T) {
	router := setupRouter()

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)
	})

	t.Run("propagates an incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRecovery(t *testing.T) {
	router := setupRouter(middleware.Recovery(zap.NewNop()))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
}

func TestCORS(t *testing.T) {
	router := setupRouter(middleware.CORS([]string{"https://masjid.example"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://masjid.example")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "https://masjid.example", w.Header().Get("Access-Control-Allow-Origin"))
}
