package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/middleware"
)

type Router struct {
	engine           *gin.Engine
	prayerHandler    *handler.PrayerHandler
	qiblaHandler     *handler.QiblaHandler
	timetableHandler *handler.TimetableHandler
	adminHandler     *handler.AdminHandler
	authMiddleware   *middleware.AuthMiddleware
	rateLimiter      *middleware.RateLimiter
	allowedOrigins   []string
	logger           *zap.Logger
}

type RouterConfig struct {
	PrayerHandler    *handler.PrayerHandler
	QiblaHandler     *handler.QiblaHandler
	TimetableHandler *handler.TimetableHandler
	AdminHandler     *handler.AdminHandler
	AuthMiddleware   *middleware.AuthMiddleware
	// RateLimiter is optional; nil disables limiting.
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:           engine,
		prayerHandler:    cfg.PrayerHandler,
		qiblaHandler:     cfg.QiblaHandler,
		timetableHandler: cfg.TimetableHandler,
		adminHandler:     cfg.AdminHandler,
		authMiddleware:   cfg.AuthMiddleware,
		rateLimiter:      cfg.RateLimiter,
		allowedOrigins:   cfg.AllowedOrigins,
		logger:           cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.allowedOrigins))
	r.engine.Use(middleware.Metrics())
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api/v1")
	if r.rateLimiter != nil {
		api.Use(r.rateLimiter.Limit())
	}
	{
		prayers := api.Group("/prayer-times")
		{
			prayers.GET("/today", r.prayerHandler.Today)
			prayers.GET("/today/location", r.prayerHandler.TodayAtLocation)
			prayers.GET("/tomorrow", r.prayerHandler.Tomorrow)
			prayers.GET("/tomorrow/location", r.prayerHandler.TomorrowAtLocation)
			prayers.GET("/week", r.prayerHandler.Week)
			prayers.GET("/jummah", r.prayerHandler.Jummah)
			prayers.GET("/current", r.prayerHandler.Current)
			prayers.GET("/month/:year/:month", r.prayerHandler.Month)
			prayers.GET("/:date", r.prayerHandler.ForDate)
			prayers.GET("/:date/location", r.prayerHandler.ForDateAtLocation)
		}

		qibla := api.Group("/qibla")
		{
			qibla.GET("", r.qiblaHandler.Direction)
			qibla.GET("/path", r.qiblaHandler.Path)
		}

		api.GET("/timetables/:year/:month", r.timetableHandler.Download)

		admin := api.Group("/admin")
		{
			admin.POST("/login", r.adminHandler.Login)

			protected := admin.Group("")
			protected.Use(r.authMiddleware.RequireAuth())
			{
				protected.GET("/schedules", r.adminHandler.ListSchedules)
				protected.PUT("/schedules/:date", r.adminHandler.PublishSchedule)
				protected.DELETE("/schedules/:date", r.adminHandler.UnpublishSchedule)
				protected.POST("/schedules/import", r.adminHandler.ImportSchedules)
				protected.POST("/timetables/:year/:month/publish", r.adminHandler.PublishTimetable)
			}
		}
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
