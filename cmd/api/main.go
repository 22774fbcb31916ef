package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/export"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/handler"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/auth"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/cache"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/database"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/server"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/storage"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/timezone"
	adminUC "github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/admin"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/prayer"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/qibla"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/timetable"
)

//	@title						Masjid Prayer Times API
//	@version					1.0
//	@description				Prayer times, Qibla direction and timetables for a mosque community.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format, "api")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	observability.InitMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.RunMigrations(ctx, pool, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer redisClient.Close()

	// Repositories
	scheduleRepo := postgres.NewScheduleRepo(pool)
	scheduleCache := cache.NewScheduleCache(redisClient)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey, cfg.JWT.AccessTokenTTL)
	passwordHasher := auth.NewPasswordHasher(12)

	s3Storage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}

	tzFinder, err := timezone.NewFinder()
	if err != nil {
		logger.Fatal("failed to load timezone data", zap.Error(err))
	}

	settings, err := prayer.NewSettings(cfg.Mosque, cfg.Redis.ScheduleTTL)
	if err != nil {
		logger.Fatal("invalid mosque configuration", zap.Error(err))
	}

	// Use cases
	prayerSvc := prayer.NewService(scheduleRepo, scheduleCache, tzFinder, settings, logger)
	qiblaSvc := qibla.NewService()
	timetableSvc := timetable.NewService(prayerSvc, s3Storage, logger,
		export.NewPDFExporter(),
		export.NewCSVExporter(),
	)
	adminSvc := adminUC.NewService(cfg.Admin.Username, cfg.Admin.PasswordHash, jwtSvc, passwordHasher)

	// Handlers
	prayerHandler := handler.NewPrayerHandler(prayerSvc)
	qiblaHandler := handler.NewQiblaHandler(qiblaSvc)
	timetableHandler := handler.NewTimetableHandler(timetableSvc)
	adminHandler := handler.NewAdminHandler(adminSvc, prayerSvc, timetableSvc)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit, logger)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		PrayerHandler:    prayerHandler,
		QiblaHandler:     qiblaHandler,
		TimetableHandler: timetableHandler,
		AdminHandler:     adminHandler,
		AuthMiddleware:   authMiddleware,
		RateLimiter:      rateLimiter,
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		Logger:           logger,
		Environment:      cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	logger.Info("serving prayer times",
		zap.String("mosque", settings.Name),
		zap.String("timezone", settings.Timezone),
		zap.String("method", settings.Params.Method.Name),
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", zap.Error(err))
	}

	logger.Info("server stopped")
}
