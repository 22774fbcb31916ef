package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/masjid-prayer-backend/internal/adapter/provider/prayerapi"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/messaging"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/infrastructure/observability"
	"github.com/marcos-nsantos/masjid-prayer-backend/internal/usecase/announce"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadAnnouncer()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format, "announcer")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	observability.InitMetrics()

	zone, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Fatal("invalid announcer timezone", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	publisher, err := messaging.NewMQTTPublisher(cfg.MQTT, logger)
	if err != nil {
		logger.Fatal("failed to connect to mqtt broker", zap.Error(err))
	}
	defer publisher.Close()

	client := prayerapi.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)

	svc := announce.NewService(client, publisher, announce.Config{
		Topic:    cfg.Topic,
		LeadTime: cfg.LeadTime,
		Zone:     zone,
	}, logger)

	if err := svc.Run(ctx, cfg.TickInterval); err != nil {
		logger.Error("announcer error", zap.Error(err))
	}
}
