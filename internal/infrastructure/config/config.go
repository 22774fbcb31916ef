package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	JWT       JWTConfig
	Admin     AdminConfig
	S3        S3Config
	Log       LogConfig
	RateLimit RateLimitConfig
	Mosque    MosqueConfig
}

type ServerConfig struct {
	Port            int           `envconfig:"SERVER_PORT" default:"8080"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"10s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	Environment     string        `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

type DatabaseConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            int           `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	Name            string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"5m"`
	MigrationsPath  string        `envconfig:"DB_MIGRATIONS_PATH" default:"migrations"`
}

func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

type JWTConfig struct {
	SecretKey      string        `envconfig:"JWT_SECRET_KEY" required:"true"`
	AccessTokenTTL time.Duration `envconfig:"JWT_ACCESS_TOKEN_TTL" default:"12h"`
}

type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
}

type S3Config struct {
	Endpoint        string `envconfig:"S3_ENDPOINT"`
	Region          string `envconfig:"S3_REGION" default:"us-east-1"`
	Bucket          string `envconfig:"S3_BUCKET" required:"true"`
	AccessKeyID     string `envconfig:"S3_ACCESS_KEY_ID" required:"true"`
	SecretAccessKey string `envconfig:"S3_SECRET_ACCESS_KEY" required:"true"`
	UsePathStyle    bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
	PublicURL       string `envconfig:"S3_PUBLIC_URL"`
}

type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

type RedisConfig struct {
	Host        string        `envconfig:"REDIS_HOST" default:"localhost"`
	Port        int           `envconfig:"REDIS_PORT" default:"6379"`
	Password    string        `envconfig:"REDIS_PASSWORD" default:""`
	DB          int           `envconfig:"REDIS_DB" default:"0"`
	ScheduleTTL time.Duration `envconfig:"REDIS_SCHEDULE_TTL" default:"24h"`
}

func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	Enabled        bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	RequestsPerMin int  `envconfig:"RATE_LIMIT_REQUESTS_PER_MIN" default:"100"`
}

// MosqueConfig describes the community the service publishes times for.
// The defaults are the Indianapolis Muslim Community Association.
type MosqueConfig struct {
	Name            string        `envconfig:"MOSQUE_NAME" default:"Indianapolis Muslim Community Association"`
	Latitude        float64       `envconfig:"MOSQUE_LATITUDE" default:"39.7683333"`
	Longitude       float64       `envconfig:"MOSQUE_LONGITUDE" default:"-86.1580556"`
	Timezone        string        `envconfig:"MOSQUE_TIMEZONE" default:"America/Indiana/Indianapolis"`
	DefaultTimezone string        `envconfig:"MOSQUE_FALLBACK_TIMEZONE" default:"America/New_York"`
	Method          string        `envconfig:"MOSQUE_METHOD" default:"ISNA"`
	Madhab          string        `envconfig:"MOSQUE_MADHAB" default:"standard"`
	FajrIqamah      time.Duration `envconfig:"MOSQUE_FAJR_IQAMAH" default:"20m"`
	DhuhrIqamah     time.Duration `envconfig:"MOSQUE_DHUHR_IQAMAH" default:"20m"`
	AsrIqamah       time.Duration `envconfig:"MOSQUE_ASR_IQAMAH" default:"20m"`
	MaghribIqamah   time.Duration `envconfig:"MOSQUE_MAGHRIB_IQAMAH" default:"5m"`
	IshaIqamah      time.Duration `envconfig:"MOSQUE_ISHA_IQAMAH" default:"20m"`
	JummahTime      string        `envconfig:"MOSQUE_JUMMAH_TIME" default:"1:30 PM"`
}

// AnnouncerConfig is loaded separately by cmd/announcer, which needs no
// database or object storage.
type AnnouncerConfig struct {
	APIBaseURL   string        `envconfig:"ANNOUNCER_API_BASE_URL" default:"http://localhost:8080/api/v1/prayer-times"`
	Timezone     string        `envconfig:"ANNOUNCER_TIMEZONE" default:"America/Indiana/Indianapolis"`
	TickInterval time.Duration `envconfig:"ANNOUNCER_TICK_INTERVAL" default:"1s"`
	LeadTime     time.Duration `envconfig:"ANNOUNCER_LEAD_TIME" default:"15m"`
	Topic        string        `envconfig:"ANNOUNCER_TOPIC" default:"masjid/prayers"`
	HTTPTimeout  time.Duration `envconfig:"ANNOUNCER_HTTP_TIMEOUT" default:"30s"`
	MQTT         MQTTConfig
	Log          LogConfig
}

type MQTTConfig struct {
	BrokerURL      string        `envconfig:"MQTT_BROKER_URL" default:"tcp://localhost:1883"`
	ClientID       string        `envconfig:"MQTT_CLIENT_ID" default:"masjid-announcer"`
	Username       string        `envconfig:"MQTT_USERNAME"`
	Password       string        `envconfig:"MQTT_PASSWORD"`
	QoS            byte          `envconfig:"MQTT_QOS" default:"1"`
	PublishTimeout time.Duration `envconfig:"MQTT_PUBLISH_TIMEOUT" default:"5s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

func LoadAnnouncer() (*AnnouncerConfig, error) {
	var cfg AnnouncerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading announcer config: %w", err)
	}
	return &cfg, nil
}
