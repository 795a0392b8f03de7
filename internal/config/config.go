package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	DatabaseURL string `env:"DATABASE_URL"`
	HTTPPort    string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	DBMaxConns  int    `env:"DB_MAX_CONNS" envDefault:"10"`

	// Роль БД, под которой выполняются запросы от имени пользователя (RLS)
	DBRLSRole string `env:"DB_RLS_ROLE" envDefault:"authenticated"`

	// Redis Config
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass     string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`
	RealtimeTopic string        `env:"REALTIME_CHANNEL_PREFIX" envDefault:"realtime"`

	// Auth Config
	JWTSecret string `env:"JWT_SECRET"`
	JWTIssuer string `env:"JWT_ISSUER"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// AI Config
	GeminiAPIKey string `env:"GOOGLE_GENERATIVE_AI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`

	// Kafka Config, пустой список брокеров отключает публикацию
	KafkaBrokers []string `env:"KAFKA_BROKERS"`
	KafkaTopic   string   `env:"KAFKA_TOPIC" envDefault:"safety.events"`

	// Alerts Config
	AlertSeverityThreshold int           `env:"ALERT_SEVERITY_THRESHOLD" envDefault:"4"`
	AlertRiskThreshold     float64       `env:"ALERT_RISK_THRESHOLD" envDefault:"0.7"`
	AlertTTL               time.Duration `env:"ALERT_TTL" envDefault:"24h"`

	// Nearby search
	NearbyDefaultRadius int `env:"NEARBY_DEFAULT_RADIUS" envDefault:"1000"`
	NearbyMaxRadius     int `env:"NEARBY_MAX_RADIUS" envDefault:"20000"`

	// Scheduler Config
	AlertExpiryCron string `env:"ALERT_EXPIRY_CRON" envDefault:"@every 5m"`
	InsightsCron    string `env:"INSIGHTS_CRON" envDefault:"10 0 * * *"`

	CORSOrigins []string `env:"CORS_ORIGINS"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		DatabaseURL:            os.Getenv("DATABASE_URL"),
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
		DBMaxConns:             getEnvAsInt("DB_MAX_CONNS", 10),
		DBRLSRole:              getEnv("DB_RLS_ROLE", "authenticated"),
		RedisAddr:              getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:              os.Getenv("REDIS_PASSWORD"),
		RedisDB:                getEnvAsInt("REDIS_DB", 0),
		CacheTTL:               getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		RealtimeTopic:          getEnv("REALTIME_CHANNEL_PREFIX", "realtime"),
		JWTSecret:              os.Getenv("JWT_SECRET"),
		JWTIssuer:              os.Getenv("JWT_ISSUER"),
		WebhookURL:             os.Getenv("WEBHOOK_URL"),
		WebhookSecret:          os.Getenv("WEBHOOK_SECRET"),
		WebhookTimeout:         getEnvAsDuration("WEBHOOK_TIMEOUT", 5*time.Second),
		WebhookMaxRetries:      getEnvAsInt("WEBHOOK_MAX_RETRIES", 3),
		WebhookBaseDelay:       getEnvAsDuration("WEBHOOK_BASE_DELAY", time.Second),
		GeminiAPIKey:           os.Getenv("GOOGLE_GENERATIVE_AI_API_KEY"),
		GeminiModel:            getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		KafkaBrokers:           getEnvAsSlice("KAFKA_BROKERS"),
		KafkaTopic:             getEnv("KAFKA_TOPIC", "safety.events"),
		AlertSeverityThreshold: getEnvAsInt("ALERT_SEVERITY_THRESHOLD", 4),
		AlertRiskThreshold:     getEnvAsFloat("ALERT_RISK_THRESHOLD", 0.7),
		AlertTTL:               getEnvAsDuration("ALERT_TTL", 24*time.Hour),
		NearbyDefaultRadius:    getEnvAsInt("NEARBY_DEFAULT_RADIUS", 1000),
		NearbyMaxRadius:        getEnvAsInt("NEARBY_MAX_RADIUS", 20000),
		AlertExpiryCron:        getEnv("ALERT_EXPIRY_CRON", "@every 5m"),
		InsightsCron:           getEnv("INSIGHTS_CRON", "10 0 * * *"),
		CORSOrigins:            getEnvAsSlice("CORS_ORIGINS"),
	}

	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:3000"}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}

// getEnvAsSlice разбирает список через запятую
func getEnvAsSlice(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			values = append(values, p)
		}
	}
	return values
}
