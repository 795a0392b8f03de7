package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/safety_reporting_system/internal/ai"
	"github.com/shenikar/safety_reporting_system/internal/auth"
	"github.com/shenikar/safety_reporting_system/internal/authz"
	"github.com/shenikar/safety_reporting_system/internal/config"
	v1 "github.com/shenikar/safety_reporting_system/internal/handler/http/v1"
	"github.com/shenikar/safety_reporting_system/internal/realtime"
	"github.com/shenikar/safety_reporting_system/internal/repository"
	"github.com/shenikar/safety_reporting_system/internal/scheduler"
	"github.com/shenikar/safety_reporting_system/internal/service"
	"github.com/shenikar/safety_reporting_system/internal/webhook"
	"github.com/shenikar/safety_reporting_system/pkg/logger"
	"github.com/shenikar/safety_reporting_system/pkg/postgres"
	redisclient "github.com/shenikar/safety_reporting_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/safety_reporting_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Safety Reporting System API
// @version 1.0
// @description Community safety reporting: incidents, alerts, analytics and a safety assistant.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
		migrationURL = strings.Replace(migrationURL, "postgresql://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// newGenerator возвращает клиент Gemini или заглушку, если ключ не задан
func newGenerator(ctx context.Context, cfg *config.Config, log *logrus.Logger) (ai.Generator, func() error, error) {
	if cfg.GeminiAPIKey == "" {
		log.Warn("GOOGLE_GENERATIVE_AI_API_KEY is not set, AI features use fallback answers")
		return ai.DisabledGenerator{}, func() error { return nil }, nil
	}
	gemini, err := ai.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return nil, nil, err
	}
	return gemini, gemini.Close, nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Realtime: Redis pub/sub для SSE и, при наличии брокеров, Kafka
	broker := realtime.NewRedisBroker(redisClient, cfg.RealtimeTopic, log)
	publishers := realtime.Fanout{broker}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := realtime.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Fatalf("Failed to create Kafka publisher: %v", err)
		}
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				log.WithError(err).Warn("Failed to close Kafka publisher")
			}
		}()
		publishers = append(publishers, kafkaPublisher)
		log.WithField("topic", cfg.KafkaTopic).Info("Kafka event publishing enabled")
	}

	// Вебхуки: очередь и воркер работают только при заданном WEBHOOK_URL
	var webhookPublisher webhook.WebhookPublisher = webhook.DisabledPublisher{}
	if cfg.WebhookURL != "" {
		webhookPublisher = webhook.NewRedisWebhookPublisher(redisClient)
		webhookWorker := webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Info("WEBHOOK_URL is not set, webhook delivery is disabled")
	}

	// AI
	generator, closeGenerator, err := newGenerator(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to create AI client: %v", err)
	}
	defer func() {
		if err := closeGenerator(); err != nil {
			log.WithError(err).Warn("Failed to close AI client")
		}
	}()
	riskAnalyzer := ai.NewRiskAnalyzer(generator, log)
	assistant := ai.NewAssistant(generator)

	// Политики доступа
	authorizer, err := authz.NewAuthorizer(authz.DefaultPolicies, log)
	if err != nil {
		log.Fatalf("Failed to create authorizer: %v", err)
	}

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool, cfg.DBRLSRole)
	incidentLogRepo := repository.NewIncidentLogRepository(dbpool, cfg.DBRLSRole)
	alertRepo := repository.NewAlertRepository(dbpool, cfg.DBRLSRole)
	profileRepo := repository.NewProfileRepository(dbpool)
	chatRepo := repository.NewChatRepository(dbpool)
	insightRepo := repository.NewInsightRepository(dbpool)
	incidentCache := repository.NewIncidentCache(redisClient, cfg.CacheTTL)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(service.IncidentDeps{
		Repo:       incidentRepo,
		Logs:       incidentLogRepo,
		Alerts:     alertRepo,
		Cache:      incidentCache,
		Analyzer:   riskAnalyzer,
		Authorizer: authorizer,
		Publisher:  publishers,
		Webhooks:   webhookPublisher,
	}, log, cfg)
	alertService := service.NewAlertService(alertRepo, authorizer, publishers, log, cfg)
	analyticsService := service.NewAnalyticsService(incidentRepo, alertRepo, insightRepo, log)
	chatService := service.NewChatService(chatRepo, assistant, log)
	profileService := service.NewProfileService(profileRepo, log)

	// Периодические задачи
	jobs, err := scheduler.New(cfg, alertService, analyticsService, log)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}
	jobs.Start(ctx)

	// Инициализация хэндлеров
	verifier := auth.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	handler := v1.NewHandler(v1.Services{
		Incidents:  incidentService,
		Alerts:     alertService,
		Analytics:  analyticsService,
		Chat:       chatService,
		Profiles:   profileService,
		Subscriber: broker,
	}, verifier, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
		// Контексты запросов наследуют ctx, отмена завершает SSE-потоки
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
	if err := jobs.Stop(shutdownCtx); err != nil {
		log.WithError(err).Warn("Scheduler did not stop in time")
	}

	log.Info("Server gracefully stopped")
}
