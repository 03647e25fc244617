package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createAppointmentHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/create_appointment"
	getWeeklyCalendarHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/get_weekly_calendar"
	listPaymentEventsHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/list_payment_events"
	paymentWebhookHandler "github.com/m04kA/SMC-SalonBookingService/internal/api/handlers/payment_webhook"
	"github.com/m04kA/SMC-SalonBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonBookingService/internal/config"
	"github.com/m04kA/SMC-SalonBookingService/internal/infra/dedup"
	paymentEventRepo "github.com/m04kA/SMC-SalonBookingService/internal/infra/storage/payment_event"
	agendaAPIClient "github.com/m04kA/SMC-SalonBookingService/internal/integrations/agendaapi"
	billingAPIClient "github.com/m04kA/SMC-SalonBookingService/internal/integrations/billingapi"
	paymentEventsService "github.com/m04kA/SMC-SalonBookingService/internal/service/payment_events"
	createAppointmentUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/create_appointment"
	processPaymentEventUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/process_payment_event"
	weeklyCalendarUC "github.com/m04kA/SMC-SalonBookingService/internal/usecase/weekly_calendar"
	"github.com/m04kA/SMC-SalonBookingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBookingService/pkg/logger"
	"github.com/m04kA/SMC-SalonBookingService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-SalonBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (журнал платежных событий)
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем интеграционных клиентов
	agendaClient := agendaAPIClient.NewClient(
		cfg.AgendaAPI.URL,
		time.Duration(cfg.AgendaAPI.Timeout)*time.Second,
		log,
	)
	billingClient := billingAPIClient.NewClient(
		cfg.BillingAPI.URL,
		time.Duration(cfg.BillingAPI.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AgendaAPI=%s timeout=%ds, BillingAPI=%s timeout=%ds)",
		cfg.AgendaAPI.URL, cfg.AgendaAPI.Timeout, cfg.BillingAPI.URL, cfg.BillingAPI.Timeout)

	// Инициализируем репозиторий (с метриками или без)
	var eventRepository *paymentEventRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopCh)
		log.Info("Database metrics collection started")
		eventRepository = paymentEventRepo.NewRepository(wrappedDB)
	} else {
		eventRepository = paymentEventRepo.NewRepository(db)
	}

	// Дедупликация доставок вебхука
	var deduplicator processPaymentEventUC.Deduplicator = dedup.NopStore{}
	if cfg.Webhook.Dedup.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		deduplicator = dedup.NewRedisStore(redisClient, cfg.Webhook.Dedup.TTL())
		log.Info("Webhook deduplication enabled (redis=%s, ttl=%s)", cfg.Redis.Addr, cfg.Webhook.Dedup.TTL())
	}

	// Инициализируем сервисы
	paymentEventsSvc := paymentEventsService.NewService(eventRepository, log)

	// Инициализируем use cases
	slotDuration := cfg.Calendar.SlotDuration()
	venueLocation, err := cfg.Calendar.Location()
	if err != nil {
		log.Fatal("Failed to load calendar timezone: %v", err)
	}

	weeklyCalendarUseCase := weeklyCalendarUC.NewUseCase(agendaClient, slotDuration, log)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(agendaClient, agendaClient, slotDuration, venueLocation, log)
	processPaymentEventUseCase := processPaymentEventUC.NewUseCase(
		billingClient,
		deduplicator,
		eventRepository,
		metricsCollector,
		cfg.Webhook.Secret,
		log,
	)

	// Инициализируем handlers
	getWeeklyCalendar := getWeeklyCalendarHandler.NewHandler(weeklyCalendarUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	listPaymentEvents := listPaymentEventsHandler.NewHandler(paymentEventsSvc, log)
	paymentWebhook := paymentWebhookHandler.NewHandler(
		processPaymentEventUseCase,
		paymentWebhookHandler.HeaderNames{
			Timestamp:      cfg.Webhook.Headers.Timestamp,
			Nonce:          cfg.Webhook.Headers.Nonce,
			TransmissionID: cfg.Webhook.Headers.TransmissionID,
			Signature:      cfg.Webhook.Headers.Signature,
		},
		log,
	)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Недельная сетка слотов работника
	api.HandleFunc("/workers/{workerId}/weekly-calendar",
		getWeeklyCalendar.Handle).Methods(http.MethodGet)

	// Вебхук платежного провайдера (аутентификация по подписи)
	webhook := api.PathPrefix("/webhooks").Subrouter()
	if cfg.Webhook.RateLimitRPS > 0 {
		webhook.Use(middleware.RateLimit(
			middleware.NewRateLimiter(cfg.Webhook.RateLimitRPS, cfg.Webhook.RateLimitBurst, stopCh),
		))
		log.Info("Webhook rate limit enabled (rps=%.1f, burst=%d)", cfg.Webhook.RateLimitRPS, cfg.Webhook.RateLimitBurst)
	}
	webhook.HandleFunc("/payments", paymentWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Запись клиента к работнику
	protected.HandleFunc("/workers/{workerId}/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Журнал платежных событий
	protected.HandleFunc("/payment-events", listPaymentEvents.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые горутины (метрики пула, очистка rate limiter)
	close(stopCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
