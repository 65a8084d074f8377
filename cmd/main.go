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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookSlotHandler "github.com/avelkin/SPM-BookingService/internal/api/handlers/book_slot"
	getAvailabilityHandler "github.com/avelkin/SPM-BookingService/internal/api/handlers/get_availability"
	listAppointmentsHandler "github.com/avelkin/SPM-BookingService/internal/api/handlers/list_appointments"
	updateStatusHandler "github.com/avelkin/SPM-BookingService/internal/api/handlers/update_appointment_status"
	"github.com/avelkin/SPM-BookingService/internal/api/middleware"
	"github.com/avelkin/SPM-BookingService/internal/config"
	appointmentRepo "github.com/avelkin/SPM-BookingService/internal/infra/storage/appointment"
	catalogServiceClient "github.com/avelkin/SPM-BookingService/internal/integrations/catalogservice"
	appointmentsService "github.com/avelkin/SPM-BookingService/internal/service/appointments"
	bookSlotUC "github.com/avelkin/SPM-BookingService/internal/usecase/book_slot"
	getAvailabilityUC "github.com/avelkin/SPM-BookingService/internal/usecase/get_availability"
	"github.com/avelkin/SPM-BookingService/internal/worker/finalizer"
	"github.com/avelkin/SPM-BookingService/pkg/logger"
	"github.com/avelkin/SPM-BookingService/pkg/metrics"
	"github.com/avelkin/SPM-BookingService/pkg/txmanager"
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

	log.Info("Starting SPM-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
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

	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, 10*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем клиента каталога услуг
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog service client initialized (url=%s, timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Инициализируем репозиторий и transaction manager
	appointmentRepository := appointmentRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)

	// Инициализируем use cases
	bookSlotUseCase := bookSlotUC.NewUseCase(
		appointmentRepository,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		appointmentRepository,
		catalogClient,
		log,
	)

	// Инициализируем handlers
	bookSlot := bookSlotHandler.NewHandler(bookSlotUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)

	// Фоновая финализация записей: confirmed -> completed, pending -> cancelled
	var finalizerMetrics finalizer.Metrics
	if cfg.Metrics.Enabled {
		finalizerMetrics = metricsCollector
	}
	finalizerWorker := finalizer.NewWorker(
		appointmentRepository,
		log,
		finalizerMetrics,
		time.Duration(cfg.Finalizer.IntervalSeconds)*time.Second,
	)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	go finalizerWorker.Run(workerCtx)
	log.Info("Appointment finalizer started (interval=%ds)", cfg.Finalizer.IntervalSeconds)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступность слотов услуги на дату
	api.HandleFunc("/services/{serviceId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Список записей (витрина провайдера)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Бронирование слота
	protected.HandleFunc("/appointments", bookSlot.Handle).Methods(http.MethodPost)

	// Смена статуса записи (подтверждение/отклонение провайдером)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)

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

	// Останавливаем фоновую финализацию и сбор метрик
	stopWorker()
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
