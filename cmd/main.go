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

	cancelBookingHandler "github.com/playden/GPR-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/playden/GPR-BookingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/playden/GPR-BookingService/internal/api/handlers/get_booking"
	getDeviceAvailabilityHandler "github.com/playden/GPR-BookingService/internal/api/handlers/get_device_availability"
	getParlourBookingsHandler "github.com/playden/GPR-BookingService/internal/api/handlers/get_parlour_bookings"
	getUserBookingsHandler "github.com/playden/GPR-BookingService/internal/api/handlers/get_user_bookings"
	updateBookingHandler "github.com/playden/GPR-BookingService/internal/api/handlers/update_booking"
	"github.com/playden/GPR-BookingService/internal/api/middleware"
	"github.com/playden/GPR-BookingService/internal/config"
	bookingRepo "github.com/playden/GPR-BookingService/internal/infra/storage/booking"
	deviceRepo "github.com/playden/GPR-BookingService/internal/infra/storage/device"
	parlourRepo "github.com/playden/GPR-BookingService/internal/infra/storage/parlour"
	bookingsService "github.com/playden/GPR-BookingService/internal/service/bookings"
	createBookingUC "github.com/playden/GPR-BookingService/internal/usecase/create_booking"
	getDeviceAvailabilityUC "github.com/playden/GPR-BookingService/internal/usecase/get_device_availability"
	"github.com/playden/GPR-BookingService/pkg/logger"
	"github.com/playden/GPR-BookingService/pkg/metrics"
	"github.com/playden/GPR-BookingService/pkg/txmanager"
)

const dbStatsInterval = 15 * time.Second

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

	log.Info("Starting GPR-BookingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		go metricsCollector.CollectDBStats(db, dbStatsInterval, stopMetricsCh)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	parlourRepository := parlourRepo.NewRepository(db)
	deviceRepository := deviceRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		parlourRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		parlourRepository,
		deviceRepository,
		txMgr,
		log,
	)

	getDeviceAvailabilityUseCase := getDeviceAvailabilityUC.NewUseCase(
		bookingRepository,
		deviceRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getDeviceAvailability := getDeviceAvailabilityHandler.NewHandler(getDeviceAvailabilityUseCase, log)
	getParlourBookings := getParlourBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Сквозной идентификатор запроса
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Сетка доступности консолей устройства на дату
	api.HandleFunc("/devices/{deviceId}/availability",
		getDeviceAvailability.Handle).Methods(http.MethodGet)

	// Занятые интервалы клуба на дату
	api.HandleFunc("/parlours/{parlourId}/bookings",
		getParlourBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Обновление бронирования (статус, пожелания)
	protected.HandleFunc("/bookings/{bookingId}", updateBooking.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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

	// Останавливаем сбор метрик connection pool
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
