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

	cancelBookingHandler "github.com/playgrid/facility-booking/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/playgrid/facility-booking/internal/api/handlers/create_booking"
	getBookableDaysHandler "github.com/playgrid/facility-booking/internal/api/handlers/get_bookable_days"
	getBookingHandler "github.com/playgrid/facility-booking/internal/api/handlers/get_booking"
	getFacilityHandler "github.com/playgrid/facility-booking/internal/api/handlers/get_facility"
	getUserBookingsHandler "github.com/playgrid/facility-booking/internal/api/handlers/get_user_bookings"
	listFacilitiesHandler "github.com/playgrid/facility-booking/internal/api/handlers/list_facilities"
	listSportsHandler "github.com/playgrid/facility-booking/internal/api/handlers/list_sports"
	"github.com/playgrid/facility-booking/internal/api/middleware"
	"github.com/playgrid/facility-booking/internal/config"
	bookingRepo "github.com/playgrid/facility-booking/internal/infra/storage/booking"
	facilityRepo "github.com/playgrid/facility-booking/internal/infra/storage/facility"
	authServiceClient "github.com/playgrid/facility-booking/internal/integrations/authservice"
	bookingsService "github.com/playgrid/facility-booking/internal/service/bookings"
	facilitiesService "github.com/playgrid/facility-booking/internal/service/facilities"
	createBookingUC "github.com/playgrid/facility-booking/internal/usecase/create_booking"
	getBookableDaysUC "github.com/playgrid/facility-booking/internal/usecase/get_bookable_days"
	"github.com/playgrid/facility-booking/pkg/dbmetrics"
	"github.com/playgrid/facility-booking/pkg/logger"
	"github.com/playgrid/facility-booking/pkg/metrics"
	"github.com/playgrid/facility-booking/pkg/simpletxmanager"
	"github.com/playgrid/facility-booking/pkg/txmanager"
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

	log.Info("Starting FacilityBookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Инициализируем клиента AuthService
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (AuthService=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		facilityRepository *facilityRepo.Repository
	)

	// Интерфейс transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		facilityRepository = facilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		facilityRepository = facilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		log,
	)
	facilitySvc := facilitiesService.NewService(
		facilityRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		facilityRepository,
		authClient,
		txMgr,
		log,
	)

	getBookableDaysUseCase := getBookableDaysUC.NewUseCase(
		facilityRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBookableDays := getBookableDaysHandler.NewHandler(getBookableDaysUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getFacility := getFacilityHandler.NewHandler(facilitySvc, log)
	listFacilities := listFacilitiesHandler.NewHandler(facilitySvc, log)
	listSports := listSportsHandler.NewHandler(facilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник видов спорта
	api.HandleFunc("/sports", listSports.Handle).Methods(http.MethodGet)

	// Список активных объектов
	api.HandleFunc("/facilities", listFacilities.Handle).Methods(http.MethodGet)

	// Объект с видом спорта и недельными расписаниями
	api.HandleFunc("/facilities/{facilityId}", getFacility.Handle).Methods(http.MethodGet)

	// Даты, доступные для бронирования
	api.HandleFunc("/facilities/{facilityId}/bookable-days", getBookableDays.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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

	log.Info("Server exited")
}
