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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	cancelBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_booking"
	extendBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/extend_booking"
	getAvailabilityHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_bookings"
	listSlotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_slots"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/slot"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	maintenanceService "github.com/m04kA/SMC-ParkingService/internal/service/maintenance"
	createBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	extendBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/extend_booking"
	getAvailabilityUC "github.com/m04kA/SMC-ParkingService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-ParkingService/pkg/slotlock"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

func main() {
	// Переменные окружения из .env (не обязателен, в проде задаются снаружи)
	_ = godotenv.Load()

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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

	parkingLocation, err := cfg.Parking.Location()
	if err != nil {
		log.Fatal("Failed to load parking timezone: %v", err)
	}

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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		slotRepository    *slotRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		slotRepository = slotRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		slotRepository = slotRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Провижиним слоты до приёма трафика: реестр статичен,
	// повторный запуск ничего не меняет
	labels := make([]string, 0, cfg.Parking.SlotCount)
	for i := 1; i <= cfg.Parking.SlotCount; i++ {
		labels = append(labels, fmt.Sprintf("%s%02d", cfg.Parking.LabelPrefix, i))
	}
	if err := slotRepository.Provision(context.Background(), labels); err != nil {
		log.Fatal("Failed to provision parking slots: %v", err)
	}
	log.Info("Provisioned %d parking slots (prefix=%s)", cfg.Parking.SlotCount, cfg.Parking.LabelPrefix)

	// Пер-слотовые блокировки для Reserve/Extend
	slotLocks := slotlock.New()

	timeProvider := getAvailabilityUC.RealTimeProvider{Location: parkingLocation}

	// Инициализируем сервисы.
	// Доменные счётчики терпимы к nil, поэтому metricsCollector
	// передаётся как есть и при выключенных метриках.
	bookingSvc := bookingsService.NewService(bookingRepository, metricsCollector, log)
	maintenanceSvc := maintenanceService.NewService(
		bookingRepository,
		maintenanceService.RealTimeProvider{Location: parkingLocation},
		metricsCollector,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		slotRepository,
		txMgr,
		slotLocks,
		metricsCollector,
		log,
	)
	extendBookingUseCase := extendBookingUC.NewUseCase(
		bookingRepository,
		txMgr,
		slotLocks,
		metricsCollector,
		log,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		slotRepository,
		bookingRepository,
		timeProvider,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	extendBooking := extendBookingHandler.NewHandler(extendBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listSlots := listSlotsHandler.NewHandler(slotRepository, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
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

	// Список парковочных мест
	api.HandleFunc("/slots", listSlots.Handle).Methods(http.MethodGet)

	// Снимок доступности на дату
	api.HandleFunc("/availability", getAvailability.Handle).Methods(http.MethodGet)

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

	// Продление бронирования
	protected.HandleFunc("/bookings/{bookingId}/extend", extendBooking.Handle).Methods(http.MethodPatch)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// Фоновый sweep: перевод истёкших бронирований в completed
	var sweepCron *cron.Cron
	if cfg.Sweep.Enabled {
		// Один проход сразу при старте, дальше по расписанию
		maintenanceSvc.Run(context.Background())

		sweepCron = cron.New()
		_, err := sweepCron.AddFunc(cfg.Sweep.Schedule, func() {
			maintenanceSvc.Run(context.Background())
		})
		if err != nil {
			log.Fatal("Failed to schedule sweep job: %v", err)
		}
		sweepCron.Start()
		log.Info("Sweep job scheduled (%s)", cfg.Sweep.Schedule)
	}

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

	if sweepCron != nil {
		<-sweepCron.Stop().Done()
		log.Info("Sweep job stopped")
	}

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
