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

	cancelBookingHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/cancel_booking"
	computeQuoteHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/compute_quote"
	createBookingHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/create_booking"
	createServiceHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/create_service"
	createTechnicianHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/create_technician"
	deleteTechnicianHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/delete_technician"
	getBookingHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/get_booking"
	getSettingsHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/get_settings"
	getStatsHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/get_stats"
	listBookingsHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/list_bookings"
	listServicesHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/list_services"
	listTechniciansHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/list_technicians"
	listVehiclesHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/list_vehicles"
	loginUserHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/login_user"
	rateBookingHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/rate_booking"
	registerUserHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/register_user"
	updateBookingStatusHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/update_service"
	updateSettingsHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/update_settings"
	upsertVehicleHandler "github.com/m04kA/LV-BookingService/internal/api/handlers/upsert_vehicle"
	"github.com/m04kA/LV-BookingService/internal/api/middleware"
	"github.com/m04kA/LV-BookingService/internal/config"
	bookingRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/catalog"
	settingsRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/settings"
	technicianRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/technician"
	userRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/user"
	vehicleRepo "github.com/m04kA/LV-BookingService/internal/infra/storage/vehicle"
	accountsService "github.com/m04kA/LV-BookingService/internal/service/accounts"
	bookingsService "github.com/m04kA/LV-BookingService/internal/service/bookings"
	catalogService "github.com/m04kA/LV-BookingService/internal/service/catalog"
	settingsService "github.com/m04kA/LV-BookingService/internal/service/settings"
	statsService "github.com/m04kA/LV-BookingService/internal/service/stats"
	techniciansService "github.com/m04kA/LV-BookingService/internal/service/technicians"
	vehiclesService "github.com/m04kA/LV-BookingService/internal/service/vehicles"
	computeQuoteUC "github.com/m04kA/LV-BookingService/internal/usecase/compute_quote"
	createBookingUC "github.com/m04kA/LV-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/LV-BookingService/pkg/dbmetrics"
	"github.com/m04kA/LV-BookingService/pkg/logger"
	"github.com/m04kA/LV-BookingService/pkg/metrics"
	"github.com/m04kA/LV-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/LV-BookingService/pkg/txmanager"
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

	log.Info("Starting LV-BookingService...")
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

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository    *bookingRepo.Repository
		catalogRepository    *catalogRepo.Repository
		settingsRepository   *settingsRepo.Repository
		technicianRepository *technicianRepo.Repository
		userRepository       *userRepo.Repository
		vehicleRepository    *vehicleRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		technicianRepository = technicianRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		vehicleRepository = vehicleRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		technicianRepository = technicianRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		vehicleRepository = vehicleRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	techniciansSvc := techniciansService.NewService(technicianRepository, log)
	accountsSvc := accountsService.NewService(userRepository, log)
	vehiclesSvc := vehiclesService.NewService(vehicleRepository, log)
	statsSvc := statsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	computeQuoteUseCase := computeQuoteUC.NewUseCase(catalogRepository, settingsRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, txMgr, log)

	// Инициализируем handlers
	computeQuote := computeQuoteHandler.NewHandler(computeQuoteUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rateBooking := rateBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listTechnicians := listTechniciansHandler.NewHandler(techniciansSvc, log)
	createTechnician := createTechnicianHandler.NewHandler(techniciansSvc, log)
	deleteTechnician := deleteTechnicianHandler.NewHandler(techniciansSvc, log)
	registerUser := registerUserHandler.NewHandler(accountsSvc, log)
	loginUser := loginUserHandler.NewHandler(accountsSvc, log)
	listVehicles := listVehiclesHandler.NewHandler(vehiclesSvc, log)
	upsertVehicle := upsertVehicleHandler.NewHandler(vehiclesSvc, log)
	getStats := getStatsHandler.NewHandler(statsSvc, log)

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

	// Регистрация и вход
	api.HandleFunc("/auth/register", registerUser.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", loginUser.Handle).Methods(http.MethodPost)

	// Каталог услуг
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)

	// Расчет стоимости (devis)
	api.HandleFunc("/quotes", computeQuote.Handle).Methods(http.MethodPost)

	// Публичные настройки (наценка за выезд, бренд)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований (все или по клиенту)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования клиентом
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Оценка выполненной работы
	protected.HandleFunc("/bookings/{bookingId}/rating", rateBooking.Handle).Methods(http.MethodPost)

	// Смена статуса и назначение техника (для персонала)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Гараж клиента ---
	protected.HandleFunc("/vehicles", listVehicles.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/vehicles", upsertVehicle.Handle).Methods(http.MethodPut)

	// --- Управление сервисом (для персонала) ---
	// Каталог
	protected.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/services/{serviceId}", updateService.Handle).Methods(http.MethodPut)

	// Настройки
	protected.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Техники
	protected.HandleFunc("/technicians", listTechnicians.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/technicians", createTechnician.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/technicians/{technicianId}", deleteTechnician.Handle).Methods(http.MethodDelete)

	// Статистика
	protected.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)

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
