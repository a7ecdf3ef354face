package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bookRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/book_room"
	checkAvailabilityHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_availability"
	getBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_booking"
	getReportHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_report"
	getUserBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_user_bookings"
	listBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_bookings"
	listRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_rooms"
	listUsersHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/list_users"
	setRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/set_room"
	setUserHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/set_user"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	userRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/user"
	bookingsService "github.com/m04kA/SMC-HotelService/internal/service/bookings"
	reportService "github.com/m04kA/SMC-HotelService/internal/service/report"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	usersService "github.com/m04kA/SMC-HotelService/internal/service/users"
	bookRoomUC "github.com/m04kA/SMC-HotelService/internal/usecase/book_room"
	checkAvailabilityUC "github.com/m04kA/SMC-HotelService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/memlock"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
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

	log.Info("Starting SMC-HotelService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем in-memory хранилища
	roomRepository := roomRepo.NewRepository()
	userRepository := userRepo.NewRepository()
	bookingRepository := bookingRepo.NewRepository()
	log.Info("In-memory storage initialized")

	// Менеджер критической секции бронирования: все проверки и мутации
	// bookRoom выполняются последовательно
	lockManager := memlock.NewManager()

	// Инициализируем сервисы
	roomsSvc := roomsService.NewService(roomRepository, log)
	usersSvc := usersService.NewService(userRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, log)
	reportSvc := reportService.NewService(roomRepository, userRepository, bookingRepository, log)

	// Инициализируем use cases
	var bookingMetrics bookRoomUC.Metrics
	if metricsCollector != nil {
		bookingMetrics = metricsCollector
	}
	bookRoomUseCase := bookRoomUC.NewUseCase(
		bookingRepository,
		roomRepository,
		userRepository,
		lockManager,
		bookingMetrics,
		log,
	)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		bookingRepository,
		roomRepository,
		log,
	)

	// Инициализируем handlers
	setRoom := setRoomHandler.NewHandler(roomsSvc, log)
	setUser := setUserHandler.NewHandler(usersSvc, log)
	bookRoom := bookRoomHandler.NewHandler(bookRoomUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingsSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingsSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomsSvc, log)
	listUsers := listUsersHandler.NewHandler(usersSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	getReport := getReportHandler.NewHandler(reportSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Реестр номеров и пользователей ---
	api.HandleFunc("/rooms/{roomNumber}", setRoom.Handle).Methods(http.MethodPut)
	api.HandleFunc("/users/{userId}", setUser.Handle).Methods(http.MethodPut)

	// --- Бронирования ---
	api.HandleFunc("/bookings", bookRoom.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomNumber}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Отчеты (новые записи первыми) ---
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/users", listUsers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/report", getReport.Handle).Methods(http.MethodGet)

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
