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
	"github.com/redis/go-redis/v9"

	bookAppointmentHandler "github.com/bookcore/appointment-service/internal/api/handlers/book_appointment"
	cancelAppointmentHandler "github.com/bookcore/appointment-service/internal/api/handlers/cancel_appointment"
	getAppointmentHandler "github.com/bookcore/appointment-service/internal/api/handlers/get_appointment"
	getAvailableDatesHandler "github.com/bookcore/appointment-service/internal/api/handlers/get_available_dates"
	getAvailableSlotsHandler "github.com/bookcore/appointment-service/internal/api/handlers/get_available_slots"
	getCustomerAppointmentsHandler "github.com/bookcore/appointment-service/internal/api/handlers/get_customer_appointments"
	listServiceStaffHandler "github.com/bookcore/appointment-service/internal/api/handlers/list_service_staff"
	listServicesHandler "github.com/bookcore/appointment-service/internal/api/handlers/list_services"
	"github.com/bookcore/appointment-service/internal/api/middleware"
	"github.com/bookcore/appointment-service/internal/config"
	availabilityCache "github.com/bookcore/appointment-service/internal/infra/cache/availability"
	"github.com/bookcore/appointment-service/internal/integrations/notifier"
	appointmentRepo "github.com/bookcore/appointment-service/internal/infra/storage/appointment"
	scheduleRepo "github.com/bookcore/appointment-service/internal/infra/storage/schedule"
	serviceRepo "github.com/bookcore/appointment-service/internal/infra/storage/service"
	staffRepo "github.com/bookcore/appointment-service/internal/infra/storage/staff"
	appointmentsService "github.com/bookcore/appointment-service/internal/service/appointments"
	catalogService "github.com/bookcore/appointment-service/internal/service/catalog"
	bookAppointmentUC "github.com/bookcore/appointment-service/internal/usecase/book_appointment"
	getAvailableDatesUC "github.com/bookcore/appointment-service/internal/usecase/get_available_dates"
	getAvailableSlotsUC "github.com/bookcore/appointment-service/internal/usecase/get_available_slots"
	"github.com/bookcore/appointment-service/pkg/dbmetrics"
	"github.com/bookcore/appointment-service/pkg/logger"
	"github.com/bookcore/appointment-service/pkg/metrics"
	"github.com/bookcore/appointment-service/pkg/txmanager"
)

func main() {
	// Load environment overrides before the config file.
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting appointment-service...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// A nil metrics collector makes the wrapper pass-through, so the
	// repositories get wired the same way either way.
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithPoolStats(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	serviceRepository := serviceRepo.NewRepository(wrappedDB)
	staffRepository := staffRepo.NewRepository(wrappedDB)
	appointmentRepository := appointmentRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Availability cache is optional. Use cases treat a nil cache as
	// cache-off and compute everything per request.
	var cache *availabilityCache.Cache
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		cache = availabilityCache.NewCache(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		log.Info("Availability cache enabled (addr=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Booking and cancellation events go to the notification endpoint
	// when one is configured.
	var notifierClient *notifier.Client
	if cfg.Notifier.Enabled {
		notifierClient = notifier.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notifier enabled (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	}

	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		cacheOrNil(cache),
		serviceNotifierOrNil(notifierClient),
		log,
	)
	catalogSvc := catalogService.NewService(serviceRepository, staffRepository, log)

	getAvailableDatesUseCase := getAvailableDatesUC.NewUseCase(
		serviceRepository,
		staffRepository,
		scheduleRepository,
		appointmentRepository,
		datesCacheOrNil(cache),
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		serviceRepository,
		staffRepository,
		scheduleRepository,
		appointmentRepository,
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		serviceRepository,
		staffRepository,
		scheduleRepository,
		appointmentRepository,
		txMgr,
		bookingCacheOrNil(cache),
		bookingNotifierOrNil(notifierClient),
		log,
	)

	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listServiceStaff := listServiceStaffHandler.NewHandler(catalogSvc, log)
	getAvailableDates := getAvailableDatesHandler.NewHandler(getAvailableDatesUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	bookAppointment := bookAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentsSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		r.Use(limiter.Middleware())
		log.Info("Rate limiting enabled (rps=%.1f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Catalog
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/staff", listServiceStaff.Handle).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/services/{serviceId}/available-dates", getAvailableDates.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", bookAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/customers/{customerId}/appointments", getCustomerAppointments.Handle).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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

// A typed nil *Cache stored in a non-nil interface value would dodge
// the nil checks inside the services, so convert explicitly.

func cacheOrNil(c *availabilityCache.Cache) appointmentsService.AvailabilityCache {
	if c == nil {
		return nil
	}
	return c
}

func datesCacheOrNil(c *availabilityCache.Cache) getAvailableDatesUC.AvailabilityCache {
	if c == nil {
		return nil
	}
	return c
}

func bookingCacheOrNil(c *availabilityCache.Cache) bookAppointmentUC.AvailabilityCache {
	if c == nil {
		return nil
	}
	return c
}

func serviceNotifierOrNil(n *notifier.Client) appointmentsService.Notifier {
	if n == nil {
		return nil
	}
	return n
}

func bookingNotifierOrNil(n *notifier.Client) bookAppointmentUC.Notifier {
	if n == nil {
		return nil
	}
	return n
}
