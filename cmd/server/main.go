package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"shareit/internal/handlers"
	"shareit/internal/logger"
	"shareit/internal/metrics"
	"shareit/internal/middlewares"
	"shareit/internal/repositories"
	"shareit/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title shareit API
// @version 1.0.0
// @description Peer-to-peer item rental: users list items, book them for date ranges and comment after completed rentals
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		searchCacheTTL,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		searchCacheTTL,
		kafkaAddr, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis and Kafka configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	searchCacheTTL time.Duration,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "shareit")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	var ttlSecond int
	if ttlSecond, err = strconv.Atoi(getEnv("SEARCH_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}
	searchCacheTTL = time.Duration(ttlSecond) * time.Second

	// Kafka config, empty address disables event publishing
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "shareit.booking-events")

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	searchCacheTTL time.Duration,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for booking lifecycle events
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
	}

	// Register Prometheus metrics
	metrics.Register()

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	itemReadRepo := repositories.NewItemReadRepository(db)
	itemWriteRepo := repositories.NewItemWriteRepository(db, txGetter)
	bookingReadRepo := repositories.NewBookingReadRepository(db)
	bookingWriteRepo := repositories.NewBookingWriteRepository(db, txGetter)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db, txGetter)
	requestReadRepo := repositories.NewRequestReadRepository(db)
	requestWriteRepo := repositories.NewRequestWriteRepository(db, txGetter)
	searchCacheRepo := repositories.NewItemSearchCacheRepository(rdb, searchCacheTTL)

	// Initialize services
	userService := services.NewUserService(userReadRepo, userWriteRepo)
	itemService := services.NewItemService(
		userReadRepo, itemReadRepo, itemWriteRepo,
		bookingReadRepo, commentReadRepo, commentWriteRepo,
		searchCacheRepo, nil,
	)
	bookingService := services.NewBookingService(
		userReadRepo, itemReadRepo, bookingReadRepo, bookingWriteRepo,
		kafkaWriter, nil,
	)
	requestService := services.NewRequestService(
		userReadRepo, requestReadRepo, requestWriteRepo, itemService,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware())

	r.Route("/users", func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/", handlers.NewCreateUserHandler(userService))
		r.Get("/{userId}", handlers.NewGetUserHandler(userService))
		r.Patch("/{userId}", handlers.NewUpdateUserHandler(userService))
		r.Delete("/{userId}", handlers.NewDeleteUserHandler(userService))
	})

	r.Route("/items", func(r chi.Router) {
		r.Use(middlewares.UserIDMiddleware())
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/", handlers.NewCreateItemHandler(itemService))
		r.Get("/", handlers.NewListItemsHandler(itemService))
		r.Get("/search", handlers.NewSearchItemsHandler(itemService))
		r.Get("/{itemId}", handlers.NewGetItemHandler(itemService))
		r.Patch("/{itemId}", handlers.NewUpdateItemHandler(itemService))
		r.Post("/{itemId}/comment", handlers.NewCreateCommentHandler(itemService))
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(middlewares.UserIDMiddleware())
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/", handlers.NewCreateBookingHandler(bookingService))
		r.Get("/", handlers.NewListBookingsHandler(bookingService))
		r.Get("/owner", handlers.NewListOwnerBookingsHandler(bookingService))
		r.Get("/{bookingId}", handlers.NewGetBookingHandler(bookingService))
		r.Patch("/{bookingId}", handlers.NewDecideBookingHandler(bookingService))
	})

	r.Route("/requests", func(r chi.Router) {
		r.Use(middlewares.UserIDMiddleware())
		r.Use(middlewares.TxMiddleware(db))
		r.Post("/", handlers.NewCreateRequestHandler(requestService))
		r.Get("/", handlers.NewListMyRequestsHandler(requestService))
		r.Get("/all", handlers.NewListOtherRequestsHandler(requestService))
		r.Get("/{requestId}", handlers.NewGetRequestHandler(requestService))
	})

	r.Handle("/metrics", promhttp.Handler())

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
