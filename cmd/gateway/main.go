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
	"github.com/joho/godotenv"

	"shareit/internal/gateway"
	"shareit/internal/logger"
	"shareit/internal/middlewares"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, serverURL,
		forwardTimeout, rateRPS, rateBurst,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, serverURL,
		forwardTimeout, rateRPS, rateBurst,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting gateway version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "gateway.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// gateway configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, serverURL string,
	forwardTimeout time.Duration,
	rateRPS float64, rateBurst int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8081")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	serverURL = getEnv("SHAREIT_SERVER_URL", "http://localhost:8080")

	var timeoutSecond int
	if timeoutSecond, err = strconv.Atoi(getEnv("FORWARD_TIMEOUT_SECOND", "30")); err != nil {
		return
	}
	forwardTimeout = time.Duration(timeoutSecond) * time.Second

	if rateRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "10"), 64); err != nil {
		return
	}
	if rateBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "20")); err != nil {
		return
	}

	return
}

// run initializes the logger and the forwarding client, sets up
// validating routes, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, serverURL string,
	forwardTimeout time.Duration,
	rateRPS float64, rateBurst int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	client := gateway.NewClient(serverURL, forwardTimeout)
	limiter := gateway.NewRateLimiter(rateRPS, rateBurst)

	forward := gateway.NewForwardHandler(client)

	// Setup router. The gateway validates request shape and forwards
	// identical semantics to the backend.
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(limiter.Middleware())

	r.Route("/users", func(r chi.Router) {
		r.Post("/", gateway.NewValidatedHandler(client, gateway.ValidateCreateUser))
		r.Get("/{userId}", forward)
		r.Patch("/{userId}", forward)
		r.Delete("/{userId}", forward)
	})

	r.Route("/items", func(r chi.Router) {
		r.Use(middlewares.UserIDMiddleware())
		r.Post("/", gateway.NewValidatedHandler(client, gateway.ValidateCreateItem))
		r.Get("/", forward)
		r.Get("/search", forward)
		r.Get("/{itemId}", forward)
		r.Patch("/{itemId}", forward)
		r.Post("/{itemId}/comment", gateway.NewValidatedHandler(client, gateway.ValidateCreateComment))
	})

	r.Route("/bookings", func(r chi.Router) {
		r.Use(middlewares.UserIDMiddleware())
		r.Post("/", gateway.NewValidatedHandler(client, gateway.NewValidateCreateBooking(nil)))
		r.Get("/", gateway.NewListBookingsHandler(client))
		r.Get("/owner", gateway.NewListBookingsHandler(client))
		r.Get("/{bookingId}", forward)
		r.Patch("/{bookingId}", forward)
	})

	r.Route("/requests", func(r chi.Router) {
		r.Use(middlewares.UserIDMiddleware())
		r.Post("/", gateway.NewValidatedHandler(client, gateway.ValidateCreateRequest))
		r.Get("/", forward)
		r.Get("/all", forward)
		r.Get("/{requestId}", forward)
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("Gateway listening on %s:%s, forwarding to %s", appHost, appPort, serverURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping gateway...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("gateway shutdown error", "error", err)
	}

	logger.Log.Info("Gateway stopped gracefully")
	return nil
}
