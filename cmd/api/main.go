package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/jwalitptl/contacts-api/internal/config"
	countryHandler "github.com/jwalitptl/contacts-api/internal/handler/country"
	healthHandler "github.com/jwalitptl/contacts-api/internal/handler/health"
	personHandler "github.com/jwalitptl/contacts-api/internal/handler/person"
	"github.com/jwalitptl/contacts-api/internal/middleware"
	"github.com/jwalitptl/contacts-api/internal/repository"
	"github.com/jwalitptl/contacts-api/internal/repository/memory"
	"github.com/jwalitptl/contacts-api/internal/repository/postgres"
	"github.com/jwalitptl/contacts-api/internal/router"
	countryService "github.com/jwalitptl/contacts-api/internal/service/country"
	personService "github.com/jwalitptl/contacts-api/internal/service/person"
	"github.com/jwalitptl/contacts-api/pkg/logger"
	"github.com/jwalitptl/contacts-api/pkg/metrics"
)

func main() {
	log := logger.NewLogger(nil)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err, "failed to load configuration")
	}

	log = logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Logging.Level),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	// Initialize storage
	var db *sqlx.DB
	var personRepo repository.PersonRepository
	var countryRepo repository.CountryRepository

	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err = postgres.NewDB(cfg.Database)
		if err != nil {
			log.Fatal(err, "failed to connect to database")
		}
		defer db.Close()
		personRepo = postgres.NewPersonRepository(db)
		countryRepo = postgres.NewCountryRepository(db)
	default:
		personRepo = memory.NewPersonRepository()
		countryRepo = memory.NewCountryRepository()
	}

	// Initialize services
	countrySvc := countryService.NewService(countryRepo)
	personSvc := personService.NewService(personRepo, countryRepo)

	// Initialize handlers
	personH := personHandler.NewHandler(personSvc)
	countryH := countryHandler.NewHandler(countrySvc)
	healthH := healthHandler.NewHandler(db)

	// Setup router
	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.Security.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.Security.AllowedOrigins
	}

	rateLimitConfig := middleware.DefaultRateLimiterConfig()
	rateLimitConfig.RPS = cfg.RateLimit.RequestsPerSecond
	rateLimitConfig.Burst = cfg.RateLimit.Burst

	r := router.NewRouter(personH, countryH, healthH, metrics.New("contacts"), router.Config{
		RateLimit:   rateLimitConfig,
		CORS:        corsConfig,
		Timeout:     cfg.Server.RequestTimeout,
		MetricsPath: cfg.Monitoring.MetricsPath,
	})
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", "port", cfg.Server.Port, "storage", cfg.Storage.Driver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err, "failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err, "server forced to shutdown")
	}

	log.Info("server exited")
}
