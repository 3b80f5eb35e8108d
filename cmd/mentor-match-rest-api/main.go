// cmd/mentor-match-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/api/rest/middleware"
	v1 "github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/api/rest/v1"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/app"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/feedback"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/matching"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/profiles"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/domain/system"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/infrastructure/persistence"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/infrastructure/sentiment"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/config"
	"github.com/Lambda-School-Labs/underdog-devs-ds-a/internal/pkg/logger"
	"github.com/gin-contrib/cors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	ctx := context.Background()
	services, db, err := initializeDependencies(ctx, restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := persistence.CloseMongoConnection(ctx, db); err != nil {
			log.Warn("Failed to close database connection: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, services, log)
}

// appServices holds all initialized application components
type appServices struct {
	mentee   profiles.MenteeService
	mentor   profiles.MentorService
	matcher  matching.Matcher
	aid      profiles.AidEstimationService
	feedback feedback.Service
	info     system.InfoService
}

// initializeDependencies sets up all application components
func initializeDependencies(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (*appServices, *mongo.Database, error) {
	// Initialize database
	db, err := persistence.NewMongoConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create database connection: %w", err)
	}
	log.Info("Connected to database ", cfg.Database.Name)

	// Initialize repositories
	menteeRepo, err := persistence.NewMongoMenteeRepository(ctx, db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mentee repository: %w", err)
	}

	mentorRepo, err := persistence.NewMongoMentorRepository(ctx, db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create mentor repository: %w", err)
	}

	feedbackRepo, err := persistence.NewMongoFeedbackRepository(ctx, db, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create feedback repository: %w", err)
	}

	// Initialize sentiment analyzer
	analyzer, err := sentiment.NewLexiconAnalyzer(log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create sentiment analyzer: %w", err)
	}

	// Initialize services
	services, err := initializeApplicationServices(db, menteeRepo, mentorRepo, feedbackRepo, analyzer, log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return services, db, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	db *mongo.Database,
	menteeRepo profiles.MenteeRepository,
	mentorRepo profiles.MentorRepository,
	feedbackRepo feedback.Repository,
	analyzer feedback.Analyzer,
	log logger.Logger,
) (*appServices, error) {
	menteeService, err := app.NewMenteeService(menteeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mentee service: %w", err)
	}

	mentorService, err := app.NewMentorService(mentorRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mentor service: %w", err)
	}

	matcherService, err := app.NewMatcherService(menteeRepo, mentorRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create matcher service: %w", err)
	}

	aidService, err := app.NewAidService(menteeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create aid service: %w", err)
	}

	feedbackService, err := app.NewFeedbackService(feedbackRepo, menteeRepo, mentorRepo, analyzer, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback service: %w", err)
	}

	infoService, err := persistence.NewMongoInfoService(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create info service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		mentee:   menteeService,
		mentor:   mentorService,
		matcher:  matcherService,
		aid:      aidService,
		feedback: feedbackService,
		info:     infoService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Request metrics
	metrics := middleware.NewRequestMetrics()
	r.Use(metrics.Handler())
	r.GET("/metrics", metrics.Exporter())

	// Setup API routes
	auth := middleware.RequireAuth(&cfg.Auth, log)
	v1.SetupRoutes(r,
		services.mentee,
		services.mentor,
		services.matcher,
		services.aid,
		services.feedback,
		services.info,
		auth,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
