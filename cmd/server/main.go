package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ndewijer/Bond-Portfolio-Manager/internal/api"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/config"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/database"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/reminder"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/repository"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/service"
	"github.com/ndewijer/Bond-Portfolio-Manager/internal/version"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	// Package-level logrus calls (response encoding errors) share the format.
	logrus.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.WithError(err).Fatal("failed to load configuration")
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.WithError(err).Warn("unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	logrus.SetLevel(level)

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		logger.WithError(err).Fatal("failed to migrate database")
	}

	logger.WithFields(logrus.Fields{
		"path":    cfg.Database.Path,
		"version": version.Version,
	}).Info("connected to database")

	cipher, err := repository.NewNotesCipher(cfg.Database.NotesKey)
	if err != nil {
		logger.WithError(err).Fatal("invalid NOTES_ENCRYPTION_KEY")
	}

	// Create repositories
	bondRepo := repository.NewBondRepository(db, cipher)

	// Create services
	bondService := service.NewBondService(bondRepo)
	interestService := service.NewInterestService(bondService)
	services := api.Services{
		System:    service.NewSystemService(db, cipher != nil, cfg.Reminder.Enabled),
		Bond:      bondService,
		Interest:  interestService,
		Yield:     service.NewYieldService(bondService),
		Portfolio: service.NewPortfolioService(bondService),
	}

	var scheduler *reminder.Scheduler
	if cfg.Reminder.Enabled {
		digest := reminder.NewDigest(interestService, cfg.Reminder.WindowDays, logger.WithField("component", "reminder"))
		scheduler, err = reminder.Start(cfg.Reminder.Schedule, digest, logger)
		if err != nil {
			logger.WithError(err).Fatal("failed to start payment reminder")
		}
	}

	// Create router
	router := api.NewRouter(services, cfg, logger.WithField("component", "http"))

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.WithField("addr", cfg.Server.Addr).Info("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if scheduler != nil {
		scheduler.Stop(ctx)
	}

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("server forced to shutdown")
		return
	}

	logger.Info("server exited")
}
