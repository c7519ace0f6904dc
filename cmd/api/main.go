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

	"github.com/Dan9191/calc-service/internal/config"
	"github.com/Dan9191/calc-service/internal/handler"
	"github.com/Dan9191/calc-service/internal/integrations/cbr"
	"github.com/Dan9191/calc-service/internal/repository"
	"github.com/Dan9191/calc-service/internal/service"
	"github.com/Dan9191/calc-service/internal/utils/email"
	"github.com/sirupsen/logrus"

	_ "time/tzdata"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize storage
	ctx := context.Background()
	store, err := repository.Open(ctx, repository.Config{
		Driver:    cfg.StoreDriver,
		DSN:       cfg.DBConn,
		RedisAddr: cfg.RedisAddr,
	})
	if err != nil {
		logger.Fatalf("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer store.Close()
	logger.Infof("Using %s store", cfg.StoreDriver)

	// Initialize layers
	var mailer service.Mailer
	if cfg.MailEnabled() {
		mailer = email.NewSender(cfg, logger)
	}
	svc := service.NewService(store, logger, cfg, mailer)
	cbrClient := cbr.NewCBRClient(cfg, logger)
	h := handler.NewHandler(svc, cbrClient, cfg, logger)
	r := handler.NewRouter(h)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
