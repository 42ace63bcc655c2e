package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"croprec/internal/config"
	"croprec/internal/crop"
	"croprec/internal/metrics"
	"croprec/internal/model"
	"croprec/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	slog.SetDefault(newLogger(cfg))

	// Load the model once; a missing artifact aborts before anything is served
	log.Printf("Looking for model at: %s", model.Artifact(cfg))
	classifier, err := model.Load(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to load model: %v", err)
	}
	defer classifier.Close()
	log.Printf("Model loaded (%s backend)", cfg.ModelBackend)

	metrics.Init(prometheus.DefaultRegisterer, cfg.ModelBackend, model.Artifact(cfg))

	service := crop.NewService(classifier, slog.Default())

	srv := server.New(cfg)
	srv.RegisterRoutes(service, prometheus.DefaultGatherer)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := srv.Shutdown(); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}

// newLogger logs text at debug level in development and JSON otherwise.
func newLogger(cfg *config.Config) *slog.Logger {
	if cfg.IsDev() {
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, nil))
}
