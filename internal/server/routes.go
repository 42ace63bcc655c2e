package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"croprec/internal/crop"
	"croprec/internal/handlers"
	"croprec/internal/handlers/api"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes(service *crop.Service, gatherer prometheus.Gatherer) {
	// Initialize handlers
	predictHandler := handlers.NewPredictHandler(service, s.Cfg)
	probeHandler := handlers.NewProbeHandler(service)
	apiPredictHandler := api.NewPredictHandler(service)

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	// Frontend routes
	s.App.Get("/", predictHandler.Index)
	s.App.Post("/predict", predictHandler.Predict)

	// JSON API
	apiGroup := s.App.Group("/api")
	apiGroup.Post("/predict", apiPredictHandler.Predict)
	apiGroup.Get("/crops", apiPredictHandler.Crops)
}
