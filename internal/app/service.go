package app

import (
	"context"
	"log"
	"time"

	"teesheet-service/internal/config"
	apphttp "teesheet-service/internal/http"
	"teesheet-service/internal/repository/postgres"
)

// Service represents the tee sheet application
type Service struct {
	config *config.Config
	db     *postgres.DB
	server *apphttp.Server
}

// NewService creates and initializes a new Service instance
// This is a convenience wrapper around InitializeService
func NewService() (*Service, error) {
	return InitializeService()
}

// Start starts the HTTP server and blocks until it stops.
func (s *Service) Start() error {
	log.Printf("Starting tee sheet service on port %s...", s.config.Server.Port)
	return s.server.Start(":" + s.config.Server.Port)
}

// Shutdown gracefully shuts down the service and closes the database pool.
func (s *Service) Shutdown(ctx context.Context) error {
	defer s.db.Close()
	return s.server.Shutdown(ctx)
}

// ShutdownTimeout reports the configured grace period for draining requests.
func (s *Service) ShutdownTimeout() time.Duration {
	return s.config.Server.ShutdownTimeout
}
