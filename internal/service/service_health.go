package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	pinger Pinger

	logger *logger.Logger
}

func NewHealthService(pinger Pinger, logger *logger.Logger) HealthService {
	return &healthService{
		pinger: pinger,
		logger: logger,
	}
}

// Ping checks the storage within healthCheckTimeout.
func (s *healthService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	if err := s.pinger.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return nil
}
