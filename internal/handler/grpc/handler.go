// Package grpc exposes the standard gRPC health service of go-posts. The
// serving status follows the reachability of the post storage.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// PostServiceName is the health service name reported for the post
// operations. The empty name reports the server as a whole.
const PostServiceName = "goposts.PostService"

const defaultProbeInterval = 10 * time.Second

// Handler is the root gRPC transport handler.
//
// It owns the health server registered on the gRPC server and keeps its
// serving status in line with [service.HealthService].
type Handler struct {
	// services provides access to the storage health check.
	services *service.Services

	health *health.Server

	// interval is the period between two storage probes.
	interval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts as NOT_SERVING
// until the first successful probe.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		interval: defaultProbeInterval,
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register mounts the health service on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// CheckHealth probes the storage once and publishes the result.
func (h *Handler) CheckHealth(ctx context.Context) error {
	if err := h.services.HealthService.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("storage probe failed")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Run probes the storage every interval until ctx is done, then marks every
// service NOT_SERVING for the rest of the process lifetime.
func (h *Handler) Run(ctx context.Context) {
	_ = h.CheckHealth(ctx)

	t := time.NewTicker(h.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-t.C:
			_ = h.CheckHealth(ctx)
		}
	}
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(PostServiceName, status)
}
