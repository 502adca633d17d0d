package handler

import (
	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/handler/grpc"
	"github.com/MKhiriev/go-posts/internal/handler/http"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"
)

// Handlers holds the transports of go-posts. HTTP serves the node_api post
// operations and the version route; GRPC serves the health protocol.
// A transport without a configured address is nil.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransportConfigured
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers created")

	return handlers, nil
}
