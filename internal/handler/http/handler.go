package http

import (
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"
)

type Handler struct {
	services *service.Services

	operations []operation

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("http handler created")
	return &Handler{
		services:   services,
		operations: postOperations(),
		logger:     logger,
	}
}
