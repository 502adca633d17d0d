package service

import (
	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/models"
)

type Services struct {
	PostService    PostService
	HealthService  HealthService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. The post service reads
// through storages.PostCache when one is configured.
func NewServices(storages *store.Storages, cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	postService := NewPostService(storages.PostRepository, logger)
	if storages.PostCache != nil {
		postService = NewPostCacheService(storages.PostCache, logger).Wrap(postService)
	}

	return &Services{
		PostService:    postService,
		HealthService:  NewHealthService(storages, logger),
		AppInfoService: appInfoService,
	}, nil
}
