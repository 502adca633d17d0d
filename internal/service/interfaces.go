package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=PostServiceWrapper

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-posts/models"
)

// PostService exposes the post operations. Every operation takes the raw
// JSON request body, decodes and validates it, and returns a result that is
// ready to be serialised as the response body.
type PostService interface {
	Create(ctx context.Context, body json.RawMessage) (any, error)
	Show(ctx context.Context, body json.RawMessage) (any, error)
	Search(ctx context.Context, body json.RawMessage) (any, error)
	ShowByID(ctx context.Context, body json.RawMessage) (any, error)
	ShowByUser(ctx context.Context, body json.RawMessage) (any, error)
	ShowTags(ctx context.Context, body json.RawMessage) (any, error)
	Update(ctx context.Context, body json.RawMessage) (any, error)
	AddImage(ctx context.Context, body json.RawMessage) (any, error)
	UpVote(ctx context.Context, body json.RawMessage) (any, error)
	DownVote(ctx context.Context, body json.RawMessage) (any, error)
	Remove(ctx context.Context, body json.RawMessage) (any, error)
	AddTag(ctx context.Context, body json.RawMessage) (any, error)
	SearchTags(ctx context.Context, body json.RawMessage) (any, error)
}

// PostServiceWrapper defines middleware composition for PostService.
// Implementations wrap an existing PostService to add behavior such as
// caching.
type PostServiceWrapper interface {
	Wrap(PostService) PostService // returns a decorated PostService applying additional behavior
}

// HealthService reports whether the service can reach its storage.
type HealthService interface {
	Ping(ctx context.Context) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
