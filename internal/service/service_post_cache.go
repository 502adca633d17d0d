package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/models"
)

// PostCacheService reads single posts through a [store.PostCache] and drops
// the cached copy whenever an operation changes the post. Cache failures are
// logged and never fail the request.
type PostCacheService struct {
	inner PostService
	cache store.PostCache

	logger *logger.Logger
}

func NewPostCacheService(cache store.PostCache, logger *logger.Logger) PostServiceWrapper {
	return &PostCacheService{
		cache:  cache,
		logger: logger,
	}
}

func (c *PostCacheService) Wrap(inner PostService) PostService {
	c.inner = inner
	return c
}

// postIDOf extracts the "id" of a request body. Zero means the body did not
// address a post; the inner service reports the problem.
func postIDOf(body json.RawMessage) int64 {
	var request struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(body, &request); err != nil {
		return 0
	}

	return request.ID
}

func (c *PostCacheService) ShowByID(ctx context.Context, body json.RawMessage) (any, error) {
	log := logger.FromContext(ctx)

	id := postIDOf(body)
	if id <= 0 {
		return c.inner.ShowByID(ctx, body)
	}

	post, err := c.cache.GetPost(ctx, id)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		log.Warn().Err(err).Str("func", "PostCacheService.ShowByID").Int64("post_id", id).Msg("cache read failed")
	}

	result, err := c.inner.ShowByID(ctx, body)
	if err != nil {
		return nil, err
	}

	if post, ok := result.(models.Post); ok {
		if setErr := c.cache.SetPost(ctx, post); setErr != nil {
			log.Warn().Err(setErr).Str("func", "PostCacheService.ShowByID").Int64("post_id", id).Msg("cache write failed")
		}
	}

	return result, nil
}

// invalidate runs op and evicts the addressed post once op succeeded.
func (c *PostCacheService) invalidate(ctx context.Context, body json.RawMessage,
	op func(context.Context, json.RawMessage) (any, error)) (any, error) {
	result, err := op(ctx, body)
	if err != nil {
		return nil, err
	}

	if id := postIDOf(body); id > 0 {
		if delErr := c.cache.DeletePost(ctx, id); delErr != nil {
			logger.FromContext(ctx).Warn().Err(delErr).
				Str("func", "PostCacheService.invalidate").
				Int64("post_id", id).
				Msg("cache eviction failed")
		}
	}

	return result, nil
}

func (c *PostCacheService) Update(ctx context.Context, body json.RawMessage) (any, error) {
	return c.invalidate(ctx, body, c.inner.Update)
}

func (c *PostCacheService) AddImage(ctx context.Context, body json.RawMessage) (any, error) {
	return c.invalidate(ctx, body, c.inner.AddImage)
}

func (c *PostCacheService) UpVote(ctx context.Context, body json.RawMessage) (any, error) {
	return c.invalidate(ctx, body, c.inner.UpVote)
}

func (c *PostCacheService) DownVote(ctx context.Context, body json.RawMessage) (any, error) {
	return c.invalidate(ctx, body, c.inner.DownVote)
}

func (c *PostCacheService) Remove(ctx context.Context, body json.RawMessage) (any, error) {
	return c.invalidate(ctx, body, c.inner.Remove)
}

func (c *PostCacheService) AddTag(ctx context.Context, body json.RawMessage) (any, error) {
	return c.invalidate(ctx, body, c.inner.AddTag)
}

func (c *PostCacheService) Create(ctx context.Context, body json.RawMessage) (any, error) {
	return c.inner.Create(ctx, body)
}

func (c *PostCacheService) Show(ctx context.Context, body json.RawMessage) (any, error) {
	return c.inner.Show(ctx, body)
}

func (c *PostCacheService) Search(ctx context.Context, body json.RawMessage) (any, error) {
	return c.inner.Search(ctx, body)
}

func (c *PostCacheService) ShowByUser(ctx context.Context, body json.RawMessage) (any, error) {
	return c.inner.ShowByUser(ctx, body)
}

func (c *PostCacheService) ShowTags(ctx context.Context, body json.RawMessage) (any, error) {
	return c.inner.ShowTags(ctx, body)
}

func (c *PostCacheService) SearchTags(ctx context.Context, body json.RawMessage) (any, error) {
	return c.inner.SearchTags(ctx, body)
}
