package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
	"github.com/redis/go-redis/v9"
)

const (
	redisDialTimeout  = 3 * time.Second
	redisReadTimeout  = 2 * time.Second
	redisWriteTimeout = 2 * time.Second
	redisPingTimeout  = 2 * time.Second

	postKeyPrefix = "posts:post:"
)

// redisCache is a [PostCache] storing posts as JSON under "posts:post:<id>".
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisCache connects to the Redis server at redisURL and verifies the
// connection with a PING.
func NewRedisCache(ctx context.Context, redisURL string, ttl time.Duration, log *logger.Logger) (PostCache, func() error, error) {
	options, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.PoolSize = 10
	options.MinIdleConns = 2
	options.MaxIdleConns = 5
	options.DialTimeout = redisDialTimeout
	options.ReadTimeout = redisReadTimeout
	options.WriteTimeout = redisWriteTimeout

	client := redis.NewClient(options)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		log.Err(err).Str("func", "NewRedisCache").Msg("redis ping failed")
		return nil, nil, fmt.Errorf("redis: ping failed: %w", err)
	}

	log.Info().
		Str("func", "NewRedisCache").
		Str("addr", options.Addr).
		Dur("ttl", ttl).
		Msg("redis cache connected")

	return newRedisCache(client, ttl, log), client.Close, nil
}

func newRedisCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *redisCache {
	return &redisCache{
		client: client,
		ttl:    ttl,
		logger: log,
	}
}

func postKey(id int64) string {
	return postKeyPrefix + strconv.FormatInt(id, 10)
}

func (c *redisCache) GetPost(ctx context.Context, id int64) (models.Post, error) {
	data, err := c.client.Get(ctx, postKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Post{}, ErrCacheMiss
	}
	if err != nil {
		return models.Post{}, fmt.Errorf("redis: get post %d: %w", id, err)
	}

	var post models.Post
	if err = json.Unmarshal(data, &post); err != nil {
		return models.Post{}, fmt.Errorf("redis: decode post %d: %w", id, err)
	}

	return post, nil
}

func (c *redisCache) SetPost(ctx context.Context, post models.Post) error {
	data, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("redis: encode post %d: %w", post.ID, err)
	}

	if err = c.client.Set(ctx, postKey(post.ID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis: set post %d: %w", post.ID, err)
	}

	return nil
}

func (c *redisCache) DeletePost(ctx context.Context, id int64) error {
	if err := c.client.Del(ctx, postKey(id)).Err(); err != nil {
		return fmt.Errorf("redis: delete post %d: %w", id, err)
	}

	return nil
}
