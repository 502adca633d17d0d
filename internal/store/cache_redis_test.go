package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unreachableRedis returns a client whose every command fails fast.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	return client
}

func TestPostKey(t *testing.T) {
	assert.Equal(t, "posts:post:42", postKey(42))
}

func TestNewRedisCache_InvalidURL(t *testing.T) {
	_, _, err := NewRedisCache(context.Background(), "not-a-url", time.Minute, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid URL")
}

func TestNewRedisCache_PingFails(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	_, _, err := NewRedisCache(ctx, "redis://127.0.0.1:1/0", time.Minute, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ping failed")
}

func TestRedisCache_UnreachableServer(t *testing.T) {
	cache := newRedisCache(unreachableRedis(t), time.Minute, logger.Nop())
	ctx := context.Background()

	_, err := cache.GetPost(ctx, 1)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)

	err = cache.SetPost(ctx, models.Post{ID: 1, Title: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "set post 1")

	err = cache.DeletePost(ctx, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete post 1")
}
