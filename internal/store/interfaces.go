package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-posts/models"
)

// PostRepository persists posts together with their images, tags and votes.
// Removed posts are invisible to every read and write except PurgeRemoved.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context, limit, offset uint64) ([]models.Post, error)
	SearchPosts(ctx context.Context, query string, limit, offset uint64) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	ListUserPosts(ctx context.Context, userID int64, limit, offset uint64) ([]models.Post, error)
	ListTags(ctx context.Context) ([]models.Tag, error)
	ListPostTags(ctx context.Context, postID int64) ([]string, error)
	UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error)
	AddImage(ctx context.Context, postID int64, url string) ([]string, error)
	Vote(ctx context.Context, vote models.Vote) (models.VoteResult, error)
	RemovePost(ctx context.Context, id int64) error
	AddTag(ctx context.Context, postID int64, tag string) ([]string, error)
	SearchByTags(ctx context.Context, tags []string, limit, offset uint64) ([]models.Post, error)
	PurgeRemoved(ctx context.Context, olderThan time.Time) (int64, error)
}

// PostCache keeps single posts by id for fast reads.
type PostCache interface {
	// GetPost returns ErrCacheMiss when the post is not cached.
	GetPost(ctx context.Context, id int64) (models.Post, error)
	SetPost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, id int64) error
}

// ErrorClassificator decides whether a database error is worth retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
