package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/models"
	"github.com/rs/zerolog"
)

// postRepository is the database/sql implementation of [PostRepository].
// Queries are built with the dialect-aware squirrel builder of the
// embedded [*DB], so the same code serves PostgreSQL and SQLite.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures are traced with the
// request's trace id.
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts the post and its tags in one transaction and returns
// the post with the identifier and timestamps assigned by the database.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	insertQuery, insertArgs, err := p.buildInsertPostQuery(post)
	if err != nil {
		log.Debug().Err(err).Str("func", "postRepository.CreatePost").Msg("failed to create query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created := post
	created.Images = []string{}
	if created.Tags == nil {
		created.Tags = []string{}
	}

	err = p.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		scanErr := tx.QueryRowContext(ctx, insertQuery, insertArgs...).
			Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if scanErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, scanErr)
		}
		if created.ID == 0 {
			return ErrPostNotSaved
		}

		if len(created.Tags) == 0 {
			return nil
		}

		tagsQuery, tagsArgs, buildErr := p.buildInsertTagsQuery(created.ID, created.Tags)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, execErr := tx.ExecContext(ctx, tagsQuery, tagsArgs...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		return nil
	})
	if err != nil {
		log.Debug().Err(err).
			Str("func", "postRepository.CreatePost").
			Int64("user_id", post.UserID).
			Msg("failed to create post")
		return models.Post{}, err
	}

	return created, nil
}

// ListPosts returns a page of live posts, newest first.
func (p *postRepository) ListPosts(ctx context.Context, limit, offset uint64) ([]models.Post, error) {
	query, args, err := p.buildListPostsQuery(limit, offset)
	if err != nil {
		return nil, p.buildError(ctx, "postRepository.ListPosts", err)
	}

	return p.queryPosts(ctx, "postRepository.ListPosts", query, args)
}

// SearchPosts returns live posts whose title or description contains query,
// ignoring case.
func (p *postRepository) SearchPosts(ctx context.Context, query string, limit, offset uint64) ([]models.Post, error) {
	sqlQuery, args, err := p.buildSearchPostsQuery(query, limit, offset)
	if err != nil {
		return nil, p.buildError(ctx, "postRepository.SearchPosts", err)
	}

	return p.queryPosts(ctx, "postRepository.SearchPosts", sqlQuery, args)
}

// GetPost returns a single live post or [ErrPostNotFound].
func (p *postRepository) GetPost(ctx context.Context, id int64) (models.Post, error) {
	query, args, err := p.buildGetPostQuery(id)
	if err != nil {
		return models.Post{}, p.buildError(ctx, "postRepository.GetPost", err)
	}

	posts, err := p.queryPosts(ctx, "postRepository.GetPost", query, args)
	if err != nil {
		return models.Post{}, err
	}
	if len(posts) == 0 {
		return models.Post{}, ErrPostNotFound
	}

	return posts[0], nil
}

// ListUserPosts returns a page of the live posts written by userID.
func (p *postRepository) ListUserPosts(ctx context.Context, userID int64, limit, offset uint64) ([]models.Post, error) {
	query, args, err := p.buildListUserPostsQuery(userID, limit, offset)
	if err != nil {
		return nil, p.buildError(ctx, "postRepository.ListUserPosts", err)
	}

	return p.queryPosts(ctx, "postRepository.ListUserPosts", query, args)
}

// ListTags returns every tag carried by a live post with the number of
// such posts, most used first.
func (p *postRepository) ListTags(ctx context.Context) ([]models.Tag, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildListTagsQuery()
	if err != nil {
		return nil, p.buildError(ctx, "postRepository.ListTags", err)
	}

	var tags []models.Tag
	err = p.withRetry(ctx, func(ctx context.Context) error {
		rows, queryErr := p.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		tags = make([]models.Tag, 0, 50)
		for rows.Next() {
			var tag models.Tag
			if scanErr := rows.Scan(&tag.Name, &tag.Count); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			tags = append(tags, tag)
		}

		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}

		return nil
	})
	if err != nil {
		log.Debug().Err(err).Str("func", "postRepository.ListTags").Msg("failed to list tags")
		return nil, err
	}

	return tags, nil
}

// ListPostTags returns the tags of one live post.
func (p *postRepository) ListPostTags(ctx context.Context, postID int64) ([]string, error) {
	log := logger.FromContext(ctx)

	var tags []string
	err := p.withRetry(ctx, func(ctx context.Context) error {
		if err := p.postExists(ctx, p.DB, postID); err != nil {
			return err
		}

		var err error
		tags, err = p.listPostValues(ctx, p.DB, postID, p.buildTagsQuery)
		return err
	})
	if err != nil {
		logFailure(log, err).
			Str("func", "postRepository.ListPostTags").
			Int64("post_id", postID).
			Msg("failed to list post tags")
		return nil, err
	}

	return tags, nil
}

// UpdatePost writes the non-nil fields of update and returns the post as
// stored afterwards.
func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (models.Post, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildUpdatePostQuery(update)
	if err != nil {
		return models.Post{}, p.buildError(ctx, "postRepository.UpdatePost", err)
	}

	if err = p.execAffectingPost(ctx, query, args); err != nil {
		logFailure(log, err).
			Str("func", "postRepository.UpdatePost").
			Int64("post_id", update.ID).
			Msg("failed to update post")
		return models.Post{}, err
	}

	return p.GetPost(ctx, update.ID)
}

// AddImage attaches an image URL to a live post and returns all of its
// image URLs, oldest first.
func (p *postRepository) AddImage(ctx context.Context, postID int64, url string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildInsertImageQuery(postID, url)
	if err != nil {
		return nil, p.buildError(ctx, "postRepository.AddImage", err)
	}

	var images []string
	err = p.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := p.postExists(ctx, tx, postID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		var err error
		images, err = p.listPostValues(ctx, tx, postID, p.buildImagesQuery)
		return err
	})
	if err != nil {
		logFailure(log, err).
			Str("func", "postRepository.AddImage").
			Int64("post_id", postID).
			Msg("failed to add image")
		return nil, err
	}

	return images, nil
}

// Vote records the user's vote on a live post, replacing an earlier vote
// of the same user, and returns the recounted totals.
func (p *postRepository) Vote(ctx context.Context, vote models.Vote) (models.VoteResult, error) {
	log := logger.FromContext(ctx)

	upsertQuery, upsertArgs, err := p.buildUpsertVoteQuery(vote)
	if err != nil {
		return models.VoteResult{}, p.buildError(ctx, "postRepository.Vote", err)
	}

	recountQuery, recountArgs, err := p.buildRecountVotesQuery(vote.PostID)
	if err != nil {
		return models.VoteResult{}, p.buildError(ctx, "postRepository.Vote", err)
	}

	result := models.VoteResult{PostID: vote.PostID}
	err = p.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := p.postExists(ctx, tx, vote.PostID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, upsertQuery, upsertArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if err := tx.QueryRowContext(ctx, recountQuery, recountArgs...).Scan(&result.UpVotes, &result.DownVotes); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		return nil
	})
	if err != nil {
		logFailure(log, err).
			Str("func", "postRepository.Vote").
			Int64("post_id", vote.PostID).
			Int64("user_id", vote.UserID).
			Int("value", int(vote.Value)).
			Msg("failed to vote")
		return models.VoteResult{}, err
	}

	return result, nil
}

// RemovePost marks a live post as removed. The row is kept until
// PurgeRemoved deletes it.
func (p *postRepository) RemovePost(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := p.buildRemovePostQuery(id)
	if err != nil {
		return p.buildError(ctx, "postRepository.RemovePost", err)
	}

	if err = p.execAffectingPost(ctx, query, args); err != nil {
		logFailure(log, err).
			Str("func", "postRepository.RemovePost").
			Int64("post_id", id).
			Msg("failed to remove post")
		return err
	}

	log.Debug().
		Str("func", "postRepository.RemovePost").
		Int64("post_id", id).
		Msg("post removed")

	return nil
}

// AddTag attaches a tag to a live post and returns all of its tags. Adding
// a tag the post already carries is a no-op.
func (p *postRepository) AddTag(ctx context.Context, postID int64, tag string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildInsertTagsQuery(postID, []string{tag})
	if err != nil {
		return nil, p.buildError(ctx, "postRepository.AddTag", err)
	}

	var tags []string
	err = p.inTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := p.postExists(ctx, tx, postID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		var err error
		tags, err = p.listPostValues(ctx, tx, postID, p.buildTagsQuery)
		return err
	})
	if err != nil {
		logFailure(log, err).
			Str("func", "postRepository.AddTag").
			Int64("post_id", postID).
			Str("tag", tag).
			Msg("failed to add tag")
		return nil, err
	}

	return tags, nil
}

// SearchByTags returns live posts carrying any of the given tags, newest
// first.
func (p *postRepository) SearchByTags(ctx context.Context, tags []string, limit, offset uint64) ([]models.Post, error) {
	query, args, err := p.buildSearchByTagsQuery(tags, limit, offset)
	if err != nil {
		return nil, p.buildError(ctx, "postRepository.SearchByTags", err)
	}

	return p.queryPosts(ctx, "postRepository.SearchByTags", query, args)
}

// PurgeRemoved deletes posts removed before olderThan together with their
// images, tags and votes. It returns the number of purged posts.
func (p *postRepository) PurgeRemoved(ctx context.Context, olderThan time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := p.buildPurgeRemovedQuery(olderThan.UTC())
	if err != nil {
		return 0, p.buildError(ctx, "postRepository.PurgeRemoved", err)
	}

	var purged int64
	err = p.withRetry(ctx, func(ctx context.Context) error {
		result, execErr := p.DB.ExecContext(ctx, query, args...)
		if execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		var affectedErr error
		purged, affectedErr = result.RowsAffected()
		return affectedErr
	})
	if err != nil {
		log.Debug().Err(err).
			Str("func", "postRepository.PurgeRemoved").
			Time("older_than", olderThan).
			Msg("failed to purge removed posts")
		return 0, err
	}

	return purged, nil
}

// queryPosts runs a post SELECT and loads the images and tags of the
// returned posts.
func (p *postRepository) queryPosts(ctx context.Context, funcName, query string, args []any) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	var posts []models.Post
	err := p.withRetry(ctx, func(ctx context.Context) error {
		rows, queryErr := p.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}

		var scanErr error
		posts, scanErr = scanPosts(rows)
		rows.Close()
		if scanErr != nil {
			return scanErr
		}

		return p.loadRelations(ctx, p.DB, posts)
	})
	if err != nil {
		log.Debug().Err(err).Str("func", funcName).Msg("failed to query posts")
		return nil, err
	}

	return posts, nil
}

func scanPosts(rows *sql.Rows) ([]models.Post, error) {
	posts := make([]models.Post, 0, 20)

	for rows.Next() {
		var post models.Post

		scanErr := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Description,
			&post.Code,
			&post.UpVotes,
			&post.DownVotes,
			&post.Deleted,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		posts = append(posts, post)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return posts, nil
}

// loadRelations fills Images and Tags of posts with two queries covering
// the whole page.
func (p *postRepository) loadRelations(ctx context.Context, q querier, posts []models.Post) error {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]int64, len(posts))
	for i := range posts {
		ids[i] = posts[i].ID
	}

	images, err := p.queryPostValues(ctx, q, ids, p.buildImagesQuery)
	if err != nil {
		return err
	}

	tags, err := p.queryPostValues(ctx, q, ids, p.buildTagsQuery)
	if err != nil {
		return err
	}

	for i := range posts {
		posts[i].Images = nonNil(images[posts[i].ID])
		posts[i].Tags = nonNil(tags[posts[i].ID])
	}

	return nil
}

// listPostValues returns the values one post holds in a relation table.
func (p *postRepository) listPostValues(ctx context.Context, q querier, postID int64,
	build func(postIDs []int64) (string, []any, error)) ([]string, error) {
	values, err := p.queryPostValues(ctx, q, []int64{postID}, build)
	if err != nil {
		return nil, err
	}

	return nonNil(values[postID]), nil
}

// queryPostValues runs a (post_id, value) query and groups values by post.
func (p *postRepository) queryPostValues(ctx context.Context, q querier, postIDs []int64,
	build func(postIDs []int64) (string, []any, error)) (map[int64][]string, error) {
	query, args, err := build(postIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[int64][]string, len(postIDs))
	for rows.Next() {
		var postID int64
		var value string
		if scanErr := rows.Scan(&postID, &value); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		values[postID] = append(values[postID], value)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return values, nil
}

// postExists returns ErrPostNotFound unless a live post with id exists.
func (p *postRepository) postExists(ctx context.Context, q querier, id int64) error {
	query, args, err := p.buildPostExistsQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = q.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrPostNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// execAffectingPost executes an UPDATE addressed to one live post and
// returns ErrPostNotFound when no row matched.
func (p *postRepository) execAffectingPost(ctx context.Context, query string, args []any) error {
	return p.withRetry(ctx, func(ctx context.Context) error {
		result, err := p.DB.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrPostNotFound
		}

		return nil
	})
}

// logFailure logs a missing post as a warning and anything else at debug
// level. The request layer owns the single error record of a failed call.
func logFailure(log *logger.Logger, err error) *zerolog.Event {
	if errors.Is(err, ErrPostNotFound) {
		return log.Warn().Err(err)
	}

	return log.Debug().Err(err)
}

func (p *postRepository) buildError(ctx context.Context, funcName string, err error) error {
	logger.FromContext(ctx).Debug().Err(err).Str("func", funcName).Msg("failed to create query")
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
