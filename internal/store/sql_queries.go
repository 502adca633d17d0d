package store

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-posts/models"
	sq "github.com/Masterminds/squirrel"
)

// postColumns is the column list scanned by scanPosts, in scan order.
var postColumns = []string{
	"p.id",
	"p.user_id",
	"p.title",
	"p.description",
	"p.code",
	"p.up_votes",
	"p.down_votes",
	"p.deleted",
	"p.created_at",
	"p.updated_at",
}

const (
	upsertVoteSuffix = "ON CONFLICT (post_id, user_id) DO UPDATE SET value = excluded.value"
	insertTagSuffix  = "ON CONFLICT (post_id, tag) DO NOTHING"
	countVotesExpr   = "(SELECT COUNT(*) FROM post_votes WHERE post_id = ? AND value = ?)"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// selectLivePosts selects posts that were not removed, newest first.
func (db *DB) selectLivePosts() sq.SelectBuilder {
	return db.builder.
		Select(postColumns...).
		From("posts p").
		Where(sq.Eq{"p.deleted": false}).
		OrderBy("p.created_at DESC", "p.id DESC")
}

func (db *DB) buildListPostsQuery(limit, offset uint64) (string, []any, error) {
	return db.selectLivePosts().Limit(limit).Offset(offset).ToSql()
}

func (db *DB) buildSearchPostsQuery(query string, limit, offset uint64) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"

	return db.selectLivePosts().
		Where(sq.Or{
			sq.Expr(`LOWER(p.title) LIKE ? ESCAPE '\'`, pattern),
			sq.Expr(`LOWER(p.description) LIKE ? ESCAPE '\'`, pattern),
		}).
		Limit(limit).
		Offset(offset).
		ToSql()
}

func (db *DB) buildGetPostQuery(id int64) (string, []any, error) {
	return db.builder.
		Select(postColumns...).
		From("posts p").
		Where(sq.Eq{"p.id": id, "p.deleted": false}).
		ToSql()
}

func (db *DB) buildListUserPostsQuery(userID int64, limit, offset uint64) (string, []any, error) {
	return db.selectLivePosts().
		Where(sq.Eq{"p.user_id": userID}).
		Limit(limit).
		Offset(offset).
		ToSql()
}

func (db *DB) buildSearchByTagsQuery(tags []string, limit, offset uint64) (string, []any, error) {
	subQuery, subArgs, err := sq.Select("post_id").
		From("post_tags").
		Where(sq.Eq{"tag": tags}).
		ToSql()
	if err != nil {
		return "", nil, err
	}

	return db.selectLivePosts().
		Where("p.id IN ("+subQuery+")", subArgs...).
		Limit(limit).
		Offset(offset).
		ToSql()
}

func (db *DB) buildPostExistsQuery(id int64) (string, []any, error) {
	return db.builder.
		Select("1").
		From("posts").
		Where(sq.Eq{"id": id, "deleted": false}).
		ToSql()
}

func (db *DB) buildImagesQuery(postIDs []int64) (string, []any, error) {
	return db.builder.
		Select("post_id", "url").
		From("post_images").
		Where(sq.Eq{"post_id": postIDs}).
		OrderBy("id").
		ToSql()
}

func (db *DB) buildTagsQuery(postIDs []int64) (string, []any, error) {
	return db.builder.
		Select("post_id", "tag").
		From("post_tags").
		Where(sq.Eq{"post_id": postIDs}).
		OrderBy("post_id", "tag").
		ToSql()
}

func (db *DB) buildListTagsQuery() (string, []any, error) {
	return db.builder.
		Select("t.tag", "COUNT(*) AS posts").
		From("post_tags t").
		Join("posts p ON p.id = t.post_id").
		Where(sq.Eq{"p.deleted": false}).
		GroupBy("t.tag").
		OrderBy("posts DESC", "t.tag").
		ToSql()
}

func (db *DB) buildInsertPostQuery(post models.Post) (string, []any, error) {
	return db.builder.
		Insert("posts").
		Columns("user_id", "title", "description", "code").
		Values(post.UserID, post.Title, post.Description, post.Code).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func (db *DB) buildInsertTagsQuery(postID int64, tags []string) (string, []any, error) {
	insert := db.builder.
		Insert("post_tags").
		Columns("post_id", "tag")
	for _, tag := range tags {
		insert = insert.Values(postID, tag)
	}

	return insert.Suffix(insertTagSuffix).ToSql()
}

func (db *DB) buildInsertImageQuery(postID int64, url string) (string, []any, error) {
	return db.builder.
		Insert("post_images").
		Columns("post_id", "url").
		Values(postID, url).
		ToSql()
}

func (db *DB) buildUpsertVoteQuery(vote models.Vote) (string, []any, error) {
	return db.builder.
		Insert("post_votes").
		Columns("post_id", "user_id", "value").
		Values(vote.PostID, vote.UserID, int(vote.Value)).
		Suffix(upsertVoteSuffix).
		ToSql()
}

func (db *DB) buildRecountVotesQuery(postID int64) (string, []any, error) {
	return db.builder.
		Update("posts").
		Set("up_votes", sq.Expr(countVotesExpr, postID, int(models.UpVote))).
		Set("down_votes", sq.Expr(countVotesExpr, postID, int(models.DownVote))).
		Where(sq.Eq{"id": postID}).
		Suffix("RETURNING up_votes, down_votes").
		ToSql()
}

func (db *DB) buildUpdatePostQuery(update models.PostUpdate) (string, []any, error) {
	query := db.builder.Update("posts")

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Code != nil {
		query = query.Set("code", *update.Code)
	}

	return query.
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": update.ID, "deleted": false}).
		ToSql()
}

func (db *DB) buildRemovePostQuery(id int64) (string, []any, error) {
	return db.builder.
		Update("posts").
		Set("deleted", true).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id, "deleted": false}).
		ToSql()
}

func (db *DB) buildPurgeRemovedQuery(olderThan time.Time) (string, []any, error) {
	return db.builder.
		Delete("posts").
		Where(sq.Eq{"deleted": true}).
		Where(sq.Lt{"updated_at": olderThan}).
		ToSql()
}
