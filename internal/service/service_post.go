package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/validators"
	"github.com/MKhiriev/go-posts/models"
)

type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validators.NewPostValidator(),
		logger:         logger,
	}
}

// decodeRequest unmarshals body into T and validates it. An empty body is
// read as an empty JSON object.
func decodeRequest[T any](ctx context.Context, v validators.Validator, body json.RawMessage) (T, error) {
	var request T

	if len(bytes.TrimSpace(body)) == 0 {
		body = json.RawMessage("{}")
	}

	if err := json.Unmarshal(body, &request); err != nil {
		return request, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err)
	}

	if err := v.Validate(ctx, request); err != nil {
		return request, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	return request, nil
}

func (p *postService) Create(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.CreatePostRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	post := models.Post{
		UserID:      request.UserID,
		Title:       request.Title,
		Description: request.Description,
		Code:        request.Code,
		Tags:        normalizeTags(request.Tags),
	}

	return p.postRepository.CreatePost(ctx, post)
}

func (p *postService) Show(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.PageRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	limit, offset := request.Window()
	return p.postRepository.ListPosts(ctx, limit, offset)
}

func (p *postService) Search(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.SearchRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(request.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query: blank", ErrValidation)
	}

	limit, offset := request.Window()
	return p.postRepository.SearchPosts(ctx, query, limit, offset)
}

func (p *postService) ShowByID(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.PostIDRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	return p.postRepository.GetPost(ctx, request.ID)
}

func (p *postService) ShowByUser(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.UserPostsRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	limit, offset := request.Window()
	return p.postRepository.ListUserPosts(ctx, request.UserID, limit, offset)
}

// ShowTags lists every tag in use with its post count, or the tags of one
// post when post_id is given.
func (p *postService) ShowTags(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.ShowTagsRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	if request.PostID == 0 {
		return p.postRepository.ListTags(ctx)
	}

	tags, err := p.postRepository.ListPostTags(ctx, request.PostID)
	if err != nil {
		return nil, err
	}

	return models.TagsResult{PostID: request.PostID, Tags: tags}, nil
}

func (p *postService) Update(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.UpdatePostRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	return p.postRepository.UpdatePost(ctx, request.ToPostUpdate())
}

func (p *postService) AddImage(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.AddImageRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	images, err := p.postRepository.AddImage(ctx, request.ID, request.URL)
	if err != nil {
		return nil, err
	}

	return models.ImagesResult{PostID: request.ID, Images: images}, nil
}

func (p *postService) UpVote(ctx context.Context, body json.RawMessage) (any, error) {
	return p.vote(ctx, body, models.UpVote)
}

func (p *postService) DownVote(ctx context.Context, body json.RawMessage) (any, error) {
	return p.vote(ctx, body, models.DownVote)
}

func (p *postService) vote(ctx context.Context, body json.RawMessage, value models.VoteValue) (any, error) {
	request, err := decodeRequest[models.VoteRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	return p.postRepository.Vote(ctx, models.Vote{
		PostID: request.ID,
		UserID: request.UserID,
		Value:  value,
	})
}

// Remove marks the post as removed. It disappears from every listing at
// once and is purged by the background worker later.
func (p *postService) Remove(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.PostIDRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	if err = p.postRepository.RemovePost(ctx, request.ID); err != nil {
		return nil, err
	}

	return models.RemoveResult{ID: request.ID, Deleted: true}, nil
}

func (p *postService) AddTag(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.AddTagRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	tag := normalizeTag(request.Tag)
	if tag == "" {
		return nil, fmt.Errorf("%w: tag: blank", ErrValidation)
	}

	tags, err := p.postRepository.AddTag(ctx, request.ID, tag)
	if err != nil {
		return nil, err
	}

	return models.TagsResult{PostID: request.ID, Tags: tags}, nil
}

// SearchTags returns live posts carrying any of the requested tags, newest
// first.
func (p *postService) SearchTags(ctx context.Context, body json.RawMessage) (any, error) {
	request, err := decodeRequest[models.SearchTagsRequest](ctx, p.validator, body)
	if err != nil {
		return nil, err
	}

	tags := normalizeTags(request.Tags)
	if len(tags) == 0 {
		return nil, fmt.Errorf("%w: tags: blank", ErrValidation)
	}

	limit, offset := request.Window()
	return p.postRepository.SearchByTags(ctx, tags, limit, offset)
}
