package models

// Request bodies accepted by the post operations. The HTTP layer forwards
// them as raw JSON; the service layer decodes and validates them using the
// `validate` struct tags.

const (
	// DefaultPageLimit is applied when a listing request omits its limit.
	DefaultPageLimit = 20

	// MaxPageLimit caps the number of posts returned by one listing request.
	MaxPageLimit = 100
)

// PageRequest holds the common pagination window of listing operations.
type PageRequest struct {
	// Limit is the maximum number of posts to return. Zero means
	// DefaultPageLimit.
	Limit uint64 `json:"limit" validate:"omitempty,max=100"`

	// Offset is the number of posts to skip.
	Offset uint64 `json:"offset"`
}

// Window returns the effective limit and offset of the page.
func (p PageRequest) Window() (limit, offset uint64) {
	limit = p.Limit
	if limit == 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return limit, p.Offset
}

// CreatePostRequest is the body of the create operation.
type CreatePostRequest struct {
	UserID      int64    `json:"user_id" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	Code        string   `json:"code"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,required,max=50"`
}

// SearchRequest is the body of the search operation. Query is matched
// case-insensitively against title and description.
type SearchRequest struct {
	PageRequest
	Query string `json:"query" validate:"required,max=200"`
}

// PostIDRequest addresses a single post. Used by show_by_id and remove.
type PostIDRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}

// UserPostsRequest is the body of the show_by_user operation.
type UserPostsRequest struct {
	PageRequest
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// ShowTagsRequest is the body of the show_tags operation. When PostID is
// zero all tags in use are listed with their counts.
type ShowTagsRequest struct {
	PostID int64 `json:"post_id" validate:"gte=0"`
}

// UpdatePostRequest is the body of the update operation. Only provided
// fields are changed; at least one must be set.
type UpdatePostRequest struct {
	ID          int64   `json:"id" validate:"required,gt=0"`
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	Code        *string `json:"code,omitempty"`
}

// ToPostUpdate converts the request into the storage update descriptor.
func (r UpdatePostRequest) ToPostUpdate() PostUpdate {
	return PostUpdate{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Code:        r.Code,
	}
}

// AddImageRequest is the body of the add_image operation.
type AddImageRequest struct {
	ID  int64  `json:"id" validate:"required,gt=0"`
	URL string `json:"url" validate:"required,url,max=2048"`
}

// VoteRequest is the body of the up_vote and down_vote operations.
type VoteRequest struct {
	ID     int64 `json:"id" validate:"required,gt=0"`
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

// AddTagRequest is the body of the add_tag operation.
type AddTagRequest struct {
	ID  int64  `json:"id" validate:"required,gt=0"`
	Tag string `json:"tag" validate:"required,max=50"`
}

// SearchTagsRequest is the body of the search_tags operation. A post
// matches when it carries any of the given tags.
type SearchTagsRequest struct {
	PageRequest
	Tags []string `json:"tags" validate:"required,min=1,max=20,dive,required,max=50"`
}
