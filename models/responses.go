package models

// RemoveResult is returned by the remove operation.
type RemoveResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// ImagesResult lists the images of a post after an image was attached.
type ImagesResult struct {
	PostID int64    `json:"post_id"`
	Images []string `json:"images"`
}

// TagsResult lists the tags of a post after a tag was attached.
type TagsResult struct {
	PostID int64    `json:"post_id"`
	Tags   []string `json:"tags"`
}
