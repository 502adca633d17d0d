// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a shared code snippet together with its presentation data.
// Images, Tags and vote counters are aggregated from their own tables
// when the post is read.
type Post struct {
	// ID is the unique identifier assigned by the database.
	ID int64 `json:"id"`

	// UserID identifies the author of the post.
	UserID int64 `json:"user_id"`

	// Title is the short human-readable headline.
	Title string `json:"title"`

	// Description is an optional longer explanation of the snippet.
	Description string `json:"description"`

	// Code holds the snippet source text.
	Code string `json:"code"`

	// Images lists image URLs attached to the post, oldest first.
	Images []string `json:"images"`

	// Tags lists the normalised tag names attached to the post.
	Tags []string `json:"tags"`

	UpVotes   int64 `json:"up_votes"`
	DownVotes int64 `json:"down_votes"`

	// Deleted is true once the post was removed. Removed posts are
	// excluded from listings and purged later by a background worker.
	Deleted bool `json:"deleted"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostUpdate carries the fields of a partial post update.
// Only non-nil fields are written.
type PostUpdate struct {
	ID          int64
	Title       *string
	Description *string
	Code        *string
}

// IsEmpty reports whether the update does not change any field.
func (u PostUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Code == nil
}
