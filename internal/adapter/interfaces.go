// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the go-posts HTTP API.
//
// [PostsClient] sends raw JSON request bodies to the post operation routes
// and returns the raw JSON answers. Error values defined in errors.go are
// mapped from HTTP status codes by mapHTTPError so that callers can use
// [errors.Is] (e.g. [ErrInternalServerError] for 500).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PostsClient calls the post operations of a go-posts server. Every method
// posts body unchanged and returns the response body of a 2xx answer.
type PostsClient interface {
	Create(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	Show(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	Search(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	ShowByID(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	ShowByUser(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	ShowTags(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	Update(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	AddImage(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	UpVote(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	DownVote(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	Remove(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	AddTag(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	SearchTags(ctx context.Context, body json.RawMessage) (json.RawMessage, error)

	// Call runs the operation named op, e.g. "show_by_id". It returns
	// ErrUnknownOperation for names the server does not serve.
	Call(ctx context.Context, op string, body json.RawMessage) (json.RawMessage, error)

	// Version returns the plain-text server version.
	Version(ctx context.Context) (string, error)
}
