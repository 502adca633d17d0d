// Package http implements the HTTP transport layer of go-posts.
//
// Every post operation is served by one generic request adapter: the raw
// request body is handed to the matching [service.PostService] method and
// the outcome is turned into exactly one response. Success answers 200 with
// the JSON result, any failure answers 500 with a fixed plain-text body.
// Request tracing, access logging and gzip handling run as middleware in
// front of the adapter.
package http
