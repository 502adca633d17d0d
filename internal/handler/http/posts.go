// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/service"
)

// failureBody is the only body a failed post operation ever returns. The
// cause is logged and never sent to the caller.
const failureBody = "Database connection error"

// routePrefix is the path prefix shared by all post operations.
const routePrefix = "node_api"

// operation binds a post operation to its route and to the service method
// serving it.
type operation struct {
	// name is the operation name and the last route segment.
	name string

	// method is the HTTP method the route accepts.
	method string

	// logSuccess enables the info record written after a successful call.
	logSuccess bool

	// call selects the service method of the operation.
	call func(service.PostService) func(ctx context.Context, body json.RawMessage) (any, error)
}

// route returns the path the operation is mounted on.
func (o operation) route() string {
	return "/" + routePrefix + "/" + o.name
}

// label returns the "<METHOD> node_api/<name>" form used in log records.
func (o operation) label() string {
	return o.method + " " + routePrefix + "/" + o.name
}

// postOperations lists every post operation. The success record of search
// is switched off.
func postOperations() []operation {
	return []operation{
		{name: "create", method: http.MethodPost, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.Create }},
		{name: "show", method: http.MethodPost, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.Show }},
		{name: "search", method: http.MethodPost, logSuccess: false, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.Search }},
		{name: "show_by_id", method: http.MethodPost, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.ShowByID }},
		{name: "show_by_user", method: http.MethodPost, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.ShowByUser }},
		{name: "show_tags", method: http.MethodPost, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.ShowTags }},
		{name: "update", method: http.MethodPatch, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.Update }},
		{name: "add_image", method: http.MethodPatch, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.AddImage }},
		{name: "up_vote", method: http.MethodPatch, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.UpVote }},
		{name: "down_vote", method: http.MethodPatch, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.DownVote }},
		{name: "remove", method: http.MethodPatch, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.Remove }},
		{name: "add_tag", method: http.MethodPatch, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.AddTag }},
		{name: "search_tags", method: http.MethodPost, logSuccess: true, call: func(s service.PostService) func(context.Context, json.RawMessage) (any, error) { return s.SearchTags }},
	}
}

// adapt turns op into an HTTP handler. The request body is passed to the
// service untouched. Any failure, including an unreadable body, answers 500
// with failureBody; success answers 200 with the result as JSON. Exactly one
// response is written per request.
func (h *Handler) adapt(op operation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeFailure(w, log, err)
			return
		}

		result, err := op.call(h.services.PostService)(r.Context(), body)
		if err != nil {
			writeFailure(w, log, err)
			return
		}

		payload, err := json.Marshal(result)
		if err != nil {
			writeFailure(w, log, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(payload)

		if op.logSuccess {
			log.Info().Msgf("\"%s\" - %d", op.label(), http.StatusOK)
		}
	}
}

func writeFailure(w http.ResponseWriter, log *logger.Logger, cause error) {
	log.Error().Msgf("\"%s\" - %d", cause, http.StatusInternalServerError)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(failureBody))
}
