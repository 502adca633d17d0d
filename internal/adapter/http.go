package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/utils"
)

// operationMethods maps every post operation to the HTTP method its route
// accepts.
var operationMethods = map[string]string{
	"create":       http.MethodPost,
	"show":         http.MethodPost,
	"search":       http.MethodPost,
	"show_by_id":   http.MethodPost,
	"show_by_user": http.MethodPost,
	"show_tags":    http.MethodPost,
	"update":       http.MethodPatch,
	"add_image":    http.MethodPatch,
	"up_vote":      http.MethodPatch,
	"down_vote":    http.MethodPatch,
	"remove":       http.MethodPatch,
	"add_tag":      http.MethodPatch,
	"search_tags":  http.MethodPost,
}

type httpPostsClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPPostsClient constructs the HTTP implementation of [PostsClient].
// adapterCfg.HTTPAddress may omit the scheme, http is assumed then.
func NewHTTPPostsClient(adapterCfg config.Adapter, logger *logger.Logger) (PostsClient, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpPostsClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpPostsClient) Create(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "create", body)
}

func (h *httpPostsClient) Show(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "show", body)
}

func (h *httpPostsClient) Search(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "search", body)
}

func (h *httpPostsClient) ShowByID(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "show_by_id", body)
}

func (h *httpPostsClient) ShowByUser(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "show_by_user", body)
}

func (h *httpPostsClient) ShowTags(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "show_tags", body)
}

func (h *httpPostsClient) Update(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "update", body)
}

func (h *httpPostsClient) AddImage(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "add_image", body)
}

func (h *httpPostsClient) UpVote(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "up_vote", body)
}

func (h *httpPostsClient) DownVote(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "down_vote", body)
}

func (h *httpPostsClient) Remove(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "remove", body)
}

func (h *httpPostsClient) AddTag(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "add_tag", body)
}

func (h *httpPostsClient) SearchTags(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return h.Call(ctx, "search_tags", body)
}

// Call implements [PostsClient]. An empty body is sent as "{}".
func (h *httpPostsClient) Call(ctx context.Context, op string, body json.RawMessage) (json.RawMessage, error) {
	method, ok := operationMethods[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}
	if len(body) == 0 {
		body = json.RawMessage("{}")
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(body)).
		Execute(method, "/node_api/"+op)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", op, err)
	}

	h.logger.Debug().
		Str("operation", op).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("post operation answered")

	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

// Version implements [PostsClient].
func (h *httpPostsClient) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
