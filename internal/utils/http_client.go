package utils

import (
	"github.com/go-resty/resty/v2"
)

const userAgent = "go-posts-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(body).Post("/node_api/show")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that identifies itself as the
// go-posts client and never retries. Post operations such as votes are not
// idempotent.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(0)

	return &HTTPClient{Client: client}
}
