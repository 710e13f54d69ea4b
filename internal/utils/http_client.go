package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Post("https://shop.example.com/graphql")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own resty.Client,
// connection pool and settings.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
