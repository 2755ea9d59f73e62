package fetch

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// NewClient builds the shared HTTP client for all upstream fetches.
// Retries stay disabled on purpose: a command either completes or fails,
// and the chat layer reports the failure to the user.
func NewClient(timeout time.Duration) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "cephalon/1.0")
}

// GetBytes performs a GET against url and applies the shared error
// taxonomy to the transport and status outcomes. Body interpretation is
// left to the caller.
func GetBytes(ctx context.Context, client *resty.Client, url string) ([]byte, error) {
	resp, err := client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, NetworkError(url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, BadResponse(url, resp.StatusCode())
	}
	return resp.Body(), nil
}
