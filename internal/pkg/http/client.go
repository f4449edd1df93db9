// Package http provides HTTP fetching capabilities for crawlers.
//
//go:generate go run -mod=mod github.com/matryer/moq -out httpmock/client_mock.go -pkg httpmock . Client
package http

import (
	"context"
	"fmt"
	"io"
	gohttp "net/http"
	"time"

	"github.com/yama6a/rialcom-tariffs/internal/pkg/errors"
)

// UserAgent is sent on every request.
const UserAgent = "Mozilla/5.0 (X11; Linux x86_64) rialcom-tariffs/1.0"

// Compile-time interface compliance check.
var _ Client = &client{}

// defaultHeaders are sent with every request unless overridden per call.
func defaultHeaders() map[string]string {
	return map[string]string{
		"Accept":          "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8",
		"Accept-Language": "ru-RU,ru;q=0.9",
		"User-Agent":      UserAgent,
	}
}

// Client defines the interface for HTTP content fetching.
type Client interface {
	// Fetch retrieves content from a URL with optional custom headers.
	// Response body is decoded as UTF-8. Any non-2xx status is an error.
	Fetch(url string, headers map[string]string) (string, error)
}

// client implements the Client interface using standard net/http.
type client struct {
	httpClient *gohttp.Client
	timeout    time.Duration
}

// NewClient creates a new Client wrapping the provided http.Client.
// The same http.Client is reused for every request.
func NewClient(httpClient *gohttp.Client, timeout time.Duration) Client {
	return &client{
		httpClient: httpClient,
		timeout:    timeout,
	}
}

// Fetch retrieves content from a URL with optional custom headers.
func (c *client) Fetch(url string, headers map[string]string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	req, err := gohttp.NewRequestWithContext(ctx, gohttp.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	for _, set := range []map[string]string{defaultHeaders(), headers} {
		for key, value := range set {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to perform request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < gohttp.StatusOK || resp.StatusCode >= gohttp.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %d %s", errors.ErrUnexpectedStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
