//nolint:revive,nolintlint // var-naming: package name matches the package being tested
package http

import (
	"errors"
	gohttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	tariffserrors "github.com/yama6a/rialcom-tariffs/internal/pkg/errors"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	httpClient := &gohttp.Client{Timeout: 10 * time.Second}
	timeout := 5 * time.Second

	c := NewClient(httpClient, timeout)

	if c == nil {
		t.Fatal("expected non-nil client")
	}
}

func TestClient_Fetch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		responseBody   string
		responseStatus int
		headers        map[string]string
		wantBody       string
		wantErr        error
	}{
		{
			name:           "successful request with UTF-8",
			responseBody:   "<html><body>Hello World</body></html>",
			responseStatus: gohttp.StatusOK,
			headers:        nil,
			wantBody:       "<html><body>Hello World</body></html>",
		},
		{
			name:           "successful request with custom headers",
			responseBody:   "<table></table>",
			responseStatus: gohttp.StatusOK,
			headers:        map[string]string{"X-Test": "value"},
			wantBody:       "<table></table>",
		},
		{
			name:           "Cyrillic characters with UTF-8",
			responseBody:   "Тарифы для юридических лиц",
			responseStatus: gohttp.StatusOK,
			headers:        nil,
			wantBody:       "Тарифы для юридических лиц",
		},
		{
			name:           "non-200 success status is accepted",
			responseBody:   "accepted",
			responseStatus: gohttp.StatusAccepted,
			headers:        nil,
			wantBody:       "accepted",
		},
		{
			name:           "not found is an error",
			responseBody:   "Not Found",
			responseStatus: gohttp.StatusNotFound,
			headers:        nil,
			wantErr:        tariffserrors.ErrUnexpectedStatus,
		},
		{
			name:           "server error is an error",
			responseBody:   "boom",
			responseStatus: gohttp.StatusInternalServerError,
			headers:        nil,
			wantErr:        tariffserrors.ErrUnexpectedStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, _ *gohttp.Request) {
				w.WriteHeader(tt.responseStatus)
				_, _ = w.Write([]byte(tt.responseBody))
			}))
			defer server.Close()

			httpClient := &gohttp.Client{Timeout: 5 * time.Second}
			c := NewClient(httpClient, 5*time.Second)

			got, err := c.Fetch(server.URL, tt.headers)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Fetch() error = %v, want %v", err, tt.wantErr)
				}
				if got != "" {
					t.Errorf("Fetch() = %q, want empty body on error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			if got != tt.wantBody {
				t.Errorf("Fetch() = %q, want %q", got, tt.wantBody)
			}
		})
	}
}

func TestClient_Fetch_CustomHeadersSent(t *testing.T) {
	t.Parallel()

	var receivedHeaders gohttp.Header
	server := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		receivedHeaders = r.Header
		w.WriteHeader(gohttp.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))
	defer server.Close()

	httpClient := &gohttp.Client{Timeout: 5 * time.Second}
	c := NewClient(httpClient, 5*time.Second)

	customHeaders := map[string]string{
		"X-Custom":        "custom-value",
		"Accept-Language": "en-US",
	}

	_, err := c.Fetch(server.URL, customHeaders)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if got := receivedHeaders.Get("X-Custom"); got != "custom-value" {
		t.Errorf("X-Custom header = %q, want %q", got, "custom-value")
	}
	// Custom headers override the defaults.
	if got := receivedHeaders.Get("Accept-Language"); got != "en-US" {
		t.Errorf("Accept-Language header = %q, want %q", got, "en-US")
	}

	if got := receivedHeaders.Get("Accept"); got == "" {
		t.Error("Accept header should be set by default")
	}
	if got := receivedHeaders.Get("User-Agent"); got != UserAgent {
		t.Errorf("User-Agent header = %q, want %q", got, UserAgent)
	}
}

func TestClient_Fetch_DefaultHeaders(t *testing.T) {
	t.Parallel()

	var (
		mu        sync.Mutex
		agents    []string
		languages []string
	)
	server := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, r *gohttp.Request) {
		mu.Lock()
		defer mu.Unlock()
		agents = append(agents, r.Header.Get("User-Agent"))
		languages = append(languages, r.Header.Get("Accept-Language"))
		w.WriteHeader(gohttp.StatusOK)
	}))
	defer server.Close()

	c := NewClient(&gohttp.Client{Timeout: 5 * time.Second}, 5*time.Second)
	for range 2 {
		if _, err := c.Fetch(server.URL, nil); err != nil {
			t.Fatalf("Fetch() error = %v", err)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	for i := range agents {
		if agents[i] != UserAgent {
			t.Errorf("request %d User-Agent = %q, want %q", i, agents[i], UserAgent)
		}
		if languages[i] != "ru-RU,ru;q=0.9" {
			t.Errorf("request %d Accept-Language = %q, want ru-RU,ru;q=0.9", i, languages[i])
		}
	}
	if len(agents) != 2 {
		t.Errorf("server saw %d requests, want 2", len(agents))
	}
}

func TestClient_Fetch_InvalidURL(t *testing.T) {
	t.Parallel()

	httpClient := &gohttp.Client{Timeout: 5 * time.Second}
	c := NewClient(httpClient, 5*time.Second)

	_, err := c.Fetch("://invalid-url", nil)
	if err == nil {
		t.Error("Fetch() expected error for invalid URL")
	}
}

func TestClient_Fetch_ConnectionError(t *testing.T) {
	t.Parallel()

	httpClient := &gohttp.Client{Timeout: 1 * time.Second}
	c := NewClient(httpClient, 1*time.Second)

	_, err := c.Fetch("http://localhost:1", nil)
	if err == nil {
		t.Error("Fetch() expected error for connection failure")
	}
}

func TestClient_Fetch_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(gohttp.HandlerFunc(func(w gohttp.ResponseWriter, _ *gohttp.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(gohttp.StatusOK)
	}))
	defer server.Close()

	c := NewClient(&gohttp.Client{}, 20*time.Millisecond)

	if _, err := c.Fetch(server.URL, nil); err == nil {
		t.Error("Fetch() expected error when the request exceeds the timeout")
	}
}
