package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/webscale/client-go/internal/apierrors"
)

// Default configuration values.
const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultRetryDelay is the base delay between retry attempts.
	DefaultRetryDelay = time.Second
)

// defaultRetryOn lists the HTTP status codes that trigger a retry when
// retries are enabled.
var defaultRetryOn = []int{408, 429, 500, 502, 503, 504}

// Config holds the configuration for the API client.
type Config struct {
	// BaseURL is the root of the Webscale API. Required.
	BaseURL string
	// APIKey authenticates requests via an Authorization: Bearer header.
	// When empty, requests are sent unauthenticated.
	APIKey string
	// HTTPClient overrides the default HTTP client.
	HTTPClient *http.Client
	// Timeout is the per-request timeout. Defaults to DefaultTimeout.
	Timeout time.Duration
	// MaxRetries is the number of retry attempts for transient failures.
	// Defaults to 0: the client never retries unless asked to.
	MaxRetries int
	// RetryDelay is the base delay between retry attempts.
	RetryDelay time.Duration
	// RetryOn overrides the status codes that trigger a retry.
	RetryOn []int
}

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	maxRetries int
	retryDelay time.Duration
	retryOn    []int
}

// NewClient creates a new API client from the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, apierrors.ErrMissingBaseURL
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	retryDelay := cfg.RetryDelay
	if retryDelay == 0 {
		retryDelay = DefaultRetryDelay
	}

	retryOn := cfg.RetryOn
	if len(retryOn) == 0 {
		retryOn = defaultRetryOn
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		maxRetries: cfg.MaxRetries,
		retryDelay: retryDelay,
		retryOn:    retryOn,
	}, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Do issues an HTTP request and decodes the JSON response into result.
// The request body, if non-nil, is marshaled as JSON. Transient failures
// are retried only when MaxRetries is greater than zero.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err = c.httpClient.Do(req)
		if err != nil {
			if attempt < c.maxRetries {
				if werr := c.retryWait(ctx, attempt); werr != nil {
					return &apierrors.NetworkError{Err: err, URL: c.baseURL + path}
				}
				continue
			}
			return &apierrors.NetworkError{Err: err, URL: c.baseURL + path}
		}

		if attempt < c.maxRetries && c.isRetryable(resp.StatusCode) {
			resp.Body.Close()
			if werr := c.retryWait(ctx, attempt); werr != nil {
				return werr
			}
			continue
		}
		break
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}

	if result != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// parseErrorResponse converts a non-2xx response into an APIError,
// preserving the server's message verbatim for diagnosis.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.Error != "" {
			return &apierrors.APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
		}
		if errResp.Message != "" {
			return &apierrors.APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
		}
	}

	return &apierrors.APIError{
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(string(body)),
	}
}
