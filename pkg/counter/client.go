package counter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/qrstudio/core/logger"
)

// Path is the counter endpoint path relative to the API base URL.
const Path = "/counters/total/ip"

// Source reports the current counter value. Implementations never fail:
// any error is reported as 0.
type Source interface {
	Total(ctx context.Context) int64
}

// Response is the JSON body of the counter endpoint.
type Response struct {
	Counter float64 `json:"counter"`
}

// Client reads the counter from a remote API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) ClientOption {
	return func(cl *Client) {
		if d > 0 {
			cl.http = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the logger used to report absorbed failures.
func WithLogger(l *slog.Logger) ClientOption {
	return func(cl *Client) {
		if l != nil {
			cl.logger = l
		}
	}
}

// NewClient creates a Client for the API rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Second},
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Total returns the remote counter, or 0 when it cannot be fetched.
func (c *Client) Total(ctx context.Context) int64 {
	n, err := c.Fetch(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "counter fetch failed, falling back to 0",
			logger.Component("counter"),
			logger.Error(err),
		)
		return 0
	}
	return n
}

// Fetch returns the remote counter or the first error encountered.
func (c *Client) Fetch(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+Path, nil)
	if err != nil {
		return 0, fmt.Errorf("counter: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("counter: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return 0, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	var body Response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}
	if body.Counter < 0 || math.IsNaN(body.Counter) {
		return 0, fmt.Errorf("%w: negative counter", ErrDecodeResponse)
	}
	if body.Counter >= math.MaxInt64 {
		return 0, fmt.Errorf("%w: counter out of range", ErrDecodeResponse)
	}
	return int64(math.Round(body.Counter)), nil
}

// StoreSource adapts a Store to Source.
type StoreSource struct {
	Store  Store
	Logger *slog.Logger
}

// Total returns the store total, or 0 on error.
func (s StoreSource) Total(ctx context.Context) int64 {
	if s.Store == nil {
		return 0
	}
	n, err := s.Store.Total(ctx)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WarnContext(ctx, "counter store read failed, falling back to 0",
				logger.Component("counter"),
				logger.Error(err),
			)
		}
		return 0
	}
	return n
}
