package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/mhdirfanpn/panadol-platform-client/pkg/apierror"
	"github.com/mhdirfanpn/panadol-platform-client/pkg/metrics"
)

const (
	headerUserID    = "X-User-Id"
	headerRequestID = "X-Request-Id"
)

// errorBody is the shape the backend uses for non-2xx responses.
type errorBody struct {
	Timestamp string `json:"timestamp"`
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
}

// Config holds the fixed parameters of a client.
type Config struct {
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Client issues authenticated requests against the super-admin API. The base
// endpoint and caller identity are fixed at construction; every request
// carries the identity header and a correlation id. Failures are logged and
// normalized, never retried.
type Client struct {
	base    *url.URL
	httpc   *http.Client
	userID  string
	limiter *rate.Limiter
	log     zerolog.Logger
	metrics *metrics.Metrics
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient substitutes the underlying http.Client, mainly for tests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// WithMetrics attaches request instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New builds a client for cfg acting as userID. The identity must be an
// explicit positive integer string; there is no privileged fallback.
func New(cfg Config, userID string, log zerolog.Logger, opts ...Option) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", cfg.BaseURL)
	}
	if err := validateIdentity(userID); err != nil {
		return nil, err
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	c := &Client{
		base:    base,
		httpc:   &http.Client{Timeout: timeout},
		userID:  userID,
		limiter: limiter,
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func validateIdentity(userID string) error {
	id, err := strconv.ParseInt(userID, 10, 64)
	if err != nil || id <= 0 {
		return fmt.Errorf("caller identity must be a positive integer, got %q", userID)
	}
	return nil
}

// UserID returns the caller identity the client was constructed with.
func (c *Client) UserID() string {
	return c.userID
}

// Do issues one request and decodes the JSON response into out when out is
// non-nil. Empty and 204 responses leave out untouched. Non-2xx responses
// and network failures return *apierror.Error.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	u := *c.base
	u.Path = strings.TrimRight(u.Path, "/") + path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(headerUserID, c.userID)
	req.Header.Set(headerRequestID, uuid.NewString())

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveFailure(method)
		}
		c.log.Error().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return apierror.NewNetwork(err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.ObserveRequest(method, resp.StatusCode, time.Since(start))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		_ = json.Unmarshal(raw, &eb)
		c.log.Error().
			Int("status", resp.StatusCode).
			Str("method", method).
			Str("path", path).
			Str("message", eb.Message).
			Msg("api error")
		return apierror.FromStatus(resp.StatusCode, eb.Message)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
