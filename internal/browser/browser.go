package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/jwebster45206/zarya/internal/metrics"
)

var (
	ErrInvalidURL = errors.New("invalid url")
	ErrConnection = errors.New("connection failed")
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultCacheSize = 64
	DefaultCacheTTL  = 5 * time.Minute
	// MaxBodySize caps how much of a page is read. The game never shows the payload.
	MaxBodySize = 1 << 20
)

// Client fetches pages for the laptop browser. Successful fetches are cached per URL for a while
// so repeated visits don't hit the network.
type Client struct {
	http   *http.Client
	cache  *expirable.LRU[string, []byte]
	logger *slog.Logger
}

func NewClient(timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http:   &http.Client{Timeout: timeout},
		cache:  expirable.NewLRU[string, []byte](DefaultCacheSize, nil, DefaultCacheTTL),
		logger: logger,
	}
}

// Fetch downloads rawURL. It fails with ErrInvalidURL for anything that is not an absolute http(s)
// URL and with ErrConnection when the request fails or the server answers with an error status.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		metrics.FetchesTotal.WithLabelValues("invalid_url").Inc()
		return nil, fmt.Errorf("fetch %q: %w", rawURL, ErrInvalidURL)
	}
	key := u.String()

	if body, ok := c.cache.Get(key); ok {
		metrics.FetchesTotal.WithLabelValues("cached").Inc()
		return body, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key, nil)
	if err != nil {
		metrics.FetchesTotal.WithLabelValues("invalid_url").Inc()
		return nil, fmt.Errorf("fetch %q: %w", rawURL, ErrInvalidURL)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.FetchesTotal.WithLabelValues("connection").Inc()
		c.logger.Debug("Browser fetch failed", "url", key, "error", err)
		return nil, fmt.Errorf("fetch %s: %w: %v", key, ErrConnection, err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.FetchesTotal.WithLabelValues("connection").Inc()
		return nil, fmt.Errorf("fetch %s: status %d: %w", key, resp.StatusCode, ErrConnection)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize))
	if err != nil {
		metrics.FetchesTotal.WithLabelValues("connection").Inc()
		return nil, fmt.Errorf("read %s: %w: %v", key, ErrConnection, err)
	}

	c.cache.Add(key, body)
	metrics.FetchesTotal.WithLabelValues("ok").Inc()
	c.logger.Debug("Browser fetch successful", "url", key, "bytes", len(body))
	return body, nil
}
