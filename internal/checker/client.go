package checker

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	consts "github.com/djcheckup/djcheckup-cli/internal/shared/constants"
)

// ClientConfig captures the transport knobs exposed by the CLI.
type ClientConfig struct {
	Timeout            time.Duration
	UserAgent          string
	FollowRedirects    bool
	InsecureSkipVerify bool
	// RateLimit bounds outgoing requests per second across the bootstrap
	// probe and every secondary check request. Zero means unlimited.
	RateLimit int
}

// DefaultClientConfig returns the transport defaults used when the caller
// supplies nothing.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:         consts.DefaultHTTPTimeout,
		UserAgent:       consts.DefaultUserAgent,
		FollowRedirects: true,
	}
}

// Client wraps net/http with a fixed User-Agent, redirect policy, and an
// optional polite rate limiter shared by all requests in a run.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient builds a Client from the given configuration.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = consts.DefaultHTTPTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = consts.DefaultUserAgent
	}

	hc := &http.Client{
		Timeout: cfg.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify},
		},
	}
	if !cfg.FollowRedirects {
		hc.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	c := &Client{httpClient: hc, userAgent: cfg.UserAgent}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimit)
	}
	return c
}

// Exchange is the snapshot of one completed GET: final status, headers,
// parsed Set-Cookie values, body text, and the URL after redirects.
type Exchange struct {
	StatusCode int
	Header     http.Header
	Cookies    []*http.Cookie
	Body       string
	FinalURL   *url.URL
}

// IsSuccess reports whether the status code is in the 2xx range.
func (e *Exchange) IsSuccess() bool {
	return e.StatusCode >= 200 && e.StatusCode < 300
}

// Get issues a GET to u and snapshots the final response. The body read is
// capped so a misbehaving endpoint cannot exhaust memory.
func (c *Client) Get(ctx context.Context, u *url.URL) (*Exchange, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limit wait: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, consts.MaxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return &Exchange{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Cookies:    resp.Cookies(),
		Body:       string(body),
		FinalURL:   resp.Request.URL,
	}, nil
}

// CloseIdleConnections releases pooled connections held by the client.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}

// JoinPath resolves a relative path against a base URL, keeping scheme and
// host. An absolute path replaces the base path entirely.
func JoinPath(base *url.URL, path string) *url.URL {
	ref, err := url.Parse(path)
	if err != nil {
		// A path that does not parse as a URL reference is treated as an
		// opaque path segment.
		ref = &url.URL{Path: path}
	}
	return base.ResolveReference(ref)
}

// WithScheme returns a copy of u with only the scheme rewritten.
func WithScheme(u *url.URL, scheme string) *url.URL {
	out := *u
	out.Scheme = scheme
	return &out
}
