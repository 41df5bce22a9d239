// Package github is a small GitHub REST v3 client for issue search and
// repository language lookups. It never retries: non-2xx answers surface as
// *UpstreamAPIError and the caller decides what to do
package github

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hitch/internal/platform/config"
	perr "hitch/internal/platform/errors"
	"hitch/internal/platform/logger"

	"golang.org/x/oauth2"
)

const (
	baseURLDefault = "https://api.github.com"
	defaultTimeout = 10 * time.Second
	defaultUA      = "hitch"

	maxErrorBody   = 4 << 10
	maxPayloadBody = 8 << 20
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// Comma separated tokens, rotated round robin per request
	// Empty means anonymous access, which GitHub throttles hard
	TokensCSV string

	// Transport overrides the base round tripper (tests)
	Transport http.RoundTripper
}

// Client is a minimal GitHub REST client with token rotation
type Client struct {
	http    *http.Client
	opts    Options
	baseURL string
	tokens  int
	log     logger.Logger
	now     func() time.Time
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = baseURLDefault
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	base := o.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	src := newRotatingSource(o.TokensCSV)
	rt := base
	if src.Len() > 0 {
		rt = &oauth2.Transport{Source: src, Base: base}
	}

	return &Client{
		http:    &http.Client{Timeout: o.Timeout, Transport: rt},
		opts:    o,
		baseURL: strings.TrimRight(o.BaseURL, "/"),
		tokens:  src.Len(),
		log:     *logger.Named("github"),
		now:     time.Now,
	}
}

// Authenticated reports whether at least one token is configured
func (c *Client) Authenticated() bool { return c.tokens > 0 }

// Tokens returns how many tokens are in rotation
func (c *Client) Tokens() int { return c.tokens }

// BaseURL returns the API root requests are sent to
func (c *Client) BaseURL() string { return c.baseURL }

// Do issues a GET-style request and returns the response for 2xx statuses
// Any other status is read, closed and returned as *UpstreamAPIError
func (c *Client) Do(ctx context.Context, method, path string, q url.Values) (*http.Response, error) {
	u := c.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github new request failed")
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "github %s failed", path)
	}

	rl := parseRateHeaders(resp.Header)
	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Int("rate_remaining", rl.Remaining).
		Time("rate_reset", rl.Reset).
		Msg("github http response")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_ = resp.Body.Close()
	ue := &UpstreamAPIError{
		Status:     resp.StatusCode,
		StatusText: statusText(resp),
		Body:       string(body),
		Path:       path,
		RateLimit:  rl,
	}
	c.log.Warn().
		Str("path", path).
		Int("status", ue.Status).
		Str("status_text", ue.StatusText).
		Bool("rate_limited", ue.RateLimited()).
		Str("body", ue.Body).
		Msg("github non-success response")
	return nil, ue
}

// getJSON runs Do and decodes a bounded JSON body into out
func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path, q)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBody)).Decode(out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "github %s decode failed", path)
	}
	return nil
}

// statusText prefers the reason phrase the server sent, e.g. "Unauthorized"
func statusText(resp *http.Response) string {
	if _, reason, ok := strings.Cut(resp.Status, " "); ok && strings.TrimSpace(reason) != "" {
		return strings.TrimSpace(reason)
	}
	return http.StatusText(resp.StatusCode)
}

// OptionsFromConfig reads GITHUB_* settings; cfg should be the unprefixed root
func OptionsFromConfig(cfg config.Conf) Options {
	gc := cfg.Prefix("GITHUB_")
	return Options{
		BaseURL:   gc.MayURL("BASE_URL", baseURLDefault),
		UserAgent: gc.MayString("USER_AGENT", defaultUA),
		Timeout:   gc.MayDuration("TIMEOUT", defaultTimeout),
		TokensCSV: gc.MayString("TOKEN", ""),
	}
}
