package github

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// UpstreamAPIError wraps non-2xx HTTP responses from GitHub
// Body is kept for logs only and must never be shown to end users
type UpstreamAPIError struct {
	Status     int
	StatusText string
	Body       string
	Path       string
	RateLimit  RateInfo
}

// Error interface
func (e *UpstreamAPIError) Error() string {
	return fmt.Sprintf("github %s: %d %s", e.Path, e.Status, e.StatusText)
}

// HTTPStatus interface
func (e *UpstreamAPIError) HTTPStatus() int { return e.Status }

// RateLimited reports a primary (429) or secondary (403 with no quota left) rate limit
func (e *UpstreamAPIError) RateLimited() bool {
	if e.Status == http.StatusTooManyRequests {
		return true
	}
	if e.Status != http.StatusForbidden {
		return false
	}
	exhausted := e.RateLimit.Remaining == 0 && !e.RateLimit.Reset.IsZero()
	return exhausted || e.RateLimit.RetryAfter > 0
}

// RateInfo is what GitHub reports about the token that served a request
type RateInfo struct {
	Limit      int
	Remaining  int
	Reset      time.Time
	RetryAfter int
}

func parseRateHeaders(h http.Header) RateInfo {
	ri := RateInfo{
		Limit:      atoi(h.Get("X-RateLimit-Limit")),
		Remaining:  atoi(h.Get("X-RateLimit-Remaining")),
		RetryAfter: atoi(h.Get("Retry-After")),
	}
	if sec := atoi(h.Get("X-RateLimit-Reset")); sec > 0 {
		ri.Reset = time.Unix(int64(sec), 0).UTC()
	}
	return ri
}

func atoi(s string) int {
	if s == "" {
		return 0
	}
	i, _ := strconv.Atoi(s)
	return i
}

// IsRateLimited reports whether err carries a rate limited UpstreamAPIError
func IsRateLimited(err error) bool {
	var ue *UpstreamAPIError
	return errors.As(err, &ue) && ue.RateLimited()
}

// IsUnauthorized reports whether GitHub rejected the credentials
func IsUnauthorized(err error) bool {
	var ue *UpstreamAPIError
	return errors.As(err, &ue) && ue.Status == http.StatusUnauthorized
}
