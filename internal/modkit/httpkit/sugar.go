package httpkit

import (
	"net/http"
	"net/url"

	phttp "hitch/internal/platform/net/http"
)

// Get registers a no-input handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// GetQuery mounts a GET handler whose input is parsed from the query string and validated
func GetQuery[T any](r Router, path string, parse func(url.Values) (T, error), h func(*http.Request, T) (any, error)) {
	phttp.GetQuery(r, path, parse, h)
}
