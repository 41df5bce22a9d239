package http

import (
	"net/http"
	"net/url"
)

// GetJSON mounts a pure JSON handler for GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// GetQuery mounts a GET handler whose input comes from the query string
func GetQuery[T any](r Router, path string, parse func(url.Values) (T, error), h func(*http.Request, T) (any, error)) {
	r.Get(path, QueryHandler(parse, h))
}
