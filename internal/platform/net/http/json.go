package http

import (
	"net/http"
	"net/url"

	"hitch/internal/platform/net/http/bind"
)

// QueryHandler parses the query string into T, validates it, then calls fn
// parse owns type conversion; struct tags on T own the rules
func QueryHandler[T any](parse func(url.Values) (T, error), fn func(*http.Request, T) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		in, err := parse(r.URL.Query())
		if err != nil {
			return Error(err)
		}
		if err := bind.Struct(in); err != nil {
			return Error(err)
		}
		out, err := fn(r, in)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}

// JSONHandlerNoBody calls fn without parsing a request body and wraps the result
func JSONHandlerNoBody(fn func(*http.Request) (any, error)) Handler {
	return Handle(func(r *http.Request) Response {
		out, err := fn(r)
		if err != nil {
			return Error(err)
		}
		return OK(out)
	})
}
