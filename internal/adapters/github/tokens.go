package github

import (
	"errors"
	"strings"
	"sync/atomic"

	"golang.org/x/oauth2"
)

var errNoToken = errors.New("github: no tokens configured")

// rotatingSource hands out static tokens round robin, one per request
type rotatingSource struct {
	tokens []*oauth2.Token
	idx    atomic.Uint64
}

func newRotatingSource(csv string) *rotatingSource {
	s := &rotatingSource{}
	for _, t := range strings.Split(csv, ",") {
		if t = strings.TrimSpace(t); t != "" {
			s.tokens = append(s.tokens, &oauth2.Token{AccessToken: t, TokenType: "Bearer"})
		}
	}
	return s
}

// Len returns the number of configured tokens
func (s *rotatingSource) Len() int { return len(s.tokens) }

// Token implements oauth2.TokenSource
func (s *rotatingSource) Token() (*oauth2.Token, error) {
	if len(s.tokens) == 0 {
		return nil, errNoToken
	}
	i := s.idx.Add(1) - 1
	return s.tokens[i%uint64(len(s.tokens))], nil
}
