package http

import (
	"context"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	perr "hitch/internal/platform/errors"
	phttp "hitch/internal/platform/net/http"
	kit "hitch/internal/platform/testkit"
	"hitch/internal/services/api/issues/domain"

	"github.com/go-chi/chi/v5"
)

type fakeService struct {
	got   domain.Filters
	calls int
	res   domain.SearchResult
	err   error
}

func (f *fakeService) Search(_ context.Context, in domain.Filters) (domain.SearchResult, error) {
	f.calls++
	f.got = in
	return f.res, f.err
}

func get(t *testing.T, s *fakeService, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), s)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(stdhttp.MethodGet, target, nil))
	return rec
}

func TestParseSearchInput(t *testing.T) {
	v := url.Values{
		"q":         {"  panic  "},
		"language":  {" Go "},
		"labels":    {"bug, help wanted", "good first issue", " , "},
		"updatedAt": {"2024-01-31"},
		"page":      {" 3 "},
	}
	in, err := ParseSearchInput(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Q != "panic" || in.Language != "Go" || in.UpdatedAt != "2024-01-31" || in.Page != 3 {
		t.Fatalf("input = %+v", in)
	}
	want := []string{"bug", "help wanted", "good first issue"}
	if strings.Join(in.Labels, "|") != strings.Join(want, "|") {
		t.Fatalf("labels = %q, want %q", in.Labels, want)
	}
}

func TestParseSearchInput_Page(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "", want: 0},
		{raw: "1", want: 1},
		{raw: "-4", want: 0},
		{raw: "two", wantErr: true},
		{raw: "1.5", wantErr: true},
	}
	for _, tt := range tests {
		in, err := ParseSearchInput(url.Values{"page": {tt.raw}})
		if tt.wantErr {
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("page %q: want validation error, got %v", tt.raw, err)
			}
			if e, ok := perr.As(err); !ok || e.Field() != "page" {
				t.Fatalf("page %q: want field page, got %v", tt.raw, err)
			}
			continue
		}
		if err != nil || in.Page != tt.want {
			t.Fatalf("page %q = %d, %v; want %d", tt.raw, in.Page, err, tt.want)
		}
	}
}

func TestSearch_ForwardsFilters(t *testing.T) {
	s := &fakeService{res: domain.SearchResult{
		Issues:     []domain.Issue{},
		Pagination: domain.Pagination{Page: 2, PerPage: 30, Total: 0},
		Query:      "is:issue is:open",
	}}
	rec := get(t, s, "/?q=leak&language=Rust&labels=bug&labels=help%20wanted&page=2")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	if s.calls != 1 {
		t.Fatalf("calls = %d", s.calls)
	}
	if s.got.Keyword != "leak" || s.got.Language != "Rust" || s.got.Page != 2 || len(s.got.Labels) != 2 {
		t.Fatalf("filters = %+v", s.got)
	}
	body := rec.Body.String()
	kit.MustContain(t, body, `"issues":[]`)
	kit.MustContain(t, body, `"per_page":30`)
}

func TestSearch_ValidationNeverReachesService(t *testing.T) {
	tests := []struct {
		name  string
		query string
		msg   string
	}{
		{name: "bad date", query: "updatedAt=01/31/2024", msg: "updatedAt must be a date formatted as 2006-01-02"},
		{name: "quoted label", query: `labels=say%22hi%22`, msg: "must not contain double quotes"},
		{name: "quoted language", query: `language=Go%22`, msg: "language must not contain double quotes"},
		{name: "page not a number", query: "page=x", msg: "page must be an integer"},
		{name: "page too large", query: "page=10001", msg: "page must be at most 10000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &fakeService{}
			rec := get(t, s, "/?"+tt.query)
			if rec.Code != stdhttp.StatusBadRequest {
				t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
			}
			if s.calls != 0 {
				t.Fatalf("service called on invalid input")
			}
			kit.MustContain(t, rec.Body.String(), tt.msg)
		})
	}
}

func TestSearch_ServiceErrorUsesPublicMessage(t *testing.T) {
	s := &fakeService{err: perr.Upstreamf("%s", domain.MsgUpstreamAPI)}
	rec := get(t, s, "/")
	if rec.Code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	kit.MustContain(t, rec.Body.String(), domain.MsgUpstreamAPI)
}
