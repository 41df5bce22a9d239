package http

import (
	stdctx "context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	phttp "hitch/internal/platform/net/http"
	kit "hitch/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type fakePinger struct {
	err   error
	calls int
}

func (f *fakePinger) Ping(ctx stdctx.Context) error {
	f.calls++
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("ping without deadline")
	}
	return f.err
}

type envelope[T any] struct {
	StatusCode int `json:"status_code"`
	Data       T   `json:"data"`
}

func serve(t *testing.T, d Deps, path string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d body=%s", path, rec.Code, rec.Body.String())
	}
	return rec
}

func TestHealth(t *testing.T) {
	started := time.Date(2025, 9, 3, 13, 0, 0, 0, time.UTC)
	rec := serve(t, Deps{ServiceName: "hitch-api", StartedAt: started}, "/health")
	env := kit.MustDecodeJSON[envelope[HealthResponse]](t, rec.Body)
	if !env.Data.OK || env.Data.Service != "hitch-api" || env.Data.Started != "2025-09-03T13:00:00Z" {
		t.Fatalf("health = %+v", env.Data)
	}
}

func TestReady(t *testing.T) {
	tests := []struct {
		name       string
		pinger     *fakePinger
		wantStatus string
		wantCheck  string
		wantError  bool
	}{
		{name: "no client is degraded", pinger: nil, wantStatus: "degraded", wantCheck: "skipped"},
		{name: "ping ok", pinger: &fakePinger{}, wantStatus: "ok", wantCheck: "ok"},
		{name: "ping fails", pinger: &fakePinger{err: errors.New("GitHub API returned 401")}, wantStatus: "fail", wantCheck: "fail", wantError: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Deps{ServiceName: "hitch-api"}
			if tt.pinger != nil {
				d.GitHub = tt.pinger
			}
			rec := serve(t, d, "/ready")
			env := kit.MustDecodeJSON[envelope[ReadyResponse]](t, rec.Body)
			if env.Data.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q", env.Data.Status, tt.wantStatus)
			}
			if len(env.Data.Checks) != 1 || env.Data.Checks[0].Name != "github" {
				t.Fatalf("checks = %+v", env.Data.Checks)
			}
			c := env.Data.Checks[0]
			if c.Status != tt.wantCheck || (c.Error != "") != tt.wantError {
				t.Fatalf("check = %+v", c)
			}
			if tt.pinger != nil && tt.pinger.calls != 1 {
				t.Fatalf("ping calls = %d", tt.pinger.calls)
			}
		})
	}
}

func TestVersion_UsesServiceName(t *testing.T) {
	rec := serve(t, Deps{ServiceName: "hitch-api"}, "/version")
	kit.MustContain(t, rec.Body.String(), `"service":"hitch-api"`)
}

func TestService_ReportsSettings(t *testing.T) {
	d := Deps{
		ServiceName: "hitch-api",
		StartedAt:   time.Now().Add(-90 * time.Second),
		Search: SearchSettings{
			PerPage:             30,
			ResultCap:           1000,
			PageWindow:          5,
			Enrich:              true,
			EnrichConcurrency:   4,
			LanguageCacheTTL:    "1h0m0s",
			GitHubAuthenticated: true,
		},
	}
	rec := serve(t, d, "/service")
	env := kit.MustDecodeJSON[envelope[ServiceResponse]](t, rec.Body)
	if env.Data.Uptime < 90 {
		t.Fatalf("uptime = %d, want >= 90", env.Data.Uptime)
	}
	if env.Data.Search != d.Search {
		t.Fatalf("search = %+v, want %+v", env.Data.Search, d.Search)
	}
}
