// Package http provides http transport for issue search
package http

import (
	stdhttp "net/http"
	"net/url"
	"strconv"
	"strings"

	"hitch/internal/modkit/httpkit"
	perr "hitch/internal/platform/errors"
	str "hitch/internal/platform/strings"
	"hitch/internal/services/api/issues/domain"
	svc "hitch/internal/services/api/issues/service"
)

// Register mounts issue search on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// one page of issues for the given filters
	httpkit.GetQuery(r, "/", ParseSearchInput, h.search)
}

type handlers struct{ svc svc.Service }

// ParseSearchInput reads the query string; rules live on domain.SearchInput tags
// labels may repeat and each value may hold a comma separated list
func ParseSearchInput(v url.Values) (domain.SearchInput, error) {
	in := domain.SearchInput{
		Q:         strings.TrimSpace(v.Get("q")),
		Language:  strings.TrimSpace(v.Get("language")),
		Labels:    str.SplitCSV(v["labels"]...),
		UpdatedAt: strings.TrimSpace(v.Get("updatedAt")),
	}
	if s := strings.TrimSpace(v.Get("page")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return in, perr.WithField(perr.Validationf("page must be an integer"), "page")
		}
		in.Page = max(n, 0)
	}
	return in, nil
}

// swagger:route GET /issues Issues issuesSearch
// @Summary Search open GitHub issues
// @Tags Issues
// @Produce json
// @Param q query string false "Keyword"
// @Param language query string false "Repository language"
// @Param labels query []string false "Labels, repeated or comma separated"
// @Param updatedAt query string false "Updated after (YYYY-MM-DD)"
// @Param page query int false "Page number, defaults to 1"
// @Success 200 {object} domain.SearchResult "ok"
// @Failure 400 {object} httpkit.Envelope "invalid filters"
// @Failure 502 {object} httpkit.Envelope "GitHub returned an error"
// @Router /issues [get]
func (h *handlers) search(r *stdhttp.Request, in domain.SearchInput) (any, error) {
	return h.svc.Search(r.Context(), in.Filters())
}
