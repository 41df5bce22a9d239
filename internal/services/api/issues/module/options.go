package module

import (
	"time"

	"hitch/internal/adapters/github"
	"hitch/internal/platform/config"
	svc "hitch/internal/services/api/issues/service"
)

// Options holds configuration settings for the issues module
type Options struct {
	PerPage           int
	ResultCap         int
	PageWindow        int
	Enrich            bool
	EnrichConcurrency int

	// LanguageCacheTTL is advisory and only reported, nothing caches yet
	LanguageCacheTTL time.Duration
}

// FromConfig reads ISSUES_* settings
func FromConfig(cfg config.Conf) Options {
	ic := cfg.Prefix("ISSUES_")
	return Options{
		PerPage:           ic.MayPositiveInt("PER_PAGE", github.SearchPageSize),
		ResultCap:         ic.MayInt("RESULT_CAP", 1000),
		PageWindow:        ic.MayPositiveInt("PAGE_WINDOW", svc.DefaultWindow),
		Enrich:            ic.MayBool("ENRICH", true),
		EnrichConcurrency: ic.MayPositiveInt("ENRICH_CONCURRENCY", 4),
		LanguageCacheTTL:  ic.MayDuration("LANGUAGE_CACHE_TTL", time.Hour),
	}
}

// ServiceConfig converts options into the service configuration
func (o Options) ServiceConfig() svc.Config {
	return svc.Config{
		PerPage:           o.PerPage,
		ResultCap:         o.ResultCap,
		Window:            o.PageWindow,
		Enrich:            o.Enrich,
		EnrichConcurrency: o.EnrichConcurrency,
	}
}
