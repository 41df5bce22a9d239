// Package api provides the HTTP API for the application
package api

import (
	"net/http"

	"hitch/internal/adapters/github"
	"hitch/internal/platform/config"
	perr "hitch/internal/platform/errors"
	"hitch/internal/platform/logger"
	pnet "hitch/internal/platform/net"
	phttp "hitch/internal/platform/net/http"

	"hitch/internal/modkit"
	"hitch/internal/modkit/httpkit"
	"hitch/internal/modkit/module"
	"hitch/internal/modkit/swaggerkit"

	issuesmod "hitch/internal/services/api/issues/module"
	metahttp "hitch/internal/services/api/meta/http"
	metamod "hitch/internal/services/api/meta/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	GitHub         *github.Client
	Logger         *logger.Logger
	ServiceName    string
	EnableSwagger  bool
	EnableProfiler bool

	// Stack tunes the shared middleware; zero values pick defaults
	Stack httpkit.StackOptions
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	log := opt.Logger
	if log == nil {
		log = logger.Named("api")
	}

	// shared deps for modules
	deps := modkit.Deps{
		Log:    *log,
		Cfg:    opt.Config,
		GitHub: opt.GitHub,
	}

	issues := issuesmod.New(deps, issuesmod.FromConfig(deps.Cfg))

	// meta reports the effective search settings owned by the issues module
	io := module.MustPortsOf[issuesmod.Ports](issues).Options
	meta := metamod.New(deps, metamod.Options{
		ServiceName: opt.ServiceName,
		Search: metahttp.SearchSettings{
			PerPage:           io.PerPage,
			ResultCap:         io.ResultCap,
			PageWindow:        io.PageWindow,
			Enrich:            io.Enrich,
			EnrichConcurrency: io.EnrichConcurrency,
			LanguageCacheTTL:  io.LanguageCacheTTL.String(),
		},
	})

	mods := []module.Module{meta, issues}

	// versioned API with a common middleware stack
	httpkit.MountAPIV1(r, httpkit.CommonStackWith(opt.Stack), func(api httpkit.Router) {
		for _, m := range mods {
			// register each module's ports under its own name (for cross-module lookups)
			module.Register(m.Name(), m.Ports())

			// mount module routes under its Prefix()
			m.MountRoutes(api)
		}
		log.Debug().Int("modules", len(mods)).Msg("api modules mounted")
	})

	// Swagger + profiler
	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	phttp.RespondError(w, r, perr.NotFoundf("route not found"))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	phttp.JSON(w, http.StatusMethodNotAllowed, pnet.Wire{
		StatusCode: http.StatusMethodNotAllowed,
		Status:     http.StatusText(http.StatusMethodNotAllowed),
		Error:      "method not allowed",
		RequestID:  pnet.RequestID(r.Context()),
	})
}
