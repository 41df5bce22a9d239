// Command hitch-api serves the issue search HTTP API
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"hitch/internal/adapters/github"
	"hitch/internal/platform/config"
	"hitch/internal/platform/logger"
	phttp "hitch/internal/platform/net/http"

	"hitch/internal/modkit/httpkit"
	"hitch/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// GitHub client (reads GITHUB_*); no network until the first request
	gh := github.NewClient(github.OptionsFromConfig(root))
	if !gh.Authenticated() {
		l.Warn().Msg("GITHUB_TOKEN not set; search runs anonymously and is heavily rate limited")
	}

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg.MayPort("PORT", "4000"), phttp.ServerOptions{
		WriteTimeout: apiCfg.MayDuration("WRITE_TIMEOUT", 0),
	})

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			GitHub:         gh,
			Logger:         l,
			ServiceName:    "hitch-api",
			EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
			EnableProfiler: apiCfg.MayBool("PROFILER", false),
			Stack: httpkit.StackOptions{
				CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
				Timeout:     apiCfg.MayDuration("REQUEST_TIMEOUT", 0),
			},
		},
	)

	// run until SIGINT/SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
