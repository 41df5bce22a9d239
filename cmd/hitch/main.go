// Command hitch searches open GitHub issues from the terminal
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"hitch/internal/adapters/github"
	"hitch/internal/cli"
	"hitch/internal/platform/config"
	"hitch/internal/platform/logger"
	issuesmod "hitch/internal/services/api/issues/module"
	issuessvc "hitch/internal/services/api/issues/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hitch:", err)
		os.Exit(1)
	}
}

func run() error {
	// results own stdout; logs go to stderr at warn unless LOG_LEVEL says otherwise
	lo := logger.FromEnvWithLevel("warn")
	lo.Writer = os.Stderr
	logger.Init(lo)

	root := config.New()
	gh := github.NewClient(github.OptionsFromConfig(root))
	opts := issuesmod.FromConfig(root)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := cli.NewRootCommand(cli.Deps{
		Search:        issuessvc.New(gh, opts.ServiceConfig()),
		Authenticated: gh.Authenticated(),
	})
	return cmd.ExecuteContext(ctx)
}
