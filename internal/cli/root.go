// Package cli provides the hitch command line
package cli

import (
	"context"

	"hitch/internal/core/version"
	"hitch/internal/platform/logger"
	pnet "hitch/internal/platform/net"
	"hitch/internal/services/api/issues/domain"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Deps are what the commands need; Search may be nil for commands that stay offline
type Deps struct {
	Search domain.ServicePort

	// Authenticated reports whether GitHub requests carry a token
	Authenticated bool
}

// newRequestID is a seam so tests get stable ids
var newRequestID = uuid.NewString

// NewRootCommand creates the root command
func NewRootCommand(d Deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "hitch",
		Short: "Find open GitHub issues to work on",
		Long: `hitch searches open GitHub issues by language, label, keyword and
last update, and prints one page of results.

Set GITHUB_TOKEN to raise the search rate limit. Several tokens may be
given as a comma separated list; requests rotate through them.`,
		Version:       version.InfoFor("hitch").Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newSearchCommand(d))
	root.AddCommand(newVersionCommand())
	return root
}

// commandContext tags ctx with a fresh correlation id and the cli surface
func commandContext(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	ctx := pnet.WithRequest(parent, newRequestID())
	return logger.WithSurface(ctx, "cli")
}
