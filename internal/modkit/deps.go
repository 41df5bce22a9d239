// Package modkit provides module wiring and core deps
package modkit

import (
	"hitch/internal/adapters/github"
	"hitch/internal/platform/config"
	"hitch/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    logger.Logger
	Cfg    config.Conf
	GitHub *github.Client
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// consumers should still nil check GitHub
func (d Deps) ZeroOK() bool { return true }
