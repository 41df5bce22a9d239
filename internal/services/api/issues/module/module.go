// Package module wires issue search into the API using modkit
package module

import (
	"net/http"

	modkit "hitch/internal/modkit"
	"hitch/internal/modkit/httpkit"
	str "hitch/internal/platform/strings"
	issueshttp "hitch/internal/services/api/issues/http"
	issuessvc "hitch/internal/services/api/issues/service"
)

// Ports exposed by the issues module
type Ports struct {
	Search  issuessvc.Service
	Options Options
}

// Module implements the issues module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string

	mws       []func(http.Handler) http.Handler
	ports     Ports
	swaggerOn bool

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)

	svc issuessvc.Service
}

// New constructs the issues module
// deps.GitHub is required unless a search service is injected with modkit.WithPorts(Ports{...})
func New(deps modkit.Deps, opts Options, mopts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("issues"), modkit.WithPrefix("/issues")}, mopts...)...)

	var svc issuessvc.Service
	if p, ok := b.Ports.(Ports); ok && p.Search != nil {
		svc = p.Search
	} else {
		if deps.GitHub == nil {
			panic("issues module requires deps.GitHub")
		}
		svc = issuessvc.New(deps.GitHub, opts.ServiceConfig())
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		swaggerOn: b.SwaggerOn,
		subrouter: b.Subrouter,
		svc:       svc,
	}
	m.ports = Ports{Search: svc, Options: opts}

	external := b.Register
	m.register = func(r httpkit.Router) {
		issueshttp.Register(r, m.svc)
		if external != nil {
			external(r)
		}
	}
	return m
}

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name returns the module name
func (m *Module) Name() string { return str.MustString(m.name, "module name") }

// Prefix returns the module route prefix
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares returns the module middlewares
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
