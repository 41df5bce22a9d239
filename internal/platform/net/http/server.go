package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"hitch/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// ServerOptions tunes the stdlib server; zero values pick defaults
type ServerOptions struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	ShutdownGrace     time.Duration
}

// Server is a thin wrapper over chi + stdlib http.Server
type Server struct {
	addr  string
	mux   *chi.Mux
	srv   *stdhttp.Server
	grace time.Duration
}

// NewServer creates a server listening on addr (":4000")
// opts receive the *chi.Mux so callers can mount routes/mw
func NewServer(addr string, so ServerOptions, opts ...func(*chi.Mux)) *Server {
	if addr == "" {
		addr = ":4000"
	}
	if so.ReadHeaderTimeout <= 0 {
		so.ReadHeaderTimeout = 10 * time.Second
	}
	if so.ShutdownGrace <= 0 {
		so.ShutdownGrace = 10 * time.Second
	}
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr:  addr,
		mux:   m,
		grace: so.ShutdownGrace,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: so.ReadHeaderTimeout,
			WriteTimeout:      so.WriteTimeout,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router { return AdaptChi(s.mux) }

// Addr returns the listening address
func (s *Server) Addr() string { return s.addr }

// Run serves until ctx is cancelled, then drains within the shutdown grace
func (s *Server) Run(ctx context.Context) error {
	log := logger.Named("http")
	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", s.addr).Msg("http listening")
		errc <- s.srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, stdhttp.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("grace", s.grace).Msg("http shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), s.grace)
	defer cancel()
	if err := s.srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
