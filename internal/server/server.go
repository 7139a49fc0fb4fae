// Package server exposes the group catalog, the isomorphism oracle and the
// finite-field builder over HTTP.
//
// Routes:
//
//	GET  /healthz
//	GET  /groups/{order}
//	GET  /groups/{order}/{index}
//	GET  /groups/{order}/{index}/cayley.dot
//	POST /isomorphic        {"a": [[...]], "b": [[...]]}
//	GET  /fields/{q}
//
// Every response carries an X-Request-ID header (taken from the request
// when present). Errors are JSON objects {"error": "..."}.
package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/fedimser/GroupEnumerator/catalog"
)

// Limits on request-driven work.
const (
	DefaultMaxOrder = 10
	MaxFieldOrder   = 256
	MaxIsoOrder     = 64
	maxBodyBytes    = 1 << 20

	// DefaultIsoTimeout bounds one isomorphism search.
	DefaultIsoTimeout = 10 * time.Second
)

// Server serves the HTTP API.
type Server struct {
	cat        *catalog.Catalog
	maxOrder   int
	isoTimeout time.Duration
	logger     *log.Logger
	router     chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithMaxOrder caps the group order a request may enumerate.
func WithMaxOrder(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxOrder = n
		}
	}
}

// WithIsoTimeout bounds the time spent on one POST /isomorphic request.
// Non-positive values are ignored.
func WithIsoTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.isoTimeout = d
		}
	}
}

// WithLogger sets the request logger. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// New builds a server over cat. A nil catalog enumerates without caching.
func New(cat *catalog.Catalog, opts ...Option) *Server {
	if cat == nil {
		cat = catalog.New(nil)
	}
	s := &Server{
		cat:        cat,
		maxOrder:   DefaultMaxOrder,
		isoTimeout: DefaultIsoTimeout,
		logger:     log.NewWithOptions(io.Discard, log.Options{}),
	}
	for _, fn := range opts {
		fn(s)
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/groups/{order}", func(r chi.Router) {
		r.Get("/", s.handleGroups)
		r.Get("/{index}", s.handleGroup)
		r.Get("/{index}/cayley.dot", s.handleCayley)
	})
	r.Post("/isomorphic", s.handleIsomorphic)
	r.Get("/fields/{q}", s.handleField)

	return r
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	}
}
