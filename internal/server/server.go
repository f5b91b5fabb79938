// Package server wires the greeting handler into an HTTP server and runs it
// until its context is cancelled.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/cedric66/tf-acr/internal/greeting"
)

const (
	// DefaultAddr binds every interface on the service port.
	DefaultAddr = "0.0.0.0:8080"

	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves the greeting for a single API key.
type Server struct {
	// Addr is the TCP address to listen on. Empty means DefaultAddr.
	Addr string
	// Logger receives lifecycle messages. Nil means log.Default().
	Logger *log.Logger

	apiKey string
}

// New returns a Server for apiKey listening on DefaultAddr.
func New(apiKey string) *Server {
	return &Server{Addr: DefaultAddr, apiKey: apiKey}
}

// Router returns the route table: GET (and HEAD) on "/" only.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.GetHead)
	r.Method(http.MethodGet, "/", greeting.Handler(s.apiKey))
	return r
}

// Listen binds the server's address.
func (s *Server) Listen() (net.Listener, error) {
	addr := s.Addr
	if addr == "" {
		addr = DefaultAddr
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}
	return ln, nil
}

// Run binds the listener and serves until ctx is done.
// A bind failure is returned before anything is served.
func (s *Server) Run(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts the server down.
// It returns nil after a clean shutdown.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	logger := s.logger()
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Printf("listening on %s", ln.Addr())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Printf("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	return g.Wait()
}

func (s *Server) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}
