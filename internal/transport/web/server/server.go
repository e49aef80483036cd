package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jbeshir/promptly-mcp/internal/domain"
	"golang.org/x/crypto/acme/autocert"
)

const defaultShutdownTimeout = 10 * time.Second

type Server struct {
	TLSDisabled       bool
	TLSDisabledPort   int
	AutocertHostnames []string
	Router            http.Handler

	// ShutdownTimeout bounds how long in-flight requests get to finish once
	// the context is cancelled.
	ShutdownTimeout time.Duration

	// listen is replaced in tests.
	listen func() (net.Listener, error)
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := s.listener()
	if err != nil {
		return err
	}

	logger := domain.LoggerFromContext(ctx)
	srv := &http.Server{
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	errs := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "serving HTTP", "addr", listener.Addr().String(), "tls", !s.TLSDisabled)
		errs <- srv.Serve(listener)
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("serving HTTP: %w", err)
	case <-ctx.Done():
	}

	timeout := s.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	logger.InfoContext(ctx, "shutting down HTTP server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down HTTP server: %w", err)
	}
	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving HTTP: %w", err)
	}
	return nil
}

func (s *Server) listener() (net.Listener, error) {
	if s.listen != nil {
		return s.listen()
	}
	if s.TLSDisabled {
		l, err := net.Listen("tcp", fmt.Sprintf(":%d", s.TLSDisabledPort))
		if err != nil {
			return nil, fmt.Errorf("listening on port %d: %w", s.TLSDisabledPort, err)
		}
		return l, nil
	}
	if len(s.AutocertHostnames) == 0 {
		return nil, errors.New("TLS is enabled but no autocert hostnames are configured")
	}
	return autocert.NewListener(s.AutocertHostnames...), nil
}
