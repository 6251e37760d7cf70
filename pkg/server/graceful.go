// Package server wraps net/http with graceful shutdown for the serving
// shell.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/auralab/resonance/pkg/logging"
)

// GracefulServer wraps an HTTP server with signal-driven graceful shutdown.
type GracefulServer struct {
	server       *http.Server
	log          logging.Logger
	shutdownCh   chan struct{}
	shutdownOnce sync.Once
	timeout      time.Duration
}

// NewGracefulServer creates a graceful HTTP server listening on addr.
func NewGracefulServer(addr string, handler http.Handler, log logging.Logger) *GracefulServer {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &GracefulServer{
		server: &http.Server{
			Addr:           addr,
			Handler:        handler,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    120 * time.Second,
			MaxHeaderBytes: 1 << 20,
		},
		log:        log.With(logging.Component("server")),
		shutdownCh: make(chan struct{}),
		timeout:    30 * time.Second,
	}
}

// SetShutdownTimeout overrides the default 30s drain window.
func (gs *GracefulServer) SetShutdownTimeout(d time.Duration) {
	gs.timeout = d
}

// Start starts the server and blocks until it exits. SIGINT and SIGTERM
// trigger a graceful shutdown.
func (gs *GracefulServer) Start() error {
	go gs.handleSignals()

	gs.log.Info("http server starting", logging.String("addr", gs.server.Addr))
	if err := gs.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown initiates a graceful shutdown, draining in-flight requests for
// up to the configured timeout.
func (gs *GracefulServer) Shutdown() error {
	var err error
	gs.shutdownOnce.Do(func() {
		close(gs.shutdownCh)

		ctx, cancel := context.WithTimeout(context.Background(), gs.timeout)
		defer cancel()

		gs.log.Info("shutting down", logging.Duration("timeout", gs.timeout))
		if shutdownErr := gs.server.Shutdown(ctx); shutdownErr != nil {
			err = shutdownErr
			gs.log.Error("shutdown error", logging.Error(shutdownErr))
		} else {
			gs.log.Info("shutdown complete")
		}
	})
	return err
}

// Done is closed once shutdown has begun.
func (gs *GracefulServer) Done() <-chan struct{} {
	return gs.shutdownCh
}

func (gs *GracefulServer) handleSignals() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		gs.log.Info("signal received", logging.String("signal", sig.String()))
		gs.Shutdown()
	case <-gs.shutdownCh:
	}
}
