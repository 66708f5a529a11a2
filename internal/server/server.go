package server

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/mkhalinin/go-library-manager/internal/config"
	"github.com/mkhalinin/go-library-manager/internal/logger"
)

// Server is the lifecycle contract of the transport layer. RunServer blocks
// until shutdown is requested; Shutdown drains in-flight requests.
type Server interface {
	RunServer()
	Shutdown()
}

type server struct {
	httpServer *http.Server
	logger     *logger.Logger
}

func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if cfg.HTTPAddress == "" {
		return nil, errors.New("no HTTP address configured")
	}

	return &server{
		httpServer: &http.Server{
			Addr:         cfg.HTTPAddress,
			Handler:      handler,
			ReadTimeout:  cfg.RequestTimeout,
			WriteTimeout: cfg.RequestTimeout,
		},
		logger: logger,
	}, nil
}

func (s *server) RunServer() {
	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msgf("Launching HTTP server on %s", s.httpServer.Addr)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Msgf("HTTP server ListenAndServe: %v", err)
		}
	}()

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")
}

func (s *server) Shutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Msgf("HTTP server Shutdown: %v", err)
	}
}
