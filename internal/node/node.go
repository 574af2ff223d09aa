package node

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SystemBuilders/dll/internal/config"
	"github.com/SystemBuilders/dll/internal/routing"
	"github.com/SystemBuilders/dll/internal/store"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// NewServer validates the configuration and returns a http server
// serving the list routes of s.
func NewServer(s *store.ListStore, cfg config.Config) (*http.Server, error) {
	if err := checkValidPort(cfg.Port()); err != nil {
		return nil, err
	}

	router := routing.SetupRouting(s, mux.NewRouter())

	return &http.Server{
		Handler: router,
		Addr:    cfg.Addr(),
	}, nil
}

// Start begins the node's operation as a http server. It blocks until
// the server stops, returning nil after a graceful shutdown.
func Start(s *store.ListStore, cfg config.Config, log zerolog.Logger) error {
	server, err := NewServer(s, cfg)
	if err != nil {
		return err
	}

	stop := make(chan struct{})
	done := make(chan struct{})
	go gracefulShutdown(server, log, stop, done)

	log.Info().Str("addr", server.Addr).Msg("starting server")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		// The server never ran, so release the signal watcher.
		close(stop)
		<-done
		return err
	}
	<-done
	return nil
}

// gracefulShutdown shuts down the server on getting a ^C signal. It
// returns without shutting down if stop is closed first.
func gracefulShutdown(server *http.Server, log zerolog.Logger, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interruptChan)

	// Block until we receive our signal.
	select {
	case <-interruptChan:
	case <-stop:
		return
	}

	// Create a deadline to wait for currently serving items.
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
		return
	}
	log.Info().Msg("shutting down")
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return err
	}
	if portInt < 1 || portInt > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}
	return nil
}
