package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const defaultAddress = ":8080"

// runServer serves h on addr until cfg's base context is cancelled or the
// process receives SIGINT or SIGTERM. Startup hooks run before the listener
// opens; shutdown hooks run once the server has drained.
func runServer(h http.Handler, addr string, cfg *runConfig) error {
	if addr == "" {
		addr = defaultAddress
	}
	base := cfg.baseCtx
	if base == nil {
		base = context.Background()
	}
	log := cfg.logger

	ctx, stop := signal.NotifyContext(base, os.Interrupt, syscall.SIGTERM)
	defer stop()

	for i, hook := range cfg.startupHooks {
		if err := hook(ctx); err != nil {
			log.ErrorContext(ctx, "startup hook failed", slog.Int("hook", i), slog.Any("error", err))
			return fmt.Errorf("startup: %w", err)
		}
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}

	srv := newServer(h, log)
	served := make(chan error, 1)
	go func() {
		served <- srv.Serve(ln)
	}()

	log.Info("server listening", slog.String("address", ln.Addr().String()))
	if cfg.ready != nil {
		cfg.ready(ln.Addr())
	}

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	return shutdown(srv, cfg)
}

func newServer(h http.Handler, log *slog.Logger) *http.Server {
	return &http.Server{
		Handler:           h,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
		ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
	}
}

// shutdown drains srv and runs the shutdown hooks within the shutdown timeout.
// Every failure is reported.
func shutdown(srv *http.Server, cfg *runConfig) error {
	log := cfg.logger
	log.Info("shutting down server", slog.Duration("timeout", cfg.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}
	for i, hook := range cfg.shutdownHooks {
		if err := hook(ctx); err != nil {
			log.Error("shutdown hook failed", slog.Int("hook", i), slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	log.Info("shutdown completed")
	return nil
}
