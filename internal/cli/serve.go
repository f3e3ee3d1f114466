package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/aretw0/waterjug"
	"github.com/aretw0/waterjug/internal/presentation/tui"
	httpAdapter "github.com/aretw0/waterjug/pkg/adapters/http"
	"golang.org/x/term"
)

// RunServer starts the HTTP server and blocks until SIGINT/SIGTERM or a listener error.
func RunServer(o Overrides) error {
	rt, err := NewRuntime(o, os.Stderr)
	if err != nil {
		return err
	}

	opts := []httpAdapter.Option{httpAdapter.WithLogger(rt.Logger)}
	if rt.Metrics != nil {
		opts = append(opts, httpAdapter.WithMetrics(rt.Metrics, rt.Registry))
	}
	handler, err := httpAdapter.NewHandler(rt.Engine, opts...)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", ":"+rt.Config.Port)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", rt.Config.Port, err)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner(os.Stdout, strings.TrimSpace(waterjug.Version))
	}

	ctx := NewSignalContext(context.Background())
	defer ctx.Cancel()

	err = Serve(ctx, ln, handler, rt.Config.ShutdownTimeout, rt.Logger)
	if sig := ctx.Signal(); sig != nil {
		rt.Logger.Info("Server stopped", "signal", sig.String())
	}
	return err
}

// Serve runs handler on ln until ctx is done, then gives outstanding requests up to timeout
// to complete before closing the server.
func Serve(ctx context.Context, ln net.Listener, handler http.Handler, timeout time.Duration, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("Starting Water Jug Server", "address", ln.Addr().String())
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		// Asking listener to shut down and shed load.
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Graceful shutdown did not complete", "timeout", timeout, "error", err)
			if err := srv.Close(); err != nil {
				return fmt.Errorf("error killing server: %w", err)
			}
		}
		<-serverErrors
		logger.Info("Water Jug Server stopped gracefully")
		return nil
	}
}
