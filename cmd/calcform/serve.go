package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-calcform/components/calculator"
	"github.com/goliatone/go-calcform/internal/logging"
	calc "github.com/goliatone/go-calcform/pkg/calculator"
	"github.com/goliatone/go-calcform/pkg/renderers/page"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator form over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("base-path", "/", "path prefix the form is mounted under")
	cmd.Flags().String("theme", "light", "theme variant: light or dark")
	return cmd
}

func (a *app) serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	theme, err := page.ResolveTheme(nil, a.cfg.Theme.Variant)
	if err != nil {
		return err
	}
	mode, err := calc.ParseMode(a.cfg.Parsing)
	if err != nil {
		return err
	}

	component, err := calculator.New(
		calculator.WithMode(mode),
		calculator.WithMessages(a.calc.Messages()),
		calculator.WithLogger(logging.L),
		calculator.WithPageOptions(
			page.WithTheme(theme),
			page.WithCatalog(a.catalog, a.cfg.Language),
		),
	)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	paths, err := component.RegisterRoutes(mux, a.cfg.Server.BasePath)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.L.Info("listening", "addr", server.Addr, "page", paths.Page, "api", paths.API)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.L.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
