package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rcliao/aiplayland-journey/internal/logging"
	"github.com/rcliao/aiplayland-journey/internal/server"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the journey over HTTP",
		Run:   runServe,
	}

	cmd.Flags().String("addr", "", "Listen address (default: server.addr from config)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, args []string) {
	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}

	nav, s := openNavigator()
	defer s.Close()

	handler := server.New(nav,
		server.WithCookieName(cfg.Server.CookieName),
		server.WithRevealCookieName(cfg.Server.RevealCookieName),
		server.WithSecureCookies(cfg.Server.SecureCookies),
	)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", addr).
			Str("db", s.Path()).
			Int("problems", nav.Recommender().Catalog().Len()).
			Msg("journey server listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitErr("serve", err)
		}
	case <-ctx.Done():
		logging.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("shutdown")
		}
	}
}
