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
	"go.uber.org/zap"

	"holidaze/internal/app"
	"holidaze/internal/devapi"
	"holidaze/internal/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr string
		seed bool
	)
	cmd := &cobra.Command{
		Use:          "holidaze-devapi",
		Short:        "Serve an in-memory Holidaze API",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.DevAPIAddr
			}
			log, err := logger.New(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			srv := devapi.New(devapi.WithAPIKey(cfg.APIKey), devapi.WithLogger(log.Named("devapi")))
			if seed {
				if err := srv.Seed(); err != nil {
					return err
				}
				log.Info("seeded demo data", zap.String("email", devapi.DemoEmail))
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, log, addr, srv.Handler())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HOLIDAZE_DEVAPI_ADDR or 127.0.0.1:8080)")
	cmd.Flags().BoolVar(&seed, "seed", false, "create a demo venue manager and venues")
	return cmd
}

func serve(ctx context.Context, log *zap.Logger, addr string, h http.Handler) error {
	hs := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info("devapi listening", zap.String("addr", addr))
		errCh <- hs.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Info("shutting down")
	return hs.Shutdown(shutdownCtx)
}
