package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"holidaze/internal/app"
	"holidaze/internal/logger"
	"holidaze/internal/report"
	"holidaze/internal/session"
)

var (
	home     string
	apiBase  string
	apiKey   string
	logLevel string

	appCtx *app.Wire
	log    *zap.Logger
)

func Execute() error {
	root := &cobra.Command{
		Use:           "holidaze",
		Short:         "Browse, book and manage Holidaze venues",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			if home != "" {
				cfg.Home = home
			}
			if apiBase != "" {
				cfg.APIBase = apiBase
			}
			if apiKey != "" {
				cfg.APIKey = apiKey
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}

			log, err = logger.New(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()
			rep := report.Func(func(msg string) { fmt.Fprintln(stderr, "!", msg) })
			appCtx, err = app.NewWire(cmd.Context(), cfg, log, rep)
			if err != nil {
				return err
			}
			appCtx.Session.Subscribe(func(s session.Snapshot) {
				log.Debug("session changed",
					zap.Stringer("state", s.State),
					zap.Bool("loading", s.Loading),
					zap.Bool("updating", s.Updating),
				)
			})

			ctx := session.WithStore(cmd.Context(), appCtx.Session)
			cmd.SetContext(ctx)
			// Failures are already reported; commands run signed out.
			_ = appCtx.Session.Initialize(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			_ = log.Sync()
			return appCtx.Close()
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.holidaze)")
	root.PersistentFlags().StringVar(&apiBase, "api", "", "API base URL (default https://v2.api.noroff.dev)")
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "Noroff API key")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		signinCmd(),
		signupCmd(),
		signoutCmd(),
		whoamiCmd(),
		profileCmd(),
		venuesCmd(),
		bookCmd(),
		bookingsCmd(),
		manageCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}
