package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitcalc/internal/api"
	"github.com/aalvaropc/unitcalc/internal/infra/logger"
	"github.com/aalvaropc/unitcalc/internal/infra/sessionstore"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var addr string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator over HTTP with per-session history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := loadContext(opts.dir)
			if err != nil {
				return err
			}

			cleanup, err := logger.Setup(logger.Config{Debug: opts.debug, Stdout: true})
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			if a := strings.TrimSpace(addr); a != "" {
				cc.cfg.Server.Addr = a
			}

			store := sessionstore.New(
				sessionstore.WithMaxSessions(cc.cfg.Server.MaxSessions),
				sessionstore.WithIdleTimeout(cc.cfg.Server.SessionTTL),
			)
			h := api.NewHandler(cc.registry, store,
				api.WithLogger(logger.L()),
				api.WithPrecision(cc.cfg.Display.Precision),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			go sweepSessions(ctx, store, cc.cfg.Server.SessionTTL, logger.L())

			logger.L().Info("serve.config", "root", cc.root,
				"max_sessions", cc.cfg.Server.MaxSessions,
				"session_ttl", cc.cfg.Server.SessionTTL.String(),
			)
			return api.Serve(ctx, cc.cfg.Server.Addr, api.NewRouter(h), logger.L())
		},
	}

	c.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to server.addr from unitcalc.yaml, else :8080)")
	return c
}

// sweepSessions drops idle sessions every interval until ctx is done.
func sweepSessions(ctx context.Context, store *sessionstore.Store, every time.Duration, log *slog.Logger) {
	if every <= 0 {
		return
	}
	t := time.NewTicker(every)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if n := store.Sweep(); n > 0 {
				log.Info("sessions.swept", "count", n, "live", store.Len())
			}
		}
	}
}
