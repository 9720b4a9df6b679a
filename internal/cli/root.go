package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitcalc/internal/infra/fsconfig"
	"github.com/aalvaropc/unitcalc/internal/infra/logger"
	"github.com/aalvaropc/unitcalc/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	debug bool
	dir   string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "unitcalc",
		Short:        "unitcalc, a unit conversion calculator",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cc, err := loadContext(opts.dir)
			if err != nil {
				return err
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  cc.root,
				Debug: opts.debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				Registry:    cc.registry,
				Converter:   cc.conv,
				Config:      cc.cfg,
				ConfigRoot:  cc.root,
				Initializer: fsconfig.NewInitializer(),
				Logger:      logger.L(),
				Debug:       opts.debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging to .unitcalc/logs/unitcalc.log")
	cmd.PersistentFlags().StringVarP(&opts.dir, "dir", "C", "", "Directory holding unitcalc.yaml (optional; autodetected if omitted)")

	cmd.AddCommand(
		convertCmd(opts),
		categoriesCmd(opts),
		unitsCmd(opts),
		quickCmd(opts),
		serveCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}
