package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/infra/logger"
)

type quickOutput struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Category string `json:"category"`
	From     string `json:"from"`
	To       string `json:"to"`
}

func quickCmd(opts *rootOptions) *cobra.Command {
	var out outputOptions

	c := &cobra.Command{
		Use:   "quick [N VALUE]",
		Short: "List the quick conversions, or run quick conversion N on VALUE",
		Example: `  unitcalc quick
  unitcalc quick 3 12`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 arg(s), received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}

			cc, err := loadContext(opts.dir)
			if err != nil {
				return err
			}
			presets := cc.registry.QuickConversions()

			if len(args) == 0 {
				return printQuickConversions(cmd.OutOrStdout(), out, presets)
			}

			defer setupCommandLogging(cc, opts.debug)()

			q, err := pickQuick(presets, args[0])
			if err != nil {
				return err
			}
			value, err := parseValueArg(args[1])
			if err != nil {
				return err
			}

			res, err := cc.conv.Convert(domain.ConversionRequest{
				Value:    value,
				Category: q.Category,
				From:     q.From,
				To:       q.To,
			})
			if err != nil {
				return err
			}
			logger.L().Info("convert.ok", "quick", q.Name, "category", res.Category.Name)

			return printConversion(cmd.OutOrStdout(), out, value, res, cc.cfg.Display.Precision)
		},
	}

	c.Flags().StringVar(&out.format, "format", formatPretty, "Output format: pretty|json")
	c.Flags().StringVar(&out.query, "query", "", "JSONPath expression selecting part of the JSON output")
	return c
}

// pickQuick resolves a 1-based preset number.
func pickQuick(presets []domain.QuickConversion, arg string) (domain.QuickConversion, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(presets) {
		return domain.QuickConversion{}, &domain.OpError{
			Op:   "cli.quick",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%w: quick conversion %q (expected 1-%d)", domain.ErrInvalidInput, arg, len(presets)),
		}
	}
	return presets[n-1], nil
}

func printQuickConversions(w io.Writer, out outputOptions, presets []domain.QuickConversion) error {
	payload := make([]quickOutput, 0, len(presets))
	for i, q := range presets {
		payload = append(payload, quickOutput{Index: i + 1, Name: q.Name, Category: q.Category, From: q.From, To: q.To})
	}

	return out.print(w, payload, func(w io.Writer) {
		for i, q := range presets {
			fmt.Fprintf(w, "%d. %-12s %s → %s (%s)\n", i+1, q.Name, q.From, q.To, q.Category)
		}
	})
}
