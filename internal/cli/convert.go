package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitcalc/internal/app/format"
	"github.com/aalvaropc/unitcalc/internal/domain"
	"github.com/aalvaropc/unitcalc/internal/infra/logger"
)

type conversionOutput struct {
	Category  string   `json:"category"`
	Value     *float64 `json:"value"`
	From      string   `json:"from"`
	Result    *float64 `json:"result"`
	To        string   `json:"to"`
	Formatted string   `json:"formatted"`
}

func convertCmd(opts *rootOptions) *cobra.Command {
	var category string
	var server string
	var out outputOptions

	c := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between two units of a category",
		Example: `  unitcalc convert 1 lb kg -c Weight
  unitcalc convert 100 MB KiB -c "Digital Storage" --format json
  unitcalc convert 100 celsius fahrenheit -c temperature --query '$.result'`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := out.validate(); err != nil {
				return err
			}

			cc, err := loadContext(opts.dir)
			if err != nil {
				return err
			}
			defer setupCommandLogging(cc, opts.debug)()

			value, err := parseValueArg(args[0])
			if err != nil {
				return err
			}

			req := domain.ConversionRequest{
				Value:    value,
				Category: resolveCategory(cc, category),
				From:     args[1],
				To:       args[2],
			}

			res, err := convertWith(cmd.Context(), cc, server, req)
			if err != nil {
				logger.L().Debug("convert.failed", "category", req.Category, "from", req.From, "to", req.To, "err", err)
				return err
			}
			logger.L().Info("convert.ok", "category", res.Category.Name, "from", res.From.Label, "to", res.To.Label)

			return printConversion(cmd.OutOrStdout(), out, value, res, cc.cfg.Display.Precision)
		},
	}

	c.Flags().StringVarP(&category, "category", "c", "", "Category name or key (defaults to defaults.category from unitcalc.yaml)")
	c.Flags().StringVar(&server, "server", "", "Convert on a running `unitcalc serve` at this URL instead of locally")
	c.Flags().StringVar(&out.format, "format", formatPretty, "Output format: pretty|json")
	c.Flags().StringVar(&out.query, "query", "", "JSONPath expression selecting part of the JSON output")
	return c
}

// convertWith converts locally, or on the server when one is given.
func convertWith(ctx context.Context, cc *calcCtx, server string, req domain.ConversionRequest) (domain.ConversionResult, error) {
	if strings.TrimSpace(server) == "" {
		return cc.conv.Convert(req)
	}
	client, err := cc.dial(server)
	if err != nil {
		return domain.ConversionResult{}, err
	}
	return client.Convert(ctx, req)
}

func parseValueArg(s string) (float64, error) {
	v, err := format.ParseValue(s)
	if err != nil {
		return 0, &domain.OpError{
			Op:   "cli.convert",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%w: %q is not a number", domain.ErrInvalidInput, s),
		}
	}
	return v, nil
}

func printConversion(w io.Writer, out outputOptions, value float64, res domain.ConversionResult, precision int) error {
	text := format.Conversion(value, res.From.Label, res.Value, res.To.Label, precision)
	payload := conversionOutput{
		Category:  res.Category.Name,
		Value:     jsonNumber(value),
		From:      res.From.Label,
		Result:    jsonNumber(res.Value),
		To:        res.To.Label,
		Formatted: format.Value(res.Value, precision),
	}
	return out.print(w, payload, func(w io.Writer) {
		fmt.Fprintln(w, text)
	})
}
