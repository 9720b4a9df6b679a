package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

type unitsOutput struct {
	Category string       `json:"category"`
	Units    []unitOutput `json:"units"`
}

type unitOutput struct {
	Symbol string `json:"symbol"`
	Label  string `json:"label"`
}

func unitsCmd(opts *rootOptions) *cobra.Command {
	var category string
	var server string
	var info bool
	var out outputOptions

	c := &cobra.Command{
		Use:   "units",
		Short: "List the units of a category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := loadContext(opts.dir)
			if err != nil {
				return err
			}

			name := resolveCategory(cc, category)

			var cat domain.Category
			if strings.TrimSpace(server) != "" {
				client, cerr := cc.dial(server)
				if cerr != nil {
					return cerr
				}
				cat, err = client.Units(cmd.Context(), name)
			} else {
				cat, err = cc.registry.Category(name)
			}
			if err != nil {
				return err
			}
			return printUnits(cmd.OutOrStdout(), out, cat, info)
		},
	}

	c.Flags().StringVarP(&category, "category", "c", "", "Category name or key (defaults to defaults.category from unitcalc.yaml)")
	c.Flags().BoolVar(&info, "info", false, "Also print the category notes")
	c.Flags().StringVar(&server, "server", "", "List units from a running `unitcalc serve` at this URL")
	c.Flags().StringVar(&out.format, "format", formatPretty, "Output format: pretty|json")
	c.Flags().StringVar(&out.query, "query", "", "JSONPath expression selecting part of the JSON output")
	return c
}

func printUnits(w io.Writer, out outputOptions, cat domain.Category, info bool) error {
	payload := unitsOutput{Category: cat.Name, Units: make([]unitOutput, 0, len(cat.Units))}
	for _, u := range cat.Units {
		payload.Units = append(payload.Units, unitOutput{Symbol: u.Symbol, Label: u.Label})
	}

	return out.print(w, payload, func(w io.Writer) {
		fmt.Fprintf(w, "%s\n\n", categoryHeader(cat))

		width := 0
		for _, u := range cat.Units {
			width = max(width, len(u.Symbol))
		}
		for _, u := range cat.Units {
			fmt.Fprintf(w, "  %-*s  %s\n", width, u.Symbol, u.Label)
		}

		if info && cat.Info != "" {
			fmt.Fprintf(w, "\n%s\n", cat.Info)
		}
	})
}
