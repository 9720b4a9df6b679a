package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/unitcalc/internal/domain"
)

type categoryOutput struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Units int    `json:"units"`
}

func categoriesCmd(opts *rootOptions) *cobra.Command {
	var out outputOptions

	c := &cobra.Command{
		Use:   "categories",
		Short: "List conversion categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cc, err := loadContext(opts.dir)
			if err != nil {
				return err
			}
			return printCategories(cmd.OutOrStdout(), out, cc.registry.Categories())
		},
	}

	c.Flags().StringVar(&out.format, "format", formatPretty, "Output format: pretty|json")
	c.Flags().StringVar(&out.query, "query", "", "JSONPath expression selecting part of the JSON output")
	return c
}

func printCategories(w io.Writer, out outputOptions, cats []domain.Category) error {
	payload := make([]categoryOutput, 0, len(cats))
	for _, c := range cats {
		payload = append(payload, categoryOutput{
			Key:   c.Key,
			Name:  c.Name,
			Kind:  string(c.Kind),
			Units: len(c.Units),
		})
	}

	return out.print(w, payload, func(w io.Writer) {
		width := 0
		for _, c := range cats {
			width = max(width, len(c.Name))
		}
		for _, c := range cats {
			fmt.Fprintf(w, "%s %-*s  %-16s %d units\n", c.Icon, width, c.Name, c.Key, len(c.Units))
		}
	})
}

func categoryHeader(c domain.Category) string {
	var b strings.Builder
	if c.Icon != "" {
		b.WriteString(c.Icon + " ")
	}
	b.WriteString(c.Name)
	return b.String()
}
