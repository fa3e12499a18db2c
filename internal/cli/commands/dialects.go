package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlforge/internal/config"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects [name]",
		Short: "List supported SQL dialects",
		Long: `List the registered dialects with their quoting, paging and keyword rules.

With a dialect name, show the operators, set operators, join types and
connectors that dialect accepts.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return DialectNames(false), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			mode := outputMode(cmd.OutOrStdout(), cfg.Output)
			if len(args) == 1 {
				d, err := dialect.Lookup(args[0])
				if err != nil {
					return err
				}
				return showDialect(cmd, d, mode)
			}
			return listDialects(cmd, mode)
		},
	}
}

func listDialects(cmd *cobra.Command, mode string) error {
	var rows [][]any
	for _, name := range dialect.List() {
		d, _ := dialect.Get(name)
		version := d.KeywordVersion
		if version == "" {
			version = "latest"
		}
		count := 0
		if kw, err := d.Keywords(); err == nil {
			count = kw.Len()
		}
		rows = append(rows, []any{
			d.Name,
			d.Identifiers.Quote + d.Identifiers.QuoteEnd,
			d.Paging.String(),
			d.SupportsNullsOrdering,
			version,
			count,
		})
	}
	return renderRows(cmd.OutOrStdout(), mode,
		[]string{"name", "quote", "paging", "nulls", "keywords", "reserved"}, rows)
}

func showDialect(cmd *cobra.Command, d *dialect.Dialect, mode string) error {
	title := cases.Title(language.English).String(d.Name)
	if mode != config.OutputJSON {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s dialect\n\n", title)
	}

	rows := [][]any{
		{"operators", joinValues(d.Operators())},
		{"set operators", joinValues(d.SetOperators())},
		{"join types", joinValues(d.JoinTypes())},
		{"connectors", joinValues(d.Connectors())},
		{"identifier quote", d.Identifiers.Quote + d.Identifiers.QuoteEnd},
		{"table alias AS", d.TableAliasAs},
		{"nulls ordering", d.SupportsNullsOrdering},
		{"paging", d.Paging.String()},
	}
	return renderRows(cmd.OutOrStdout(), mode, []string{"rule", "value"}, rows)
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
