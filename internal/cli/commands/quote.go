package commands

import (
	"fmt"

	"github.com/leapstack-labs/sqlforge/internal/config"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
	"github.com/leapstack-labs/sqlforge/pkg/prepare"
	"github.com/spf13/cobra"
)

// quoteKinds maps a quote kind to the preparer operation that renders it.
var quoteKinds = map[string]func(p *prepare.Preparer, text, escape string) (string, error){
	"identifier": func(p *prepare.Preparer, text, _ string) (string, error) { return p.Identifier(text) },
	"alias":      func(p *prepare.Preparer, text, _ string) (string, error) { return p.Alias(text) },
	"wildcard":   func(p *prepare.Preparer, text, _ string) (string, error) { return p.Wildcard(text) },
	"value":      func(p *prepare.Preparer, text, escape string) (string, error) { return p.Value(text, escape) },
}

// NewQuoteCommand creates the quote command.
func NewQuoteCommand() *cobra.Command {
	var escape string

	cmd := &cobra.Command{
		Use:   "quote <identifier|alias|wildcard|value> <text>",
		Short: "Quote text the way the assembler would",
		Long: `Render text as an identifier, alias, wildcard or string value in the
selected dialect. Use --dialect all to compare every dialect.`,
		Example: `  sqlforge quote identifier users.name -d mssql
  sqlforge quote value "O'Brien" -d all
  sqlforge quote value "50%" --escape '\'`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"identifier", "alias", "wildcard", "value"},
		RunE: func(cmd *cobra.Command, args []string) error {
			render, ok := quoteKinds[args[0]]
			if !ok {
				return fmt.Errorf("unknown quote kind %q\nHint: use identifier, alias, wildcard or value", args[0])
			}
			cfg := config.FromContext(cmd.Context())
			dialects, err := resolveDialects(cfg)
			if err != nil {
				return err
			}

			if len(dialects) == 1 {
				out, err := render(prepare.New(dialects[0]), args[1], escape)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			rows, err := quoteAll(dialects, render, args[1], escape)
			if err != nil {
				return err
			}
			return renderRows(cmd.OutOrStdout(), outputMode(cmd.OutOrStdout(), cfg.Output),
				[]string{"dialect", args[0]}, rows)
		},
	}

	cmd.Flags().StringVar(&escape, "escape", "", "Escape character appended to string values")

	return cmd
}

func quoteAll(dialects []*dialect.Dialect, render func(*prepare.Preparer, string, string) (string, error), text, escape string) ([][]any, error) {
	rows := make([][]any, 0, len(dialects))
	for _, d := range dialects {
		out, err := render(prepare.New(d), text, escape)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.Name, err)
		}
		rows = append(rows, []any{d.Name, out})
	}
	return rows, nil
}
