package commands

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/sqlforge/internal/config"
	"github.com/leapstack-labs/sqlforge/pkg/keywords"
	"github.com/spf13/cobra"
)

// NewKeywordsCommand creates the keywords command.
func NewKeywordsCommand() *cobra.Command {
	var (
		list    bool
		version string
	)

	cmd := &cobra.Command{
		Use:   "keywords [word...]",
		Short: "Check words against a dialect's reserved keywords",
		Long: `Report whether each word is a reserved keyword in the selected dialect.

With --list, print every reserved word of the dialect instead. Use
--dialect all to check the words against every dialect.`,
		Example: `  sqlforge keywords -d postgres user order name
  sqlforge keywords -d mysql --list --version 5.7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			mode := outputMode(cmd.OutOrStdout(), cfg.Output)

			dialects, err := resolveDialects(cfg)
			if err != nil {
				return err
			}

			if list {
				if len(dialects) != 1 {
					return fmt.Errorf("--list needs a single dialect")
				}
				d := dialects[0]
				v := version
				if v == "" {
					v = d.KeywordVersion
				}
				set, err := keywords.Load(d.Name, v)
				if err != nil {
					return err
				}
				for _, w := range set.Words() {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), w)
				}
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("no words given\nHint: pass words to check or use --list")
			}

			header := []string{"word"}
			for _, d := range dialects {
				header = append(header, d.Name)
			}
			rows := make([][]any, 0, len(args))
			for _, word := range args {
				row := []any{strings.ToUpper(word)}
				for _, d := range dialects {
					row = append(row, d.IsKeyword(word))
				}
				rows = append(rows, row)
			}
			return renderRows(cmd.OutOrStdout(), mode, header, rows)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "List all reserved words of the dialect")
	cmd.Flags().StringVar(&version, "version", "", "Keyword list version (default: the dialect's configured version)")

	return cmd
}
