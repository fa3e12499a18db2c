package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/leapstack-labs/sqlforge/internal/config"
	"github.com/leapstack-labs/sqlforge/pkg/lexer"
	"github.com/leapstack-labs/sqlforge/pkg/token"
	"github.com/spf13/cobra"
)

// NewTokenizeCommand creates the tokenize command.
func NewTokenizeCommand() *cobra.Command {
	var (
		sqlText      string
		noWhitespace bool
	)

	cmd := &cobra.Command{
		Use:   "tokenize [file]",
		Short: "Split SQL text into classified tokens",
		Long: `Tokenize SQL and print each token with its kind and position.

The input is read from --sql, from a file argument, or from stdin when the
argument is "-". Keywords are classified with the selected dialect's
reserved word list.`,
		Example: `  sqlforge tokenize --sql "SELECT * FROM t WHERE a = 'x'"
  sqlforge tokenize -d mysql query.sql --no-whitespace
  cat query.sql | sqlforge tokenize - -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			d, err := singleDialect(cfg)
			if err != nil {
				return err
			}

			input, err := readInput(cmd, sqlText, args)
			if err != nil {
				return err
			}

			stream := lexer.Tokenize(input, d)
			var tokens []token.Token
			if noWhitespace {
				tokens = stream.Filter(token.Whitespace)
			} else {
				tokens = stream.Tokens()
			}

			config.GetLogger(cmd.Context()).Debug("tokenized input",
				"dialect", d.Name, "tokens", stream.Len(), "shown", len(tokens))

			return renderTokens(cmd.OutOrStdout(), outputMode(cmd.OutOrStdout(), cfg.Output), tokens)
		},
	}

	cmd.Flags().StringVar(&sqlText, "sql", "", "SQL text to tokenize")
	cmd.Flags().BoolVar(&noWhitespace, "no-whitespace", false, "Omit whitespace and comment tokens")

	return cmd
}

func readInput(cmd *cobra.Command, sqlText string, args []string) (string, error) {
	switch {
	case sqlText != "":
		return sqlText, nil
	case len(args) == 0:
		return "", fmt.Errorf("no input\nHint: pass --sql, a file, or - for stdin")
	case args[0] == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
}

func renderTokens(w io.Writer, mode string, tokens []token.Token) error {
	rows := make([][]any, len(tokens))
	for i, tok := range tokens {
		rows[i] = []any{tok.Kind.String(), tok.Lexeme, tok.Pos.Line, tok.Pos.Column}
	}
	return renderRows(w, mode, []string{"kind", "lexeme", "line", "column"}, rows)
}
