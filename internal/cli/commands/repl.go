package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/sqlforge/internal/config"
	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
	"github.com/leapstack-labs/sqlforge/pkg/lexer"
	"github.com/leapstack-labs/sqlforge/pkg/prepare"
	"github.com/leapstack-labs/sqlforge/pkg/token"
	"github.com/spf13/cobra"
)

const (
	replPrompt     = "sqlforge> "
	replContinuing = "     ...> "
)

// NewReplCommand creates the interactive shell command.
func NewReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive SQL tokenizer and runner",
		Long: `Start an interactive shell. Each statement ending in ";" is tokenized with
the current dialect and its tokens are printed. With .run on, statements
are sent to the configured connection instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			d, err := singleDialect(cfg)
			if err != nil {
				return err
			}
			s := &replSession{
				cfg:     cfg,
				logger:  config.GetLogger(cmd.Context()),
				dialect: d,
				out:     cmd.OutOrStdout(),
				errOut:  cmd.ErrOrStderr(),
				mode:    outputMode(cmd.OutOrStdout(), cfg.Output),
			}
			defer s.close()
			return s.run(cmd.Context())
		},
	}
}

// replSession holds the state of one interactive shell.
type replSession struct {
	cfg     *config.Config
	logger  *slog.Logger
	dialect *dialect.Dialect
	out     io.Writer
	errOut  io.Writer
	mode    string

	execute bool
	conn    adapter.Connection
	buffer  strings.Builder
}

func (s *replSession) run(ctx context.Context) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     s.cfg.History,
		AutoComplete:    newReplCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(s.out, "sqlforge shell (dialect: %s)\n", s.dialect.Name)
	_, _ = fmt.Fprintln(s.out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(s.out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			s.buffer.Reset()
			rl.SetPrompt(replPrompt)
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if s.handleLine(ctx, line) {
			return nil
		}
		rl.SetPrompt(s.prompt())
	}
}

func (s *replSession) prompt() string {
	if s.buffer.Len() > 0 {
		return replContinuing
	}
	return replPrompt
}

// handleLine processes one input line and reports whether the shell should exit.
func (s *replSession) handleLine(ctx context.Context, line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	if s.buffer.Len() == 0 && strings.HasPrefix(line, ".") {
		return s.dotCommand(ctx, line)
	}

	s.buffer.WriteString(line)
	if !strings.HasSuffix(line, ";") {
		s.buffer.WriteString("\n")
		return false
	}
	sql := s.buffer.String()
	s.buffer.Reset()

	if err := s.statement(ctx, sql); err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
	}
	return false
}

func (s *replSession) statement(ctx context.Context, sql string) error {
	if !s.execute {
		stream := lexer.Tokenize(sql, s.dialect)
		return renderTokens(s.out, s.mode, stream.Filter(token.Whitespace))
	}
	conn, err := s.connection(ctx)
	if err != nil {
		return err
	}
	rs, err := conn.Query(ctx, sql)
	if err != nil {
		return err
	}
	return renderResults(s.out, s.mode, rs)
}

func (s *replSession) connection(ctx context.Context) (adapter.Connection, error) {
	if s.conn != nil {
		return s.conn, nil
	}
	conn, err := openConnection(ctx, s.cfg, s.logger)
	if err != nil {
		return nil, err
	}
	s.conn = conn
	return conn, nil
}

func (s *replSession) close() {
	if s.conn != nil {
		_ = s.conn.Close()
		s.conn = nil
	}
}

func (s *replSession) dotCommand(ctx context.Context, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])
	args := parts[1:]

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".dialect":
		if len(args) == 0 {
			_, _ = fmt.Fprintln(s.out, s.dialect.Name)
			break
		}
		d, err := dialect.Lookup(args[0])
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			break
		}
		s.dialect = d
		_, _ = fmt.Fprintf(s.out, "dialect: %s\n", d.Name)

	case ".keywords":
		for _, w := range args {
			_, _ = fmt.Fprintf(s.out, "%s: %t\n", strings.ToUpper(w), s.dialect.IsKeyword(w))
		}

	case ".quote":
		if len(args) < 2 {
			_, _ = fmt.Fprintln(s.errOut, "Usage: .quote <identifier|alias|wildcard|value> <text>")
			break
		}
		render, ok := quoteKinds[args[0]]
		if !ok {
			_, _ = fmt.Fprintf(s.errOut, "Error: unknown quote kind %q\n", args[0])
			break
		}
		out, err := render(prepare.New(s.dialect), strings.Join(args[1:], " "), "")
		if err != nil {
			_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
			break
		}
		_, _ = fmt.Fprintln(s.out, out)

	case ".run":
		if len(args) == 1 {
			s.execute = strings.EqualFold(args[0], "on")
		} else {
			s.execute = !s.execute
		}
		if s.execute {
			if _, err := s.connection(ctx); err != nil {
				_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
				s.execute = false
			}
		}
		_, _ = fmt.Fprintf(s.out, "run: %t\n", s.execute)

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help                  Show this help message
  .dialect [name]        Show or switch the dialect
  .keywords <word...>    Check words against the reserved keywords
  .quote <kind> <text>   Quote text as identifier, alias, wildcard or value
  .run [on|off]          Send statements to the configured connection
  .quit / .exit          Exit the shell

Tips:
  - Statements must end with a semicolon (;)
  - Use arrow keys to navigate history
`
	_, _ = fmt.Fprintln(w, help)
}

func newReplCompleter() *readline.PrefixCompleter {
	var dialects []readline.PrefixCompleterInterface
	for _, name := range dialect.List() {
		dialects = append(dialects, readline.PcItem(name))
	}
	var kinds []readline.PrefixCompleterInterface
	for _, k := range []string{"identifier", "alias", "wildcard", "value"} {
		kinds = append(kinds, readline.PcItem(k))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem(".help"),
		readline.PcItem(".dialect", dialects...),
		readline.PcItem(".keywords"),
		readline.PcItem(".quote", kinds...),
		readline.PcItem(".run", readline.PcItem("on"), readline.PcItem("off")),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
