package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leapstack-labs/sqlforge/internal/config"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
	"github.com/leapstack-labs/sqlforge/pkg/query"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// selectOptions holds the flags of the select command in build order.
type selectOptions struct {
	from     string
	alias    string
	columns  []string
	distinct bool
	joins    []string
	where    []string
	groupBy  []string
	having   []string
	orders   []string
	limit    int
	offset   int
	combine  []string

	limitSet     bool
	offsetSet    bool
	noTerminator bool
	execute      bool
}

// NewSelectCommand creates the select command.
func NewSelectCommand() *cobra.Command {
	opts := &selectOptions{}

	cmd := &cobra.Command{
		Use:   "select",
		Short: "Assemble a SELECT statement",
		Long: `Assemble a SELECT statement for the selected dialect from flags.

Conditions are written as "[AND|OR|XOR] <column> <operator> <value>".
Values NULL, TRUE, FALSE and numbers are typed; 'quoted' text and bare words
are strings. A condition of "(" or ")" opens or closes a group. BETWEEN
takes "a AND b", IN takes a comma separated list.

Use --dialect all to render the statement in every dialect, or --execute to
run it against the configured connection.`,
		Example: `  sqlforge select --from users --column id --column name:n --where "age >= 18" --limit 10
  sqlforge select -d all --from orders --where "status IN paid,shipped" --order created_at:desc
  sqlforge select --from users --alias u --join "LEFT orders o ON u.id = o.user_id" --group-by u.id
  sqlforge select --from users --execute --db-type sqlite --db-path app.db`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.limitSet = cmd.Flags().Changed("limit")
			opts.offsetSet = cmd.Flags().Changed("offset")

			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())

			if opts.execute {
				return runSelectQuery(cmd, cfg, logger, opts)
			}

			dialects, err := resolveDialects(cfg)
			if err != nil {
				return err
			}
			statements, err := renderSelect(dialects, opts, cfg.Pretty)
			if err != nil {
				return err
			}
			writeStatements(cmd.OutOrStdout(), dialects, statements, cfg.Pretty)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.from, "from", "", "Table or sub-select to select from")
	f.StringVar(&opts.alias, "alias", "", "Alias of the FROM table")
	f.StringArrayVar(&opts.columns, "column", nil, "Column as expr[:alias], repeatable (default: *)")
	f.BoolVar(&opts.distinct, "distinct", false, "Select DISTINCT rows")
	f.StringArrayVar(&opts.joins, "join", nil, `Join as "[TYPE] table [alias] [ON a = b | USING col]", repeatable`)
	f.StringArrayVarP(&opts.where, "where", "w", nil, "WHERE condition, repeatable")
	f.StringSliceVar(&opts.groupBy, "group-by", nil, "GROUP BY columns")
	f.StringArrayVar(&opts.having, "having", nil, "HAVING condition, repeatable (requires --group-by)")
	f.StringArrayVar(&opts.orders, "order", nil, "ORDER BY as column[:asc|desc[:first|last]], repeatable")
	f.IntVar(&opts.limit, "limit", 0, "Maximum number of rows")
	f.IntVar(&opts.offset, "offset", 0, "Number of rows to skip")
	f.StringArrayVar(&opts.combine, "combine", nil, `Set operation as "UNION ALL SELECT ...", repeatable`)
	f.BoolVar(&opts.noTerminator, "no-terminator", false, "Omit the trailing semicolon")
	f.BoolVarP(&opts.execute, "execute", "x", false, "Run the statement against the configured connection")

	return cmd
}

// renderSelect builds the statement once per dialect. Each dialect gets its
// own builder, so the builds run concurrently.
func renderSelect(dialects []*dialect.Dialect, opts *selectOptions, pretty bool) ([]string, error) {
	out := make([]string, len(dialects))
	var g errgroup.Group
	for i, d := range dialects {
		g.Go(func() error {
			q := query.New(d)
			if err := opts.build(q); err != nil {
				return fmt.Errorf("%s: %w", d.Name, err)
			}
			if pretty {
				out[i] = q.Pretty(!opts.noTerminator)
			} else {
				out[i] = q.Statement(!opts.noTerminator)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func writeStatements(w io.Writer, dialects []*dialect.Dialect, statements []string, pretty bool) {
	if len(statements) == 1 {
		_, _ = fmt.Fprintln(w, strings.TrimRight(statements[0], "\n"))
		return
	}
	for i, d := range dialects {
		_, _ = fmt.Fprintf(w, "-- %s\n%s\n", d.Name, strings.TrimRight(statements[i], "\n"))
		if pretty && i < len(dialects)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}
}

func runSelectQuery(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger, opts *selectOptions) error {
	if cfg.Dialect == config.AllDialects {
		return fmt.Errorf("--execute needs a single dialect")
	}
	ctx := cmd.Context()
	conn, err := openConnection(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	q := query.New(conn.Dialect(), query.WithConnection(conn), query.WithLogger(logger))
	if err := opts.build(q); err != nil {
		return err
	}
	rs, err := q.Query(ctx)
	if err != nil {
		return err
	}
	return renderResults(cmd.OutOrStdout(), outputMode(cmd.OutOrStdout(), cfg.Output), rs)
}

// build applies the options to q in clause order.
func (o *selectOptions) build(q *query.Select) error {
	q.Distinct(o.distinct)

	for _, c := range o.columns {
		expr, alias, _ := strings.Cut(c, ":")
		if err := q.Column(expr, alias); err != nil {
			return err
		}
	}

	if o.from != "" {
		if err := q.From(o.from, o.alias); err != nil {
			return err
		}
	}

	for _, s := range o.joins {
		j, err := parseJoin(s)
		if err != nil {
			return err
		}
		if err := q.Join(j.joinType, j.table, j.alias); err != nil {
			return err
		}
		for _, on := range j.on {
			if err := q.On(on[0], on[1], on[2]); err != nil {
				return err
			}
		}
		for _, col := range j.using {
			if err := q.Using(col); err != nil {
				return err
			}
		}
	}

	if err := applyConditions(o.where, q.Where, q.WhereBlock); err != nil {
		return err
	}

	if len(o.groupBy) > 0 {
		cols := make([]any, len(o.groupBy))
		for i, c := range o.groupBy {
			cols[i] = c
		}
		if err := q.GroupBy(cols...); err != nil {
			return err
		}
	}

	if err := applyConditions(o.having, q.Having, q.HavingBlock); err != nil {
		return err
	}

	for _, s := range o.orders {
		col, dir, nulls := parseOrder(s)
		if err := q.OrderBy(col, dir, nulls); err != nil {
			return err
		}
	}

	if o.limitSet {
		q.Limit(o.limit)
	}
	if o.offsetSet {
		q.Offset(o.offset)
	}

	for _, s := range o.combine {
		op, stmt, err := parseCombine(s)
		if err != nil {
			return err
		}
		if err := q.Combine(op, stmt); err != nil {
			return err
		}
	}
	return nil
}

type (
	predicateFunc func(col any, op string, value any, connector ...string) error
	blockFunc     func(paren string, connector ...string) error
)

func applyConditions(conds []string, add predicateFunc, block blockFunc) error {
	for _, s := range conds {
		c, err := parseCondition(s)
		if err != nil {
			return err
		}
		var connector []string
		if c.connector != "" {
			connector = []string{c.connector}
		}
		if c.paren != "" {
			err = block(c.paren, connector...)
		} else {
			err = add(c.column, c.op, c.value, connector...)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
