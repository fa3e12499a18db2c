package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/sqlforge/internal/config"
	"github.com/leapstack-labs/sqlforge/pkg/adapter"
	"golang.org/x/term"
)

// outputMode resolves "auto" to a table on terminals and plain text elsewhere.
func outputMode(w io.Writer, mode string) string {
	if mode != config.OutputAuto && mode != "" {
		return mode
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return config.OutputTable
	}
	return config.OutputPlain
}

// plainStyle renders aligned columns without borders.
var plainStyle = func() table.Style {
	s := table.StyleDefault
	s.Name = "plain"
	s.Options = table.Options{}
	s.Box.PaddingLeft = ""
	s.Box.PaddingRight = "  "
	return s
}()

// renderRows writes header and rows in the given output mode.
func renderRows(w io.Writer, mode string, header []string, rows [][]any) error {
	if mode == config.OutputJSON {
		records := make([]map[string]any, len(rows))
		for i, row := range rows {
			rec := make(map[string]any, len(header))
			for j, col := range header {
				rec[col] = row[j]
			}
			records[i] = rec
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)

	headerRow := make(table.Row, len(header))
	for i, col := range header {
		headerRow[i] = col
	}
	t.AppendHeader(headerRow)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = formatValue(v)
		}
		t.AppendRow(r)
	}

	style := table.StyleLight
	switch mode {
	case config.OutputMarkdown:
		style = table.StyleDefault
	case config.OutputPlain:
		style = plainStyle
	}
	// Column names are shown as the database returned them.
	style.Format.Header = text.FormatDefault
	t.SetStyle(style)

	if mode == config.OutputMarkdown {
		t.RenderMarkdown()
	} else {
		t.Render()
	}
	return nil
}

// renderResults writes a query result followed by its row count.
func renderResults(w io.Writer, mode string, rs *adapter.ResultSet) error {
	if rs.Count() == 0 && mode != config.OutputJSON {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}
	rows := make([][]any, 0, rs.Count())
	for _, rec := range rs.Records() {
		rows = append(rows, rec.Values)
	}
	if err := renderRows(w, mode, rs.Columns(), rows); err != nil {
		return err
	}
	if mode != config.OutputJSON {
		_, _ = fmt.Fprintf(w, "(%d rows)\n", rs.Count())
	}
	return nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case time.Time:
		return val.Format(time.RFC3339)
	case []byte:
		return string(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}
