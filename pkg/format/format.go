package format

import (
	"strconv"
	"strings"

	"github.com/leapstack-labs/sqlforge/pkg/core"
	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

// Select renders doc on one line in the fixed clause order of a SELECT
// statement, followed by ";" when terminated is set.
func Select(doc *core.SelectDocument, d *dialect.Dialect, terminated bool) string {
	p := newPrinter(d, false)
	p.formatSelect(doc, terminated)
	return p.String()
}

// Pretty renders doc one clause per line with indented lists.
func Pretty(doc *core.SelectDocument, d *dialect.Dialect, terminated bool) string {
	p := newPrinter(d, true)
	p.formatSelect(doc, terminated)
	return p.String()
}

func (p *Printer) formatSelect(doc *core.SelectDocument, terminated bool) {
	keyword := "SELECT"
	if doc.Distinct {
		keyword += " DISTINCT"
	}
	p.clause(keyword)
	if len(doc.Columns) > 0 {
		p.list(doc.Columns)
	} else {
		wildcard := doc.Wildcard
		if wildcard == "" {
			wildcard = core.DefaultWildcard
		}
		p.block(wildcard)
	}

	if doc.From != "" {
		p.clause("FROM")
		p.inline(doc.From)
	}

	for i := range doc.Joins {
		p.clause(joinText(&doc.Joins[i]))
	}

	if len(doc.Where) > 0 {
		p.clause("WHERE")
		p.block(Predicates(doc.Where))
	}

	if len(doc.GroupBy) > 0 {
		p.clause("GROUP BY")
		p.list(doc.GroupBy)
	}

	if len(doc.Having) > 0 {
		p.clause("HAVING")
		p.block(Predicates(doc.Having))
	}

	if len(doc.OrderBy) > 0 {
		p.clause("ORDER BY")
		p.list(doc.OrderBy)
	} else if p.pagingNeedsOrder(doc.Limit, doc.Offset) {
		p.clause("ORDER BY")
		p.block(unorderedPaging)
	}

	p.formatPaging(doc.Limit, doc.Offset)

	for _, c := range doc.Combine {
		p.clause(string(c.Operator))
		if p.pretty {
			p.writeln()
			p.write(c.Statement)
		} else {
			p.inline(c.Statement)
		}
	}

	if terminated {
		p.write(";")
	}
}

// unorderedPaging satisfies dialects that reject OFFSET/FETCH without ORDER BY.
const unorderedPaging = "(SELECT NULL)"

func (p *Printer) pagingNeedsOrder(limit, offset int) bool {
	return p.dialect != nil && p.dialect.PagingRequiresOrder && (limit > 0 || offset > 0)
}

// formatPaging writes LIMIT/OFFSET in the dialect's spelling.
func (p *Printer) formatPaging(limit, offset int) {
	if p.dialect != nil && p.dialect.Paging == core.PagingOffsetFetch {
		if limit <= 0 && offset <= 0 {
			return
		}
		p.clause("OFFSET")
		p.inline(strconv.Itoa(offset) + " ROWS")
		if limit > 0 {
			p.clause("FETCH NEXT")
			p.inline(strconv.Itoa(limit) + " ROWS ONLY")
		}
		return
	}
	if limit > 0 {
		p.clause("LIMIT")
		p.inline(strconv.Itoa(limit))
	}
	if offset > 0 {
		p.clause("OFFSET")
		p.inline(strconv.Itoa(offset))
	}
}

// joinText renders one JOIN clause with its constraint.
func joinText(j *core.Join) string {
	switch {
	case len(j.On) > 0:
		return j.Clause + " ON " + strings.Join(j.On, " AND ")
	case len(j.Using) > 0:
		return j.Clause + " USING (" + strings.Join(j.Using, ", ") + ")"
	default:
		return j.Clause
	}
}

// Predicates renders a WHERE or HAVING list. The connector is omitted
// before the first predicate, right after an opening parenthesis and before
// a closing one. Groups are not padded: a OR (b OR c).
func Predicates(preds []core.Predicate) string {
	var b strings.Builder
	afterOpen := false
	for i, pred := range preds {
		closing := pred.Paren && pred.Fragment == string(core.ParenClose)
		if i > 0 && !closing && !afterOpen {
			b.WriteByte(' ')
			b.WriteString(string(pred.Connector))
			b.WriteByte(' ')
		}
		b.WriteString(pred.Fragment)
		afterOpen = pred.Paren && pred.Fragment == string(core.ParenOpen)
	}
	return b.String()
}
