// Package format renders a core.SelectDocument as SQL text.
package format

import (
	"bytes"
	"strings"

	"github.com/leapstack-labs/sqlforge/pkg/dialect"
)

const indentSize = 2

// Printer accumulates rendered SQL. In compact mode clauses are separated by
// single spaces; in pretty mode each clause starts a line and list items are
// indented beneath it.
type Printer struct {
	dialect     *dialect.Dialect
	output      *bytes.Buffer
	pretty      bool
	depth       int
	atLineStart bool
}

func newPrinter(d *dialect.Dialect, pretty bool) *Printer {
	return &Printer{
		dialect:     d,
		output:      &bytes.Buffer{},
		pretty:      pretty,
		atLineStart: true,
	}
}

// String returns the formatted output.
func (p *Printer) String() string {
	if p.pretty {
		return strings.TrimRight(p.output.String(), "\n") + "\n"
	}
	return p.output.String()
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) indent() {
	p.depth++
}

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) space() {
	p.output.WriteByte(' ')
}

// clause starts a new clause introduced by keyword.
func (p *Printer) clause(keyword string) {
	if p.output.Len() > 0 {
		if p.pretty {
			p.writeln()
		} else {
			p.space()
		}
	}
	p.write(keyword)
}

// inline writes s on the same line as the clause keyword.
func (p *Printer) inline(s string) {
	p.space()
	p.write(s)
}

// block writes s beneath the clause keyword in pretty mode, inline otherwise.
func (p *Printer) block(s string) {
	if !p.pretty {
		p.inline(s)
		return
	}
	p.indent()
	p.writeln()
	p.write(s)
	p.dedent()
}

// list writes items comma-separated after the clause keyword.
func (p *Printer) list(items []string) {
	if !p.pretty {
		p.space()
		p.formatList(len(items), func(i int) { p.write(items[i]) }, ", ", false)
		return
	}
	p.indent()
	p.writeln()
	p.formatList(len(items), func(i int) { p.write(items[i]) }, ",", true)
	p.dedent()
}

// formatList prints a list of items with separators.
// count is the number of items, format is called for each index,
// sep is the separator string, multiline adds newlines after separators.
func (p *Printer) formatList(count int, format func(i int), sep string, multiline bool) {
	for i := 0; i < count; i++ {
		format(i)
		if i < count-1 {
			p.write(sep)
			if multiline {
				p.writeln()
			}
		}
	}
}
