package report

import (
	"fmt"
	"io"
	"strings"

	"confession-stats/internal/grid"
)

var rule = strings.Repeat("=", 80)

// SampleOptions controls the sample data report.
type SampleOptions struct {
	Rows  int // data rows to show
	Width int // characters kept per value before "..."
}

// Headers prints the label and header text of every column in row 1.
func Headers(w io.Writer, g *grid.Grid) error {
	p := &printer{w: w}
	p.banner("COLUMN STRUCTURE OF YOUR CONFESSIONS SHEET")

	if g.MaxRow() > 0 {
		for idx := 1; idx <= g.MaxColumn(); idx++ {
			label, err := grid.Label(idx)
			if err != nil {
				return err
			}
			p.printf("Column %s (#%d): %s\n", label, idx, g.Header(idx))
		}
	}
	return p.err
}

// Samples prints the non-blank cells of the first opts.Rows data rows,
// followed by the total number of data rows.
func Samples(w io.Writer, g *grid.Grid, opts SampleOptions) error {
	p := &printer{w: w}
	p.printf("\n")
	p.banner(fmt.Sprintf("SAMPLE DATA FROM FIRST %d CONFESSIONS", opts.Rows))

	shown := min(opts.Rows, g.DataRows())
	for n := 1; n <= shown; n++ {
		row := n + 1
		p.printf("\n--- Row %d ---\n", n)
		for idx := 1; idx <= g.MaxColumn(); idx++ {
			value := g.Cell(row, idx)
			if !grid.Present(value) {
				continue
			}
			label, err := grid.Label(idx)
			if err != nil {
				return err
			}
			p.printf("  %s. %s: %s\n", label, g.Header(idx), grid.Truncate(value, opts.Width))
		}
	}

	p.printf("\n%s\n", rule)
	p.printf("Total rows with data: %d\n", g.DataRows())
	p.printf("%s\n", rule)
	return p.err
}

// printer keeps the first write error so report code can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) banner(title string) {
	p.printf("%s\n%s\n%s\n", rule, title, rule)
}
