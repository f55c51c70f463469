package report

import (
	"errors"
	"fmt"
	"io"

	"confession-stats/internal/grid"
	"confession-stats/internal/logger"
)

// ErrNoDataRows is returned when fill percentages are requested for a
// sheet that has no rows below the header.
var ErrNoDataRows = errors.New("sheet has no data rows")

// ContentOptions controls sample capture in the content analysis.
type ContentOptions struct {
	Samples int // samples captured per column
	Width   int // characters kept per sample before "..."
}

// Progress receives the number of cells scanned. *ui.ProgressBar satisfies it.
type Progress interface {
	Add(n int) error
}

// ColumnStats is the fill summary of one selected column.
type ColumnStats struct {
	Column     grid.Column
	Header     string
	NonEmpty   int
	Total      int
	Percentage float64
	Samples    []string
}

// AnalyzeColumns counts non-blank cells of each selected column across all
// data rows and captures the first few values in row order.
// progress may be nil.
func AnalyzeColumns(g *grid.Grid, cols []grid.Column, opts ContentOptions, progress Progress) ([]ColumnStats, error) {
	total := g.DataRows()
	if total == 0 {
		return nil, ErrNoDataRows
	}

	stats := make([]ColumnStats, 0, len(cols))
	for _, col := range cols {
		if col.Index < 1 {
			return nil, fmt.Errorf("column %s: invalid index %d", col.Label, col.Index)
		}

		s := ColumnStats{
			Column: col,
			Header: g.Header(col.Index),
			Total:  total,
		}
		for row := 2; row <= g.MaxRow(); row++ {
			value := g.Cell(row, col.Index)
			if !grid.Present(value) {
				continue
			}
			s.NonEmpty++
			if len(s.Samples) < opts.Samples {
				s.Samples = append(s.Samples, grid.Abbreviate(value, opts.Width))
			}
		}
		s.Percentage = float64(s.NonEmpty) / float64(total) * 100

		logger.Debug("Column %s: %d / %d non-empty", col.Label, s.NonEmpty, total)
		if progress != nil {
			if err := progress.Add(total); err != nil {
				logger.Debug("Progress update failed: %v", err)
			}
		}
		stats = append(stats, s)
	}

	return stats, nil
}

// Content prints the per-column fill summary and the closing
// recommendation block.
func Content(w io.Writer, stats []ColumnStats) error {
	p := &printer{w: w}
	p.banner("CONTENT ANALYSIS - Which columns have confession data?")

	for _, s := range stats {
		p.printf("\nColumn %s: %s\n", s.Column.Label, s.Header)
		p.printf("  - Non-empty entries: %d / %d\n", s.NonEmpty, s.Total)
		p.printf("  - Percentage: %.1f%%\n", s.Percentage)
		for i, sample := range s.Samples {
			p.printf("  - Sample %d: %s\n", i+1, sample)
		}
	}

	p.printf("\n")
	p.banner("RECOMMENDATION FOR DATA EXTRACTION")
	p.printf("Based on the analysis above, we should combine text from:\n")
	p.printf("- Columns with >50%% data for comprehensive analysis\n")
	p.printf("- This gives us the most complete picture of student confessions\n")
	return p.err
}
