package grid

import (
	"errors"
	"fmt"
	"os"

	"confession-stats/internal/logger"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ErrFileNotFound indicates the workbook does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidWorkbook indicates the file could not be read as a workbook.
var ErrInvalidWorkbook = errors.New("invalid workbook")

// Load reads one worksheet of the workbook at path into a Grid.
// An empty sheet name selects the active sheet.
// The workbook is closed before Load returns.
func Load(path, sheet string) (*Grid, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(resolved)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidWorkbook, resolved, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = activeSheet(f)
	}
	logger.Debug("Reading sheet %q from %s", sheet, resolved)

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	for _, row := range rows {
		for i, cell := range row {
			row[i] = norm.NFC.String(cell)
		}
	}

	g := New(rows)
	g.Sheet = sheet
	return g, nil
}

// ResolvePath returns the path as it exists on disk. Names with diacritics
// may be stored composed (NFC) or decomposed (NFD) depending on the
// filesystem, so both forms are tried after the literal path.
func ResolvePath(path string) (string, error) {
	candidates := []string{path, norm.NFC.String(path), norm.NFD.String(path)}
	for _, candidate := range candidates {
		info, err := os.Stat(candidate)
		if err != nil {
			continue
		}
		if info.IsDir() {
			return "", fmt.Errorf("%w: %s is a directory", ErrInvalidWorkbook, candidate)
		}
		if candidate != path {
			logger.Debug("Resolved %q to its normalized form on disk", path)
		}
		return candidate, nil
	}
	return "", fmt.Errorf("%w: %s", ErrFileNotFound, path)
}

// activeSheet returns the sheet the workbook was saved with selected,
// falling back to the first sheet.
func activeSheet(f *excelize.File) string {
	if name := f.GetSheetName(f.GetActiveSheetIndex()); name != "" {
		return name
	}
	if list := f.GetSheetList(); len(list) > 0 {
		return list[0]
	}
	return "Sheet1"
}
