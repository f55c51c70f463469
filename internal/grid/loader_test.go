package grid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

func TestLoadActiveSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "Ignored")

	idx, err := f.NewSheet("Responses")
	if err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}
	f.SetCellValue("Responses", "A1", "Timestamp")
	f.SetCellValue("Responses", "B1", "Name")
	f.SetCellValue("Responses", "C1", "Confession")
	f.SetCellValue("Responses", "A2", "t1")
	f.SetCellValue("Responses", "B2", 100)
	f.SetCellValue("Responses", "C2", "Tôi thích bạn")
	f.SetCellValue("Responses", "A3", "t2")
	f.SetActiveSheet(idx)

	path := filepath.Join(t.TempDir(), "responses.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	g, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if g.Sheet != "Responses" {
		t.Errorf("Loaded sheet %q, expected the active sheet", g.Sheet)
	}
	if g.MaxRow() != 3 {
		t.Errorf("MaxRow() = %d, expected 3", g.MaxRow())
	}
	if g.MaxColumn() != 3 {
		t.Errorf("MaxColumn() = %d, expected 3", g.MaxColumn())
	}
	if g.Cell(2, 2) != "100" {
		t.Errorf("Numeric cell = %q, expected display text \"100\"", g.Cell(2, 2))
	}
	if g.Cell(2, 3) != "Tôi thích bạn" {
		t.Errorf("Text cell = %q", g.Cell(2, 3))
	}

	named, err := Load(path, "Sheet1")
	if err != nil {
		t.Fatalf("Load by name failed: %v", err)
	}
	if named.Header(1) != "Ignored" {
		t.Errorf("Header(1) = %q, expected Sheet1 content", named.Header(1))
	}
}

func TestLoadMissingSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	if _, err := Load(path, "Nope"); err == nil {
		t.Error("Expected error for unknown sheet")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestLoadInvalidWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	if err := os.WriteFile(path, []byte("not a workbook"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	_, err := Load(path, "")
	if !errors.Is(err, ErrInvalidWorkbook) {
		t.Errorf("Expected ErrInvalidWorkbook, got %v", err)
	}
}

func TestResolvePathNormalization(t *testing.T) {
	dir := t.TempDir()
	name := "Long Khánh Confessions (Câu trả lời).xlsx"
	onDisk := filepath.Join(dir, norm.NFC.String(name))
	if err := os.WriteFile(onDisk, []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	resolved, err := ResolvePath(filepath.Join(dir, norm.NFD.String(name)))
	if err != nil {
		t.Fatalf("ResolvePath failed: %v", err)
	}
	if resolved != onDisk {
		t.Errorf("ResolvePath = %q, expected %q", resolved, onDisk)
	}

	if _, err := ResolvePath(dir); !errors.Is(err, ErrInvalidWorkbook) {
		t.Errorf("Expected ErrInvalidWorkbook for a directory, got %v", err)
	}
}

func TestLoadNormalizesCellText(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	decomposed := norm.NFD.String("Khánh")
	f.SetCellValue("Sheet1", "A1", decomposed)

	path := filepath.Join(t.TempDir(), "nfd.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	g, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := g.Header(1); got != "Khánh" || got == decomposed {
		t.Errorf("Header(1) = %q, expected composed form", got)
	}
	if got := Truncate(g.Header(1), 5); got != "Khánh" {
		t.Errorf("Truncate = %q, expected the whole composed word", got)
	}
}
