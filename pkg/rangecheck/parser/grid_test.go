package parser

import (
	"path/filepath"
	"testing"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
	"github.com/xuri/excelize/v2"
)

func TestLoadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A3", "Text")
	if _, err := f.NewSheet("Second"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Second", "C3", 7)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	wb, err := LoadWorkbook(f2)
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}

	if len(wb.Grids()) != 2 {
		t.Fatalf("Expected 2 grids, got %d", len(wb.Grids()))
	}

	g, ok := wb.Grid(sheetName)
	if !ok {
		t.Fatal("Sheet1 grid missing")
	}
	if v := g.Value(1, 1); v != models.TextValue("Header1") {
		t.Errorf("cell (1,1) = %v, want Header1", v)
	}
	if v := g.Value(2, 1); v != models.NumberValue(100) {
		t.Errorf("cell (2,1) = %v, want Number(100)", v)
	}
	if v := g.Value(2, 2); v != models.NumberValue(200.5) {
		t.Errorf("cell (2,2) = %v, want Number(200.5)", v)
	}
	if v := g.Value(9, 9); v.Kind != models.Empty {
		t.Errorf("cell (9,9) = %v, want Empty", v)
	}
	if g.MinRow() != 1 || g.MaxRow() != 3 || g.MinCol() != 1 || g.MaxCol() != 2 {
		t.Errorf("bounds = (%d..%d, %d..%d), want (1..3, 1..2)",
			g.MinRow(), g.MaxRow(), g.MinCol(), g.MaxCol())
	}

	second, ok := wb.Grid("Second")
	if !ok {
		t.Fatal("Second grid missing")
	}
	if second.MinRow() != 3 || second.MinCol() != 3 {
		t.Errorf("Second bounds start = (%d,%d), want (3,3)", second.MinRow(), second.MinCol())
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected models.Value
	}{
		{"123", models.NumberValue(123)},
		{"123.45", models.NumberValue(123.45)},
		{"-100", models.NumberValue(-100)},
		{"hello", models.TextValue("hello")},
		{"12a", models.TextValue("12a")},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
