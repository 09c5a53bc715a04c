// Package parser loads workbooks into the grid model and derives the
// alignment metadata used to pair sensed cells with their bounds.
package parser

import (
	"strconv"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbook builds a workbook model from an open xlsx file. Cell
// values are tagged numeric or textual at the boundary; empty cells
// are skipped.
func LoadWorkbook(f *excelize.File) (*models.Workbook, error) {
	wb := models.NewWorkbook()
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, err
		}

		g := models.NewGrid(sheetName)
		for rowIdx, row := range rows {
			for colIdx, cellValue := range row {
				if cellValue == "" {
					continue
				}
				g.Set(rowIdx+1, colIdx+1, parseValue(cellValue))
			}
		}

		if err := wb.Add(g); err != nil {
			return nil, err
		}
	}
	return wb, nil
}

// parseValue tags a raw cell string as a number when it parses as one,
// otherwise as text.
func parseValue(s string) models.Value {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return models.NumberValue(f)
	}
	return models.TextValue(s)
}
