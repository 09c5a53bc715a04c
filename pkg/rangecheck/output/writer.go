// Package output writes the annotated result back into spreadsheet
// form.
package output

import (
	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
	"github.com/xuri/excelize/v2"
)

// ResultSheetName is the fixed name of the output sheet. A
// pre-existing sheet by this name is removed and re-created.
const ResultSheetName = "Result"

// WriteResult replaces any existing Result sheet in f with the given
// result grid, applying the solid category fills to classified cells.
func WriteResult(f *excelize.File, result *models.Result) error {
	if idx, err := f.GetSheetIndex(ResultSheetName); err == nil && idx != -1 {
		if err := f.DeleteSheet(ResultSheetName); err != nil {
			return err
		}
	}
	if _, err := f.NewSheet(ResultSheetName); err != nil {
		return err
	}

	styles, err := fillStyles(f)
	if err != nil {
		return err
	}

	for r := result.MinRow(); r <= result.MaxRow(); r++ {
		for c := result.MinCol(); c <= result.MaxCol(); c++ {
			cell, ok := result.Cell(r, c)
			if !ok {
				continue
			}
			name, err := excelize.CoordinatesToCellName(c, r)
			if err != nil {
				return err
			}
			if err := setValue(f, ResultSheetName, name, cell.Value); err != nil {
				return err
			}
			if styleID, ok := styles[cell.Fill]; ok {
				if err := f.SetCellStyle(ResultSheetName, name, name, styleID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// NewWorkbookFile rebuilds a workbook model into a fresh xlsx file.
// Used for legacy .xls inputs, which excelize cannot write back.
func NewWorkbookFile(wb *models.Workbook) (*excelize.File, error) {
	f := excelize.NewFile()
	for i, g := range wb.Grids() {
		if i == 0 {
			// Replace the default sheet instead of leaving it behind.
			if err := f.SetSheetName(f.GetSheetName(0), g.Name()); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(g.Name()); err != nil {
				return nil, err
			}
		}
		for r := g.MinRow(); r <= g.MaxRow(); r++ {
			for c := g.MinCol(); c <= g.MaxCol(); c++ {
				v := g.Value(r, c)
				if v.Kind == models.Empty {
					continue
				}
				name, err := excelize.CoordinatesToCellName(c, r)
				if err != nil {
					return nil, err
				}
				if err := setValue(f, g.Name(), name, v); err != nil {
					return nil, err
				}
			}
		}
	}
	return f, nil
}

// fillStyles registers one solid pattern style per visual category.
func fillStyles(f *excelize.File) (map[models.Fill]int, error) {
	styles := make(map[models.Fill]int)
	for _, fill := range []models.Fill{models.FillLow, models.FillOk, models.FillHigh} {
		styleID, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{
				Type:    "pattern",
				Pattern: 1,
				Color:   []string{fill.Color()},
			},
		})
		if err != nil {
			return nil, err
		}
		styles[fill] = styleID
	}
	return styles, nil
}

// setValue writes a tagged value into a cell, keeping numbers numeric.
func setValue(f *excelize.File, sheet, cell string, v models.Value) error {
	switch v.Kind {
	case models.Number:
		return f.SetCellValue(sheet, cell, v.Num)
	case models.Text:
		return f.SetCellValue(sheet, cell, v.Str)
	default:
		return nil
	}
}
