package parser

import (
	"fmt"

	"github.com/extrame/xls"
	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
)

// LoadXLSWorkbook builds a workbook model from a legacy BIFF .xls
// file. Values arrive as strings and are tagged the same way as the
// xlsx path.
func LoadXLSWorkbook(path string) (*models.Workbook, error) {
	book, err := xls.Open(path, "utf-8")
	if err != nil {
		return nil, fmt.Errorf("open xls: %w", err)
	}

	wb := models.NewWorkbook()
	for i := 0; i < book.NumSheets(); i++ {
		sheet := book.GetSheet(i)
		if sheet == nil {
			continue
		}

		g := models.NewGrid(sheet.Name)
		for r := 0; r <= int(sheet.MaxRow); r++ {
			row := sheet.Row(r)
			if row == nil {
				continue
			}
			for c := row.FirstCol(); c <= row.LastCol(); c++ {
				cellValue := row.Col(c)
				if cellValue == "" {
					continue
				}
				g.Set(r+1, c+1, parseValue(cellValue))
			}
		}

		if err := wb.Add(g); err != nil {
			return nil, err
		}
	}
	return wb, nil
}
