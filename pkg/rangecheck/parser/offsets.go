package parser

import "github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"

// DetectOffset locates the boundary between header decoration and
// numeric data in a grid. The first numeric cell in row-major order
// marks the data start; the header band is assumed to occupy a fixed
// number of rows and columns immediately before it, clipped to the
// occupied rectangle. A grid with no numeric cell at all is treated
// as all data with no header band.
func DetectOffset(g *models.Grid, headerRows, headerCols int) models.Offset {
	for r := g.MinRow(); r <= g.MaxRow(); r++ {
		for c := g.MinCol(); c <= g.MaxCol(); c++ {
			if g.Value(r, c).IsNumber() {
				return models.Offset{
					HeaderRow: max(g.MinRow(), r-headerRows),
					HeaderCol: max(g.MinCol(), c-headerCols),
					DataRow:   r,
					DataCol:   c,
				}
			}
		}
	}
	return models.Offset{
		HeaderRow: g.MinRow(),
		HeaderCol: g.MinCol(),
		DataRow:   g.MinRow(),
		DataCol:   g.MinCol(),
	}
}
