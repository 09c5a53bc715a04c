package models

import "fmt"

// CellRef addresses a cell by 1-based row and column.
type CellRef struct {
	// Row is the 1-based row index.
	Row int
	// Col is the 1-based column index.
	Col int
}

// Grid is a read-only view over one sheet's cells, addressed by
// 1-based (row, column), with occupied-rectangle bounds. Loaders
// construct it cell by cell; the core only reads it. A grid with no
// occupied cells has MaxRow < MinRow.
type Grid struct {
	name   string
	minRow int
	minCol int
	maxRow int
	maxCol int
	cells  map[CellRef]Value
}

// NewGrid creates an empty grid named after its sheet.
func NewGrid(name string) *Grid {
	return &Grid{
		name:   name,
		minRow: 1,
		minCol: 1,
		maxRow: 0,
		maxCol: 0,
		cells:  make(map[CellRef]Value),
	}
}

// Name returns the sheet name.
func (g *Grid) Name() string {
	return g.name
}

// Set records a cell value during loading. Empty values are ignored
// and do not extend the occupied rectangle.
func (g *Grid) Set(row, col int, v Value) {
	if v.Kind == Empty {
		return
	}
	if len(g.cells) == 0 {
		g.minRow, g.maxRow = row, row
		g.minCol, g.maxCol = col, col
	} else {
		g.minRow = min(g.minRow, row)
		g.maxRow = max(g.maxRow, row)
		g.minCol = min(g.minCol, col)
		g.maxCol = max(g.maxCol, col)
	}
	g.cells[CellRef{Row: row, Col: col}] = v
}

// Value returns the cell value at (row, col); absent cells yield the
// Empty value.
func (g *Grid) Value(row, col int) Value {
	if v, ok := g.cells[CellRef{Row: row, Col: col}]; ok {
		return v
	}
	return EmptyValue()
}

// MinRow returns the first occupied row (1 for an empty grid).
func (g *Grid) MinRow() int { return g.minRow }

// MinCol returns the first occupied column (1 for an empty grid).
func (g *Grid) MinCol() int { return g.minCol }

// MaxRow returns the last occupied row (0 for an empty grid).
func (g *Grid) MaxRow() int { return g.maxRow }

// MaxCol returns the last occupied column (0 for an empty grid).
func (g *Grid) MaxCol() int { return g.maxCol }

// Workbook is an ordered collection of uniquely named grids.
type Workbook struct {
	grids []*Grid
}

// NewWorkbook creates an empty workbook.
func NewWorkbook() *Workbook {
	return &Workbook{}
}

// Add appends a grid, rejecting duplicate sheet names.
func (w *Workbook) Add(g *Grid) error {
	for _, existing := range w.grids {
		if existing.Name() == g.Name() {
			return fmt.Errorf("duplicate sheet name %q", g.Name())
		}
	}
	w.grids = append(w.grids, g)
	return nil
}

// Grids returns the grids in workbook order.
func (w *Workbook) Grids() []*Grid {
	return w.grids
}

// Grid looks up a grid by sheet name.
func (w *Workbook) Grid(name string) (*Grid, bool) {
	for _, g := range w.grids {
		if g.Name() == name {
			return g, true
		}
	}
	return nil, false
}
