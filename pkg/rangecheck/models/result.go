package models

// ResultCell is one output cell: the rendered value, its visual fill
// tag, and the verdict that produced it (VerdictNone for copied
// header cells).
type ResultCell struct {
	Value   Value
	Fill    Fill
	Verdict Verdict
}

// Result is the annotated output grid. It covers the same occupied
// rectangle as the sensed grid it was assembled from.
type Result struct {
	minRow int
	minCol int
	maxRow int
	maxCol int
	cells  map[CellRef]ResultCell
}

// NewResult creates an empty result covering the given rectangle.
func NewResult(minRow, minCol, maxRow, maxCol int) *Result {
	return &Result{
		minRow: minRow,
		minCol: minCol,
		maxRow: maxRow,
		maxCol: maxCol,
		cells:  make(map[CellRef]ResultCell),
	}
}

// Set records an output cell. Cells whose value is Empty are dropped.
func (r *Result) Set(row, col int, cell ResultCell) {
	if cell.Value.Kind == Empty {
		return
	}
	r.cells[CellRef{Row: row, Col: col}] = cell
}

// Cell returns the output cell at (row, col).
func (r *Result) Cell(row, col int) (ResultCell, bool) {
	c, ok := r.cells[CellRef{Row: row, Col: col}]
	return c, ok
}

// MinRow returns the first row of the result rectangle.
func (r *Result) MinRow() int { return r.minRow }

// MinCol returns the first column of the result rectangle.
func (r *Result) MinCol() int { return r.minCol }

// MaxRow returns the last row of the result rectangle.
func (r *Result) MaxRow() int { return r.maxRow }

// MaxCol returns the last column of the result rectangle.
func (r *Result) MaxCol() int { return r.maxCol }
