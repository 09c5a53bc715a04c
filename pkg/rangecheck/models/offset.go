package models

// Offset locates the header band and data region of one grid. All
// indices are 1-based and clipped to the grid's occupied rectangle.
type Offset struct {
	// HeaderRow is the first row of the header band.
	HeaderRow int
	// HeaderCol is the first column of the header band.
	HeaderCol int
	// DataRow is the row of the first numeric cell.
	DataRow int
	// DataCol is the column of the first numeric cell.
	DataCol int
}

// IdentifierMap maps a sensor identifier token (upper-cased) to the
// column holding it within one grid. Derived once per run, read-only.
type IdentifierMap map[string]int
