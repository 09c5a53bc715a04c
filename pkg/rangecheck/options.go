// Package rangecheck checks a workbook of sensed values against
// parallel lower/upper bound sheets and produces an annotated Result
// grid.
package rangecheck

// Strategy selects how sensed cells are paired with bound cells. The
// two strategies are mutually exclusive within one run.
type Strategy string

const (
	// StrategyOffset pairs cells by their position relative to each
	// sheet's detected data start.
	StrategyOffset Strategy = "offset"
	// StrategyIdentifier pairs columns by the sensor identifier token
	// embedded in a fixed header row, for workbooks whose sheets share
	// identifiers but not geometry.
	StrategyIdentifier Strategy = "identifier"
)

// Options configures a range-check run.
type Options struct {
	// HeaderRows is the assumed header band height above the first
	// data row. Zero means the default of 3.
	HeaderRows int
	// HeaderCols is the assumed header band width before the first
	// data column. Zero means the default of 2.
	HeaderCols int
	// Strategy is the alignment strategy (default: StrategyOffset).
	Strategy Strategy
	// IdentifierRow is the 1-based header row holding sensor
	// identifiers, used only by StrategyIdentifier. Zero means row 1.
	IdentifierRow int
}

// DefaultOptions returns the default run configuration.
func DefaultOptions() Options {
	return Options{
		HeaderRows:    3,
		HeaderCols:    2,
		Strategy:      StrategyOffset,
		IdentifierRow: 1,
	}
}

// normalized fills zero-valued fields with their defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.HeaderRows == 0 {
		o.HeaderRows = def.HeaderRows
	}
	if o.HeaderCols == 0 {
		o.HeaderCols = def.HeaderCols
	}
	if o.Strategy == "" {
		o.Strategy = def.Strategy
	}
	if o.IdentifierRow == 0 {
		o.IdentifierRow = def.IdentifierRow
	}
	return o
}
