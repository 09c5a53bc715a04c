package check

import "github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"

// Alignment resolves the bound cells paired with a sensed data cell.
// The two implementations are the two mutually exclusive addressing
// schemes; a run uses exactly one.
type Alignment interface {
	// resolve returns the lower and upper bound values paired with the
	// sensed cell at (row, col). ok is false when the pairing cannot
	// be established (identifier lookup miss).
	resolve(row, col int, lower, upper *models.Grid) (lo, hi models.Value, ok bool)
}

// OffsetAlignment pairs cells by position relative to each grid's own
// data start, preserving relative position within the data region.
type OffsetAlignment struct {
	// Sensed is the sensed grid's offset tuple.
	Sensed models.Offset
	// Lower is the lower-bound grid's offset tuple.
	Lower models.Offset
	// Upper is the upper-bound grid's offset tuple.
	Upper models.Offset
}

func (a OffsetAlignment) resolve(row, col int, lower, upper *models.Grid) (models.Value, models.Value, bool) {
	lo := lower.Value(
		row-a.Sensed.DataRow+a.Lower.DataRow,
		col-a.Sensed.DataCol+a.Lower.DataCol,
	)
	hi := upper.Value(
		row-a.Sensed.DataRow+a.Upper.DataRow,
		col-a.Sensed.DataCol+a.Upper.DataCol,
	)
	return lo, hi, true
}

// IdentifierAlignment pairs columns by the sensor identifier token
// embedded in a fixed header row; rows are assumed already aligned
// across sheets.
type IdentifierAlignment struct {
	sensedByCol map[int]string
	lower       models.IdentifierMap
	upper       models.IdentifierMap
}

// NewIdentifierAlignment builds the alignment from per-grid identifier
// maps. The sensed map is inverted to a column-to-token lookup; the
// mapper guarantees at most one token per column.
func NewIdentifierAlignment(sensed, lower, upper models.IdentifierMap) IdentifierAlignment {
	byCol := make(map[int]string, len(sensed))
	for token, col := range sensed {
		byCol[col] = token
	}
	return IdentifierAlignment{sensedByCol: byCol, lower: lower, upper: upper}
}

func (a IdentifierAlignment) resolve(row, col int, lower, upper *models.Grid) (models.Value, models.Value, bool) {
	token, ok := a.sensedByCol[col]
	if !ok {
		return models.EmptyValue(), models.EmptyValue(), false
	}
	loCol, ok := a.lower[token]
	if !ok {
		return models.EmptyValue(), models.EmptyValue(), false
	}
	hiCol, ok := a.upper[token]
	if !ok {
		return models.EmptyValue(), models.EmptyValue(), false
	}
	return lower.Value(row, loCol), upper.Value(row, hiCol), true
}

// Assemble walks the sensed grid's occupied rectangle and produces the
// result grid. Cells inside the header band (before the sensed grid's
// data start) are copied verbatim with no fill. Data cells are paired
// with their bound cells through the alignment and classified; when
// the pairing cannot be established the raw sensed value passes
// through untagged, same as an unclassified triple.
func Assemble(sensed, lower, upper *models.Grid, offset models.Offset, align Alignment) *models.Result {
	result := models.NewResult(sensed.MinRow(), sensed.MinCol(), sensed.MaxRow(), sensed.MaxCol())

	for r := sensed.MinRow(); r <= sensed.MaxRow(); r++ {
		for c := sensed.MinCol(); c <= sensed.MaxCol(); c++ {
			v := sensed.Value(r, c)

			if r < offset.DataRow || c < offset.DataCol {
				result.Set(r, c, models.ResultCell{Value: v, Fill: models.FillNone})
				continue
			}

			lo, hi, ok := align.resolve(r, c, lower, upper)
			if !ok {
				result.Set(r, c, models.ResultCell{
					Value:   v,
					Fill:    models.FillNone,
					Verdict: models.Unclassified(v),
				})
				continue
			}

			verdict := Classify(v, lo, hi)
			result.Set(r, c, models.ResultCell{
				Value:   verdict.Value(),
				Fill:    verdict.Fill(),
				Verdict: verdict,
			})
		}
	}

	return result
}
