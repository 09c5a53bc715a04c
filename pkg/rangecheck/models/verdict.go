package models

import (
	"strconv"
	"strings"
)

// VerdictKind discriminates the classification outcome.
type VerdictKind int

const (
	// VerdictNone marks a header cell that was copied, not classified.
	VerdictNone VerdictKind = iota
	// VerdictLow marks a sensed value at or below the lower bound.
	VerdictLow
	// VerdictHigh marks a sensed value at or above the upper bound.
	VerdictHigh
	// VerdictOk marks a sensed value strictly inside the bounds.
	VerdictOk
	// VerdictUnclassified marks a cell whose triple was not fully
	// numeric; the original sensed value passes through unchanged.
	VerdictUnclassified
)

// Verdict is the per-cell classification outcome.
type Verdict struct {
	// Kind is the outcome tag.
	Kind VerdictKind
	// Delta is the signed excursion magnitude, rounded to two decimal
	// places (valid for Low and High).
	Delta float64
	// Original is the sensed value passed through (valid for
	// Unclassified).
	Original Value
}

// Low returns a below-range verdict with its excursion.
func Low(delta float64) Verdict {
	return Verdict{Kind: VerdictLow, Delta: delta}
}

// High returns an above-range verdict with its excursion.
func High(delta float64) Verdict {
	return Verdict{Kind: VerdictHigh, Delta: delta}
}

// Ok returns an in-range verdict.
func Ok() Verdict {
	return Verdict{Kind: VerdictOk}
}

// Unclassified returns a pass-through verdict carrying the original
// sensed value.
func Unclassified(original Value) Verdict {
	return Verdict{Kind: VerdictUnclassified, Original: original}
}

// Value returns the cell value the verdict renders to: "low: {delta}",
// "high: {delta}", "ok", or the original value for Unclassified.
func (v Verdict) Value() Value {
	switch v.Kind {
	case VerdictLow:
		return TextValue("low: " + FormatDelta(v.Delta))
	case VerdictHigh:
		return TextValue("high: " + FormatDelta(v.Delta))
	case VerdictOk:
		return TextValue("ok")
	case VerdictUnclassified:
		return v.Original
	default:
		return EmptyValue()
	}
}

// Fill returns the visual category matching the verdict.
func (v Verdict) Fill() Fill {
	switch v.Kind {
	case VerdictLow:
		return FillLow
	case VerdictHigh:
		return FillHigh
	case VerdictOk:
		return FillOk
	default:
		return FillNone
	}
}

// FormatDelta renders an excursion delta. Integral values carry a
// trailing ".0" ("-2.0", "5.0") and negative zero normalizes to "0.0".
func FormatDelta(d float64) string {
	if d == 0 {
		d = 0 // drop the sign of negative zero
	}
	s := strconv.FormatFloat(d, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// Fill is the visual category tag applied to a result cell.
type Fill int

const (
	// FillNone leaves the cell unfilled.
	FillNone Fill = iota
	// FillLow is the below-range fill (light blue).
	FillLow
	// FillOk is the in-range fill (light green).
	FillOk
	// FillHigh is the above-range fill (light red).
	FillHigh
)

// Color returns the solid fill color as an RRGGBB hex string, or the
// empty string for FillNone.
func (f Fill) Color() string {
	switch f {
	case FillLow:
		return "ADD8E6"
	case FillOk:
		return "90EE90"
	case FillHigh:
		return "FFC7CE"
	default:
		return ""
	}
}
