// Package check classifies sensed cells against their bounds and
// assembles the annotated result grid.
package check

import (
	"math"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
)

// Classify compares a sensed value against its lower and upper bounds.
// The rule applies only when all three values are numeric: a sensed
// value at or below the lower bound is Low, at or above the upper
// bound is High, strictly between them is Ok. Both boundaries classify
// toward the excursion side. Any non-numeric input yields Unclassified
// carrying the original sensed value; that is an expected branch, not
// an error.
func Classify(sensed, lower, upper models.Value) models.Verdict {
	if !sensed.IsNumber() || !lower.IsNumber() || !upper.IsNumber() {
		return models.Unclassified(sensed)
	}
	switch {
	case sensed.Num <= lower.Num:
		return models.Low(round2(sensed.Num - lower.Num))
	case sensed.Num >= upper.Num:
		return models.High(round2(sensed.Num - upper.Num))
	default:
		return models.Ok()
	}
}

// round2 rounds half away from zero to two decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
