package check

import (
	"testing"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
)

func num(f float64) models.Value { return models.NumberValue(f) }
func txt(s string) models.Value  { return models.TextValue(s) }

func TestClassifyNumericTriples(t *testing.T) {
	tests := []struct {
		name   string
		sensed float64
		lower  float64
		upper  float64
		kind   models.VerdictKind
		delta  float64
	}{
		{"below range", 18.0, 20.0, 25.0, models.VerdictLow, -2.0},
		{"above range", 30.0, 20.0, 25.0, models.VerdictHigh, 5.0},
		{"in range", 22.0, 20.0, 25.0, models.VerdictOk, 0},
		{"exactly lower bound", 20.0, 20.0, 25.0, models.VerdictLow, 0.0},
		{"exactly upper bound", 25.0, 20.0, 25.0, models.VerdictHigh, 0.0},
		{"just above lower", 20.01, 20.0, 25.0, models.VerdictOk, 0},
		{"rounding to two places", 18.504, 20.0, 25.0, models.VerdictLow, -1.5},
		{"rounding down magnitude", 18.506, 20.0, 25.0, models.VerdictLow, -1.49},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(num(tt.sensed), num(tt.lower), num(tt.upper))
			if v.Kind != tt.kind {
				t.Fatalf("Classify(%v, %v, %v) kind = %v, want %v",
					tt.sensed, tt.lower, tt.upper, v.Kind, tt.kind)
			}
			if (tt.kind == models.VerdictLow || tt.kind == models.VerdictHigh) && v.Delta != tt.delta {
				t.Errorf("delta = %v, want %v", v.Delta, tt.delta)
			}
		})
	}
}

func TestClassifyNegativeNearZeroDelta(t *testing.T) {
	// 9.996 - 10.0 = -0.004, which rounds to negative zero. The
	// rendered text must normalize it to "low: 0.0".
	v := Classify(num(9.996), num(10.0), num(20.0))
	if v.Kind != models.VerdictLow {
		t.Fatalf("kind = %v, want VerdictLow", v.Kind)
	}
	if got := v.Value().Str; got != "low: 0.0" {
		t.Errorf("rendered = %q, want %q", got, "low: 0.0")
	}
}

func TestClassifyRenderedText(t *testing.T) {
	tests := []struct {
		name   string
		sensed float64
		lower  float64
		upper  float64
		want   string
	}{
		{"integral low delta", 18.0, 20.0, 25.0, "low: -2.0"},
		{"integral high delta", 30.0, 25.0, 25.0, "high: 5.0"},
		{"fractional delta", 19.75, 20.0, 25.0, "low: -0.25"},
		{"ok", 22.0, 20.0, 25.0, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(num(tt.sensed), num(tt.lower), num(tt.upper))
			if got := v.Value().Str; got != tt.want {
				t.Errorf("rendered = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyNonNumericInputs(t *testing.T) {
	tests := []struct {
		name   string
		sensed models.Value
		lower  models.Value
		upper  models.Value
	}{
		{"text sensed", txt("n/a"), num(20), num(25)},
		{"text lower", num(22), txt("broken"), num(25)},
		{"text upper", num(22), num(20), txt("broken")},
		{"empty sensed", models.EmptyValue(), num(20), num(25)},
		{"empty lower", num(22), models.EmptyValue(), num(25)},
		{"all empty", models.EmptyValue(), models.EmptyValue(), models.EmptyValue()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(tt.sensed, tt.lower, tt.upper)
			if v.Kind != models.VerdictUnclassified {
				t.Fatalf("kind = %v, want VerdictUnclassified", v.Kind)
			}
			if v.Original != tt.sensed {
				t.Errorf("original = %v, want %v", v.Original, tt.sensed)
			}
			if v.Fill() != models.FillNone {
				t.Errorf("fill = %v, want FillNone", v.Fill())
			}
		})
	}
}

func TestFormatDelta(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{-2, "-2.0"},
		{5, "5.0"},
		{0, "0.0"},
		{0.25, "0.25"},
		{-0.25, "-0.25"},
	}
	for _, tt := range tests {
		if got := models.FormatDelta(tt.in); got != tt.want {
			t.Errorf("FormatDelta(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
