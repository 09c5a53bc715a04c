package parser

import (
	"testing"

	"github.com/ukaji3/rangecheck-go/pkg/rangecheck/models"
)

func TestMapIdentifiers(t *testing.T) {
	g := models.NewGrid("Room Data")
	g.Set(1, 1, models.TextValue("Location"))
	g.Set(1, 2, models.TextValue("Sensor TS01"))
	g.Set(1, 3, models.TextValue("ts02 (roof)"))
	g.Set(1, 4, models.NumberValue(42))
	g.Set(1, 5, models.TextValue("X9"))
	g.Set(2, 2, models.NumberValue(18.0))

	m := MapIdentifiers(g, 1)

	want := models.IdentifierMap{"TS01": 2, "TS02": 3}
	if len(m) != len(want) {
		t.Fatalf("map = %v, want %v", m, want)
	}
	for token, col := range want {
		if m[token] != col {
			t.Errorf("m[%s] = %d, want %d", token, m[token], col)
		}
	}
}

func TestMapIdentifiersFirstColumnClaims(t *testing.T) {
	// A duplicate token in a later column must not displace the first.
	g := models.NewGrid("Room Data")
	g.Set(1, 2, models.TextValue("TS01"))
	g.Set(1, 3, models.TextValue("TS01 copy"))

	m := MapIdentifiers(g, 1)
	if m["TS01"] != 2 {
		t.Errorf("m[TS01] = %d, want 2", m["TS01"])
	}
}

func TestMapIdentifiersFirstTokenPerCell(t *testing.T) {
	g := models.NewGrid("Room Data")
	g.Set(1, 2, models.TextValue("TS01 / TS02"))

	m := MapIdentifiers(g, 1)
	if m["TS01"] != 2 {
		t.Errorf("m[TS01] = %d, want 2", m["TS01"])
	}
	if _, ok := m["TS02"]; ok {
		t.Error("second token in the same cell claimed a column")
	}
}

func TestExtractIdentifier(t *testing.T) {
	tests := []struct {
		in   models.Value
		want string
	}{
		{models.TextValue("Sensor TS01"), "TS01"},
		{models.TextValue("ab123"), "AB123"},
		{models.TextValue("A1"), ""},
		{models.TextValue("123"), ""},
		{models.NumberValue(12), ""},
		{models.EmptyValue(), ""},
	}
	for _, tt := range tests {
		if got := ExtractIdentifier(tt.in); got != tt.want {
			t.Errorf("ExtractIdentifier(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
