// Package models defines the data model for range checking.
package models

import "strconv"

// ValueKind discriminates the cell value variant.
type ValueKind int

const (
	// Empty marks a cell holding no value.
	Empty ValueKind = iota
	// Number marks a numeric cell value.
	Number
	// Text marks a textual cell value.
	Text
)

// Value is a tagged cell value: absent, numeric, or textual.
// The classifier and aligners switch on Kind instead of inspecting
// dynamic types at the spreadsheet boundary.
type Value struct {
	// Kind is the variant tag.
	Kind ValueKind
	// Num is the numeric payload (valid when Kind is Number).
	Num float64
	// Str is the textual payload (valid when Kind is Text).
	Str string
}

// EmptyValue returns the absent value.
func EmptyValue() Value {
	return Value{Kind: Empty}
}

// NumberValue returns a numeric value.
func NumberValue(f float64) Value {
	return Value{Kind: Number, Num: f}
}

// TextValue returns a textual value.
func TextValue(s string) Value {
	return Value{Kind: Text, Str: s}
}

// IsNumber reports whether the value is numeric.
func (v Value) IsNumber() bool {
	return v.Kind == Number
}

// String returns the display form of the value. Empty values render
// as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case Text:
		return v.Str
	default:
		return ""
	}
}
