// Package value defines the runtime value system shared by the AST and the
// interpreter.
package value

import (
	"math"
	"strconv"
)

// Epsilon is the absolute tolerance used when comparing numbers.
const Epsilon = 1e-4

// Value is the interface for all runtime values.
type Value interface {
	TypeName() string
	String() string
}

// ---- Primitive values ----

// NumberVal represents a 32-bit floating-point number.
type NumberVal float32

func (v NumberVal) TypeName() string { return "number" }
func (v NumberVal) String() string   { return strconv.FormatFloat(float64(v), 'f', -1, 32) }

// StringVal represents a string value.
type StringVal string

func (v StringVal) TypeName() string { return "string" }
func (v StringVal) String() string   { return string(v) }

// BoolVal represents a boolean value.
type BoolVal bool

func (v BoolVal) TypeName() string { return "boolean" }
func (v BoolVal) String() string   { return strconv.FormatBool(bool(v)) }

// NilVal represents nil.
type NilVal struct{}

func (v NilVal) TypeName() string { return "nil" }
func (v NilVal) String() string   { return "nil" }

// ---- Equality ----

// Equal reports whether two values are equal. Numbers compare within
// Epsilon, strings and booleans exactly, nil equals nil. Values of
// different types are never equal.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case NumberVal:
		bv, ok := b.(NumberVal)
		return ok && math.Abs(float64(av)-float64(bv)) <= Epsilon
	case StringVal:
		bv, ok := b.(StringVal)
		return ok && av == bv
	case BoolVal:
		bv, ok := b.(BoolVal)
		return ok && av == bv
	case NilVal:
		_, ok := b.(NilVal)
		return ok
	default:
		return false
	}
}
