// Package descriptor implements the self-describing array representation
// shared across the Far runtime.
package descriptor

import "fmt"

// TypeCategory classifies an element type into one of the closed set of
// categories the runtime knows how to store.
type TypeCategory int

// Supported type categories.
const (
	Integer TypeCategory = iota
	Real
	Complex
	Logical
	Character
	Derived
)

// String returns a human-readable name for the category.
func (c TypeCategory) String() string {
	switch c {
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Complex:
		return "complex"
	case Logical:
		return "logical"
	case Character:
		return "character"
	case Derived:
		return "derived"
	default:
		return "unknown"
	}
}

// TypeCode identifies an element type: a category plus a kind. For the
// intrinsic categories the kind is the byte width of one component
// (e.g. Integer kind 4 is a 32-bit integer); for Derived the kind is
// unused and element size comes from the DerivedType.
type TypeCode struct {
	Category TypeCategory
	Kind     int
}

// IsInteger reports whether the type is of the integer category.
func (tc TypeCode) IsInteger() bool {
	return tc.Category == Integer
}

// IsDerived reports whether the type is a derived (user-defined) type.
func (tc TypeCode) IsDerived() bool {
	return tc.Category == Derived
}

// ElementBytes returns the storage size of one element of an intrinsic
// type. Complex elements hold two components of the given kind.
// Returns 0 for Derived, whose size comes from its DerivedType.
func (tc TypeCode) ElementBytes() int64 {
	switch tc.Category {
	case Integer, Real, Logical, Character:
		return int64(tc.Kind)
	case Complex:
		return 2 * int64(tc.Kind)
	case Derived:
		return 0
	default:
		return 0
	}
}

// String returns a human-readable name for the type code.
func (tc TypeCode) String() string {
	return fmt.Sprintf("%s(%d)", tc.Category, tc.Kind)
}
