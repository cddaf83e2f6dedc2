// Copyright 2025 The Far Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package descriptor provides the public API for the Far runtime's
// array descriptors.
//
// A Descriptor is a self-describing handle to an n-dimensional array:
// element type and size, rank, per-dimension lower bound and extent,
// and raw storage. Its layout follows the runtime's standard
// cross-compilation descriptor ABI, so descriptors established by
// independently compiled code pass directly into runtime operations.
//
// Example:
//
//	d, err := descriptor.NewAllocated(descriptor.TypeCode{Category: descriptor.Real, Kind: 4}, 4, []int64{2, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	copy(d.AsFloat32(), values)
package descriptor

import (
	"github.com/farlang/far/internal/descriptor"
)

// MaxRank bounds the number of dimensions any descriptor may carry.
const MaxRank = descriptor.MaxRank

// TypeCategory classifies an element type.
type TypeCategory = descriptor.TypeCategory

// Supported type categories.
const (
	Integer   TypeCategory = descriptor.Integer
	Real      TypeCategory = descriptor.Real
	Complex   TypeCategory = descriptor.Complex
	Logical   TypeCategory = descriptor.Logical
	Character TypeCategory = descriptor.Character
	Derived   TypeCategory = descriptor.Derived
)

// TypeCode identifies an element type: a category plus a kind.
type TypeCode = descriptor.TypeCode

// Attribute describes the allocation state of a descriptor.
type Attribute = descriptor.Attribute

// Allocation attributes.
const (
	AttrOther       Attribute = descriptor.AttrOther
	AttrAllocatable Attribute = descriptor.AttrAllocatable
	AttrPointer     Attribute = descriptor.AttrPointer
)

// Allocation status codes returned by Descriptor.Allocate.
const (
	StatusOK               = descriptor.StatusOK
	StatusAlreadyAllocated = descriptor.StatusAlreadyAllocated
)

// Dimension is one axis of an array.
type Dimension = descriptor.Dimension

// Descriptor is a self-describing handle to an n-dimensional array.
type Descriptor = descriptor.Descriptor

// Addendum extends a Descriptor with derived-type information.
type Addendum = descriptor.Addendum

// Flags is the addendum's behavior flag bitset.
type Flags = descriptor.Flags

// Addendum flags.
const (
	DoNotFinalize    Flags = descriptor.DoNotFinalize
	StaticDescriptor Flags = descriptor.StaticDescriptor
)

// DerivedType describes a user-defined element type.
type DerivedType = descriptor.DerivedType

// TypeRegistry owns the runtime's derived type definitions.
type TypeRegistry = descriptor.TypeRegistry

// NewTypeRegistry creates an empty derived type registry.
func NewTypeRegistry() *TypeRegistry {
	return descriptor.NewTypeRegistry()
}

// New builds an unallocated descriptor for an intrinsic element type.
func New(typ TypeCode, elementBytes int64, rank int, extents []int64, attr Attribute) (*Descriptor, error) {
	return descriptor.New(typ, elementBytes, rank, extents, attr)
}

// NewDerived builds an unallocated descriptor for a derived element
// type and attaches an Addendum referencing it.
func NewDerived(dt *DerivedType, rank int, extents []int64, attr Attribute) (*Descriptor, error) {
	return descriptor.NewDerived(dt, rank, extents, attr)
}

// NewAllocated builds a descriptor and allocates its storage with all
// lower bounds set to 1.
func NewAllocated(typ TypeCode, elementBytes int64, extents []int64) (*Descriptor, error) {
	return descriptor.NewAllocated(typ, elementBytes, extents)
}

// NewIntegerVector builds an allocated rank-1 integer descriptor of the
// given kind holding the given values.
func NewIntegerVector(kind int, values []int64) (*Descriptor, error) {
	return descriptor.NewIntegerVector(kind, values)
}

// DecodeInt64 reads an integer of the given byte width (1, 2, 4, or 8)
// from raw element storage and widens it to int64.
func DecodeInt64(p []byte, elementBytes int64) int64 {
	return descriptor.DecodeInt64(p, elementBytes)
}
