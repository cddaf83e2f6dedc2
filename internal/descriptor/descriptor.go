package descriptor

import (
	"fmt"
)

// MaxRank bounds the number of dimensions any descriptor may carry.
// All fixed-size per-dimension scratch arrays (subscripts, extents,
// dimension orders) are sized by it.
const MaxRank = 15

// Attribute describes the allocation state of a descriptor, matching
// the runtime's cross-compilation descriptor ABI.
type Attribute int

// Allocation attributes.
const (
	AttrOther Attribute = iota
	AttrAllocatable
	AttrPointer
)

// Allocation status codes returned by Allocate.
const (
	StatusOK = iota
	StatusAlreadyAllocated
	StatusInvalidElementBytes
	StatusInvalidExtent
	StatusInvalidRank
)

// Dimension is one axis of an array: its lower bound, number of
// elements, and the byte distance between consecutive elements.
type Dimension struct {
	LowerBound int64
	Extent     int64
	ByteStride int64
}

// UpperBound returns the largest valid subscript along this dimension.
func (d Dimension) UpperBound() int64 {
	return d.LowerBound + d.Extent - 1
}

// Descriptor is a self-describing handle to an n-dimensional array:
// element type and size, rank, per-dimension bounds, and raw storage.
// Its field set mirrors the runtime's standard array-descriptor ABI so
// that descriptors established by independently compiled code can be
// consumed without conversion.
//
// Dimension 0 is the fastest-varying dimension, both for the natural
// subscript iteration order and for the contiguous byte strides laid
// down by Allocate.
type Descriptor struct {
	data         []byte
	elementBytes int64
	typ          TypeCode
	attr         Attribute
	rank         int
	dim          []Dimension
	addendum     *Addendum
}

// New builds an unallocated descriptor for an intrinsic element type.
// The extents fix the shape that Allocate will later lay out; pass the
// same values to Allocate along with the desired lower bounds.
func New(typ TypeCode, elementBytes int64, rank int, extents []int64, attr Attribute) (*Descriptor, error) {
	if rank < 0 || rank > MaxRank {
		return nil, fmt.Errorf("descriptor rank %d outside [0, %d]", rank, MaxRank)
	}
	if len(extents) < rank {
		return nil, fmt.Errorf("descriptor rank %d but only %d extents", rank, len(extents))
	}
	if elementBytes <= 0 {
		return nil, fmt.Errorf("invalid element size %d", elementBytes)
	}
	d := &Descriptor{
		elementBytes: elementBytes,
		typ:          typ,
		attr:         attr,
		rank:         rank,
		dim:          make([]Dimension, rank),
	}
	for j := 0; j < rank; j++ {
		if extents[j] < 0 {
			return nil, fmt.Errorf("negative extent %d in dimension %d", extents[j], j)
		}
		d.dim[j] = Dimension{LowerBound: 1, Extent: extents[j]}
	}
	return d, nil
}

// NewDerived builds an unallocated descriptor for a derived element
// type and attaches an Addendum referencing it. The Addendum keeps a
// weak reference into the type registry; the descriptor never owns the
// DerivedType.
func NewDerived(dt *DerivedType, rank int, extents []int64, attr Attribute) (*Descriptor, error) {
	if dt == nil {
		return nil, fmt.Errorf("nil derived type")
	}
	d, err := New(TypeCode{Category: Derived}, dt.ByteSize(), rank, extents, attr)
	if err != nil {
		return nil, err
	}
	d.addendum = newAddendum(dt)
	return d, nil
}

// Rank returns the number of dimensions (0 for a scalar).
func (d *Descriptor) Rank() int {
	return d.rank
}

// Type returns the element type code.
func (d *Descriptor) Type() TypeCode {
	return d.typ
}

// ElementBytes returns the storage size of one element.
func (d *Descriptor) ElementBytes() int64 {
	return d.elementBytes
}

// Attribute returns the descriptor's allocation attribute.
func (d *Descriptor) Attribute() Attribute {
	return d.attr
}

// Dim returns dimension j.
func (d *Descriptor) Dim(j int) Dimension {
	return d.dim[j]
}

// Addendum returns the descriptor's addendum, or nil if it has none.
func (d *Descriptor) Addendum() *Addendum {
	return d.addendum
}

// Elements returns the total element count: the product of the extents,
// with the empty product (rank 0) being 1.
func (d *Descriptor) Elements() int64 {
	n := int64(1)
	for j := 0; j < d.rank; j++ {
		n *= d.dim[j].Extent
	}
	return n
}

// IsAllocated reports whether the descriptor has backing storage.
func (d *Descriptor) IsAllocated() bool {
	return d.data != nil
}

// Data returns the raw backing storage.
// WARNING: direct access to underlying memory.
func (d *Descriptor) Data() []byte {
	return d.data
}

// ByteSize returns the total storage size in bytes.
func (d *Descriptor) ByteSize() int64 {
	return d.Elements() * d.elementBytes
}

// Allocate lays out contiguous column-major storage for the given
// bounds and extents and binds it to the descriptor. It returns a
// status code rather than an error; a nonzero status on a path that
// validated its arguments indicates a runtime defect and is treated as
// fatal by callers.
func (d *Descriptor) Allocate(lowerBounds, extents []int64, elementBytes int64) int {
	if d.data != nil {
		return StatusAlreadyAllocated
	}
	if elementBytes <= 0 {
		return StatusInvalidElementBytes
	}
	if len(lowerBounds) < d.rank || len(extents) < d.rank {
		return StatusInvalidRank
	}
	d.elementBytes = elementBytes
	stride := elementBytes
	for j := 0; j < d.rank; j++ {
		if extents[j] < 0 {
			return StatusInvalidExtent
		}
		d.dim[j] = Dimension{
			LowerBound: lowerBounds[j],
			Extent:     extents[j],
			ByteStride: stride,
		}
		stride *= extents[j]
	}
	d.data = make([]byte, d.Elements()*elementBytes)
	return StatusOK
}

// GetLowerBounds fills subscripts with the lower bound of each
// dimension, positioning a cursor at the array's first element.
func (d *Descriptor) GetLowerBounds(subscripts []int64) {
	for j := 0; j < d.rank; j++ {
		subscripts[j] = d.dim[j].LowerBound
	}
}

// IncrementSubscripts advances a subscript cursor to the next element.
// With a nil dimOrder the natural order is used: dimension 0 varies
// fastest. A non-nil dimOrder of length rank permutes the traversal:
// the dimension advanced at carry level j is dimOrder[j], so dimension
// dimOrder[0] varies fastest. Each dimension wraps to its lower bound
// on overflow, carrying into the next, so a cursor that passes the
// last element returns to the first.
func (d *Descriptor) IncrementSubscripts(subscripts []int64, dimOrder []int) {
	for j := 0; j < d.rank; j++ {
		k := j
		if dimOrder != nil {
			k = dimOrder[j]
		}
		subscripts[k]++
		if subscripts[k] <= d.dim[k].UpperBound() {
			return
		}
		subscripts[k] = d.dim[k].LowerBound
	}
}

// Element returns the storage of the element at the given subscripts as
// a byte slice of length ElementBytes. Subscripts must be within the
// descriptor's bounds; the cursor helpers above maintain that.
func (d *Descriptor) Element(subscripts []int64) []byte {
	offset := int64(0)
	for j := 0; j < d.rank; j++ {
		offset += (subscripts[j] - d.dim[j].LowerBound) * d.dim[j].ByteStride
	}
	return d.data[offset : offset+d.elementBytes]
}

// String returns a human-readable summary of the descriptor.
func (d *Descriptor) String() string {
	extents := make([]int64, d.rank)
	for j := 0; j < d.rank; j++ {
		extents[j] = d.dim[j].Extent
	}
	return fmt.Sprintf("Descriptor[%s]%v (%d elements)", d.typ, extents, d.Elements())
}
