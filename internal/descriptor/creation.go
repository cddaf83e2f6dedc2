package descriptor

import "fmt"

// NewAllocated builds a descriptor and allocates its storage with all
// lower bounds set to 1.
func NewAllocated(typ TypeCode, elementBytes int64, extents []int64) (*Descriptor, error) {
	d, err := New(typ, elementBytes, len(extents), extents, AttrAllocatable)
	if err != nil {
		return nil, err
	}
	lowerBounds := make([]int64, len(extents))
	for j := range lowerBounds {
		lowerBounds[j] = 1
	}
	if status := d.Allocate(lowerBounds, extents, elementBytes); status != StatusOK {
		return nil, fmt.Errorf("allocation failed (status %d)", status)
	}
	return d, nil
}

// NewIntegerVector builds an allocated rank-1 integer descriptor of the
// given kind (1, 2, 4, or 8 bytes) holding the given values, narrowed
// to that kind's width. Shape and order arguments are descriptors of
// this form.
func NewIntegerVector(kind int, values []int64) (*Descriptor, error) {
	d, err := NewAllocated(TypeCode{Category: Integer, Kind: kind}, int64(kind), []int64{int64(len(values))})
	if err != nil {
		return nil, err
	}
	switch kind {
	case 1:
		dst := d.AsInt8()
		for i, v := range values {
			dst[i] = int8(v)
		}
	case 2:
		dst := d.AsInt16()
		for i, v := range values {
			dst[i] = int16(v)
		}
	case 4:
		dst := d.AsInt32()
		for i, v := range values {
			dst[i] = int32(v)
		}
	case 8:
		copy(d.AsInt64(), values)
	default:
		return nil, fmt.Errorf("unsupported integer kind %d", kind)
	}
	return d, nil
}
