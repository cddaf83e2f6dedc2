package descriptor

import (
	"fmt"
	"unsafe"
)

// Typed views over a descriptor's contiguous storage. These are
// conveniences for host code (tests, tooling) that builds or inspects
// descriptors; the runtime's own element transfer works on raw bytes.
// Each view panics if the descriptor's type does not match, and each
// slice directly aliases the underlying memory (zero-copy).

func (d *Descriptor) checkType(cat TypeCategory, kind int) {
	if d.typ.Category != cat || d.typ.Kind != kind {
		panic(fmt.Sprintf("descriptor type is %s, not %s", d.typ, TypeCode{Category: cat, Kind: kind}))
	}
}

// AsInt8 interprets the storage as []int8.
func (d *Descriptor) AsInt8() []int8 {
	d.checkType(Integer, 1)
	if len(d.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int8)(unsafe.Pointer(&d.data[0])), d.Elements())
}

// AsInt16 interprets the storage as []int16.
func (d *Descriptor) AsInt16() []int16 {
	d.checkType(Integer, 2)
	if len(d.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int16)(unsafe.Pointer(&d.data[0])), d.Elements())
}

// AsInt32 interprets the storage as []int32.
func (d *Descriptor) AsInt32() []int32 {
	d.checkType(Integer, 4)
	if len(d.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(&d.data[0])), d.Elements())
}

// AsInt64 interprets the storage as []int64.
func (d *Descriptor) AsInt64() []int64 {
	d.checkType(Integer, 8)
	if len(d.data) == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&d.data[0])), d.Elements())
}

// AsFloat32 interprets the storage as []float32.
func (d *Descriptor) AsFloat32() []float32 {
	d.checkType(Real, 4)
	if len(d.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(&d.data[0])), d.Elements())
}

// AsFloat64 interprets the storage as []float64.
func (d *Descriptor) AsFloat64() []float64 {
	d.checkType(Real, 8)
	if len(d.data) == 0 {
		return nil
	}
	return unsafe.Slice((*float64)(unsafe.Pointer(&d.data[0])), d.Elements())
}
