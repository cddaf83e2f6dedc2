package descriptor

import (
	"unsafe"

	"github.com/farlang/far/internal/crash"
)

// DecodeInt64 reinterprets the start of p as a signed integer of the
// given element size in bytes (1, 2, 4, or 8) in the host's native
// representation and widens it to int64. Shape and order metadata come
// through descriptors of arbitrary integer kind, so every read of such
// metadata goes through here.
//
// Any other size is a fatal no-case crash: correctly generated code
// never produces one.
func DecodeInt64(p []byte, elementBytes int64) int64 {
	switch elementBytes {
	case 1:
		return int64(int8(p[0]))
	case 2:
		return int64(*(*int16)(unsafe.Pointer(&p[0])))
	case 4:
		return int64(*(*int32)(unsafe.Pointer(&p[0])))
	case 8:
		return *(*int64)(unsafe.Pointer(&p[0]))
	default:
		crash.NoCase("integer element size %d", elementBytes)
		return 0 // not reached
	}
}
