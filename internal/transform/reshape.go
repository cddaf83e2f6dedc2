// Package transform implements the runtime's transformational array
// operations.
package transform

import (
	"go.uber.org/zap"

	"github.com/farlang/far/internal/crash"
	"github.com/farlang/far/internal/descriptor"
	"github.com/farlang/far/internal/logging"
)

// Reshape builds a freshly allocated array holding source's elements
// laid out with the extents given by shape, a rank-1 integer array.
//
// Elements are drawn from source in its natural order. If the new
// shape needs more elements than source provides, the remainder is
// drawn cyclically from pad, which must then be present, nonempty, and
// of source's element size. If order is present it must be a rank-1
// integer array holding a permutation of 1..rank(result); it selects
// which result dimension varies fastest while filling (absent order
// fills dimension 1 fastest).
//
// The returned descriptor is uniquely owned by the caller: no other
// reference to its storage exists. Source, shape, pad, and order are
// read-only for the duration of the call.
//
// Elements are transferred by raw byte copy; no per-element
// construction or finalization runs, and a result with derived-type
// metadata is flagged so a later finalization pass skips it.
// Precondition violations are contract violations in the generated
// code and crash the runtime (see package crash).
func Reshape(source, shape, pad, order *descriptor.Descriptor) *descriptor.Descriptor {
	// Compute and check the rank of the result.
	crash.Check(shape.Rank() == 1, "RESHAPE: SHAPE= argument has rank %d, must be 1", shape.Rank())
	crash.Check(shape.Type().IsInteger(), "RESHAPE: SHAPE= argument has type %s, must be integer", shape.Type())
	resultRank := int(shape.Dim(0).Extent)
	crash.Check(resultRank >= 0 && resultRank <= descriptor.MaxRank,
		"RESHAPE: SHAPE= argument has %d elements, result rank must be in [0, %d]", resultRank, descriptor.MaxRank)

	// Extract and check the shape of the result; compute its element count.
	var lowerBound, resultExtent [descriptor.MaxRank]int64
	shapeElementBytes := shape.ElementBytes()
	resultElements := int64(1)
	shapeSubscript := [1]int64{shape.Dim(0).LowerBound}
	for j := 0; j < resultRank; j++ {
		lowerBound[j] = 1
		resultExtent[j] = descriptor.DecodeInt64(shape.Element(shapeSubscript[:]), shapeElementBytes)
		crash.Check(resultExtent[j] >= 0, "RESHAPE: SHAPE= element %d is negative (%d)", j+1, resultExtent[j])
		resultElements *= resultExtent[j]
		shapeSubscript[0]++
	}

	// Check that the source provides enough elements, or that the
	// optional PAD= argument is present and nonempty.
	elementBytes := source.ElementBytes()
	sourceElements := source.Elements()
	if resultElements > sourceElements {
		crash.Check(pad != nil && pad.Elements() > 0,
			"RESHAPE: too few SOURCE= elements (%d of %d needed) and no usable PAD=", sourceElements, resultElements)
		crash.Check(pad.ElementBytes() == elementBytes,
			"RESHAPE: PAD= element size %d differs from SOURCE= element size %d", pad.ElementBytes(), elementBytes)
	}

	// Extract and check the optional ORDER= argument, which must be a
	// permutation of 1..resultRank.
	var dimOrder [descriptor.MaxRank]int
	if order != nil {
		crash.Check(order.Rank() == 1, "RESHAPE: ORDER= argument has rank %d, must be 1", order.Rank())
		crash.Check(order.Type().IsInteger(), "RESHAPE: ORDER= argument has type %s, must be integer", order.Type())
		crash.Check(order.Dim(0).Extent == int64(resultRank),
			"RESHAPE: ORDER= argument has %d elements, must have %d", order.Dim(0).Extent, resultRank)
		orderElementBytes := order.ElementBytes()
		var values uint16 // bitset over result dimensions, resultRank <= 15
		orderSubscript := [1]int64{order.Dim(0).LowerBound}
		for j := 0; j < resultRank; j++ {
			k := descriptor.DecodeInt64(order.Element(orderSubscript[:]), orderElementBytes)
			crash.Check(k >= 1 && k <= int64(resultRank) && values&(1<<uint(k-1)) == 0,
				"RESHAPE: ORDER= element %d (%d) is not a distinct value in 1..%d", j+1, k, resultRank)
			values |= 1 << uint(k-1)
			dimOrder[k-1] = j
			orderSubscript[0]++
		}
	} else {
		for j := 0; j < resultRank; j++ {
			dimOrder[j] = j
		}
	}

	logging.Logger().Debug("reshape",
		zap.Int("rank", resultRank),
		zap.Int64s("extents", resultExtent[:resultRank]),
		zap.Int64("sourceElements", sourceElements),
		zap.Int64("resultElements", resultElements))

	// Create and populate the result's descriptor. The source's
	// derived-type identity and length parameter values, if any, carry
	// over verbatim.
	sourceAddendum := source.Addendum()
	var sourceDerivedType *descriptor.DerivedType
	if sourceAddendum != nil {
		sourceDerivedType = sourceAddendum.DerivedType()
	}
	var result *descriptor.Descriptor
	var err error
	if sourceDerivedType != nil {
		result, err = descriptor.NewDerived(sourceDerivedType, resultRank, resultExtent[:resultRank], descriptor.AttrAllocatable)
	} else {
		result, err = descriptor.New(source.Type(), elementBytes, resultRank, resultExtent[:resultRank], descriptor.AttrAllocatable)
	}
	if err != nil {
		crash.Crash("RESHAPE: result descriptor: %v", err)
	}
	if sourceDerivedType != nil {
		resultAddendum := result.Addendum()
		resultAddendum.SetFlag(descriptor.DoNotFinalize)
		for j := 0; j < sourceDerivedType.LenParameters(); j++ {
			resultAddendum.SetLenParameterValue(j, sourceAddendum.LenParameterValue(j))
		}
	}

	// Allocate storage for the result's data.
	if status := result.Allocate(lowerBound[:resultRank], resultExtent[:resultRank], elementBytes); status != descriptor.StatusOK {
		crash.Crash("RESHAPE: Allocate failed (status %d)", status)
	}

	// Populate the result's elements: first from the source in its
	// natural order, then cyclically from the pad.
	var resultSubscript, sourceSubscript [descriptor.MaxRank]int64
	result.GetLowerBounds(resultSubscript[:])
	source.GetLowerBounds(sourceSubscript[:])
	resultElement := int64(0)
	elementsFromSource := min(resultElements, sourceElements)
	for ; resultElement < elementsFromSource; resultElement++ {
		copy(result.Element(resultSubscript[:resultRank]), source.Element(sourceSubscript[:source.Rank()]))
		source.IncrementSubscripts(sourceSubscript[:], nil)
		result.IncrementSubscripts(resultSubscript[:], dimOrder[:resultRank])
	}
	if resultElement < resultElements {
		// Remaining elements come from the PAD= argument; its cursor
		// wraps back to its lower bounds whenever it is exhausted.
		var padSubscript [descriptor.MaxRank]int64
		pad.GetLowerBounds(padSubscript[:])
		for ; resultElement < resultElements; resultElement++ {
			copy(result.Element(resultSubscript[:resultRank]), pad.Element(padSubscript[:pad.Rank()]))
			pad.IncrementSubscripts(padSubscript[:], nil)
			result.IncrementSubscripts(resultSubscript[:], dimOrder[:resultRank])
		}
	}

	return result
}
