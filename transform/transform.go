// Copyright 2025 The Far Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package transform provides the public API for the Far runtime's
// transformational array operations.
//
// Operations take read-only descriptor arguments and return a freshly
// allocated descriptor that the caller uniquely owns. Precondition
// violations indicate defects in the generated code that invoked the
// runtime and terminate the process rather than returning an error.
//
// Example:
//
//	source, _ := descriptor.NewIntegerVector(8, []int64{1, 2, 3, 4, 5, 6})
//	shape, _ := descriptor.NewIntegerVector(8, []int64{2, 3})
//	result := transform.Reshape(source, shape, nil, nil)
package transform

import (
	"github.com/farlang/far/descriptor"
	"github.com/farlang/far/internal/transform"
)

// Reshape builds a freshly allocated array holding source's elements
// laid out with the extents given by shape.
//
// Elements are drawn from source in its natural order; once source is
// exhausted the remainder comes cyclically from pad. A non-nil order
// must hold a permutation of 1..rank(result) and selects which result
// dimension varies fastest while filling. The result is uniquely owned
// by the caller.
func Reshape(source, shape, pad, order *descriptor.Descriptor) *descriptor.Descriptor {
	return transform.Reshape(source, shape, pad, order)
}
