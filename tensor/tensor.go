// Copyright 2025 Prism ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the shape-bearing value types behind module
// parameters.
//
// Prism models carry structure, not computation: a Tensor here is shape,
// dtype, and storage, with no math attached.
package tensor

import (
	"github.com/prism-ml/prism/internal/tensor"
)

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// DataType identifies the element type of a tensor.
type DataType = tensor.DataType

// Supported data types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
	Int32   = tensor.Int32
	Int64   = tensor.Int64
)

// Tensor is a shape-bearing value holder.
type Tensor = tensor.Tensor

// New creates a zero-filled float32 tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	return tensor.New(shape)
}

// MustNew is like New but panics on an invalid shape.
func MustNew(shape Shape) *Tensor {
	return tensor.MustNew(shape)
}
