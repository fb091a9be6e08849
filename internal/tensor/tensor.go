package tensor

import "fmt"

// DataType identifies the element type of a tensor.
type DataType int

const (
	Float32 DataType = iota
	Float64
	Int32
	Int64
)

// Size returns the size of one element in bytes.
func (d DataType) Size() int {
	switch d {
	case Float32, Int32:
		return 4
	case Float64, Int64:
		return 8
	default:
		return 0
	}
}

// String returns the canonical dtype name.
func (d DataType) String() string {
	switch d {
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	default:
		return fmt.Sprintf("DataType(%d)", int(d))
	}
}

// Tensor is a shape-bearing value holder.
//
// This package carries the structural side of a tensor only: shape, dtype,
// and a flat float32 buffer. There are no compute backends and no math;
// models built on top of it exist to be described, not executed.
//
// Example:
//
//	t, err := tensor.New(tensor.Shape{20, 10})
//	fmt.Println(t.Shape()) // [20 10]
type Tensor struct {
	shape Shape
	dtype DataType
	data  []float32
}

// New creates a zero-filled float32 tensor with the given shape.
func New(shape Shape) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &Tensor{
		shape: shape.Clone(),
		dtype: Float32,
		data:  make([]float32, shape.NumElements()),
	}, nil
}

// MustNew is like New but panics on an invalid shape.
//
// Intended for layer constructors, where shapes are derived from already
// validated configuration.
func MustNew(shape Shape) *Tensor {
	t, err := New(shape)
	if err != nil {
		panic(fmt.Sprintf("tensor: %v", err))
	}
	return t
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.shape
}

// DType returns the tensor's data type.
func (t *Tensor) DType() DataType {
	return t.dtype
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.shape.NumElements()
}

// Data returns the underlying flat buffer.
func (t *Tensor) Data() []float32 {
	return t.data
}
