package nn

import "fmt"

// MaxPool2d is a 2D max-pooling layer.
//
// Leaf module, no parameters. Reportable attributes: kernel_size,
// stride, padding.
type MaxPool2d struct {
	kernelSize int
	stride     int
	padding    int
}

// NewMaxPool2d creates a new 2D max pooling layer.
//
// Panics on non-positive kernel size or stride.
func NewMaxPool2d(kernelSize, stride, padding int) *MaxPool2d {
	if kernelSize <= 0 || stride <= 0 {
		panic(fmt.Sprintf("maxpool2d: invalid kernel=%d, stride=%d", kernelSize, stride))
	}

	return &MaxPool2d{
		kernelSize: kernelSize,
		stride:     stride,
		padding:    padding,
	}
}

// NamedChildren returns an empty slice.
func (m *MaxPool2d) NamedChildren() []NamedChild {
	return nil
}

// NamedParameters returns an empty slice.
func (m *MaxPool2d) NamedParameters() []NamedParameter {
	return nil
}

// Attributes reports the layer configuration.
func (m *MaxPool2d) Attributes() map[string]any {
	return map[string]any{
		"kernel_size": m.kernelSize,
		"stride":      m.stride,
		"padding":     m.padding,
	}
}

// AvgPool2d is a 2D average-pooling layer with a fixed output size,
// matching the adaptive pooling used ahead of a classifier head.
//
// Leaf module, no parameters. Reportable attribute: output_size.
type AvgPool2d struct {
	outputSize int
}

// NewAvgPool2d creates a new adaptive average pooling layer producing
// outputSize x outputSize spatial output.
func NewAvgPool2d(outputSize int) *AvgPool2d {
	if outputSize <= 0 {
		panic(fmt.Sprintf("avgpool2d: invalid output size %d", outputSize))
	}
	return &AvgPool2d{outputSize: outputSize}
}

// NamedChildren returns an empty slice.
func (a *AvgPool2d) NamedChildren() []NamedChild {
	return nil
}

// NamedParameters returns an empty slice.
func (a *AvgPool2d) NamedParameters() []NamedParameter {
	return nil
}

// Attributes reports the layer configuration.
func (a *AvgPool2d) Attributes() map[string]any {
	return map[string]any{
		"output_size": a.outputSize,
	}
}
