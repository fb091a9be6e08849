package nn

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
)

// Conv2d is a 2D convolutional layer.
//
// Structurally it owns:
//   - weight: [out_channels, in_channels, kernel, kernel]
//   - bias:   [out_channels] (optional)
//
// Reportable attributes: in_channels, out_channels, kernel_size, stride,
// padding.
//
// Example:
//
//	// 3 channels -> 64 channels, 7x7 kernel, stride 2, padding 3
//	conv := nn.NewConv2d(3, 64, 7, 2, 3, false)
type Conv2d struct {
	inChannels  int
	outChannels int
	kernelSize  int
	stride      int
	padding     int
	useBias     bool

	weight *Parameter // [out_channels, in_channels, kernel, kernel]
	bias   *Parameter // [out_channels] or nil
}

// NewConv2d creates a new 2D convolutional layer with square kernels.
//
// Parameters:
//   - inChannels: Number of input channels
//   - outChannels: Number of output channels (number of filters)
//   - kernelSize: Kernel edge length
//   - stride: Stride for convolution (commonly 1 or 2)
//   - padding: Zero padding applied to the input (commonly 0, 1, 3)
//   - useBias: Whether to include a bias term
//
// Panics on non-positive channels, kernel size, or stride.
func NewConv2d(inChannels, outChannels, kernelSize, stride, padding int, useBias bool) *Conv2d {
	if inChannels <= 0 || outChannels <= 0 {
		panic(fmt.Sprintf("conv2d: invalid channels in=%d, out=%d", inChannels, outChannels))
	}
	if kernelSize <= 0 {
		panic(fmt.Sprintf("conv2d: invalid kernel size %d", kernelSize))
	}
	if stride <= 0 {
		panic(fmt.Sprintf("conv2d: invalid stride %d", stride))
	}

	c := &Conv2d{
		inChannels:  inChannels,
		outChannels: outChannels,
		kernelSize:  kernelSize,
		stride:      stride,
		padding:     padding,
		useBias:     useBias,
		weight: NewParameter("weight",
			tensor.MustNew(tensor.Shape{outChannels, inChannels, kernelSize, kernelSize})),
	}
	if useBias {
		c.bias = NewParameter("bias", tensor.MustNew(tensor.Shape{outChannels}))
	}
	return c
}

// OutChannels returns the number of output channels.
func (c *Conv2d) OutChannels() int {
	return c.outChannels
}

// NamedChildren returns an empty slice; Conv2d is a leaf module.
func (c *Conv2d) NamedChildren() []NamedChild {
	return nil
}

// NamedParameters returns weight and, when present, bias.
func (c *Conv2d) NamedParameters() []NamedParameter {
	params := []NamedParameter{{Name: "weight", Param: c.weight}}
	if c.bias != nil {
		params = append(params, NamedParameter{Name: "bias", Param: c.bias})
	}
	return params
}

// Attributes reports the layer configuration.
func (c *Conv2d) Attributes() map[string]any {
	return map[string]any{
		"in_channels":  c.inChannels,
		"out_channels": c.outChannels,
		"kernel_size":  c.kernelSize,
		"stride":       c.stride,
		"padding":      c.padding,
	}
}
