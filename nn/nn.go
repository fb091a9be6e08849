// Copyright 2025 Prism ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/prism-ml/prism/internal/nn"
	"github.com/prism-ml/prism/internal/tensor"
)

// Module is the base interface for all network components: named
// children plus named parameters.
type Module = nn.Module

// NamedChild pairs a child module with the name its parent gave it.
type NamedChild = nn.NamedChild

// NamedParameter pairs a parameter with its local name.
type NamedParameter = nn.NamedParameter

// AttributeProvider is implemented by modules exposing reportable
// scalar attributes.
type AttributeProvider = nn.AttributeProvider

// Parameter represents a named tensor owned by a module.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return nn.NewParameter(name, t)
}

// TypeMismatchError reports a value that is not a (taggable) Module.
type TypeMismatchError = nn.TypeMismatchError

// Layers

// Linear is a fully connected (dense) layer.
type Linear = nn.Linear

// NewLinear creates a new linear layer with a bias term.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
func NewLinear(inFeatures, outFeatures int) *Linear {
	return nn.NewLinear(inFeatures, outFeatures)
}

// NewLinearWithBias creates a new linear layer, optionally without bias.
func NewLinearWithBias(inFeatures, outFeatures int, useBias bool) *Linear {
	return nn.NewLinearWithBias(inFeatures, outFeatures, useBias)
}

// Conv2d is a 2D convolutional layer.
type Conv2d = nn.Conv2d

// NewConv2d creates a new 2D convolutional layer.
//
// Example:
//
//	conv := nn.NewConv2d(3, 64, 7, 2, 3, false) // in, out, kernel, stride, padding, bias
func NewConv2d(inChannels, outChannels, kernelSize, stride, padding int, useBias bool) *Conv2d {
	return nn.NewConv2d(inChannels, outChannels, kernelSize, stride, padding, useBias)
}

// BatchNorm2d is a 2D batch-normalization layer.
type BatchNorm2d = nn.BatchNorm2d

// NewBatchNorm2d creates a new BatchNorm2d layer with default eps and
// momentum.
func NewBatchNorm2d(numFeatures int) *BatchNorm2d {
	return nn.NewBatchNorm2d(numFeatures)
}

// ReLU is the Rectified Linear Unit activation.
type ReLU = nn.ReLU

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return nn.NewReLU()
}

// MaxPool2d is a 2D max-pooling layer.
type MaxPool2d = nn.MaxPool2d

// NewMaxPool2d creates a new 2D max pooling layer.
func NewMaxPool2d(kernelSize, stride, padding int) *MaxPool2d {
	return nn.NewMaxPool2d(kernelSize, stride, padding)
}

// AvgPool2d is an adaptive 2D average-pooling layer.
type AvgPool2d = nn.AvgPool2d

// NewAvgPool2d creates a new adaptive average pooling layer.
func NewAvgPool2d(outputSize int) *AvgPool2d {
	return nn.NewAvgPool2d(outputSize)
}

// Sequential is a container module with index-named children.
type Sequential = nn.Sequential

// NewSequential creates a new Sequential container.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
func NewSequential(modules ...Module) *Sequential {
	return nn.NewSequential(modules...)
}

// Residual tagging

// DefaultFusion is the fusion strategy assumed for unlabeled residual
// blocks.
const DefaultFusion = nn.DefaultFusion

// ResidualModule is implemented by modules that may be residual blocks.
type ResidualModule = nn.ResidualModule

// ResidualTag is an embeddable residual marker.
type ResidualTag = nn.ResidualTag

// TagResidual marks a module instance as a residual block with the
// given fusion strategy.
func TagResidual(v any, fusion string) error {
	return nn.TagResidual(v, fusion)
}

// MustTagResidual is like TagResidual but panics on error.
func MustTagResidual(v any, fusion string) {
	nn.MustTagResidual(v, fusion)
}

// WithResidual wraps a module constructor so every instance it builds
// is tagged as a residual block after construction completes.
func WithResidual[M Module](fusion string, ctor func() M) func() M {
	return nn.WithResidual(fusion, ctor)
}
