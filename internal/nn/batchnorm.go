package nn

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
)

// BatchNorm2d is a 2D batch-normalization layer.
//
// Structurally it owns the learned affine parameters:
//   - weight: [num_features] (gamma)
//   - bias:   [num_features] (beta)
//
// Running statistics are not modeled; they are buffers, not parameters.
//
// Reportable attributes: num_features, eps, momentum.
type BatchNorm2d struct {
	numFeatures int
	eps         float64
	momentum    float64

	weight *Parameter // [num_features]
	bias   *Parameter // [num_features]
}

// NewBatchNorm2d creates a new BatchNorm2d layer with the PyTorch
// defaults eps=1e-5 and momentum=0.1.
func NewBatchNorm2d(numFeatures int) *BatchNorm2d {
	if numFeatures <= 0 {
		panic(fmt.Sprintf("batchnorm2d: invalid num_features %d", numFeatures))
	}

	return &BatchNorm2d{
		numFeatures: numFeatures,
		eps:         1e-5,
		momentum:    0.1,
		weight:      NewParameter("weight", tensor.MustNew(tensor.Shape{numFeatures})),
		bias:        NewParameter("bias", tensor.MustNew(tensor.Shape{numFeatures})),
	}
}

// NumFeatures returns the normalized channel count.
func (b *BatchNorm2d) NumFeatures() int {
	return b.numFeatures
}

// NamedChildren returns an empty slice; BatchNorm2d is a leaf module.
func (b *BatchNorm2d) NamedChildren() []NamedChild {
	return nil
}

// NamedParameters returns weight (gamma) and bias (beta).
func (b *BatchNorm2d) NamedParameters() []NamedParameter {
	return []NamedParameter{
		{Name: "weight", Param: b.weight},
		{Name: "bias", Param: b.bias},
	}
}

// Attributes reports the layer configuration.
func (b *BatchNorm2d) Attributes() map[string]any {
	return map[string]any{
		"num_features": b.numFeatures,
		"eps":          b.eps,
		"momentum":     b.momentum,
	}
}
