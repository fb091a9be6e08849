package nn

import (
	"fmt"

	"github.com/prism-ml/prism/internal/tensor"
)

// Linear is a fully connected (dense) layer.
//
// Structurally it owns:
//   - weight: [out_features, in_features]
//   - bias:   [out_features] (optional)
//
// Reportable attributes: in_features, out_features.
//
// Example:
//
//	layer := nn.NewLinear(784, 128)
//	layer.NamedParameters() // weight [128 784], bias [128]
type Linear struct {
	inFeatures  int
	outFeatures int
	useBias     bool

	weight *Parameter // [out_features, in_features]
	bias   *Parameter // [out_features] or nil
}

// NewLinear creates a new Linear layer with a bias term.
func NewLinear(inFeatures, outFeatures int) *Linear {
	return NewLinearWithBias(inFeatures, outFeatures, true)
}

// NewLinearWithBias creates a new Linear layer, optionally without bias.
//
// Panics if either feature count is not positive.
func NewLinearWithBias(inFeatures, outFeatures int, useBias bool) *Linear {
	if inFeatures <= 0 || outFeatures <= 0 {
		panic(fmt.Sprintf("linear: invalid features in=%d, out=%d", inFeatures, outFeatures))
	}

	l := &Linear{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		useBias:     useBias,
		weight:      NewParameter("weight", tensor.MustNew(tensor.Shape{outFeatures, inFeatures})),
	}
	if useBias {
		l.bias = NewParameter("bias", tensor.MustNew(tensor.Shape{outFeatures}))
	}
	return l
}

// InFeatures returns the input feature count.
func (l *Linear) InFeatures() int {
	return l.inFeatures
}

// OutFeatures returns the output feature count.
func (l *Linear) OutFeatures() int {
	return l.outFeatures
}

// NamedChildren returns an empty slice; Linear is a leaf module.
func (l *Linear) NamedChildren() []NamedChild {
	return nil
}

// NamedParameters returns weight and, when present, bias.
func (l *Linear) NamedParameters() []NamedParameter {
	params := []NamedParameter{{Name: "weight", Param: l.weight}}
	if l.bias != nil {
		params = append(params, NamedParameter{Name: "bias", Param: l.bias})
	}
	return params
}

// Attributes reports the layer configuration.
func (l *Linear) Attributes() map[string]any {
	return map[string]any{
		"in_features":  l.inFeatures,
		"out_features": l.outFeatures,
	}
}
