package nn

import (
	"github.com/prism-ml/prism/internal/tensor"
)

// Parameter represents a named tensor owned by a module.
//
// Parameters typically represent weights and biases of layers. In this
// structural model they carry shape and storage but no gradients.
//
// Example:
//
//	weight := nn.NewParameter("weight", tensor.MustNew(tensor.Shape{20, 10}))
//	fmt.Println(weight.Shape()) // [20 10]
type Parameter struct {
	name   string
	tensor *tensor.Tensor
}

// NewParameter creates a new parameter.
//
// Parameters:
//   - name: Local name within the owning module (e.g. "weight", "bias")
//   - t: The parameter tensor
//
// Returns a new Parameter.
func NewParameter(name string, t *tensor.Tensor) *Parameter {
	return &Parameter{
		name:   name,
		tensor: t,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Tensor returns the parameter tensor.
func (p *Parameter) Tensor() *tensor.Tensor {
	return p.tensor
}

// Shape returns the shape of the parameter tensor.
func (p *Parameter) Shape() tensor.Shape {
	return p.tensor.Shape()
}
