package nn

import "fmt"

// Sequential is a container module holding an ordered list of children.
//
// Children are named by their index ("0", "1", ...), so a description of
// a Sequential reads the same way PyTorch prints one.
//
// Example:
//
//	model := nn.NewSequential(
//	    nn.NewLinear(784, 128),
//	    nn.NewReLU(),
//	    nn.NewLinear(128, 10),
//	)
type Sequential struct {
	modules []Module
}

// NewSequential creates a new Sequential container.
func NewSequential(modules ...Module) *Sequential {
	return &Sequential{modules: modules}
}

// Add appends a module to the sequence.
//
// This allows building models incrementally:
//
//	stage := nn.NewSequential()
//	for i := 0; i < depth; i++ {
//	    stage.Add(newBlock(i))
//	}
func (s *Sequential) Add(module Module) {
	s.modules = append(s.modules, module)
}

// Len returns the number of modules in the sequence.
func (s *Sequential) Len() int {
	return len(s.modules)
}

// Module returns the module at the given index.
//
// Panics if index is out of bounds.
func (s *Sequential) Module(index int) Module {
	if index < 0 || index >= len(s.modules) {
		panic("Sequential.Module: index out of bounds")
	}
	return s.modules[index]
}

// NamedChildren returns the contained modules, named by index.
func (s *Sequential) NamedChildren() []NamedChild {
	children := make([]NamedChild, len(s.modules))
	for i, m := range s.modules {
		children[i] = NamedChild{Name: fmt.Sprintf("%d", i), Module: m}
	}
	return children
}

// NamedParameters returns an empty slice; all parameters belong to the
// contained modules.
func (s *Sequential) NamedParameters() []NamedParameter {
	return nil
}
