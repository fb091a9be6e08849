// Package nn implements the structural module model for the Prism ML toolkit.
//
// This package provides the building blocks that Prism's introspection
// layer walks:
//   - Module interface: named children and named parameters
//   - AttributeProvider: optional reportable scalar attributes
//   - Parameter: a named, shape-bearing tensor
//   - Layers: Linear, Conv2d, BatchNorm2d, ReLU, MaxPool2d, AvgPool2d
//   - Sequential: container with index-named children
//   - Residual tagging: mark a module as a residual block
//
// Design inspired by PyTorch's nn.Module, reduced to the structural
// surface: modules here declare what they are made of, they do not compute.
package nn

// Module is the base interface for all network components.
//
// A Module exposes its composition: an ordered list of named direct
// children and an ordered list of named direct parameters. Anything
// satisfying this interface can be walked by the introspect package,
// whatever framework it comes from.
//
// Both lists cover the module's own members only; descendants report
// their own parameters themselves.
type Module interface {
	// NamedChildren returns the direct child modules in declared order.
	//
	// Returns an empty slice for leaf modules.
	NamedChildren() []NamedChild

	// NamedParameters returns the module's own parameters in declared
	// order, excluding any parameters owned by children.
	//
	// Returns an empty slice for parameter-free modules
	// (e.g. activations, containers).
	NamedParameters() []NamedParameter
}

// NamedChild pairs a child module with the name its parent gave it.
type NamedChild struct {
	Name   string
	Module Module
}

// NamedParameter pairs a parameter with its local (non-recursive) name.
type NamedParameter struct {
	Name  string
	Param *Parameter
}

// AttributeProvider is an optional interface for modules that expose
// scalar configuration attributes (e.g. in_features, stride).
//
// The introspect package queries this map against its configured
// allow-list; modules that do not implement it simply report no
// attributes.
type AttributeProvider interface {
	// Attributes returns the module's reportable attributes by name.
	//
	// The returned map is a fresh copy; callers may not mutate module
	// state through it.
	Attributes() map[string]any
}
