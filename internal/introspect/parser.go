// Package introspect turns assembled module trees into serializable,
// ordered layer descriptions.
//
// The Parser walks a module hierarchy depth-first and emits one
// LayerNode per module: its type, the shapes of its direct parameters,
// an allow-listed subset of its attributes, and, for modules tagged as
// residual blocks, the shape of the skip connection.
//
// The walk is read-only and deterministic: it never mutates the model,
// and repeated parses of an unmodified model yield structurally equal
// trees. There is no internal locking; a model concurrently mutated by
// another goroutine during a walk gives an unspecified result. A Parser
// itself is immutable after construction and safe for concurrent use.
package introspect

import (
	"fmt"
	"reflect"

	"github.com/prism-ml/prism/internal/nn"
)

const (
	// RootName is the layer_name given to the traversal root.
	RootName = "root"

	// BlockInput is the input_source recorded for a residual block with
	// no parent context (i.e. the block is the traversal root).
	BlockInput = "block_input"

	// AdjustChildName is the child name reserved for a residual block's
	// dimension-adjustment layer.
	AdjustChildName = "adjust"
)

// Parser builds LayerNode trees from module instances.
//
// The only state is the attribute allow-list, loaded once at
// construction and immutable thereafter.
type Parser struct {
	keep []string
}

// NewParser creates a Parser with the allow-list loaded from a TOML or
// YAML config file (see loadKeepList for the expected layout).
//
// Returns a *ConfigError if the file is missing, malformed, or lacks the
// attributes.keep field.
func NewParser(configPath string) (*Parser, error) {
	keep, err := loadKeepList(configPath)
	if err != nil {
		return nil, err
	}
	return &Parser{keep: keep}, nil
}

// NewParserWithKeep creates a Parser from an in-memory allow-list,
// bypassing file configuration. The list is copied.
func NewParserWithKeep(keep []string) *Parser {
	cloned := make([]string, len(keep))
	copy(cloned, keep)
	return &Parser{keep: cloned}
}

// Keep returns a copy of the attribute allow-list, in configured order.
func (p *Parser) Keep() []string {
	out := make([]string, len(p.keep))
	copy(out, p.keep)
	return out
}

// Parse describes the given model as a LayerNode tree rooted at a node
// named "root".
//
// Returns a *nn.TypeMismatchError if model is not an nn.Module.
func (p *Parser) Parse(model any) (*LayerNode, error) {
	m, ok := model.(nn.Module)
	if !ok {
		return nil, &nn.TypeMismatchError{Op: "Parse", Want: "nn.Module", Got: fmt.Sprintf("%T", model)}
	}
	return p.parseModule(m, RootName, ""), nil
}

// parseModule builds the node for one module and recurses into its
// children. parentInput carries the name of the node feeding this
// module; it surfaces only as a residual block's input_source.
func (p *Parser) parseModule(m nn.Module, name, parentInput string) *LayerNode {
	node := &LayerNode{
		LayerName:  name,
		LayerType:  typeName(m),
		Parameters: p.parameters(m),
		Attributes: p.attributes(m),
		Children:   []*LayerNode{},
	}

	if rm, ok := m.(nn.ResidualModule); ok && rm.IsResidualBlock() {
		fusion := rm.FusionType()
		if fusion == "" {
			fusion = nn.DefaultFusion
		}
		input := parentInput
		if input == "" {
			input = BlockInput
		}
		node.IsResidualBlock = true
		node.ResidualConnection = &ResidualConnection{
			InputSource: input,
			FusionType:  fusion,
		}

		// Main-branch children see this block as their input; the
		// adjust child sits on the skip path and inherits the block's
		// own input context.
		for _, child := range m.NamedChildren() {
			if child.Name == AdjustChildName {
				node.ResidualConnection.AdjustLayer = p.parseModule(child.Module, child.Name, parentInput)
				continue
			}
			node.Children = append(node.Children, p.parseModule(child.Module, child.Name, name))
		}
		return node
	}

	for _, child := range m.NamedChildren() {
		node.Children = append(node.Children, p.parseModule(child.Module, child.Name, name))
	}
	return node
}

// parameters records the module's direct parameter shapes.
func (p *Parser) parameters(m nn.Module) ParamList {
	named := m.NamedParameters()
	params := make(ParamList, 0, len(named))
	for _, np := range named {
		params = append(params, ParamEntry{Name: np.Name, Shape: np.Param.Shape().Dims()})
	}
	return params
}

// attributes filters the module's reported attributes through the
// allow-list, preserving allow-list order. Names absent on the module
// are omitted, never emitted as placeholders.
func (p *Parser) attributes(m nn.Module) AttrList {
	attrs := make(AttrList, 0, len(p.keep))

	provider, ok := m.(nn.AttributeProvider)
	if !ok {
		return attrs
	}
	reported := provider.Attributes()

	for _, name := range p.keep {
		if value, present := reported[name]; present {
			attrs = append(attrs, AttrEntry{Name: name, Value: value})
		}
	}
	return attrs
}

// typeName reports the bare runtime type name of v ("Linear", not
// "*nn.Linear"), matching how a layer type reads in a model summary.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String() // anonymous types
	}
	return t.Name()
}
