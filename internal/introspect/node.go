package introspect

import (
	"bytes"
	"encoding/json"
)

// LayerNode describes one module in a parsed tree.
//
// Nodes are transient: Parse builds a fresh tree on every call, the
// caller owns the result, and nothing here retains references into the
// parsed model beyond attribute values.
//
// The JSON encoding preserves order everywhere it matters: struct fields
// encode in declaration order, and Params/Attrs encode as JSON objects
// in insertion order.
type LayerNode struct {
	LayerName          string              `json:"layer_name"`
	LayerType          string              `json:"layer_type"`
	Parameters         ParamList           `json:"parameters"`
	Attributes         AttrList            `json:"attributes"`
	IsResidualBlock    bool                `json:"is_residual_block"`
	ResidualConnection *ResidualConnection `json:"residual_connection"`
	Children           []*LayerNode        `json:"children"`
}

// ResidualConnection describes the skip path of a residual block.
//
// Present on a node exactly when IsResidualBlock is true.
type ResidualConnection struct {
	// InputSource names the node feeding the skip path: the block's
	// parent-supplied name, or "block_input" when the block is the
	// traversal root.
	InputSource string `json:"input_source"`

	// FusionType is the strategy combining main branch and skip path,
	// e.g. "add" or "concat".
	FusionType string `json:"fusion_type"`

	// AdjustLayer is the parsed dimension-adjustment child (the child
	// named "adjust"), or nil if the block has none.
	AdjustLayer *LayerNode `json:"adjust_layer"`
}

// ParamEntry is one direct parameter of a module: local name and shape.
type ParamEntry struct {
	Name  string
	Shape []int
}

// ParamList is an ordered name->shape mapping.
//
// It encodes to a JSON object ({"weight":[20,10],"bias":[20]}) rather
// than an array, preserving declaration order.
type ParamList []ParamEntry

// Shape returns the shape recorded under name.
func (l ParamList) Shape(name string) ([]int, bool) {
	for _, e := range l {
		if e.Name == name {
			return e.Shape, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the list as an ordered JSON object.
func (l ParamList) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(l), func(i int) (string, any) {
		return l[i].Name, l[i].Shape
	})
}

// AttrEntry is one allow-listed attribute: name and current value.
type AttrEntry struct {
	Name  string
	Value any
}

// AttrList is an ordered name->value mapping, in allow-list order.
//
// It encodes to a JSON object, preserving insertion order.
type AttrList []AttrEntry

// Get returns the value recorded under name.
func (l AttrList) Get(name string) (any, bool) {
	for _, e := range l {
		if e.Name == name {
			return e.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the list as an ordered JSON object.
func (l AttrList) MarshalJSON() ([]byte, error) {
	return marshalOrdered(len(l), func(i int) (string, any) {
		return l[i].Name, l[i].Value
	})
}

// marshalOrdered writes n key/value pairs as a JSON object, keeping
// index order. encoding/json sorts map keys, so ordered mappings have to
// be assembled by hand.
func marshalOrdered(n int, pair func(i int) (string, any)) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, value := pair(i)

		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
