package nn

// ReLU is the Rectified Linear Unit activation.
//
// It is a leaf module with no parameters and no reportable attributes.
type ReLU struct{}

// NewReLU creates a new ReLU activation layer.
func NewReLU() *ReLU {
	return &ReLU{}
}

// NamedChildren returns an empty slice.
func (r *ReLU) NamedChildren() []NamedChild {
	return nil
}

// NamedParameters returns an empty slice.
func (r *ReLU) NamedParameters() []NamedParameter {
	return nil
}
