package nn

import "reflect"

// DefaultFusion is the fusion strategy assumed when a residual block
// does not carry an explicit label.
const DefaultFusion = "add"

// ResidualModule is implemented by modules that may be residual blocks.
//
// A module reports residual status through this interface; the
// introspect package checks for it during traversal. Embedding
// ResidualTag provides a ready-made implementation.
type ResidualModule interface {
	// IsResidualBlock reports whether the module has been tagged as a
	// residual block.
	IsResidualBlock() bool

	// FusionType returns the skip-connection fusion label
	// (e.g. "add", "concat"). The empty string means unlabeled; readers
	// should fall back to DefaultFusion.
	FusionType() string
}

// ResidualTag is an embeddable residual marker.
//
// Embed it in a block type and tag instances at construction:
//
//	type BasicBlock struct {
//	    nn.ResidualTag
//	    conv1 *nn.Conv2d
//	    ...
//	}
//
//	func NewBasicBlock(...) *BasicBlock {
//	    b := &BasicBlock{...}
//	    nn.MustTagResidual(b, "add")
//	    return b
//	}
//
// The zero value is untagged: IsResidualBlock reports false until
// TagResidual runs.
type ResidualTag struct {
	residual bool
	fusion   string
}

// IsResidualBlock reports whether the tag has been applied.
func (t *ResidualTag) IsResidualBlock() bool {
	return t.residual
}

// FusionType returns the fusion label set by TagResidual, or "" if the
// tag has not been applied.
func (t *ResidualTag) FusionType() string {
	return t.fusion
}

func (t *ResidualTag) setResidual(fusion string) {
	t.residual = true
	t.fusion = fusion
}

// residualTaggable is satisfied by anything embedding *ResidualTag.
type residualTaggable interface {
	setResidual(fusion string)
}

// TagResidual marks a module instance as a residual block with the given
// fusion strategy.
//
// An empty fusion string is recorded as DefaultFusion. Tagging is
// idempotent in the last-writer-wins sense: re-tagging overwrites the
// fusion label.
//
// Returns a *TypeMismatchError if v is not a Module, or is a Module that
// does not embed ResidualTag.
func TagResidual(v any, fusion string) error {
	if fusion == "" {
		fusion = DefaultFusion
	}

	if _, ok := v.(Module); !ok {
		return &TypeMismatchError{Op: "TagResidual", Want: "nn.Module", Got: typeName(v)}
	}

	t, ok := v.(residualTaggable)
	if !ok {
		return &TypeMismatchError{Op: "TagResidual", Want: "module embedding nn.ResidualTag", Got: typeName(v)}
	}

	t.setResidual(fusion)
	return nil
}

// MustTagResidual is like TagResidual but panics on error.
//
// Intended for block constructors, where the receiver type is known to
// embed ResidualTag.
func MustTagResidual(v any, fusion string) {
	if err := TagResidual(v, fusion); err != nil {
		panic(err)
	}
}

// WithResidual wraps a module constructor so that every instance it
// builds is tagged as a residual block after construction completes.
//
// This is the composition-step equivalent of patching a constructor:
// the original constructor runs first (all sub-modules assembled, all
// fields set), then the instance is tagged, once per instance.
//
//	newBlock := nn.WithResidual("concat", func() *BasicBlock {
//	    return newUntaggedBasicBlock(64, 64, 1)
//	})
//	b := newBlock() // b.IsResidualBlock() == true
//
// The returned constructor panics with a *TypeMismatchError if M does
// not embed ResidualTag.
func WithResidual[M Module](fusion string, ctor func() M) func() M {
	return func() M {
		m := ctor()
		MustTagResidual(m, fusion)
		return m
	}
}

// typeName reports the runtime type of v for error messages.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}
