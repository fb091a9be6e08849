package nn

import "fmt"

// TypeMismatchError reports a value handed to an API that requires a
// Module (or a residual-taggable Module) but is not one.
//
// It is returned by TagResidual and by introspect.Parser.Parse; it is
// never produced for ordinary structural conditions such as missing
// attributes or absent adjust children.
type TypeMismatchError struct {
	Op   string // Operation that rejected the value (e.g. "TagResidual", "Parse")
	Want string // Required capability (e.g. "nn.Module")
	Got  string // Runtime type of the rejected value
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", e.Op, e.Want, e.Got)
}
