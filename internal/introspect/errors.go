package introspect

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrMissingKeepList   = errors.New("config has no attributes.keep list")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

// ConfigError reports a failure to load the attribute allow-list.
//
// It is returned by NewParser when the config file is missing,
// unreadable, malformed, or lacks the attributes.keep field. A Parser is
// never constructed in a degraded state: construction either yields a
// usable allow-list or this error.
type ConfigError struct {
	Path string // Config file path
	Err  error  // Underlying cause
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("load parser config %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
