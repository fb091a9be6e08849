// Copyright 2025 Prism ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package introspect

import (
	"github.com/prism-ml/prism/internal/introspect"
)

// Sentinel names used by the traversal.
const (
	// RootName is the layer_name given to the traversal root.
	RootName = introspect.RootName

	// BlockInput is the input_source recorded for a residual block at
	// the traversal root.
	BlockInput = introspect.BlockInput

	// AdjustChildName is the child name reserved for a residual block's
	// dimension-adjustment layer.
	AdjustChildName = introspect.AdjustChildName
)

// LayerNode describes one module in a parsed tree.
type LayerNode = introspect.LayerNode

// ResidualConnection describes the skip path of a residual block.
type ResidualConnection = introspect.ResidualConnection

// ParamEntry is one direct parameter: local name and shape.
type ParamEntry = introspect.ParamEntry

// ParamList is an ordered name->shape mapping.
type ParamList = introspect.ParamList

// AttrEntry is one allow-listed attribute: name and current value.
type AttrEntry = introspect.AttrEntry

// AttrList is an ordered name->value mapping, in allow-list order.
type AttrList = introspect.AttrList

// Parser builds LayerNode trees from module instances.
type Parser = introspect.Parser

// ConfigError reports a failure to load the attribute allow-list.
type ConfigError = introspect.ConfigError

// Common errors.
var (
	ErrMissingKeepList   = introspect.ErrMissingKeepList
	ErrUnsupportedFormat = introspect.ErrUnsupportedFormat
)

// NewParser creates a Parser with the allow-list loaded from a TOML or
// YAML config file:
//
//	[attributes]
//	keep = ["in_features", "out_features"]
//
// Returns a *ConfigError if the file is missing, malformed, or lacks
// the attributes.keep field.
func NewParser(configPath string) (*Parser, error) {
	return introspect.NewParser(configPath)
}

// NewParserWithKeep creates a Parser from an in-memory allow-list.
func NewParserWithKeep(keep []string) *Parser {
	return introspect.NewParserWithKeep(keep)
}
