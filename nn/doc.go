// Copyright 2025 Prism ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the structural module model walked by Prism.
//
// # Overview
//
// This package contains:
//   - Module interface: named children + named parameters
//   - Parameter: a named, shape-bearing tensor
//   - Layers: Linear, Conv2d, BatchNorm2d, ReLU, MaxPool2d, AvgPool2d
//   - Sequential: container with index-named children
//   - Residual tagging: ResidualTag, TagResidual, WithResidual
//
// # Basic Usage
//
//	import (
//	    "github.com/prism-ml/prism/nn"
//	    "github.com/prism-ml/prism/introspect"
//	)
//
//	func main() {
//	    model := nn.NewSequential(
//	        nn.NewLinear(784, 128),
//	        nn.NewReLU(),
//	        nn.NewLinear(128, 10),
//	    )
//
//	    parser := introspect.NewParserWithKeep([]string{"in_features", "out_features"})
//	    node, _ := parser.Parse(model)
//	    _ = node
//	}
//
// # Residual blocks
//
// Embed ResidualTag in a block type and tag instances at construction;
// the introspect package then reports the block's skip connection,
// moving a child named "adjust" into residual_connection.adjust_layer:
//
//	type BasicBlock struct {
//	    nn.ResidualTag
//	    // ...
//	}
//
//	func NewBasicBlock() *BasicBlock {
//	    b := &BasicBlock{ /* ... */ }
//	    nn.MustTagResidual(b, "add")
//	    return b
//	}
package nn
