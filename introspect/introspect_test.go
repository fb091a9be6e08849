// Copyright 2025 Prism ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package introspect_test

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-ml/prism/internal/models"
	"github.com/prism-ml/prism/introspect"
	"github.com/prism-ml/prism/nn"
)

// TestDescribeResNet exercises the public surface end to end: config
// file, parse, JSON encoding.
func TestDescribeResNet(t *testing.T) {
	parser, err := introspect.NewParser(filepath.Join("testdata", "parse.toml"))
	require.NoError(t, err)

	model := models.ResNet18(1000)
	node, err := parser.Parse(model)
	require.NoError(t, err)

	assert.Equal(t, introspect.RootName, node.LayerName)
	assert.Equal(t, "ResNet", node.LayerType)

	v, ok := node.Attributes.Get("num_classes")
	require.True(t, ok)
	assert.Equal(t, 1000, v)

	// The tree survives a JSON round trip into generic structures.
	data, err := json.Marshal(node)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "root", decoded["layer_name"])
	assert.Equal(t, false, decoded["is_residual_block"])
	assert.Len(t, decoded["children"], 10)
}

// TestParseSequentialModel verifies the concrete two-field-layer
// scenario through the public API.
func TestParseSequentialModel(t *testing.T) {
	parser := introspect.NewParserWithKeep([]string{"in_features", "out_features"})

	model := nn.NewSequential(
		nn.NewLinear(10, 20),
		nn.NewReLU(),
	)

	node, err := parser.Parse(model)
	require.NoError(t, err)

	require.Len(t, node.Children, 2)
	fc := node.Children[0]
	assert.Equal(t, "0", fc.LayerName)
	assert.Equal(t, "Linear", fc.LayerType)

	in, ok := fc.Attributes.Get("in_features")
	require.True(t, ok)
	assert.Equal(t, 10, in)
	out, ok := fc.Attributes.Get("out_features")
	require.True(t, ok)
	assert.Equal(t, 20, out)

	assert.False(t, fc.IsResidualBlock)
	assert.Nil(t, fc.ResidualConnection)
}

// skipBlock is a user-defined residual block using the public tagging
// surface.
type skipBlock struct {
	nn.ResidualTag

	inner *nn.Linear
}

func (b *skipBlock) NamedChildren() []nn.NamedChild {
	return []nn.NamedChild{{Name: "inner", Module: b.inner}}
}

func (b *skipBlock) NamedParameters() []nn.NamedParameter { return nil }

// TestTagAndParse verifies the tagging helpers compose with parsing
// through the public API.
func TestTagAndParse(t *testing.T) {
	parser := introspect.NewParserWithKeep(nil)

	newBlock := nn.WithResidual("concat", func() *skipBlock {
		return &skipBlock{inner: nn.NewLinear(8, 8)}
	})

	node, err := parser.Parse(newBlock())
	require.NoError(t, err)

	require.True(t, node.IsResidualBlock)
	assert.Equal(t, "concat", node.ResidualConnection.FusionType)
	assert.Equal(t, introspect.BlockInput, node.ResidualConnection.InputSource)
}
