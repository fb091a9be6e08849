package introspect

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prism-ml/prism/internal/nn"
)

func newTestParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser(filepath.Join("testdata", "parse.toml"))
	require.NoError(t, err)
	return p
}

// TestParser_SimpleLayer verifies basic parsing of a plain module.
func TestParser_SimpleLayer(t *testing.T) {
	p := newTestParser(t)

	layer := newSimpleLayer(10, 20)
	node := p.parseModule(layer, "test_layer", "")

	assert.Equal(t, "test_layer", node.LayerName)
	assert.Equal(t, "simpleLayer", node.LayerType)
	assert.False(t, node.IsResidualBlock)
	assert.Nil(t, node.ResidualConnection)

	// Attributes follow the allow-list order.
	require.Len(t, node.Attributes, 2)
	assert.Equal(t, AttrEntry{Name: "in_features", Value: 10}, node.Attributes[0])
	assert.Equal(t, AttrEntry{Name: "out_features", Value: 20}, node.Attributes[1])

	// One child: the internal Linear, with its own parameters.
	require.Len(t, node.Children, 1)
	fc := node.Children[0]
	assert.Equal(t, "fc", fc.LayerName)
	assert.Equal(t, "Linear", fc.LayerType)

	weight, ok := fc.Parameters.Shape("weight")
	require.True(t, ok)
	assert.Equal(t, []int{20, 10}, weight)
	bias, ok := fc.Parameters.Shape("bias")
	require.True(t, ok)
	assert.Equal(t, []int{20}, bias)

	// The wrapper itself has no direct parameters.
	assert.Empty(t, node.Parameters)
}

// TestParser_ResidualBlock verifies residual parsing without an adjust
// layer.
func TestParser_ResidualBlock(t *testing.T) {
	p := newTestParser(t)

	block := newResidualFixture(false)
	node := p.parseModule(block, "residual_block", "")

	assert.True(t, node.IsResidualBlock)
	require.NotNil(t, node.ResidualConnection)
	assert.Equal(t, "add", node.ResidualConnection.FusionType)
	assert.Equal(t, BlockInput, node.ResidualConnection.InputSource)
	assert.Nil(t, node.ResidualConnection.AdjustLayer)

	require.Len(t, node.Children, 2)
	names := []string{node.Children[0].LayerName, node.Children[1].LayerName}
	assert.Equal(t, []string{"main1", "main2"}, names)
}

// TestParser_ResidualWithAdjust verifies that the adjust child moves
// into residual_connection and out of children.
func TestParser_ResidualWithAdjust(t *testing.T) {
	p := newTestParser(t)

	block := newResidualFixture(true)
	node := p.parseModule(block, "residual_with_adjust", "")

	adjust := node.ResidualConnection.AdjustLayer
	require.NotNil(t, adjust)
	assert.Equal(t, "adjust", adjust.LayerName)
	assert.Equal(t, "Linear", adjust.LayerType)

	// Main branch unaffected.
	require.Len(t, node.Children, 2)
	assert.Equal(t, "main1", node.Children[0].LayerName)
}

// TestParser_ResidualNoChildren verifies a tagged block with no children
// still reports residual status with an empty main branch.
func TestParser_ResidualNoChildren(t *testing.T) {
	p := newTestParser(t)

	node := p.parseModule(&bareResidual{}, "lonely", "")

	assert.True(t, node.IsResidualBlock)
	require.NotNil(t, node.ResidualConnection)
	assert.Empty(t, node.Children)
	assert.NotNil(t, node.Children)
}

// TestParser_FusionDefault verifies that an unlabeled residual module
// reports the default fusion strategy.
func TestParser_FusionDefault(t *testing.T) {
	p := newTestParser(t)

	node := p.parseModule(&bareResidual{}, "bare", "")
	assert.Equal(t, "add", node.ResidualConnection.FusionType)
}

// TestParser_AttributeFiltering verifies allow-listed attributes
// survive and everything else is dropped.
func TestParser_AttributeFiltering(t *testing.T) {
	p := newTestParser(t)

	node := p.parseModule(&extraAttrLayer{}, RootName, "")

	in, ok := node.Attributes.Get("in_features")
	require.True(t, ok)
	assert.Equal(t, 16, in)

	_, hasKeep := node.Attributes.Get("keep_me")
	_, hasDrop := node.Attributes.Get("drop_me")
	assert.False(t, hasKeep)
	assert.False(t, hasDrop)
	assert.Len(t, node.Attributes, 1)
}

// TestParser_MissingAllowListedAttribute verifies that allow-listed
// names absent on the module are omitted, not emitted as placeholders.
func TestParser_MissingAllowListedAttribute(t *testing.T) {
	p := NewParserWithKeep([]string{"in_features", "out_features", "momentum"})

	node := p.parseModule(nn.NewLinear(4, 8), "fc", "")

	require.Len(t, node.Attributes, 2)
	_, hasMomentum := node.Attributes.Get("momentum")
	assert.False(t, hasMomentum)
}

// TestParser_NestedResidual verifies recursion through a wrapper into a
// residual block, and pins the nested block's input_source to its
// parent's name.
func TestParser_NestedResidual(t *testing.T) {
	p := newTestParser(t)

	node := p.parseModule(newNestedLayer(), "nested", "")

	require.Len(t, node.Children, 1)
	block := node.Children[0]
	assert.Equal(t, "block", block.LayerName)
	assert.True(t, block.IsResidualBlock)
	require.NotNil(t, block.ResidualConnection)
	assert.Equal(t, "nested", block.ResidualConnection.InputSource)
	assert.Len(t, block.Children, 2)
}

// TestParser_MainBranchParentContext verifies that a residual block
// nested in another block's main branch reports the outer block's name
// as its input source.
func TestParser_MainBranchParentContext(t *testing.T) {
	p := newTestParser(t)

	inner := newResidualFixture(false)
	outer := newOuterResidual(inner, "concat")

	node := p.parseModule(outer, "outer", "root")

	assert.True(t, node.IsResidualBlock)
	assert.Equal(t, "root", node.ResidualConnection.InputSource)
	assert.Equal(t, "concat", node.ResidualConnection.FusionType)

	require.Len(t, node.Children, 1)
	body := node.Children[0]
	require.True(t, body.IsResidualBlock)
	assert.Equal(t, "outer", body.ResidualConnection.InputSource)
}

// TestParser_EmbeddedTaggedBlock verifies a wrapper embedding a tagged
// block is itself reported as residual.
func TestParser_EmbeddedTaggedBlock(t *testing.T) {
	p := newTestParser(t)

	wrapper := &wrappedResidual{residualFixture: newResidualFixture(false)}
	node := p.parseModule(wrapper, "wrapper", "")

	assert.Equal(t, "wrappedResidual", node.LayerType)
	assert.True(t, node.IsResidualBlock)
	require.NotNil(t, node.ResidualConnection)
	assert.Equal(t, "add", node.ResidualConnection.FusionType)

	// Children promote from the embedded block.
	require.Len(t, node.Children, 2)
	assert.Equal(t, "main1", node.Children[0].LayerName)
}

// TestParser_Parse verifies the public entry point: root naming and
// type checking.
func TestParser_Parse(t *testing.T) {
	p := newTestParser(t)

	node, err := p.Parse(newSimpleLayer(10, 20))
	require.NoError(t, err)
	assert.Equal(t, RootName, node.LayerName)
	assert.Equal(t, "simpleLayer", node.LayerType)
}

// TestParser_Parse_TypeMismatch verifies non-module inputs are rejected
// with a TypeMismatchError.
func TestParser_Parse_TypeMismatch(t *testing.T) {
	p := newTestParser(t)

	for _, input := range []any{42, "model", nil, struct{}{}} {
		_, err := p.Parse(input)
		var tme *nn.TypeMismatchError
		require.ErrorAs(t, err, &tme, "input %v", input)
		assert.Equal(t, "Parse", tme.Op)
	}
}

// TestParser_Idempotent verifies repeated parses of an unmodified model
// are structurally equal.
func TestParser_Idempotent(t *testing.T) {
	p := newTestParser(t)
	model := newNestedLayer()

	first, err := p.Parse(model)
	require.NoError(t, err)
	second, err := p.Parse(model)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// TestParser_KeepIsCopied verifies the allow-list is immutable after
// construction.
func TestParser_KeepIsCopied(t *testing.T) {
	keep := []string{"in_features"}
	p := NewParserWithKeep(keep)
	keep[0] = "mutated"

	assert.Equal(t, []string{"in_features"}, p.Keep())

	got := p.Keep()
	got[0] = "mutated again"
	assert.Equal(t, []string{"in_features"}, p.Keep())
}
