package introspect

import (
	"github.com/prism-ml/prism/internal/nn"
)

// simpleLayer is a plain two-field layer wrapping an internal Linear,
// used to verify basic parsing.
type simpleLayer struct {
	inFeatures  int
	outFeatures int
	fc          *nn.Linear
}

func newSimpleLayer(inFeatures, outFeatures int) *simpleLayer {
	return &simpleLayer{
		inFeatures:  inFeatures,
		outFeatures: outFeatures,
		fc:          nn.NewLinear(inFeatures, outFeatures),
	}
}

func (s *simpleLayer) NamedChildren() []nn.NamedChild {
	return []nn.NamedChild{{Name: "fc", Module: s.fc}}
}

func (s *simpleLayer) NamedParameters() []nn.NamedParameter {
	return nil
}

func (s *simpleLayer) Attributes() map[string]any {
	return map[string]any{
		"in_features":  s.inFeatures,
		"out_features": s.outFeatures,
	}
}

// residualFixture is a tagged block with two main-branch layers and an
// optional adjust layer.
type residualFixture struct {
	nn.ResidualTag

	main1  *nn.Linear
	main2  *nn.Linear
	adjust *nn.Linear
}

func newResidualFixture(hasAdjust bool) *residualFixture {
	r := &residualFixture{
		main1: nn.NewLinear(10, 10),
		main2: nn.NewLinear(10, 10),
	}
	if hasAdjust {
		r.adjust = nn.NewLinear(10, 10)
	}
	nn.MustTagResidual(r, "add")
	return r
}

func (r *residualFixture) NamedChildren() []nn.NamedChild {
	children := []nn.NamedChild{
		{Name: "main1", Module: r.main1},
		{Name: "main2", Module: r.main2},
	}
	if r.adjust != nil {
		children = append(children, nn.NamedChild{Name: "adjust", Module: r.adjust})
	}
	return children
}

func (r *residualFixture) NamedParameters() []nn.NamedParameter {
	return nil
}

// extraAttrLayer reports one allow-listed attribute alongside names
// outside the configured allow-list.
type extraAttrLayer struct{}

func (e *extraAttrLayer) NamedChildren() []nn.NamedChild       { return nil }
func (e *extraAttrLayer) NamedParameters() []nn.NamedParameter { return nil }

func (e *extraAttrLayer) Attributes() map[string]any {
	return map[string]any{
		"in_features": 16,
		"keep_me":     "important",
		"drop_me":     "useless",
	}
}

// nestedLayer wraps a residual block one level down.
type nestedLayer struct {
	block *residualFixture
}

func newNestedLayer() *nestedLayer {
	return &nestedLayer{block: newResidualFixture(false)}
}

func (n *nestedLayer) NamedChildren() []nn.NamedChild {
	return []nn.NamedChild{{Name: "block", Module: n.block}}
}

func (n *nestedLayer) NamedParameters() []nn.NamedParameter { return nil }

// outerResidual is a tagged block whose main branch is a single child
// named "body", used for parent-context tests.
type outerResidual struct {
	nn.ResidualTag

	body nn.Module
}

func newOuterResidual(body nn.Module, fusion string) *outerResidual {
	o := &outerResidual{body: body}
	nn.MustTagResidual(o, fusion)
	return o
}

func (o *outerResidual) NamedChildren() []nn.NamedChild {
	return []nn.NamedChild{{Name: "body", Module: o.body}}
}

func (o *outerResidual) NamedParameters() []nn.NamedParameter { return nil }

// wrappedResidual embeds an already-tagged block; residual status and
// children promote from the embedded type.
type wrappedResidual struct {
	*residualFixture
}

// bareResidual implements nn.ResidualModule by hand, without the tag,
// and reports no fusion label.
type bareResidual struct{}

func (b *bareResidual) NamedChildren() []nn.NamedChild       { return nil }
func (b *bareResidual) NamedParameters() []nn.NamedParameter { return nil }
func (b *bareResidual) IsResidualBlock() bool                { return true }
func (b *bareResidual) FusionType() string                   { return "" }
