// Package models provides reference architectures built on the Prism
// module model.
//
// The ResNet family here mirrors the torchvision layout: a 7x7 stem,
// four stages of residual blocks, adaptive average pooling, and a linear
// classifier head. Blocks are tagged as residual blocks at construction,
// and the dimension-adjustment path (1x1 conv + batchnorm) is registered
// under the reserved child name "adjust".
package models

import (
	"fmt"

	"github.com/prism-ml/prism/internal/nn"
)

// BlockKind selects the residual block type used by a ResNet.
type BlockKind int

const (
	// Basic is the two-conv block used by ResNet-18/34 (expansion 1).
	Basic BlockKind = iota
	// Bottleneck is the 1x1/3x3/1x1 block used by ResNet-50/101/152
	// (expansion 4).
	Bottleneck
)

// expansion returns the output-channel multiplier of the block kind.
func (k BlockKind) expansion() int {
	if k == Bottleneck {
		return 4
	}
	return 1
}

// BasicBlock is the ResNet-18/34 residual block: two 3x3 convolutions
// with an additive skip connection.
type BasicBlock struct {
	nn.ResidualTag

	conv1 *nn.Conv2d
	bn1   *nn.BatchNorm2d
	relu  *nn.ReLU
	conv2 *nn.Conv2d
	bn2   *nn.BatchNorm2d

	// adjust matches the skip path to the main branch when stride or
	// channel count changes; nil for identity skips.
	adjust *nn.Sequential
}

// NewBasicBlock creates a BasicBlock mapping inPlanes channels to planes
// channels, downsampling by stride in the first convolution.
func NewBasicBlock(inPlanes, planes, stride int) *BasicBlock {
	b := &BasicBlock{
		conv1: nn.NewConv2d(inPlanes, planes, 3, stride, 1, false),
		bn1:   nn.NewBatchNorm2d(planes),
		relu:  nn.NewReLU(),
		conv2: nn.NewConv2d(planes, planes, 3, 1, 1, false),
		bn2:   nn.NewBatchNorm2d(planes),
	}
	if stride != 1 || inPlanes != planes {
		b.adjust = nn.NewSequential(
			nn.NewConv2d(inPlanes, planes, 1, stride, 0, false),
			nn.NewBatchNorm2d(planes),
		)
	}
	nn.MustTagResidual(b, "add")
	return b
}

// NamedChildren returns the main branch followed by the adjust path,
// when present.
func (b *BasicBlock) NamedChildren() []nn.NamedChild {
	children := []nn.NamedChild{
		{Name: "conv1", Module: b.conv1},
		{Name: "bn1", Module: b.bn1},
		{Name: "relu", Module: b.relu},
		{Name: "conv2", Module: b.conv2},
		{Name: "bn2", Module: b.bn2},
	}
	if b.adjust != nil {
		children = append(children, nn.NamedChild{Name: "adjust", Module: b.adjust})
	}
	return children
}

// NamedParameters returns an empty slice; all parameters live in the
// child layers.
func (b *BasicBlock) NamedParameters() []nn.NamedParameter {
	return nil
}

// BottleneckBlock is the ResNet-50/101/152 residual block: 1x1 reduce,
// 3x3 spatial, 1x1 expand (x4).
type BottleneckBlock struct {
	nn.ResidualTag

	conv1 *nn.Conv2d
	bn1   *nn.BatchNorm2d
	conv2 *nn.Conv2d
	bn2   *nn.BatchNorm2d
	conv3 *nn.Conv2d
	bn3   *nn.BatchNorm2d
	relu  *nn.ReLU

	adjust *nn.Sequential
}

// NewBottleneckBlock creates a BottleneckBlock mapping inPlanes channels
// to planes*4 channels, downsampling by stride in the 3x3 convolution.
func NewBottleneckBlock(inPlanes, planes, stride int) *BottleneckBlock {
	out := planes * Bottleneck.expansion()
	b := &BottleneckBlock{
		conv1: nn.NewConv2d(inPlanes, planes, 1, 1, 0, false),
		bn1:   nn.NewBatchNorm2d(planes),
		conv2: nn.NewConv2d(planes, planes, 3, stride, 1, false),
		bn2:   nn.NewBatchNorm2d(planes),
		conv3: nn.NewConv2d(planes, out, 1, 1, 0, false),
		bn3:   nn.NewBatchNorm2d(out),
		relu:  nn.NewReLU(),
	}
	if stride != 1 || inPlanes != out {
		b.adjust = nn.NewSequential(
			nn.NewConv2d(inPlanes, out, 1, stride, 0, false),
			nn.NewBatchNorm2d(out),
		)
	}
	nn.MustTagResidual(b, "add")
	return b
}

// NamedChildren returns the main branch followed by the adjust path,
// when present.
func (b *BottleneckBlock) NamedChildren() []nn.NamedChild {
	children := []nn.NamedChild{
		{Name: "conv1", Module: b.conv1},
		{Name: "bn1", Module: b.bn1},
		{Name: "conv2", Module: b.conv2},
		{Name: "bn2", Module: b.bn2},
		{Name: "conv3", Module: b.conv3},
		{Name: "bn3", Module: b.bn3},
		{Name: "relu", Module: b.relu},
	}
	if b.adjust != nil {
		children = append(children, nn.NamedChild{Name: "adjust", Module: b.adjust})
	}
	return children
}

// NamedParameters returns an empty slice; all parameters live in the
// child layers.
func (b *BottleneckBlock) NamedParameters() []nn.NamedParameter {
	return nil
}

// ResNet is a depth-configurable residual network.
type ResNet struct {
	kind       BlockKind
	depths     [4]int
	numClasses int

	conv1   *nn.Conv2d
	bn1     *nn.BatchNorm2d
	relu    *nn.ReLU
	maxpool *nn.MaxPool2d
	layer1  *nn.Sequential
	layer2  *nn.Sequential
	layer3  *nn.Sequential
	layer4  *nn.Sequential
	avgpool *nn.AvgPool2d
	fc      *nn.Linear
}

// New creates a ResNet with the given block kind, per-stage block
// counts, and classifier width.
//
// Panics if any depth is not positive.
func New(kind BlockKind, depths [4]int, numClasses int) *ResNet {
	for i, d := range depths {
		if d <= 0 {
			panic(fmt.Sprintf("resnet: invalid depth %d at stage %d", d, i))
		}
	}

	r := &ResNet{
		kind:       kind,
		depths:     depths,
		numClasses: numClasses,
		conv1:      nn.NewConv2d(3, 64, 7, 2, 3, false),
		bn1:        nn.NewBatchNorm2d(64),
		relu:       nn.NewReLU(),
		maxpool:    nn.NewMaxPool2d(3, 2, 1),
	}

	inPlanes := 64
	r.layer1, inPlanes = makeStage(kind, inPlanes, 64, depths[0], 1)
	r.layer2, inPlanes = makeStage(kind, inPlanes, 128, depths[1], 2)
	r.layer3, inPlanes = makeStage(kind, inPlanes, 256, depths[2], 2)
	r.layer4, inPlanes = makeStage(kind, inPlanes, 512, depths[3], 2)

	r.avgpool = nn.NewAvgPool2d(1)
	r.fc = nn.NewLinear(inPlanes, numClasses)
	return r
}

// makeStage builds one stage of count blocks. The first block applies
// the stride and any channel adjustment; the rest are identity-skip.
func makeStage(kind BlockKind, inPlanes, planes, count, stride int) (*nn.Sequential, int) {
	stage := nn.NewSequential()
	out := planes * kind.expansion()

	for i := 0; i < count; i++ {
		s := 1
		if i == 0 {
			s = stride
		}
		switch kind {
		case Bottleneck:
			stage.Add(NewBottleneckBlock(inPlanes, planes, s))
		default:
			stage.Add(NewBasicBlock(inPlanes, planes, s))
		}
		inPlanes = out
	}
	return stage, inPlanes
}

// NamedChildren returns the stem, the four stages, and the head, in
// forward order.
func (r *ResNet) NamedChildren() []nn.NamedChild {
	return []nn.NamedChild{
		{Name: "conv1", Module: r.conv1},
		{Name: "bn1", Module: r.bn1},
		{Name: "relu", Module: r.relu},
		{Name: "maxpool", Module: r.maxpool},
		{Name: "layer1", Module: r.layer1},
		{Name: "layer2", Module: r.layer2},
		{Name: "layer3", Module: r.layer3},
		{Name: "layer4", Module: r.layer4},
		{Name: "avgpool", Module: r.avgpool},
		{Name: "fc", Module: r.fc},
	}
}

// NamedParameters returns an empty slice; all parameters live in the
// child layers.
func (r *ResNet) NamedParameters() []nn.NamedParameter {
	return nil
}

// Attributes reports the network configuration.
func (r *ResNet) Attributes() map[string]any {
	return map[string]any{
		"num_classes": r.numClasses,
	}
}

// NumResidualBlocks returns the total residual block count across all
// four stages.
func (r *ResNet) NumResidualBlocks() int {
	n := 0
	for _, d := range r.depths {
		n += d
	}
	return n
}

// ResNet18 creates an 18-layer ResNet (BasicBlock, depths 2-2-2-2,
// 8 residual blocks).
func ResNet18(numClasses int) *ResNet {
	return New(Basic, [4]int{2, 2, 2, 2}, numClasses)
}

// ResNet34 creates a 34-layer ResNet (BasicBlock, depths 3-4-6-3,
// 16 residual blocks).
func ResNet34(numClasses int) *ResNet {
	return New(Basic, [4]int{3, 4, 6, 3}, numClasses)
}

// ResNet50 creates a 50-layer ResNet (BottleneckBlock, depths 3-4-6-3,
// 16 residual blocks).
func ResNet50(numClasses int) *ResNet {
	return New(Bottleneck, [4]int{3, 4, 6, 3}, numClasses)
}

// ResNet101 creates a 101-layer ResNet (BottleneckBlock, depths
// 3-4-23-3, 33 residual blocks).
func ResNet101(numClasses int) *ResNet {
	return New(Bottleneck, [4]int{3, 4, 23, 3}, numClasses)
}

// ResNet152 creates a 152-layer ResNet (BottleneckBlock, depths
// 3-8-36-3, 50 residual blocks).
func ResNet152(numClasses int) *ResNet {
	return New(Bottleneck, [4]int{3, 8, 36, 3}, numClasses)
}
