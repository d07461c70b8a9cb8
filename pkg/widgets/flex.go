package widgets

import (
	"math"

	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
)

// Axis identifies the main direction of a flex layout.
type Axis int

const (
	// AxisHorizontal lays children out left to right.
	AxisHorizontal Axis = iota

	// AxisVertical lays children out top to bottom.
	AxisVertical
)

// MainAxisAlignment distributes free space along the main axis.
type MainAxisAlignment int

const (
	// MainAxisStart packs children at the leading edge.
	MainAxisStart MainAxisAlignment = iota

	// MainAxisCenter packs children in the middle.
	MainAxisCenter

	// MainAxisEnd packs children at the trailing edge.
	MainAxisEnd

	// MainAxisSpaceBetween puts equal space between children only.
	MainAxisSpaceBetween

	// MainAxisSpaceAround puts equal space around each child.
	MainAxisSpaceAround

	// MainAxisSpaceEvenly puts equal space between and outside children.
	MainAxisSpaceEvenly
)

// CrossAxisAlignment positions children on the cross axis.
type CrossAxisAlignment int

const (
	// CrossAxisStart aligns children to the leading cross edge.
	CrossAxisStart CrossAxisAlignment = iota

	// CrossAxisCenter centers children on the cross axis.
	CrossAxisCenter

	// CrossAxisEnd aligns children to the trailing cross edge.
	CrossAxisEnd

	// CrossAxisStretch forces children to fill the cross axis.
	CrossAxisStretch
)

// Flexible gives its child a weighted share of the free main-axis space
// in a Row or Column. Children with a zero Flex keep their intrinsic
// size.
type Flexible struct {
	Flex        int
	ChildWidget core.Widget
}

// Expanded is a Flexible with weight one.
func Expanded(child core.Widget) Flexible {
	return Flexible{Flex: 1, ChildWidget: child}
}

func (f Flexible) Build(ctx *core.BuildContext) core.WidgetNode {
	if f.ChildWidget == nil {
		return core.EmptyNode()
	}
	return core.ChildrenNode(f.ChildWidget)
}

// Layout passes the incoming constraints through unchanged, so a tight
// share assigned by the enclosing flex reaches the child intact.
func (f Flexible) Layout(lc *core.LayoutContext, c layout.Constraints) geometry.Size {
	if lc.ChildCount() == 0 {
		return c.Smallest()
	}
	size := lc.LayoutChild(0, c)
	lc.PositionChild(0, geometry.Offset{})
	return size
}

// Row lays children out horizontally.
//
//	Row{Children: []core.Widget{icon, SizedBox{Width: 8}, label}}
type Row struct {
	Children           []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
}

func (r Row) Build(ctx *core.BuildContext) core.WidgetNode {
	return core.ChildrenNode(r.Children...)
}

func (r Row) Layout(lc *core.LayoutContext, c layout.Constraints) geometry.Size {
	return flexLayout(lc, c, AxisHorizontal, r.MainAxisAlignment, r.CrossAxisAlignment, r.Children)
}

// Column lays children out vertically.
type Column struct {
	Children           []core.Widget
	MainAxisAlignment  MainAxisAlignment
	CrossAxisAlignment CrossAxisAlignment
}

func (col Column) Build(ctx *core.BuildContext) core.WidgetNode {
	return core.ChildrenNode(col.Children...)
}

func (col Column) Layout(lc *core.LayoutContext, c layout.Constraints) geometry.Size {
	return flexLayout(lc, c, AxisVertical, col.MainAxisAlignment, col.CrossAxisAlignment, col.Children)
}

// flexLayout is the shared Row/Column protocol: rigid children first at
// their intrinsic main extent, then the remaining bounded space divided
// among Flexible children by weight, then positioning.
func flexLayout(lc *core.LayoutContext, c layout.Constraints, axis Axis, main MainAxisAlignment, cross CrossAxisAlignment, described []core.Widget) geometry.Size {
	count := lc.ChildCount()
	if count == 0 {
		return c.Smallest()
	}

	// The element's child list skips nil descriptions; mirror that so
	// flex weights line up with layout indices.
	widgets := make([]core.Widget, 0, count)
	for _, w := range described {
		if w != nil {
			widgets = append(widgets, w)
		}
	}
	if len(widgets) > count {
		widgets = widgets[:count]
	}

	maxMain := mainExtent(axis, c.MaxWidth, c.MaxHeight)
	maxCross := crossExtent(axis, c.MaxWidth, c.MaxHeight)

	crossConstraint := func() (min, max float64) {
		if cross == CrossAxisStretch && !math.IsInf(maxCross, 1) {
			return maxCross, maxCross
		}
		return 0, maxCross
	}

	flexFactor := func(i int) int {
		if i < len(widgets) {
			if f, ok := widgets[i].(Flexible); ok && f.Flex > 0 {
				return f.Flex
			}
		}
		return 0
	}

	// Pass 1: rigid children take their intrinsic main extent.
	mainSizes := make([]float64, count)
	crossSizes := make([]float64, count)
	usedMain := 0.0
	totalFlex := 0
	for i := 0; i < count; i++ {
		if factor := flexFactor(i); factor > 0 {
			totalFlex += factor
			continue
		}
		minCross, maxCrossC := crossConstraint()
		size := lc.LayoutChild(i, childConstraints(axis, 0, layout.Unbounded, minCross, maxCrossC))
		mainSizes[i] = mainExtent(axis, size.Width, size.Height)
		crossSizes[i] = crossExtent(axis, size.Width, size.Height)
		usedMain += mainSizes[i]
	}

	// Pass 2: divide what remains among flex children. With an unbounded
	// main axis there is nothing to divide; they size intrinsically.
	if totalFlex > 0 {
		remaining := 0.0
		bounded := !math.IsInf(maxMain, 1)
		if bounded {
			remaining = math.Max(maxMain-usedMain, 0)
		}
		perUnit := 0.0
		if bounded {
			perUnit = remaining / float64(totalFlex)
		}
		for i := 0; i < count; i++ {
			factor := flexFactor(i)
			if factor == 0 {
				continue
			}
			minCross, maxCrossC := crossConstraint()
			var cc layout.Constraints
			if bounded {
				share := perUnit * float64(factor)
				cc = childConstraints(axis, share, share, minCross, maxCrossC)
			} else {
				cc = childConstraints(axis, 0, layout.Unbounded, minCross, maxCrossC)
			}
			size := lc.LayoutChild(i, cc)
			mainSizes[i] = mainExtent(axis, size.Width, size.Height)
			crossSizes[i] = crossExtent(axis, size.Width, size.Height)
			usedMain += mainSizes[i]
		}
	}

	ownCross := 0.0
	for i := 0; i < count; i++ {
		ownCross = math.Max(ownCross, crossSizes[i])
	}
	ownMain := usedMain
	if !math.IsInf(maxMain, 1) {
		ownMain = maxMain
	}

	size := c.Constrain(axisSize(axis, ownMain, ownCross))
	ownMain = mainExtent(axis, size.Width, size.Height)
	ownCross = crossExtent(axis, size.Width, size.Height)

	// Pass 3: positioning.
	lead, between := distribute(main, ownMain-usedMain, count)
	position := lead
	for i := 0; i < count; i++ {
		crossOffset := 0.0
		switch cross {
		case CrossAxisCenter:
			crossOffset = (ownCross - crossSizes[i]) / 2
		case CrossAxisEnd:
			crossOffset = ownCross - crossSizes[i]
		}
		lc.PositionChild(i, axisOffset(axis, position, crossOffset))
		position += mainSizes[i] + between
	}
	return size
}

// distribute resolves a main-axis alignment into leading space and
// between-children space. Negative free space always packs at the start.
func distribute(main MainAxisAlignment, free float64, count int) (lead, between float64) {
	if free <= 0 || count == 0 {
		return 0, 0
	}
	switch main {
	case MainAxisCenter:
		return free / 2, 0
	case MainAxisEnd:
		return free, 0
	case MainAxisSpaceBetween:
		if count > 1 {
			return 0, free / float64(count-1)
		}
		return 0, 0
	case MainAxisSpaceAround:
		unit := free / float64(count)
		return unit / 2, unit
	case MainAxisSpaceEvenly:
		unit := free / float64(count+1)
		return unit, unit
	default:
		return 0, 0
	}
}

func mainExtent(axis Axis, width, height float64) float64 {
	if axis == AxisHorizontal {
		return width
	}
	return height
}

func crossExtent(axis Axis, width, height float64) float64 {
	if axis == AxisHorizontal {
		return height
	}
	return width
}

func axisSize(axis Axis, main, cross float64) geometry.Size {
	if axis == AxisHorizontal {
		return geometry.Size{Width: main, Height: cross}
	}
	return geometry.Size{Width: cross, Height: main}
}

func axisOffset(axis Axis, main, cross float64) geometry.Offset {
	if axis == AxisHorizontal {
		return geometry.Offset{X: main, Y: cross}
	}
	return geometry.Offset{X: cross, Y: main}
}

func childConstraints(axis Axis, minMain, maxMain, minCross, maxCross float64) layout.Constraints {
	if axis == AxisHorizontal {
		return layout.Constraints{
			MinWidth:  minMain,
			MaxWidth:  maxMain,
			MinHeight: minCross,
			MaxHeight: maxCross,
		}
	}
	return layout.Constraints{
		MinWidth:  minCross,
		MaxWidth:  maxCross,
		MinHeight: minMain,
		MaxHeight: maxMain,
	}
}
