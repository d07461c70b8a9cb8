package widgets

import (
	"math"

	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
)

// Stack overlays its children. Paint order is list order, so later
// children draw on top and win hit-testing. Each child is aligned within
// the stack's box.
type Stack struct {
	Children  []core.Widget
	Alignment geometry.Alignment
}

func (s Stack) Build(ctx *core.BuildContext) core.WidgetNode {
	return core.ChildrenNode(s.Children...)
}

func (s Stack) Layout(lc *core.LayoutContext, c layout.Constraints) geometry.Size {
	count := lc.ChildCount()
	if count == 0 {
		return c.Smallest()
	}

	loose := c.Loosen()
	var extent geometry.Size
	for i := 0; i < count; i++ {
		size := lc.LayoutChild(i, loose)
		extent.Width = math.Max(extent.Width, size.Width)
		extent.Height = math.Max(extent.Height, size.Height)
	}
	size := c.Constrain(extent)

	for i := 0; i < count; i++ {
		lc.PositionChild(i, s.Alignment.Align(lc.ChildSize(i), size))
	}
	return size
}
