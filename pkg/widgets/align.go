package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
)

// Align positions its child within itself according to an alignment.
// Align expands to fill bounded axes and shrink-wraps unbounded ones.
type Align struct {
	Alignment   geometry.Alignment
	ChildWidget core.Widget
}

// Center aligns its child in the middle of the available space.
func Center(child core.Widget) Align {
	return Align{Alignment: geometry.AlignmentCenter, ChildWidget: child}
}

func (a Align) Build(ctx *core.BuildContext) core.WidgetNode {
	if a.ChildWidget == nil {
		return core.EmptyNode()
	}
	return core.ChildrenNode(a.ChildWidget)
}

func (a Align) Layout(lc *core.LayoutContext, c layout.Constraints) geometry.Size {
	if lc.ChildCount() == 0 {
		return c.Constrain(fillSize(c))
	}
	childSize := lc.LayoutChild(0, c.Loosen())
	size := fillSize(c)
	if !c.HasBoundedWidth() {
		size.Width = childSize.Width
	}
	if !c.HasBoundedHeight() {
		size.Height = childSize.Height
	}
	size = c.Constrain(size)
	lc.PositionChild(0, a.Alignment.Align(childSize, size))
	return size
}
