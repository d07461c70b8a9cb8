package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/rendering"
)

// ColoredBox paints a solid color behind its child. Without a child it
// fills the available space on every bounded axis.
type ColoredBox struct {
	Color       rendering.Color
	ChildWidget core.Widget
}

func (b ColoredBox) Build(ctx *core.BuildContext) core.WidgetNode {
	if b.ChildWidget == nil {
		size := fillSize(ctx.Constraints())
		rect := geometry.RectFromLTWH(0, 0, size.Width, size.Height)
		return core.PrimitiveNode(rendering.NewRect(rect, b.Color))
	}
	return core.ChildrenNode(ColoredBox{Color: b.Color}, b.ChildWidget)
}

func (b ColoredBox) Layout(lc *core.LayoutContext, c layout.Constraints) geometry.Size {
	if lc.ChildCount() < 2 {
		return c.Constrain(fillSize(c))
	}
	// Child first; the background then adopts the child's exact box.
	childSize := lc.LayoutChild(1, c)
	lc.LayoutChild(0, layout.Tight(childSize))
	lc.PositionChild(0, geometry.Offset{})
	lc.PositionChild(1, geometry.Offset{})
	return childSize
}

// fillSize expands to the maximum on bounded axes and collapses to the
// minimum on unbounded ones.
func fillSize(c layout.Constraints) geometry.Size {
	size := geometry.Size{Width: c.MinWidth, Height: c.MinHeight}
	if c.HasBoundedWidth() {
		size.Width = c.MaxWidth
	}
	if c.HasBoundedHeight() {
		size.Height = c.MaxHeight
	}
	return size
}
