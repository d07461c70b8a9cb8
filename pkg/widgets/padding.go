package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
)

// Padding adds empty space around its child.
//
// The child is constrained to what remains after the insets are deducted;
// an inset larger than the available box clamps the child to zero.
//
//	Padding{Padding: geometry.EdgeInsetsAll(16), ChildWidget: child}
type Padding struct {
	Padding     geometry.EdgeInsets
	ChildWidget core.Widget
}

func (p Padding) Build(ctx *core.BuildContext) core.WidgetNode {
	if p.ChildWidget == nil {
		return core.EmptyNode()
	}
	return core.ChildrenNode(p.ChildWidget)
}

func (p Padding) Layout(lc *core.LayoutContext, c layout.Constraints) geometry.Size {
	if lc.ChildCount() == 0 {
		return c.Constrain(geometry.Size{
			Width:  p.Padding.Horizontal(),
			Height: p.Padding.Vertical(),
		})
	}
	childSize := lc.LayoutChild(0, c.Deflate(p.Padding))
	lc.PositionChild(0, geometry.Offset{X: p.Padding.Left, Y: p.Padding.Top})
	return c.Constrain(geometry.Size{
		Width:  childSize.Width + p.Padding.Horizontal(),
		Height: childSize.Height + p.Padding.Vertical(),
	})
}
