package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
)

// SizedBox forces a fixed extent on one or both axes. A zero dimension
// leaves that axis to the child; without a child SizedBox is an invisible
// spacer of the given size.
//
//	SizedBox{Width: 200, Height: 100, ChildWidget: child}
//	SizedBox{Height: 16} // vertical gap
type SizedBox struct {
	Width       float64
	Height      float64
	ChildWidget core.Widget
}

func (s SizedBox) Build(ctx *core.BuildContext) core.WidgetNode {
	if s.ChildWidget == nil {
		return core.EmptyNode()
	}
	return core.ChildrenNode(s.ChildWidget)
}

func (s SizedBox) Layout(lc *core.LayoutContext, c layout.Constraints) geometry.Size {
	inner := c
	if s.Width > 0 {
		inner = inner.TightenWidth(s.Width)
	}
	if s.Height > 0 {
		inner = inner.TightenHeight(s.Height)
	}
	if lc.ChildCount() == 0 {
		return inner.Constrain(geometry.Size{Width: s.Width, Height: s.Height})
	}
	size := lc.LayoutChild(0, inner)
	lc.PositionChild(0, geometry.Offset{})
	if s.Width > 0 {
		size.Width = s.Width
	}
	if s.Height > 0 {
		size.Height = s.Height
	}
	return c.Constrain(size)
}
