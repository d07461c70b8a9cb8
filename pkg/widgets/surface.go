package widgets

import (
	"github.com/go-quill/quill/pkg/core"
	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/rendering"
)

// Surface paints a themed panel behind its child: the theme's surface
// color, rounded per the shape theme, with a drop shadow when the shape
// theme's elevation is non-zero. Elevated defaults to the theme elevation;
// set an explicit value to override it.
type Surface struct {
	ChildWidget core.Widget

	// Elevation overrides the theme's shadow elevation when non-nil.
	Elevation *float64
}

func (s Surface) Build(ctx *core.BuildContext) core.WidgetNode {
	shape := ctx.Theme().ShapeTheme
	elevation := shape.ShadowElevation
	if s.Elevation != nil {
		elevation = *s.Elevation
	}
	panel := surfacePanel{
		Color:     ctx.Theme().ColorScheme.Surface,
		Radius:    shape.CornerRadius,
		Elevation: elevation,
	}
	if s.ChildWidget == nil {
		return core.ChildrenNode(panel)
	}
	return core.ChildrenNode(panel, s.ChildWidget)
}

func (s Surface) Layout(lc *core.LayoutContext, c layout.Constraints) geometry.Size {
	if lc.ChildCount() < 2 {
		size := c.Constrain(fillSize(c))
		if lc.ChildCount() == 1 {
			lc.LayoutChild(0, layout.Tight(size))
			lc.PositionChild(0, geometry.Offset{})
		}
		return size
	}
	childSize := lc.LayoutChild(1, c)
	lc.LayoutChild(0, layout.Tight(childSize))
	lc.PositionChild(0, geometry.Offset{})
	lc.PositionChild(1, geometry.Offset{})
	return childSize
}

// surfacePanel is the leaf that draws the shadow and the rounded fill.
type surfacePanel struct {
	Color     rendering.Color
	Radius    float64
	Elevation float64
}

func (p surfacePanel) Build(ctx *core.BuildContext) core.WidgetNode {
	size := fillSize(ctx.Constraints())
	bounds := geometry.RectFromLTWH(0, 0, size.Width, size.Height)
	fill := rendering.NewRoundedRect(bounds, p.Color, p.Radius)
	if p.Elevation <= 0 {
		return core.PrimitiveNode(fill)
	}
	shadowBounds := bounds.Translate(0, p.Elevation)
	shadow := rendering.NewRoundedRect(shadowBounds, surfaceShadowColor, p.Radius)
	return core.PrimitiveNode(rendering.NewGroup(shadow, fill))
}

// surfaceShadowColor is a soft black, fixed across themes.
var surfaceShadowColor = rendering.ColorFromHex(0x33000000)
