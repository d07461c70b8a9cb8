package rendering

import "github.com/go-quill/quill/pkg/geometry"

// Pipeline turns a drawing primitive tree into a flat, viewport-culled
// display list and tracks damaged screen regions between frames. Damage
// and culling are independent: damage says what must be redrawn, culling
// says what is visible.
type Pipeline struct {
	damage   DamageRegion
	viewport geometry.Rect
}

// NewPipeline creates a pipeline for the given viewport.
func NewPipeline(viewport geometry.Rect) *Pipeline {
	return &Pipeline{viewport: viewport}
}

// SetViewport replaces the viewport rectangle used for culling.
func (p *Pipeline) SetViewport(viewport geometry.Rect) {
	p.viewport = viewport
}

// Viewport returns the current viewport rectangle.
func (p *Pipeline) Viewport() geometry.Rect {
	return p.viewport
}

// MarkDamaged records a screen-space rectangle as stale.
func (p *Pipeline) MarkDamaged(bounds geometry.Rect) {
	p.damage.Add(bounds)
}

// Damage returns the accumulated damage region.
func (p *Pipeline) Damage() *DamageRegion {
	return &p.damage
}

// ClearDamage discards accumulated damage after a frame is committed.
func (p *Pipeline) ClearDamage() {
	p.damage.Clear()
}

// BuildDisplayList walks the primitive tree once, accumulating transform
// (parent then child), clip (intersection only narrows), and opacity
// (multiplicative), emits one DisplayItem per non-container primitive, and
// culls items outside the viewport.
func (p *Pipeline) BuildDisplayList(root Primitive) *DisplayList {
	list := &DisplayList{}
	flatten(root, geometry.Identity(), 1, geometry.Rect{}, false, list)
	list.Cull(p.viewport)
	return list
}

func flatten(node Primitive, transform geometry.Matrix, opacity float64, clip geometry.Rect, hasClip bool, list *DisplayList) {
	switch typed := node.(type) {
	case nil:
		return
	case *GroupPrimitive:
		for _, child := range typed.Children {
			flatten(child, transform, opacity*typed.Opacity, clip, hasClip, list)
		}
	case *TransformPrimitive:
		flatten(typed.Child, transform.Multiply(typed.Matrix), opacity, clip, hasClip, list)
	case *ClipPrimitive:
		mapped := transform.TransformRect(typed.Bounds)
		if hasClip {
			mapped = clip.Intersect(mapped)
		}
		flatten(typed.Child, transform, opacity, mapped, true, list)
	default:
		item := DisplayItem{
			Primitive: node,
			Transform: transform,
			Opacity:   opacity,
			Clip:      clip,
			HasClip:   hasClip,
			Bounds:    transform.TransformRect(PrimitiveBounds(node)),
		}
		list.Items = append(list.Items, item)
	}
}
