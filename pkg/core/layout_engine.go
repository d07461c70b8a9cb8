package core

import (
	"math"

	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
	"github.com/go-quill/quill/pkg/rendering"
)

// Layouter is implemented by widgets that take over the box protocol for
// their element. The engine passes the incoming constraints; the returned
// size is clamped to them before being stored.
type Layouter interface {
	Layout(lc *LayoutContext, constraints layout.Constraints) geometry.Size
}

// LayoutContext gives a Layouter access to its children during a layout
// pass. Children are addressed by index in description order.
type LayoutContext struct {
	engine  *LayoutEngine
	tree    *Tree
	element *Element
}

// ChildCount returns the number of children available to lay out.
func (lc *LayoutContext) ChildCount() int {
	return len(lc.element.children)
}

// LayoutChild lays out the child at index under the given constraints and
// returns its resolved size. The result is always within the constraints
// handed down, regardless of what the child asked for.
func (lc *LayoutContext) LayoutChild(index int, constraints layout.Constraints) geometry.Size {
	if index < 0 || index >= len(lc.element.children) {
		return geometry.Size{}
	}
	return lc.engine.layoutElement(lc.tree, lc.element.children[index], constraints)
}

// PositionChild places the child at index at an offset relative to this
// element's origin.
func (lc *LayoutContext) PositionChild(index int, offset geometry.Offset) {
	if index < 0 || index >= len(lc.element.children) {
		return
	}
	if child, ok := lc.tree.Get(lc.element.children[index]); ok {
		child.offset = offset
	}
}

// MeasureText returns the painted extent of a run of text in the given
// style, so a Layouter can size around a label it does not own.
func (lc *LayoutContext) MeasureText(content string, style rendering.TextStyle) geometry.Size {
	return rendering.MeasureText(content, style)
}

// ChildSize returns the size stored for the child at index by a previous
// LayoutChild call in this pass.
func (lc *LayoutContext) ChildSize(index int) geometry.Size {
	if index < 0 || index >= len(lc.element.children) {
		return geometry.Size{}
	}
	if child, ok := lc.tree.Get(lc.element.children[index]); ok {
		return child.size
	}
	return geometry.Size{}
}

// LayoutEngine runs the single-pass box protocol over the element tree:
// constraints flow down, sizes flow up, parents position children.
type LayoutEngine struct{}

// NewLayoutEngine creates a layout engine.
func NewLayoutEngine() *LayoutEngine {
	return &LayoutEngine{}
}

// LayoutTree lays out the whole tree from the root under the viewport
// constraints. The root sits at the origin.
func (e *LayoutEngine) LayoutTree(tree *Tree, constraints layout.Constraints) {
	root := tree.Root()
	if root == NoElement {
		return
	}
	e.layoutElement(tree, root, constraints)
	if element, ok := tree.Get(root); ok {
		element.offset = geometry.Offset{}
	}
}

// layoutElement lays out one element, dispatching to the widget's Layouter
// when it has one and falling back to the default protocol otherwise. The
// resolved size is clamped to the constraints and stored on the element.
func (e *LayoutEngine) layoutElement(tree *Tree, id ElementID, constraints layout.Constraints) geometry.Size {
	element, ok := tree.Get(id)
	if !ok {
		return geometry.Size{}
	}
	constraints = constraints.Normalize()
	if constraints != element.constraints {
		// A changed box can change what the widget builds. Schedule a
		// rebuild; the frame loop converges before painting.
		element.constraints = constraints
		tree.MarkDirty(id)
	}

	var size geometry.Size
	switch {
	case element.widget == nil:
		size = constraints.Smallest()
	default:
		if layouter, ok := element.widget.(Layouter); ok {
			lc := &LayoutContext{engine: e, tree: tree, element: element}
			size = layouter.Layout(lc, constraints)
		} else {
			size = e.defaultLayout(tree, element, constraints)
		}
	}

	size = constraints.Constrain(size)
	size = finiteSize(size, constraints)
	element.size = size
	return size
}

// defaultLayout implements the protocol for widgets without a Layouter:
// a container adopts the union of its children's extents, a leaf with a
// primitive adopts the primitive's extent, and an empty element collapses
// to the smallest permitted size.
func (e *LayoutEngine) defaultLayout(tree *Tree, element *Element, constraints layout.Constraints) geometry.Size {
	if len(element.children) > 0 {
		loose := constraints.Loosen()
		var extent geometry.Size
		for _, childID := range element.children {
			childSize := e.layoutElement(tree, childID, loose)
			if child, ok := tree.Get(childID); ok {
				child.offset = geometry.Offset{}
			}
			extent.Width = math.Max(extent.Width, childSize.Width)
			extent.Height = math.Max(extent.Height, childSize.Height)
		}
		return extent
	}
	if element.primitive != nil {
		bounds := rendering.PrimitiveBounds(element.primitive)
		return geometry.Size{
			Width:  math.Max(bounds.Right, 0),
			Height: math.Max(bounds.Bottom, 0),
		}
	}
	return constraints.Smallest()
}

// finiteSize guards against an unbounded axis leaking infinity into the
// tree. An infinite result collapses to the axis minimum.
func finiteSize(size geometry.Size, constraints layout.Constraints) geometry.Size {
	if math.IsInf(size.Width, 0) || math.IsNaN(size.Width) {
		size.Width = constraints.MinWidth
	}
	if math.IsInf(size.Height, 0) || math.IsNaN(size.Height) {
		size.Height = constraints.MinHeight
	}
	return size
}
