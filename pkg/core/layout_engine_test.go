package core

import (
	"math"
	"testing"

	"github.com/go-quill/quill/pkg/geometry"
	"github.com/go-quill/quill/pkg/layout"
)

// rigid requests a fixed size regardless of its constraints.
type rigid struct {
	W, H float64
}

func (w rigid) Build(ctx *BuildContext) WidgetNode {
	return EmptyNode()
}

func (w rigid) Layout(lc *LayoutContext, c layout.Constraints) geometry.Size {
	return geometry.Size{Width: w.W, Height: w.H}
}

// splitter lays its children side by side, capping each to half the
// available width, and positions them explicitly.
type splitter struct {
	Kids []Widget
}

func (w splitter) Build(ctx *BuildContext) WidgetNode {
	return ChildrenNode(w.Kids...)
}

func (w splitter) Layout(lc *LayoutContext, c layout.Constraints) geometry.Size {
	half := c.MaxWidth / 2
	x := 0.0
	height := 0.0
	for i := 0; i < lc.ChildCount(); i++ {
		size := lc.LayoutChild(i, layout.Constraints{MaxWidth: half, MaxHeight: c.MaxHeight})
		lc.PositionChild(i, geometry.Offset{X: x})
		x += size.Width
		height = math.Max(height, size.Height)
	}
	return c.Constrain(geometry.Size{Width: x, Height: height})
}

func layoutOnce(t *testing.T, widget Widget, c layout.Constraints) (*Tree, ElementID) {
	t.Helper()
	tree := NewTree()
	r := NewReconciler(nil)
	r.EnsureRoot(tree, widget, c)
	r.RebuildDirty(tree)
	NewLayoutEngine().LayoutTree(tree, c)
	tree.ClearDirty()
	return tree, tree.Root()
}

func TestResolvedSizeStaysWithinConstraints(t *testing.T) {
	c := layout.Constraints{MinWidth: 0, MaxWidth: 100, MinHeight: 0, MaxHeight: 50}
	tree, root := layoutOnce(t, rigid{W: 150, H: 20}, c)

	element, _ := tree.Get(root)
	if got := element.Size(); got != (geometry.Size{Width: 100, Height: 20}) {
		t.Errorf("size = %v, want (100, 20)", got)
	}
}

func TestDefaultContainerAdoptsChildExtent(t *testing.T) {
	c := layout.Constraints{MaxWidth: 200, MaxHeight: 200}
	tree, root := layoutOnce(t, container{Kids: []Widget{
		rigid{W: 30, H: 40},
		rigid{W: 50, H: 10},
	}}, c)

	element, _ := tree.Get(root)
	if got := element.Size(); got != (geometry.Size{Width: 50, Height: 40}) {
		t.Errorf("size = %v, want (50, 40)", got)
	}
}

func TestLayoutChildClampsChildResult(t *testing.T) {
	c := layout.Tight(geometry.Size{Width: 100, Height: 100})
	tree, root := layoutOnce(t, splitter{Kids: []Widget{
		rigid{W: 500, H: 10}, // wants far more than its half
	}}, c)

	element, _ := tree.Get(root)
	child, _ := tree.Get(element.Children()[0])
	if got := child.Size().Width; got != 50 {
		t.Errorf("child width = %v, want 50 (clamped to handed-down max)", got)
	}
}

func TestPositionChildSetsOffsets(t *testing.T) {
	c := layout.Tight(geometry.Size{Width: 100, Height: 100})
	tree, root := layoutOnce(t, splitter{Kids: []Widget{
		rigid{W: 20, H: 10},
		rigid{W: 20, H: 10},
	}}, c)

	element, _ := tree.Get(root)
	second := element.Children()[1]
	if got := tree.AbsoluteOffset(second); got != (geometry.Offset{X: 20}) {
		t.Errorf("second child offset = %v, want (20, 0)", got)
	}
}

func TestUnboundedAxisNeverYieldsInfiniteSize(t *testing.T) {
	tree, root := layoutOnce(t, rigid{W: math.Inf(1), H: 10}, layout.Unconstrained())

	element, _ := tree.Get(root)
	if math.IsInf(element.Size().Width, 0) {
		t.Error("infinite size leaked out of layout")
	}
}

func TestEmptyElementCollapsesToSmallest(t *testing.T) {
	c := layout.Constraints{MinWidth: 5, MaxWidth: 100, MinHeight: 7, MaxHeight: 100}
	tree, root := layoutOnce(t, container{}, c)

	element, _ := tree.Get(root)
	if got := element.Size(); got != (geometry.Size{Width: 5, Height: 7}) {
		t.Errorf("size = %v, want (5, 7)", got)
	}
}

func TestConstraintChangeMarksElementDirty(t *testing.T) {
	c := layout.Tight(geometry.Size{Width: 100, Height: 100})
	tree, root := layoutOnce(t, rigid{W: 10, H: 10}, c)

	NewLayoutEngine().LayoutTree(tree, layout.Tight(geometry.Size{Width: 200, Height: 200}))

	element, _ := tree.Get(root)
	if !element.Dirty() {
		t.Error("changed constraints should schedule a rebuild")
	}
}
