package rendering

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-quill/quill/pkg/geometry"
)

func TestDamageRegionAccumulates(t *testing.T) {
	var damage DamageRegion
	if !damage.IsEmpty() {
		t.Fatal("new damage region should be empty")
	}

	damage.Add(geometry.RectFromLTWH(0, 0, 10, 10))
	damage.Add(geometry.RectFromLTWH(50, 50, 10, 10))
	damage.Add(geometry.Rect{}) // empty rects are ignored

	if got := len(damage.Rects()); got != 2 {
		t.Fatalf("expected 2 rects, got %d", got)
	}

	merged, ok := damage.Merge()
	if !ok {
		t.Fatal("expected merged bounds")
	}
	want := geometry.Rect{Left: 0, Top: 0, Right: 60, Bottom: 60}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("merged bounds mismatch (-want +got):\n%s", diff)
	}

	damage.Clear()
	if !damage.IsEmpty() {
		t.Error("damage should be empty after Clear")
	}
}

func TestBuildDisplayListFlattens(t *testing.T) {
	p := NewPipeline(geometry.RectFromLTWH(0, 0, 800, 600))

	scene := NewGroup(
		NewRect(geometry.RectFromLTWH(0, 0, 100, 100), Black),
		NewTransform(geometry.Translation(200, 0),
			NewRect(geometry.RectFromLTWH(0, 0, 50, 50), White),
		),
	)

	list := p.BuildDisplayList(scene)
	if list.Len() != 2 {
		t.Fatalf("expected 2 items, got %d", list.Len())
	}

	first := list.Items[0]
	if !first.Transform.IsIdentity() {
		t.Errorf("first item should carry the identity transform, got %+v", first.Transform)
	}
	second := list.Items[1]
	want := geometry.Rect{Left: 200, Top: 0, Right: 250, Bottom: 50}
	if diff := cmp.Diff(want, second.Bounds); diff != "" {
		t.Errorf("translated bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDisplayListAccumulatesTransforms(t *testing.T) {
	p := NewPipeline(geometry.RectFromLTWH(0, 0, 800, 600))

	scene := NewTransform(geometry.Translation(100, 0),
		NewTransform(geometry.Translation(0, 50),
			NewRect(geometry.RectFromLTWH(0, 0, 10, 10), Black),
		),
	)

	list := p.BuildDisplayList(scene)
	if list.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", list.Len())
	}
	want := geometry.Rect{Left: 100, Top: 50, Right: 110, Bottom: 60}
	if diff := cmp.Diff(want, list.Items[0].Bounds); diff != "" {
		t.Errorf("accumulated bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDisplayListAccumulatesOpacity(t *testing.T) {
	p := NewPipeline(geometry.RectFromLTWH(0, 0, 800, 600))

	scene := NewOpacityGroup(0.5,
		NewOpacityGroup(0.5,
			NewRect(geometry.RectFromLTWH(0, 0, 10, 10), Black),
		),
	)

	list := p.BuildDisplayList(scene)
	if list.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", list.Len())
	}
	if got := list.Items[0].Opacity; got != 0.25 {
		t.Errorf("opacity = %v, want 0.25", got)
	}
}

func TestBuildDisplayListNarrowsClip(t *testing.T) {
	p := NewPipeline(geometry.RectFromLTWH(0, 0, 800, 600))

	scene := NewClip(geometry.RectFromLTWH(0, 0, 100, 100),
		NewClip(geometry.RectFromLTWH(50, 50, 100, 100),
			NewRect(geometry.RectFromLTWH(0, 0, 200, 200), Black),
		),
	)

	list := p.BuildDisplayList(scene)
	if list.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", list.Len())
	}
	item := list.Items[0]
	if !item.HasClip {
		t.Fatal("expected a clip on the item")
	}
	want := geometry.Rect{Left: 50, Top: 50, Right: 100, Bottom: 100}
	if diff := cmp.Diff(want, item.Clip); diff != "" {
		t.Errorf("clip mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDisplayListClipFollowsTransform(t *testing.T) {
	p := NewPipeline(geometry.RectFromLTWH(0, 0, 800, 600))

	// The clip bounds are declared in local space; the accumulated
	// transform must map them to screen space.
	scene := NewTransform(geometry.Translation(100, 100),
		NewClip(geometry.RectFromLTWH(0, 0, 50, 50),
			NewRect(geometry.RectFromLTWH(0, 0, 10, 10), Black),
		),
	)

	list := p.BuildDisplayList(scene)
	if list.Len() != 1 {
		t.Fatalf("expected 1 item, got %d", list.Len())
	}
	want := geometry.Rect{Left: 100, Top: 100, Right: 150, Bottom: 150}
	if diff := cmp.Diff(want, list.Items[0].Clip); diff != "" {
		t.Errorf("clip mismatch (-want +got):\n%s", diff)
	}
}

func TestCullingIsPositionalNotDamageBased(t *testing.T) {
	p := NewPipeline(geometry.RectFromLTWH(0, 0, 100, 100))

	scene := NewGroup(
		// Inside the viewport, no damage recorded for it.
		NewRect(geometry.RectFromLTWH(10, 10, 20, 20), Black),
		// Outside the viewport entirely.
		NewRect(geometry.RectFromLTWH(500, 500, 20, 20), White),
	)

	// Damage only the offscreen rect; it must still be culled, and the
	// undamaged onscreen rect must still be present.
	p.MarkDamaged(geometry.RectFromLTWH(500, 500, 20, 20))

	list := p.BuildDisplayList(scene)
	if list.Len() != 1 {
		t.Fatalf("expected 1 item after culling, got %d", list.Len())
	}
	rect, ok := list.Items[0].Primitive.(*RectPrimitive)
	if !ok {
		t.Fatalf("unexpected primitive %T", list.Items[0].Primitive)
	}
	if rect.Fill.Color != Black {
		t.Error("the onscreen rect should survive culling")
	}
	if p.Damage().IsEmpty() {
		t.Error("culling must not consume damage")
	}
}

func TestPrimitiveBounds(t *testing.T) {
	group := NewGroup(
		NewRect(geometry.RectFromLTWH(0, 0, 10, 10), Black),
		NewTransform(geometry.Translation(90, 90),
			NewRect(geometry.RectFromLTWH(0, 0, 10, 10), Black),
		),
	)
	got := PrimitiveBounds(group)
	want := geometry.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bounds mismatch (-want +got):\n%s", diff)
	}
}

func TestMeasureTextScalesWithFontSize(t *testing.T) {
	small := MeasureText("hello", TextStyle{FontSize: 10})
	large := MeasureText("hello", TextStyle{FontSize: 20})
	if small.Width <= 0 || small.Height <= 0 {
		t.Fatalf("expected positive measurement, got %v", small)
	}
	if large.Width <= small.Width || large.Height <= small.Height {
		t.Errorf("larger font should measure larger: %v vs %v", small, large)
	}
	if MeasureText("", TextStyle{FontSize: 16}).Width != 0 {
		t.Error("empty string should have zero width")
	}
}
