package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRectFromLTWH(t *testing.T) {
	r := RectFromLTWH(10, 20, 30, 40)
	want := Rect{Left: 10, Top: 20, Right: 40, Bottom: 60}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("rect mismatch (-want +got):\n%s", diff)
	}
}

func TestRectContains(t *testing.T) {
	r := RectFromLTWH(0, 0, 100, 50)

	cases := []struct {
		name  string
		point Offset
		want  bool
	}{
		{"inside", Offset{X: 50, Y: 25}, true},
		{"top left corner", Offset{X: 0, Y: 0}, true},
		{"right edge exclusive", Offset{X: 100, Y: 25}, false},
		{"bottom edge exclusive", Offset{X: 50, Y: 50}, false},
		{"outside", Offset{X: 150, Y: 25}, false},
		{"negative", Offset{X: -1, Y: 25}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.point); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.point, got, tc.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	b := RectFromLTWH(50, 50, 100, 100)

	got := a.Intersect(b)
	want := Rect{Left: 50, Top: 50, Right: 100, Bottom: 100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("intersect mismatch (-want +got):\n%s", diff)
	}

	disjoint := a.Intersect(RectFromLTWH(200, 200, 10, 10))
	if !disjoint.IsEmpty() {
		t.Errorf("expected empty intersection, got %+v", disjoint)
	}
}

func TestRectUnion(t *testing.T) {
	a := RectFromLTWH(0, 0, 10, 10)
	b := RectFromLTWH(50, 50, 10, 10)

	got := a.Union(b)
	want := Rect{Left: 0, Top: 0, Right: 60, Bottom: 60}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("union mismatch (-want +got):\n%s", diff)
	}

	if got := a.Union(Rect{}); got != a {
		t.Errorf("union with empty should return the other rect, got %+v", got)
	}
}

func TestRectOverlaps(t *testing.T) {
	a := RectFromLTWH(0, 0, 100, 100)
	if !a.Overlaps(RectFromLTWH(50, 50, 100, 100)) {
		t.Error("expected overlapping rects to overlap")
	}
	if a.Overlaps(RectFromLTWH(100, 0, 10, 10)) {
		t.Error("edge-touching rects should not overlap")
	}
	if a.Overlaps(RectFromLTWH(500, 500, 10, 10)) {
		t.Error("disjoint rects should not overlap")
	}
}

func TestEdgeInsetsShrinkSizeClamps(t *testing.T) {
	insets := EdgeInsetsAll(50)
	got := insets.ShrinkSize(Size{Width: 60, Height: 200})
	if got.Width != 0 {
		t.Errorf("width should clamp to 0, got %v", got.Width)
	}
	if got.Height != 100 {
		t.Errorf("height = %v, want 100", got.Height)
	}
}

func TestAlignmentAlign(t *testing.T) {
	child := Size{Width: 20, Height: 10}
	container := Size{Width: 100, Height: 50}

	cases := []struct {
		name      string
		alignment Alignment
		want      Offset
	}{
		{"top left", AlignmentTopLeft, Offset{X: 0, Y: 0}},
		{"center", AlignmentCenter, Offset{X: 40, Y: 20}},
		{"bottom right", AlignmentBottomRight, Offset{X: 80, Y: 40}},
		{"center left", AlignmentCenterLeft, Offset{X: 0, Y: 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.alignment.Align(child, container)
			if got != tc.want {
				t.Errorf("Align = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatrixTranslation(t *testing.T) {
	m := Translation(10, 20)
	got := m.TransformPoint(Offset{X: 1, Y: 2})
	if got != (Offset{X: 11, Y: 22}) {
		t.Errorf("TransformPoint = %v", got)
	}
}

func TestMatrixMultiplyOrder(t *testing.T) {
	// Parent translation then child scaling: the scale applies in the
	// translated space.
	parent := Translation(10, 0)
	child := Scaling(2, 2)
	m := parent.Multiply(child)

	got := m.TransformPoint(Offset{X: 1, Y: 1})
	if got != (Offset{X: 12, Y: 2}) {
		t.Errorf("TransformPoint = %v, want (12, 2)", got)
	}
}

func TestMatrixTransformRect(t *testing.T) {
	m := Translation(5, 5)
	got := m.TransformRect(RectFromLTWH(0, 0, 10, 10))
	want := Rect{Left: 5, Top: 5, Right: 15, Bottom: 15}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("TransformRect mismatch (-want +got):\n%s", diff)
	}
}

func TestMatrixInvert(t *testing.T) {
	m := Translation(7, -3).Multiply(Scaling(2, 4))
	inv, ok := m.Invert()
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	round := m.Multiply(inv)
	if !round.IsIdentity() {
		t.Errorf("m * m^-1 should be identity, got %+v", round)
	}

	if _, ok := Scaling(0, 1).Invert(); ok {
		t.Error("singular matrix should not invert")
	}
}
