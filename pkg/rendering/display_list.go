package rendering

import "github.com/go-quill/quill/pkg/geometry"

// DisplayItem is a flattened drawing primitive paired with the transform,
// opacity, and clip accumulated from its ancestors, plus its resolved
// screen-space bounding rectangle. Paint order equals list order.
type DisplayItem struct {
	Primitive Primitive
	Transform geometry.Matrix
	Opacity   float64
	// Clip is the accumulated ancestor clip in screen space.
	// HasClip is false when no ancestor clipped this item.
	Clip    geometry.Rect
	HasClip bool
	// Bounds is the primitive's bounding rectangle mapped through Transform.
	Bounds geometry.Rect
}

// DisplayList is an ordered sequence of display items ready for a backend.
type DisplayList struct {
	Items []DisplayItem
}

// Len returns the number of items in the list.
func (d *DisplayList) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Items)
}

// Cull removes items whose bounds do not intersect the viewport. Culling
// is positional only; it never consults damage state.
func (d *DisplayList) Cull(viewport geometry.Rect) {
	kept := d.Items[:0]
	for _, item := range d.Items {
		if item.Bounds.Overlaps(viewport) {
			kept = append(kept, item)
		}
	}
	d.Items = kept
}
