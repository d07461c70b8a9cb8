package rendering

import "github.com/go-quill/quill/pkg/geometry"

// DamageRegion accumulates rectangles describing what changed since the
// last committed frame. It is a cache, not a source of truth: a backend may
// redraw more than the damaged region but never less.
type DamageRegion struct {
	rects []geometry.Rect
}

// Add records a damaged rectangle. Empty rectangles are ignored.
func (d *DamageRegion) Add(rect geometry.Rect) {
	if rect.IsEmpty() {
		return
	}
	d.rects = append(d.rects, rect)
}

// IsEmpty reports whether any damage has been recorded.
func (d *DamageRegion) IsEmpty() bool {
	return len(d.rects) == 0
}

// Rects returns the accumulated damage rectangles.
func (d *DamageRegion) Rects() []geometry.Rect {
	return d.rects
}

// Merge collapses the accumulated rectangles into a single bounding
// rectangle. The second return value is false when no damage was recorded.
func (d *DamageRegion) Merge() (geometry.Rect, bool) {
	if len(d.rects) == 0 {
		return geometry.Rect{}, false
	}
	merged := d.rects[0]
	for _, rect := range d.rects[1:] {
		merged = merged.Union(rect)
	}
	return merged, true
}

// Clear discards all recorded damage.
func (d *DamageRegion) Clear() {
	d.rects = d.rects[:0]
}
