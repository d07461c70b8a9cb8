package rendering

import "github.com/go-quill/quill/pkg/geometry"

// Primitive is one node of the backend-agnostic drawing tree. A nil
// Primitive renders nothing. Primitives carry no backend handles and are
// never mutated after construction.
type Primitive interface {
	isPrimitive()
}

// RectPrimitive fills a rectangle. A non-zero Radius rounds the corners;
// backends may approximate, and Radius never changes the bounds.
type RectPrimitive struct {
	Bounds geometry.Rect
	Fill   Paint
	Radius float64
}

// TextPrimitive draws a run of text with its baseline at Baseline.
type TextPrimitive struct {
	Content  string
	Style    TextStyle
	Baseline geometry.Offset
}

// ImagePrimitive reserves space for an image of the given size at the origin.
type ImagePrimitive struct {
	Size geometry.Size
}

// ClipPrimitive restricts its child's drawing to Bounds.
type ClipPrimitive struct {
	Bounds geometry.Rect
	Child  Primitive
}

// TransformPrimitive applies an affine transform to its child.
type TransformPrimitive struct {
	Matrix geometry.Matrix
	Child  Primitive
}

// GroupPrimitive draws its children in order (later children on top) with
// a group opacity applied multiplicatively to every descendant.
type GroupPrimitive struct {
	Children []Primitive
	Opacity  float64
}

func (*RectPrimitive) isPrimitive()      {}
func (*TextPrimitive) isPrimitive()      {}
func (*ImagePrimitive) isPrimitive()     {}
func (*ClipPrimitive) isPrimitive()      {}
func (*TransformPrimitive) isPrimitive() {}
func (*GroupPrimitive) isPrimitive()     {}

// NewRect creates a filled rectangle primitive.
func NewRect(bounds geometry.Rect, color Color) *RectPrimitive {
	return &RectPrimitive{Bounds: bounds, Fill: FillPaint(color)}
}

// NewRoundedRect creates a filled rectangle with rounded corners.
func NewRoundedRect(bounds geometry.Rect, color Color, radius float64) *RectPrimitive {
	return &RectPrimitive{Bounds: bounds, Fill: FillPaint(color), Radius: radius}
}

// NewText creates a text primitive.
func NewText(content string, style TextStyle, baseline geometry.Offset) *TextPrimitive {
	return &TextPrimitive{Content: content, Style: style, Baseline: baseline}
}

// NewClip wraps a child in a clip region.
func NewClip(bounds geometry.Rect, child Primitive) *ClipPrimitive {
	return &ClipPrimitive{Bounds: bounds, Child: child}
}

// NewTransform wraps a child in an affine transform.
func NewTransform(matrix geometry.Matrix, child Primitive) *TransformPrimitive {
	return &TransformPrimitive{Matrix: matrix, Child: child}
}

// NewGroup collects children into a fully opaque group.
func NewGroup(children ...Primitive) *GroupPrimitive {
	return &GroupPrimitive{Children: children, Opacity: 1}
}

// NewOpacityGroup collects children into a group with the given opacity,
// clamped to [0, 1].
func NewOpacityGroup(opacity float64, children ...Primitive) *GroupPrimitive {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return &GroupPrimitive{Children: children, Opacity: opacity}
}

// PrimitiveBounds returns the untransformed bounding rectangle of a
// primitive, recursing through containers. Text bounds come from font
// metrics via MeasureText.
func PrimitiveBounds(p Primitive) geometry.Rect {
	switch node := p.(type) {
	case nil:
		return geometry.Rect{}
	case *RectPrimitive:
		return node.Bounds
	case *TextPrimitive:
		size := MeasureText(node.Content, node.Style)
		ascent := TextAscent(node.Style)
		return geometry.RectFromLTWH(node.Baseline.X, node.Baseline.Y-ascent, size.Width, size.Height)
	case *ImagePrimitive:
		return geometry.RectFromOffsetSize(geometry.Offset{}, node.Size)
	case *ClipPrimitive:
		return node.Bounds.Intersect(PrimitiveBounds(node.Child))
	case *TransformPrimitive:
		return node.Matrix.TransformRect(PrimitiveBounds(node.Child))
	case *GroupPrimitive:
		var bounds geometry.Rect
		for _, child := range node.Children {
			bounds = bounds.Union(PrimitiveBounds(child))
		}
		return bounds
	default:
		return geometry.Rect{}
	}
}
