// Package layout implements the box-constraint algebra used by the layout
// protocol: parents pass Constraints down, children resolve a concrete
// Size within them and return it up.
package layout

import (
	"math"

	"github.com/go-quill/quill/pkg/geometry"
)

// Unbounded marks a constraint axis with no upper limit. A node receiving
// an unbounded max must size to its intrinsic extent on that axis and must
// never report an infinite size.
var Unbounded = math.Inf(1)

// Constraints define the range of acceptable sizes for a box, per axis.
// A well-formed value has 0 <= min <= max on both axes; max may be Unbounded.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight creates constraints that admit exactly one size.
func Tight(size geometry.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose creates constraints from zero up to the given size.
func Loose(size geometry.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// Unconstrained creates constraints with no bounds on either axis.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: Unbounded, MaxHeight: Unbounded}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// HasBoundedWidth reports whether the width axis has a finite maximum.
func (c Constraints) HasBoundedWidth() bool {
	return !math.IsInf(c.MaxWidth, 1)
}

// HasBoundedHeight reports whether the height axis has a finite maximum.
func (c Constraints) HasBoundedHeight() bool {
	return !math.IsInf(c.MaxHeight, 1)
}

// Constrain clamps the given size to the constraints, per axis.
func (c Constraints) Constrain(size geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  clamp(size.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(size.Height, c.MinHeight, c.MaxHeight),
	}
}

// Smallest returns the minimum size admitted by the constraints.
func (c Constraints) Smallest() geometry.Size {
	return geometry.Size{Width: c.MinWidth, Height: c.MinHeight}
}

// Biggest returns the largest finite size admitted by the constraints.
// An unbounded axis contributes its minimum instead of infinity.
func (c Constraints) Biggest() geometry.Size {
	width := c.MaxWidth
	if math.IsInf(width, 1) {
		width = c.MinWidth
	}
	height := c.MaxHeight
	if math.IsInf(height, 1) {
		height = c.MinHeight
	}
	return geometry.Size{Width: width, Height: height}
}

// Loosen removes the minimum requirements, keeping the maximums.
func (c Constraints) Loosen() Constraints {
	return Constraints{MaxWidth: c.MaxWidth, MaxHeight: c.MaxHeight}
}

// Deflate subtracts the insets from the constraints so a padded child
// receives the remaining space. Results never go below zero, so insets
// larger than the available box collapse the axis to min == max == 0.
func (c Constraints) Deflate(insets geometry.EdgeInsets) Constraints {
	horizontal := insets.Horizontal()
	vertical := insets.Vertical()
	deflated := Constraints{
		MinWidth:  math.Max(c.MinWidth-horizontal, 0),
		MaxWidth:  math.Max(c.MaxWidth-horizontal, 0),
		MinHeight: math.Max(c.MinHeight-vertical, 0),
		MaxHeight: math.Max(c.MaxHeight-vertical, 0),
	}
	return deflated.Normalize()
}

// TightenWidth pins the width axis to the given value, clamped to the
// existing bounds.
func (c Constraints) TightenWidth(width float64) Constraints {
	width = clamp(width, c.MinWidth, c.MaxWidth)
	out := c
	out.MinWidth = width
	out.MaxWidth = width
	return out
}

// TightenHeight pins the height axis to the given value, clamped to the
// existing bounds.
func (c Constraints) TightenHeight(height float64) Constraints {
	height = clamp(height, c.MinHeight, c.MaxHeight)
	out := c
	out.MinHeight = height
	out.MaxHeight = height
	return out
}

// Normalize repairs constraints so min <= max holds on both axes. Derived
// constraint operations clamp rather than panic on inverted ranges.
func (c Constraints) Normalize() Constraints {
	out := c
	if out.MinWidth < 0 {
		out.MinWidth = 0
	}
	if out.MinHeight < 0 {
		out.MinHeight = 0
	}
	if out.MaxWidth < out.MinWidth {
		out.MaxWidth = out.MinWidth
	}
	if out.MaxHeight < out.MinHeight {
		out.MaxHeight = out.MinHeight
	}
	return out
}

func clamp(value, lower, upper float64) float64 {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
