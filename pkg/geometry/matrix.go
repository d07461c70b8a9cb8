package geometry

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translation creates a translation matrix.
func Translation(x, y float64) Matrix {
	return Matrix{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Scaling creates a scaling matrix.
func Scaling(x, y float64) Matrix {
	return Matrix{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// Rotation creates a rotation matrix (angle in radians).
func Rotation(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// IsIdentity reports whether the matrix is (approximately) the identity.
func (m Matrix) IsIdentity() bool {
	return floatEqual(m.A, 1) && floatEqual(m.B, 0) && floatEqual(m.C, 0) &&
		floatEqual(m.D, 0) && floatEqual(m.E, 1) && floatEqual(m.F, 0)
}

// Multiply multiplies two matrices (m * other). Applying the result is
// equivalent to applying other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Offset) Offset {
	return Offset{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformRect returns the axis-aligned bounding box of the transformed
// rectangle corners.
func (m Matrix) TransformRect(r Rect) Rect {
	corners := [4]Offset{
		{X: r.Left, Y: r.Top},
		{X: r.Right, Y: r.Top},
		{X: r.Right, Y: r.Bottom},
		{X: r.Left, Y: r.Bottom},
	}
	first := m.TransformPoint(corners[0])
	out := Rect{Left: first.X, Top: first.Y, Right: first.X, Bottom: first.Y}
	for _, corner := range corners[1:] {
		p := m.TransformPoint(corner)
		out.Left = math.Min(out.Left, p.X)
		out.Top = math.Min(out.Top, p.Y)
		out.Right = math.Max(out.Right, p.X)
		out.Bottom = math.Max(out.Bottom, p.Y)
	}
	return out
}

// Invert returns the inverse matrix and whether the matrix was invertible.
// A degenerate matrix (zero determinant) returns the identity and false.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.A*m.E - m.B*m.D
	if math.Abs(det) <= epsilon {
		return Identity(), false
	}
	inv := 1 / det
	return Matrix{
		A: m.E * inv,
		B: -m.B * inv,
		C: (m.B*m.F - m.E*m.C) * inv,
		D: -m.D * inv,
		E: m.A * inv,
		F: (m.D*m.C - m.A*m.F) * inv,
	}, true
}
