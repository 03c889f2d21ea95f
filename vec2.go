package linal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vec2 represents a 2D vector in cartesian coordinates.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2 from any integer or float components.
func V2[T Scalar](x, y T) Vec2 {
	return Vec2{float64(x), float64(y)}
}

// Zero2 returns the zero vector.
func Zero2() Vec2 {
	return Vec2{}
}

// FromPolar creates a Vec2 from polar coordinates (r, theta).
func FromPolar(r, theta float64) Vec2 {
	return Vec2{r * math.Cos(theta), r * math.Sin(theta)}
}

// Add returns the vector sum a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// Sub returns the vector difference a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Scale returns the scalar product a * s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{a.X * s, a.Y * s}
}

// Div returns the scalar division a / s. Dividing by zero follows
// IEEE-754 semantics: components become ±Inf, or NaN for a zero
// component over zero.
func (a Vec2) Div(s float64) Vec2 {
	return Vec2{a.X / s, a.Y / s}
}

// Mul returns the component-wise product a * b.
func (a Vec2) Mul(b Vec2) Vec2 {
	return Vec2{a.X * b.X, a.Y * b.Y}
}

// Dot returns the dot product a · b.
func (a Vec2) Dot(b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Cross returns the 2D cross product a × b, the scalar
// a.X*b.Y - a.Y*b.X. Its sign gives the rotational orientation of b
// relative to a: positive when b is counter-clockwise from a.
func (a Vec2) Cross(b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Area returns the area of the parallelogram spanned by a and b,
// the absolute value of the cross product. Always >= 0.
func (a Vec2) Area(b Vec2) float64 {
	return math.Abs(a.Cross(b))
}

// Len returns the length of the vector.
func (a Vec2) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec2) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Normalize returns the unit vector co-directed with a.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{a.X / l, a.Y / l}
}

// Negate returns the negated vector.
func (a Vec2) Negate() Vec2 {
	return Vec2{-a.X, -a.Y}
}

// Sqr returns the component-wise square.
func (a Vec2) Sqr() Vec2 {
	return a.Mul(a)
}

// Sqrt returns the component-wise square root.
func (a Vec2) Sqrt() Vec2 {
	return Vec2{math.Sqrt(a.X), math.Sqrt(a.Y)}
}

// Perpendicular returns a perpendicular vector of the same length
// (90° counter-clockwise).
func (a Vec2) Perpendicular() Vec2 {
	return Vec2{-a.Y, a.X}
}

// Lerp returns linear interpolation between a and b.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
	}
}

// Rotate rotates the vector by angle (radians).
func (a Vec2) Rotate(angle float64) Vec2 {
	cos, sin := math.Cos(angle), math.Sin(angle)
	return Vec2{
		a.X*cos - a.Y*sin,
		a.X*sin + a.Y*cos,
	}
}

// Angle returns the angle of the vector in radians.
func (a Vec2) Angle() float64 {
	return math.Atan2(a.Y, a.X)
}

// Distance returns the distance between two points.
func (a Vec2) Distance(b Vec2) float64 {
	return a.Sub(b).Len()
}

// DualBasis constructs the dual basis (d1, d2) for the basis (a, b):
// the pair satisfying a·d1 = b·d2 = 1 and a·d2 = b·d1 = 0.
// The basis must not be degenerate (a.Cross(b) != 0).
func DualBasis(a, b Vec2) (d1, d2 Vec2) {
	c := a.Cross(b)
	d1 = Vec2{b.Y / c, -b.X / c}
	d2 = Vec2{-a.Y / c, a.X / c}
	return d1, d2
}

// String returns the vector in its "x y" form, the inverse of ParseVec2.
func (a Vec2) String() string {
	return fmt.Sprintf("%v %v", a.X, a.Y)
}

// ParseVec2 parses a Vec2 from two whitespace-separated components.
func ParseVec2(s string) (Vec2, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Vec2{}, fmt.Errorf("parse vec2 %q: want 2 components, got %d", s, len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Vec2{}, fmt.Errorf("parse vec2 %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Vec2{}, fmt.Errorf("parse vec2 %q: %w", s, err)
	}
	return Vec2{x, y}, nil
}
