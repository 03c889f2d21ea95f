package linal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vec3 represents a 3D vector in cartesian coordinates.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3 from any integer or float components.
func V3[T Scalar](x, y, z T) Vec3 {
	return Vec3{float64(x), float64(y), float64(z)}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// FromSpherical creates a Vec3 from spherical coordinates (r, theta, phi),
// with theta the polar angle from the z axis and phi the azimuth.
func FromSpherical(r, theta, phi float64) Vec3 {
	return Vec3{
		r * math.Sin(theta) * math.Cos(phi),
		r * math.Sin(theta) * math.Sin(phi),
		r * math.Cos(theta),
	}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div returns the scalar division a / s. Dividing by zero follows
// IEEE-754 semantics: components become ±Inf, or NaN for a zero
// component over zero.
func (a Vec3) Div(s float64) Vec3 {
	return Vec3{a.X / s, a.Y / s, a.Z / s}
}

// Mul returns the component-wise product a * b.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b: a vector orthogonal to both
// operands, directed by the right-hand rule, with length equal to the
// area of the parallelogram spanned by a and b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Normalize returns the unit vector co-directed with a.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{a.X / l, a.Y / l, a.Z / l}
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Sqr returns the component-wise square.
func (a Vec3) Sqr() Vec3 {
	return a.Mul(a)
}

// Sqrt returns the component-wise square root.
func (a Vec3) Sqrt() Vec3 {
	return Vec3{math.Sqrt(a.X), math.Sqrt(a.Y), math.Sqrt(a.Z)}
}

// Lerp returns the linear interpolation between a and b by t.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return Vec3{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float64 {
	return a.Sub(b).Len()
}

// Reflect returns the reflection of a around normal n.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// Abs returns the component-wise absolute value.
func (a Vec3) Abs() Vec3 {
	return Vec3{
		math.Abs(a.X),
		math.Abs(a.Y),
		math.Abs(a.Z),
	}
}

// DualBasis3 constructs the dual basis (d1, d2, d3) for the basis
// (a, b, c): the triple satisfying aᵢ·dⱼ = δᵢⱼ. The basis must not be
// degenerate (triple product != 0).
func DualBasis3(a, b, c Vec3) (d1, d2, d3 Vec3) {
	t := a.Cross(b).Dot(c)
	d1 = b.Cross(c).Div(t)
	d2 = c.Cross(a).Div(t)
	d3 = a.Cross(b).Div(t)
	return d1, d2, d3
}

// String returns the vector in its "x y z" form, the inverse of ParseVec3.
func (a Vec3) String() string {
	return fmt.Sprintf("%v %v %v", a.X, a.Y, a.Z)
}

// ParseVec3 parses a Vec3 from three whitespace-separated components.
func ParseVec3(s string) (Vec3, error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return Vec3{}, fmt.Errorf("parse vec3 %q: want 3 components, got %d", s, len(fields))
	}
	var c [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("parse vec3 %q: %w", s, err)
		}
		c[i] = v
	}
	return Vec3{c[0], c[1], c[2]}, nil
}
