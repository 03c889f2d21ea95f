package linal

import (
	"fmt"
	"strconv"
	"strings"
)

// Point represents a 2D point in cartesian coordinates. A Point is a
// location; a Vec2 is a displacement. Points translate by vectors, and
// the difference of two points is a vector.
type Point struct {
	X, Y float64
}

// Pt creates a new Point from any integer or float components.
func Pt[T Scalar](x, y T) Point {
	return Point{float64(x), float64(y)}
}

// ZeroPt returns the origin.
func ZeroPt() Point {
	return Point{}
}

// PointFromVec2 converts a position vector to a Point.
func PointFromVec2(v Vec2) Point {
	return Point{v.X, v.Y}
}

// PolarPoint creates a Point from polar coordinates (r, theta).
func PolarPoint(r, theta float64) Point {
	return PointFromVec2(FromPolar(r, theta))
}

// Position returns the position vector of the point.
func (p Point) Position() Vec2 {
	return Vec2{p.X, p.Y}
}

// Add translates the point by v.
func (p Point) Add(v Vec2) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub translates the point by -v.
func (p Point) Sub(v Vec2) Point {
	return Point{p.X - v.X, p.Y - v.Y}
}

// Diff returns the displacement p - q, the vector from q to p.
func (p Point) Diff(q Point) Vec2 {
	return Vec2{p.X - q.X, p.Y - q.Y}
}

// Negate returns the point mirrored through the origin.
func (p Point) Negate() Point {
	return Point{-p.X, -p.Y}
}

// String returns the point in its "x y" form, the inverse of ParsePoint.
func (p Point) String() string {
	return fmt.Sprintf("%v %v", p.X, p.Y)
}

// ParsePoint parses a Point from two whitespace-separated components.
func ParsePoint(s string) (Point, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Point{}, fmt.Errorf("parse point %q: want 2 components, got %d", s, len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return Point{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Point{}, fmt.Errorf("parse point %q: %w", s, err)
	}
	return Point{x, y}, nil
}
