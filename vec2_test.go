package linal

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", V2(1, 2).Add(V2(-3, 6)), V2(-2, 8)},
		{"sub", V2(1, 2).Sub(V2(-3, 6)), V2(4, -4)},
		{"scale", V2(2, 3).Scale(2), V2(4, 6)},
		{"div", V2(10, 20).Div(10), V2(1, 2)},
		{"mul", V2(1, 2).Mul(V2(3, 6)), V2(3, 12)},
		{"negate", V2(1, 2).Negate(), V2(-1, -2)},
		{"sqr", V2(2, 3).Sqr(), V2(4, 9)},
		{"sqrt", V2(4, 9).Sqrt(), V2(2, 3)},
		{"perpendicular", V2(2, 2).Perpendicular(), V2(-2, 2)},
		{"lerp", V2(0, 0).Lerp(V2(2, 4), 0.5), V2(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestVec2AddCommutative(t *testing.T) {
	vecs := []Vec2{V2(1, 2), V2(-3, 6), V2(0.5, -0.25), Zero2()}
	for _, a := range vecs {
		for _, b := range vecs {
			if a.Add(b) != b.Add(a) {
				t.Errorf("%v + %v != %v + %v", a, b, b, a)
			}
		}
	}
}

func TestVec2AddAssociative(t *testing.T) {
	a, b, c := V2(1, 2), V2(-3, 6), V2(0.5, -0.25)
	if a.Add(b).Add(c) != a.Add(b.Add(c)) {
		t.Errorf("(a+b)+c = %v, a+(b+c) = %v", a.Add(b).Add(c), a.Add(b.Add(c)))
	}
}

func TestVec2SubSelf(t *testing.T) {
	a := V2(3.25, -7.5)
	if a.Sub(a) != Zero2() {
		t.Errorf("a - a = %v, want zero", a.Sub(a))
	}
}

func TestVec2Dot(t *testing.T) {
	a, b := V2(1, 2), V2(-3, 6)
	if got := a.Dot(b); got != 9 {
		t.Errorf("Dot = %v, want 9", got)
	}
	if a.Dot(b) != b.Dot(a) {
		t.Errorf("Dot not symmetric: %v vs %v", a.Dot(b), b.Dot(a))
	}
}

func TestVec2Cross(t *testing.T) {
	// Unit basis: x cross y is +1.
	if got := V2(1, 0).Cross(V2(0, 1)); got != 1 {
		t.Errorf("x × y = %v, want 1", got)
	}

	a, b := V2(1, 2), V2(-3, 6)
	if got := a.Cross(b); got != 12 {
		t.Errorf("Cross = %v, want 12", got)
	}
	// Anti-symmetry.
	if a.Cross(b) != -b.Cross(a) {
		t.Errorf("Cross not anti-symmetric: %v vs %v", a.Cross(b), b.Cross(a))
	}
}

func TestVec2Area(t *testing.T) {
	a, b := V2(1, 2), V2(-3, 6)
	if got := a.Area(b); got != 12 {
		t.Errorf("Area = %v, want 12", got)
	}
	// Area is unsigned regardless of operand order.
	if got := b.Area(a); got != 12 {
		t.Errorf("Area reversed = %v, want 12", got)
	}
	if a.Area(b) != math.Abs(a.Cross(b)) {
		t.Errorf("Area = %v, want |Cross| = %v", a.Area(b), math.Abs(a.Cross(b)))
	}
}

func TestVec2LenNormalize(t *testing.T) {
	a := V2(3, 4)
	if got := a.Len(); got != 5 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := a.LenSq(); got != 25 {
		t.Errorf("LenSq = %v, want 25", got)
	}
	if got := a.Normalize(); got != V2(0.6, 0.8) {
		t.Errorf("Normalize = %v, want 0.6 0.8", got)
	}
	if got := Zero2().Normalize(); got != Zero2() {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestVec2DivByZero(t *testing.T) {
	b := V2(1, 2).Div(0)
	if !math.IsInf(b.X, 1) || !math.IsInf(b.Y, 1) {
		t.Errorf("Div(0) = %v, want +Inf +Inf", b)
	}
	// Zero over zero is NaN, not Inf.
	z := Zero2().Div(0)
	if !math.IsNaN(z.X) || !math.IsNaN(z.Y) {
		t.Errorf("zero.Div(0) = %v, want NaN NaN", z)
	}
}

func TestVec2FromPolar(t *testing.T) {
	a := V2(3, 4)
	b := FromPolar(5, math.Atan2(4, 3))
	if a.Sub(b).Len() > 1e-10 {
		t.Errorf("FromPolar = %v, want %v", b, a)
	}
}

func TestVec2RotateAngle(t *testing.T) {
	a := V2(1, 0).Rotate(math.Pi / 2)
	if a.Sub(V2(0, 1)).Len() > 1e-15 {
		t.Errorf("Rotate(π/2) = %v, want 0 1", a)
	}
	if got := V2(0, 2).Angle(); got != math.Pi/2 {
		t.Errorf("Angle = %v, want π/2", got)
	}
}

func TestVec2Distance(t *testing.T) {
	if got := V2(1, 1).Distance(V2(4, 5)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestDualBasis(t *testing.T) {
	a1 := V2(2, 0)
	a2 := V2(3, 4)

	b1, b2 := DualBasis(a1, a2)
	if b1 != V2(0.5, -0.375) {
		t.Errorf("b1 = %v, want 0.5 -0.375", b1)
	}
	if b2 != V2(0.0, 0.25) {
		t.Errorf("b2 = %v, want 0 0.25", b2)
	}

	// Defining relation: aᵢ·bⱼ = δᵢⱼ.
	if a1.Dot(b1) != 1 || a2.Dot(b2) != 1 {
		t.Errorf("diagonal products = %v, %v, want 1, 1", a1.Dot(b1), a2.Dot(b2))
	}
	if a1.Dot(b2) != 0 || a2.Dot(b1) != 0 {
		t.Errorf("off-diagonal products = %v, %v, want 0, 0", a1.Dot(b2), a2.Dot(b1))
	}
}

func TestV2FromIntegers(t *testing.T) {
	// Integer and float construction must agree exactly.
	if V2(10, 20) != V2(10.0, 20.0) {
		t.Errorf("V2(10, 20) = %v, V2(10.0, 20.0) = %v", V2(10, 20), V2(10.0, 20.0))
	}
	if V2(int8(-3), int8(6)) != V2(-3.0, 6.0) {
		t.Errorf("int8 construction disagrees with float")
	}
	if V2(uint16(7), uint16(0)) != V2(7.0, 0.0) {
		t.Errorf("uint16 construction disagrees with float")
	}
}

func TestParseVec2(t *testing.T) {
	tests := []struct {
		in      string
		want    Vec2
		wantErr bool
	}{
		{"1 2", V2(1, 2), false},
		{"  -3.5   6e2 ", V2(-3.5, 600), false},
		{"1", Vec2{}, true},
		{"1 2 3", Vec2{}, true},
		{"a b", Vec2{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVec2(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVec2(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseVec2(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVec2StringRoundTrip(t *testing.T) {
	a := V2(1.5, -2.25)
	got, err := ParseVec2(a.String())
	if err != nil {
		t.Fatalf("ParseVec2(%q): %v", a.String(), err)
	}
	if got != a {
		t.Errorf("round trip = %v, want %v", got, a)
	}
}
