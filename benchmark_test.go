package linal

import (
	"testing"
)

func BenchmarkVec2Cross(b *testing.B) {
	v1 := V2(1, 2)
	v2 := V2(3, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v1.Dot(v2)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Normalize()
	}
}

func BenchmarkDualBasis(b *testing.B) {
	a1 := V2(2, 0)
	a2 := V2(3, 4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = DualBasis(a1, a2)
	}
}

func BenchmarkParseVec3(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ParseVec3("1.5 -2.25 0.125")
	}
}
