// Package linal provides small fixed-size vector algebra in 2 and 3
// dimensions.
//
// Vec2, Vec3 and Point are plain value types over float64 components.
// Every operation returns a new value; nothing mutates in place, so the
// types are freely shareable. Constructors accept any integer or float
// type and convert once to float64:
//
//	a := linal.V2(1, 2)      // from ints
//	b := linal.V2(3.5, 2.5)  // from floats
//	sum := a.Add(b)
//
// Division by a zero scalar follows IEEE-754 semantics and yields
// infinities or NaNs; Div never panics.
package linal

// Scalar is the set of numeric types accepted by the constructors.
// Components are converted to float64 once, at construction.
type Scalar interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
