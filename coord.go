package geometry

import (
	"math"

	"github.com/arl/math32"
)

// Coord is the coordinate type constraint shared by every primitive in
// this package: a totally ordered numeric type supporting the usual
// arithmetic operators. Integer specializations are first-class — the
// quadtree uses Coord = int32 in practice.
type Coord interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Min returns the smaller of a and b.
func Min[C Coord](a, b C) C {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max[C Coord](a, b C) C {
	if a > b {
		return a
	}
	return b
}

// sqrtOf computes the square root of v in C's own arithmetic, dispatching
// to math32.Sqrt when C is float32 and to the standard library otherwise.
// Only distance and normalize need this.
func sqrtOf[C Coord](v C) C {
	switch x := any(v).(type) {
	case float32:
		return C(math32.Sqrt(x))
	case float64:
		return C(math.Sqrt(x))
	default:
		return C(math.Sqrt(float64(v)))
	}
}

// truncToInt truncates v toward zero and returns it as an int.
func truncToInt[C Coord](v C) int {
	return int(v)
}
