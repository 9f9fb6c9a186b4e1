package polygon

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ArgishtiAyvazyan/geometry"
)

func square(x, y, size int) SimplePolygon[int] {
	return New([]geometry.Point[int]{
		{X: x, Y: y},
		{X: x + size, Y: y},
		{X: x + size, Y: y + size},
		{X: x, Y: y + size},
	})
}

func TestIntersectsOverlappingSquares(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 5, 10)
	assert.True(t, Intersects(a, b))
	assert.True(t, Intersects(b, a), "SAT overlap test must be symmetric")
}

func TestIntersectsDisjointSquares(t *testing.T) {
	a := square(0, 0, 10)
	b := square(100, 100, 10)
	assert.False(t, Intersects(a, b))
}

func TestIntersectsSelf(t *testing.T) {
	// A convex polygon always overlaps itself in the SAT sense.
	p := square(0, 0, 10)
	assert.True(t, Intersects(p, p))
}

func TestIntersectsTouchingEdges(t *testing.T) {
	a := square(0, 0, 10)
	b := square(10, 0, 10)
	assert.True(t, Intersects(a, b), "touching edges should overlap under SAT's closed-interval test")
}
