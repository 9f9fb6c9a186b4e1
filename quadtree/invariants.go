package quadtree

import (
	"github.com/arl/assertgo"

	"github.com/ArgishtiAyvazyan/geometry"
)

// assertPowerOfTwo checks the region-size invariant: a node's region
// size is always a positive power of two. Compiled out unless built
// with -tags debug.
func assertPowerOfTwo[C geometry.Coord](size C) {
	n := int64(size)
	assert.True(n > 0 && n&(n-1) == 0, "region size %v is not a positive power of two", size)
}

// assertZOrderConsistent checks the routing invariant: the quadrant
// zOrder assigns k to must actually contain k's bottom-left corner
// relative to n's split lines.
func assertZOrderConsistent[C geometry.Coord, K Key[C]](n *node[C, K], k K, pos childPos) {
	mx, my := n.splitLines()
	p := k.Pos()
	var want childPos
	switch {
	case p.X < mx && p.Y > my:
		want = leftTop
	case p.X < mx:
		want = leftBottom
	case p.Y > my:
		want = rightTop
	default:
		want = rightBottom
	}
	assert.True(want == pos, "z-order mismatch: computed %d, want %d", pos, want)
}
