package quadtree

import "github.com/ArgishtiAyvazyan/geometry"

// Key is the capability set required of a quadtree key: a rectangle-like
// value exposing Pos, Width and Height (from which the top-right corner
// is derived) and comparable (Go value types are cloned by assignment).
// The total order needed to keep a node's values sorted is derived
// internally from Pos/Width/Height (see lessKey) rather than requiring
// callers to implement an ordering method themselves.
type Key[C geometry.Coord] interface {
	comparable
	Pos() geometry.Point[C]
	Width() C
	Height() C
}

// topRight returns k's top-right corner, derived from Pos/Width/Height.
func topRight[C geometry.Coord, K Key[C]](k K) geometry.Point[C] {
	p := k.Pos()
	return geometry.Point[C]{X: p.X + k.Width(), Y: p.Y + k.Height()}
}

// lessKey imposes the total order needed to keep the values stored at a
// node sorted: lexicographic on (pos.x, pos.y, width, height).
func lessKey[C geometry.Coord, K Key[C]](a, b K) bool {
	pa, pb := a.Pos(), b.Pos()
	switch {
	case pa.X != pb.X:
		return pa.X < pb.X
	case pa.Y != pb.Y:
		return pa.Y < pb.Y
	case a.Width() != b.Width():
		return a.Width() < b.Width()
	default:
		return a.Height() < b.Height()
	}
}
