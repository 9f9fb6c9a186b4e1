package polygon

import "github.com/ArgishtiAyvazyan/geometry"

// ContainsPoint reports whether q lies inside or on the boundary of the
// simple polygon p. A polygon with fewer than 3 vertices is treated as
// empty and always returns false.
//
// The boundary is checked first: q is on the boundary if it is
// collinear with, and within the bounding box of, any edge.
//
// Interior/exterior is then decided by an even-odd ray cast toward
// +X infinity, counting edges whose endpoints straddle q's Y coordinate.
// An edge straddles when exactly one endpoint's Y is greater than q.Y;
// that asymmetric "greater than" comparison, rather than a same-vertex
// special case, is what keeps a vertex lying exactly on the ray from
// being counted twice by its two incident edges, or missed by both: the
// vertex's Y is "greater than q.Y" for at most one of the two
// comparisons it takes part in, so it always resolves to exactly one
// of its incident edges.
func ContainsPoint[C geometry.Coord](p SimplePolygon[C], q geometry.Point[C]) bool {
	n := p.Len()
	if n < 3 {
		return false
	}

	for i := 0; i < n; i++ {
		edge := p.Edge(i)
		if geometry.OrientationOf(edge.P, edge.Q, q) == geometry.Collinear && geometry.OnSegment(edge, q) {
			return true
		}
	}

	crossings := 0
	for i := 0; i < n; i++ {
		edge := p.Edge(i)
		a, b := edge.P, edge.Q
		if (a.Y > q.Y) == (b.Y > q.Y) {
			continue
		}

		var o geometry.Orientation
		if a.Y < b.Y {
			o = geometry.OrientationOf(a, b, q)
		} else {
			o = geometry.OrientationOf(b, a, q)
		}
		if o == geometry.CounterClockwise {
			crossings++
		}
	}

	return crossings%2 == 1
}

// Contains reports whether the polygon-with-holes P contains q: q must
// lie within the outer boundary and outside every hole. An empty
// polygon (no outer boundary) returns false.
func Contains[C geometry.Coord](p Polygon[C], q geometry.Point[C]) bool {
	if p.Empty() {
		return false
	}
	if !ContainsPoint(p.Outer(), q) {
		return false
	}
	for i := 0; i < p.HoleCount(); i++ {
		if ContainsPoint(p.Hole(i), q) {
			return false
		}
	}
	return true
}
