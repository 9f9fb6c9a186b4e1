package polygon

import "github.com/ArgishtiAyvazyan/geometry"

// Intersects reports whether two simple polygons overlap, via the
// Separating Axis Theorem: for each edge of each polygon, compute the
// normalized left-perpendicular axis and project both polygons onto it;
// if any axis separates the projections, the polygons are disjoint. If no
// separating axis is found after testing both polygons' edges, they
// overlap.
//
// SAT is only exact for convex polygons. Applied here unconditionally to
// general simple polygons, for non-convex input the result may
// overapproximate (false positives). This is a documented limitation,
// not a bug-fix target.
func Intersects[C geometry.Coord](a, b SimplePolygon[C]) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if separates(a.Edge(i), a, b) {
			return false
		}
	}
	for i := 0; i < b.Len(); i++ {
		if separates(b.Edge(i), a, b) {
			return false
		}
	}
	return true
}

// separates reports whether edge's perpendicular axis separates a and
// b's projections.
func separates[C geometry.Coord](edge geometry.Segment[C], a, b SimplePolygon[C]) bool {
	dir := geometry.Vec2[C]{X: edge.Q.X - edge.P.X, Y: edge.Q.Y - edge.P.Y}
	axis := geometry.PerpendicularAxis(dir)

	aMin, aMax := project(axis, a)
	bMin, bMax := project(axis, b)
	return aMax < bMin || bMax < aMin
}

// project returns the minimum and maximum of axis·v across every vertex
// of p.
func project[C geometry.Coord](axis geometry.Vec2[C], p SimplePolygon[C]) (min, max C) {
	v0 := p.Vertex(0)
	min = geometry.Dot(axis, geometry.Vec2[C]{X: v0.X, Y: v0.Y})
	max = min
	for i := 1; i < p.Len(); i++ {
		v := p.Vertex(i)
		d := geometry.Dot(axis, geometry.Vec2[C]{X: v.X, Y: v.Y})
		min = geometry.Min(min, d)
		max = geometry.Max(max, d)
	}
	return min, max
}
