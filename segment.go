package geometry

// Orientation classifies three points by the sign of the signed area
// (twice-area cross product) of the triangle they form.
type Orientation int

const (
	Collinear Orientation = iota
	Clockwise
	CounterClockwise
)

// OrientationOf returns the orientation of the ordered triple (p, q, r):
// the sign of (qy-py)(rx-qx) - (qx-px)(ry-qy).
func OrientationOf[C Coord](p, q, r Point[C]) Orientation {
	cross := (q.Y-p.Y)*(r.X-q.X) - (q.X-p.X)*(r.Y-q.Y)
	switch {
	case cross == 0:
		return Collinear
	case cross > 0:
		return Clockwise
	default:
		return CounterClockwise
	}
}

// Segment is an ordered pair of points. Equality compares ordered pairs,
// so Segment{p, q} != Segment{q, p}.
type Segment[C Coord] struct {
	P, Q Point[C]
}

// NewSegment constructs a Segment from its endpoints.
func NewSegment[C Coord](p, q Point[C]) Segment[C] {
	return Segment[C]{P: p, Q: q}
}

// Equal reports whether s and o have the same endpoints in the same
// order.
func (s Segment[C]) Equal(o Segment[C]) bool {
	return s.P.Equal(o.P) && s.Q.Equal(o.Q)
}

// BoundingBox returns the axis-aligned bounding rectangle of the
// segment's two endpoints.
func (s Segment[C]) BoundingBox() Rect[C] {
	lo := Point[C]{X: Min(s.P.X, s.Q.X), Y: Min(s.P.Y, s.Q.Y)}
	hi := Point[C]{X: Max(s.P.X, s.Q.X), Y: Max(s.P.Y, s.Q.Y)}
	return NewRectFromCorners(lo, hi)
}

// OnSegment reports whether p lies within seg's axis-aligned bounding
// rectangle. Meant to be used only after an orientation test has
// already established that p is collinear with seg.
func OnSegment[C Coord](seg Segment[C], p Point[C]) bool {
	return ContainsPoint[C](seg.BoundingBox(), p)
}

// TranslateSegment returns seg shifted by (dx, dy).
func TranslateSegment[C Coord](seg Segment[C], dx, dy C) Segment[C] {
	return Segment[C]{P: seg.P.Translate(dx, dy), Q: seg.Q.Translate(dx, dy)}
}

// SegmentsIntersect reports whether segments a and b intersect, combining
// the general orientation-based case with the collinear special case: an
// endpoint of one segment lying exactly on the other counts as an
// intersection, with no separate epsilon needed since orientation is
// computed exactly over C.
func SegmentsIntersect[C Coord](a, b Segment[C]) bool {
	o1 := OrientationOf(a.P, a.Q, b.P)
	o2 := OrientationOf(a.P, a.Q, b.Q)
	o3 := OrientationOf(b.P, b.Q, a.P)
	o4 := OrientationOf(b.P, b.Q, a.Q)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == Collinear && OnSegment(a, b.P) {
		return true
	}
	if o2 == Collinear && OnSegment(a, b.Q) {
		return true
	}
	if o3 == Collinear && OnSegment(b, a.P) {
		return true
	}
	if o4 == Collinear && OnSegment(b, a.Q) {
		return true
	}
	return false
}
