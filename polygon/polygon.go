package polygon

import "github.com/ArgishtiAyvazyan/geometry"

// Polygon is a simple polygon outer plus an ordered sequence of simple
// polygon holes, represented internally as one contiguous sequence where
// index 0 is the outer boundary. This makes the bounding-box shortcut
// (outer's bbox is the whole polygon's bbox) cheap.
type Polygon[C geometry.Coord] struct {
	contours []SimplePolygon[C]
}

// NewPolygon constructs a Polygon from an outer boundary and its holes.
func NewPolygon[C geometry.Coord](outer SimplePolygon[C], holes ...SimplePolygon[C]) Polygon[C] {
	contours := make([]SimplePolygon[C], 0, 1+len(holes))
	contours = append(contours, outer)
	contours = append(contours, holes...)
	return Polygon[C]{contours: contours}
}

// Empty reports whether the polygon has no outer boundary.
func (p Polygon[C]) Empty() bool {
	return len(p.contours) == 0 || p.contours[0].Empty()
}

// Outer returns the outer boundary.
func (p Polygon[C]) Outer() SimplePolygon[C] {
	if len(p.contours) == 0 {
		return SimplePolygon[C]{}
	}
	return p.contours[0]
}

// HoleCount returns the number of holes.
func (p Polygon[C]) HoleCount() int {
	if len(p.contours) == 0 {
		return 0
	}
	return len(p.contours) - 1
}

// Hole returns the i'th hole.
func (p Polygon[C]) Hole(i int) SimplePolygon[C] {
	return p.contours[i+1]
}

// Boundary returns the outer boundary's vertices, or geometry.ErrEmpty if
// the polygon has no outer boundary.
func (p Polygon[C]) Boundary() ([]geometry.Point[C], error) {
	if p.Empty() {
		return nil, geometry.ErrEmpty
	}
	return p.Outer().Boundary()
}

// PolygonBoundingBox returns the bounding box of the polygon, which is simply
// the outer contour's bounding box: holes are strict subsets of the
// outer boundary, so they never extend it.
func PolygonBoundingBox[C geometry.Coord](p Polygon[C]) geometry.Rect[C] {
	return BoundingBox(p.Outer())
}

// TranslatePolygon returns a copy of p with every contour (outer and
// holes alike) shifted by (dx, dy).
func TranslatePolygon[C geometry.Coord](p Polygon[C], dx, dy C) Polygon[C] {
	out := make([]SimplePolygon[C], len(p.contours))
	for i, c := range p.contours {
		out[i] = Translate(c, dx, dy)
	}
	return Polygon[C]{contours: out}
}
