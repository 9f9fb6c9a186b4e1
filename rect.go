package geometry

// Box is the axis-aligned-box capability set: Rect and Square are
// interchangeable under every predicate in this package by implementing
// Box rather than by inheritance.
type Box[C Coord] interface {
	Pos() Point[C]
	Width() C
	Height() C
}

// Rect is an axis-aligned rectangle. Pos is the bottom-left corner;
// Width and Height must be non-negative.
type Rect[C Coord] struct {
	pos           Point[C]
	width, height C
}

// NewRect constructs a Rect from its bottom-left corner and extents.
func NewRect[C Coord](pos Point[C], width, height C) Rect[C] {
	return Rect[C]{pos: pos, width: width, height: height}
}

// NewRectFromCorners constructs a Rect spanning lbot (bottom-left) to
// rtop (top-right).
func NewRectFromCorners[C Coord](lbot, rtop Point[C]) Rect[C] {
	return Rect[C]{pos: lbot, width: rtop.X - lbot.X, height: rtop.Y - lbot.Y}
}

// Pos returns the bottom-left corner.
func (r Rect[C]) Pos() Point[C] { return r.pos }

// Width returns the rectangle's width.
func (r Rect[C]) Width() C { return r.width }

// Height returns the rectangle's height.
func (r Rect[C]) Height() C { return r.height }

// Square is a Rect specialization with Width == Height == Size.
type Square[C Coord] struct {
	pos  Point[C]
	size C
}

// NewSquare constructs a Square from its bottom-left corner and size.
func NewSquare[C Coord](pos Point[C], size C) Square[C] {
	return Square[C]{pos: pos, size: size}
}

// Pos returns the bottom-left corner.
func (s Square[C]) Pos() Point[C] { return s.pos }

// Width reports the square's size.
func (s Square[C]) Width() C { return s.size }

// Height reports the square's size.
func (s Square[C]) Height() C { return s.size }

// Size returns the square's side length.
func (s Square[C]) Size() C { return s.size }

// BottomLeft returns box's bottom-left corner.
func BottomLeft[C Coord, B Box[C]](b B) Point[C] {
	return b.Pos()
}

// BottomRight returns box's bottom-right corner.
func BottomRight[C Coord, B Box[C]](b B) Point[C] {
	p := b.Pos()
	return Point[C]{X: p.X + b.Width(), Y: p.Y}
}

// TopLeft returns box's top-left corner.
func TopLeft[C Coord, B Box[C]](b B) Point[C] {
	p := b.Pos()
	return Point[C]{X: p.X, Y: p.Y + b.Height()}
}

// TopRight returns box's top-right corner.
func TopRight[C Coord, B Box[C]](b B) Point[C] {
	p := b.Pos()
	return Point[C]{X: p.X + b.Width(), Y: p.Y + b.Height()}
}

// ContainsPoint reports whether box contains point, closed on all edges.
func ContainsPoint[C Coord, B Box[C]](box B, point Point[C]) bool {
	bl := BottomLeft[C](box)
	tr := TopRight[C](box)
	return bl.X <= point.X && point.X <= tr.X && bl.Y <= point.Y && point.Y <= tr.Y
}

// Contains reports whether box a fully contains box b: both of b's
// bottom-left and top-right corners lie within a.
func Contains[C Coord, A Box[C], B Box[C]](a A, b B) bool {
	return ContainsPoint[C](a, BottomLeft[C](b)) && ContainsPoint[C](a, TopRight[C](b))
}

// Intersects reports whether two axis-aligned boxes overlap, with
// touching edges counting as intersection (closed-box semantics).
func Intersects[C Coord, A Box[C], B Box[C]](a A, b B) bool {
	aBL, aTR := BottomLeft[C](a), TopRight[C](a)
	bBL, bTR := BottomLeft[C](b), TopRight[C](b)
	return aTR.X >= bBL.X && bTR.X >= aBL.X && aTR.Y >= bBL.Y && bTR.Y >= aBL.Y
}

// TranslateRect returns r shifted by (dx, dy).
func TranslateRect[C Coord](r Rect[C], dx, dy C) Rect[C] {
	return Rect[C]{pos: r.pos.Translate(dx, dy), width: r.width, height: r.height}
}

// TranslateSquare returns s shifted by (dx, dy).
func TranslateSquare[C Coord](s Square[C], dx, dy C) Square[C] {
	return Square[C]{pos: s.pos.Translate(dx, dy), size: s.size}
}

// TranslatePoint returns p shifted by (dx, dy). Named distinctly from
// Point.Translate so free-function callers can dispatch uniformly
// across shapes.
func TranslatePoint[C Coord](p Point[C], dx, dy C) Point[C] {
	return p.Translate(dx, dy)
}
