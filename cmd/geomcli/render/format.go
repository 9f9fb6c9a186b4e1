// Package render is a non-core, illustrative textual-rendering
// collaborator: it turns the core shapes into simple diagnostic strings
// (Point { x, y }, Rect { { x, y }, w, h }, ...). Nothing in the
// geometry, polygon, or quadtree packages depends on it.
package render

import (
	"fmt"
	"strings"

	"github.com/ArgishtiAyvazyan/geometry"
	"github.com/ArgishtiAyvazyan/geometry/polygon"
)

// Point formats p as "Point { x, y }".
func Point[C geometry.Coord](p geometry.Point[C]) string {
	return fmt.Sprintf("Point { %v, %v }", p.X, p.Y)
}

// Rect formats r as "Rect { { x, y }, w, h }".
func Rect[C geometry.Coord](r geometry.Rect[C]) string {
	return fmt.Sprintf("Rect { { %v, %v }, %v, %v }", r.Pos().X, r.Pos().Y, r.Width(), r.Height())
}

// Square formats s as "Square { { x, y }, size }", giving its single
// side length instead of Rect's separate width and height.
func Square[C geometry.Coord](s geometry.Square[C]) string {
	return fmt.Sprintf("Square { { %v, %v }, %v }", s.Pos().X, s.Pos().Y, s.Size())
}

// SimplePolygon formats p as "SimplePolygon { p1, p2, ... }". It returns
// "SimplePolygon {}" for an empty polygon rather than erroring, since
// rendering is a best-effort diagnostic.
func SimplePolygon[C geometry.Coord](p polygon.SimplePolygon[C]) string {
	verts, err := p.Boundary()
	if err != nil {
		return "SimplePolygon {}"
	}
	parts := make([]string, len(verts))
	for i, v := range verts {
		parts[i] = Point(v)
	}
	return "SimplePolygon { " + strings.Join(parts, ", ") + " }"
}

// Polygon formats p as "Polygon { Boundary: { ... } Hole: { ... } ... }",
// one Hole clause per hole.
func Polygon[C geometry.Coord](p polygon.Polygon[C]) string {
	var b strings.Builder
	b.WriteString("Polygon { Boundary: ")
	b.WriteString(boundaryClause(p.Outer()))
	for i := 0; i < p.HoleCount(); i++ {
		b.WriteString(" Hole: ")
		b.WriteString(boundaryClause(p.Hole(i)))
	}
	b.WriteString(" }")
	return b.String()
}

func boundaryClause[C geometry.Coord](s polygon.SimplePolygon[C]) string {
	verts, err := s.Boundary()
	if err != nil {
		return "{}"
	}
	parts := make([]string, len(verts))
	for i, v := range verts {
		parts[i] = Point(v)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}
