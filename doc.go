// Package geometry provides the primitive 2D shapes (Point, Vec2, Rect,
// Square, Segment) and the predicate kernel (intersects, contains,
// orientation, distance, translate) that the rest of this module's
// packages — polygon and quadtree — build on.
//
// All types are generic over a coordinate type C satisfying Coord: any
// signed integer type, float32, or float64. Integer coordinates are the
// primary use case (the quadtree indexes int32 rectangles in practice).
package geometry
