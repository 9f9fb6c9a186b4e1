// Package polygon implements the polygon algorithms layered on top of
// package geometry's predicate kernel: point-in-simple-polygon via
// even-odd ray casting, point-in-polygon-with-holes, and polygon–polygon
// overlap via the Separating Axis Theorem.
//
// SimplePolygon and Polygon are generic over the same coordinate type
// constraint as package geometry (geometry.Coord).
package polygon
