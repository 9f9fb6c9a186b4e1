package geometry

// Error is a typed error value returned by the small set of geometry
// operations that can fail.
type Error string

// Error implements the error interface.
func (e Error) Error() string { return string(e) }

// ErrEmpty is returned when the boundary of an empty shape is accessed.
// Callers are expected to guard with Empty() first.
const ErrEmpty Error = "geometry: shape is empty"
