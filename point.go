package canvasex

// Point is a 2D coordinate in canvas space (y axis pointing down).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
//
// Width and Height are expected to be non-negative. Negative values are not
// validated and are handed to the Canvas as they are.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a rectangle from its origin and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}
