package model

// Position is a grid coordinate. Both components are non-negative.
type Position struct {
	X, Y int
}

// Dims holds the fixed width and height of a row-major grid
type Dims struct {
	Width  int
	Height int
}

// Len returns the number of cells in a grid of these dimensions
func (d Dims) Len() int {
	return d.Width * d.Height
}

// Contains reports whether (x, y) lies inside the grid
func (d Dims) Contains(x, y int) bool {
	return x >= 0 && x < d.Width && y >= 0 && y < d.Height
}

// IndexOf maps (x, y) to a row-major index. Inputs are not bounds-checked: x == Width
// aliases column 0 of row y+1, and y past Height yields an index beyond Len.
func (d Dims) IndexOf(x, y int) int {
	return y*d.Width + x
}

// PositionOf maps a row-major index back to its coordinate.
func (d Dims) PositionOf(index int) Position {
	if d.Width == 0 {
		return Position{}
	}
	return Position{X: index % d.Width, Y: index / d.Width}
}
