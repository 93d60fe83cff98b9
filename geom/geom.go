// Package geom holds the coordinate value types shared by the canvas, tools and widgets.
package geom

import "fmt"

// MaxCoord bounds every coordinate and dimension (one byte per axis)
const MaxCoord = 255

// Point is an (x, y) coordinate
// X is a terminal column. Y is a terminal row, or a half-block row when addressing the canvas grid
type Point struct {
	X, Y int
}

// Add returns p translated by (dx, dy)
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is a width/height pair in terminal cells
type Size struct {
	Width, Height int
}

// NewSize builds a Size, panicking when a dimension does not fit the coordinate range
func NewSize(width, height int) Size {
	if width < 0 || width > MaxCoord {
		panic(fmt.Sprintf("terminal width must be in range 0 to %d, got %d", MaxCoord, width))
	}
	if height < 0 || height > MaxCoord {
		panic(fmt.Sprintf("terminal height must be in range 0 to %d, got %d", MaxCoord, height))
	}
	return Size{Width: width, Height: height}
}

// ClampSize is NewSize for sizes reported by the terminal, which may exceed the range
func ClampSize(width, height int) Size {
	return NewSize(clamp(width), clamp(height))
}

// Area returns width * height
func (s Size) Area() int {
	return s.Width * s.Height
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > MaxCoord {
		return MaxCoord
	}
	return v
}
