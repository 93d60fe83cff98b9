// Package canvas is the pixel grid of the editor.
//
// Every terminal cell holds two pixels stacked vertically, rendered with the
// upper/lower half-block glyphs, so the grid is addressed at twice the
// terminal's vertical resolution. Storage is a fixed arena sized to the
// largest addressable terminal, which lets the terminal resize without
// reallocating.
//
// Addressing outside the arena is a programming error and panics with a
// *RangeError. Guard turns that panic back into an error at an operation
// boundary.
package canvas

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// Capacity is the number of stored cells: one per addressable terminal cell
const Capacity = geom.MaxCoord * geom.MaxCoord

// ErrWideCharacter is returned when an override character does not fit one cell
var ErrWideCharacter = errors.New("character must occupy exactly one cell")

// RangeError reports a point outside the addressable arena
type RangeError struct {
	Point geom.Point
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("cell at (%d, %d) is out of range", e.Point.X, e.Point.Y)
}

// Guard runs fn and converts a *RangeError panic into an error
// Any other panic propagates
func Guard(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(*RangeError)
			if !ok {
				panic(r)
			}
			err = re
		}
	}()
	fn()
	return nil
}

// Canvas owns the cell arena and the surface it renders to
type Canvas struct {
	surface Surface
	size    geom.Size
	cells   []Cell
}

// New creates an empty canvas sized to the surface's current terminal size
func New(surface Surface) *Canvas {
	return &Canvas{
		surface: surface,
		size:    surface.Size(),
		cells:   make([]Cell, Capacity),
	}
}

// Surface returns the surface the canvas draws through
func (c *Canvas) Surface() Surface {
	return c.surface
}

// Size returns the terminal size in cells
func (c *Canvas) Size() geom.Size {
	return c.size
}

// ResizeTerminal records a new terminal size; stored cells are kept
func (c *Canvas) ResizeTerminal(size geom.Size) {
	c.size = size
}

// Contains reports whether p lies on the visible canvas in half-block space
func (c *Canvas) Contains(p geom.Point) bool {
	return p.X >= 0 && p.X < c.size.Width && p.Y >= 0 && p.Y < 2*c.size.Height
}

func index(p geom.Point) int {
	if p.X < 0 || p.X >= geom.MaxCoord || p.Y < 0 || p.Y/2 >= geom.MaxCoord {
		panic(&RangeError{Point: p})
	}
	return p.X + geom.MaxCoord*(p.Y/2)
}

func (c *Canvas) cell(p geom.Point) *Cell {
	return &c.cells[index(p)]
}

// Cell returns a snapshot of the cell holding p
func (c *Canvas) Cell(p geom.Point) Cell {
	return *c.cell(p)
}

// Color returns the colour of the half-block at p, or color.Default when that half is empty
func (c *Canvas) Color(p geom.Point) color.Color {
	cell := c.cell(p)
	half := cell.Upper
	if p.Y%2 != 0 {
		half = cell.Lower
	}
	if !half.Set {
		return color.Default
	}
	return half.Color
}

// Clear empties every cell and the surface
func (c *Canvas) Clear() {
	clear(c.cells)
	c.surface.Clear()
}

// halfBlock writes col into the half selected by p.Y parity at the current surface cursor
func (c *Canvas) halfBlock(p geom.Point, col color.Color) {
	cell := c.cell(p)
	cell.Character = 0
	cell.Position = geom.Point{X: p.X, Y: p.Y / 2}

	glyph, other := GlyphUpper, cell.Lower
	if p.Y%2 == 0 {
		cell.Upper = Half{Color: col, Point: p, Set: true}
	} else {
		glyph, other = GlyphLower, cell.Upper
		cell.Lower = Half{Color: col, Point: p, Set: true}
	}

	c.surface.SetForeground(col)
	if other.Set {
		c.surface.SetBackground(other.Color)
	}
	c.surface.Write(glyph)
	c.surface.ResetColors()
}

// Block paints one half-block
func (c *Canvas) Block(p geom.Point, col color.Color) {
	c.surface.SetCursor(geom.Point{X: p.X, Y: p.Y / 2})
	c.halfBlock(p, col)
}

// Blocks paints count half-blocks to the right of p with one cursor placement
func (c *Canvas) Blocks(p geom.Point, col color.Color, count int) {
	if count <= 0 {
		return
	}
	c.surface.SetCursor(geom.Point{X: p.X, Y: p.Y / 2})
	for i := 0; i < count; i++ {
		c.halfBlock(geom.Point{X: p.X + i, Y: p.Y}, col)
	}
}

// SetCharacter puts a single-width rune over the whole cell at p, dropping both halves
func (c *Canvas) SetCharacter(p geom.Point, r rune) error {
	if runewidth.RuneWidth(r) != 1 {
		return fmt.Errorf("%q: %w", r, ErrWideCharacter)
	}
	cell := c.cell(p)
	*cell = Cell{Character: r, Position: geom.Point{X: p.X, Y: p.Y / 2}}
	c.surface.SetCursor(cell.Position)
	c.surface.ResetColors()
	c.surface.Write(string(r))
	return nil
}

// Text writes s as override characters starting at terminal cell pos, skipping wide runes
// It returns the number of cells written
func (c *Canvas) Text(pos geom.Point, s string) int {
	n := 0
	for _, r := range s {
		if c.SetCharacter(geom.Point{X: pos.X + n, Y: pos.Y * 2}, r) == nil {
			n++
		}
	}
	return n
}

// RedrawCell re-emits a stored cell at its position
func (c *Canvas) RedrawCell(cell Cell) {
	s := c.surface
	s.SetCursor(cell.Position)
	switch {
	case cell.Character != 0:
		s.ResetColors()
		s.Write(string(cell.Character))
		return
	case cell.Upper.Set:
		s.SetForeground(cell.Upper.Color)
		if cell.Lower.Set {
			s.SetBackground(cell.Lower.Color)
		}
		s.Write(GlyphUpper)
	case cell.Lower.Set:
		s.SetForeground(cell.Lower.Color)
		s.Write(GlyphLower)
	default:
		return
	}
	s.ResetColors()
}

// Redraw re-emits every stored cell, used after the surface was cleared or resized
func (c *Canvas) Redraw() {
	for i := range c.cells {
		if !c.cells[i].Empty() {
			c.RedrawCell(c.cells[i])
		}
	}
	c.surface.Flush()
}
