// Package widget draws the editor chrome: the palette window, the colour
// input field, the colour picker indicator and the text lines around the canvas.
package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/render"
)

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle LineType = iota // ┌─┐│└┘
	LineDouble                 // ╔═╗║╚╝
)

var boxChars = [...][6]rune{
	LineSingle: {'┌', '─', '┐', '│', '└', '┘'},
	LineDouble: {'╔', '═', '╗', '║', '╚', '╝'},
}

const (
	boxTL = iota
	boxH
	boxTR
	boxV
	boxBL
	boxBR
)

// Region is a rectangle in terminal cells
type Region struct {
	X, Y, W, H int
}

// Centered returns a w x h region centred in term, pinned to the top-left when it does not fit
func Centered(term geom.Size, w, h int) Region {
	return Region{
		X: max(term.Width/2-w/2, 0),
		Y: max(term.Height/2-h/2, 0),
		W: w,
		H: h,
	}
}

// Origin returns the top-left corner
func (r Region) Origin() geom.Point {
	return geom.Point{X: r.X, Y: r.Y}
}

// Inner returns the region inside a one-cell border
func (r Region) Inner() Region {
	return Region{X: r.X + 1, Y: r.Y + 1, W: max(r.W-2, 0), H: max(r.H-2, 0)}
}

// Contains reports whether terminal cell p is inside the region
func (r Region) Contains(p geom.Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Box draws a border around the region edge in fg, keeping the interior
func (r Region) Box(s *render.Screen, line LineType, fg color.Color) {
	if r.W < 2 || r.H < 2 {
		return
	}
	chars := boxChars[line]
	style := s.Foreground(fg)

	put := func(x, y int, ch rune) {
		s.Print(geom.Point{X: r.X + x, Y: r.Y + y}, string(ch), style)
	}

	put(0, 0, chars[boxTL])
	put(r.W-1, 0, chars[boxTR])
	put(0, r.H-1, chars[boxBL])
	put(r.W-1, r.H-1, chars[boxBR])

	for x := 1; x < r.W-1; x++ {
		put(x, 0, chars[boxH])
		put(x, r.H-1, chars[boxH])
	}
	for y := 1; y < r.H-1; y++ {
		put(0, y, chars[boxV])
		put(r.W-1, y, chars[boxV])
	}
}

// Clear blanks the whole region
func (r Region) Clear(s *render.Screen) {
	s.Fill(r.Origin(), geom.Size{Width: r.W, Height: r.H}, tcell.StyleDefault)
}
