package widget

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockpaint/canvas"
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/render"
)

// Sample returns the colour shown in terminal cell p: the upper half if painted, else the lower
// Cells off the canvas sample as color.Default
func Sample(cv *canvas.Canvas, p geom.Point) color.Color {
	half := geom.Point{X: p.X, Y: p.Y * 2}
	if !cv.Contains(half) {
		return color.Default
	}
	return cv.Cell(half).Color()
}

// Picker draws the pointer indicator while the user samples colours from the canvas
type Picker struct {
	cv     *canvas.Canvas
	screen *render.Screen
}

// NewPicker binds the picker to the canvas and its screen
func NewPicker(cv *canvas.Canvas, screen *render.Screen) *Picker {
	return &Picker{cv: cv, screen: screen}
}

// Indicate shows a cell in the inverse of the sampled colour at p and returns the sample
// The cell is restored in the back buffer right after the flush, so the next flush erases the indicator
func (pk *Picker) Indicate(p geom.Point) color.Color {
	c := Sample(pk.cv, p)
	s := pk.screen
	s.Print(p, " ", s.Style(c, c.Invert()))
	s.Flush()
	pk.restore(p)
	return c
}

// Finish restores the cell under the pointer and flushes
func (pk *Picker) Finish(p geom.Point) {
	pk.restore(p)
	pk.screen.Flush()
}

func (pk *Picker) restore(p geom.Point) {
	half := geom.Point{X: p.X, Y: p.Y * 2}
	if pk.cv.Contains(half) {
		if cell := pk.cv.Cell(half); !cell.Empty() {
			pk.cv.RedrawCell(cell)
			return
		}
	}
	pk.screen.Print(p, " ", tcell.StyleDefault)
}
