package widget

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockpaint/canvas"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/render"
)

// Title is the terminal title for a new drawing
const Title = "BlockPaint (Untitled)"

// Instructions are printed at the top of an empty canvas
var Instructions = [...]string{
	"Draw using the left and right mouse button.",
	"Pick a color from the canvas using the middle mouse button.",
	"Toggle the palette using tab and select colors with the left or right mouse button.",
}

// DrawInstructions writes the instructions into the canvas from the top-left corner
// They are stored as override characters, so a redraw keeps them until painted over
func DrawInstructions(cv *canvas.Canvas) {
	for i, line := range Instructions {
		cv.Text(geom.Point{X: 0, Y: i}, line)
	}
}

// DrawStatus writes a message on the bottom row, blanking the rest of the row
func DrawStatus(s *render.Screen, format string, args ...any) {
	size := s.Size()
	if size.Height == 0 {
		return
	}
	y := size.Height - 1
	n := s.Print(geom.Point{X: 0, Y: y}, fmt.Sprintf(format, args...), tcell.StyleDefault.Reverse(true))
	s.ClearLine(n, y)
}
