package canvas

import (
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// Surface is the terminal the canvas draws through
// Coordinates are terminal cells; Write advances the cursor one column per cell of output
type Surface interface {
	SetCursor(p geom.Point)
	SetForeground(c color.Color)
	SetBackground(c color.Color)
	ResetColors()
	Write(s string)
	Clear()
	Flush()
	Size() geom.Size
}
