package canvas

import (
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// Half-block glyphs
const (
	GlyphUpper = "▀"
	GlyphLower = "▄"
)

// Half is one vertical half of a cell
type Half struct {
	Color color.Color
	// Point is the logical point the half was last painted at
	// Storage folds two rows into one, so the true y cannot be recovered from the index
	Point geom.Point
	Set   bool
}

// Cell backs one terminal character position
// Either Character is set or the halves are, never both
type Cell struct {
	Upper     Half
	Lower     Half
	Character rune
	// Position is the terminal cell this entry renders at
	Position geom.Point
}

// Empty reports whether nothing has been painted into the cell
func (c Cell) Empty() bool {
	return !c.Upper.Set && !c.Lower.Set && c.Character == 0
}

// Color returns the first set half, upper before lower, or color.Default
func (c Cell) Color() color.Color {
	switch {
	case c.Upper.Set:
		return c.Upper.Color
	case c.Lower.Set:
		return c.Lower.Color
	default:
		return color.Default
	}
}
