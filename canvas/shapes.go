package canvas

import (
	"math"

	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// Circle fills a disc of the given radius around center, one vertical span per column
func (c *Canvas) Circle(center geom.Point, col color.Color, radius int) {
	if radius <= 0 {
		return
	}
	rr := radius * radius
	for x := -radius; x < radius; x++ {
		hh := int(math.Sqrt(float64(rr - x*x)))
		for y := center.Y - hh; y < center.Y+hh; y++ {
			c.Block(geom.Point{X: center.X + x, Y: y}, col)
		}
	}
}

// HollowRectangle outlines a rectangle whose top-left corner is p
func (c *Canvas) HollowRectangle(p geom.Point, size geom.Size, col color.Color) {
	w, h := size.Width, size.Height
	if w <= 0 || h <= 0 {
		return
	}

	// -----
	//
	// -----
	c.Blocks(p, col, w)
	if h > 1 {
		c.Blocks(p.Add(0, h-1), col, w)
	}

	// +---+
	// |   |
	// +---+
	for i := 1; i < h-1; i++ {
		c.Block(p.Add(0, i), col)
		if w > 1 {
			c.Block(p.Add(w-1, i), col)
		}
	}
}

// FilledRectangle paints every point of a rectangle whose top-left corner is p
func (c *Canvas) FilledRectangle(p geom.Point, size geom.Size, col color.Color) {
	for i := 0; i < size.Height; i++ {
		c.Blocks(p.Add(0, i), col, size.Width)
	}
}
