package canvas

import (
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// Brush stamps a round dot
// Size 1 is a single half-block, size 2 a plus, larger sizes a disc of radius size-1
func (c *Canvas) Brush(p geom.Point, col color.Color, size int) {
	switch {
	case size <= 1:
		c.Block(p, col)
	case size == 2:
		c.Block(p.Add(0, -1), col)
		c.Block(p.Add(-1, 0), col)
		c.Block(p, col)
		c.Block(p.Add(1, 0), col)
		c.Block(p.Add(0, 1), col)
	default:
		c.Circle(p, col, size-1)
	}
}

// Quill zig-zags around p: even steps go down by step/2, odd steps go up by step/2
func (c *Canvas) Quill(p geom.Point, col color.Color, size int) {
	for step := 0; step <= size; step++ {
		if step%2 == 0 {
			c.Block(p.Add(0, step/2), col)
		} else {
			c.Block(p.Add(0, -step/2), col)
		}
	}
}
