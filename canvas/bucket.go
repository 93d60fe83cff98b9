package canvas

import (
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// Neighbour offsets for the fill: left, right, up, down
var fillDirections = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Bucket flood-fills the 4-connected region sharing seed's colour and returns the number of half-blocks painted
// A point is painted when it is visible and still holds the seed colour, so each point is painted at most once
func (c *Canvas) Bucket(seed geom.Point, col color.Color) int {
	if !c.Contains(seed) {
		return 0
	}
	target := c.Color(seed)
	if target == col {
		return 0
	}

	c.Block(seed, col)
	painted := 1

	frontier := []geom.Point{seed}
	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]

		for _, d := range fillDirections {
			n := p.Add(d[0], d[1])
			if !c.Contains(n) || c.Color(n) != target {
				continue
			}
			c.Block(n, col)
			painted++
			frontier = append(frontier, n)
		}
	}
	return painted
}
