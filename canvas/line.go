package canvas

import "github.com/lixenwraith/blockpaint/geom"

// LineTraverser walks a Bresenham line between two points, both ends included
// Zero-allocation iterator; Reset rewinds it to the start
type LineTraverser struct {
	from, to geom.Point
	cur      geom.Point

	dx, dy int
	sx, sy int
	err    int

	started bool
	done    bool
}

// Line creates a traverser from a to b
func Line(a, b geom.Point) LineTraverser {
	t := LineTraverser{from: a, to: b}
	t.dx = abs(b.X - a.X)
	t.dy = -abs(b.Y - a.Y)
	t.sx, t.sy = 1, 1
	if a.X > b.X {
		t.sx = -1
	}
	if a.Y > b.Y {
		t.sy = -1
	}
	t.Reset()
	return t
}

// Reset rewinds the traverser to its first point
func (t *LineTraverser) Reset() {
	t.cur = t.from
	t.err = t.dx + t.dy
	t.started = false
	t.done = false
}

// Next advances to the next point
// Returns true if a point is available via Pos()
func (t *LineTraverser) Next() bool {
	if t.done {
		return false
	}
	if !t.started {
		t.started = true
		return true
	}
	if t.cur == t.to {
		t.done = true
		return false
	}

	e2 := 2 * t.err
	if e2 >= t.dy {
		t.err += t.dy
		t.cur.X += t.sx
	}
	if e2 <= t.dx {
		t.err += t.dx
		t.cur.Y += t.sy
	}
	return true
}

// Pos returns the current point
func (t *LineTraverser) Pos() geom.Point {
	return t.cur
}

// Points collects the remaining points
func (t *LineTraverser) Points() []geom.Point {
	var out []geom.Point
	for t.Next() {
		out = append(out, t.cur)
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
