package canvas

import (
	"testing"

	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// paintedPoints returns every half-block inside the visible canvas that has been set
func paintedPoints(cv *Canvas) map[geom.Point]color.Color {
	out := make(map[geom.Point]color.Color)
	size := cv.Size()
	for y := 0; y < 2*size.Height; y++ {
		for x := 0; x < size.Width; x++ {
			p := geom.Point{X: x, Y: y}
			cell := cv.Cell(p)
			half := cell.Upper
			if y%2 != 0 {
				half = cell.Lower
			}
			if half.Set {
				out[p] = half.Color
			}
		}
	}
	return out
}

func TestHollowRectangle(t *testing.T) {
	cv, _ := newTestCanvas(20, 20)
	cv.HollowRectangle(geom.Point{X: 1, Y: 1}, geom.Size{Width: 5, Height: 3}, color.Red)

	got := paintedPoints(cv)
	if len(got) != 12 {
		t.Errorf("Expected 12 outline points, got %d", len(got))
	}
	for x := 2; x <= 4; x++ {
		p := geom.Point{X: x, Y: 2}
		if _, ok := got[p]; ok {
			t.Errorf("Expected interior point %v untouched", p)
		}
	}
	for _, p := range []geom.Point{{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 1, Y: 3}, {X: 5, Y: 3}, {X: 1, Y: 2}, {X: 5, Y: 2}} {
		if got[p] != color.Red {
			t.Errorf("Expected outline point %v red, got %v", p, got[p])
		}
	}
}

func TestHollowRectangleDegenerate(t *testing.T) {
	tests := []struct {
		name string
		size geom.Size
		want int
	}{
		{"empty", geom.Size{Width: 0, Height: 4}, 0},
		{"single", geom.Size{Width: 1, Height: 1}, 1},
		{"row", geom.Size{Width: 4, Height: 1}, 4},
		{"column", geom.Size{Width: 1, Height: 4}, 4},
		{"two by two", geom.Size{Width: 2, Height: 2}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cv, _ := newTestCanvas(20, 20)
			cv.HollowRectangle(geom.Point{X: 3, Y: 3}, tt.size, color.Blue)
			if got := len(paintedPoints(cv)); got != tt.want {
				t.Errorf("Expected %d points, got %d", tt.want, got)
			}
		})
	}
}

func TestFilledRectangle(t *testing.T) {
	cv, _ := newTestCanvas(20, 20)
	cv.FilledRectangle(geom.Point{X: 2, Y: 3}, geom.Size{Width: 4, Height: 3}, color.Green)

	got := paintedPoints(cv)
	if len(got) != 12 {
		t.Errorf("Expected 12 points, got %d", len(got))
	}
	if _, ok := got[geom.Point{X: 3, Y: 4}]; !ok {
		t.Error("Expected interior point painted")
	}
}

func TestCircle(t *testing.T) {
	cv, _ := newTestCanvas(40, 40)
	center := geom.Point{X: 10, Y: 10}

	cv.Circle(center, color.Red, 0)
	if got := len(paintedPoints(cv)); got != 0 {
		t.Errorf("Expected radius 0 to paint nothing, got %d", got)
	}

	cv.Circle(center, color.Red, 3)
	got := paintedPoints(cv)
	if len(got) != 22 {
		t.Errorf("Expected 22 points for radius 3, got %d", len(got))
	}
	for p := range got {
		dx, dy := p.X-center.X, p.Y-center.Y
		if dx*dx+dy*dy > 9+2*3+1 {
			t.Errorf("Expected %v within the disc", p)
		}
	}
}

func TestBrushSizes(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{0, 1},
		{1, 1},
		{2, 5},
		{3, 8},
	}
	for _, tt := range tests {
		cv, _ := newTestCanvas(40, 40)
		p := geom.Point{X: 10, Y: 10}
		cv.Brush(p, color.Magenta, tt.size)
		got := paintedPoints(cv)
		if len(got) != tt.want {
			t.Errorf("Size %d: expected %d points, got %d", tt.size, tt.want, len(got))
		}
		if tt.size <= 2 && got[p] != color.Magenta {
			t.Errorf("Size %d: expected centre painted", tt.size)
		}
	}
}

func TestBrushPlus(t *testing.T) {
	cv, _ := newTestCanvas(40, 40)
	p := geom.Point{X: 10, Y: 10}
	cv.Brush(p, color.Cyan, 2)

	got := paintedPoints(cv)
	for _, q := range []geom.Point{p, p.Add(0, -1), p.Add(-1, 0), p.Add(1, 0), p.Add(0, 1)} {
		if got[q] != color.Cyan {
			t.Errorf("Expected plus arm %v painted", q)
		}
	}
}

func TestQuill(t *testing.T) {
	cv, _ := newTestCanvas(40, 40)
	p := geom.Point{X: 5, Y: 10}
	cv.Quill(p, color.Yellow, 4)

	got := paintedPoints(cv)
	want := []geom.Point{{X: 5, Y: 9}, {X: 5, Y: 10}, {X: 5, Y: 11}, {X: 5, Y: 12}}
	if len(got) != len(want) {
		t.Errorf("Expected %d points, got %d", len(want), len(got))
	}
	for _, q := range want {
		if _, ok := got[q]; !ok {
			t.Errorf("Expected %v painted", q)
		}
	}
}
