package canvas

import (
	"testing"

	"github.com/lixenwraith/blockpaint/geom"
)

func TestLineEndpoints(t *testing.T) {
	tests := []struct {
		name string
		a, b geom.Point
		n    int
	}{
		{"single", geom.Point{X: 2, Y: 2}, geom.Point{X: 2, Y: 2}, 1},
		{"horizontal", geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 0}, 4},
		{"vertical up", geom.Point{X: 1, Y: 5}, geom.Point{X: 1, Y: 1}, 5},
		{"diagonal", geom.Point{X: 0, Y: 0}, geom.Point{X: 3, Y: 3}, 4},
		{"steep reverse", geom.Point{X: 4, Y: 7}, geom.Point{X: 1, Y: 0}, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Line(tt.a, tt.b)
			pts := l.Points()
			if len(pts) != tt.n {
				t.Fatalf("Expected %d points, got %d: %v", tt.n, len(pts), pts)
			}
			if pts[0] != tt.a {
				t.Errorf("Expected first point %v, got %v", tt.a, pts[0])
			}
			if pts[len(pts)-1] != tt.b {
				t.Errorf("Expected last point %v, got %v", tt.b, pts[len(pts)-1])
			}
			for i := 1; i < len(pts); i++ {
				dx, dy := abs(pts[i].X-pts[i-1].X), abs(pts[i].Y-pts[i-1].Y)
				if dx > 1 || dy > 1 || dx+dy == 0 {
					t.Errorf("Expected adjacent steps, got %v -> %v", pts[i-1], pts[i])
				}
			}
		})
	}
}

func TestLineReset(t *testing.T) {
	l := Line(geom.Point{X: 0, Y: 0}, geom.Point{X: 5, Y: 2})
	first := l.Points()
	if l.Next() {
		t.Error("Expected exhausted traverser")
	}
	l.Reset()
	second := l.Points()
	if len(first) != len(second) {
		t.Fatalf("Expected same length after reset, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("Point %d: expected %v, got %v", i, first[i], second[i])
		}
	}
}
