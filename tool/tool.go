// Package tool defines the painting tools and applies them to a canvas.
package tool

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/blockpaint/canvas"
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// Tool is a painting tool
type Tool uint8

const (
	Brush Tool = iota
	Quill
	Rectangle
	Bucket

	toolCount
)

var toolNames = [toolCount]string{"brush", "quill", "rectangle", "bucket"}

// All lists the tools in key order
var All = [toolCount]Tool{Brush, Quill, Rectangle, Bucket}

func (t Tool) String() string {
	if t >= toolCount {
		return fmt.Sprintf("tool(%d)", uint8(t))
	}
	return toolNames[t]
}

// Key returns the digit that selects the tool
func (t Tool) Key() rune {
	return '1' + rune(t)
}

// FromKey maps '1'..'4' to a tool
func FromKey(r rune) (Tool, bool) {
	if r < '1' || r >= '1'+rune(toolCount) {
		return 0, false
	}
	return Tool(r - '1'), true
}

// Parse resolves a tool by name
func Parse(s string) (Tool, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range toolNames {
		if name == key {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", s)
}

// Draw applies t at p. When last is set and differs from p the tool is applied
// along the line from last to p, so fast drags leave no gaps.
// Out-of-range points abort the stroke and are returned as *canvas.RangeError
func (t Tool) Draw(cv *canvas.Canvas, p geom.Point, last *geom.Point, c color.Color, size int) error {
	return canvas.Guard(func() {
		if last == nil || *last == p {
			t.apply(cv, p, c, size)
			return
		}
		line := canvas.Line(*last, p)
		for line.Next() {
			t.apply(cv, line.Pos(), c, size)
		}
	})
}

func (t Tool) apply(cv *canvas.Canvas, p geom.Point, c color.Color, size int) {
	switch t {
	case Brush:
		cv.Brush(p, c, size)
	case Quill:
		cv.Quill(p, c, size)
	case Rectangle:
		cv.HollowRectangle(p, geom.Size{Width: size, Height: size}, c)
	case Bucket:
		cv.Bucket(p, c)
	default:
		panic(fmt.Sprintf("tool: unknown tool %d", uint8(t)))
	}
}
