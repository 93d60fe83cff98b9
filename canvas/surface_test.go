package canvas

import (
	"unicode/utf8"

	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// write is one recorded Write call
type write struct {
	At    geom.Point
	Text  string
	Fg    color.Color
	Bg    color.Color
	HasFg bool
	HasBg bool
}

// recordingSurface captures the output stream for assertions
type recordingSurface struct {
	size    geom.Size
	cursor  geom.Point
	fg, bg  color.Color
	hasFg   bool
	hasBg   bool
	writes  []write
	clears  int
	flushes int
}

func newRecordingSurface(width, height int) *recordingSurface {
	return &recordingSurface{size: geom.NewSize(width, height)}
}

func (s *recordingSurface) SetCursor(p geom.Point)      { s.cursor = p }
func (s *recordingSurface) SetForeground(c color.Color) { s.fg, s.hasFg = c, true }
func (s *recordingSurface) SetBackground(c color.Color) { s.bg, s.hasBg = c, true }
func (s *recordingSurface) ResetColors()                { s.hasFg, s.hasBg = false, false }
func (s *recordingSurface) Clear()                      { s.clears++ }
func (s *recordingSurface) Flush()                      { s.flushes++ }
func (s *recordingSurface) Size() geom.Size             { return s.size }

func (s *recordingSurface) Write(text string) {
	s.writes = append(s.writes, write{
		At: s.cursor, Text: text,
		Fg: s.fg, Bg: s.bg, HasFg: s.hasFg, HasBg: s.hasBg,
	})
	s.cursor.X += utf8.RuneCountInString(text)
}

// last returns the most recent write
func (s *recordingSurface) last() write {
	return s.writes[len(s.writes)-1]
}
