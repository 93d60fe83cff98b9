// Package render adapts a tcell screen to the canvas surface and gives widgets
// a small text-drawing API on top of it.
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
)

// Screen implements canvas.Surface over tcell
// Colours are downsampled to the xterm-256 palette when the terminal lacks true colour
type Screen struct {
	screen tcell.Screen
	mode   ColorMode
	cursor geom.Point
	style  tcell.Style
}

// NewScreen wraps an initialised tcell screen
func NewScreen(screen tcell.Screen, mode ColorMode) *Screen {
	return &Screen{
		screen: screen,
		mode:   mode,
		style:  tcell.StyleDefault,
	}
}

// Tcell returns the wrapped screen for event polling
func (s *Screen) Tcell() tcell.Screen {
	return s.screen
}

// Mode returns the active colour mode
func (s *Screen) Mode() ColorMode {
	return s.mode
}

// SetMode switches colour mode; already drawn cells keep their colours until redrawn
func (s *Screen) SetMode(mode ColorMode) {
	s.mode = mode
}

// Cursor returns the position the next Write starts at
func (s *Screen) Cursor() geom.Point {
	return s.cursor
}

func (s *Screen) SetCursor(p geom.Point) {
	s.cursor = p
}

func (s *Screen) SetForeground(c color.Color) {
	s.style = s.style.Foreground(s.convert(c))
}

func (s *Screen) SetBackground(c color.Color) {
	s.style = s.style.Background(s.convert(c))
}

func (s *Screen) ResetColors() {
	s.style = tcell.StyleDefault
}

// Write puts text at the cursor in the current style and advances by display width
func (s *Screen) Write(text string) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.screen.SetContent(s.cursor.X, s.cursor.Y, r, nil, s.style)
		s.cursor.X += w
	}
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Flush() {
	s.screen.Show()
}

// Size reports the terminal size, clamped to the addressable range
func (s *Screen) Size() geom.Size {
	w, h := s.screen.Size()
	return geom.ClampSize(w, h)
}

// Style returns a tcell style for fg on bg converted for the active mode
func (s *Screen) Style(fg, bg color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(s.convert(fg)).Background(s.convert(bg))
}

// Foreground returns a style with only the foreground set
func (s *Screen) Foreground(fg color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(s.convert(fg))
}

// Print writes text at p in style without touching the cursor or current colours
// Returns the number of columns written
func (s *Screen) Print(p geom.Point, text string, style tcell.Style) int {
	x := p.X
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.screen.SetContent(x, p.Y, r, nil, style)
		x += w
	}
	return x - p.X
}

// Fill paints a rectangle of spaces in style
func (s *Screen) Fill(p geom.Point, size geom.Size, style tcell.Style) {
	for y := p.Y; y < p.Y+size.Height; y++ {
		for x := p.X; x < p.X+size.Width; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// ClearLine blanks row y from column x to the right edge
func (s *Screen) ClearLine(x, y int) {
	w, _ := s.screen.Size()
	for ; x < w; x++ {
		s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
}

// ShowCursor places the visible terminal cursor at p
func (s *Screen) ShowCursor(p geom.Point) {
	s.screen.ShowCursor(p.X, p.Y)
}

func (s *Screen) HideCursor() {
	s.screen.HideCursor()
}

// SetTitle sets the terminal window title when the screen supports it
func (s *Screen) SetTitle(title string) {
	if t, ok := s.screen.(interface{ SetTitle(string) }); ok {
		t.SetTitle(title)
	}
}

func (s *Screen) convert(c color.Color) tcell.Color {
	if s.mode == ColorMode256 {
		return c.To256().Tcell()
	}
	return c.Tcell()
}
