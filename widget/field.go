package widget

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/render"
)

// FieldMaxLen caps the input so it fits under the grayscale row
const FieldMaxLen = color.GrayscaleColorCount

// isWordChar returns true for word-constituent characters
func isWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// Field is the colour text input under the palette
// The text is centred in the palette width and parsed with color.Parse after every edit
type Field struct {
	origin geom.Point
	text   []rune
	cursor int // position before which the cursor sits
}

// NewField creates an empty field whose row starts at origin
func NewField(origin geom.Point) *Field {
	return &Field{origin: origin}
}

// Value returns the current text
func (f *Field) Value() string {
	return string(f.text)
}

// Cursor returns the cursor position in runes
func (f *Field) Cursor() int {
	return f.cursor
}

// Move repositions the field, e.g. after the palette was relaid out
func (f *Field) Move(origin geom.Point) {
	f.origin = origin
}

// Clear empties the field
func (f *Field) Clear() {
	f.text = nil
	f.cursor = 0
}

// Color parses the current text
func (f *Field) Color() (color.Color, bool) {
	return color.Parse(f.Value())
}

// Insert adds r at the cursor; false when the field is full
func (f *Field) Insert(r rune) bool {
	if len(f.text) >= FieldMaxLen {
		return false
	}
	f.text = append(f.text[:f.cursor], append([]rune{r}, f.text[f.cursor:]...)...)
	f.cursor++
	return true
}

// DeleteBackward removes the rune before the cursor
func (f *Field) DeleteBackward() bool {
	if f.cursor == 0 {
		return false
	}
	f.text = append(f.text[:f.cursor-1], f.text[f.cursor:]...)
	f.cursor--
	return true
}

// DeleteWordBackward removes the word before the cursor
func (f *Field) DeleteWordBackward() bool {
	if f.cursor == 0 {
		return false
	}
	end := f.cursor
	for end > 0 && !isWordChar(f.text[end-1]) {
		end--
	}
	start := end
	for start > 0 && isWordChar(f.text[start-1]) {
		start--
	}
	f.text = append(f.text[:start], f.text[f.cursor:]...)
	f.cursor = start
	return true
}

func (f *Field) MoveLeft() {
	if f.cursor > 0 {
		f.cursor--
	}
}

func (f *Field) MoveRight() {
	if f.cursor < len(f.text) {
		f.cursor++
	}
}

// MoveWordLeft moves the cursor to the previous word start
func (f *Field) MoveWordLeft() {
	for f.cursor > 0 && !isWordChar(f.text[f.cursor-1]) {
		f.cursor--
	}
	for f.cursor > 0 && isWordChar(f.text[f.cursor-1]) {
		f.cursor--
	}
}

// MoveWordRight moves the cursor past the next word
func (f *Field) MoveWordRight() {
	for f.cursor < len(f.text) && !isWordChar(f.text[f.cursor]) {
		f.cursor++
	}
	for f.cursor < len(f.text) && isWordChar(f.text[f.cursor]) {
		f.cursor++
	}
}

// HandleKey applies an editing key
// handled reports whether the key belongs to the field, edited whether the text changed
func (f *Field) HandleKey(ev *tcell.EventKey) (handled, edited bool) {
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Rune() < ' ' {
			return false, false
		}
		return true, f.Insert(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if ctrl {
			return true, f.DeleteWordBackward()
		}
		return true, f.DeleteBackward()
	case tcell.KeyCtrlW:
		return true, f.DeleteWordBackward()
	case tcell.KeyLeft:
		if ctrl {
			f.MoveWordLeft()
		} else {
			f.MoveLeft()
		}
		return true, false
	case tcell.KeyRight:
		if ctrl {
			f.MoveWordRight()
		} else {
			f.MoveRight()
		}
		return true, false
	case tcell.KeyHome:
		f.cursor = 0
		return true, false
	case tcell.KeyEnd:
		f.cursor = len(f.text)
		return true, false
	}
	return false, false
}

// textX is the column the centred text starts at
func (f *Field) textX() int {
	return f.origin.X + PaletteWidth/2 - len(f.text)/2
}

// Draw blanks the field row, writes the centred text and places the terminal cursor
func (f *Field) Draw(s *render.Screen) {
	s.Fill(f.origin, geom.Size{Width: PaletteWidth, Height: 1}, tcell.StyleDefault)
	x := f.textX()
	s.Print(geom.Point{X: x, Y: f.origin.Y}, f.Value(), tcell.StyleDefault)
	s.ShowCursor(geom.Point{X: x + f.cursor, Y: f.origin.Y})
}
