package widget

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/blockpaint/canvas"
	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/render"
)

func newTestScreen(t *testing.T, width, height int) (*render.Screen, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	sim.SetSize(width, height)
	t.Cleanup(sim.Fini)
	return render.NewScreen(sim, render.ColorModeTrueColor), sim
}

func TestExtendedColors(t *testing.T) {
	colors := ExtendedColors()
	if len(colors) != 8*PaletteWidth {
		t.Errorf("Expected %d colours, got %d", 8*PaletteWidth, len(colors))
	}
	for _, c := range colors {
		i, _ := c.Index()
		if i <= color.SystemColorCount || i >= 232 {
			t.Errorf("Expected cube index, got %d", i)
		}
		for _, dup := range color.HighIntensityDuplicates {
			if i == dup {
				t.Errorf("Expected duplicate %d filtered", i)
			}
		}
	}
	if got := len(GrayscaleColors()); got != color.GrayscaleColorCount {
		t.Errorf("Expected %d grayscale colours, got %d", color.GrayscaleColorCount, got)
	}
}

func TestPaletteLayout(t *testing.T) {
	s, sim := newTestScreen(t, 80, 24)
	p := NewPalette()

	if _, ok := p.ColorAt(geom.Point{X: 40, Y: 12}); ok {
		t.Error("Expected closed palette to hit nothing")
	}

	p.Open(s, color.Red, color.Blue)
	if !p.IsOpen() {
		t.Fatal("Expected palette open")
	}

	want := 16 + 8*PaletteWidth + color.GrayscaleColorCount
	if got := len(p.Swatches()); got != want {
		t.Errorf("Expected %d swatches, got %d", want, got)
	}

	frame := p.Frame()
	if frame.W != PaletteWidth+2 || frame.H != PaletteHeight+2 {
		t.Errorf("Expected frame %dx%d, got %dx%d", PaletteWidth+2, PaletteHeight+2, frame.W, frame.H)
	}
	if frame.X != 40-frame.W/2 || frame.Y != 12-frame.H/2 {
		t.Errorf("Expected centred frame, got origin (%d, %d)", frame.X, frame.Y)
	}

	inner := frame.Inner().Origin()
	first := inner.Add(PaletteWidth/2-8, 0)
	for _, pt := range []geom.Point{first, first.Add(1, 0)} {
		if c, ok := p.ColorAt(pt); !ok || c != color.Black {
			t.Errorf("Expected black swatch at %v, got %v (%v)", pt, c, ok)
		}
	}
	if c, ok := p.ColorAt(first.Add(2, 1)); !ok || c != color.DarkRed {
		t.Errorf("Expected dark red under the second dark swatch, got %v (%v)", c, ok)
	}
	if c, ok := p.ColorAt(inner.Add(0, 2)); !ok || c != color.Indexed(17) {
		t.Errorf("Expected index 17 at the first extended cell, got %v (%v)", c, ok)
	}
	if c, ok := p.ColorAt(inner.Add(1, paletteRows-1)); !ok || c != color.Indexed(232) {
		t.Errorf("Expected first grayscale cell, got %v (%v)", c, ok)
	}
	if _, ok := p.ColorAt(inner); ok {
		t.Error("Expected the left slot preview not to be a swatch")
	}

	r, _, style, _ := sim.GetContent(inner.X+2, inner.Y)
	if r != 'L' {
		t.Errorf("Expected L slot label, got %q", r)
	}
	fg, bg, _ := style.Decompose()
	if fg != color.Red.Invert().Tcell() || bg != color.Red.Tcell() {
		t.Errorf("Expected inverted label on red, got %v on %v", fg, bg)
	}
	if r, _, _, _ := sim.GetContent(frame.X, frame.Y); r != '╔' {
		t.Errorf("Expected frame corner, got %q", r)
	}

	if p.FieldOrigin() != inner.Add(0, paletteRows) {
		t.Errorf("Expected field row below the grayscale row, got %v", p.FieldOrigin())
	}

	p.Close()
	if p.IsOpen() || len(p.Swatches()) != 0 {
		t.Error("Expected closed palette without swatches")
	}
}

func TestPaletteOnSmallTerminal(t *testing.T) {
	s, _ := newTestScreen(t, 10, 5)
	p := NewPalette()
	p.Open(s, color.White, color.Black)
	if f := p.Frame(); f.X != 0 || f.Y != 0 {
		t.Errorf("Expected frame pinned to origin, got (%d, %d)", f.X, f.Y)
	}
}

func TestFieldEditing(t *testing.T) {
	f := NewField(geom.Point{})
	for _, r := range "12 34" {
		f.Insert(r)
	}
	f.DeleteWordBackward()
	if got := f.Value(); got != "12 " {
		t.Errorf("Expected %q, got %q", "12 ", got)
	}

	f.MoveWordLeft()
	if f.Cursor() != 0 {
		t.Errorf("Expected cursor 0, got %d", f.Cursor())
	}
	f.MoveWordRight()
	if f.Cursor() != 2 {
		t.Errorf("Expected cursor 2, got %d", f.Cursor())
	}
	f.MoveRight()
	f.MoveRight()
	if f.Cursor() != 3 {
		t.Errorf("Expected cursor clamped at 3, got %d", f.Cursor())
	}

	f.MoveLeft()
	f.DeleteBackward()
	if got := f.Value(); got != "1 " {
		t.Errorf("Expected %q, got %q", "1 ", got)
	}

	f.Clear()
	if f.DeleteBackward() || f.DeleteWordBackward() {
		t.Error("Expected deletes on empty field to report no change")
	}
}

func TestFieldCap(t *testing.T) {
	f := NewField(geom.Point{})
	for i := 0; i < FieldMaxLen; i++ {
		if !f.Insert('1') {
			t.Fatalf("Insert %d rejected", i)
		}
	}
	if f.Insert('1') {
		t.Error("Expected insert past the cap to be rejected")
	}
	if len(f.Value()) != FieldMaxLen {
		t.Errorf("Expected %d runes, got %d", FieldMaxLen, len(f.Value()))
	}
}

func TestFieldHandleKey(t *testing.T) {
	f := NewField(geom.Point{})
	for _, r := range "ff0000" {
		handled, edited := f.HandleKey(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
		if !handled || !edited {
			t.Fatalf("Expected %q handled and edited", r)
		}
	}
	if c, ok := f.Color(); !ok || c != color.RGB(255, 0, 0) {
		t.Errorf("Expected red from hex, got %v (%v)", c, ok)
	}

	handled, edited := f.HandleKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if !handled || edited {
		t.Errorf("Expected left handled without edit, got %v/%v", handled, edited)
	}

	f.HandleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModCtrl))
	if got := f.Value(); got != "0" {
		t.Errorf("Expected word delete to leave %q, got %q", "0", got)
	}

	if handled, _ := f.HandleKey(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone)); handled {
		t.Error("Expected tab to pass through")
	}
}

func TestFieldDraw(t *testing.T) {
	s, sim := newTestScreen(t, 40, 5)
	f := NewField(geom.Point{X: 2, Y: 3})
	for _, r := range "1,2" {
		f.Insert(r)
	}
	f.Draw(s)

	x := 2 + PaletteWidth/2 - 1
	if r, _, _, _ := sim.GetContent(x, 3); r != '1' {
		t.Errorf("Expected centred text starting at %d, got %q", x, r)
	}
	if r, _, _, _ := sim.GetContent(x+2, 3); r != '2' {
		t.Errorf("Expected last rune at %d, got %q", x+2, r)
	}
	if r, _, _, _ := sim.GetContent(2, 3); r != ' ' {
		t.Errorf("Expected blanked row, got %q", r)
	}
}

func TestSampleAndIndicator(t *testing.T) {
	s, sim := newTestScreen(t, 20, 10)
	cv := canvas.New(s)
	cv.Block(geom.Point{X: 4, Y: 5}, color.Green)

	if got := Sample(cv, geom.Point{X: 4, Y: 2}); got != color.Green {
		t.Errorf("Expected lower half sampled, got %v", got)
	}
	cv.Block(geom.Point{X: 4, Y: 4}, color.Red)
	if got := Sample(cv, geom.Point{X: 4, Y: 2}); got != color.Red {
		t.Errorf("Expected upper half preferred, got %v", got)
	}
	if got := Sample(cv, geom.Point{X: 30, Y: 2}); got != color.Default {
		t.Errorf("Expected default off canvas, got %v", got)
	}

	pk := NewPicker(cv, s)
	pk.Indicate(geom.Point{X: 1, Y: 1})
	r, _, _, _ := sim.GetContent(1, 1)
	if r != ' ' {
		t.Errorf("Expected blank restored cell, got %q", r)
	}

	pk.Indicate(geom.Point{X: 4, Y: 2})
	r, _, _, _ = sim.GetContent(4, 2)
	if string(r) != canvas.GlyphUpper {
		t.Errorf("Expected painted cell restored after indicator, got %q", r)
	}
}

func TestDrawInstructions(t *testing.T) {
	s, sim := newTestScreen(t, 100, 10)
	cv := canvas.New(s)
	DrawInstructions(cv)
	s.Flush()
	for i, line := range Instructions {
		r, _, _, _ := sim.GetContent(0, i)
		if r != rune(line[0]) {
			t.Errorf("Line %d: expected %q, got %q", i, line[0], r)
		}
		last := len(line) - 1
		if got := cv.Cell(geom.Point{X: last, Y: 2 * i}).Character; got != rune(line[last]) {
			t.Errorf("Line %d: expected stored %q, got %q", i, line[last], got)
		}
	}
}

func TestDrawStatus(t *testing.T) {
	s, sim := newTestScreen(t, 30, 10)
	DrawStatus(s, "size %d", 3)
	if r, _, _, _ := sim.GetContent(5, 9); r != '3' {
		t.Errorf("Expected status on the bottom row, got %q", r)
	}
}

func TestRegionBox(t *testing.T) {
	s, sim := newTestScreen(t, 20, 10)
	Region{X: 1, Y: 1, W: 4, H: 3}.Box(s, LineSingle, color.White)
	tests := []struct {
		x, y int
		want rune
	}{
		{1, 1, '┌'}, {4, 1, '┐'}, {1, 3, '└'}, {4, 3, '┘'}, {2, 1, '─'}, {1, 2, '│'},
	}
	for _, tt := range tests {
		if r, _, _, _ := sim.GetContent(tt.x, tt.y); r != tt.want {
			t.Errorf("Expected %q at (%d, %d), got %q", tt.want, tt.x, tt.y, r)
		}
	}
}
