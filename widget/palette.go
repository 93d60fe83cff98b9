package widget

import (
	"slices"

	"github.com/lixenwraith/blockpaint/color"
	"github.com/lixenwraith/blockpaint/geom"
	"github.com/lixenwraith/blockpaint/render"
)

// Palette geometry in terminal cells, excluding the frame
const (
	PaletteWidth = 26
	// two system rows, eight rows of 8-bit colours, one grayscale row
	paletteRows   = 2 + 8 + 1
	PaletteHeight = paletteRows + 1 // plus the input field row

	slotWidth = 5
)

// Slot is one of the two active colours, selected by mouse button
type Slot uint8

const (
	SlotLeft Slot = iota
	SlotRight
)

func (s Slot) String() string {
	if s == SlotRight {
		return "R"
	}
	return "L"
}

// Swatch is a clickable run of cells showing one colour
type Swatch struct {
	Point geom.Point
	Width int
	Color color.Color
}

// Contains reports whether terminal cell p is on the swatch
func (w Swatch) Contains(p geom.Point) bool {
	return p.Y == w.Point.Y && p.X >= w.Point.X && p.X < w.Point.X+w.Width
}

// Palette is the colour selection window toggled over the canvas
type Palette struct {
	frame    Region
	swatches []Swatch
	open     bool
}

// NewPalette returns a closed palette
func NewPalette() *Palette {
	return &Palette{}
}

// IsOpen reports whether the palette is currently shown
func (p *Palette) IsOpen() bool {
	return p.open
}

// Frame returns the palette window including its border
func (p *Palette) Frame() Region {
	return p.frame
}

// Swatches returns the clickable colours of the open palette
func (p *Palette) Swatches() []Swatch {
	return p.swatches
}

// ExtendedColors lists the 8-bit colours shown below the system rows:
// the 6x6x6 cube without black and without the entries duplicating bright system colours
func ExtendedColors() []color.Color {
	out := make([]color.Color, 0, 8*PaletteWidth)
	for i := color.SystemColorCount + 1; i < 256-color.GrayscaleColorCount; i++ {
		if slices.Contains(color.HighIntensityDuplicates[:], uint8(i)) {
			continue
		}
		out = append(out, color.Indexed(uint8(i)))
	}
	return out
}

// GrayscaleColors lists the 24-step grayscale ramp
func GrayscaleColors() []color.Color {
	out := make([]color.Color, 0, color.GrayscaleColorCount)
	for i := 256 - color.GrayscaleColorCount; i < 256; i++ {
		out = append(out, color.Indexed(uint8(i)))
	}
	return out
}

// Open lays the palette out centred on the terminal and draws it
func (p *Palette) Open(s *render.Screen, left, right color.Color) {
	p.open = true
	p.layout(s.Size())
	p.Draw(s, left, right)
}

// Close hides the palette; the caller redraws the canvas underneath
func (p *Palette) Close() {
	p.open = false
	p.swatches = p.swatches[:0]
}

// Relayout recentres an open palette after a resize
func (p *Palette) Relayout(s *render.Screen, left, right color.Color) {
	if !p.open {
		return
	}
	p.layout(s.Size())
	p.Draw(s, left, right)
}

func (p *Palette) layout(term geom.Size) {
	p.frame = Centered(term, PaletteWidth+2, PaletteHeight+2)
	origin := p.frame.Inner().Origin()
	p.swatches = p.swatches[:0]

	// System colours: two rows of two-cell swatches, centred between the slot previews
	sysX := origin.X + PaletteWidth/2 - len(color.BrightColors)
	for row, colors := range [2][8]color.Color{color.BrightColors, color.DarkColors} {
		for i, c := range colors {
			p.swatches = append(p.swatches, Swatch{
				Point: geom.Point{X: sysX + 2*i, Y: origin.Y + row},
				Width: 2,
				Color: c,
			})
		}
	}

	for i, c := range ExtendedColors() {
		p.swatches = append(p.swatches, Swatch{
			Point: geom.Point{X: origin.X + i%PaletteWidth, Y: origin.Y + 2 + i/PaletteWidth},
			Width: 1,
			Color: c,
		})
	}

	grayY := origin.Y + paletteRows - 1
	for i, c := range GrayscaleColors() {
		p.swatches = append(p.swatches, Swatch{
			Point: geom.Point{X: origin.X + 1 + i, Y: grayY},
			Width: 1,
			Color: c,
		})
	}
}

// Draw paints the frame, both slot previews and every swatch
func (p *Palette) Draw(s *render.Screen, left, right color.Color) {
	p.frame.Inner().Clear(s)
	p.DrawFrame(s, left)
	p.DrawSlot(s, SlotLeft, left)
	p.DrawSlot(s, SlotRight, right)
	for _, w := range p.swatches {
		s.Fill(w.Point, geom.Size{Width: w.Width, Height: 1}, s.Style(w.Color, w.Color))
	}
}

// DrawFrame redraws the border, tinted with c
func (p *Palette) DrawFrame(s *render.Screen, c color.Color) {
	p.frame.Box(s, LineDouble, c)
}

// DrawSlot previews a slot colour in the top corner on its side
func (p *Palette) DrawSlot(s *render.Screen, slot Slot, c color.Color) {
	origin := p.frame.Inner().Origin()
	if slot == SlotRight {
		origin.X += PaletteWidth - slotWidth
	}
	style := s.Style(c.Invert(), c)
	s.Print(origin, "  "+slot.String()+"  ", style)
	s.Fill(origin.Add(0, 1), geom.Size{Width: slotWidth, Height: 1}, style)
}

// FieldOrigin returns the left end of the input field row
func (p *Palette) FieldOrigin() geom.Point {
	return p.frame.Inner().Origin().Add(0, paletteRows)
}

// ColorAt returns the colour of the swatch under terminal cell pt
func (p *Palette) ColorAt(pt geom.Point) (color.Color, bool) {
	if !p.open {
		return color.Color{}, false
	}
	for _, w := range p.swatches {
		if w.Contains(pt) {
			return w.Color, true
		}
	}
	return color.Color{}, false
}

// Contains reports whether terminal cell pt is on the palette window
func (p *Palette) Contains(pt geom.Point) bool {
	return p.open && p.frame.Contains(pt)
}
