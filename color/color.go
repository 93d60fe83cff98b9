// Package color models the colours a half-block can hold: the 16 system colours,
// the 8-bit xterm palette, and 24-bit RGB.
package color

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Kind discriminates the colour variants
type Kind uint8

const (
	KindNamed   Kind = iota // one of the 16 system colours
	KindIndexed             // 8-bit palette index
	KindRGB                 // 24-bit true colour
)

// Name is a system colour in ANSI order, so Name doubles as the palette index 0-15
type Name uint8

const (
	NameBlack Name = iota
	NameDarkRed
	NameDarkGreen
	NameDarkYellow
	NameDarkBlue
	NameDarkMagenta
	NameDarkCyan
	NameGray
	NameDarkGray
	NameRed
	NameGreen
	NameYellow
	NameBlue
	NameMagenta
	NameCyan
	NameWhite

	nameCount
)

var nameStrings = [nameCount]string{
	"black", "dark-red", "dark-green", "dark-yellow",
	"dark-blue", "dark-magenta", "dark-cyan", "gray",
	"dark-gray", "red", "green", "yellow",
	"blue", "magenta", "cyan", "white",
}

func (n Name) String() string {
	if n >= nameCount {
		return fmt.Sprintf("name(%d)", uint8(n))
	}
	return nameStrings[n]
}

// Color is a comparable value; two colours are equal when variant and payload match
type Color struct {
	kind Kind
	n    uint8 // Name for KindNamed, palette index for KindIndexed
	r    uint8
	g    uint8
	b    uint8
}

// Named returns the system colour n
func Named(n Name) Color {
	if n >= nameCount {
		panic(fmt.Sprintf("color: invalid name %d", uint8(n)))
	}
	return Color{kind: KindNamed, n: uint8(n)}
}

// Indexed returns the 8-bit palette colour i
func Indexed(i uint8) Color {
	return Color{kind: KindIndexed, n: i}
}

// RGB returns a 24-bit colour
func RGB(r, g, b uint8) Color {
	return Color{kind: KindRGB, r: r, g: g, b: b}
}

// Bright colours
var (
	Black   = Named(NameBlack)
	Red     = Named(NameRed)
	Green   = Named(NameGreen)
	Yellow  = Named(NameYellow)
	Blue    = Named(NameBlue)
	Magenta = Named(NameMagenta)
	Cyan    = Named(NameCyan)
	White   = Named(NameWhite)
)

// Dark and gray colours
var (
	DarkGray    = Named(NameDarkGray)
	DarkRed     = Named(NameDarkRed)
	DarkGreen   = Named(NameDarkGreen)
	DarkYellow  = Named(NameDarkYellow)
	DarkBlue    = Named(NameDarkBlue)
	DarkMagenta = Named(NameDarkMagenta)
	DarkCyan    = Named(NameDarkCyan)
	Gray        = Named(NameGray)
)

// Default is reported for an empty half-block
var Default = Black

// BrightColors is the first palette row
var BrightColors = [8]Color{Black, Red, Green, Yellow, Blue, Magenta, Cyan, White}

// DarkColors is the second palette row
var DarkColors = [8]Color{DarkGray, DarkRed, DarkGreen, DarkYellow, DarkBlue, DarkMagenta, DarkCyan, Gray}

func (c Color) Kind() Kind { return c.kind }

// Name returns the system colour, ok is false for other variants
func (c Color) Name() (Name, bool) {
	return Name(c.n), c.kind == KindNamed
}

// Index returns the palette index, ok is false for RGB colours
// Named colours report their ANSI index
func (c Color) Index() (uint8, bool) {
	return c.n, c.kind != KindRGB
}

// Components returns the 24-bit value of any variant, using the xterm palette for named and indexed colours
func (c Color) Components() (r, g, b uint8) {
	if c.kind == KindRGB {
		return c.r, c.g, c.b
	}
	return Palette256(c.n)
}

// Invert returns a contrasting colour
// Named: index i maps to 15-i (black/white, red/dark-cyan, ...). RGB: 255-x per channel.
// Indexed: mirrored inside its palette section (system, cube, grayscale)
func (c Color) Invert() Color {
	switch c.kind {
	case KindNamed:
		return Color{kind: KindNamed, n: uint8(nameCount-1) - c.n}
	case KindIndexed:
		return Color{kind: KindIndexed, n: invertIndex(c.n)}
	case KindRGB:
		return RGB(255-c.r, 255-c.g, 255-c.b)
	default:
		panic(fmt.Sprintf("color: unknown kind %d", c.kind))
	}
}

func invertIndex(i uint8) uint8 {
	switch {
	case i < 16:
		return 15 - i
	case i < grayscaleStart:
		r, g, b := CubeCoords(i)
		return Cube256(5-r, 5-g, 5-b)
	default:
		return grayscaleStart + (255 - i)
	}
}

// String renders a form ParseName or Parse accept
func (c Color) String() string {
	switch c.kind {
	case KindNamed:
		return Name(c.n).String()
	case KindIndexed:
		return fmt.Sprintf("index(%d)", c.n)
	default:
		return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
	}
}

// Tcell converts to the screen's colour type
func (c Color) Tcell() tcell.Color {
	if c.kind == KindRGB {
		return tcell.NewRGBColor(int32(c.r), int32(c.g), int32(c.b))
	}
	return tcell.PaletteColor(int(c.n))
}

// ParseName resolves a system colour name or an "index(n)" form, ignoring case, spaces, '-' and '_'
func ParseName(s string) (Color, bool) {
	key := normalizeName(s)
	for i, name := range nameStrings {
		if normalizeName(name) == key {
			return Named(Name(i)), true
		}
	}
	var i uint8
	if _, err := fmt.Sscanf(key, "index(%d)", &i); err == nil {
		return Indexed(i), true
	}
	return Color{}, false
}

// Lookup resolves config values: a name, an index form, or anything Parse accepts
func Lookup(s string) (Color, bool) {
	if c, ok := ParseName(s); ok {
		return c, true
	}
	return Parse(s)
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
}
