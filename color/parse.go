package color

import "strconv"

// Parse reads an RGB colour out of free-form text typed one character at a time.
//
// Accepted notations:
//
//	decimal components  "255, 0, 0", "(255,0,0)", "rgb(255,0,0)"
//	hexadecimal         "FF0000", "#FF0000"
//
// Any non-digit separates components, so a leading '-' is ignored and
// components above 255 saturate. Missing trailing components are zero.
// ok is false when no colour can be read, which is the normal state of a half-typed field.
func Parse(s string) (c Color, ok bool) {
	var comps [3]uint8
	var set [3]bool
	current := 0

	hexRun := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			d := int(ch - '0')
			if set[current] {
				comps[current] = uint8(min(int(comps[current])*10+d, 255))
			} else {
				comps[current] = uint8(d)
				set[current] = true
			}
			hexRun++
		case isHexLetter(ch):
			if c, ok := parseHex(s, i); ok {
				return c, true
			}
			hexRun++
		default:
			switch {
			case !set[0]:
				current = 0
			case !set[1]:
				current = 1
			case !set[2]:
				current = 2
			default:
				return RGB(comps[0], comps[1], comps[2]), true
			}
			hexRun = 0
		}

		if consumed := i + 1; hexRun == 6 && consumed >= hexRun {
			if c, ok := parseHex(s, consumed-hexRun); ok {
				return c, true
			}
		}
	}

	if !set[0] {
		return Color{}, false
	}
	return RGB(comps[0], comps[1], comps[2]), true
}

// parseHex reads six hex digits starting at index
func parseHex(s string, index int) (Color, bool) {
	if index+6 > len(s) {
		return Color{}, false
	}
	var comps [3]uint8
	for k := range comps {
		part := s[index+2*k : index+2*k+2]
		if !isHexDigit(part[0]) || !isHexDigit(part[1]) {
			return Color{}, false
		}
		v, err := strconv.ParseUint(part, 16, 8)
		if err != nil {
			return Color{}, false
		}
		comps[k] = uint8(v)
	}
	return RGB(comps[0], comps[1], comps[2]), true
}

func isHexLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || isHexLetter(ch)
}
