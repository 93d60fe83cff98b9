package color

// xterm 256-colour layout
//
// 0-15:    system colours (Name order)
// 16-231:  6x6x6 cube, index = 16 + 36*r + 6*g + b where r,g,b ∈ [0,5]
// 232-255: grayscale ramp, level = 8 + 10*(index-232)

const (
	SystemColorCount    = 16
	GrayscaleColorCount = 24
	grayscaleStart      = 232
)

// Cube levels for the 6x6x6 section
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// xterm defaults for the system colours
var systemValues = [SystemColorCount][3]uint8{
	{0, 0, 0}, {128, 0, 0}, {0, 128, 0}, {128, 128, 0},
	{0, 0, 128}, {128, 0, 128}, {0, 128, 128}, {192, 192, 192},
	{128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{0, 0, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

// HighIntensityDuplicates are cube/grayscale entries that repeat a bright system colour
var HighIntensityDuplicates = [8]uint8{244, 196, 46, 226, 21, 201, 51, 231}

// Cube256 returns the palette index for a cube coordinate, clamping components to [0,5]
func Cube256(r, g, b uint8) uint8 {
	r, g, b = min(r, 5), min(g, 5), min(b, 5)
	return 16 + 36*r + 6*g + b
}

// CubeCoords returns the cube coordinate of index, or (0,0,0) outside [16,231]
func CubeCoords(index uint8) (r, g, b uint8) {
	if index < 16 || index >= grayscaleStart {
		return 0, 0, 0
	}
	n := index - 16
	return n / 36, (n / 6) % 6, n % 6
}

// Palette256 returns the RGB value xterm uses for a palette index
func Palette256(index uint8) (r, g, b uint8) {
	switch {
	case index < SystemColorCount:
		v := systemValues[index]
		return v[0], v[1], v[2]
	case index < grayscaleStart:
		cr, cg, cb := CubeCoords(index)
		return cubeValues[cr], cubeValues[cg], cubeValues[cb]
	default:
		level := 8 + 10*(index-grayscaleStart)
		return level, level, level
	}
}

// Nearest256 finds the closest cube or grayscale index for an RGB value
func Nearest256(r, g, b uint8) uint8 {
	cr, cg, cb := nearestCube(r), nearestCube(g), nearestCube(b)
	cube := Cube256(cr, cg, cb)

	// Near-neutral colours may sit closer to the grayscale ramp
	gray := (int(r) + int(g) + int(b)) / 3
	if max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray)) >= 10 {
		return cube
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}
	grayIdx := min(grayscaleStart+(gray-8)/10, 255)
	level := 8 + (grayIdx-grayscaleStart)*10
	grayDist := abs(int(r)-level) + abs(int(g)-level) + abs(int(b)-level)
	cubeDist := abs(int(r)-int(cubeValues[cr])) +
		abs(int(g)-int(cubeValues[cg])) +
		abs(int(b)-int(cubeValues[cb]))
	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cube
}

// To256 maps RGB colours onto the palette and leaves named and indexed colours alone
func (c Color) To256() Color {
	if c.kind != KindRGB {
		return c
	}
	return Indexed(Nearest256(c.r, c.g, c.b))
}

func nearestCube(v uint8) uint8 {
	best := uint8(0)
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < len(cubeValues); j++ {
		if d := abs(int(v) - int(cubeValues[j])); d < bestDist {
			bestDist = d
			best = uint8(j)
		}
	}
	return best
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
