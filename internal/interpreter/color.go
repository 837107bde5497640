package interpreter

import "fmt"

// Hue is one of the six hues of the colour cycle.
type Hue int

const (
	Red Hue = iota
	Yellow
	Green
	Cyan
	Blue
	Magenta
)

const hueCount = 6

var hueNames = [hueCount]string{"RED", "YELLOW", "GREEN", "CYAN", "BLUE", "MAGENTA"}

func (h Hue) String() string {
	if h < 0 || h >= hueCount {
		return fmt.Sprintf("Hue(%d)", int(h))
	}
	return hueNames[h]
}

// Lightness is one of the three lightness levels of the lightness cycle.
type Lightness int

const (
	Light Lightness = iota
	Normal
	Dark
)

const lightnessCount = 3

var lightnessNames = [lightnessCount]string{"LIGHT", "NORMAL", "DARK"}

func (l Lightness) String() string {
	if l < 0 || l >= lightnessCount {
		return fmt.Sprintf("Lightness(%d)", int(l))
	}
	return lightnessNames[l]
}

// Color is a codel colour: one of the 18 chromatic colours, White or Black.
// The zero value is Black.
type Color uint8

const (
	Black Color = iota
	White
	firstChromatic
)

// Chromatic returns the colour with the given hue and lightness.
func Chromatic(h Hue, l Lightness) Color {
	return firstChromatic + Color(int(l)*hueCount+int(h))
}

// IsChromatic reports whether c is neither white nor black.
func (c Color) IsChromatic() bool {
	return c >= firstChromatic && c < firstChromatic+hueCount*lightnessCount
}

// Hue of a chromatic colour. Meaningless for white and black.
func (c Color) Hue() Hue {
	return Hue(int(c-firstChromatic) % hueCount)
}

// Lightness of a chromatic colour. Meaningless for white and black.
func (c Color) Lightness() Lightness {
	return Lightness(int(c-firstChromatic) / hueCount)
}

func (c Color) String() string {
	switch {
	case c == Black:
		return "BLACK"
	case c == White:
		return "WHITE"
	case c.IsChromatic():
		return c.Lightness().String() + " " + c.Hue().String()
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

var (
	hueCodes       = [hueCount]byte{'R', 'Y', 'G', 'C', 'B', 'M'}
	lightnessCodes = [lightnessCount]byte{'l', 'n', 'd'}
)

// Code is the short text-grid notation of c: "W", "K", or a lightness
// letter followed by a hue letter ("lR", "nB", "dM").
func (c Color) Code() string {
	switch {
	case c == Black:
		return "K"
	case c == White:
		return "W"
	case c.IsChromatic():
		return string([]byte{lightnessCodes[c.Lightness()], hueCodes[c.Hue()]})
	}
	return "?"
}

// ParseColorCode is the inverse of Color.Code.
func ParseColorCode(s string) (Color, error) {
	switch s {
	case "K":
		return Black, nil
	case "W":
		return White, nil
	}
	if len(s) != 2 {
		return Black, fmt.Errorf("invalid color code %q", s)
	}
	l, h := -1, -1
	for i, b := range lightnessCodes {
		if s[0] == b {
			l = i
		}
	}
	for i, b := range hueCodes {
		if s[1] == b {
			h = i
		}
	}
	if l < 0 || h < 0 {
		return Black, fmt.Errorf("invalid color code %q", s)
	}
	return Chromatic(Hue(h), Lightness(l)), nil
}

// rgbColors maps the canonical 0xRRGGBB values onto codel colours.
var rgbColors = map[uint32]Color{
	0xffc0c0: Chromatic(Red, Light),
	0xffffc0: Chromatic(Yellow, Light),
	0xc0ffc0: Chromatic(Green, Light),
	0xc0ffff: Chromatic(Cyan, Light),
	0xc0c0ff: Chromatic(Blue, Light),
	0xffc0ff: Chromatic(Magenta, Light),
	0xff0000: Chromatic(Red, Normal),
	0xffff00: Chromatic(Yellow, Normal),
	0x00ff00: Chromatic(Green, Normal),
	0x00ffff: Chromatic(Cyan, Normal),
	0x0000ff: Chromatic(Blue, Normal),
	0xff00ff: Chromatic(Magenta, Normal),
	0xc00000: Chromatic(Red, Dark),
	0xc0c000: Chromatic(Yellow, Dark),
	0x00c000: Chromatic(Green, Dark),
	0x00c0c0: Chromatic(Cyan, Dark),
	0x0000c0: Chromatic(Blue, Dark),
	0xc000c0: Chromatic(Magenta, Dark),
	0xffffff: White,
	0x000000: Black,
}

// ColorFromRGB looks up the codel colour with the given 8-bit components.
// ok is false when the value is not one of the 20 canonical colours.
func ColorFromRGB(r, g, b uint8) (c Color, ok bool) {
	c, ok = rgbColors[uint32(r)<<16|uint32(g)<<8|uint32(b)]
	return c, ok
}
