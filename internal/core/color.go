package core

// Color is a foreground colour for a screen cell. The platform maps it to
// an ANSI 256-colour code.
type Color uint8

// Predefined colours.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// bodyPalette holds the colours handed out to individual bodies.
var bodyPalette = []Color{
	ColorBrightRed,
	ColorBrightGreen,
	ColorBrightYellow,
	ColorBrightBlue,
	ColorBrightMagenta,
	ColorBrightCyan,
	ColorOrange,
	ColorBrightWhite,
}

// PaletteColor returns a stable colour for the i-th item of a population.
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return bodyPalette[i%len(bodyPalette)]
}
