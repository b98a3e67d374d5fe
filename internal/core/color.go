package core

// Color is a palette entry. Platforms map each entry to whatever their
// display supports (ANSI 256 codes in the terminal, RGBA in a window).
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorBlue
	ColorSkyBlue
	ColorYellow
	ColorGray
)

// String returns the palette name of the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	case ColorSkyBlue:
		return "sky-blue"
	case ColorYellow:
		return "yellow"
	case ColorGray:
		return "gray"
	default:
		return "unknown"
	}
}
