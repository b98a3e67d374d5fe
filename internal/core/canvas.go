package core

// Canvas is the drawing surface games render into.
// Coordinates are in the game's logical units: terminal cells for Screen,
// pixels for the window platform. Drawing outside the canvas is clipped.
type Canvas interface {
	// Size returns the canvas dimensions in logical units.
	Size() (w, h int)

	// Clear fills the whole canvas with a background color.
	Clear(bg Color)

	// FillRect draws a filled rectangle.
	FillRect(r Rect, c Color)

	// DrawPoint plots a single point.
	DrawPoint(x, y int, c Color)

	// DrawText draws a string with its top-left corner at (x, y).
	DrawText(x, y int, text string, c Color)

	// DrawBackground draws the platform's background image, or clears to
	// fallback when the platform has none.
	DrawBackground(fallback Color)
}
