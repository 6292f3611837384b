package core

// Canvas is the rendering surface games draw on.
// All coordinates are world units; implementations scale them to
// whatever they actually draw into.
type Canvas interface {
	// Size returns the world dimensions the canvas maps onto its surface.
	Size() (w, h int)

	Clear(c Color)
	FillRect(r Rect, c Color)
	StrokeRect(r Rect, c Color)
	FillEllipse(r Rect, c Color)
	FillCircle(cx, cy, radius int, c Color)
	Line(x0, y0, x1, y1 int, c Color)

	// Text draws a string with its top-left corner at (x, y).
	Text(x, y int, s string, c Color)

	// TextCentered draws a string centered horizontally at world row y.
	TextCentered(y int, s string, c Color)
}
