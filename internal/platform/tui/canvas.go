package tui

import (
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// blockRune fills solid shapes in the terminal.
const blockRune = '█'

// CellCanvas draws world-space primitives into a cell Screen.
// World coordinates are scaled onto the screen with floor division, so
// shapes partially off the left or top edge stay aligned with the grid.
type CellCanvas struct {
	screen         *core.Screen
	worldW, worldH int
}

// NewCellCanvas maps a worldW x worldH play area onto screen.
func NewCellCanvas(screen *core.Screen, worldW, worldH int) *CellCanvas {
	return &CellCanvas{screen: screen, worldW: worldW, worldH: worldH}
}

// Size returns the world dimensions.
func (c *CellCanvas) Size() (int, int) {
	return c.worldW, c.worldH
}

// cellX projects a world x coordinate onto a column.
func (c *CellCanvas) cellX(x int) int {
	return core.FloorDiv(x*c.screen.Width(), c.worldW)
}

// cellY projects a world y coordinate onto a row.
func (c *CellCanvas) cellY(y int) int {
	return core.FloorDiv(y*c.screen.Height(), c.worldH)
}

// project maps a world rectangle onto the cells it covers.
// Non-empty rectangles always cover at least one cell.
func (c *CellCanvas) project(r core.Rect) core.Rect {
	x0, y0 := c.cellX(r.X), c.cellY(r.Y)
	x1, y1 := c.cellX(r.Right()), c.cellY(r.Bottom())
	if r.W > 0 && x1 == x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 == y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// worldCenter returns the world coordinates of a cell's center, doubled
// to stay in integers.
func (c *CellCanvas) worldCenter(cx, cy int) (int, int) {
	wx := (2*cx + 1) * c.worldW / c.screen.Width()
	wy := (2*cy + 1) * c.worldH / c.screen.Height()
	return wx, wy
}

// Clear fills the whole screen.
func (c *CellCanvas) Clear(col core.Color) {
	c.screen.Fill(blockRune, col)
}

// FillRect fills every cell the rectangle touches.
func (c *CellCanvas) FillRect(r core.Rect, col core.Color) {
	c.screen.DrawRect(c.project(r), blockRune, col)
}

// StrokeRect outlines the rectangle with box-drawing characters.
func (c *CellCanvas) StrokeRect(r core.Rect, col core.Color) {
	c.screen.DrawBox(c.project(r), col)
}

// FillEllipse fills the cells whose centers fall inside the ellipse
// inscribed in r. Ellipses smaller than a cell fill the cell they sit in.
func (c *CellCanvas) FillEllipse(r core.Rect, col core.Color) {
	if r.W <= 0 || r.H <= 0 || c.screen.Width() == 0 || c.screen.Height() == 0 {
		return
	}

	cells := c.project(r)
	// Doubled world coordinates of the ellipse center and radii
	ex, ey := 2*r.X+r.W, 2*r.Y+r.H
	rx, ry := int64(r.W), int64(r.H)

	filled := false
	for cy := cells.Y; cy < cells.Bottom(); cy++ {
		for cx := cells.X; cx < cells.Right(); cx++ {
			wx, wy := c.worldCenter(cx, cy)
			dx, dy := int64(wx-ex), int64(wy-ey)
			if dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry {
				c.screen.Set(cx, cy, blockRune, col)
				filled = true
			}
		}
	}

	if !filled {
		mx, my := r.Center()
		c.screen.Set(c.cellX(mx), c.cellY(my), blockRune, col)
	}
}

// FillCircle fills a circle centered at (cx, cy).
func (c *CellCanvas) FillCircle(cx, cy, radius int, col core.Color) {
	c.FillEllipse(core.NewRect(cx-radius, cy-radius, 2*radius, 2*radius), col)
}

// Line draws a straight line between two world points (Bresenham on cells).
func (c *CellCanvas) Line(x0, y0, x1, y1 int, col core.Color) {
	cx0, cy0 := c.cellX(x0), c.cellY(y0)
	cx1, cy1 := c.cellX(x1), c.cellY(y1)

	dx := abs(cx1 - cx0)
	dy := -abs(cy1 - cy0)
	sx, sy := 1, 1
	if cx0 > cx1 {
		sx = -1
	}
	if cy0 > cy1 {
		sy = -1
	}

	err := dx + dy
	for {
		c.screen.Set(cx0, cy0, blockRune, col)
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			cx0 += sx
		}
		if e2 <= dx {
			err += dx
			cy0 += sy
		}
	}
}

// Text writes s unscaled, starting at the cell containing (x, y).
func (c *CellCanvas) Text(x, y int, s string, col core.Color) {
	c.screen.DrawText(c.cellX(x), c.cellY(y), s, col)
}

// TextCentered writes s centered on the row containing world y.
func (c *CellCanvas) TextCentered(y int, s string, col core.Color) {
	n := len([]rune(s))
	c.screen.DrawText((c.screen.Width()-n)/2, c.cellY(y), s, col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

var _ core.Canvas = (*CellCanvas)(nil)
