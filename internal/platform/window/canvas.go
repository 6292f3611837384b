package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// debugGlyphWidth is the advance of ebitenutil's debug font in pixels.
const debugGlyphWidth = 6

// Canvas draws onto an ebiten image whose logical size equals the
// world, so world units are pixels.
type Canvas struct {
	dst  *ebiten.Image
	w, h int
}

// NewCanvas wraps dst, a w x h logical screen.
func NewCanvas(dst *ebiten.Image, w, h int) *Canvas {
	return &Canvas{dst: dst, w: w, h: h}
}

func (c *Canvas) Size() (int, int) {
	return c.w, c.h
}

func (c *Canvas) Clear(col core.Color) {
	c.dst.Fill(rgba(col))
}

func (c *Canvas) FillRect(r core.Rect, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col), false)
}

func (c *Canvas) StrokeRect(r core.Rect, col core.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 3, rgba(col), false)
}

// FillEllipse fills the ellipse inscribed in r one pixel row at a time.
func (c *Canvas) FillEllipse(r core.Rect, col core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	clr := rgba(col)
	rx, ry := float64(r.W)/2, float64(r.H)/2
	cx := float64(r.X) + rx
	for row := 0; row < r.H; row++ {
		dy := (float64(row) + 0.5 - ry) / ry
		half := rx * math.Sqrt(math.Max(0, 1-dy*dy))
		vector.DrawFilledRect(c.dst, float32(cx-half), float32(r.Y+row), float32(2*half), 1, clr, true)
	}
}

func (c *Canvas) FillCircle(cx, cy, radius int, col core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), rgba(col), true)
}

func (c *Canvas) Line(x0, y0, x1, y1 int, col core.Color) {
	vector.StrokeLine(c.dst, float32(x0), float32(y0), float32(x1), float32(y1), 2, rgba(col), false)
}

// Text uses the debug font, which ignores color.
func (c *Canvas) Text(x, y int, s string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, s, x, y)
}

func (c *Canvas) TextCentered(y int, s string, col core.Color) {
	x := (c.w - len([]rune(s))*debugGlyphWidth) / 2
	c.Text(x, y, s, col)
}

var _ core.Canvas = (*Canvas)(nil)
