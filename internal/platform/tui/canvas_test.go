package tui

import (
	"testing"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// A 80x60 screen over an 800x600 world: one cell per 10x10 world units.
func newTestCanvas() (*core.Screen, *CellCanvas) {
	screen := core.NewScreen(80, 60)
	return screen, NewCellCanvas(screen, 800, 600)
}

func TestCellCanvasSizeIsWorld(t *testing.T) {
	_, c := newTestCanvas()
	if w, h := c.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = %dx%d, expected 800x600", w, h)
	}
}

func TestCellCanvasProjection(t *testing.T) {
	_, c := newTestCanvas()

	tests := []struct {
		in   core.Rect
		want core.Rect
	}{
		{core.NewRect(0, 0, 10, 10), core.NewRect(0, 0, 1, 1)},
		{core.NewRect(660, 400, 40, 60), core.NewRect(66, 40, 4, 6)},
		{core.NewRect(15, 5, 10, 5), core.NewRect(1, 0, 1, 1)},
		// Negative coordinates floor toward -inf
		{core.NewRect(-5, -5, 10, 10), core.NewRect(-1, -1, 1, 1)},
		{core.NewRect(-300, 400, 40, 60), core.NewRect(-30, 40, 4, 6)},
		// Thin shapes still cover a cell
		{core.NewRect(100, 100, 2, 2), core.NewRect(10, 10, 1, 1)},
	}

	for _, tc := range tests {
		if got := c.project(tc.in); got != tc.want {
			t.Errorf("project(%+v) = %+v, expected %+v", tc.in, got, tc.want)
		}
	}
}

func TestCellCanvasFillRectClips(t *testing.T) {
	screen, c := newTestCanvas()
	c.FillRect(core.NewRect(-15, 0, 30, 10), core.ColorBullet)

	if cell := screen.GetCell(0, 0); cell.Color != core.ColorBullet || cell.Rune != blockRune {
		t.Errorf("cell (0,0) = %+v", cell)
	}
	if cell := screen.GetCell(2, 0); cell.Color == core.ColorBullet {
		t.Error("fill spilled past the rectangle")
	}
}

func TestCellCanvasEllipse(t *testing.T) {
	screen, c := newTestCanvas()
	c.FillEllipse(core.NewRect(100, 100, 40, 60), core.ColorEnemy)

	// Center filled, bounding box corner left empty
	if screen.GetCell(12, 13).Color != core.ColorEnemy {
		t.Error("ellipse center should be filled")
	}
	if screen.GetCell(10, 10).Color == core.ColorEnemy {
		t.Error("ellipse corner should be empty")
	}
}

func TestCellCanvasTinyCircle(t *testing.T) {
	screen, c := newTestCanvas()
	c.FillCircle(105, 105, 1, core.ColorBlack)

	if screen.GetCell(10, 10).Color != core.ColorBlack {
		t.Error("a circle smaller than a cell should still mark its cell")
	}
}

func TestCellCanvasLine(t *testing.T) {
	screen, c := newTestCanvas()
	c.Line(0, 50, 799, 50, core.ColorGradientTop)

	for x := 0; x < 80; x++ {
		if screen.GetCell(x, 5).Color != core.ColorGradientTop {
			t.Fatalf("cell (%d,5) not on the line", x)
		}
	}
}

func TestCellCanvasText(t *testing.T) {
	screen, c := newTestCanvas()
	c.Text(10, 10, "Score: 5", core.ColorWhite)
	if got := screen.Row(1)[1:9]; got != "Score: 5" {
		t.Errorf("row 1 = %q", got)
	}

	c.TextCentered(300, "HI", core.ColorWhite)
	if screen.Get(39, 30) != 'H' || screen.Get(40, 30) != 'I' {
		t.Errorf("centered text misplaced: %q", screen.Row(30))
	}
}

func TestRenderScreenNotEmpty(t *testing.T) {
	screen, c := newTestCanvas()
	c.Clear(core.ColorBackground)
	if RenderScreen(screen) == "" {
		t.Error("expected output")
	}
}
