package window

import (
	"image/color"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// palette maps core.Color to RGBA.
var palette = [core.ColorCount]color.RGBA{
	core.ColorDefault:        {R: 30, G: 30, B: 30, A: 255},
	core.ColorBlack:          {R: 0, G: 0, B: 0, A: 255},
	core.ColorWhite:          {R: 255, G: 255, B: 255, A: 255},
	core.ColorBackground:     {R: 30, G: 30, B: 30, A: 255},
	core.ColorSkin:           {R: 255, G: 220, B: 180, A: 255},
	core.ColorShirt:          {R: 50, G: 100, B: 200, A: 255},
	core.ColorBoots:          {R: 30, G: 30, B: 30, A: 255},
	core.ColorGun:            {R: 20, G: 20, B: 20, A: 255},
	core.ColorBullet:         {R: 255, G: 255, B: 0, A: 255},
	core.ColorEnemy:          {R: 200, G: 50, B: 50, A: 255},
	core.ColorPanel:          {R: 50, G: 50, B: 70, A: 255},
	core.ColorPanelEdge:      {R: 100, G: 100, B: 130, A: 255},
	core.ColorPromptHigh:     {R: 255, G: 255, B: 255, A: 255},
	core.ColorPromptMid:      {R: 190, G: 190, B: 190, A: 255},
	core.ColorPromptLow:      {R: 120, G: 120, B: 120, A: 255},
	core.ColorGradientTop:    {R: 30, G: 30, B: 50, A: 255},
	core.ColorGradientMid:    {R: 43, G: 43, B: 71, A: 255},
	core.ColorGradientLow:    {R: 56, G: 56, B: 92, A: 255},
	core.ColorGradientBottom: {R: 69, G: 69, B: 113, A: 255},
}

// rgba returns the palette entry for c, falling back to the default.
func rgba(c core.Color) color.RGBA {
	if int(c) >= len(palette) {
		return palette[core.ColorDefault]
	}
	return palette[c]
}
