package shooter

import "github.com/vovakirdan/tui-shooter/internal/core"

// Fade bounds for the welcome prompt.
const (
	alphaMax  = 255
	alphaMin  = 50
	alphaStep = 5
)

// Title and prompt text.
const (
	TitleText  = "2D SHOOTER"
	PromptText = "CLICK TO PLAY"
)

// welcomePanel is the framed box behind the title, in world units of an
// 800x600 play area.
var welcomePanel = core.NewRect(150, 100, 500, 400)

// Welcome animates the title screen: the prompt pulses between
// alphaMin and alphaMax.
type Welcome struct {
	alpha   int
	fadeOut bool
}

// NewWelcome starts the prompt fully opaque and fading out.
func NewWelcome() Welcome {
	return Welcome{alpha: alphaMax, fadeOut: true}
}

// Alpha returns the current prompt opacity in [alphaMin, alphaMax].
func (w Welcome) Alpha() int {
	return w.alpha
}

// Advance moves the fade one frame.
func (w *Welcome) Advance() {
	if w.fadeOut {
		w.alpha -= alphaStep
		if w.alpha <= alphaMin {
			w.fadeOut = false
		}
		return
	}
	w.alpha += alphaStep
	if w.alpha >= alphaMax {
		w.fadeOut = true
	}
}

// Render draws the gradient background, panel, title, and prompt.
func (w Welcome) Render(dst core.Canvas) {
	width, height := dst.Size()

	// Gradient background, one line per world row
	for y := 0; y < height; y++ {
		dst.Line(0, y, width-1, y, core.GradientColor(y, height))
	}

	panel := scalePanel(width, height)
	dst.FillRect(panel, core.ColorPanel)
	dst.StrokeRect(panel, core.ColorPanelEdge)

	titleY := panel.Y + panel.H*25/400
	dst.TextCentered(titleY+3, TitleText, core.ColorBlack)
	dst.TextCentered(titleY, TitleText, core.ColorWhite)

	promptY := panel.Y + panel.H*250/400
	dst.TextCentered(promptY, PromptText, core.PromptColor(w.alpha))
}

// scalePanel maps the 800x600 panel layout onto a play area of any size.
func scalePanel(width, height int) core.Rect {
	return core.NewRect(
		welcomePanel.X*width/800,
		welcomePanel.Y*height/600,
		welcomePanel.W*width/800,
		welcomePanel.H*height/600,
	)
}
