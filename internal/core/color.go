package core

// Color names a palette entry for a drawn primitive.
// Front-ends map each entry to their own color model
// (ANSI 256 codes in the terminal, RGBA in the window).
type Color uint8

// Palette used by the shooter.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorBackground // Play field background (30, 30, 30)
	ColorSkin       // Head (255, 220, 180)
	ColorShirt      // Body and arms (50, 100, 200)
	ColorBoots      // Legs (30, 30, 30)
	ColorGun        // Gun (20, 20, 20)
	ColorBullet     // Yellow (255, 255, 0)
	ColorEnemy      // Red (200, 50, 50)
	ColorPanel      // Welcome panel fill (50, 50, 70)
	ColorPanelEdge  // Welcome panel border (100, 100, 130)
	ColorPromptHigh // "CLICK TO PLAY" near full alpha
	ColorPromptMid
	ColorPromptLow
	ColorGradientTop // Welcome gradient, darkest band
	ColorGradientMid
	ColorGradientLow
	ColorGradientBottom // Welcome gradient, lightest band
)

// ColorCount is the number of palette entries.
const ColorCount = int(ColorGradientBottom) + 1

// PromptColor picks the prompt shade for an alpha value in [0, 255].
func PromptColor(alpha int) Color {
	switch {
	case alpha >= 190:
		return ColorPromptHigh
	case alpha >= 120:
		return ColorPromptMid
	default:
		return ColorPromptLow
	}
}

// GradientColor picks the welcome background band for row y of a play area
// with the given height.
func GradientColor(y, height int) Color {
	if height <= 0 {
		return ColorGradientTop
	}
	band := Clamp(y*4/height, 0, 3)
	return ColorGradientTop + Color(band)
}
