package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-shooter/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:        lipgloss.NewStyle(),
	core.ColorBlack:          lipgloss.NewStyle().Foreground(lipgloss.Color("16")),
	core.ColorWhite:          lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorBackground:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
	core.ColorSkin:           lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorShirt:          lipgloss.NewStyle().Foreground(lipgloss.Color("26")),
	core.ColorBoots:          lipgloss.NewStyle().Foreground(lipgloss.Color("234")),
	core.ColorGun:            lipgloss.NewStyle().Foreground(lipgloss.Color("233")),
	core.ColorBullet:         lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorEnemy:          lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
	core.ColorPanel:          lipgloss.NewStyle().Foreground(lipgloss.Color("237")),
	core.ColorPanelEdge:      lipgloss.NewStyle().Foreground(lipgloss.Color("103")),
	core.ColorPromptHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorPromptMid:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorPromptLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	core.ColorGradientTop:    lipgloss.NewStyle().Foreground(lipgloss.Color("17")),
	core.ColorGradientMid:    lipgloss.NewStyle().Foreground(lipgloss.Color("18")),
	core.ColorGradientLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("19")),
	core.ColorGradientBottom: lipgloss.NewStyle().Foreground(lipgloss.Color("20")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
