package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wave-rider/internal/core"
)

// colorStyles maps core.Color to lipgloss styles (ANSI 256 palette).
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorSwell:     lipgloss.NewStyle().Foreground(lipgloss.Color("24")),
	core.ColorSurface:   lipgloss.NewStyle().Foreground(lipgloss.Color("45")).Bold(true),
	core.ColorWater:     lipgloss.NewStyle().Foreground(lipgloss.Color("18")),
	core.ColorFoam:      lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	core.ColorRider:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorShell:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorWhirlpool: lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColorAlert:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorDim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}

func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}
