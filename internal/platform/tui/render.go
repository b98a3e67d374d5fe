package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2022831007/SDL-Game-Project/internal/core"
)

// ansiColors maps the palette to ANSI 256 color codes.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorBlack:   lipgloss.Color("0"),
	core.ColorRed:     lipgloss.Color("9"),
	core.ColorGreen:   lipgloss.Color("10"),
	core.ColorYellow:  lipgloss.Color("11"),
	core.ColorBlue:    lipgloss.Color("12"),
	core.ColorWhite:   lipgloss.Color("15"),
	core.ColorSkyBlue: lipgloss.Color("117"),
	core.ColorGray:    lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleFor builds the lipgloss style for a foreground/background pair.
// ColorDefault leaves the terminal's own color in place.
func styleFor(p colorPair) lipgloss.Style {
	s := lipgloss.NewStyle()
	if c, ok := ansiColors[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := ansiColors[p.bg]; ok {
		s = s.Background(c)
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(map[colorPair]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)
			pair := colorPair{first.Fg, first.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[pair]
			if !ok {
				style = styleFor(pair)
				styles[pair] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
