package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/trainboard/internal/core"
)

// shades maps a colour to four lipgloss foregrounds from dim to bright.
var shades = map[core.Color][4]lipgloss.Color{
	core.ColorYellow: {"58", "100", "142", "226"},
	core.ColorRed:    {"52", "88", "124", "196"},
}

var (
	darkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	grayStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	plainStyle = lipgloss.NewStyle()
)

// styleKey identifies a run of cells that render the same way.
type styleKey struct {
	color core.Color
	shade int // -1 when dark
}

func keyOf(c core.Cell) styleKey {
	if _, ok := shades[c.Color]; !ok {
		return styleKey{color: c.Color, shade: -1}
	}
	if c.Level == 0 {
		return styleKey{color: c.Color, shade: -1}
	}
	return styleKey{color: c.Color, shade: int(c.Level) / 64}
}

func (k styleKey) style() lipgloss.Style {
	if k.color == core.ColorGray {
		return grayStyle
	}
	sh, ok := shades[k.color]
	if !ok {
		return plainStyle
	}
	if k.shade < 0 {
		return darkStyle
	}
	return lipgloss.NewStyle().Foreground(sh[k.shade])
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := s.Row(y)
		x := 0
		for x < len(row) {
			start := keyOf(row[x])

			var run strings.Builder
			for x < len(row) && keyOf(row[x]) == start {
				run.WriteRune(row[x].Rune)
				x++
			}
			sb.WriteString(start.style().Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left so it sits centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
