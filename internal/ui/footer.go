package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// FooterModel renders the key hint bar at the bottom of the screen.
type FooterModel struct {
	NoColor      bool
	Width        int
	InputFocused bool
	Theme        Theme
}

// NewFooterModel creates a new footer model
func NewFooterModel() FooterModel {
	return FooterModel{Width: 92, Theme: fallbackDefaultTheme()}
}

func (m FooterModel) bindings() [][2]string {
	if m.InputFocused {
		return [][2]string{
			{"enter", "run"},
			{"tab", "complete"},
			{"↑↓", "history"},
			{"esc", "leave prompt"},
			{"ctrl+c", "quit"},
		}
	}
	return [][2]string{
		{"/", "prompt"},
		{"↑↓ pgup pgdn", "scroll"},
		{"esc", "close help"},
		{"q", "quit"},
	}
}

// View renders the footer padded to the full width.
func (m FooterModel) View() string {
	keyStyle := lipgloss.NewStyle().Bold(true)
	barStyle := lipgloss.NewStyle()
	if !m.NoColor {
		keyStyle = keyStyle.Foreground(m.Theme.Accent).Background(m.Theme.FooterBG)
		barStyle = barStyle.Foreground(m.Theme.FooterFG).Background(m.Theme.FooterBG)
	} else {
		// In no-color mode still highlight keys with true black on white
		keyStyle = keyStyle.Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#ffffff"))
	}

	var b strings.Builder
	plainWidth := 0
	for i, kv := range m.bindings() {
		lead := "  "
		if i == 0 {
			lead = " "
		}
		need := runewidth.StringWidth(lead + kv[0] + " " + kv[1])
		if m.Width > 0 && plainWidth+need > m.Width {
			break
		}
		b.WriteString(barStyle.Render(lead))
		b.WriteString(keyStyle.Render(kv[0]))
		b.WriteString(barStyle.Render(" " + kv[1]))
		plainWidth += need
	}
	if m.Width > plainWidth {
		b.WriteString(barStyle.Render(strings.Repeat(" ", m.Width-plainWidth)))
	}
	return b.String()
}

// SetWidth sets the width of the footer.
func (m *FooterModel) SetWidth(width int) {
	m.Width = width
}
