package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/oakwood-commons/termfolio/internal/console"
)

// HelpModel is the help overlay. The console owns its visibility and pushes
// changes through SetVisible.
type HelpModel struct {
	Visible  bool
	NoColor  bool
	Width    int
	Title    string
	Commands []string
	Theme    Theme
}

// NewHelpModel creates a help overlay listing commands.
func NewHelpModel(commands []string) HelpModel {
	return HelpModel{
		Width:    92,
		Title:    "Available commands",
		Commands: commands,
		Theme:    fallbackDefaultTheme(),
	}
}

func helpKeyRows() [][]string {
	return [][]string{
		{"Enter", "run command"},
		{"Tab", "complete command"},
		{"↑/↓", "command history"},
		{"Esc", "close help, leave prompt"},
		{"/", "focus prompt"},
		{"q", "quit (prompt not focused)"},
		{"Ctrl+C", "quit"},
	}
}

// View renders the overlay box, or "" when hidden.
func (m HelpModel) View() string {
	if !m.Visible {
		return ""
	}
	th := m.Theme
	keyStyle := lipgloss.NewStyle().Bold(true)
	valStyle := lipgloss.NewStyle()
	titleStyle := lipgloss.NewStyle().Bold(true)
	boxStyle := lipgloss.NewStyle().Border(borderForTheme(th)).PaddingLeft(2).PaddingRight(2)
	if !m.NoColor {
		keyStyle = keyStyle.Foreground(th.PromptFG)
		valStyle = valStyle.Foreground(th.OverlayFG)
		titleStyle = titleStyle.Foreground(th.Accent)
		boxStyle = boxStyle.BorderForeground(th.BorderFG).Background(th.OverlayBG)
	}

	lines := []string{titleStyle.Render(m.Title), ""}
	for _, cmd := range m.Commands {
		key := keyStyle.Render(fmt.Sprintf("%-14s", cmd))
		lines = append(lines, key+" "+valStyle.Render(console.Describe(cmd)))
	}
	lines = append(lines, "")
	for _, row := range helpKeyRows() {
		key := keyStyle.Render(fmt.Sprintf("%-14s", row[0]))
		lines = append(lines, key+" "+valStyle.Render(row[1]))
	}

	content := strings.Join(lines, "\n")
	box := boxStyle.Render(content)
	// Constrain width so we do not overflow narrow terminals
	if m.Width > 0 && lipgloss.Width(box) > m.Width {
		box = boxStyle.Width(m.Width).Render(content)
	}
	return box
}

// SetWidth sets the maximum width of the overlay.
func (m *HelpModel) SetWidth(width int) {
	m.Width = width
}

// SetVisible sets the visibility of the help overlay.
func (m *HelpModel) SetVisible(visible bool) {
	m.Visible = visible
}
