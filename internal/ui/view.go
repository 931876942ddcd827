package ui

import (
	"image/color"
	"regexp"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/termfolio/internal/content"
	"github.com/oakwood-commons/termfolio/internal/typing"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRegexp.ReplaceAllString(s, "")
}

const typingCursor = "▌"

// View renders the page, status line, prompt and footer, with the help
// overlay drawn over the page when visible.
func (m *Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	// Enable keyboard enhancements for proper modifier key detection
	v.KeyboardEnhancements.ReportEventTypes = true
	return v
}

func (m *Model) render() string {
	body := m.renderBody()
	if box := m.help.View(); box != "" {
		body = m.placeOverlay(box)
	} else {
		m.overlayRect = rect{}
	}

	parts := []string{body, m.renderStatus(), m.renderPrompt(), m.footer.View()}
	if m.DebugMode {
		parts = append(parts, m.debug.View(m.debugInfo()))
	}
	out := strings.Join(parts, "\n")
	if m.NoColor {
		out = stripANSI(out)
	}
	return out
}

func (m *Model) style(fg color.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if m.NoColor || fg == nil {
		return s
	}
	return s.Foreground(fg)
}

func (m *Model) renderBody() string {
	h := m.bodyHeight()
	margin := strings.Repeat(" ", max((m.WinWidth-m.Page.Width)/2, 1))
	rows := make([]string, 0, h)
	for i := m.scroll.offset; i < len(m.Page.Lines) && len(rows) < h; i++ {
		rows = append(rows, margin+m.renderLine(m.Page.Lines[i]))
	}
	for len(rows) < h {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderLine(l content.Line) string {
	th := m.Theme
	switch l.Kind {
	case content.LineHeader:
		return m.renderHeader(l)
	case content.LineSectionTitle:
		return m.style(th.Accent).Bold(true).Render(l.Text)
	case content.LineHeading:
		return m.style(th.Heading).Bold(true).Render(l.Text)
	case content.LineRule:
		return m.style(th.Muted).Render(l.Text)
	case content.LineQuote, content.LineCode:
		return m.style(th.Muted).Render(l.Text)
	case content.LineBlank:
		return ""
	default:
		return m.style(th.Text).Render(l.Text)
	}
}

func (m *Model) renderHeader(l content.Line) string {
	if l.Header < 0 || l.Header >= len(m.header) {
		return l.Text
	}
	el := m.header[l.Header]
	text := runewidth.Truncate(el.visible(), m.Page.Width, "…")
	st := m.style(m.Theme.Link)
	if el.role == typing.RoleName {
		st = m.style(m.Theme.Accent).Bold(true)
	}
	out := st.Render(text)
	if el.cursor {
		out += m.style(m.Theme.Cursor).Render(typingCursor)
	}
	return out
}

// placeOverlay centers the help box over the body area and remembers where it
// landed for click hit-testing.
func (m *Model) placeOverlay(box string) string {
	h := m.bodyHeight()
	bw, bh := lipgloss.Width(box), lipgloss.Height(box)
	m.overlayRect = rect{x: max((m.WinWidth-bw)/2, 0), y: max((h-bh)/2, 0), w: bw, h: bh}
	return lipgloss.Place(m.WinWidth, h, lipgloss.Center, lipgloss.Center, box)
}

func (m *Model) renderStatus() string {
	msg, ok := m.Console.Flash().Current()
	if !ok {
		return ""
	}
	fg := m.Theme.FlashFG
	if msg.Fading {
		fg = m.Theme.FlashFadeFG
	}
	line := " " + m.style(fg).Render(msg.Text)
	if m.hint != "" && !msg.Fading {
		line += "  " + m.style(m.Theme.HintFG).Italic(true).Render(m.hint)
	}
	return line
}

func (m *Model) renderPrompt() string {
	prefix := m.style(m.Theme.PromptFG).Bold(true).Render(m.promptPrefix)
	if m.input.Value() == "" && !m.input.Focused() {
		return prefix + m.style(m.Theme.Placeholder).Render(m.input.model.Placeholder)
	}
	return prefix + m.style(m.Theme.InputFG).Render(m.input.model.View())
}
