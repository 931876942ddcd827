package ui

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// DebugModel represents the debug bar component
type DebugModel struct {
	Visible bool
	NoColor bool
	Width   int
	Theme   Theme
}

// DebugInfo is the state shown in the debug bar.
type DebugInfo struct {
	WinWidth, WinHeight int
	Offset, MaxOffset   int
	Goal                int
	PageRows            int
	History, Cursor     int
	OverlayVisible      bool
	InputFocused        bool
	FlashGeneration     uint64
	PendingTimers       int
	LastKey             string
}

// NewDebugModel creates a new debug model
func NewDebugModel() DebugModel {
	return DebugModel{Width: 92, Theme: fallbackDefaultTheme()}
}

// View renders the debug bar, or "" when hidden.
func (m DebugModel) View(info DebugInfo) string {
	if !m.Visible {
		return ""
	}
	message := fmt.Sprintf("DBG: win=%dx%d off=%d/%d goal=%d rows=%d | hist=%d cur=%d | help=%v focus=%v flash=%d timers=%d key=%q",
		info.WinWidth, info.WinHeight, info.Offset, info.MaxOffset, info.Goal, info.PageRows,
		info.History, info.Cursor, info.OverlayVisible, info.InputFocused,
		info.FlashGeneration, info.PendingTimers, info.LastKey)
	if m.Width > 0 {
		message = runewidth.Truncate(message, m.Width, "...")
	}
	style := lipgloss.NewStyle()
	if !m.NoColor {
		style = style.Foreground(m.Theme.Muted)
	}
	return style.Render(message)
}

// SetWidth sets the width of the debug bar
func (m *DebugModel) SetWidth(width int) {
	m.Width = width
}
