package ui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// ApplyStartupKeys replays keypresses before the program starts, as if typed.
// Tokens are literal text ("about") or Vim-like keys ("<CR>", "<Tab>", "<Esc>").
// A leading backslash forces the whole token to be literal.
// It returns the commands the replay produced so the caller can run them.
func ApplyStartupKeys(m *Model, keys []string) tea.Cmd {
	if len(keys) == 0 || m == nil {
		return nil
	}
	var cmds []tea.Cmd
	send := func(msg tea.KeyPressMsg) {
		_, cmd := m.Update(msg)
		cmds = append(cmds, cmd)
	}
	for _, raw := range keys {
		token := strings.TrimSpace(raw)
		if token == "" {
			continue
		}
		if strings.HasPrefix(token, `\`) {
			for _, r := range strings.TrimPrefix(token, `\`) {
				send(tea.KeyPressMsg{Code: r, Text: string(r)})
			}
			continue
		}
		for _, segment := range parseTokenSegments(token) {
			if segment.isVimKey {
				if msgs, ok := keyMsgsFromToken(segment.text); ok {
					for _, msg := range msgs {
						send(msg)
					}
				}
				continue
			}
			for _, r := range segment.text {
				send(tea.KeyPressMsg{Code: r, Text: string(r)})
			}
		}
	}
	return tea.Batch(cmds...)
}

// tokenSegment represents a parsed segment of a token (either a vim-style key or literal text)
type tokenSegment struct {
	text     string
	isVimKey bool
}

// parseTokenSegments splits a token into segments of vim-style keys and literal text.
// Example: "help<CR>" -> [segment{text: "help"}, segment{text: "<CR>", isVimKey: true}]
func parseTokenSegments(token string) []tokenSegment {
	var segments []tokenSegment
	remaining := token

	for len(remaining) > 0 {
		startIdx := strings.Index(remaining, "<")
		if startIdx == -1 {
			segments = append(segments, tokenSegment{text: remaining})
			break
		}
		if startIdx > 0 {
			segments = append(segments, tokenSegment{text: remaining[:startIdx]})
		}
		endIdx := strings.Index(remaining[startIdx:], ">")
		if endIdx == -1 {
			// No closing >, treat rest as literal text
			segments = append(segments, tokenSegment{text: remaining[startIdx:]})
			break
		}
		segments = append(segments, tokenSegment{text: remaining[startIdx : startIdx+endIdx+1], isVimKey: true})
		remaining = remaining[startIdx+endIdx+1:]
	}
	return segments
}

// keyMsgsFromToken parses a Vim-like token into key messages.
// Examples: "<Esc>", "<CR>", "<Tab>", "<Space>", "<BS>", "<Up>", "<PgDn>".
func keyMsgsFromToken(token string) ([]tea.KeyPressMsg, bool) {
	if !strings.HasPrefix(token, "<") || !strings.HasSuffix(token, ">") {
		return nil, false
	}
	inner := strings.ToLower(strings.TrimSuffix(strings.TrimPrefix(token, "<"), ">"))
	switch inner {
	case "esc", "c-[", "escape":
		return []tea.KeyPressMsg{{Code: tea.KeyEscape}}, true
	case "cr", "enter", "return":
		return []tea.KeyPressMsg{{Code: tea.KeyEnter}}, true
	case "tab":
		return []tea.KeyPressMsg{{Code: tea.KeyTab}}, true
	case "space":
		return []tea.KeyPressMsg{{Code: tea.KeySpace, Text: " "}}, true
	case "bs", "backspace":
		return []tea.KeyPressMsg{{Code: tea.KeyBackspace}}, true
	case "lt":
		return []tea.KeyPressMsg{{Code: '<', Text: "<"}}, true
	case "left":
		return []tea.KeyPressMsg{{Code: tea.KeyLeft}}, true
	case "right":
		return []tea.KeyPressMsg{{Code: tea.KeyRight}}, true
	case "up":
		return []tea.KeyPressMsg{{Code: tea.KeyUp}}, true
	case "down":
		return []tea.KeyPressMsg{{Code: tea.KeyDown}}, true
	case "pgup", "pageup":
		return []tea.KeyPressMsg{{Code: tea.KeyPgUp}}, true
	case "pgdn", "pagedown":
		return []tea.KeyPressMsg{{Code: tea.KeyPgDown}}, true
	case "home":
		return []tea.KeyPressMsg{{Code: tea.KeyHome}}, true
	case "end":
		return []tea.KeyPressMsg{{Code: tea.KeyEnd}}, true
	}
	return nil, false
}
