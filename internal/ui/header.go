package ui

import (
	"github.com/oakwood-commons/termfolio/internal/content"
	"github.com/oakwood-commons/termfolio/internal/typing"
)

// headerElement is one page header line that takes part in the typing
// animation.
type headerElement struct {
	text   []rune
	role   typing.Role
	shown  int
	cursor bool
}

func newHeaderElements(lines []content.HeaderLine) []*headerElement {
	out := make([]*headerElement, 0, len(lines))
	for _, l := range lines {
		role := typing.RoleDefault
		if l.Typing == string(typing.RoleName) {
			role = typing.RoleName
		}
		r := []rune(l.Text)
		out = append(out, &headerElement{text: r, role: role, shown: len(r)})
	}
	return out
}

func (h *headerElement) Text() string      { return string(h.text) }
func (h *headerElement) Role() typing.Role { return h.role }
func (h *headerElement) SetCursor(v bool)  { h.cursor = v }

func (h *headerElement) Reveal(n int) {
	if n < 0 {
		n = 0
	}
	if n > len(h.text) {
		n = len(h.text)
	}
	h.shown = n
}

// visible is the revealed part of the text.
func (h *headerElement) visible() string { return string(h.text[:h.shown]) }

func typingElements(els []*headerElement) []typing.Element {
	out := make([]typing.Element, len(els))
	for i, el := range els {
		out[i] = el
	}
	return out
}
