package console

// History is the session's command history together with its navigation
// cursor. The cursor ranges over [0, Len()]; Len() is the composing position.
type History struct {
	entries []string
	cursor  int
}

// Append records a submitted command and moves the cursor past the end.
func (h *History) Append(cmd string) {
	h.entries = append(h.entries, cmd)
	h.cursor = len(h.entries)
}

// Len returns the number of recorded commands.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the current cursor position.
func (h *History) Cursor() int { return h.cursor }

// Entries returns a copy of the recorded commands, oldest first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Previous moves the cursor one entry back. It reports false at the start of
// the buffer, where nothing changes.
func (h *History) Previous() (string, bool) {
	if h.cursor <= 0 {
		return "", false
	}
	h.cursor--
	return h.entries[h.cursor], true
}

// Next moves the cursor one entry forward. Stepping off the newest entry
// snaps the cursor to the composing position and yields "".
func (h *History) Next() string {
	if h.cursor < len(h.entries)-1 {
		h.cursor++
		return h.entries[h.cursor]
	}
	h.cursor = len(h.entries)
	return ""
}
