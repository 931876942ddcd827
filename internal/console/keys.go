package console

// Key identifies a key event by name, using Bubble Tea's key strings.
type Key string

// Keys the console reacts to.
const (
	KeyEnter  Key = "enter"
	KeyTab    Key = "tab"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeyEscape Key = "esc"
	KeySlash  Key = "/"
)

// HandleInputKey handles a key pressed while the prompt has focus. It
// reports whether the key was consumed; unconsumed keys belong to the text
// surface.
func (c *Console) HandleInputKey(k Key) bool {
	switch k {
	case KeyEnter:
		c.Execute(c.input.Value())
	case KeyTab:
		c.Complete()
	case KeyUp:
		c.RecallPrevious()
	case KeyDown:
		c.RecallNext()
	case KeyEscape:
		c.overlay.Close()
		c.input.SetValue("")
		c.input.Blur()
	default:
		return false
	}
	return true
}

// HandleGlobalKey handles page-level shortcuts regardless of focus.
// fromTextEntry marks events that originated in some other text-entry
// context, which never trigger the focus shortcut.
func (c *Console) HandleGlobalKey(k Key, fromTextEntry bool) bool {
	switch k {
	case KeySlash:
		if fromTextEntry || c.input.Focused() {
			return false
		}
		c.input.Focus()
		return true
	case KeyEscape:
		c.overlay.Close()
		return true
	}
	return false
}

// HandleRegionClick focuses the prompt after a click on the page body,
// unless the click was part of a text selection.
func (c *Console) HandleRegionClick() {
	if c.selection.HasSelection() {
		return
	}
	c.input.Focus()
}

// HandleOverlayClick closes the help panel when the click landed on its
// background. Clicks on the panel's content are ignored.
func (c *Console) HandleOverlayClick(onBackground bool) {
	if !onBackground {
		return
	}
	c.overlay.Close()
}
