package console

// Overlay tracks whether the help panel is shown.
type Overlay struct {
	visible bool
	panel   OverlayPanel
}

func newOverlay(panel OverlayPanel) *Overlay {
	if panel == nil {
		panel = nopOverlay{}
	}
	return &Overlay{panel: panel}
}

// Visible reports the current state.
func (o *Overlay) Visible() bool { return o.visible }

// Toggle flips the panel's visibility.
func (o *Overlay) Toggle() {
	o.visible = !o.visible
	o.panel.SetVisible(o.visible)
}

// Close hides the panel. Closing a hidden panel does nothing.
func (o *Overlay) Close() {
	if !o.visible {
		return
	}
	o.visible = false
	o.panel.SetVisible(false)
}
