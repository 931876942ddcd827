package console

import "time"

// ScrollRegion is the scrollable page body.
type ScrollRegion interface {
	// ScrollOffset reports the current vertical offset in rows.
	ScrollOffset() int
	// ScrollTo requests an animated scroll to an absolute offset. Completion
	// is not reported back.
	ScrollTo(offset int)
}

// TextSurface is the focusable prompt the user types commands into.
type TextSurface interface {
	Value() string
	SetValue(string)
	Focus()
	Blur()
	Focused() bool
}

// OverlayPanel is the help panel. The console owns the visibility state and
// pushes every change to the panel.
type OverlayPanel interface {
	SetVisible(bool)
}

// Anchor is a positioned section heading.
type Anchor interface {
	// Top is the anchor's row relative to the visible top of the scroll
	// region. It is negative when the anchor has been scrolled past.
	Top() int
}

// AnchorResolver looks up section anchors by target id.
type AnchorResolver interface {
	Resolve(id string) (Anchor, bool)
}

// SelectionProbe reports whether the user is in the middle of selecting text
// in the scroll region.
type SelectionProbe interface {
	HasSelection() bool
}

// Scheduler runs fn once after d on the same goroutine that drives the
// console.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Surfaces bundles the collaborators a Console drives.
type Surfaces struct {
	Input     TextSurface
	Scroll    ScrollRegion
	Overlay   OverlayPanel
	Anchors   AnchorResolver
	Selection SelectionProbe
	Scheduler Scheduler
}

type noSelection struct{}

func (noSelection) HasSelection() bool { return false }

type noAnchors struct{}

func (noAnchors) Resolve(string) (Anchor, bool) { return nil, false }

type nopOverlay struct{}

func (nopOverlay) SetVisible(bool) {}
