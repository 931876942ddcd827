package console

import "time"

// Default flash timings.
const (
	DefaultFlashDisplay = 3000 * time.Millisecond
	DefaultFlashFade    = 300 * time.Millisecond
)

// FlashMessage is a snapshot of the live flash element.
type FlashMessage struct {
	Text       string
	Fading     bool
	Generation uint64
}

type flashElement struct {
	text   string
	fading bool
	gen    uint64
}

// Flash shows at most one transient message at a time. A newer message
// replaces the live one immediately; timers belonging to a replaced element
// find themselves stale and return without doing anything.
type Flash struct {
	sched   Scheduler
	display time.Duration
	fade    time.Duration

	current *flashElement
	gen     uint64
}

// NewFlash builds a flash subsystem. Non-positive durations fall back to the
// defaults.
func NewFlash(sched Scheduler, display, fade time.Duration) *Flash {
	if display <= 0 {
		display = DefaultFlashDisplay
	}
	if fade <= 0 {
		fade = DefaultFlashFade
	}
	return &Flash{sched: sched, display: display, fade: fade}
}

// Show replaces any live message with msg.
func (f *Flash) Show(msg string) {
	f.current = nil
	f.gen++
	el := &flashElement{text: msg, gen: f.gen}
	f.current = el

	f.sched.After(f.display, func() {
		if f.current != el {
			return
		}
		el.fading = true
		f.sched.After(f.fade, func() {
			if f.current != el {
				return
			}
			f.current = nil
		})
	})
}

// Current returns the live message, if any.
func (f *Flash) Current() (FlashMessage, bool) {
	if f.current == nil {
		return FlashMessage{}, false
	}
	return FlashMessage{Text: f.current.text, Fading: f.current.fading, Generation: f.current.gen}, true
}
