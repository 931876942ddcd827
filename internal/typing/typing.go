// Package typing plays the one-time typewriter effect over the page header.
//
// Elements type one after another: each starts once every earlier element
// has finished plus a short pause, so only one element is typing at a time.
// Narrow viewports skip the effect and show the text immediately.
package typing

import "time"

// Role selects an element's typing speed.
type Role string

const (
	RoleDefault Role = "default"
	RoleName    Role = "name"
)

// Defaults mirror the page's original timings.
const (
	DefaultMinWidth     = 96
	DefaultNameInterval = 60 * time.Millisecond
	DefaultInterval     = 40 * time.Millisecond
	DefaultPause        = 300 * time.Millisecond
	DefaultCursorLinger = 2000 * time.Millisecond
)

// Element is a text element that can be typed out.
type Element interface {
	// Text is the element's full text.
	Text() string
	Role() Role
	// Reveal shows the first n runes of the text.
	Reveal(n int)
	SetCursor(visible bool)
}

// Scheduler runs fn once after d on the UI goroutine.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Config holds the animation timings.
type Config struct {
	MinWidth     int
	NameInterval time.Duration
	Interval     time.Duration
	Pause        time.Duration
	CursorLinger time.Duration
}

// DefaultConfig returns the standard timings.
func DefaultConfig() Config {
	return Config{
		MinWidth:     DefaultMinWidth,
		NameInterval: DefaultNameInterval,
		Interval:     DefaultInterval,
		Pause:        DefaultPause,
		CursorLinger: DefaultCursorLinger,
	}
}

func (c Config) interval(r Role) time.Duration {
	if r == RoleName {
		return c.NameInterval
	}
	return c.Interval
}

// Step is one element's slot in the schedule.
type Step struct {
	Element  Element
	Start    time.Duration
	Interval time.Duration
	Runes    int
}

// Plan computes start offsets: each element begins after the cumulative
// typing time of all earlier elements plus one pause per element.
func Plan(elements []Element, cfg Config) []Step {
	steps := make([]Step, 0, len(elements))
	var delay time.Duration
	for _, el := range elements {
		n := len([]rune(el.Text()))
		iv := cfg.interval(el.Role())
		steps = append(steps, Step{Element: el, Start: delay, Interval: iv, Runes: n})
		delay += time.Duration(n)*iv + cfg.Pause
	}
	return steps
}

// Run starts the animation. It returns false, leaving every element fully
// visible, when the viewport is narrower than cfg.MinWidth.
func Run(width int, elements []Element, sched Scheduler, cfg Config) bool {
	if width < cfg.MinWidth {
		for _, el := range elements {
			el.Reveal(len([]rune(el.Text())))
			el.SetCursor(false)
		}
		return false
	}
	for _, step := range Plan(elements, cfg) {
		step.Element.Reveal(0)
		sched.After(step.Start, func() { typeStep(step, sched, cfg.CursorLinger) })
	}
	return true
}

// typeStep reveals one rune per tick. The tick after the last rune stops the
// chain and schedules the cursor's removal.
func typeStep(step Step, sched Scheduler, linger time.Duration) {
	step.Element.SetCursor(true)
	shown := 0
	var tick func()
	tick = func() {
		if shown < step.Runes {
			shown++
			step.Element.Reveal(shown)
			sched.After(step.Interval, tick)
			return
		}
		sched.After(linger, func() { step.Element.SetCursor(false) })
	}
	sched.After(step.Interval, tick)
}
