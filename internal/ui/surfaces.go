package ui

import (
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/oakwood-commons/termfolio/internal/console"
)

// promptInput adapts a textinput to console.TextSurface. Focus commands are
// collected and handed back to the program by the model.
type promptInput struct {
	model textinput.Model
	cmds  []tea.Cmd
}

func (p *promptInput) Value() string { return p.model.Value() }

func (p *promptInput) SetValue(v string) {
	p.model.SetValue(v)
	p.model.CursorEnd()
}

func (p *promptInput) Focus() {
	if cmd := p.model.Focus(); cmd != nil {
		p.cmds = append(p.cmds, cmd)
	}
}

func (p *promptInput) Blur()         { p.model.Blur() }
func (p *promptInput) Focused() bool { return p.model.Focused() }

func (p *promptInput) takeCmds() []tea.Cmd {
	cmds := p.cmds
	p.cmds = nil
	return cmds
}

// scrollRegion is the page viewport. ScrollTo animates in a fixed number of
// frames when smooth scrolling is on; a newer request or a manual scroll
// supersedes any animation still in flight.
type scrollRegion struct {
	offset   int
	maxFn    func() int
	smooth   bool
	steps    int
	stepDur  time.Duration
	sched    console.Scheduler
	gen      uint64
	lastGoal int
}

// ScrollOffset reports the current top row.
func (s *scrollRegion) ScrollOffset() int { return s.offset }

// ScrollTo moves the viewport so that row target is at the top.
func (s *scrollRegion) ScrollTo(target int) {
	target = s.clamp(target)
	s.gen++
	s.lastGoal = target
	if !s.smooth || s.steps <= 1 || s.sched == nil || target == s.offset {
		s.offset = target
		return
	}
	s.animate(s.gen, target, s.steps)
}

func (s *scrollRegion) animate(gen uint64, target, remaining int) {
	s.sched.After(s.stepDur, func() {
		if gen != s.gen {
			return
		}
		dist := target - s.offset
		step := dist / remaining
		if step == 0 {
			step = dist
		}
		s.offset = s.clamp(s.offset + step)
		if remaining > 1 && s.offset != target {
			s.animate(gen, target, remaining-1)
		}
	})
}

// ScrollBy moves immediately by delta rows, cancelling any animation.
func (s *scrollRegion) ScrollBy(delta int) {
	s.gen++
	s.offset = s.clamp(s.offset + delta)
	s.lastGoal = s.offset
}

// Reclamp keeps the offset valid after the page or viewport changes size.
func (s *scrollRegion) Reclamp() {
	s.offset = s.clamp(s.offset)
}

func (s *scrollRegion) clamp(v int) int {
	maxOffset := 0
	if s.maxFn != nil {
		maxOffset = s.maxFn()
	}
	if v > maxOffset {
		v = maxOffset
	}
	if v < 0 {
		v = 0
	}
	return v
}

type rowAnchor int

func (a rowAnchor) Top() int { return int(a) }

// pageAnchors resolves section ids against the current layout. Tops are
// reported relative to the visible top of the scroll region.
type pageAnchors struct {
	rows   map[string]int
	scroll *scrollRegion
}

func (p *pageAnchors) Resolve(id string) (console.Anchor, bool) {
	row, ok := p.rows[id]
	if !ok {
		return nil, false
	}
	return rowAnchor(row - p.scroll.offset), true
}

// terminalSelection never reports a selection: while mouse reporting is on,
// terminals only select with a modifier held, and those clicks never reach
// the program.
type terminalSelection struct{}

func (terminalSelection) HasSelection() bool { return false }
