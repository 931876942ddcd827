package console

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeInput struct {
	value   string
	focused bool
	sets    []string
}

func (f *fakeInput) Value() string { return f.value }
func (f *fakeInput) SetValue(v string) {
	f.value = v
	f.sets = append(f.sets, v)
}
func (f *fakeInput) Focus()        { f.focused = true }
func (f *fakeInput) Blur()         { f.focused = false }
func (f *fakeInput) Focused() bool { return f.focused }

type fakeScroll struct {
	offset   int
	requests []int
}

func (f *fakeScroll) ScrollOffset() int { return f.offset }
func (f *fakeScroll) ScrollTo(offset int) {
	f.requests = append(f.requests, offset)
}

type fakeOverlay struct {
	visible bool
	calls   int
}

func (f *fakeOverlay) SetVisible(v bool) {
	f.visible = v
	f.calls++
}

type fakeAnchor int

func (a fakeAnchor) Top() int { return int(a) }

// fakeAnchors maps target ids to absolute rows; Resolve reports them relative
// to the scroll region's current offset.
type fakeAnchors struct {
	rows   map[string]int
	scroll *fakeScroll
}

func (f *fakeAnchors) Resolve(id string) (Anchor, bool) {
	row, ok := f.rows[id]
	if !ok {
		return nil, false
	}
	return fakeAnchor(row - f.scroll.offset), true
}

type fakeSelection bool

func (f *fakeSelection) HasSelection() bool { return bool(*f) }

type timer struct {
	at  time.Duration
	seq int
	fn  func()
}

// manualScheduler is a virtual clock; callbacks only run from Advance.
type manualScheduler struct {
	now    time.Duration
	seq    int
	timers []timer
}

func (s *manualScheduler) After(d time.Duration, fn func()) {
	s.seq++
	s.timers = append(s.timers, timer{at: s.now + d, seq: s.seq, fn: fn})
}

func (s *manualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		sort.SliceStable(s.timers, func(i, j int) bool {
			if s.timers[i].at != s.timers[j].at {
				return s.timers[i].at < s.timers[j].at
			}
			return s.timers[i].seq < s.timers[j].seq
		})
		if len(s.timers) == 0 || s.timers[0].at > target {
			break
		}
		next := s.timers[0]
		s.timers = s.timers[1:]
		s.now = next.at
		next.fn()
	}
	s.now = target
}

func (s *manualScheduler) Pending() int { return len(s.timers) }

type harness struct {
	console   *Console
	input     *fakeInput
	scroll    *fakeScroll
	overlay   *fakeOverlay
	sched     *manualScheduler
	selection fakeSelection
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		input:   &fakeInput{focused: true},
		scroll:  &fakeScroll{},
		overlay: &fakeOverlay{},
		sched:   &manualScheduler{},
	}
	anchors := &fakeAnchors{
		scroll: h.scroll,
		rows: map[string]int{
			"section-about":        4,
			"section-experience":   20,
			"section-education":    41,
			"section-projects":     60,
			"section-achievements": 85,
		},
	}
	c, err := New(Surfaces{
		Input:     h.input,
		Scroll:    h.scroll,
		Overlay:   h.overlay,
		Anchors:   anchors,
		Selection: &h.selection,
		Scheduler: h.sched,
	}, DefaultConfig())
	require.NoError(t, err)
	h.console = c
	return h
}
