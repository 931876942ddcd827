package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// timerFiredMsg is delivered when a scheduled callback is due.
type timerFiredMsg struct {
	id uint64
}

// tickScheduler turns After calls into tea.Tick commands. Callbacks run inside
// Update when their timerFiredMsg arrives, so they never race the model.
type tickScheduler struct {
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{pending: make(map[uint64]func())}
}

// After schedules fn to run once d has elapsed.
func (s *tickScheduler) After(d time.Duration, fn func()) {
	s.next++
	id := s.next
	s.pending[id] = fn
	s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg {
		return timerFiredMsg{id: id}
	}))
}

// fire runs the callback for id. Unknown ids are ignored.
func (s *tickScheduler) fire(id uint64) bool {
	fn, ok := s.pending[id]
	if !ok {
		return false
	}
	delete(s.pending, id)
	fn()
	return true
}

// drain returns the tick commands queued since the last call.
func (s *tickScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// pendingIDs lists the timers that have not fired yet, oldest first.
func (s *tickScheduler) pendingIDs() []uint64 {
	ids := make([]uint64, 0, len(s.pending))
	for id := uint64(1); id <= s.next; id++ {
		if _, ok := s.pending[id]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}
