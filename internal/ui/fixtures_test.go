package ui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/termfolio/internal/config"
	"github.com/oakwood-commons/termfolio/internal/content"
)

func testOptions(t *testing.T, width, height int) Options {
	t.Helper()
	doc, err := content.Sample()
	require.NoError(t, err)
	cfg, err := config.EmbeddedDefault()
	require.NoError(t, err)
	th, err := ResolveTheme(cfg.UI.Themes, cfg.UI.Theme.Default)
	require.NoError(t, err)
	return Options{
		Document: doc,
		Config:   cfg,
		Theme:    th,
		NoColor:  true,
		Width:    width,
		Height:   height,
	}
}

func newTestModel(t *testing.T, width, height int) *Model {
	t.Helper()
	m, err := NewModel(testOptions(t, width, height))
	require.NoError(t, err)
	return m
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		msgs, ok := keyMsgsFromToken(k)
		if !ok {
			for _, r := range k {
				m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
			}
			continue
		}
		for _, msg := range msgs {
			m.Update(msg)
		}
	}
}

// run types a command at the prompt and submits it.
func run(m *Model, command string) {
	press(m, command, "<CR>")
}

// fireAll delivers every pending timer, including ones scheduled by the
// callbacks themselves, in scheduling order.
func fireAll(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		ids := m.sched.pendingIDs()
		if len(ids) == 0 {
			return
		}
		m.Update(timerFiredMsg{id: ids[0]})
	}
	t.Fatal("timers never settled")
}
