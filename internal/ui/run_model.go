package ui

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/term"

	"github.com/oakwood-commons/termfolio/internal/content"
)

// RunConfig holds the program-level settings for RunModel.
type RunConfig struct {
	// StartKeys are replayed before the first frame.
	StartKeys []string
	// WatchPath reloads the page whenever this content file changes.
	WatchPath string
}

// RunModel starts the Bubble Tea TUI.
// Width/height of 0 will auto-detect the terminal size (falling back to defaults).
// Extra ProgramOptions (e.g., custom IO) can be provided to mirror tea.NewProgram.
func RunModel(opts Options, cfg RunConfig, progOpts ...tea.ProgramOption) error {
	if opts.Width > 0 || opts.Height > 0 {
		runW, runH := opts.Width, opts.Height
		if runW <= 0 || runH <= 0 {
			if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				if runW <= 0 {
					runW = w
				}
				if runH <= 0 {
					runH = h
				}
			}
		}
		if runW <= 0 {
			runW = defaultWidth
		}
		if runH <= 0 {
			runH = defaultHeight
		}
		opts.Width, opts.Height = runW, runH
		progOpts = append(progOpts, tea.WithWindowSize(runW, runH))
	}

	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	if len(cfg.StartKeys) > 0 {
		m.startCmd = ApplyStartupKeys(m, cfg.StartKeys)
	}

	prog := tea.NewProgram(m, progOpts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if cfg.WatchPath != "" {
		w, err := content.NewWatcher(cfg.WatchPath, content.DefaultDebounce, m.log.WithName("watch"))
		if err != nil {
			return fmt.Errorf("watch content: %w", err)
		}
		defer func() { _ = w.Close() }()
		go func() {
			err := w.Run(ctx, func(doc content.Document) {
				prog.Send(ContentReloadedMsg{Document: doc})
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				m.log.Error(err, "content watcher stopped")
			}
		}()
	}

	_, err = prog.Run()
	return err
}
