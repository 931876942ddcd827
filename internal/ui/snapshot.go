package ui

import "strings"

// ModelSnapshotConfig configures snapshot rendering using the Model implementation.
type ModelSnapshotConfig struct {
	Width     int
	Height    int
	NoColor   bool
	StartKeys []string
	// Blur leaves the prompt unfocused, as after pressing Esc.
	Blur bool
}

// RenderModelSnapshot renders one frame of the console without starting a
// program. Animations are off: scrolls land immediately and the header shows
// in full. Flash messages stay visible because their timers never fire.
func RenderModelSnapshot(opts Options, cfg ModelSnapshotConfig) (string, error) {
	noSmooth := false
	opts.Smooth = &noSmooth
	opts.Typing = false
	opts.NoColor = opts.NoColor || cfg.NoColor
	if cfg.Width > 0 {
		opts.Width = cfg.Width
	}
	if cfg.Height > 0 {
		opts.Height = cfg.Height
	}
	m, err := NewModel(opts)
	if err != nil {
		return "", err
	}
	if cfg.Blur {
		m.input.Blur()
		m.footer.InputFocused = false
	}
	if len(cfg.StartKeys) > 0 {
		ApplyStartupKeys(m, cfg.StartKeys)
	}
	view := m.render()
	if cfg.Height > 0 {
		view = padSnapshotHeight(view, cfg.Height, cfg.Width)
	}
	return view, nil
}

func padSnapshotHeight(view string, height, width int) string {
	if height <= 0 {
		return view
	}
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")
	if len(lines) >= height {
		return strings.Join(lines, "\n")
	}
	padLine := " "
	if width > 1 {
		padLine = strings.Repeat(" ", width)
	}
	for len(lines) < height {
		lines = append(lines, padLine)
	}
	return strings.Join(lines, "\n")
}
