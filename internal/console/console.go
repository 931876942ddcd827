package console

import (
	"errors"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

var (
	// ErrUnknownSection is returned when the section map names a command that
	// is not in the command table.
	ErrUnknownSection = errors.New("section mapped to unknown command")
	// ErrMissingSurface is returned when a required capability is nil.
	ErrMissingSurface = errors.New("missing console surface")
)

// DefaultScrollPadding is the number of rows left above a section heading
// after navigating to it.
const DefaultScrollPadding = 1

// Config tunes a Console. Start from DefaultConfig.
type Config struct {
	Commands      []string
	Sections      map[string]string
	ScrollPadding int
	FlashDisplay  time.Duration
	FlashFade     time.Duration
	Logger        logr.Logger
}

// DefaultConfig returns the built-in command table, section map and timings.
func DefaultConfig() Config {
	return Config{
		Commands:      DefaultCommands(),
		Sections:      DefaultSections(),
		ScrollPadding: DefaultScrollPadding,
		FlashDisplay:  DefaultFlashDisplay,
		FlashFade:     DefaultFlashFade,
		Logger:        logr.Discard(),
	}
}

// Result describes which dispatch branch a submission took.
type Result int

const (
	ResultIgnored Result = iota
	ResultHelp
	ResultTop
	ResultClear
	ResultSection
	ResultNotFound
)

func (r Result) String() string {
	switch r {
	case ResultHelp:
		return "help"
	case ResultTop:
		return "top"
	case ResultClear:
		return "clear"
	case ResultSection:
		return "section"
	case ResultNotFound:
		return "not_found"
	default:
		return "ignored"
	}
}

// Console is the per-session interpreter state.
type Console struct {
	commands []string
	sections map[string]string
	padding  int
	log      logr.Logger

	input     TextSurface
	scroll    ScrollRegion
	anchors   AnchorResolver
	selection SelectionProbe

	history History
	overlay *Overlay
	flash   *Flash
}

// New wires a Console to its surfaces. Input, Scroll and Scheduler are
// required; the rest fall back to inert implementations.
func New(s Surfaces, cfg Config) (*Console, error) {
	if s.Input == nil || s.Scroll == nil || s.Scheduler == nil {
		return nil, ErrMissingSurface
	}
	if len(cfg.Commands) == 0 {
		cfg.Commands = DefaultCommands()
	}
	if cfg.Sections == nil {
		cfg.Sections = DefaultSections()
	}
	if err := validateSections(cfg.Commands, cfg.Sections); err != nil {
		return nil, err
	}
	if cfg.ScrollPadding < 0 {
		cfg.ScrollPadding = 0
	}
	if cfg.Logger.GetSink() == nil {
		cfg.Logger = logr.Discard()
	}

	c := &Console{
		commands:  append([]string(nil), cfg.Commands...),
		sections:  make(map[string]string, len(cfg.Sections)),
		padding:   cfg.ScrollPadding,
		log:       cfg.Logger,
		input:     s.Input,
		scroll:    s.Scroll,
		anchors:   s.Anchors,
		selection: s.Selection,
		overlay:   newOverlay(s.Overlay),
		flash:     NewFlash(s.Scheduler, cfg.FlashDisplay, cfg.FlashFade),
	}
	for k, v := range cfg.Sections {
		c.sections[k] = v
	}
	if c.anchors == nil {
		c.anchors = noAnchors{}
	}
	if c.selection == nil {
		c.selection = noSelection{}
	}
	return c, nil
}

// Commands returns a copy of the command table.
func (c *Console) Commands() []string {
	return append([]string(nil), c.commands...)
}

// History returns the recorded commands, oldest first.
func (c *Console) History() []string { return c.history.Entries() }

// Cursor returns the history cursor.
func (c *Console) Cursor() int { return c.history.Cursor() }

// OverlayVisible reports whether the help panel is shown.
func (c *Console) OverlayVisible() bool { return c.overlay.Visible() }

// Flash exposes the flash subsystem for rendering.
func (c *Console) Flash() *Flash { return c.flash }

// Execute interprets one submission.
func (c *Console) Execute(raw string) Result {
	cmd := Normalize(raw)
	if cmd == "" {
		return ResultIgnored
	}

	result := c.dispatch(cmd)

	c.history.Append(cmd)
	c.input.SetValue("")
	c.log.V(1).Info("command executed", "command", cmd, "result", result.String(), "history_len", c.history.Len())
	return result
}

func (c *Console) dispatch(cmd string) Result {
	switch cmd {
	case CommandHelp:
		c.overlay.Toggle()
		return ResultHelp
	case CommandTop:
		c.scroll.ScrollTo(0)
		return ResultTop
	case CommandClear:
		c.input.SetValue("")
		return ResultClear
	}
	if target, ok := c.sections[cmd]; ok {
		c.overlay.Close()
		c.ScrollToSection(target)
		return ResultSection
	}
	c.flash.Show(NotFoundMessage(cmd))
	return ResultNotFound
}

// ScrollToSection scrolls so the target's anchor sits just below the top of
// the region. Unknown targets are ignored.
func (c *Console) ScrollToSection(target string) {
	anchor, ok := c.anchors.Resolve(target)
	if !ok || anchor == nil {
		c.log.V(1).Info("section target not found", "target", target)
		return
	}
	offset := anchor.Top() + c.scroll.ScrollOffset() - c.padding
	c.scroll.ScrollTo(offset)
}

// RecallPrevious shows the previous history entry in the prompt.
func (c *Console) RecallPrevious() {
	if cmd, ok := c.history.Previous(); ok {
		c.input.SetValue(cmd)
	}
}

// RecallNext shows the next history entry, or an empty prompt past the end.
func (c *Console) RecallNext() {
	c.input.SetValue(c.history.Next())
}

// Complete replaces the prompt with the only command starting with its
// current text. Zero or several matches leave the prompt alone.
func (c *Console) Complete() {
	prefix := Normalize(c.input.Value())
	if prefix == "" {
		return
	}
	match := ""
	for _, cmd := range c.commands {
		if !strings.HasPrefix(cmd, prefix) {
			continue
		}
		if match != "" {
			return
		}
		match = cmd
	}
	if match != "" {
		c.input.SetValue(match)
	}
}

// ToggleOverlay flips the help panel.
func (c *Console) ToggleOverlay() { c.overlay.Toggle() }

// CloseOverlay hides the help panel if it is open.
func (c *Console) CloseOverlay() { c.overlay.Close() }
