package ui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/go-logr/logr"
	"github.com/mattn/go-runewidth"

	"github.com/oakwood-commons/termfolio/internal/config"
	"github.com/oakwood-commons/termfolio/internal/console"
	"github.com/oakwood-commons/termfolio/internal/content"
	"github.com/oakwood-commons/termfolio/internal/typing"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	maxContentWidth = 100
	wheelStep       = 3
)

// ContentReloadedMsg replaces the page with a freshly loaded document.
type ContentReloadedMsg struct {
	Document content.Document
}

// Options configures a Model.
type Options struct {
	Document content.Document
	Config   config.File
	Theme    Theme
	NoColor  bool
	Debug    bool
	// Typing enables the header animation; the configured minimum width
	// still applies.
	Typing bool
	// Smooth overrides the configured smooth scrolling when non-nil.
	Smooth *bool
	Width  int
	Height int
	Logger logr.Logger
}

// Model is the Bubble Tea model hosting the console.
type Model struct {
	Console *console.Console
	Doc     content.Document
	Page    content.Page
	Theme   Theme
	NoColor bool

	DebugMode bool
	WinWidth  int
	WinHeight int
	LastKey   string

	input   *promptInput
	scroll  *scrollRegion
	anchors *pageAnchors
	sched   *tickScheduler
	help    HelpModel
	footer  FooterModel
	debug   DebugModel
	header  []*headerElement

	typingCfg     typing.Config
	typingEnabled bool
	typingStarted bool

	promptPrefix string
	hint         string
	hintGen      uint64
	// overlayRect is the help box position from the last render, for clicks.
	overlayRect rect
	startCmd    tea.Cmd
	log         logr.Logger
}

type rect struct{ x, y, w, h int }

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// NewModel wires a console to terminal surfaces.
func NewModel(opts Options) (*Model, error) {
	log := opts.Logger
	if log.GetSink() == nil {
		log = logr.Discard()
	}
	ui := opts.Config.UI

	m := &Model{
		Doc:       opts.Document,
		Theme:     opts.Theme,
		NoColor:   opts.NoColor,
		DebugMode: opts.Debug,
		WinWidth:  opts.Width,
		WinHeight: opts.Height,
		sched:     newTickScheduler(),
		log:       log,
	}
	if m.Theme.Accent == nil {
		m.Theme = fallbackDefaultTheme()
	}
	if m.WinWidth <= 0 {
		m.WinWidth = defaultWidth
	}
	if m.WinHeight <= 0 {
		m.WinHeight = defaultHeight
	}

	m.promptPrefix = ui.Prompt.Prefix
	if m.promptPrefix == "" {
		m.promptPrefix = "$ "
	}
	ti := textinput.New()
	// The prefix is drawn by the view so it can carry its own color.
	ti.Prompt = ""
	ti.Placeholder = ui.Prompt.Placeholder
	ti.CharLimit = config.IntOr(ui.Prompt.CharLimit, 64)
	ti.SetWidth(m.WinWidth - 4)
	m.input = &promptInput{model: ti}
	m.input.Focus()

	smooth := config.BoolOr(ui.Scroll.Smooth, true)
	if opts.Smooth != nil {
		smooth = *opts.Smooth
	}
	m.scroll = &scrollRegion{
		maxFn:   m.maxOffset,
		smooth:  smooth,
		steps:   config.IntOr(ui.Scroll.Steps, 8),
		stepDur: config.Millis(ui.Scroll.StepMS, 16*time.Millisecond),
		sched:   m.sched,
	}
	m.anchors = &pageAnchors{scroll: m.scroll}

	m.help = NewHelpModel(console.DefaultCommands())
	m.help.Theme = m.Theme
	m.help.NoColor = m.NoColor
	m.footer = NewFooterModel()
	m.footer.Theme = m.Theme
	m.footer.NoColor = m.NoColor
	m.footer.InputFocused = true
	m.debug = NewDebugModel()
	m.debug.Visible = m.DebugMode
	m.debug.Theme = m.Theme
	m.debug.NoColor = m.NoColor

	ccfg := console.DefaultConfig()
	ccfg.ScrollPadding = config.IntOr(ui.Scroll.Padding, console.DefaultScrollPadding)
	ccfg.FlashDisplay = config.Millis(ui.Flash.DisplayMS, console.DefaultFlashDisplay)
	ccfg.FlashFade = config.Millis(ui.Flash.FadeMS, console.DefaultFlashFade)
	ccfg.Logger = log.WithName("console")
	c, err := console.New(console.Surfaces{
		Input:     m.input,
		Scroll:    m.scroll,
		Overlay:   &m.help,
		Anchors:   m.anchors,
		Selection: terminalSelection{},
		Scheduler: m.sched,
	}, ccfg)
	if err != nil {
		return nil, fmt.Errorf("create console: %w", err)
	}
	m.Console = c

	m.typingCfg = typing.Config{
		MinWidth:     config.IntOr(ui.Typing.MinWidth, typing.DefaultMinWidth),
		NameInterval: config.Millis(ui.Typing.NameIntervalMS, typing.DefaultNameInterval),
		Interval:     config.Millis(ui.Typing.IntervalMS, typing.DefaultInterval),
		Pause:        config.Millis(ui.Typing.PauseMS, typing.DefaultPause),
		CursorLinger: config.Millis(ui.Typing.CursorLingerMS, typing.DefaultCursorLinger),
	}
	m.typingEnabled = opts.Typing && config.BoolOr(ui.Typing.Enabled, true)
	m.header = newHeaderElements(m.Doc.Header)

	m.applyLayout()
	return m, nil
}

// Init starts the cursor blink plus anything queued before the program ran.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startCmd)
}

// Update routes messages to the console and its surfaces.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	quit := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width != m.WinWidth || msg.Height != m.WinHeight {
			m.WinWidth = msg.Width
			m.WinHeight = msg.Height
			m.applyLayout()
		}
		m.startTyping()

	case timerFiredMsg:
		m.sched.fire(msg.id)

	case ContentReloadedMsg:
		m.reload(msg.Document)

	case tea.KeyPressMsg:
		var cmd tea.Cmd
		quit, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)

	case tea.MouseClickMsg:
		m.handleClick(msg.Mouse())

	case tea.MouseWheelMsg:
		switch msg.Mouse().Button {
		case tea.MouseWheelUp:
			m.scroll.ScrollBy(-wheelStep)
		case tea.MouseWheelDown:
			m.scroll.ScrollBy(wheelStep)
		}

	default:
		var cmd tea.Cmd
		m.input.model, cmd = m.input.model.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.syncHint()
	m.footer.InputFocused = m.input.Focused()
	cmds = append(cmds, m.input.takeCmds()...)
	cmds = append(cmds, m.sched.drain())
	if quit {
		return m, tea.Quit
	}
	return m, tea.Batch(cmds...)
}

// handleKey applies the routing rules: ctrl+c always quits; a focused prompt
// sees console keys first and then edits text; otherwise page shortcuts and
// scrolling apply.
func (m *Model) handleKey(msg tea.KeyPressMsg) (bool, tea.Cmd) {
	key := msg.String()
	m.LastKey = key
	if key == "ctrl+c" {
		return true, nil
	}

	if m.input.Focused() {
		if m.Console.HandleInputKey(console.Key(key)) {
			return false, nil
		}
		var cmd tea.Cmd
		m.input.model, cmd = m.input.model.Update(msg)
		return false, cmd
	}

	if m.Console.HandleGlobalKey(console.Key(key), false) {
		return false, nil
	}
	switch key {
	case "q":
		return true, nil
	case "up", "k":
		m.scroll.ScrollBy(-1)
	case "down", "j":
		m.scroll.ScrollBy(1)
	case "pgup":
		m.scroll.ScrollBy(-m.bodyHeight())
	case "pgdown", "space":
		m.scroll.ScrollBy(m.bodyHeight())
	case "home", "g":
		m.scroll.ScrollTo(0)
	case "end", "G":
		m.scroll.ScrollTo(m.maxOffset())
	}
	return false, nil
}

func (m *Model) handleClick(mouse tea.Mouse) {
	if mouse.Button != tea.MouseLeft {
		return
	}
	if m.Console.OverlayVisible() {
		m.Console.HandleOverlayClick(!m.overlayRect.contains(mouse.X, mouse.Y))
		return
	}
	m.Console.HandleRegionClick()
}

// syncHint recomputes the suggestion shown beside a new flash message.
func (m *Model) syncHint() {
	msg, ok := m.Console.Flash().Current()
	if !ok {
		m.hint = ""
		return
	}
	if msg.Generation == m.hintGen {
		return
	}
	m.hintGen = msg.Generation
	m.hint = ""
	hist := m.Console.History()
	if len(hist) == 0 {
		return
	}
	if s := m.Console.Suggest(hist[len(hist)-1]); len(s) > 0 {
		m.hint = fmt.Sprintf("did you mean '%s'?", s[0])
	}
}

func (m *Model) startTyping() {
	if m.typingStarted {
		return
	}
	m.typingStarted = true
	if !m.typingEnabled {
		return
	}
	if typing.Run(m.WinWidth, typingElements(m.header), m.sched, m.typingCfg) {
		m.log.V(1).Info("typing animation started", "elements", len(m.header))
	}
}

func (m *Model) reload(doc content.Document) {
	m.Doc = doc
	// Reloaded headers show in full; the animation only plays once.
	m.header = newHeaderElements(doc.Header)
	m.applyLayout()
	m.log.V(1).Info("content reloaded", "sections", len(doc.Sections))
}

// chromeHeight is the number of rows below the page: flash, prompt, footer
// and the optional debug bar.
func (m *Model) chromeHeight() int {
	h := 3
	if m.DebugMode {
		h++
	}
	return h
}

func (m *Model) bodyHeight() int {
	h := m.WinHeight - m.chromeHeight()
	if h < 1 {
		h = 1
	}
	return h
}

func (m *Model) contentWidth() int {
	w := m.WinWidth - 2
	if w > maxContentWidth {
		w = maxContentWidth
	}
	return w
}

func (m *Model) maxOffset() int {
	v := m.Page.Height() - m.bodyHeight()
	if v < 0 {
		return 0
	}
	return v
}

func (m *Model) applyLayout() {
	m.Page = content.Layout(m.Doc, m.contentWidth())
	m.anchors.rows = m.Page.Anchors
	m.scroll.Reclamp()
	m.input.model.SetWidth(max(m.WinWidth-runewidth.StringWidth(m.promptPrefix)-1, 1))
	m.help.SetWidth(m.WinWidth - 2)
	m.footer.SetWidth(m.WinWidth)
	m.debug.SetWidth(m.WinWidth)
}

// ScrollOffset is the current top row of the page viewport.
func (m *Model) ScrollOffset() int { return m.scroll.ScrollOffset() }

// InputValue is the prompt's current text.
func (m *Model) InputValue() string { return m.input.Value() }

// InputFocused reports whether the prompt has focus.
func (m *Model) InputFocused() bool { return m.input.Focused() }

// Hint is the suggestion shown next to the live flash message.
func (m *Model) Hint() string { return m.hint }

// PendingTimers is the number of scheduled callbacks that have not run yet.
func (m *Model) PendingTimers() int { return len(m.sched.pending) }

func (m *Model) debugInfo() DebugInfo {
	flash, _ := m.Console.Flash().Current()
	return DebugInfo{
		WinWidth:        m.WinWidth,
		WinHeight:       m.WinHeight,
		Offset:          m.scroll.offset,
		MaxOffset:       m.maxOffset(),
		Goal:            m.scroll.lastGoal,
		PageRows:        m.Page.Height(),
		History:         len(m.Console.History()),
		Cursor:          m.Console.Cursor(),
		OverlayVisible:  m.Console.OverlayVisible(),
		InputFocused:    m.input.Focused(),
		FlashGeneration: flash.Generation,
		PendingTimers:   len(m.sched.pending),
		LastKey:         strings.TrimSpace(m.LastKey),
	}
}
