// Package shell is the terminal front-end. Its Bubble Tea model draws the
// session and turns keystrokes into tab manager and command calls.
package shell

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/atom/internal/application/usecase"
	"github.com/bnema/atom/internal/cli/styles"
	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/logging"
	"github.com/bnema/atom/internal/ui/mainloop"
	"github.com/bnema/atom/internal/ui/view"
)

type mode int

const (
	modeBrowse mode = iota
	modePalette
	modeAddress
	modeBookmarkName
	modeBookmarks
	modeHistory
)

func (md mode) String() string {
	switch md {
	case modePalette:
		return "palette"
	case modeAddress:
		return "address"
	case modeBookmarkName:
		return "bookmark"
	case modeBookmarks:
		return "bookmarks"
	case modeHistory:
		return "history"
	default:
		return "browse"
	}
}

// projectKey coalesces projection requests within one drain.
const projectKey = "project"

// Deps wires the shell to the application layer.
type Deps struct {
	Tabs        *usecase.TabSessionManager
	Data        *usecase.BrowsingDataSync
	Theme       *usecase.ManageThemeUseCase
	Commands    *usecase.CommandInterpreter
	Loop        *mainloop.Loop
	Themes      styles.Themes
	HistoryRows int
}

// loopReadyMsg wakes Update when tasks were posted to the loop.
type loopReadyMsg struct{}

// Model is the shell's Bubble Tea model. It also serves as the manager's
// port.ShellUI and the theme use case's port.ThemeApplier; every call into it
// happens on the Bubble Tea goroutine, inside Update or before the program starts.
type Model struct {
	ctx  context.Context
	deps Deps

	keys   styles.ShellKeyMap
	help   help.Model
	style  *styles.Theme
	theme  entity.Theme
	mode   mode
	status string
	failed bool

	palette textinput.Model
	address textinput.Model
	name    textinput.Model

	snapshot    entity.SessionSnapshot
	addressText string
	rendering   view.Rendering
	selected    int
	showHelp    bool

	coalescer *mainloop.Coalescer
	width     int
	height    int
	quitting  bool
}

// New creates the shell model.
func New(ctx context.Context, deps Deps) *Model {
	if deps.Loop == nil {
		deps.Loop = mainloop.NewLoop()
	}
	if deps.Themes.Dark == nil || deps.Themes.Light == nil {
		deps.Themes = styles.NewThemes(nil)
	}
	if deps.HistoryRows <= 0 {
		deps.HistoryRows = view.DefaultHistoryRows
	}

	theme := entity.ThemeDark
	if deps.Theme != nil {
		theme = deps.Theme.Current()
	}
	style := deps.Themes.For(theme)

	m := &Model{
		ctx:     logging.WithComponent(ctx, "shell"),
		deps:    deps,
		keys:    styles.DefaultShellKeyMap(),
		help:    styles.NewStyledHelp(style),
		style:   style,
		theme:   theme,
		palette: styles.NewCommandInput(style),
		address: styles.NewURLInput(style),
		name:    styles.NewNameInput(style),
		width:   80,
		height:  24,
	}
	m.coalescer = mainloop.NewCoalescer(deps.Loop.Post)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	m.deps.Loop.Drain()
	return tea.Batch(textinput.Blink, m.waitForLoop())
}

// Update implements tea.Model. Queued loop tasks run at the end of every
// update so the view reflects them.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
	case loopReadyMsg:
		cmd = m.waitForLoop()
	case tea.KeyMsg:
		cmd = m.handleKey(msg)
	default:
		cmd = m.updateFocusedInput(msg)
	}

	m.deps.Loop.Drain()
	return m, cmd
}

// Render implements port.ShellUI.
func (m *Model) Render(snapshot entity.SessionSnapshot) {
	m.snapshot = snapshot
	m.scheduleProject()
}

// SetAddress implements port.ShellUI. The address field is left alone
// while the user is typing into it.
func (m *Model) SetAddress(address string) {
	m.addressText = address
	if m.mode != modeAddress {
		m.address.SetValue(address)
	}
	m.scheduleProject()
}

// ApplyTheme implements port.ThemeApplier.
func (m *Model) ApplyTheme(theme entity.Theme) {
	m.theme = entity.ParseTheme(string(theme))
	m.style = m.deps.Themes.For(m.theme)
	styles.ApplyHelpTheme(&m.help, m.style)
	styles.ApplyInputTheme(&m.palette, m.style)
	styles.ApplyInputTheme(&m.address, m.style)
	styles.ApplyInputTheme(&m.name, m.style)
	m.scheduleProject()
}

// SetThemes swaps the palettes, for config reloads, and re-applies the
// current theme.
func (m *Model) SetThemes(themes styles.Themes) {
	if themes.Dark == nil || themes.Light == nil {
		return
	}
	m.deps.Themes = themes
	m.ApplyTheme(m.theme)
}

// Close stops coalesced work. Call it after the program exits.
func (m *Model) Close() {
	m.coalescer.Destroy()
}

func (m *Model) waitForLoop() tea.Cmd {
	ready, done := m.deps.Loop.Ready(), m.ctx.Done()
	return func() tea.Msg {
		select {
		case <-ready:
			return loopReadyMsg{}
		case <-done:
			return tea.Quit()
		}
	}
}

func (m *Model) scheduleProject() {
	m.coalescer.Post(projectKey, m.project)
}

func (m *Model) project() {
	state := view.State{
		Session:     m.snapshot,
		Theme:       m.theme,
		Address:     m.addressText,
		HistoryRows: m.deps.HistoryRows,
	}
	if m.deps.Data != nil {
		state.Bookmarks = m.deps.Data.Bookmarks()
		state.History = m.deps.Data.History()
	}
	m.rendering = view.Project(state)
	m.clampSelection()
}

func (m *Model) listLen() int {
	switch m.mode {
	case modeBookmarks:
		return len(m.rendering.Bookmarks)
	case modeHistory:
		return len(m.rendering.History)
	default:
		return 0
	}
}

func (m *Model) clampSelection() {
	if n := m.listLen(); m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modePalette:
		m.palette, cmd = m.palette.Update(msg)
	case modeAddress:
		m.address, cmd = m.address.Update(msg)
	case modeBookmarkName:
		m.name, cmd = m.name.Update(msg)
	}
	return cmd
}

func (m *Model) setStatus(text string) {
	m.status, m.failed = text, false
}

func (m *Model) setError(err error) {
	m.status, m.failed = err.Error(), true
}

// onHome reports whether the active tab shows the start address.
func (m *Model) onHome() bool {
	active := m.rendering.ActiveURL
	if active == "" {
		return true
	}
	start := m.deps.Tabs.Formatter().DefaultStartURL()
	return trimSlash(active) == trimSlash(start)
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
