package shell

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/atom/internal/application/usecase"
	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/logging"
)

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Global shortcuts work in every mode.
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return tea.Quit
	case key.Matches(msg, m.keys.Palette):
		if m.mode == modePalette {
			return m.enter(modeBrowse)
		}
		return m.enter(modePalette)
	case key.Matches(msg, m.keys.NewTab):
		m.enter(modeBrowse)
		m.newTab("")
		return nil
	case key.Matches(msg, m.keys.CloseTab):
		m.closeActive()
		return nil
	case key.Matches(msg, m.keys.Address):
		return m.enter(modeAddress)
	}

	switch m.mode {
	case modePalette:
		return m.handlePaletteKey(msg)
	case modeAddress:
		return m.handleAddressKey(msg)
	case modeBookmarkName:
		return m.handleNameKey(msg)
	case modeBookmarks, modeHistory:
		return m.handleListKey(msg)
	default:
		return m.handleBrowseKey(msg)
	}
}

// enter switches mode and focuses the input that belongs to it.
func (m *Model) enter(next mode) tea.Cmd {
	m.palette.Blur()
	m.address.Blur()
	m.name.Blur()

	m.mode = next
	m.selected = 0

	switch next {
	case modePalette:
		m.palette.SetValue("")
		return m.palette.Focus()
	case modeAddress:
		m.address.SetValue(m.addressText)
		m.address.CursorEnd()
		return m.address.Focus()
	case modeBookmarkName:
		m.name.SetValue("")
		return m.name.Focus()
	case modeBrowse:
		m.address.SetValue(m.addressText)
	case modeBookmarks, modeHistory:
		m.scheduleProject()
	}
	return nil
}

func (m *Model) handlePaletteKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.enter(modeBrowse)
	case key.Matches(msg, m.keys.Open):
		input := m.palette.Value()
		m.enter(modeBrowse)
		return m.runCommand(input)
	}

	var cmd tea.Cmd
	m.palette, cmd = m.palette.Update(msg)
	return cmd
}

func (m *Model) runCommand(input string) tea.Cmd {
	result, err := m.deps.Commands.Execute(m.ctx, input)
	if err != nil {
		m.setError(err)
		return nil
	}

	switch result.Signal {
	case usecase.SignalBookmarks:
		return m.enter(modeBookmarks)
	case usecase.SignalHistory:
		return m.enter(modeHistory)
	case usecase.SignalThemeChanged:
		m.setStatus("theme: " + result.Theme.String())
	case usecase.SignalTabOpened:
		m.setStatus("")
	}
	return nil
}

func (m *Model) handleAddressKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.enter(modeBrowse)
	case key.Matches(msg, m.keys.Open):
		input := m.address.Value()
		m.enter(modeBrowse)
		m.logErr("navigate", m.deps.Tabs.Navigate(m.ctx, input))
		return nil
	}

	var cmd tea.Cmd
	m.address, cmd = m.address.Update(msg)
	return cmd
}

func (m *Model) handleNameKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.enter(modeBrowse)
	case key.Matches(msg, m.keys.Open):
		name := m.name.Value()
		m.enter(modeBrowse)
		m.bookmarkActive(name)
		return nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	n := m.listLen()

	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.enter(modeBrowse)
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < n-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Open):
		if n == 0 {
			return nil
		}
		target := m.selectedURL()
		m.enter(modeBrowse)
		m.newTab(target)
	case key.Matches(msg, m.keys.Delete) && m.mode == modeBookmarks:
		if n == 0 {
			return nil
		}
		if err := m.deps.Data.RemoveBookmark(m.ctx, m.rendering.Bookmarks[m.selected].Index); err != nil {
			m.setError(err)
		}
		m.scheduleProject()
	case key.Matches(msg, m.keys.Clear) && m.mode == modeHistory:
		m.deps.Data.ClearHistory(m.ctx)
		m.setStatus("history cleared")
		m.scheduleProject()
	}
	return nil
}

func (m *Model) selectedURL() string {
	switch m.mode {
	case modeBookmarks:
		return m.rendering.Bookmarks[m.selected].URL
	case modeHistory:
		return m.rendering.History[m.selected].URL
	default:
		return ""
	}
}

func (m *Model) handleBrowseKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.logErr("back", m.deps.Tabs.GoBack(m.ctx))
	case key.Matches(msg, m.keys.Forward):
		m.logErr("forward", m.deps.Tabs.GoForward(m.ctx))
	case key.Matches(msg, m.keys.Reload):
		m.logErr("reload", m.deps.Tabs.Reload(m.ctx))
	case key.Matches(msg, m.keys.Bookmark):
		return m.enter(modeBookmarkName)
	case key.Matches(msg, m.keys.NextTab):
		m.logErr("next tab", m.deps.Tabs.CycleTab(m.ctx, 1))
	case key.Matches(msg, m.keys.PrevTab):
		m.logErr("previous tab", m.deps.Tabs.CycleTab(m.ctx, -1))
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.Favorites):
		if m.onHome() && len(msg.Runes) == 1 {
			m.openFavorite(int(msg.Runes[0] - '1'))
		}
	}
	return nil
}

func (m *Model) openFavorite(index int) {
	if index < 0 || index >= len(Favorites) {
		return
	}
	m.logErr("favorite", m.deps.Tabs.Navigate(m.ctx, Favorites[index].URL))
}

func (m *Model) newTab(rawURL string) {
	if _, err := m.deps.Tabs.NewTab(m.ctx, rawURL); err != nil {
		m.setError(err)
	}
}

func (m *Model) closeActive() {
	tab := m.deps.Tabs.Active()
	if tab == nil {
		return
	}
	m.logErr("close tab", m.deps.Tabs.CloseTab(m.ctx, tab.ID))
}

// bookmarkActive saves the active page. A blank name falls back to the
// page title, then to the address.
func (m *Model) bookmarkActive(name string) {
	tab, ok := m.snapshot.Active()
	if !ok {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" && tab.Title != entity.DefaultTabTitle {
		name = tab.Title
	}

	bm, err := m.deps.Data.AddBookmark(m.ctx, name, tab.URL)
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("bookmarked " + bm.Name)
	m.scheduleProject()
}

// logErr records failures the user does not need to see. A missing tab is
// a silent no-op.
func (m *Model) logErr(op string, err error) {
	if err == nil || errors.Is(err, usecase.ErrTabNotFound) {
		return
	}
	logging.FromContext(m.ctx).Warn().Err(err).Str("op", op).Msg("shell action failed")
}
