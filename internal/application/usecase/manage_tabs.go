package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/domain/url"
	"github.com/bnema/atom/internal/logging"
)

// ErrTabNotFound is returned when an operation names a tab that is not open.
// Callers treat it as a no-op.
var ErrTabNotFound = errors.New("tab not found")

// IDGenerator returns a fresh tab id on every call.
type IDGenerator func() entity.TabID

// NewIDGenerator returns a monotonic generator salted per process.
func NewIDGenerator() IDGenerator {
	salt := uuid.New().String()[:8]
	var seq atomic.Uint64
	return func() entity.TabID {
		return entity.TabID(fmt.Sprintf("%s-%d", salt, seq.Add(1)))
	}
}

// VisitRecorder receives every committed address.
type VisitRecorder interface {
	RecordVisit(ctx context.Context, url string)
}

// TabSessionManager owns the open tabs and their page views.
// All methods must be called from the control thread; page host callbacks
// are re-posted through the dispatcher before they touch the session.
type TabSessionManager struct {
	session    *entity.Session
	factory    port.PageViewFactory
	formatter  *url.Formatter
	dispatcher port.Dispatcher
	visits     VisitRecorder
	ui         port.ShellUI
	newID      IDGenerator
}

// NewTabSessionManager creates a manager with an empty session.
// visits may be nil to disable history recording.
func NewTabSessionManager(
	factory port.PageViewFactory,
	formatter *url.Formatter,
	dispatcher port.Dispatcher,
	visits VisitRecorder,
) *TabSessionManager {
	if formatter == nil {
		formatter = url.NewFormatter("", "")
	}
	return &TabSessionManager{
		session:    entity.NewSession(),
		factory:    factory,
		formatter:  formatter,
		dispatcher: dispatcher,
		visits:     visits,
		newID:      NewIDGenerator(),
	}
}

// SetUI attaches the shell. Until then rendering is skipped.
func (m *TabSessionManager) SetUI(ui port.ShellUI) {
	m.ui = ui
}

// SetIDGenerator replaces the tab id source.
func (m *TabSessionManager) SetIDGenerator(gen IDGenerator) {
	m.newID = gen
}

// SetFormatter swaps the address formatter, e.g. after a search engine change.
func (m *TabSessionManager) SetFormatter(f *url.Formatter) {
	if f != nil {
		m.formatter = f
	}
}

// Formatter returns the formatter in use.
func (m *TabSessionManager) Formatter() *url.Formatter {
	return m.formatter
}

// NewTab opens a tab at the formatted address, makes it active and renders.
// An empty address opens the default start address.
func (m *TabSessionManager) NewTab(ctx context.Context, rawURL string) (entity.TabID, error) {
	target := m.formatter.Format(rawURL)
	id := m.newID()

	ctx = logging.WithTabID(ctx, string(id))
	log := logging.FromContext(ctx)

	view, err := m.factory.Create(ctx, target, m.callbacksFor(ctx, id))
	if err != nil {
		return "", fmt.Errorf("failed to create page view: %w", err)
	}

	m.session.Add(entity.NewTab(id, target, view))
	m.activate(ctx, id)
	m.render()

	log.Debug().Str("url", logging.TruncateURL(target, 60)).Int("tabs", m.session.Len()).Msg("tab opened")
	return id, nil
}

// SwitchTab makes id the visible tab and mirrors its address.
func (m *TabSessionManager) SwitchTab(ctx context.Context, id entity.TabID) error {
	if !m.activate(ctx, id) {
		return fmt.Errorf("switch to %q: %w", id, ErrTabNotFound)
	}
	m.render()
	return nil
}

// CycleTab activates the tab delta positions away from the active one, wrapping around.
func (m *TabSessionManager) CycleTab(ctx context.Context, delta int) error {
	n := m.session.Len()
	if n == 0 {
		return ErrTabNotFound
	}
	idx := m.session.Index(m.session.ActiveID())
	next := ((idx+delta)%n + n) % n
	return m.SwitchTab(ctx, m.session.At(next).ID)
}

// CloseTab destroys the tab's view and removes it. When the active tab closes,
// its left neighbour (or the new first tab) takes over; closing the last tab
// opens a fresh one at the default start address.
func (m *TabSessionManager) CloseTab(ctx context.Context, id entity.TabID) error {
	log := logging.FromContext(ctx)

	index, wasActive, ok := m.session.Remove(id)
	if !ok {
		return fmt.Errorf("close %q: %w", id, ErrTabNotFound)
	}
	log.Debug().Str("tab_id", string(id)).Int("index", index).Bool("was_active", wasActive).Msg("tab closed")

	if wasActive {
		if m.session.Len() == 0 {
			if _, err := m.NewTab(ctx, ""); err != nil {
				log.Error().Err(err).Msg("failed to open replacement tab")
				m.render()
			}
			return nil
		}
		m.activate(ctx, m.session.At(max(0, index-1)).ID)
	}

	m.render()
	return nil
}

// Active returns the active tab, or nil when no tab is open.
func (m *TabSessionManager) Active() *entity.Tab {
	return m.session.Active()
}

// Tabs returns the open tabs in display order.
func (m *TabSessionManager) Tabs() []*entity.Tab {
	return m.session.Tabs()
}

// Snapshot returns an immutable copy of the session.
func (m *TabSessionManager) Snapshot() entity.SessionSnapshot {
	return m.session.Snapshot()
}

// Validate checks the session invariants.
func (m *TabSessionManager) Validate() error {
	return m.session.Validate()
}

// Navigate loads the formatted input in the active tab.
func (m *TabSessionManager) Navigate(ctx context.Context, input string) error {
	view, tab := m.activeView()
	if view == nil {
		return ErrTabNotFound
	}

	target := m.formatter.Format(input)
	if err := view.Load(ctx, target); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("tab_id", string(tab.ID)).Msg("load request failed")
	}
	return nil
}

// GoBack navigates the active tab back when its history allows it.
func (m *TabSessionManager) GoBack(ctx context.Context) error {
	return m.withActiveView(ctx, "back", func(v port.PageView) error {
		if !v.CanGoBack() {
			return nil
		}
		return v.GoBack(ctx)
	})
}

// GoForward navigates the active tab forward when its history allows it.
func (m *TabSessionManager) GoForward(ctx context.Context) error {
	return m.withActiveView(ctx, "forward", func(v port.PageView) error {
		if !v.CanGoForward() {
			return nil
		}
		return v.GoForward(ctx)
	})
}

// Reload reloads the active tab.
func (m *TabSessionManager) Reload(ctx context.Context) error {
	return m.withActiveView(ctx, "reload", func(v port.PageView) error {
		return v.Reload(ctx)
	})
}

// HandleNavigation applies a page host event to the tab it came from.
// Events from tabs closed in the meantime are dropped.
func (m *TabSessionManager) HandleNavigation(ctx context.Context, ev port.NavigationEvent) {
	log := logging.FromContext(ctx)

	tab := m.session.Find(ev.TabID)
	if tab == nil {
		log.Debug().Str("tab_id", string(ev.TabID)).Str("kind", ev.Kind.String()).Msg("dropping event for closed tab")
		return
	}

	switch ev.Kind {
	case port.NavigationURLChanged:
		if ev.Value == "" {
			return
		}
		tab.URL = ev.Value
		if tab.ID == m.session.ActiveID() && m.ui != nil {
			m.ui.SetAddress(ev.Value)
		}
		if m.visits != nil {
			m.visits.RecordVisit(ctx, ev.Value)
		}
	case port.NavigationTitleChanged:
		tab.Title = ev.Value
	default:
		return
	}

	m.render()
}

// Shutdown destroys every view and closes the page host.
func (m *TabSessionManager) Shutdown(ctx context.Context) error {
	for _, tab := range m.session.Tabs() {
		m.session.Remove(tab.ID)
	}
	if err := m.factory.Close(); err != nil {
		return fmt.Errorf("failed to close page host: %w", err)
	}
	logging.FromContext(ctx).Debug().Msg("tab session shut down")
	return nil
}

func (m *TabSessionManager) callbacksFor(ctx context.Context, id entity.TabID) port.PageCallbacks {
	ctx = context.WithoutCancel(ctx)
	post := func(kind port.NavigationKind, value string) {
		ev := port.NavigationEvent{TabID: id, Kind: kind, Value: value}
		m.dispatcher.Post(func() { m.HandleNavigation(ctx, ev) })
	}
	return port.PageCallbacks{
		OnNavigate:     func(u string) { post(port.NavigationURLChanged, u) },
		OnTitleChanged: func(title string) { post(port.NavigationTitleChanged, title) },
	}
}

func (m *TabSessionManager) activate(ctx context.Context, id entity.TabID) bool {
	if !m.session.Activate(id) {
		return false
	}
	if m.ui != nil {
		m.ui.SetAddress(m.addressOf(ctx, m.session.Find(id)))
	}
	return true
}

// addressOf asks the view for its address, falling back to the cached one
// when the view cannot answer or has not committed anything yet.
func (m *TabSessionManager) addressOf(ctx context.Context, tab *entity.Tab) string {
	view, ok := tab.View.(port.PageView)
	if !ok {
		return tab.URL
	}
	current, err := view.CurrentURL()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("tab_id", string(tab.ID)).Msg("address read failed, using cached url")
		return tab.URL
	}
	if current == "" {
		return tab.URL
	}
	return current
}

func (m *TabSessionManager) activeView() (port.PageView, *entity.Tab) {
	tab := m.session.Active()
	if tab == nil {
		return nil, nil
	}
	view, ok := tab.View.(port.PageView)
	if !ok {
		return nil, tab
	}
	return view, tab
}

func (m *TabSessionManager) withActiveView(ctx context.Context, op string, fn func(port.PageView) error) error {
	view, tab := m.activeView()
	if view == nil {
		return ErrTabNotFound
	}
	if err := fn(view); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("tab_id", string(tab.ID)).Str("op", op).Msg("navigation request failed")
	}
	return nil
}

func (m *TabSessionManager) render() {
	if m.ui != nil {
		m.ui.Render(m.session.Snapshot())
	}
}
