package cli

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/atom/internal/application/usecase"
	"github.com/bnema/atom/internal/cli/styles"
	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/domain/url"
	"github.com/bnema/atom/internal/infrastructure/config"
	"github.com/bnema/atom/internal/logging"
	"github.com/bnema/atom/internal/ui/mainloop"
	"github.com/bnema/atom/internal/ui/shell"
)

// Browser is the assembled interactive session.
type Browser struct {
	Tabs     *usecase.TabSessionManager
	Theme    *usecase.ManageThemeUseCase
	Commands *usecase.CommandInterpreter
	Shell    *shell.Model
	Loop     *mainloop.Loop
}

// NewBrowser wires the page host, use cases and shell together, loads the
// persisted state and opens the first tab at initialURL.
func NewBrowser(ctx context.Context, app *App, initialURL string) (*Browser, error) {
	if err := app.LoadData(); err != nil {
		return nil, err
	}

	host, err := NewPageHost(ctx, app.Config.PageHost)
	if err != nil {
		return nil, err
	}

	cfg := app.Config
	loop := mainloop.NewLoop()
	formatter := url.NewFormatter(cfg.DefaultStartURL, cfg.SearchEngine)

	tabs := usecase.NewTabSessionManager(host, formatter, loop, app.Data)
	theme := usecase.NewManageThemeUseCase(app.Themes, nil, entity.ParseTheme(cfg.Appearance.DefaultTheme))
	commands := usecase.NewCommandInterpreter(tabs, theme)

	model := shell.New(ctx, shell.Deps{
		Tabs:        tabs,
		Data:        app.Data,
		Theme:       theme,
		Commands:    commands,
		Loop:        loop,
		Themes:      styles.NewThemes(cfg),
		HistoryRows: cfg.History.DisplayLimit,
	})
	tabs.SetUI(model)
	theme.SetApplier(model)
	theme.Load(ctx)

	if _, err := tabs.NewTab(ctx, initialURL); err != nil {
		_ = host.Close()
		return nil, fmt.Errorf("open first tab: %w", err)
	}

	return &Browser{Tabs: tabs, Theme: theme, Commands: commands, Shell: model, Loop: loop}, nil
}

// ApplyConfig hands a reloaded config to the session. It must run on the loop.
func (b *Browser) ApplyConfig(cfg *config.Config) {
	b.Tabs.SetFormatter(url.NewFormatter(cfg.DefaultStartURL, cfg.SearchEngine))
	b.Shell.SetThemes(styles.NewThemes(cfg))
}

// Shutdown stops the loop and destroys every page view.
func (b *Browser) Shutdown(ctx context.Context) error {
	b.Shell.Close()
	b.Loop.Close()
	return b.Tabs.Shutdown(ctx)
}

// Browse runs the terminal shell until the user quits or ctx is cancelled.
// The config watcher runs next to it and feeds reloads through the loop.
func Browse(ctx context.Context, app *App, initialURL string) error {
	ctx = logging.WithComponent(ctx, "browse")
	log := logging.FromContext(ctx)

	browser, err := NewBrowser(ctx, app, initialURL)
	if err != nil {
		return err
	}
	defer func() {
		if err := browser.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.Warn().Err(err).Msg("shutdown failed")
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	app.Manager.OnConfigChange(func(cfg *config.Config) {
		browser.Loop.Post(func() { browser.ApplyConfig(cfg) })
	})
	g.Go(func() error {
		if err := app.Manager.Watch(gctx); err != nil {
			log.Warn().Err(err).Msg("config watcher stopped")
		}
		return nil
	})

	g.Go(func() error {
		defer cancel()
		program := tea.NewProgram(browser.Shell, tea.WithAltScreen(), tea.WithContext(gctx))
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
			return nil
		}
		return err
	})

	return g.Wait()
}
