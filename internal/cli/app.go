// Package cli wires atom's components for the command line.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/application/usecase"
	"github.com/bnema/atom/internal/cli/styles"
	"github.com/bnema/atom/internal/domain/build"
	"github.com/bnema/atom/internal/domain/repository"
	"github.com/bnema/atom/internal/infrastructure/config"
	"github.com/bnema/atom/internal/infrastructure/persistence/kvstore"
	"github.com/bnema/atom/internal/infrastructure/persistence/memory"
	"github.com/bnema/atom/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/atom/internal/logging"
)

// Options selects how the app is assembled.
type Options struct {
	// Private keeps bookmarks, history and theme in memory for this run.
	Private bool
	// Interactive runs the terminal shell, so logs go to the file only.
	Interactive bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Private   bool

	Store     port.KeyValueStore
	Bookmarks repository.BookmarkRepository
	History   repository.HistoryRepository
	Themes    repository.ThemeRepository

	// Use cases
	Data *usecase.BrowsingDataSync

	db         *sqlite.LazyDB
	ctx        context.Context
	logCleanup func()
}

// NewApp loads config, builds the logger and assembles the side-store.
// The database is opened lazily on first use.
func NewApp(ctx context.Context, opts Options) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger, logCleanup, logErr := newLogger(cfg, opts.Interactive)
	ctx = logging.WithContext(ctx, logger)
	if logErr != nil {
		logger.Warn().Err(logErr).Msg("file logging unavailable")
	}

	var (
		store port.KeyValueStore
		db    *sqlite.LazyDB
	)
	if opts.Private {
		store = memory.NewKeyValueStore()
		logger.Info().Msg("private mode, nothing will be persisted")
	} else {
		db = sqlite.NewLazyDB(cfg.Database.Path)
		store = sqlite.NewLazyKeyValueStore(db)
	}

	bookmarks := kvstore.NewBookmarkRepository(store)
	history := kvstore.NewHistoryRepository(store)

	return &App{
		Config:     cfg,
		Manager:    mgr,
		Theme:      styles.NewTheme(cfg),
		Private:    opts.Private,
		Store:      store,
		Bookmarks:  bookmarks,
		History:    history,
		Themes:     kvstore.NewThemeRepository(store),
		Data:       usecase.NewBrowsingDataSync(bookmarks, history, cfg.History.MaxEntries),
		db:         db,
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// OpenStore opens the database now so a broken side-store fails the
// command instead of being logged and skipped.
func (a *App) OpenStore() error {
	if a.db == nil {
		return nil
	}
	if _, err := a.db.DB(a.ctx); err != nil {
		return fmt.Errorf("open database %s: %w", a.db.Path(), err)
	}
	return nil
}

// SchemaVersion returns the side-store migration version. Private mode has
// no database and reports ok=false.
func (a *App) SchemaVersion() (version int64, ok bool, err error) {
	if a.db == nil {
		return 0, false, nil
	}
	db, err := a.db.DB(a.ctx)
	if err != nil {
		return 0, false, fmt.Errorf("open database %s: %w", a.db.Path(), err)
	}
	version, err = sqlite.GetMigrationStatus(a.ctx, db)
	if err != nil {
		return 0, false, fmt.Errorf("read schema version: %w", err)
	}
	return version, true, nil
}

// LoadData opens the store and loads bookmarks and history.
func (a *App) LoadData() error {
	if err := a.OpenStore(); err != nil {
		return err
	}
	a.Data.Load(a.ctx)
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// newLogger logs to the rotating file while the shell owns the terminal,
// and to stderr for one-shot commands. One-shot commands stay at warn
// unless ATOM_LOG_LEVEL asks for more.
func newLogger(cfg *config.Config, interactive bool) (zerolog.Logger, func(), error) {
	level := logging.ParseLevel(cfg.Logging.Level)
	if !interactive && os.Getenv("ATOM_LOG_LEVEL") == "" && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}

	return logging.NewWithFile(
		logging.Config{Level: level, Format: cfg.Logging.Format, TimeFormat: "15:04:05"},
		logging.FileConfig{
			Enabled:       interactive && cfg.Logging.EnableFileLog,
			Dir:           cfg.Logging.LogDir,
			MaxSizeMB:     cfg.Logging.MaxSizeMB,
			MaxBackups:    cfg.Logging.MaxBackups,
			MaxAgeDays:    cfg.Logging.MaxAgeDays,
			WriteToStderr: !interactive,
		},
	)
}
