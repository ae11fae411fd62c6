package usecase

import (
	"context"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/domain/repository"
	"github.com/bnema/atom/internal/logging"
)

// ManageThemeUseCase owns the process-wide theme.
type ManageThemeUseCase struct {
	repo     repository.ThemeRepository
	applier  port.ThemeApplier
	fallback entity.Theme
	current  entity.Theme
}

// NewManageThemeUseCase creates the theme use case. fallback is used until
// Load finds a stored theme. applier may be nil until the shell exists.
func NewManageThemeUseCase(repo repository.ThemeRepository, applier port.ThemeApplier, fallback entity.Theme) *ManageThemeUseCase {
	fallback = entity.ParseTheme(string(fallback))
	return &ManageThemeUseCase{
		repo:     repo,
		applier:  applier,
		fallback: fallback,
		current:  fallback,
	}
}

// SetApplier attaches the shell that renders the theme.
func (uc *ManageThemeUseCase) SetApplier(applier port.ThemeApplier) {
	uc.applier = applier
}

// Load reads the stored theme and applies it.
func (uc *ManageThemeUseCase) Load(ctx context.Context) entity.Theme {
	log := logging.FromContext(ctx)

	theme, found, err := uc.repo.Load(ctx)
	switch {
	case err != nil:
		log.Warn().Err(err).Str("fallback", uc.fallback.String()).Msg("failed to load theme")
		uc.current = uc.fallback
	case !found:
		uc.current = uc.fallback
	default:
		uc.current = theme
	}

	uc.apply()
	log.Debug().Str("theme", uc.current.String()).Msg("theme loaded")
	return uc.current
}

// Current returns the active theme.
func (uc *ManageThemeUseCase) Current() entity.Theme {
	return uc.current
}

// Toggle flips the theme, persists it and applies it.
func (uc *ManageThemeUseCase) Toggle(ctx context.Context) entity.Theme {
	uc.current = uc.current.Toggled()

	if err := uc.repo.Save(ctx, uc.current); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to persist theme")
	}

	uc.apply()
	return uc.current
}

func (uc *ManageThemeUseCase) apply() {
	if uc.applier != nil {
		uc.applier.ApplyTheme(uc.current)
	}
}
