package usecase_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	portmocks "github.com/bnema/atom/internal/application/port/mocks"
	"github.com/bnema/atom/internal/application/usecase"
	"github.com/bnema/atom/internal/domain/entity"
	repomocks "github.com/bnema/atom/internal/domain/repository/mocks"
)

func TestManageThemeUseCase_Load_StoredTheme(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockThemeRepository(t)
	applier := portmocks.NewMockThemeApplier(t)

	repo.EXPECT().Load(mock.Anything).Return(entity.ThemeLight, true, nil)
	applier.EXPECT().ApplyTheme(entity.ThemeLight).Once()

	uc := usecase.NewManageThemeUseCase(repo, applier, entity.ThemeDark)

	assert.Equal(t, entity.ThemeLight, uc.Load(ctx))
	assert.Equal(t, entity.ThemeLight, uc.Current())
}

func TestManageThemeUseCase_Load_FallbackWhenMissingOrBroken(t *testing.T) {
	tests := []struct {
		name  string
		found bool
		err   error
	}{
		{name: "missing", found: false},
		{name: "read error", err: errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			repo := repomocks.NewMockThemeRepository(t)
			repo.EXPECT().Load(mock.Anything).Return(entity.Theme(""), tt.found, tt.err)

			uc := usecase.NewManageThemeUseCase(repo, nil, entity.ThemeDark)
			assert.Equal(t, entity.ThemeDark, uc.Load(ctx))
		})
	}
}

func TestManageThemeUseCase_ToggleIsInvolution(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockThemeRepository(t)
	applier := portmocks.NewMockThemeApplier(t)

	repo.EXPECT().Save(mock.Anything, entity.ThemeLight).Return(nil).Once()
	repo.EXPECT().Save(mock.Anything, entity.ThemeDark).Return(nil).Once()
	applier.EXPECT().ApplyTheme(entity.ThemeLight).Once()
	applier.EXPECT().ApplyTheme(entity.ThemeDark).Once()

	uc := usecase.NewManageThemeUseCase(repo, applier, entity.ThemeDark)

	assert.Equal(t, entity.ThemeLight, uc.Toggle(ctx))
	assert.Equal(t, entity.ThemeDark, uc.Toggle(ctx))
}

func TestManageThemeUseCase_ToggleSurvivesSaveError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockThemeRepository(t)
	repo.EXPECT().Save(mock.Anything, entity.ThemeLight).Return(errors.New("read-only"))

	uc := usecase.NewManageThemeUseCase(repo, nil, entity.ThemeDark)

	assert.Equal(t, entity.ThemeLight, uc.Toggle(ctx))
	assert.Equal(t, entity.ThemeLight, uc.Current())
}
