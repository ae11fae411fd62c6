package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/atom/internal/application/usecase"
	"github.com/bnema/atom/internal/domain/command"
	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/domain/url"
	repomocks "github.com/bnema/atom/internal/domain/repository/mocks"
)

func newInterpreter(t *testing.T) (*usecase.CommandInterpreter, *tabsFixture, *repomocks.MockThemeRepository) {
	t.Helper()
	f := newTabsFixture()
	themeRepo := repomocks.NewMockThemeRepository(t)
	theme := usecase.NewManageThemeUseCase(themeRepo, nil, entity.ThemeDark)
	return usecase.NewCommandInterpreter(f.mgr, theme), f, themeRepo
}

func TestCommandInterpreter_OpenCreatesTabAtFormattedURL(t *testing.T) {
	ctx := testContext()
	ci, f, _ := newInterpreter(t)
	f.open(t, ctx, "")
	before := len(f.mgr.Tabs())

	res, err := ci.Execute(ctx, "open foo.com")
	require.NoError(t, err)

	tabs := f.mgr.Tabs()
	require.Len(t, tabs, before+1)
	assert.Equal(t, "https://foo.com", tabs[len(tabs)-1].URL)
	assert.Equal(t, res.TabID, f.mgr.Active().ID)
	assert.Equal(t, usecase.SignalTabOpened, res.Signal)
	assert.NoError(t, f.mgr.Validate())
}

func TestCommandInterpreter_NewTab(t *testing.T) {
	ctx := testContext()
	ci, f, _ := newInterpreter(t)

	res, err := ci.Execute(ctx, "new tab")
	require.NoError(t, err)

	assert.Equal(t, url.DefaultStartURL, f.mgr.Active().URL)
	assert.Equal(t, command.NewTab, res.Command.Kind)
}

func TestCommandInterpreter_NavigateFallback(t *testing.T) {
	ctx := testContext()
	ci, f, _ := newInterpreter(t)
	f.open(t, ctx, "")

	_, err := ci.Execute(ctx, "example.org")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://example.org"}, f.host.views[0].loads)
	assert.Len(t, f.mgr.Tabs(), 1)
}

func TestCommandInterpreter_ToggleTheme(t *testing.T) {
	ctx := testContext()
	ci, _, themeRepo := newInterpreter(t)
	themeRepo.EXPECT().Save(mock.Anything, entity.ThemeLight).Return(nil)

	res, err := ci.Execute(ctx, "toggle theme")
	require.NoError(t, err)

	assert.Equal(t, usecase.SignalThemeChanged, res.Signal)
	assert.Equal(t, entity.ThemeLight, res.Theme)
}

func TestCommandInterpreter_Signals(t *testing.T) {
	tests := []struct {
		input string
		want  usecase.Signal
	}{
		{"bookmarks", usecase.SignalBookmarks},
		{"history", usecase.SignalHistory},
		{"", usecase.SignalNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ctx := testContext()
			ci, f, _ := newInterpreter(t)

			res, err := ci.Execute(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Signal)
			assert.Empty(t, f.host.created)
		})
	}
}
