package entity_test

import (
	"testing"

	"github.com/bnema/atom/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeView struct {
	visible   bool
	destroyed int
}

func (v *fakeView) SetVisible(visible bool) { v.visible = visible }
func (v *fakeView) Destroy()                { v.destroyed++ }

func newSession(ids ...string) (*entity.Session, map[entity.TabID]*fakeView) {
	s := entity.NewSession()
	views := make(map[entity.TabID]*fakeView, len(ids))
	for _, id := range ids {
		v := &fakeView{}
		views[entity.TabID(id)] = v
		s.Add(entity.NewTab(entity.TabID(id), "https://"+id+".test", v))
	}
	return s, views
}

func TestSession_EmptyIsValid(t *testing.T) {
	s := entity.NewSession()
	require.NoError(t, s.Validate())
	assert.Nil(t, s.Active())
	assert.Equal(t, entity.TabID(""), s.ActiveID())
}

func TestSession_ActivateShowsOnlyTarget(t *testing.T) {
	s, views := newSession("a", "b", "c")

	require.True(t, s.Activate("b"))
	require.NoError(t, s.Validate())

	assert.Equal(t, entity.TabID("b"), s.ActiveID())
	assert.True(t, views["b"].visible)
	assert.False(t, views["a"].visible)
	assert.False(t, views["c"].visible)

	require.True(t, s.Activate("c"))
	require.NoError(t, s.Validate())
	assert.False(t, views["b"].visible)
	assert.True(t, views["c"].visible)
}

func TestSession_ActivateUnknownChangesNothing(t *testing.T) {
	s, _ := newSession("a", "b")
	require.True(t, s.Activate("a"))

	assert.False(t, s.Activate("zzz"))
	assert.Equal(t, entity.TabID("a"), s.ActiveID())
	require.NoError(t, s.Validate())
}

func TestSession_RemoveDestroysViewAndClearsActive(t *testing.T) {
	s, views := newSession("a", "b", "c")
	require.True(t, s.Activate("b"))

	index, wasActive, ok := s.Remove("b")
	require.True(t, ok)
	assert.Equal(t, 1, index)
	assert.True(t, wasActive)
	assert.Equal(t, 1, views["b"].destroyed)
	assert.Equal(t, entity.TabID(""), s.ActiveID())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, -1, s.Index("b"))

	_, _, ok = s.Remove("b")
	assert.False(t, ok)
	assert.Equal(t, 1, views["b"].destroyed, "view must be released exactly once")
}

func TestSession_RemoveInactiveKeepsActive(t *testing.T) {
	s, _ := newSession("a", "b")
	require.True(t, s.Activate("a"))

	_, wasActive, ok := s.Remove("b")
	require.True(t, ok)
	assert.False(t, wasActive)
	assert.Equal(t, entity.TabID("a"), s.ActiveID())
	require.NoError(t, s.Validate())
}

func TestSession_ValidateDetectsBrokenInvariants(t *testing.T) {
	s, _ := newSession("a", "b")
	require.ErrorIs(t, s.Validate(), entity.ErrInvalidSession, "no active tab")

	require.True(t, s.Activate("a"))
	s.At(1).Active = true
	require.ErrorIs(t, s.Validate(), entity.ErrInvalidSession, "two active tabs")
}

func TestSession_SnapshotIsDetached(t *testing.T) {
	s, _ := newSession("a")
	require.True(t, s.Activate("a"))

	snap := s.Snapshot()
	s.At(0).Title = "Changed"

	require.Len(t, snap.Tabs, 1)
	assert.Equal(t, entity.DefaultTabTitle, snap.Tabs[0].Title)
	active, ok := snap.Active()
	require.True(t, ok)
	assert.Equal(t, entity.TabID("a"), active.ID)
}

func TestTab_Label(t *testing.T) {
	tab := entity.NewTab("x", "https://x.io", nil)
	assert.Equal(t, entity.DefaultTabTitle, tab.Label())

	tab.Title = ""
	assert.Equal(t, "https://x.io", tab.Label())
}
