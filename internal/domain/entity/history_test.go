package entity_test

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/atom/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrependHistory_MostRecentFirst(t *testing.T) {
	var entries []entity.HistoryEntry
	entries = entity.PrependHistory(entries, entity.HistoryEntry{URL: "https://one.test"}, 0)
	entries = entity.PrependHistory(entries, entity.HistoryEntry{URL: "https://two.test"}, 0)

	require.Len(t, entries, 2)
	assert.Equal(t, "https://two.test", entries[0].URL)
	assert.Equal(t, "https://one.test", entries[1].URL)
}

func TestPrependHistory_EvictsOldestPastCap(t *testing.T) {
	var entries []entity.HistoryEntry
	for i := 1; i <= entity.HistoryCap+1; i++ {
		entries = entity.PrependHistory(entries, entity.HistoryEntry{URL: fmt.Sprintf("https://%d.test", i)}, entity.HistoryCap)
	}

	require.Len(t, entries, entity.HistoryCap)
	assert.Equal(t, "https://201.test", entries[0].URL)
	assert.Equal(t, "https://2.test", entries[len(entries)-1].URL, "entry #1 is evicted")
}

func TestPrependHistory_LimitNeverExceedsCap(t *testing.T) {
	var entries []entity.HistoryEntry
	for i := 0; i < entity.HistoryCap+10; i++ {
		entries = entity.PrependHistory(entries, entity.HistoryEntry{URL: "https://x.test"}, 10000)
	}
	assert.Len(t, entries, entity.HistoryCap)
}

func TestPrependHistory_SmallerLimit(t *testing.T) {
	var entries []entity.HistoryEntry
	for i := 0; i < 5; i++ {
		entries = entity.PrependHistory(entries, entity.HistoryEntry{URL: "https://x.test"}, 3)
	}
	assert.Len(t, entries, 3)
}

func TestHistoryEntry_JSONUsesEpochMillis(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	data, err := json.Marshal(entity.HistoryEntry{URL: "https://x.io", Timestamp: ts})
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://x.io","ts":1700000000123}`, string(data))

	var decoded entity.HistoryEntry
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "https://x.io", decoded.URL)
	assert.True(t, decoded.Timestamp.Equal(ts))
}

func TestTheme(t *testing.T) {
	assert.Equal(t, entity.ThemeLight, entity.ThemeDark.Toggled())
	assert.Equal(t, entity.ThemeDark, entity.ThemeLight.Toggled())
	assert.Equal(t, entity.ThemeDark, entity.ParseTheme(""))
	assert.Equal(t, entity.ThemeDark, entity.ParseTheme("solarized"))
	assert.Equal(t, entity.ThemeLight, entity.ParseTheme("light"))
}

func TestNewBookmark_DefaultsNameToURL(t *testing.T) {
	assert.Equal(t, entity.Bookmark{Name: "https://x.io", URL: "https://x.io"}, entity.NewBookmark("", "https://x.io"))
	assert.Equal(t, entity.Bookmark{Name: "X", URL: "https://x.io"}, entity.NewBookmark("X", "https://x.io"))
}
