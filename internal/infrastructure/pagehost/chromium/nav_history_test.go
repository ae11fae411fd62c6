package chromium

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavHistory(t *testing.T) {
	h := newNavHistory()
	assert.False(t, h.canGoBack())
	assert.False(t, h.canGoForward())

	h.committed() // a
	h.committed() // b
	h.committed() // c
	assert.True(t, h.canGoBack())
	assert.False(t, h.canGoForward())

	assert.True(t, h.back())
	h.committed() // back to b
	assert.True(t, h.canGoForward())
	assert.Equal(t, 1, h.index)

	h.expectReload()
	h.committed()
	assert.Equal(t, 1, h.index)
	assert.Equal(t, 3, h.length)

	h.committed() // new page d truncates forward history
	assert.False(t, h.canGoForward())
	assert.Equal(t, 3, h.length)

	assert.True(t, h.back())
	assert.True(t, h.back())
	assert.False(t, h.back())
	assert.True(t, h.forward())
}

func TestNavHistory_ReloadBeforeFirstCommit(t *testing.T) {
	h := newNavHistory()
	h.expectReload()
	h.committed()
	assert.Equal(t, 0, h.index)
	assert.Equal(t, 1, h.length)
}
