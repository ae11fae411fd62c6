package chromium

// navHistory mirrors the page's session history position from main-frame
// commits, since Playwright does not expose can-go-back/forward.
type navHistory struct {
	index  int
	length int
	// pending counts commits caused by traversal or reload, which move
	// within the existing history instead of pushing a new entry.
	pending int
}

func newNavHistory() navHistory {
	return navHistory{index: -1}
}

func (h *navHistory) committed() {
	if h.pending > 0 {
		h.pending--
		return
	}
	h.index++
	h.length = h.index + 1
}

func (h *navHistory) expectReload() {
	if h.index >= 0 {
		h.pending++
	}
}

func (h *navHistory) back() bool {
	if !h.canGoBack() {
		return false
	}
	h.index--
	h.pending++
	return true
}

func (h *navHistory) forward() bool {
	if !h.canGoForward() {
		return false
	}
	h.index++
	h.pending++
	return true
}

func (h *navHistory) canGoBack() bool    { return h.index > 0 }
func (h *navHistory) canGoForward() bool { return h.index < h.length-1 }
