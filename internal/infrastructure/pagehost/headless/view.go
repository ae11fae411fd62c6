package headless

import (
	"context"
	"sync"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/logging"
)

type navMode int

const (
	navPush navMode = iota
	navTraverse
)

// view is one headless page. Only the latest load may commit.
type view struct {
	host      *Host
	callbacks port.PageCallbacks

	mu        sync.Mutex
	back      []string
	forward   []string
	current   string
	title     string
	visible   bool
	destroyed bool
	gen       uint64
}

var _ port.PageView = (*view)(nil)

func (v *view) Load(ctx context.Context, url string) error {
	return v.start(ctx, url, navPush)
}

func (v *view) Reload(ctx context.Context) error {
	v.mu.Lock()
	target := v.current
	v.mu.Unlock()
	if target == "" {
		return nil
	}
	return v.start(ctx, target, navTraverse)
}

func (v *view) GoBack(ctx context.Context) error {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return port.ErrHostUnavailable
	}
	n := len(v.back)
	if n == 0 {
		v.mu.Unlock()
		return nil
	}
	target := v.back[n-1]
	v.back = v.back[:n-1]
	v.forward = append(v.forward, v.current)
	v.current = target
	v.mu.Unlock()

	return v.start(ctx, target, navTraverse)
}

func (v *view) GoForward(ctx context.Context) error {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return port.ErrHostUnavailable
	}
	n := len(v.forward)
	if n == 0 {
		v.mu.Unlock()
		return nil
	}
	target := v.forward[n-1]
	v.forward = v.forward[:n-1]
	v.back = append(v.back, v.current)
	v.current = target
	v.mu.Unlock()

	return v.start(ctx, target, navTraverse)
}

func (v *view) CanGoBack() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.destroyed && len(v.back) > 0
}

func (v *view) CanGoForward() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.destroyed && len(v.forward) > 0
}

func (v *view) CurrentURL() (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return "", port.ErrHostUnavailable
	}
	return v.current, nil
}

func (v *view) CurrentTitle() (string, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed {
		return "", port.ErrHostUnavailable
	}
	return v.title, nil
}

func (v *view) SetVisible(visible bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.visible = visible
}

func (v *view) Destroy() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.destroyed = true
	// Invalidate any in-flight load.
	v.gen++
}

func (v *view) start(ctx context.Context, target string, mode navMode) error {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return port.ErrHostUnavailable
	}
	v.gen++
	gen := v.gen
	v.mu.Unlock()

	ok := v.host.spawn(ctx, func(loadCtx context.Context) {
		page := v.host.fetch(loadCtx, target)
		v.commit(loadCtx, gen, mode, page)
	})
	if !ok {
		return port.ErrHostUnavailable
	}
	return nil
}

// commit applies a finished load and reports it, unless a newer load or
// Destroy superseded it.
func (v *view) commit(ctx context.Context, gen uint64, mode navMode, page fetchResult) {
	v.mu.Lock()
	if v.destroyed || gen != v.gen {
		v.mu.Unlock()
		return
	}
	if mode == navPush {
		if v.current != "" && v.current != page.url {
			v.back = append(v.back, v.current)
		}
		v.forward = nil
	}
	v.current = page.url
	v.title = page.title
	v.mu.Unlock()

	log := logging.FromContext(ctx)
	if page.err != nil {
		log.Warn().Err(page.err).Str("url", logging.TruncateURL(page.url, 60)).Msg("page load failed")
	}

	if v.callbacks.OnNavigate != nil {
		v.callbacks.OnNavigate(page.url)
	}
	if page.title != "" && v.callbacks.OnTitleChanged != nil {
		v.callbacks.OnTitleChanged(page.title)
	}
}
