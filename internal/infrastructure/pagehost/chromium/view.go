package chromium

import (
	"context"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/bnema/atom/internal/application/port"
)

type view struct {
	host      *Host
	page      playwright.Page
	callbacks port.PageCallbacks

	mu        sync.Mutex
	nav       navHistory
	destroyed bool
}

var _ port.PageView = (*view)(nil)

func newView(h *Host, page playwright.Page, callbacks port.PageCallbacks) *view {
	v := &view{host: h, page: page, callbacks: callbacks, nav: newNavHistory()}

	page.OnFrameNavigated(func(frame playwright.Frame) {
		if frame != page.MainFrame() {
			return
		}
		v.mu.Lock()
		if v.destroyed {
			v.mu.Unlock()
			return
		}
		v.nav.committed()
		v.mu.Unlock()

		if callbacks.OnNavigate != nil {
			callbacks.OnNavigate(frame.URL())
		}
	})

	page.OnLoad(func(p playwright.Page) {
		title, err := p.Title()
		if err != nil || callbacks.OnTitleChanged == nil {
			return
		}
		callbacks.OnTitleChanged(title)
	})

	return v
}

func (v *view) Load(ctx context.Context, url string) error {
	if err := v.checkAlive(); err != nil {
		return err
	}
	return v.host.async(ctx, "goto", func() error {
		_, err := v.page.Goto(url)
		return err
	})
}

func (v *view) Reload(ctx context.Context) error {
	if err := v.checkAlive(); err != nil {
		return err
	}
	v.mu.Lock()
	v.nav.expectReload()
	v.mu.Unlock()
	return v.host.async(ctx, "reload", func() error {
		_, err := v.page.Reload()
		return err
	})
}

func (v *view) GoBack(ctx context.Context) error {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return port.ErrHostUnavailable
	}
	if !v.nav.back() {
		v.mu.Unlock()
		return nil
	}
	v.mu.Unlock()

	return v.host.async(ctx, "back", func() error {
		_, err := v.page.GoBack()
		return err
	})
}

func (v *view) GoForward(ctx context.Context) error {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return port.ErrHostUnavailable
	}
	if !v.nav.forward() {
		v.mu.Unlock()
		return nil
	}
	v.mu.Unlock()

	return v.host.async(ctx, "forward", func() error {
		_, err := v.page.GoForward()
		return err
	})
}

func (v *view) CanGoBack() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.destroyed && v.nav.canGoBack()
}

func (v *view) CanGoForward() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !v.destroyed && v.nav.canGoForward()
}

func (v *view) CurrentURL() (string, error) {
	if err := v.checkAlive(); err != nil {
		return "", err
	}
	u := v.page.URL()
	if u == "about:blank" {
		return "", nil
	}
	return u, nil
}

func (v *view) CurrentTitle() (string, error) {
	if err := v.checkAlive(); err != nil {
		return "", err
	}
	return v.page.Title()
}

func (v *view) SetVisible(visible bool) {
	if !visible || v.checkAlive() != nil {
		return
	}
	_ = v.host.async(context.Background(), "bring_to_front", v.page.BringToFront)
}

func (v *view) Destroy() {
	v.mu.Lock()
	if v.destroyed {
		v.mu.Unlock()
		return
	}
	v.destroyed = true
	v.mu.Unlock()

	_ = v.host.async(context.Background(), "close", func() error {
		return v.page.Close()
	})
}

func (v *view) checkAlive() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.destroyed || v.page.IsClosed() {
		return port.ErrHostUnavailable
	}
	return nil
}
