package usecase_test

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/domain/entity"
	"github.com/bnema/atom/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// queueDispatcher collects posted tasks until the test drains them.
type queueDispatcher struct {
	mu    sync.Mutex
	tasks []func()
}

func (d *queueDispatcher) Post(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tasks = append(d.tasks, fn)
}

func (d *queueDispatcher) drain() int {
	ran := 0
	for {
		d.mu.Lock()
		if len(d.tasks) == 0 {
			d.mu.Unlock()
			return ran
		}
		fn := d.tasks[0]
		d.tasks = d.tasks[1:]
		d.mu.Unlock()
		fn()
		ran++
	}
}

// fakeView is an in-memory page view.
type fakeView struct {
	callbacks  port.PageCallbacks
	loads      []string
	back       []string
	forward    []string
	current    string
	title      string
	visible    bool
	destroyed  bool
	reloads    int
	addressErr error
}

func (v *fakeView) Load(_ context.Context, url string) error {
	if v.destroyed {
		return port.ErrHostUnavailable
	}
	v.loads = append(v.loads, url)
	return nil
}

func (v *fakeView) Reload(context.Context) error {
	v.reloads++
	return nil
}

func (v *fakeView) GoBack(context.Context) error {
	n := len(v.back)
	v.forward = append(v.forward, v.current)
	v.current = v.back[n-1]
	v.back = v.back[:n-1]
	return nil
}

func (v *fakeView) GoForward(context.Context) error {
	n := len(v.forward)
	v.back = append(v.back, v.current)
	v.current = v.forward[n-1]
	v.forward = v.forward[:n-1]
	return nil
}

func (v *fakeView) CanGoBack() bool    { return len(v.back) > 0 }
func (v *fakeView) CanGoForward() bool { return len(v.forward) > 0 }

func (v *fakeView) CurrentURL() (string, error) {
	if v.addressErr != nil {
		return "", v.addressErr
	}
	return v.current, nil
}

func (v *fakeView) CurrentTitle() (string, error) { return v.title, nil }
func (v *fakeView) SetVisible(visible bool)       { v.visible = visible }
func (v *fakeView) Destroy()                      { v.destroyed = true }

// commit simulates the host committing url and reporting it.
func (v *fakeView) commit(url string) {
	if v.current != "" {
		v.back = append(v.back, v.current)
	}
	v.current = url
	v.forward = nil
	v.callbacks.OnNavigate(url)
}

// fakeHost creates fakeViews and remembers them in creation order.
type fakeHost struct {
	views   []*fakeView
	created []string
	closed  bool
	failOn  int
}

func (h *fakeHost) Create(_ context.Context, initialURL string, callbacks port.PageCallbacks) (port.PageView, error) {
	if h.failOn > 0 && len(h.created)+1 == h.failOn {
		h.created = append(h.created, initialURL)
		return nil, port.ErrHostUnavailable
	}
	h.created = append(h.created, initialURL)
	v := &fakeView{callbacks: callbacks}
	h.views = append(h.views, v)
	return v, nil
}

func (h *fakeHost) Close() error {
	h.closed = true
	return nil
}

// recordingUI keeps the last render and address.
type recordingUI struct {
	renders int
	last    entity.SessionSnapshot
	address string
}

func (u *recordingUI) Render(s entity.SessionSnapshot) {
	u.renders++
	u.last = s
}

func (u *recordingUI) SetAddress(text string) { u.address = text }

func sequentialIDs() func() entity.TabID {
	n := 0
	return func() entity.TabID {
		n++
		return entity.TabID(fmt.Sprintf("t%d", n))
	}
}
