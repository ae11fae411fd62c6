// Package headless is a page host that fetches documents over HTTP without
// rendering them. It tracks addresses, titles and per-view history the way a
// real engine would report them.
package headless

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/logging"
)

const (
	defaultTimeout   = 15 * time.Second
	defaultUserAgent = "atom/1.0 (+headless)"
	maxBodyBytes     = 2 << 20
)

// Options configures the host.
type Options struct {
	// Client performs requests. Nil uses a client with Timeout.
	Client    *http.Client
	UserAgent string
	Timeout   time.Duration
}

// Host creates headless page views. Loads run on their own goroutines.
type Host struct {
	client    *http.Client
	userAgent string
	timeout   time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

var _ port.PageViewFactory = (*Host)(nil)

// New creates a host.
func New(opts Options) *Host {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: opts.Timeout}
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Host{
		client:    opts.Client,
		userAgent: opts.UserAgent,
		timeout:   opts.Timeout,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Create builds a view and starts loading initialURL.
func (h *Host) Create(ctx context.Context, initialURL string, callbacks port.PageCallbacks) (port.PageView, error) {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return nil, port.ErrHostUnavailable
	}

	v := &view{host: h, callbacks: callbacks}
	if initialURL != "" {
		if err := v.Load(ctx, initialURL); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Close cancels in-flight loads and waits for them to finish.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	h.cancel()
	h.wg.Wait()
	h.client.CloseIdleConnections()
	return nil
}

// spawn runs fn on a tracked goroutine unless the host is closed.
func (h *Host) spawn(ctx context.Context, fn func(ctx context.Context)) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}

	logger := logging.FromContext(ctx)
	loadCtx, cancel := context.WithTimeout(logging.WithContext(h.ctx, *logger), h.timeout)

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer cancel()
		fn(loadCtx)
	}()
	return true
}
