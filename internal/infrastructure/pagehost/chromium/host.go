// Package chromium hosts page views in a Chromium instance driven by Playwright.
package chromium

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/logging"
)

const defaultTimeout = 30 * time.Second

// Options configures the Chromium host.
type Options struct {
	Headless  bool
	Timeout   time.Duration
	UserAgent string
	// SkipInstall assumes the driver and browser are already installed.
	SkipInstall bool
}

// Host owns one Playwright driver, one browser and one browser context.
// Every view is a page inside that context.
type Host struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	bctx    playwright.BrowserContext
	timeout time.Duration

	wg     sync.WaitGroup
	mu     sync.Mutex
	closed bool
}

var _ port.PageViewFactory = (*Host)(nil)

// New installs (unless skipped) and starts Playwright, then launches Chromium.
func New(ctx context.Context, opts Options) (*Host, error) {
	log := logging.FromContext(ctx)

	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	// Driver output would corrupt the terminal UI.
	runOpts := &playwright.RunOptions{
		Browsers: []string{"chromium"},
		Verbose:  false,
		Stdout:   io.Discard,
		Stderr:   io.Discard,
	}

	if !opts.SkipInstall {
		if err := playwright.Install(runOpts); err != nil {
			return nil, fmt.Errorf("failed to install playwright: %w", err)
		}
	}

	pw, err := playwright.Run(runOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: &opts.Headless,
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	contextOpts := playwright.BrowserNewContextOptions{}
	if opts.UserAgent != "" {
		contextOpts.UserAgent = playwright.String(opts.UserAgent)
	}
	bctx, err := browser.NewContext(contextOpts)
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}
	bctx.SetDefaultNavigationTimeout(float64(opts.Timeout.Milliseconds()))

	log.Info().Bool("headless", opts.Headless).Msg("chromium page host started")

	return &Host{pw: pw, browser: browser, bctx: bctx, timeout: opts.Timeout}, nil
}

// Create opens a page and starts loading initialURL.
func (h *Host) Create(ctx context.Context, initialURL string, callbacks port.PageCallbacks) (port.PageView, error) {
	h.mu.Lock()
	closed := h.closed
	h.mu.Unlock()
	if closed {
		return nil, port.ErrHostUnavailable
	}

	page, err := h.bctx.NewPage()
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	v := newView(h, page, callbacks)
	if initialURL != "" {
		if err := v.Load(ctx, initialURL); err != nil {
			_ = page.Close()
			return nil, err
		}
	}
	return v, nil
}

// Close waits for in-flight requests, then shuts the browser and driver down.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	h.mu.Unlock()

	var firstErr error
	if err := h.bctx.Close(); err != nil {
		firstErr = fmt.Errorf("failed to close context: %w", err)
	}
	h.wg.Wait()
	if err := h.browser.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to close browser: %w", err)
	}
	if err := h.pw.Stop(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to stop playwright: %w", err)
	}
	return firstErr
}

// async runs a blocking engine call off the control thread.
func (h *Host) async(ctx context.Context, op string, fn func() error) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return port.ErrHostUnavailable
	}

	log := logging.FromContext(ctx)
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		if err := fn(); err != nil {
			log.Warn().Err(err).Str("op", op).Msg("page request failed")
		}
	}()
	return nil
}
