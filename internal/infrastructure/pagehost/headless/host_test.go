package headless_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/atom/internal/application/port"
	"github.com/bnema/atom/internal/infrastructure/pagehost/headless"
	"github.com/bnema/atom/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// recorder collects callback values from host goroutines.
type recorder struct {
	mu     sync.Mutex
	urls   []string
	titles []string
	navs   chan string
}

func newRecorder() *recorder {
	return &recorder{navs: make(chan string, 16)}
}

func (r *recorder) callbacks() port.PageCallbacks {
	return port.PageCallbacks{
		OnNavigate: func(u string) {
			r.mu.Lock()
			r.urls = append(r.urls, u)
			r.mu.Unlock()
			r.navs <- u
		},
		OnTitleChanged: func(title string) {
			r.mu.Lock()
			r.titles = append(r.titles, title)
			r.mu.Unlock()
		},
	}
}

func (r *recorder) waitNav(t *testing.T) string {
	t.Helper()
	select {
	case u := <-r.navs:
		return u
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for navigation")
		return ""
	}
}

func (r *recorder) lastTitle() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.titles) == 0 {
		return ""
	}
	return r.titles[len(r.titles)-1]
}

func (r *recorder) eventuallyTitle(t *testing.T, want string) {
	t.Helper()
	assert.Eventually(t, func() bool { return r.lastTitle() == want }, 2*time.Second, 10*time.Millisecond)
}

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	page := func(title string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			fmt.Fprintf(w, "<html><head><title>\n  %s \n</title></head><body>hi</body></html>", title)
		}
	}
	mux.HandleFunc("/one", page("Page One"))
	mux.HandleFunc("/two", page("Page Two"))
	mux.HandleFunc("/old", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/two", http.StatusFound)
	})
	mux.HandleFunc("/plain", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("<title>not a title</title>"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHost_LoadReportsAddressAndTitle(t *testing.T) {
	ctx := testCtx()
	srv := newSite(t)
	host := headless.New(headless.Options{Client: srv.Client()})
	t.Cleanup(func() { _ = host.Close() })

	rec := newRecorder()
	view, err := host.Create(ctx, srv.URL+"/one", rec.callbacks())
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/one", rec.waitNav(t))
	rec.eventuallyTitle(t, "Page One")

	current, err := view.CurrentURL()
	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/one", current)

	title, err := view.CurrentTitle()
	require.NoError(t, err)
	assert.Equal(t, "Page One", title)
}

func TestHost_RedirectReportsFinalAddress(t *testing.T) {
	ctx := testCtx()
	srv := newSite(t)
	host := headless.New(headless.Options{Client: srv.Client()})
	t.Cleanup(func() { _ = host.Close() })

	rec := newRecorder()
	_, err := host.Create(ctx, srv.URL+"/old", rec.callbacks())
	require.NoError(t, err)

	assert.Equal(t, srv.URL+"/two", rec.waitNav(t))
	rec.eventuallyTitle(t, "Page Two")
}

func TestHost_NonHTMLHasNoTitle(t *testing.T) {
	ctx := testCtx()
	srv := newSite(t)
	host := headless.New(headless.Options{Client: srv.Client()})
	t.Cleanup(func() { _ = host.Close() })

	rec := newRecorder()
	_, err := host.Create(ctx, srv.URL+"/plain", rec.callbacks())
	require.NoError(t, err)

	rec.waitNav(t)
	assert.Empty(t, rec.lastTitle())
}

func TestHost_BackAndForward(t *testing.T) {
	ctx := testCtx()
	srv := newSite(t)
	host := headless.New(headless.Options{Client: srv.Client()})
	t.Cleanup(func() { _ = host.Close() })

	rec := newRecorder()
	view, err := host.Create(ctx, srv.URL+"/one", rec.callbacks())
	require.NoError(t, err)
	rec.waitNav(t)
	assert.False(t, view.CanGoBack())

	require.NoError(t, view.Load(ctx, srv.URL+"/two"))
	rec.waitNav(t)
	assert.True(t, view.CanGoBack())
	assert.False(t, view.CanGoForward())

	require.NoError(t, view.GoBack(ctx))
	assert.Equal(t, srv.URL+"/one", rec.waitNav(t))
	assert.True(t, view.CanGoForward())
	assert.False(t, view.CanGoBack())

	require.NoError(t, view.GoForward(ctx))
	assert.Equal(t, srv.URL+"/two", rec.waitNav(t))
	assert.False(t, view.CanGoForward())

	require.NoError(t, view.Reload(ctx))
	assert.Equal(t, srv.URL+"/two", rec.waitNav(t))
	assert.True(t, view.CanGoBack())
}

func TestHost_DataAndAboutAddresses(t *testing.T) {
	ctx := testCtx()
	host := headless.New(headless.Options{})
	t.Cleanup(func() { _ = host.Close() })

	tests := []struct {
		name      string
		address   string
		wantTitle string
	}{
		{"about blank", "about:blank", ""},
		{"html data", "data:text/html,<title>Inline%20Doc</title>", "Inline Doc"},
		{"base64 data", "data:text/html;base64,PHRpdGxlPkI2NDwvdGl0bGU+", "B64"},
		{"plain data", "data:text/plain,<title>x</title>", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			_, err := host.Create(ctx, tt.address, rec.callbacks())
			require.NoError(t, err)

			assert.Equal(t, tt.address, rec.waitNav(t))
			rec.eventuallyTitle(t, tt.wantTitle)
		})
	}
}

func TestHost_DestroyedViewIsUnavailable(t *testing.T) {
	ctx := testCtx()
	host := headless.New(headless.Options{})
	t.Cleanup(func() { _ = host.Close() })

	view, err := host.Create(ctx, "", newRecorder().callbacks())
	require.NoError(t, err)

	view.Destroy()

	_, err = view.CurrentURL()
	assert.ErrorIs(t, err, port.ErrHostUnavailable)
	assert.ErrorIs(t, view.Load(ctx, "about:blank"), port.ErrHostUnavailable)
	assert.False(t, view.CanGoBack())
}

func TestHost_CreateAfterClose(t *testing.T) {
	ctx := testCtx()
	host := headless.New(headless.Options{})
	require.NoError(t, host.Close())
	require.NoError(t, host.Close())

	_, err := host.Create(ctx, "about:blank", newRecorder().callbacks())
	assert.ErrorIs(t, err, port.ErrHostUnavailable)
}

func TestHost_FailedLoadStillCommitsAddress(t *testing.T) {
	ctx := testCtx()
	host := headless.New(headless.Options{Timeout: time.Second})
	t.Cleanup(func() { _ = host.Close() })

	rec := newRecorder()
	_, err := host.Create(ctx, "ftp://files.example.com/readme", rec.callbacks())
	require.NoError(t, err)

	got := rec.waitNav(t)
	assert.True(t, strings.HasPrefix(got, "ftp://"))
}
