package internal_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaml/ariaml-go/internal"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

func TestMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	trace := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	app := internal.New(
		internal.WithMiddleware(trace("global-1"), trace("global-2")),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				order = append(order, "handler")
				return c.NoContent(http.StatusNoContent)
			}, trace("route-1"), trace("route-2"))
		})),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"global-1", "global-2", "route-1", "route-2", "handler"}, order)
}

func TestMiddlewareValuesReachHandler(t *testing.T) {
	t.Parallel()

	type key struct{}
	app := internal.New(
		internal.WithMiddleware(func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				c.Set(key{}, "req-1")
				return next(c)
			}
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				return c.String(http.StatusOK, c.Get(key{}).(string))
			})
		})),
	)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, "req-1", w.Body.String())
}

func TestCustomHandlers(t *testing.T) {
	t.Parallel()

	app := internal.New(
		internal.WithNotFoundHandler(func(c internal.Context) error {
			return c.String(http.StatusNotFound, "no page at "+c.Request().URL.Path)
		}),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			return c.String(http.StatusTeapot, "handled: "+err.Error())
		}),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.Route("/pages", func(r internal.Router) {
				r.GET("/broken", func(internal.Context) error {
					return errors.New("boom")
				})
			})
		})),
	)

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "no page at /missing", w.Body.String())
	})

	t.Run("error handler", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/pages/broken", nil))
		assert.Equal(t, http.StatusTeapot, w.Code)
		assert.Equal(t, "handled: boom", w.Body.String())
	})
}

func TestHealthChecks(t *testing.T) {
	t.Parallel()

	ready := false
	app := internal.New(internal.WithHealthChecks(
		internal.WithReadinessPath("/ready"),
		internal.WithReadinessCheck("pages", func(context.Context) error {
			if !ready {
				return errors.New("pages not loaded")
			}
			return nil
		}),
	))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	ready = true
	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestStaticFiles(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"public/ariaml/standalone.js": {Data: []byte("customElements.define()")},
	}
	app := internal.New(internal.WithStaticFiles("/static/", fsys, "public"))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/ariaml/standalone.js", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "customElements.define()", w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))

	w = httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/ariaml/", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRun(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routes(func(r internal.Router) {
		r.GET("/", func(c internal.Context) error {
			return c.String(http.StatusOK, "up")
		})
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan net.Addr, 1)
	var started, stopped bool
	done := make(chan error, 1)
	go func() {
		done <- app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.OnReady(func(a net.Addr) { addrCh <- a }),
			internal.StartupHook(func(context.Context) error { started = true; return nil }),
			internal.ShutdownHook(func(context.Context) error { stopped = true; return nil }),
			internal.ShutdownTimeout(time.Second),
		)
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "up", string(body))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.True(t, started)
	assert.True(t, stopped)
}

func TestRunStartupHookFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("pages dir missing")
	err := internal.New().Run("127.0.0.1:0",
		internal.StartupHook(func(context.Context) error { return boom }),
	)
	require.ErrorIs(t, err, boom)
}
