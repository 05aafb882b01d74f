package internal_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaml/ariaml-go/internal"
	"github.com/ariaml/ariaml-go/pkg/attr"
	"github.com/ariaml/ariaml-go/pkg/definition"
	"github.com/ariaml/ariaml-go/pkg/document"
	"github.com/ariaml/ariaml-go/pkg/negotiate"
	"github.com/ariaml/ariaml-go/pkg/respond"
)

// requestVia creates an App with the given options, registers fn at GET /
// and serves req through it.
func requestVia(t *testing.T, req *http.Request, opts []internal.Option, fn internal.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	opts = append(opts, internal.WithHandlers(&captureHandler{fn: fn}))
	app := internal.New(opts...)

	w := httptest.NewRecorder()
	app.ServeHTTP(w, req)
	return w
}

type captureHandler struct {
	fn internal.HandlerFunc
}

func (h *captureHandler) Routes(r internal.Router) {
	r.Page("/", h.fn)
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func TestContextImplementsContextInterface(t *testing.T) {
	t.Parallel()

	t.Run("Deadline delegates to request context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		req := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
		requestVia(t, req, nil, func(c internal.Context) error {
			deadline, ok := c.Deadline()
			require.True(t, ok)
			expected, _ := ctx.Deadline()
			require.Equal(t, expected, deadline)
			return nil
		})
	})

	t.Run("Set and Get round trip through Value", func(t *testing.T) {
		t.Parallel()

		type key struct{}
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		requestVia(t, req, nil, func(c internal.Context) error {
			c.Set(key{}, "lamp")
			require.Equal(t, "lamp", c.Get(key{}))
			require.Equal(t, "lamp", c.Value(key{}))
			return nil
		})
	})
}

func TestContextSignals(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/?page=2", nil)
	req.Header.Set(negotiate.HeaderAccept, "text/aria-ml-fragment")
	req.Header.Set(negotiate.HeaderNavCache, `["header", "footer"]`)

	requestVia(t, req, nil, func(c internal.Context) error {
		assert.True(t, c.ClientHasCache("footer"))
		assert.False(t, c.ClientHasCache("sidebar"))
		assert.Equal(t, "2", c.Query("page"))
		assert.Equal(t, "1", c.QueryDefault("size", "1"))

		d := c.Decision()
		assert.Equal(t, negotiate.ModeFragment, d.Mode)
		assert.Equal(t, http.StatusPartialContent, d.Status)
		return nil
	})
}

func TestRenderDocument(t *testing.T) {
	t.Parallel()

	product := func() *definition.Tree {
		return definition.Pairs(
			"@context", "https://schema.org",
			"@type", "Product",
			"name", "Lamp",
		)
	}

	handler := func(c internal.Context) error {
		doc := c.NewDocument(product())
		body := templ.Join(doc.DefinitionScript(nil, 1, "name"), text("<p>Lamp</p>"))
		return c.RenderDocument(doc, attr.Attrs{{Key: "id", Value: "root"}}, body)
	}

	t.Run("browser gets a full page", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(negotiate.HeaderAccept, "text/html,application/xhtml+xml")
		w := requestVia(t, req, nil, handler)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, respond.Vary, w.Header().Get("Vary"))
		assert.Equal(t, respond.CacheDocument, w.Header().Get("Cache-Control"))

		body := w.Body.String()
		assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>\n<html lang=\"en\" dir=\"ltr\">"))
		assert.Contains(t, body, `<aria-ml id="root">`)
		assert.Contains(t, body, "<p>Lamp</p></aria-ml>")
		assert.Contains(t, body, `<script src="ariaml/standalone.js"></script>`)
		assert.Equal(t, 1, strings.Count(body, `"name": "Lamp"`))
	})

	t.Run("fragment client gets the fragment root", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(negotiate.HeaderAccept, "text/aria-ml-fragment")
		w := requestVia(t, req, nil, handler)

		assert.Equal(t, http.StatusPartialContent, w.Code)
		assert.Equal(t, "text/aria-ml-fragment; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, respond.CacheFragment, w.Header().Get("Cache-Control"))

		body := w.Body.String()
		assert.NotContains(t, body, "<!DOCTYPE html>")
		assert.Contains(t, body, `<aria-ml-fragment id="root">`)
		assert.True(t, strings.HasSuffix(body, "</script>"))
	})

	t.Run("HEAD gets headers only", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodHead, "/", nil)
		req.Header.Set(negotiate.HeaderAccept, "text/aria-ml")
		w := requestVia(t, req, nil, handler)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/aria-ml; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Empty(t, w.Body.String())
	})

	t.Run("nil body renders an empty root", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name   string
			accept string
			status int
			root   string
		}{
			{name: "native", accept: "text/aria-ml", status: http.StatusOK, root: "aria-ml"},
			{name: "fragment", accept: "text/aria-ml-fragment", status: http.StatusPartialContent, root: "aria-ml-fragment"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.Header.Set(negotiate.HeaderAccept, tt.accept)
				w := requestVia(t, req, nil, func(c internal.Context) error {
					return c.RenderDocument(c.NewDocument(product()), nil, nil)
				})

				assert.Equal(t, tt.status, w.Code)
				body := w.Body.String()
				assert.Contains(t, body, "<"+tt.root+">")
				assert.Contains(t, body, "</"+tt.root+">")
			})
		}
	})

	t.Run("app document options apply", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		opts := []internal.Option{internal.WithDocumentOptions(document.WithPolyfill("/static/aria.js"))}
		w := requestVia(t, req, opts, handler)

		assert.Contains(t, w.Body.String(), `<script src="/static/aria.js"></script>`)
	})
}

func TestNewDocumentErrorPageVaries(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := requestVia(t, req, nil, func(c internal.Context) error {
		c.NewDocument(definition.New())
		return errors.New("catalog unavailable")
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, respond.Vary, w.Header().Get("Vary"))
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestContextResponses(t *testing.T) {
	t.Parallel()

	t.Run("JSON", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) error {
			return c.JSON(http.StatusCreated, map[string]string{"name": "Lamp"})
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"name":"Lamp"}`, w.Body.String())
	})

	t.Run("Render", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) error {
			return c.Render(http.StatusOK, text("<p>hi</p>"))
		})
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "<p>hi</p>", w.Body.String())
	})

	t.Run("Redirect", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) error {
			return c.Redirect(http.StatusSeeOther, "/products")
		})
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/products", w.Header().Get("Location"))
	})

	t.Run("HTTPError uses its status", func(t *testing.T) {
		t.Parallel()

		w := requestVia(t, httptest.NewRequest(http.MethodGet, "/", nil), nil, func(c internal.Context) error {
			return c.Error(http.StatusNotFound, "no such product")
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "no such product", w.Body.String())
	})
}
