package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusNotAcceptable)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusNotAcceptable, rw.Status())
	assert.Equal(t, http.StatusNotAcceptable, w.Code)
	assert.True(t, rw.Written())
}

func TestResponseWriter_Write(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)
	assert.False(t, rw.Written())

	n, err := rw.Write([]byte("<aria-ml>"))
	require.NoError(t, err)

	assert.Equal(t, 9, n)
	assert.Equal(t, int64(9), rw.Size())
	assert.Equal(t, http.StatusOK, rw.Status())
	assert.Equal(t, "<aria-ml>", w.Body.String())
}

func TestResponseWriter_Reuse(t *testing.T) {
	t.Parallel()

	rw := NewResponseWriter(httptest.NewRecorder())
	assert.Same(t, rw, NewResponseWriter(rw))
}

func TestResponseWriter_OnBeforeWrite(t *testing.T) {
	t.Parallel()

	t.Run("hooks run in order before the status line", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		rw := NewResponseWriter(w)

		var order []string
		rw.OnBeforeWrite(func() {
			order = append(order, "vary")
			rw.Header().Set("Vary", "Accept")
		})
		rw.OnBeforeWrite(func() { order = append(order, "cache") })

		rw.WriteHeader(http.StatusOK)

		assert.Equal(t, []string{"vary", "cache"}, order)
		assert.Equal(t, "Accept", w.Header().Get("Vary"))
	})

	t.Run("hooks run once", func(t *testing.T) {
		t.Parallel()

		rw := NewResponseWriter(httptest.NewRecorder())
		calls := 0
		rw.OnBeforeWrite(func() { calls++ })

		_, _ = rw.Write([]byte("a"))
		_, _ = rw.Write([]byte("b"))
		rw.WriteHeader(http.StatusTeapot)

		assert.Equal(t, 1, calls)
	})

	t.Run("late hooks never run", func(t *testing.T) {
		t.Parallel()

		rw := NewResponseWriter(httptest.NewRecorder())
		rw.WriteHeader(http.StatusOK)

		called := false
		rw.OnBeforeWrite(func() { called = true })
		_, _ = rw.Write([]byte("x"))

		assert.False(t, called)
	})
}

func TestResponseWriter_Flush(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)
	rw.Flush()

	assert.True(t, w.Flushed)
	assert.True(t, rw.Written())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)
	assert.Equal(t, http.ResponseWriter(w), rw.Unwrap())
}
