package document_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ariaml/ariaml-go/pkg/document"
)

func TestLedger_Claim(t *testing.T) {
	t.Parallel()

	t.Run("claims each key once", func(t *testing.T) {
		t.Parallel()
		l := document.NewLedger()

		assert.Equal(t, []string{"a", "b"}, l.Claim(document.Definition, []string{"a", "b"}))
		assert.Equal(t, []string{"c"}, l.Claim(document.Definition, []string{"b", "c", "a"}))
		assert.Empty(t, l.Claim(document.Definition, []string{"a", "b", "c"}))
		assert.Equal(t, 3, l.Len(document.Definition))
	})

	t.Run("duplicates within a request collapse", func(t *testing.T) {
		t.Parallel()
		l := document.NewLedger()

		assert.Equal(t, []string{"x"}, l.Claim(document.Appearance, []string{"x", "x", "x"}))
	})

	t.Run("namespaces are independent", func(t *testing.T) {
		t.Parallel()
		l := document.NewLedger()
		l.Claim(document.Definition, []string{"k"})

		assert.True(t, l.Consumed(document.Definition, "k"))
		assert.False(t, l.Consumed(document.Appearance, "k"))
		assert.Equal(t, []string{"k"}, l.Claim(document.Appearance, []string{"k"}))
	})

	t.Run("later claims never reset earlier ones", func(t *testing.T) {
		t.Parallel()
		l := document.NewLedger()
		l.Claim(document.Definition, []string{"a"})
		l.Claim(document.Definition, []string{"b"})

		assert.True(t, l.Consumed(document.Definition, "a"))
		assert.True(t, l.Consumed(document.Definition, "b"))
	})
}
