package definition_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariaml/ariaml-go/pkg/definition"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("keeps insertion order, unicode and slashes", func(t *testing.T) {
		t.Parallel()
		tree := definition.Pairs(
			"name", "Café & co",
			"url", "https://example.com/a/b",
		)

		got, err := definition.Encode(tree, 0)
		require.NoError(t, err)
		assert.Equal(t, "{\n    \"name\": \"Café & co\",\n    \"url\": \"https://example.com/a/b\"\n}", got)
	})

	t.Run("indents every line with tabs", func(t *testing.T) {
		t.Parallel()
		tree := definition.Pairs("name", "X")

		got, err := definition.Encode(tree, 2)
		require.NoError(t, err)
		assert.Equal(t, "\t\t{\n\t\t    \"name\": \"X\"\n\t\t}", got)
	})

	t.Run("nested trees and lists", func(t *testing.T) {
		t.Parallel()
		tree := definition.New()
		tree.Set("@context", []any{"https://schema.org", "https://ariaml.com/ns/"})
		tree.Set("author.name", "Ada")

		got, err := definition.Encode(tree, 0)
		require.NoError(t, err)
		assert.Equal(t, `{
    "@context": [
        "https://schema.org",
        "https://ariaml.com/ns/"
    ],
    "author": {
        "name": "Ada"
    }
}`, got)
	})

	t.Run("cannot close the script element", func(t *testing.T) {
		t.Parallel()
		tree := definition.Pairs("description", "</script><script>alert(1)</script>")

		got, err := definition.Encode(tree, 0)
		require.NoError(t, err)
		assert.NotContains(t, got, "</script")
		assert.Contains(t, got, `<\/script>`)

		var decoded map[string]string
		require.NoError(t, json.Unmarshal([]byte(got), &decoded))
		assert.Equal(t, "</script><script>alert(1)</script>", decoded["description"])
	})

	t.Run("empty tree", func(t *testing.T) {
		t.Parallel()
		got, err := definition.Encode(definition.New(), 1)
		require.NoError(t, err)
		assert.Equal(t, "\t{}", got)
	})
}

func TestTree_MarshalJSON(t *testing.T) {
	t.Parallel()

	tree := definition.Pairs("z", 1, "a", definition.Pairs("y", true, "b", nil))
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	assert.Equal(t, `{"z":1,"a":{"y":true,"b":null}}`, string(data))
}
