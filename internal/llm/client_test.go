package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	type fields struct {
		Title string `json:"title"`
	}

	t.Run("plain object", func(t *testing.T) {
		var out fields
		require.NoError(t, ExtractJSON(`{"title":"HD226"}`, &out))
		assert.Equal(t, "HD226", out.Title)
	})

	t.Run("fenced object", func(t *testing.T) {
		var out fields
		raw := "```json\n{\"title\":\"HD226\"}\n```"
		require.NoError(t, ExtractJSON(raw, &out))
		assert.Equal(t, "HD226", out.Title)
	})

	t.Run("fence without language tag", func(t *testing.T) {
		var out fields
		raw := "```\n{\"title\":\"HD226\"}\n```"
		require.NoError(t, ExtractJSON(raw, &out))
		assert.Equal(t, "HD226", out.Title)
	})

	t.Run("not JSON at all fails with excerpt", func(t *testing.T) {
		var out fields
		err := ExtractJSON("Omlouvám se, ale nemohu vygenerovat popis.", &out)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Omlouvám se")
	})
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short", Excerpt("short", 10))
	long := Excerpt("aaaaaaaaaaaaaaaaaaaa", 10)
	assert.Equal(t, "aaaaaaaaaa...", long)
	assert.Equal(t, "a b", Excerpt("a\nb", 10))
}
