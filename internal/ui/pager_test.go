package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"multipick/internal/domain"
)

func TestRenderSelectionDocument(t *testing.T) {
	records, err := domain.ParseRecords([]byte(`[
		{"id": 1, "name": "alpha"},
		{"id": 2, "name": "beta"}
	]`))
	require.NoError(t, err)

	t.Run("EmptySelection", func(t *testing.T) {
		assert.Equal(t, "[]\n", renderSelectionDocument(nil, "selected"))
	})

	t.Run("StampsSelectedField", func(t *testing.T) {
		doc := renderSelectionDocument(records, "selected")
		require.True(t, gjson.Valid(doc))

		entries := gjson.Parse(doc).Array()
		require.Len(t, entries, 2)
		for _, e := range entries {
			assert.True(t, e.Get("selected").Bool())
		}
		// Selection order is preserved
		assert.Equal(t, "alpha", entries[0].Get("name").String())
		assert.Equal(t, "beta", entries[1].Get("name").String())
	})

	t.Run("NoFieldConfigured_RawRecords", func(t *testing.T) {
		doc := renderSelectionDocument(records[:1], "")
		entries := gjson.Parse(doc).Array()
		require.Len(t, entries, 1)
		assert.False(t, entries[0].Get("selected").Exists())
	})
}
