package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	id   string
	name string
}

func itemKey(it item) string { return it.id }

func items(ids ...string) []item {
	out := make([]item, len(ids))
	for i, id := range ids {
		out[i] = item{id: id}
	}
	return out
}

func selectedIDs(s *Set[item]) []string {
	var ids []string
	for _, it := range s.Items() {
		ids = append(ids, it.id)
	}
	return ids
}

func TestSetSelectIdempotent(t *testing.T) {
	s := NewSet(itemKey)

	s.Select(item{id: "a"})
	s.Select(item{id: "a"})

	assert.Equal(t, []string{"a"}, selectedIDs(s))
}

func TestSetUniquenessByKey(t *testing.T) {
	s := NewSet(itemKey)

	// Distinct instances, same track-by value
	s.Select(item{id: "a", name: "first"})
	s.Select(item{id: "a", name: "second"})
	s.Select(item{id: "b"})

	require.Equal(t, 2, s.Len())
	assert.Equal(t, "first", s.Items()[0].name, "first instance wins")
}

func TestSetDeselect(t *testing.T) {
	s := NewSet(itemKey)
	s.Select(item{id: "a"})
	s.Select(item{id: "b"})
	s.Select(item{id: "c"})

	s.Deselect(item{id: "b"})
	assert.Equal(t, []string{"a", "c"}, selectedIDs(s))

	// Deselecting something absent is a no-op
	s.Deselect(item{id: "zzz"})
	assert.Equal(t, []string{"a", "c"}, selectedIDs(s))
}

func TestSetIsSelectedIgnoresInstanceIdentity(t *testing.T) {
	s := NewSet(itemKey)
	s.Select(item{id: "a", name: "original"})

	assert.True(t, s.IsSelected(item{id: "a", name: "refreshed"}))
	assert.False(t, s.IsSelected(item{id: "b"}))
}

func TestSetDeselectAllExcept(t *testing.T) {
	full := items("a", "b", "c", "d", "e")

	t.Run("NoException_ClearsEverything", func(t *testing.T) {
		s := NewSet(itemKey)
		s.Select(item{id: "a"})
		s.Select(item{id: "c"})

		s.DeselectAllExcept(full)
		assert.Zero(t, s.Len())
	})

	t.Run("SingleException_KeepsOnlyThatItem", func(t *testing.T) {
		s := NewSet(itemKey)
		s.Select(item{id: "a"})
		s.Select(item{id: "e"})

		s.DeselectAllExcept(full, item{id: "c"})
		assert.Equal(t, []string{"c"}, selectedIDs(s))
	})

	t.Run("Pair_SelectsInclusiveSpan", func(t *testing.T) {
		s := NewSet(itemKey)
		s.Select(item{id: "a"})

		s.DeselectAllExcept(full, item{id: "b"}, item{id: "d"})
		assert.ElementsMatch(t, []string{"b", "c", "d"}, selectedIDs(s))
	})

	t.Run("Pair_OrderOfBoundariesIrrelevant", func(t *testing.T) {
		s := NewSet(itemKey)

		s.DeselectAllExcept(full, item{id: "d"}, item{id: "b"})
		assert.ElementsMatch(t, []string{"b", "c", "d"}, selectedIDs(s))
	})

	t.Run("Pair_OneBoundaryMissing_FallsBackToMatchedItem", func(t *testing.T) {
		s := NewSet(itemKey)

		s.DeselectAllExcept(full, item{id: "c"}, item{id: "missing"})
		assert.Equal(t, []string{"c"}, selectedIDs(s))
	})

	t.Run("Pair_BothBoundariesMissing_SelectsNothing", func(t *testing.T) {
		s := NewSet(itemKey)
		s.Select(item{id: "a"})

		s.DeselectAllExcept(full, item{id: "x"}, item{id: "y"})
		assert.Zero(t, s.Len())
	})

	t.Run("Pair_SameBoundaryTwice_SelectsSingleItem", func(t *testing.T) {
		s := NewSet(itemKey)

		s.DeselectAllExcept(full, item{id: "c"}, item{id: "c"})
		assert.Equal(t, []string{"c"}, selectedIDs(s))
	})
}
