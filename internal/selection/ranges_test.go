package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectBetween(t *testing.T) {
	visible := items("a", "b", "c", "d", "e")

	t.Run("InclusiveBothEndpoints", func(t *testing.T) {
		s := NewSet(itemKey)
		SelectBetween(s, visible, item{id: "b"}, item{id: "d"})
		assert.ElementsMatch(t, []string{"b", "c", "d"}, selectedIDs(s))
	})

	t.Run("ReversedEndpoints", func(t *testing.T) {
		s := NewSet(itemKey)
		SelectBetween(s, visible, item{id: "d"}, item{id: "b"})
		assert.ElementsMatch(t, []string{"b", "c", "d"}, selectedIDs(s))
	})

	t.Run("OnlyAdds_NeverRemoves", func(t *testing.T) {
		s := NewSet(itemKey)
		s.Select(item{id: "a"})
		SelectBetween(s, visible, item{id: "c"}, item{id: "e"})
		assert.ElementsMatch(t, []string{"a", "c", "d", "e"}, selectedIDs(s))
	})

	t.Run("AnchorEqualsClicked_SingleItemRange", func(t *testing.T) {
		s := NewSet(itemKey)
		SelectBetween(s, visible, item{id: "c"}, item{id: "c"})
		assert.Equal(t, []string{"c"}, selectedIDs(s))
	})

	t.Run("AnchorNotVisible_DegradesToClicked", func(t *testing.T) {
		s := NewSet(itemKey)
		SelectBetween(s, visible, item{id: "filtered-out"}, item{id: "b"})
		assert.Equal(t, []string{"b"}, selectedIDs(s))
	})

	t.Run("ClickedNotVisible_DegradesToClicked", func(t *testing.T) {
		s := NewSet(itemKey)
		SelectBetween(s, visible, item{id: "b"}, item{id: "filtered-out"})
		assert.Equal(t, []string{"filtered-out"}, selectedIDs(s))
	})

	t.Run("EmptyVisibleCollection_DegradesToClicked", func(t *testing.T) {
		s := NewSet(itemKey)
		SelectBetween(s, nil, item{id: "a"}, item{id: "b"})
		assert.Equal(t, []string{"b"}, selectedIDs(s))
	})
}
