package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPeek(t *testing.T) {
	s := NewStack[item]()

	_, ok := s.Peek("list-a")
	require.False(t, ok, "peek on an untouched group reports absence")

	s.Push("list-a", item{id: "1"})
	s.Push("list-a", item{id: "2"})

	top, ok := s.Peek("list-a")
	require.True(t, ok)
	assert.Equal(t, "2", top.id)
}

func TestStackGroupIsolation(t *testing.T) {
	s := NewStack[item]()

	s.Push("list-a", item{id: "1"})

	_, ok := s.Peek("list-b")
	assert.False(t, ok, "a push for one group never affects another")

	s.Push("list-b", item{id: "9"})
	top, ok := s.Peek("list-a")
	require.True(t, ok)
	assert.Equal(t, "1", top.id)
}
