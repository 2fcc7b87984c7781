package groupid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveIsStablePerContainer(t *testing.T) {
	r := NewRegistry()

	first := r.Resolve("sidebar")
	second := r.Resolve("sidebar")

	assert.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestResolveDistinctContainers(t *testing.T) {
	r := NewRegistry()

	assert.NotEqual(t, r.Resolve("sidebar"), r.Resolve("main"))
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := NewRegistry()
	b := NewRegistry()

	assert.NotEqual(t, a.Resolve("sidebar"), b.Resolve("sidebar"))
}
