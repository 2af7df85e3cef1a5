package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "jose", Normalize(" José "))
	assert.Equal(t, "francois", Normalize("François"))
	assert.Equal(t, "keep", Normalize("KEEP"))
}

func TestClosest(t *testing.T) {
	candidates := []string{"john", "jane", "José"}

	got, ok := Closest("jhon", candidates)
	assert.True(t, ok)
	assert.Equal(t, "john", got)

	got, ok = Closest("jose", candidates)
	assert.True(t, ok)
	assert.Equal(t, "José", got)
}

func TestClosest_NoMatch(t *testing.T) {
	_, ok := Closest("zzzzzz", []string{"keep", "favorite"})
	assert.False(t, ok)

	_, ok = Closest("anything", nil)
	assert.False(t, ok)
}
