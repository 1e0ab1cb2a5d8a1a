package util

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandName(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		name := RandName(r, 32)
		assert.Less(t, len(name), 31)
		for _, c := range name {
			assert.True(t, c >= 'a' && c <= 'z', "unexpected rune %q", c)
		}
	}
	assert.Equal(t, "", RandName(r, 1))
	assert.Equal(t, "", RandName(r, 0))
}

func TestRandNameSeeded(t *testing.T) {
	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		assert.Equal(t, RandName(a, 32), RandName(b, 32))
	}
}
