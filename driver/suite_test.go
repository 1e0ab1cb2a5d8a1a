package driver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"godis-dequeue/datastruct/list"
)

func TestSuiteRun(t *testing.T) {
	testCases := []struct {
		name          string
		seed          int64
		capacity      int
		maxNameLength int
	}{
		{name: "defaults", seed: 1, capacity: 10, maxNameLength: 32},
		{name: "single record", seed: 2, capacity: 1, maxNameLength: 32},
		{name: "long names are clamped", seed: 3, capacity: 20, maxNameLength: 128},
		{name: "empty names", seed: 4, capacity: 5, maxNameLength: 1},
	}

	for _, tc := range testCases {
		for _, b := range allBackends() {
			t.Run(tc.name+"/"+b.Name, func(t *testing.T) {
				s := &Suite{
					Backend:       b,
					Seed:          tc.seed,
					Capacity:      tc.capacity,
					MaxNameLength: tc.maxNameLength,
				}
				assert.NoError(t, s.Run())
			})
		}
	}
}

func TestSuitePeopleAreSeeded(t *testing.T) {
	a := &Suite{Capacity: 8, MaxNameLength: 32, rand: rand.New(rand.NewSource(99))}
	b := &Suite{Capacity: 8, MaxNameLength: 32, rand: rand.New(rand.NewSource(99))}
	people := a.people()
	assert.Len(t, people, 8)
	assert.Equal(t, people, b.people())
	for _, p := range people {
		assert.Less(t, len(p.Name), NameSize)
	}
}

// The clone below comes back in reverse order.
func TestSuiteReportsBrokenClone(t *testing.T) {
	b := typedBackend()
	b.Clone = func(d list.Dequeue[Person]) list.Dequeue[Person] {
		ld := d.(*list.LinkedDeque[Person])
		src := ld.Clone()
		flipped := list.NewDeque[Person]()
		for {
			p, ok := src.PopFront()
			if !ok {
				break
			}
			_ = flipped.PushFront(p)
		}
		return flipped
	}

	s := &Suite{Backend: b, Seed: 5, Capacity: 4, MaxNameLength: 32}
	err := s.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "clone")
	assert.Contains(t, err.Error(), "seed 5")
}
