package set

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkLevels verifies that every level is sorted and that each level is a
// subsequence of the one below.
func checkLevels(t *testing.T, s *SkipListSet[int]) {
	t.Helper()

	require.LessOrEqual(t, s.Levels(), maxSkipLevel)

	below := map[int]bool{}
	for x := s.head.next[0]; x != nil; x = x.next[0] {
		below[x.key] = true
	}
	require.Len(t, below, s.Size())

	for i := 0; i < s.Levels(); i++ {
		here := map[int]bool{}
		prev := -1 << 31
		for x := s.head.next[i]; x != nil; x = x.next[i] {
			require.Greater(t, x.key, prev, "level %d not sorted", i)
			require.True(t, below[x.key], "level %d has %d missing below", i, x.key)
			require.Greater(t, len(x.next), i)
			here[x.key] = true
			prev = x.key
		}
		below = here
	}

	for i := s.Levels(); i < maxSkipLevel; i++ {
		require.Nil(t, s.head.next[i])
	}
}

func TestSkipListInvariant(t *testing.T) {

	s := NewSkipListSetWithSource[int](rand.NewSource(1))
	rnd := rand.New(rand.NewSource(2))

	for i := 0; i < 3000; i++ {
		s.Add(rnd.Intn(2000))
		if i%100 == 0 {
			checkLevels(t, s)
		}
	}
	checkLevels(t, s)

	assert.Greater(t, s.Levels(), 1)
}

func TestSkipListEachSorted(t *testing.T) {

	s := NewSkipListSetWithSource[int](rand.NewSource(4))
	for _, x := range []int{9, 2, 7, 2, 5, 1} {
		s.Add(x)
	}

	var got []int
	s.Each(func(x int) bool {
		got = append(got, x)
		return true
	})
	assert.Equal(t, []int{1, 2, 5, 7, 9}, got)
}

func TestSkipListCloneTowers(t *testing.T) {

	s := NewSkipListSetWithSource[int](rand.NewSource(6))
	for i := 0; i < 300; i++ {
		s.Add(i)
	}

	c := s.Clone()
	require.Equal(t, s.Levels(), c.Levels())
	checkLevels(t, c)

	a, b := s.head.next[0], c.head.next[0]
	for a != nil && b != nil {
		assert.Equal(t, a.key, b.key)
		assert.Equal(t, len(a.next), len(b.next))
		assert.NotSame(t, a, b)
		a, b = a.next[0], b.next[0]
	}
	assert.Nil(t, a)
	assert.Nil(t, b)
}

func TestSkipListStrings(t *testing.T) {

	s := NewSkipListSet[string]()
	for _, w := range []string{"PEAR", "APPLE", "FIG", "APPLE"} {
		s.Add(w)
	}

	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Contains("FIG"))
	assert.False(t, s.Contains("KIWI"))
}

func TestSkipListZeroValue(t *testing.T) {

	var s SkipListSet[int]
	assert.False(t, s.Contains(1))
	assert.Equal(t, 0, s.Size())

	for _, x := range []int{3, 1, 2, 3} {
		s.Add(x)
	}
	assert.Equal(t, 3, s.Size())
	assert.True(t, s.Contains(2))
	checkLevels(t, &s)

	var empty SkipListSet[int]
	c := empty.Clone()
	c.Add(5)
	assert.True(t, c.Contains(5))
	assert.Equal(t, 0, empty.Size())
}
