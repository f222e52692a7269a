package wordcheck_test

import (
	"testing"

	"github.com/shivanshs9/wordcheck/set"
	"github.com/shivanshs9/wordcheck/wordcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWords(t *testing.T, kind set.Kind, words ...string) set.Set[string] {
	t.Helper()

	s, err := set.NewStringSet(kind)
	require.NoError(t, err)

	for _, w := range words {
		s.Add(w)
	}
	return s
}

func TestWordExists(t *testing.T) {

	for _, kind := range set.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {

			c := wordcheck.New(newWords(t, kind, "CAT", "DOG"))

			assert.True(t, c.WordExists("CAT"))
			assert.True(t, c.WordExists("DOG"))
			assert.False(t, c.WordExists("COW"))
			assert.False(t, c.WordExists(""))
		})
	}
}

func TestFindSuggestions(t *testing.T) {

	testCases := []struct {
		name  string
		words []string
		word  string
		want  []string
	}{
		{
			name:  "every edit kind in order",
			words: []string{"CAT", "HAT", "A", "T", "TA", "ACT", "AT"},
			word:  "AT",
			want:  []string{"TA", "CAT", "HAT", "ACT", "T", "A", "A T"},
		},
		{
			name:  "adjacent swap",
			words: []string{"CAT", "ACT", "AT", "CART", "CATS", "HAT"},
			word:  "CTA",
			want:  []string{"CAT"},
		},
		{
			name:  "replacement",
			words: []string{"BAT", "CAT", "COT", "CUT"},
			word:  "CXT",
			want:  []string{"CAT", "COT", "CUT"},
		},
		{
			name:  "split",
			words: []string{"THE", "CAT", "THEC"},
			word:  "THECAT",
			want:  []string{"THE CAT"},
		},
		{
			name:  "same candidate from two positions",
			words: []string{"AA"},
			word:  "A",
			want:  []string{"AA"},
		},
		{
			name:  "empty word",
			words: []string{"A", "AB"},
			word:  "",
			want:  []string{"A"},
		},
		{
			name:  "nothing close",
			words: []string{"ZEBRA"},
			word:  "CAT",
			want:  nil,
		},
	}

	for _, kind := range set.Kinds() {
		for _, tc := range testCases {
			t.Run(kind.String()+"/"+tc.name, func(t *testing.T) {

				c := wordcheck.New(newWords(t, kind, tc.words...))
				got := c.FindSuggestions(tc.word)

				if tc.want == nil {
					assert.Empty(t, got)
					return
				}
				assert.Equal(t, tc.want, got)
			})
		}
	}
}

func TestFindSuggestionsSkipsWordItself(t *testing.T) {

	c := wordcheck.New(newWords(t, set.KindAVL, "BOOK", "BOOKS"))

	got := c.FindSuggestions("BOOK")
	assert.Equal(t, []string{"BOOKS"}, got)
}

func TestSuggestionCache(t *testing.T) {

	words := newWords(t, set.KindHash, "CAT")
	c := wordcheck.New(words, wordcheck.WithSuggestionCache(8))

	first := c.FindSuggestions("CTA")
	require.Equal(t, []string{"CAT"}, first)

	// callers own the returned slice
	first[0] = "DOG"

	// the cached answer wins, even though the set changed underneath
	words.Add("TCA")
	assert.Equal(t, []string{"CAT"}, c.FindSuggestions("CTA"))

	uncached := wordcheck.New(words)
	assert.Equal(t, []string{"TCA", "CAT"}, uncached.FindSuggestions("CTA"))

	disabled := wordcheck.New(words, wordcheck.WithSuggestionCache(0))
	assert.Equal(t, []string{"TCA", "CAT"}, disabled.FindSuggestions("CTA"))
}

func TestWithAlphabet(t *testing.T) {

	words := newWords(t, set.KindSkipList, "cat", "cot", "CAT")
	c := wordcheck.New(words, wordcheck.WithAlphabet("abcdefghijklmnopqrstuvwxyz"))

	assert.Equal(t, []string{"cat", "cot"}, c.FindSuggestions("cxt"))

	upper := wordcheck.New(words, wordcheck.WithAlphabet(""))
	assert.Equal(t, []string{"CAT"}, upper.FindSuggestions("CXT"))
}
