// Package wordcheck validates words against a set of known words and
// proposes corrections that are a single edit away.
package wordcheck

import (
	"github.com/jellydator/ttlcache/v3"
	"github.com/shivanshs9/wordcheck/set"
	"github.com/sirupsen/logrus"
)

const DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var logger = logrus.WithField("module", "wordcheck")

// Checker answers existence and suggestion queries over a word set. The set
// must not be modified while the Checker is in use.
type Checker struct {
	words    set.Set[string]
	alphabet string
	cache    *ttlcache.Cache[string, []string]
}

type Option func(*Checker)

// WithSuggestionCache keeps the suggestions of up to size distinct words.
// A size < 1 disables the cache.
func WithSuggestionCache(size int) Option {
	return func(c *Checker) {
		if size < 1 {
			c.cache = nil
			return
		}
		c.cache = ttlcache.New(
			ttlcache.WithTTL[string, []string](ttlcache.NoTTL),
			ttlcache.WithCapacity[string, []string](uint64(size)),
		)
	}
}

// WithAlphabet sets the letters tried by the insertion and replacement
// edits.
func WithAlphabet(letters string) Option {
	return func(c *Checker) {
		if letters != "" {
			c.alphabet = letters
		}
	}
}

func New(words set.Set[string], opts ...Option) *Checker {

	c := &Checker{
		words:    words,
		alphabet: DefaultAlphabet,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Checker) WordExists(word string) bool {
	return c.words.Contains(word)
}

// FindSuggestions returns the known words one edit away from word, other than
// word itself and without duplicates, in the order the edits are tried:
//
//   - swapping each adjacent pair of characters
//   - inserting a letter before each character and at the end
//   - deleting each character
//   - replacing each character with a letter
//   - splitting the word in two, suggested as "LEFT RIGHT" when both halves
//     are known
func (c *Checker) FindSuggestions(word string) []string {

	if c.cache != nil {
		if item := c.cache.Get(word); item != nil {
			return append([]string(nil), item.Value()...)
		}
	}

	s := &suggestions{word: word, seen: make(map[string]struct{})}

	c.swapAdjacent(word, s)
	c.insertLetters(word, s)
	c.deleteLetters(word, s)
	c.replaceLetters(word, s)
	c.splitWord(word, s)

	logger.Debugf("%d suggestions for %q", len(s.list), word)

	if c.cache != nil {
		c.cache.Set(word, s.list, ttlcache.DefaultTTL)
		return append([]string(nil), s.list...)
	}

	return s.list
}

// suggestions is an insertion ordered list without duplicates. The word
// being corrected is never part of it.
type suggestions struct {
	word string
	list []string
	seen map[string]struct{}
}

func (s *suggestions) add(word string) {
	if word == s.word {
		return
	}
	if _, ok := s.seen[word]; ok {
		return
	}
	s.seen[word] = struct{}{}
	s.list = append(s.list, word)
}

func (c *Checker) offer(candidate string, s *suggestions) {
	if c.WordExists(candidate) {
		s.add(candidate)
	}
}

func (c *Checker) swapAdjacent(word string, s *suggestions) {

	b := []byte(word)

	for i := 0; i+1 < len(b); i++ {
		b[i], b[i+1] = b[i+1], b[i]
		c.offer(string(b), s)
		b[i], b[i+1] = b[i+1], b[i]
	}
}

func (c *Checker) insertLetters(word string, s *suggestions) {

	b := make([]byte, len(word)+1)

	for i := 0; i <= len(word); i++ {
		copy(b, word[:i])
		copy(b[i+1:], word[i:])
		for j := 0; j < len(c.alphabet); j++ {
			b[i] = c.alphabet[j]
			c.offer(string(b), s)
		}
	}
}

func (c *Checker) deleteLetters(word string, s *suggestions) {
	for i := 0; i < len(word); i++ {
		c.offer(word[:i]+word[i+1:], s)
	}
}

func (c *Checker) replaceLetters(word string, s *suggestions) {

	b := []byte(word)

	for i := range b {
		orig := b[i]
		for j := 0; j < len(c.alphabet); j++ {
			b[i] = c.alphabet[j]
			c.offer(string(b), s)
		}
		b[i] = orig
	}
}

func (c *Checker) splitWord(word string, s *suggestions) {
	for i := 1; i < len(word); i++ {
		left, right := word[:i], word[i:]
		if c.WordExists(left) && c.WordExists(right) {
			s.add(left + " " + right)
		}
	}
}
