package set

import (
	"math/rand"
	"time"

	"golang.org/x/exp/constraints"
)

const maxSkipLevel = 32

type skipNode[T constraints.Ordered] struct {
	key  T
	next []*skipNode[T]
}

// SkipListSet is a Set backed by a skip list. Each node is promoted to the
// next level with probability 1/2, giving expected O(log n) Add and Contains.
// The zero value is an empty set seeded from the clock on first use.
type SkipListSet[T constraints.Ordered] struct {
	head  *skipNode[T] // sentinel, its key is never compared
	level int          // number of levels in use
	size  int
	rnd   *rand.Rand
}

func NewSkipListSet[T constraints.Ordered]() *SkipListSet[T] {
	return NewSkipListSetWithSource[T](rand.NewSource(time.Now().UnixNano()))
}

// NewSkipListSetWithSource draws node levels from src.
func NewSkipListSetWithSource[T constraints.Ordered](src rand.Source) *SkipListSet[T] {
	return &SkipListSet[T]{
		head:  &skipNode[T]{next: make([]*skipNode[T], maxSkipLevel)},
		level: 1,
		rnd:   rand.New(src),
	}
}

// lazyInit prepares a zero SkipListSet.
func (t *SkipListSet[T]) lazyInit() {
	if t.head == nil {
		t.head = &skipNode[T]{next: make([]*skipNode[T], maxSkipLevel)}
		t.level = 1
	}
	if t.rnd == nil {
		t.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
}

func (t *SkipListSet[T]) IsImplemented() bool {
	return true
}

func (t *SkipListSet[T]) randomLevel() int {
	level := 1
	for level < maxSkipLevel && t.rnd.Int63()&1 == 1 {
		level++
	}
	return level
}

func (t *SkipListSet[T]) Add(element T) {

	t.lazyInit()

	var update [maxSkipLevel]*skipNode[T]

	x := t.head
	for i := t.level - 1; i >= 0; i-- {
		for x.next[i] != nil && x.next[i].key < element {
			x = x.next[i]
		}
		update[i] = x
	}

	if x = x.next[0]; x != nil && x.key == element {
		return // already contains key
	}

	level := t.randomLevel()
	if level > t.level {
		for i := t.level; i < level; i++ {
			update[i] = t.head
		}
		t.level = level
	}

	n := &skipNode[T]{key: element, next: make([]*skipNode[T], level)}
	for i := 0; i < level; i++ {
		n.next[i] = update[i].next[i]
		update[i].next[i] = n
	}

	t.size++
}

func (t *SkipListSet[T]) Contains(element T) bool {

	if t.head == nil {
		return false
	}

	x := t.head
	for i := t.level - 1; i >= 0; i-- {
		for x.next[i] != nil && x.next[i].key < element {
			x = x.next[i]
		}
	}

	x = x.next[0]
	return x != nil && x.key == element
}

func (t *SkipListSet[T]) Size() int {
	return t.size
}

// Levels returns the number of levels currently in use.
func (t *SkipListSet[T]) Levels() int {
	t.lazyInit()
	return t.level
}

// Each calls fn on every element in ascending order until fn returns false.
func (t *SkipListSet[T]) Each(fn func(T) bool) {
	t.lazyInit()
	for x := t.head.next[0]; x != nil; x = x.next[0] {
		if !fn(x.key) {
			return
		}
	}
}

// Clone returns a deep copy with identical node levels. The copy shares no
// nodes with t, and draws future levels from its own generator seeded from
// t's.
func (t *SkipListSet[T]) Clone() *SkipListSet[T] {

	t.lazyInit()

	c := NewSkipListSetWithSource[T](rand.NewSource(t.rnd.Int63()))
	c.level, c.size = t.level, t.size

	var tails [maxSkipLevel]*skipNode[T]
	for i := range tails {
		tails[i] = c.head
	}

	for x := t.head.next[0]; x != nil; x = x.next[0] {
		n := &skipNode[T]{key: x.key, next: make([]*skipNode[T], len(x.next))}
		for i := range n.next {
			tails[i].next[i] = n
			tails[i] = n
		}
	}

	return c
}

// Move transfers the contents of t into a new set and leaves t empty.
func (t *SkipListSet[T]) Move() *SkipListSet[T] {

	t.lazyInit()

	moved := &SkipListSet[T]{
		head:  t.head,
		level: t.level,
		size:  t.size,
		rnd:   rand.New(rand.NewSource(t.rnd.Int63())),
	}

	t.Clear()
	return moved
}

// Clear removes every element.
func (t *SkipListSet[T]) Clear() {
	t.head = &skipNode[T]{next: make([]*skipNode[T], maxSkipLevel)}
	t.level = 1
	t.size = 0
}
