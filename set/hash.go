package set

import "github.com/cespare/xxhash/v2"

// DefaultCapacity is the number of slots of a new HashSet.
const DefaultCapacity = 10

// maximum load factor is loadNum/loadDen (0.8)
const (
	loadNum = 4
	loadDen = 5
)

// HashFunc maps an element to its hash. Equal elements must hash equally.
type HashFunc[T any] func(T) uint64

// StringHash is the default HashFunc for word sets.
func StringHash(s string) uint64 {
	return xxhash.Sum64String(s)
}

type entry[T comparable] struct {
	key  T
	next *entry[T]
}

// HashSet is a Set backed by a separately chained hash table. When the ratio
// of size to capacity exceeds 0.8 the table doubles its capacity and rehashes
// every element.
//
// Add needs the hash function supplied by NewHashSet or
// NewHashSetWithCapacity. A zero HashSet is an empty set: reading it is safe,
// adding to it panics.
type HashSet[T comparable] struct {
	hash  HashFunc[T]
	slots []*entry[T]
	size  int
}

func NewHashSet[T comparable](hash HashFunc[T]) *HashSet[T] {
	return NewHashSetWithCapacity(hash, DefaultCapacity)
}

// NewHashSetWithCapacity creates a HashSet with capacity slots; capacity < 1
// falls back to DefaultCapacity.
func NewHashSetWithCapacity[T comparable](hash HashFunc[T], capacity int) *HashSet[T] {

	if capacity < 1 {
		capacity = DefaultCapacity
	}

	return &HashSet[T]{
		hash:  hash,
		slots: make([]*entry[T], capacity),
	}
}

func (t *HashSet[T]) IsImplemented() bool {
	return true
}

func (t *HashSet[T]) slot(key T, capacity int) int {
	return int(t.hash(key) % uint64(capacity))
}

func (t *HashSet[T]) Add(element T) {

	if t.hash == nil {
		panic("set: HashSet has no hash function, create it with NewHashSet")
	}
	if len(t.slots) == 0 {
		t.slots = make([]*entry[T], DefaultCapacity)
	}

	i := t.slot(element, len(t.slots))

	for e := t.slots[i]; e != nil; e = e.next {
		if e.key == element {
			return // already contains key
		}
	}

	t.slots[i] = &entry[T]{key: element, next: t.slots[i]}
	t.size++

	if t.size*loadDen > len(t.slots)*loadNum {
		t.grow()
	}
}

// grow doubles the capacity and moves every element to its new home slot.
func (t *HashSet[T]) grow() {

	slots := make([]*entry[T], 2*len(t.slots))

	for _, head := range t.slots {
		for e := head; e != nil; {
			next := e.next
			i := t.slot(e.key, len(slots))
			e.next = slots[i]
			slots[i] = e
			e = next
		}
	}

	t.slots = slots
}

func (t *HashSet[T]) Contains(element T) bool {

	if len(t.slots) == 0 {
		return false
	}

	for e := t.slots[t.slot(element, len(t.slots))]; e != nil; e = e.next {
		if e.key == element {
			return true
		}
	}

	return false
}

func (t *HashSet[T]) Size() int {
	return t.size
}

// Capacity returns the number of slots.
func (t *HashSet[T]) Capacity() int {
	return len(t.slots)
}

func (t *HashSet[T]) LoadFactor() float64 {
	if len(t.slots) == 0 {
		return 0
	}
	return float64(t.size) / float64(len(t.slots))
}

// Each calls fn on every element, slot by slot, until fn returns false.
func (t *HashSet[T]) Each(fn func(T) bool) {

	for _, head := range t.slots {
		for e := head; e != nil; e = e.next {
			if !fn(e.key) {
				return
			}
		}
	}
}

// Clone returns a deep copy with the same capacity and chain order. The copy
// shares no entries with t.
func (t *HashSet[T]) Clone() *HashSet[T] {

	slots := make([]*entry[T], len(t.slots))

	for i, head := range t.slots {
		tail := &slots[i]
		for e := head; e != nil; e = e.next {
			*tail = &entry[T]{key: e.key}
			tail = &(*tail).next
		}
	}

	return &HashSet[T]{
		hash:  t.hash,
		slots: slots,
		size:  t.size,
	}
}

// Move transfers the contents of t into a new set. t is left empty with
// DefaultCapacity slots and keeps its hash function, so it can be reused.
func (t *HashSet[T]) Move() *HashSet[T] {

	moved := &HashSet[T]{
		hash:  t.hash,
		slots: t.slots,
		size:  t.size,
	}

	t.Clear()
	return moved
}

// Clear removes every element and shrinks the table back to
// DefaultCapacity.
func (t *HashSet[T]) Clear() {
	t.slots = make([]*entry[T], DefaultCapacity)
	t.size = 0
}
