// Package set provides a Set contract with interchangeable backends: an
// unbalanced binary search tree, an AVL tree, a separately chained hash table
// and a skip list.
//
// None of the backends synchronize access. Callers sharing a set between
// goroutines must provide their own locking.
package set

import (
	"strings"

	"github.com/pkg/errors"
)

type Set[T any] interface {
	// Add adds an element to the set; adding an element that is already
	// present has no effect
	Add(element T)
	// Contains checks if the element was previously added
	Contains(element T) bool
	// Size returns the number of distinct elements in the set
	Size() int
	// IsImplemented reports whether the backend is a working implementation
	IsImplemented() bool
}

// Kind identifies a Set backend.
type Kind int

const (
	_ Kind = iota
	KindBST
	KindAVL
	KindHash
	KindSkipList
)

var ErrUnknownKind = errors.New("unknown set kind")

func (k Kind) String() string {
	switch k {
	case KindBST:
		return "bst"
	case KindAVL:
		return "avl"
	case KindHash:
		return "hash"
	case KindSkipList:
		return "skiplist"
	}
	return "unknown"
}

// Kinds lists every backend, in declaration order.
func Kinds() []Kind {
	return []Kind{KindBST, KindAVL, KindHash, KindSkipList}
}

// ParseKind maps a backend name (case insensitive) to its Kind.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// NewStringSet builds an empty word set of the given kind. The hash backend
// uses StringHash.
func NewStringSet(kind Kind) (Set[string], error) {

	switch kind {
	case KindBST:
		return NewBSTSet[string](), nil
	case KindAVL:
		return NewAVLSet[string](), nil
	case KindHash:
		return NewHashSet(StringHash), nil
	case KindSkipList:
		return NewSkipListSet[string](), nil
	}

	return nil, errors.Wrapf(ErrUnknownKind, "kind %d", int(kind))
}
