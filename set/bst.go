package set

import "golang.org/x/exp/constraints"

// BSTSet is a Set backed by an unbalanced binary search tree. Insertion order
// decides the shape of the tree: random orders give O(log n) depth on
// average, sorted input degrades it to a list.
type BSTSet[T constraints.Ordered] struct {
	root *node[T]
	size int
}

func NewBSTSet[T constraints.Ordered]() *BSTSet[T] {
	return &BSTSet[T]{}
}

func (t *BSTSet[T]) IsImplemented() bool {
	return true
}

func (t *BSTSet[T]) Add(element T) {

	var added bool
	t.root, added = t.insert(t.root, element)

	if added {
		t.size++
	}
}

func (t *BSTSet[T]) insert(n *node[T], key T) (*node[T], bool) {

	if n == nil {
		return newLeaf(key), true
	}

	var added bool

	switch {
	case key < n.key:
		n.left, added = t.insert(n.left, key)
	case key > n.key:
		n.right, added = t.insert(n.right, key)
	default:
		return n, false // already contains key
	}

	if added {
		n.fixHeight()
	}

	return n, added
}

func (t *BSTSet[T]) Contains(element T) bool {
	return search(t.root, element)
}

func (t *BSTSet[T]) Size() int {
	return t.size
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *BSTSet[T]) Height() int {
	return height(t.root)
}

// Each calls fn on every element in ascending order until fn returns false.
func (t *BSTSet[T]) Each(fn func(T) bool) {
	inorder(t.root, fn)
}

// Clone returns a deep copy with the same shape. The copy shares no nodes
// with t.
func (t *BSTSet[T]) Clone() *BSTSet[T] {
	return &BSTSet[T]{
		root: cloneTree(t.root),
		size: t.size,
	}
}

// Move transfers the contents of t into a new set and leaves t empty.
func (t *BSTSet[T]) Move() *BSTSet[T] {
	moved := &BSTSet[T]{root: t.root, size: t.size}
	t.root, t.size = nil, 0
	return moved
}

// Clear removes every element.
func (t *BSTSet[T]) Clear() {
	t.root, t.size = nil, 0
}
