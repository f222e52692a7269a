package set

import "golang.org/x/exp/constraints"

// AVLSet is a Set backed by an AVL tree. After every insertion the heights of
// the two subtrees of any node differ by at most one, so Add and Contains run
// in O(log n).
//
// Every node caches its height; rotations and the insertion path update it in
// constant time per node.
type AVLSet[T constraints.Ordered] struct {
	root *node[T]
	size int
}

func NewAVLSet[T constraints.Ordered]() *AVLSet[T] {
	return &AVLSet[T]{}
}

func (t *AVLSet[T]) IsImplemented() bool {
	return true
}

func (t *AVLSet[T]) Add(element T) {

	var added bool
	t.root, added = t.insert(t.root, element)

	if added {
		t.size++
	}
}

func (t *AVLSet[T]) insert(n *node[T], key T) (*node[T], bool) {

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
		return n, false // nothing changed below, no rebalancing needed
	}

	if !added {
		return n, false
	}

	n.fixHeight()
	return rebalance(n), true
}

// rebalance restores the AVL invariant at n, assuming both subtrees already
// satisfy it, and returns the new local root.
func rebalance[T constraints.Ordered](n *node[T]) *node[T] {

	switch n.balance() {
	case 2:
		if n.left.balance() < 0 {
			return rotateLR(n)
		}
		return rotateLL(n)
	case -2:
		if n.right.balance() > 0 {
			return rotateRL(n)
		}
		return rotateRR(n)
	}

	return n
}

// rotateLL promotes the left child of a left-heavy node.
func rotateLL[T constraints.Ordered](n *node[T]) *node[T] {
	l := n.left
	n.left = l.right
	l.right = n

	n.fixHeight()
	l.fixHeight()
	return l
}

// rotateRR promotes the right child of a right-heavy node.
func rotateRR[T constraints.Ordered](n *node[T]) *node[T] {
	r := n.right
	n.right = r.left
	r.left = n

	n.fixHeight()
	r.fixHeight()
	return r
}

func rotateLR[T constraints.Ordered](n *node[T]) *node[T] {
	n.left = rotateRR(n.left)
	return rotateLL(n)
}

func rotateRL[T constraints.Ordered](n *node[T]) *node[T] {
	n.right = rotateLL(n.right)
	return rotateRR(n)
}

func (t *AVLSet[T]) Contains(element T) bool {
	return search(t.root, element)
}

func (t *AVLSet[T]) Size() int {
	return t.size
}

// Height returns the number of nodes on the longest root to leaf path.
func (t *AVLSet[T]) Height() int {
	return height(t.root)
}

// Each calls fn on every element in ascending order until fn returns false.
func (t *AVLSet[T]) Each(fn func(T) bool) {
	inorder(t.root, fn)
}

// Clone returns a deep copy with the same shape. The copy shares no nodes
// with t.
func (t *AVLSet[T]) Clone() *AVLSet[T] {
	return &AVLSet[T]{
		root: cloneTree(t.root),
		size: t.size,
	}
}

// Move transfers the contents of t into a new set and leaves t empty.
func (t *AVLSet[T]) Move() *AVLSet[T] {
	moved := &AVLSet[T]{root: t.root, size: t.size}
	t.root, t.size = nil, 0
	return moved
}

// Clear removes every element.
func (t *AVLSet[T]) Clear() {
	t.root, t.size = nil, 0
}
