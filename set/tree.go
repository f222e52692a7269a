package set

import "golang.org/x/exp/constraints"

// node is a binary tree node shared by the BST and AVL backends. Each node
// owns its children exclusively.
type node[T constraints.Ordered] struct {
	key    T
	left   *node[T]
	right  *node[T]
	height int
}

func newLeaf[T constraints.Ordered](key T) *node[T] {
	return &node[T]{key: key, height: 1}
}

// height of an absent subtree is 0, of a leaf is 1
func height[T constraints.Ordered](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) fixHeight() {
	n.height = max(height(n.left), height(n.right)) + 1
}

// balance is height(left) - height(right)
func (n *node[T]) balance() int {
	return height(n.left) - height(n.right)
}

func search[T constraints.Ordered](n *node[T], key T) bool {

	for n != nil {
		switch {
		case key == n.key:
			return true
		case key < n.key:
			n = n.left
		default:
			n = n.right
		}
	}

	return false
}

// cloneTree deep copies a subtree preserving its exact shape.
func cloneTree[T constraints.Ordered](n *node[T]) *node[T] {

	if n == nil {
		return nil
	}

	return &node[T]{
		key:    n.key,
		left:   cloneTree(n.left),
		right:  cloneTree(n.right),
		height: n.height,
	}
}

// inorder calls fn on every key in ascending order, stopping early when fn
// returns false.
func inorder[T constraints.Ordered](n *node[T], fn func(T) bool) bool {

	if n == nil {
		return true
	}

	return inorder(n.left, fn) && fn(n.key) && inorder(n.right, fn)
}
