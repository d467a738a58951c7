package avl

import (
	"go.lepak.sg/avltree/tree"
	"golang.org/x/exp/constraints"
)

// Tree is an AVL tree of items ordered by a tree.Comparator.
//
// Invariants:
//   - At any node N, all items in the subtree rooted at N.Left()
//     compare less than N.Item()
//   - At any node N, all items in the subtree rooted at N.Right()
//     compare greater than N.Item()
//   - There is at most one node for each item (no duplicates)
//   - At any node N, the heights of N.Left() and N.Right() differ
//     by at most one
//   - N.Height() is 1 + the larger height of its children, with a
//     missing child counting as -1
//
// The zero Tree is not usable, create one with New or NewOrdered.
type Tree[T any] struct {
	top   *Node[T]
	cmp   tree.Comparator[T]
	count int
}

// New returns an empty tree ordered by cmp.
func New[T any](cmp tree.Comparator[T]) *Tree[T] {
	if cmp == nil {
		panic("avl: nil comparator")
	}

	return &Tree[T]{
		cmp: cmp,
	}
}

// NewOrdered returns an empty tree ordered by the built-in operators.
func NewOrdered[T constraints.Ordered]() *Tree[T] {
	return New(tree.Ordered[T]())
}

// IsEmpty is true if the tree holds no items.
func (t *Tree[T]) IsEmpty() bool {
	return t.top == nil
}

// Top returns the root node, or nil for an empty tree.
// Top may change after any mutation.
func (t *Tree[T]) Top() *Node[T] {
	return t.top
}

// Len returns the number of items in the tree.
func (t *Tree[T]) Len() int {
	return t.count
}

// CompareNodes orders two nodes by their items.
func (t *Tree[T]) CompareNodes(a, b *Node[T]) tree.Order {
	return tree.OrderOf(t.cmp(a.item, b.item))
}

// Height returns the height of the subtree rooted at n, or -1 if
// n is nil.
func (t *Tree[T]) Height(n *Node[T]) int {
	return n.Height()
}

// Balance returns the height of n's right subtree minus the height
// of its left subtree. Negative means left-heavy.
func (t *Tree[T]) Balance(n *Node[T]) int {
	if n == nil {
		return 0
	}
	return n.right.Height() - n.left.Height()
}

// replace puts c where old is: under old's parent, or at the top
// if old was the root. old's own links are left alone.
func (t *Tree[T]) replace(old, c *Node[T]) {
	p := old.parent
	switch {
	case p == nil:
		t.top = c
	case p.left == old:
		p.left = c
	case p.right == old:
		p.right = c
	default:
		panic("impossible")
	}

	if c != nil {
		c.setParent(p)
	}
}
