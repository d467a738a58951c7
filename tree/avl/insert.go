package avl

import (
	"go.lepak.sg/avltree/tree"
)

// Insert adds item to the tree. It returns false without changing
// anything if an equal item is already present, and fails with
// ErrInvalidArgument if item is nil.
func (t *Tree[T]) Insert(item T) (bool, error) {
	n, err := NewNode(item)
	if err != nil {
		return false, err
	}

	return t.InsertNode(n), nil
}

// InsertNode links a fresh node into the tree. n must not belong to
// any tree, but a node that Delete has unlinked may be reused. It
// panics if n belongs to a tree or holds a nil item.
// It returns false and leaves n alone if n's item is already present.
func (t *Tree[T]) InsertNode(n *Node[T]) bool {
	if n == nil {
		panic("cannot InsertNode nil")
	}

	if n.isLinked() || n == t.top {
		panic("cannot InsertNode a node that is already in a tree")
	}

	if isNil(n.item) {
		panic("cannot InsertNode a node with a nil item")
	}

	if t.IsEmpty() {
		t.insertTop(n)
		return true
	}

	pos := t.SearchClosestNode(n)
	switch pos.dir {
	case tree.Less:
		if pos.node.left != nil {
			panic("impossible")
		}
		pos.node.setLeft(n)
	case tree.Greater:
		if pos.node.right != nil {
			panic("impossible")
		}
		pos.node.setRight(n)
	case tree.Equal:
		return false
	default:
		panic("unreachable")
	}

	n.height = 0
	t.count++

	// One rotation is enough: it brings the subtree back to the
	// height it had before the insert, so nothing above changes.
	for p := n.parent; p != nil; p = p.parent {
		p.updateHeight()
		if t.rebalance(p) != p {
			break
		}
	}

	return true
}

// insertTop makes n the only node of the tree.
func (t *Tree[T]) insertTop(n *Node[T]) {
	t.top = n
	n.setParent(nil)
	n.height = 0
	n.owner = t
	t.count = 1
}
