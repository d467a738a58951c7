package avl

import (
	"fmt"

	"go.lepak.sg/avltree/tree"
)

// Position is the result of a closest-node search. It is one of:
//   - Hit: Node() holds an equal item and Dir() is tree.Equal
//   - InsertLeftOf: the item is missing and would become the left
//     child of Node(); Dir() is tree.Less
//   - InsertRightOf: as above for the right child; Dir() is tree.Greater
//   - Empty: the tree is empty, Node() is nil and Dir() is tree.Equal
type Position[T any] struct {
	node *Node[T]
	dir  tree.Order
}

// Node returns the matching node for a hit, or the would-be parent
// for a miss.
func (p Position[T]) Node() *Node[T] {
	return p.node
}

// Dir returns which side of Node() the item belongs on.
func (p Position[T]) Dir() tree.Order {
	return p.dir
}

func (p Position[T]) IsEmpty() bool {
	return p.node == nil
}

func (p Position[T]) IsHit() bool {
	return p.node != nil && p.dir == tree.Equal
}

func (p Position[T]) String() string {
	if p.node == nil {
		return "Empty"
	}

	switch p.dir {
	case tree.Less:
		return fmt.Sprintf("InsertLeftOf(%v)", p.node)
	case tree.Greater:
		return fmt.Sprintf("InsertRightOf(%v)", p.node)
	case tree.Equal:
		return fmt.Sprintf("Hit(%v)", p.node)
	default:
		return "<invalid avl.Position>"
	}
}

// SearchClosest walks down from the top looking for item. It stops
// at the node holding an equal item, or at the last node visited
// before running off the tree.
func (t *Tree[T]) SearchClosest(item T) Position[T] {
	var pos Position[T]

	n := t.top
	for n != nil {
		pos.node = n
		pos.dir = tree.OrderOf(t.cmp(item, n.item))
		switch pos.dir {
		case tree.Less:
			n = n.left
		case tree.Greater:
			n = n.right
		case tree.Equal:
			return pos
		default:
			panic("unreachable")
		}
	}

	return pos
}

// SearchClosestNode is SearchClosest keyed by probe's item.
// probe is not linked into the tree.
func (t *Tree[T]) SearchClosestNode(probe *Node[T]) Position[T] {
	return t.SearchClosest(probe.item)
}

// Search returns the node holding item, or nil if there is none.
func (t *Tree[T]) Search(item T) *Node[T] {
	if pos := t.SearchClosest(item); pos.IsHit() {
		return pos.node
	}
	return nil
}

// SearchNode is Search keyed by probe's item.
func (t *Tree[T]) SearchNode(probe *Node[T]) *Node[T] {
	if probe == nil {
		return nil
	}
	return t.Search(probe.item)
}

// Contains is true if an item equal to item is in the tree.
func (t *Tree[T]) Contains(item T) bool {
	return t.Search(item) != nil
}

// FindSuccessor returns the node with the smallest item greater
// than n's, or nil if n holds the largest item.
func (t *Tree[T]) FindSuccessor(n *Node[T]) *Node[T] {
	return successor(n)
}

// FindPredecessor returns the node with the largest item less
// than n's, or nil if n holds the smallest item.
func (t *Tree[T]) FindPredecessor(n *Node[T]) *Node[T] {
	return predecessor(n)
}

// Min returns the node with the smallest item, or nil if the tree
// is empty.
func (t *Tree[T]) Min() *Node[T] {
	return leftmost(t.top)
}

// Max returns the node with the largest item, or nil if the tree
// is empty.
func (t *Tree[T]) Max() *Node[T] {
	return rightmost(t.top)
}

// Less returns the largest item in the tree that is less than item.
// item itself does not have to be in the tree.
// If there is no smaller item, p is the zero T and ok is false.
func (t *Tree[T]) Less(item T) (p T, ok bool) {
	pos := t.SearchClosest(item)

	var n *Node[T]
	switch pos.dir {
	case tree.Greater:
		// item would hang off the right, so pos.node is just below it
		n = pos.node
	case tree.Less, tree.Equal:
		n = predecessor(pos.node)
	default:
		panic("unreachable")
	}

	if n == nil {
		return
	}
	return n.item, true
}

// Greater returns the smallest item in the tree that is greater
// than item. It mirrors Less.
func (t *Tree[T]) Greater(item T) (p T, ok bool) {
	pos := t.SearchClosest(item)

	var n *Node[T]
	switch pos.dir {
	case tree.Less:
		n = pos.node
	case tree.Greater, tree.Equal:
		n = successor(pos.node)
	default:
		panic("unreachable")
	}

	if n == nil {
		return
	}
	return n.item, true
}

func leftmost[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

func successor[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	if n.right != nil {
		return leftmost(n.right)
	}

	// climb until we come up out of a left subtree
	child, p := n, n.parent
	for p != nil && p.right == child {
		child, p = p, p.parent
	}
	return p
}

func predecessor[T any](n *Node[T]) *Node[T] {
	if n == nil {
		return nil
	}

	if n.left != nil {
		return rightmost(n.left)
	}

	child, p := n, n.parent
	for p != nil && p.left == child {
		child, p = p, p.parent
	}
	return p
}
