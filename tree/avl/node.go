package avl

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidArgument is returned when a node would hold a nil item.
var ErrInvalidArgument = errors.New("avl: invalid argument")

// Node is a vertex of a Tree.
//
// Links can only be changed by the Tree that owns the node, which
// keeps the cached height in step with the structure below it.
type Node[T any] struct {
	item                T
	left, right, parent *Node[T]
	height              int

	// owner is the tree n is linked into, nil while n is free.
	owner *Tree[T]
}

// NewNode returns an unlinked leaf holding item.
// It fails with ErrInvalidArgument if item is nil.
func NewNode[T any](item T) (*Node[T], error) {
	if isNil(item) {
		return nil, fmt.Errorf("%w: node item must not be nil", ErrInvalidArgument)
	}

	return &Node[T]{
		item: item,
	}, nil
}

// isNil reports whether v is nil, for the kinds that can be.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Pointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}

func (n *Node[T]) Item() T {
	return n.item
}

// SetItem replaces the item in place. The node does not move, so
// an item that orders differently from the old one breaks the
// tree's ordering; that is up to the caller.
func (n *Node[T]) SetItem(item T) error {
	if isNil(item) {
		return fmt.Errorf("%w: node item must not be nil", ErrInvalidArgument)
	}

	n.item = item
	return nil
}

func (n *Node[T]) Left() *Node[T] {
	return n.left
}

func (n *Node[T]) Right() *Node[T] {
	return n.right
}

func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

func (n *Node[T]) HasLeft() bool {
	return n.left != nil
}

func (n *Node[T]) HasRight() bool {
	return n.right != nil
}

func (n *Node[T]) HasParent() bool {
	return n.parent != nil
}

// HasOnlyLeft is true if n has a left child and no right child.
func (n *Node[T]) HasOnlyLeft() bool {
	return n.left != nil && n.right == nil
}

// HasOnlyRight is true if n has a right child and no left child.
func (n *Node[T]) HasOnlyRight() bool {
	return n.left == nil && n.right != nil
}

func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Height returns the cached height of the subtree rooted at n.
// A leaf has height 0 and a nil node has height -1.
func (n *Node[T]) Height() int {
	if n == nil {
		return -1
	}
	return n.height
}

// updateHeight recomputes the height of n from the cached heights
// of its children. It does not touch the ancestors of n.
func (n *Node[T]) updateHeight() {
	l, r := n.left.Height(), n.right.Height()
	if l > r {
		n.height = 1 + l
	} else {
		n.height = 1 + r
	}
}

// setLeft links c as the left child of n. c may be nil.
// c joins n's tree.
func (n *Node[T]) setLeft(c *Node[T]) {
	n.left = c
	if c != nil {
		c.parent = n
		c.owner = n.owner
	}
}

// setRight links c as the right child of n. c may be nil.
// c joins n's tree.
func (n *Node[T]) setRight(c *Node[T]) {
	n.right = c
	if c != nil {
		c.parent = n
		c.owner = n.owner
	}
}

func (n *Node[T]) setParent(p *Node[T]) {
	n.parent = p
}

// isLinked is true if n belongs to a tree, including as the only
// node of one, or has links to other nodes.
func (n *Node[T]) isLinked() bool {
	return n.owner != nil || n.parent != nil || n.left != nil || n.right != nil
}

// orphan cuts all of n's links, releases it from its tree and
// resets it to a leaf.
func (n *Node[T]) orphan() {
	n.left, n.right, n.parent = nil, nil, nil
	n.owner = nil
	n.height = 0
}

func (n *Node[T]) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprint(n.item)
}
