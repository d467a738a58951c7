package avl

import (
	"go.lepak.sg/avltree/chops"
)

var (
	_ chops.Iterator[int] = (*InOrder[int])(nil)
	_ chops.Iterator[int] = (*InOrderReverse[int])(nil)
)

// InOrder is an iterator over a tree in ascending order. It follows
// parent pointers, so it needs no stack.
// The usage should be pretty familiar:
//
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		item := i.Item()
//		... do stuff with item ...
//	}
//
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
type InOrder[T any] struct {
	root, at *Node[T]
	// last is the final node of root's subtree, found on the first Next
	last *Node[T]
	done bool
}

// NewInOrder returns a new InOrder iterator over the subtree rooted
// at root.
func NewInOrder[T any](root *Node[T]) *InOrder[T] {
	return &InOrder[T]{
		root: root,
	}
}

// Next returns true if there is an item to yield with Item.
// Next must always be called before Item.
func (i *InOrder[T]) Next() bool {
	if i == nil || i.done {
		return false
	}

	switch {
	case i.at == nil:
		i.at, i.last = leftmost(i.root), rightmost(i.root)
	case i.at == i.last:
		// don't climb out of the subtree we were given
		i.at = nil
	default:
		i.at = successor(i.at)
	}

	i.done = i.at == nil
	return !i.done
}

// Item returns the current item of the iterator.
func (i *InOrder[T]) Item() T {
	return i.at.item
}

// InOrderReverse is InOrder running from the largest item to the
// smallest.
type InOrderReverse[T any] struct {
	root, at, last *Node[T]
	done           bool
}

// NewInOrderReverse returns a new InOrderReverse iterator over the
// subtree rooted at root.
func NewInOrderReverse[T any](root *Node[T]) *InOrderReverse[T] {
	return &InOrderReverse[T]{
		root: root,
	}
}

// Next returns true if there is an item to yield with Item.
// Next must always be called before Item.
func (i *InOrderReverse[T]) Next() bool {
	if i == nil || i.done {
		return false
	}

	switch {
	case i.at == nil:
		i.at, i.last = rightmost(i.root), leftmost(i.root)
	case i.at == i.last:
		i.at = nil
	default:
		i.at = predecessor(i.at)
	}

	i.done = i.at == nil
	return !i.done
}

// Item returns the current item of the iterator.
func (i *InOrderReverse[T]) Item() T {
	return i.at.item
}
