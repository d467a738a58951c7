package avl

import (
	"go.lepak.sg/avltree/chops"
)

// InOrder applies f to each item in ascending order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(item T) bool) {
	visitInOrder(t.top, f)
}

// PreOrder applies f to each node's item before the items of its
// left and then right subtrees.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) PreOrder(f func(item T) bool) {
	visitPreOrder(t.top, f)
}

func visitInOrder[T any](n *Node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}

	if !visitInOrder(n.left, f) {
		return false
	}

	if !f(n.item) {
		return false
	}

	return visitInOrder(n.right, f)
}

func visitPreOrder[T any](n *Node[T], f func(T) bool) bool {
	if n == nil {
		return true
	}

	if !f(n.item) {
		return false
	}

	if !visitPreOrder(n.left, f) {
		return false
	}

	return visitPreOrder(n.right, f)
}

// Items returns all items in ascending order.
func (t *Tree[T]) Items() []T {
	items := make([]T, 0, t.count)
	t.InOrder(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

// InOrderIterator returns an iterator that yields items in
// ascending order.
func (t *Tree[T]) InOrderIterator() *InOrder[T] {
	return NewInOrder(t.top)
}

// InOrderReverseIterator returns an iterator that yields items in
// descending order.
func (t *Tree[T]) InOrderReverseIterator() *InOrderReverse[T] {
	return NewInOrderReverse(t.top)
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for item := range co.Items() {
//		... do stuff with item ...
//		if item meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// InOrderCoroutine starts a goroutine, which exits when either
// Stop is called or the iteration is finished. The tree must not
// be mutated until then.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	return chops.CoIterate[T](t.InOrderIterator())
}
