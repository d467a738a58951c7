package avl

import (
	"errors"
	"fmt"
)

// ErrBroken is returned by Check when the tree is not a valid AVL tree.
var ErrBroken = errors.New("avl: invariant broken")

// Check walks the whole tree and reports the first broken invariant:
// parent links, ownership, cached heights, balance, ordering and
// the item count.
// It is O(n) and meant for tests and debugging.
func (t *Tree[T]) Check() error {
	if t.top != nil && t.top.parent != nil {
		return fmt.Errorf("%w: top %v has parent %v", ErrBroken, t.top, t.top.parent)
	}

	count, err := t.checkNode(t.top, nil)
	if err != nil {
		return err
	}

	if count != t.count {
		return fmt.Errorf("%w: found %d nodes, tree says %d", ErrBroken, count, t.count)
	}

	// parent links are good by now, so successor can be trusted
	var prev *Node[T]
	for n := leftmost(t.top); n != nil; n = successor(n) {
		if prev != nil && t.cmp(prev.item, n.item) >= 0 {
			return fmt.Errorf("%w: %v is not less than %v", ErrBroken, prev, n)
		}
		prev = n
	}

	return nil
}

// checkNode checks the subtree rooted at n, which should hang off
// parent. It returns the number of nodes in the subtree.
func (t *Tree[T]) checkNode(n, parent *Node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}

	if n.parent != parent {
		return 0, fmt.Errorf("%w: node %v has parent %v, want %v",
			ErrBroken, n, n.parent, parent)
	}

	if n.owner != t {
		return 0, fmt.Errorf("%w: node %v belongs to another tree", ErrBroken, n)
	}

	l, err := t.checkNode(n.left, n)
	if err != nil {
		return 0, err
	}

	r, err := t.checkNode(n.right, n)
	if err != nil {
		return 0, err
	}

	want := n.left.Height()
	if rh := n.right.Height(); rh > want {
		want = rh
	}
	want++

	if n.height != want {
		return 0, fmt.Errorf("%w: node %v has height %d, want %d",
			ErrBroken, n, n.height, want)
	}

	if b := t.Balance(n); b < -1 || b > 1 {
		return 0, fmt.Errorf("%w: node %v has balance %d", ErrBroken, n, b)
	}

	return 1 + l + r, nil
}
