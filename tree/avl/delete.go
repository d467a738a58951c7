package avl

// Delete removes item from the tree. It returns false if there was
// no such item.
func (t *Tree[T]) Delete(item T) bool {
	n := t.Search(item)
	if n == nil {
		return false
	}

	t.deleteNode(n)
	t.count--

	return true
}

func (t *Tree[T]) deleteNode(n *Node[T]) {
	if n.left != nil && n.right != nil {
		// The successor is the leftmost node of the right subtree,
		// so it has no left child. Take its item and remove it instead.
		s := successor(n)
		n.item = s.item
		n = s
	}

	child := n.left
	if child == nil {
		child = n.right
	}

	parent := n.parent
	t.replace(n, child)
	n.orphan()

	// Unlike insertion, a rotation here can shrink the subtree,
	// so keep going all the way up.
	for p := parent; p != nil; {
		p.updateHeight()
		p = t.rebalance(p).parent
	}
}
