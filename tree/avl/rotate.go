package avl

// rotation is a restructuring chosen to fix an unbalanced node.
type rotation int

const (
	rotationNone rotation = iota
	// left-left case
	rotationRight
	// right-right case
	rotationLeft
	// left-right case
	rotationLeftRight
	// right-left case
	rotationRightLeft
)

func (r rotation) String() string {
	switch r {
	case rotationNone:
		return "none"
	case rotationRight:
		return "right"
	case rotationLeft:
		return "left"
	case rotationLeftRight:
		return "left-right"
	case rotationRightLeft:
		return "right-left"
	default:
		return "<invalid avl.rotation>"
	}
}

// chooseRotation picks the rotation for a node with the given
// balance, where heavy is the balance of its taller child.
// heavy is ignored unless the node is out of balance.
func chooseRotation(balance, heavy int) rotation {
	switch {
	case balance < -1 && heavy <= 0:
		return rotationRight
	case balance < -1:
		return rotationLeftRight
	case balance > 1 && heavy >= 0:
		return rotationLeft
	case balance > 1:
		return rotationRightLeft
	default:
		return rotationNone
	}
}

// rebalance rotates at n if it is out of balance. It returns the
// node that now occupies n's old position, which is n itself if no
// rotation was needed. n's height must be up to date.
func (t *Tree[T]) rebalance(n *Node[T]) *Node[T] {
	b := t.Balance(n)

	heavy := 0
	if b < -1 {
		heavy = t.Balance(n.left)
	} else if b > 1 {
		heavy = t.Balance(n.right)
	}

	switch chooseRotation(b, heavy) {
	case rotationNone:
		return n
	case rotationRight:
		return t.rotateRight(n)
	case rotationLeft:
		return t.rotateLeft(n)
	case rotationLeftRight:
		return t.rotateLeftRight(n)
	case rotationRightLeft:
		return t.rotateRightLeft(n)
	default:
		panic("unreachable")
	}
}

// rotateLeft rotates n to the left and returns the node that now
// occupies its old position. For example:
//
//	-> n            p
//	  / \          / \
//	 m   p   ->   n   q
//	    / \      / \
//	   o   q    m   o
//
// The right child p is returned. The ordering m < n < o < p < q is
// preserved, and the heights of n and p are recomputed.
func (t *Tree[T]) rotateLeft(n *Node[T]) *Node[T] {
	if n == nil {
		panic("cannot rotateLeft on nil")
	}

	p := n.right
	if p == nil {
		panic("cannot rotateLeft with nil right")
	}

	t.replace(n, p)
	n.setRight(p.left)
	p.setLeft(n)

	n.updateHeight()
	p.updateHeight()

	return p
}

// rotateRight rotates n to the right and returns the node that now
// occupies its old position. For example:
//
//	 -> n            l
//	   / \          / \
//	  l   o   ->   k   n
//	 / \              / \
//	k   m            m   o
//
// The left child l is returned. The ordering k < l < m < n < o is
// preserved, and the heights of n and l are recomputed.
func (t *Tree[T]) rotateRight(n *Node[T]) *Node[T] {
	if n == nil {
		panic("cannot rotateRight on nil")
	}

	l := n.left
	if l == nil {
		panic("cannot rotateRight with nil left")
	}

	t.replace(n, l)
	n.setLeft(l.right)
	l.setRight(n)

	n.updateHeight()
	l.updateHeight()

	return l
}

// rotateLeftRight fixes a left child that is right-heavy:
//
//	-> n            n            m
//	  /            /            / \
//	 l     ->     m     ->     l   n
//	  \          /
//	   m        l
func (t *Tree[T]) rotateLeftRight(n *Node[T]) *Node[T] {
	t.rotateLeft(n.left)
	return t.rotateRight(n)
}

// rotateRightLeft fixes a right child that is left-heavy. It
// mirrors rotateLeftRight.
func (t *Tree[T]) rotateRightLeft(n *Node[T]) *Node[T] {
	t.rotateRight(n.right)
	return t.rotateLeft(n)
}
