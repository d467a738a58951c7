package avl

import (
	"fmt"
	"strings"
)

// String returns the items in pre-order, each prefixed with " | ".
// For example, a tree with 4 at the top and 3 and 7 below it
// gives " | 4 | 3 | 7". An empty tree gives "".
// This is meant for tests and debugging; don't parse it.
func (t *Tree[T]) String() string {
	var sb strings.Builder

	t.PreOrder(func(item T) bool {
		sb.WriteString(" | ")
		sb.WriteString(fmt.Sprint(item))
		return true
	})

	return sb.String()
}

// Diagram returns a drawing of the tree, one node per line, with
// each node's cached height and balance after its item.
// A complete tree with height 2 would look like this:
//
//	4 h=2 bal=0
//	├─L─2 h=1 bal=0
//	│   ├─L─1 h=0 bal=0
//	│   └─R─3 h=0 bal=0
//	└─R─6 h=1 bal=0
//	    ├─L─5 h=0 bal=0
//	    └─R─7 h=0 bal=0
func (t *Tree[T]) Diagram() string {
	if t.top == nil {
		return ""
	}

	var sb strings.Builder
	t.drawNode(&sb, t.top, "", "")
	return sb.String()
}

// drawNode writes n after lead, then its children indented by indent.
func (t *Tree[T]) drawNode(sb *strings.Builder, n *Node[T], lead, indent string) {
	fmt.Fprintf(sb, "%s%v h=%d bal=%d\n", lead, n.item, n.height, t.Balance(n))

	type edge struct {
		label string
		child *Node[T]
	}
	edges := make([]edge, 0, 2)
	if n.left != nil {
		edges = append(edges, edge{"L─", n.left})
	}
	if n.right != nil {
		edges = append(edges, edge{"R─", n.right})
	}

	for i, e := range edges {
		branch, more := "├─", "│   "
		if i == len(edges)-1 {
			branch, more = "└─", "    "
		}
		t.drawNode(sb, e.child, indent+branch+e.label, indent+more)
	}
}
