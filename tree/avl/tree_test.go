package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lepak.sg/avltree/tree"
)

func insertItems[T any](t *testing.T, tr *Tree[T], items ...T) {
	t.Helper()
	for _, item := range items {
		_, err := tr.Insert(item)
		require.NoError(t, err)
	}
}

func TestTree_IsEmpty(t *testing.T) {
	tr := NewOrdered[int]()
	assert.True(t, tr.IsEmpty())
	assert.Nil(t, tr.Top())
	assert.Equal(t, "", tr.String())

	tr.InsertNode(newNode(t, 1))
	assert.False(t, tr.IsEmpty())
	assert.Equal(t, 1, tr.Len())
}

func TestTree_InsertTop(t *testing.T) {
	tr := NewOrdered[int]()
	n := newNode(t, 4)

	tr.insertTop(n)

	assert.Same(t, n, tr.Top())
	assert.Equal(t, " | 4", tr.String())
	assert.Equal(t, 0, n.Height())
	assert.Nil(t, n.Parent())
}

func TestTree_CompareNodes(t *testing.T) {
	tr := NewOrdered[int]()
	n4, n5, n5b := newNode(t, 4), newNode(t, 5), newNode(t, 5)

	assert.Equal(t, tree.Less, tr.CompareNodes(n4, n5))
	assert.Equal(t, tree.Greater, tr.CompareNodes(n5b, n4))
	assert.Equal(t, tree.Equal, tr.CompareNodes(n5, n5b))
}

func TestTree_CompareNodes_Normalised(t *testing.T) {
	// a comparator that returns large magnitudes
	tr := New[int](func(a, b int) int { return (a - b) * 1000 })

	assert.Equal(t, tree.Less, tr.CompareNodes(newNode(t, 1), newNode(t, 9)))
	assert.Equal(t, tree.Greater, tr.CompareNodes(newNode(t, 9), newNode(t, 1)))
}

func TestNew_NilComparator(t *testing.T) {
	assert.Panics(t, func() {
		New[int](nil)
	})
}

func TestTree_InsertNode(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		post  func(t *testing.T, tr *Tree[int], nodes []*Node[int])
	}{
		{
			name:  "left",
			items: []int{6, 4},
			post: func(t *testing.T, tr *Tree[int], nodes []*Node[int]) {
				assert.Same(t, nodes[0], nodes[1].Parent())
				assert.Same(t, nodes[1], nodes[0].Left())
				assert.Equal(t, " | 6 | 4", tr.String())
			},
		},
		{
			name:  "right",
			items: []int{6, 9},
			post: func(t *testing.T, tr *Tree[int], nodes []*Node[int]) {
				assert.Same(t, nodes[0], nodes[1].Parent())
				assert.Same(t, nodes[1], nodes[0].Right())
				assert.Equal(t, " | 6 | 9", tr.String())
			},
		},
		{
			name:  "left-left",
			items: []int{7, 4, 3},
			post: func(t *testing.T, tr *Tree[int], nodes []*Node[int]) {
				n7, n4, n3 := nodes[0], nodes[1], nodes[2]
				assert.Same(t, n4, tr.Top())
				assert.Same(t, n3, n4.Left())
				assert.Same(t, n7, n4.Right())

				assert.Equal(t, 1, tr.Top().Height())
				assert.Equal(t, 0, tr.Top().Left().Height())
				assert.Equal(t, 0, tr.Top().Right().Height())
				assert.Equal(t, -1, tr.Height(n7.Left()))
				assert.Equal(t, -1, tr.Height(n7.Right()))
				assert.Equal(t, -1, tr.Height(n3.Left()))
				assert.Equal(t, -1, tr.Height(n3.Right()))

				assert.Equal(t, " | 4 | 3 | 7", tr.String())
			},
		},
		{
			name:  "right-right",
			items: []int{7, 10, 14},
			post: func(t *testing.T, tr *Tree[int], nodes []*Node[int]) {
				n7, n10, n14 := nodes[0], nodes[1], nodes[2]
				assert.Same(t, n10, tr.Top())
				assert.Same(t, n7, n10.Left())
				assert.Same(t, n14, n10.Right())

				assert.Equal(t, 1, tr.Top().Height())
				assert.Equal(t, 0, tr.Top().Left().Height())
				assert.Equal(t, 0, tr.Top().Right().Height())

				assert.Equal(t, " | 10 | 7 | 14", tr.String())
			},
		},
		{
			name:  "left-right",
			items: []int{7, 2, 3},
			post: func(t *testing.T, tr *Tree[int], nodes []*Node[int]) {
				n7, n2, n3 := nodes[0], nodes[1], nodes[2]
				assert.Same(t, n3, tr.Top())
				assert.Same(t, n2, n3.Left())
				assert.Same(t, n7, n3.Right())

				assert.Equal(t, 1, tr.Top().Height())
				assert.Equal(t, -1, tr.Height(n2.Left()))
				assert.Equal(t, -1, tr.Height(n2.Right()))
				assert.Equal(t, -1, tr.Height(n7.Left()))
				assert.Equal(t, -1, tr.Height(n7.Right()))

				assert.Equal(t, " | 3 | 2 | 7", tr.String())
			},
		},
		{
			name:  "right-left",
			items: []int{7, 9, 8},
			post: func(t *testing.T, tr *Tree[int], nodes []*Node[int]) {
				n7, n9, n8 := nodes[0], nodes[1], nodes[2]
				assert.Same(t, n8, tr.Top())
				assert.Same(t, n7, n8.Left())
				assert.Same(t, n9, n8.Right())

				assert.Equal(t, 1, tr.Top().Height())
				assert.Equal(t, 0, tr.Top().Left().Height())
				assert.Equal(t, 0, tr.Top().Right().Height())

				assert.Equal(t, " | 8 | 7 | 9", tr.String())
			},
		},
		{
			name:  "descending run",
			items: []int{7, 4, 3, 2, 1},
			post: func(t *testing.T, tr *Tree[int], nodes []*Node[int]) {
				n7, n4, n3, n2, n1 := nodes[0], nodes[1], nodes[2], nodes[3], nodes[4]
				assert.Same(t, n4, tr.Top())
				assert.Same(t, n2, n4.Left())
				assert.Same(t, n7, n4.Right())
				assert.Same(t, n1, n2.Left())
				assert.Same(t, n3, n2.Right())
				assert.Equal(t, 0, n7.Height())
				assert.Equal(t, 2, n4.Height())
				assert.Equal(t, 1, n2.Height())

				assert.Equal(t, " | 4 | 2 | 1 | 3 | 7", tr.String())
			},
		},
		{
			name:  "ascending run",
			items: []int{7, 8, 9, 10, 11},
			post: func(t *testing.T, tr *Tree[int], nodes []*Node[int]) {
				n7, n8, n9, n10, n11 := nodes[0], nodes[1], nodes[2], nodes[3], nodes[4]
				assert.Same(t, n8, tr.Top())
				assert.Same(t, n10, n8.Right())
				assert.Same(t, n7, n8.Left())
				assert.Same(t, n11, n10.Right())
				assert.Same(t, n9, n10.Left())
				assert.Equal(t, 2, tr.Top().Height())
				assert.Equal(t, 1, n10.Height())
				assert.Equal(t, 0, n7.Height())

				assert.Equal(t, " | 8 | 7 | 10 | 9 | 11", tr.String())
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewOrdered[int]()
			nodes := make([]*Node[int], len(tt.items))
			for i, k := range tt.items {
				nodes[i] = newNode(t, k)
				assert.True(t, tr.InsertNode(nodes[i]))
			}

			tt.post(t, tr, nodes)
			assert.NoError(t, tr.Check())
			assert.Equal(t, len(tt.items), tr.Len())
		})
	}
}

func TestTree_HeightAndBalance(t *testing.T) {
	tr := NewOrdered[int]()
	n7, n4, n9, n3, n5 := newNode(t, 7), newNode(t, 4), newNode(t, 9), newNode(t, 3), newNode(t, 5)

	tr.InsertNode(n7)
	assert.Equal(t, 0, n7.Height())
	assert.Equal(t, 0, tr.Balance(n7))

	tr.InsertNode(n4)
	assert.Equal(t, 0, n4.Height())
	assert.Equal(t, 1, n7.Height())
	assert.Equal(t, -1, tr.Balance(n7))
	assert.Equal(t, 0, tr.Balance(n4))

	tr.InsertNode(n9)
	assert.Equal(t, 0, n9.Height())
	assert.Equal(t, 1, n7.Height())
	assert.Equal(t, 0, tr.Balance(n7))
	assert.Equal(t, 0, tr.Balance(n9))

	tr.InsertNode(n3)
	assert.Equal(t, 0, n3.Height())
	assert.Equal(t, 1, n4.Height())
	assert.Equal(t, 2, n7.Height())
	assert.Equal(t, -1, tr.Balance(n4))
	assert.Equal(t, -1, tr.Balance(n7))
	assert.Equal(t, 0, tr.Balance(n3))

	tr.InsertNode(n5)
	assert.Equal(t, 0, n5.Height())
	assert.Equal(t, 1, n4.Height())
	assert.Equal(t, 2, n7.Height())
	assert.Equal(t, 0, tr.Balance(n4))
	assert.Equal(t, -1, tr.Balance(n7))
	assert.Equal(t, 0, tr.Balance(n5))

	assert.Equal(t, " | 7 | 4 | 3 | 5 | 9", tr.String())
	assert.Equal(t, 0, tr.Balance(nil))
}

func TestTree_Insert_Duplicate(t *testing.T) {
	tr := NewOrdered[int]()

	ok, err := tr.Insert(1)
	require.NoError(t, err)
	assert.True(t, ok)

	first := tr.Top()

	ok, err = tr.Insert(1)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Same(t, first, tr.Top())
	assert.Equal(t, 1, tr.Len())
	assert.Equal(t, " | 1", tr.String())

	dup := newNode(t, 1)
	assert.False(t, tr.InsertNode(dup))
	assert.False(t, dup.HasParent())
}

func TestTree_Insert_Nil(t *testing.T) {
	tr := New[*int](func(a, b *int) int { return int(tree.Compare(*a, *b)) })

	ok, err := tr.Insert(nil)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.True(t, tr.IsEmpty())
	assert.Equal(t, 0, tr.Len())
}

func TestTree_InsertNode_Linked(t *testing.T) {
	tr := NewOrdered[int]()
	insertItems(t, tr, 2, 1, 3)

	assert.Panics(t, func() {
		tr.InsertNode(tr.Search(1))
	})
	assert.Panics(t, func() {
		tr.InsertNode(tr.Top())
	})
	assert.Panics(t, func() {
		tr.InsertNode(nil)
	})
}

func TestTree_InsertNode_OtherTree(t *testing.T) {
	a, b := NewOrdered[int](), NewOrdered[int]()
	n := newNode(t, 5)

	// n is the whole of a, so it has no links at all
	require.True(t, a.InsertNode(n))
	assert.PanicsWithValue(t, "cannot InsertNode a node that is already in a tree", func() {
		b.InsertNode(n)
	})
	assert.True(t, b.IsEmpty())

	insertItems(t, a, 6, 7)
	assert.Equal(t, " | 6 | 5 | 7", a.String())
	assert.NoError(t, a.Check())

	// a deleted node is free to join another tree
	m := a.Search(7)
	require.True(t, a.Delete(7))
	assert.True(t, b.InsertNode(m))
	insertItems(t, b, 8, 9)
	assert.Equal(t, " | 8 | 7 | 9", b.String())
	assert.NoError(t, a.Check())
	assert.NoError(t, b.Check())
}

func TestTree_InsertNode_NilItem(t *testing.T) {
	tests := []struct {
		name  string
		items []int
	}{
		{name: "empty tree"},
		{name: "non-empty tree", items: []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := New[*int](func(a, b *int) int { return int(tree.Compare(*a, *b)) })
			for i := range tt.items {
				_, err := tr.Insert(&tt.items[i])
				require.NoError(t, err)
			}

			assert.PanicsWithValue(t, "cannot InsertNode a node with a nil item", func() {
				tr.InsertNode(&Node[*int]{})
			})
			assert.Equal(t, len(tt.items), tr.Len())
			assert.NoError(t, tr.Check())
		})
	}
}

func TestTree_Strings(t *testing.T) {
	tr := NewOrdered[string]()
	insertItems(t, tr, "kiwi", "apple", "fig", "banana", "cherry")

	assert.Equal(t, []string{"apple", "banana", "cherry", "fig", "kiwi"}, tr.Items())
	assert.NoError(t, tr.Check())
}

func TestTree_ReverseComparator(t *testing.T) {
	tr := New(tree.Reverse(tree.Ordered[int]()))
	insertItems(t, tr, 1, 2, 3, 4, 5)

	assert.Equal(t, []int{5, 4, 3, 2, 1}, tr.Items())
	assert.Equal(t, 5, tr.Min().Item())
	assert.NoError(t, tr.Check())
}
