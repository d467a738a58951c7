package avl

import (
	"math/rand"

	"go.lepak.sg/avltree/tree"
)

// BuildRandom builds a tree with num items.
// Items are in the range [0, num) and are inserted in a random order.
// The seed for the random insert order is a parameter,
// which ensures repeatable results.
func BuildRandom(num int, seed int64) *Tree[int] {
	rd := rand.New(rand.NewSource(seed))

	items := make([]int, num)
	for i := 0; i < num; i++ {
		items[i] = i
	}

	rd.Shuffle(num, func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	tr := NewOrdered[int]()
	for _, k := range items {
		tr.InsertNode(&Node[int]{item: k})
	}

	return tr
}

// BuildFromItems builds a tree by inserting items in order.
// Duplicates are skipped. A nil item fails the whole build.
func BuildFromItems[T any](cmp tree.Comparator[T], items ...T) (*Tree[T], error) {
	tr := New(cmp)

	for _, item := range items {
		if _, err := tr.Insert(item); err != nil {
			return nil, err
		}
	}

	return tr, nil
}
