// Package avl is a self-balancing binary search tree (AVL tree)
// with parent pointers, which allow successor lookup, iteration
// and upward rebalancing without walking down from the root again.
//
// Items can be of any type, ordered by a tree.Comparator given
// when the Tree is created. Duplicate items are not stored: an
// insert of an item that compares equal to one already present
// is ignored.
//
// A Tree is not safe for concurrent use. Serialise access with a
// mutex if it has to be shared between goroutines.
package avl
