// Package tree holds the ordering primitives shared by the tree
// implementations in this module.
package tree

import (
	"golang.org/x/exp/constraints"
)

type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Comparator is a total order over T. It returns a negative number
// if a < b, zero if a == b and a positive number if a > b.
//
// Trees trust the comparator completely: one that is not transitive,
// or that disagrees with itself between calls, silently breaks the
// ordering invariant.
type Comparator[T any] func(a, b T) int

// OrderOf squashes any comparator result into an Order.
func OrderOf(c int) Order {
	if c < 0 {
		return Less
	} else if c > 0 {
		return Greater
	} else {
		return Equal
	}
}

// Compare orders any two values with the built-in operators.
// It can be converted to a Comparator directly:
//
//	var cmp Comparator[int] = func(a, b int) int { return int(Compare(a, b)) }
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}

// Ordered returns a Comparator for T based on Compare.
func Ordered[T constraints.Ordered]() Comparator[T] {
	return func(a, b T) int {
		return int(Compare(a, b))
	}
}

// Reverse flips the direction of a Comparator.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}
