package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
)

// LessFunc is a strict weak ordering: it reports whether a sorts before b.
// Two keys are equivalent when neither sorts before the other.
type LessFunc[T any] func(a, b T) bool

// FromComparator converts a gods three-way comparator, such as utils.IntComparator
// or utils.StringComparator, into a LessFunc.
func FromComparator[T any](c utils.Comparator) LessFunc[T] {
	return func(a, b T) bool {
		return c(a, b) < 0
	}
}

// natural order of cmp.Ordered keys.
func natural[T cmp.Ordered](a, b T) bool {
	return cmp.Less(a, b)
}

func (l LessFunc[T]) equiv(a, b T) bool {
	return !l(a, b) && !l(b, a)
}
