package Trees

import (
	"github.com/ansel1/merry"
)

// Error kinds. Match them with merry.Is or errors.Is; the returned errors carry
// a stack and context values such as "index" and "order".
var (
	// ErrInvalidIterator is reported for an iterator that doesn't refer to a live node of the tree.
	ErrInvalidIterator = merry.New("invalid iterator")
	// ErrEndIterator is reported when the end position is dereferenced or erased.
	ErrEndIterator = merry.New("end iterator is not dereferenceable")
	// ErrCapacity is the allocation failure: every index of the arena's index type is taken.
	ErrCapacity = merry.New("tree index space exhausted")
)

func capacityError(size uint64) error {
	return merry.Here(ErrCapacity).WithValue("size", size)
}

func iteratorError(kind error, i uint64, o Order) error {
	return merry.Here(kind).WithValue("index", i).WithValue("order", o.String())
}
