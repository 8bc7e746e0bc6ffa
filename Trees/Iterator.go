package Trees

import (
	"golang.org/x/exp/constraints"
)

// Iterator is a position in a Tree together with the Order it walks in.
// It is a small value; moving it returns a new Iterator. It doesn't own the
// node it refers to and becomes invalid when that node is erased.
// The zero value is not usable.
type Iterator[T any, S constraints.Unsigned] struct {
	b *base[T, S]
	i S
	o Order
}

// Next position in the iterator's order. Next of the last element is the end position.
// Time: amortized O(1), O(D) worst case.
func (u Iterator[T, S]) Next() Iterator[T, S] {
	u.i = u.b.next(u.i, u.o)
	return u
}

// Prev position in the iterator's order. Prev of the end position is the last element.
// Time: amortized O(1), O(D) worst case.
func (u Iterator[T, S]) Prev() Iterator[T, S] {
	u.i = u.b.prev(u.i, u.o)
	return u
}

// Value at the position. Undefined at the end position.
func (u Iterator[T, S]) Value() T {
	return u.b.vs[u.i]
}

// Ref returns a pointer to the stored key. Modifying the key in a way that changes
// its position under the tree's ordering corrupts the tree.
func (u Iterator[T, S]) Ref() *T {
	return &u.b.vs[u.i]
}

// Equal reports whether both iterators refer to the same node, regardless of their orders.
func (u Iterator[T, S]) Equal(o Iterator[T, S]) bool {
	return u.b == o.b && u.i == o.i
}

// IsEnd reports whether u is the end position.
func (u Iterator[T, S]) IsEnd() bool {
	return u.i == 0
}

func (u Iterator[T, S]) Order() Order {
	return u.o
}

// As returns an iterator at the same position walking in order o.
func (u Iterator[T, S]) As(o Order) Iterator[T, S] {
	u.o = o
	return u
}

// Valid returns nil if u refers to a live node, an ErrEndIterator error at the
// end position, and an ErrInvalidIterator error otherwise. An iterator to an
// erased node whose slot was reused by a later insertion can't be detected.
func (u Iterator[T, S]) Valid() error {
	if u.b == nil {
		return iteratorError(ErrInvalidIterator, uint64(u.i), u.o)
	} else if u.i == 0 {
		return iteratorError(ErrEndIterator, 0, u.o)
	} else if !u.b.live(u.i) {
		return iteratorError(ErrInvalidIterator, uint64(u.i), u.o)
	}
	return nil
}

// Get is the checked version of Value.
func (u Iterator[T, S]) Get() (T, error) {
	if err := u.Valid(); err != nil {
		return *new(T), err
	}
	return u.b.vs[u.i], nil
}

// ReverseIterator adapts an Iterator to walk backwards. It refers to the element
// just before its base, so a ReverseIterator built on the end position yields the
// last element.
type ReverseIterator[T any, S constraints.Unsigned] struct {
	it Iterator[T, S]
}

// Reverse returns the ReverseIterator whose base is u.
func (u Iterator[T, S]) Reverse() ReverseIterator[T, S] {
	return ReverseIterator[T, S]{u}
}

func (u ReverseIterator[T, S]) Next() ReverseIterator[T, S] {
	u.it = u.it.Prev()
	return u
}

func (u ReverseIterator[T, S]) Prev() ReverseIterator[T, S] {
	u.it = u.it.Next()
	return u
}

func (u ReverseIterator[T, S]) Value() T {
	return u.it.Prev().Value()
}

func (u ReverseIterator[T, S]) Equal(o ReverseIterator[T, S]) bool {
	return u.it.Equal(o.it)
}

// Base returns the underlying iterator, which is one position after u's element.
func (u ReverseIterator[T, S]) Base() Iterator[T, S] {
	return u.it
}
