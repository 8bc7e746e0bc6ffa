package Trees

import (
	"cmp"
	"iter"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Tree is an unbalanced binary search tree with no repeated keys.
// T is the type of the keys; S is the unsigned type used to index nodes, it
// bounds the number of keys to MaxSize(). Nodes are kept in an arena that grows
// like a slice and reuses the slots of erased nodes.
// A Tree must be created with one of the constructors.
type Tree[T any, S constraints.Unsigned] struct {
	*base[T, S]
	less LessFunc[T]
}

// New returns an empty tree ordered by the natural order of T. hint is the
// number of keys to reserve room for.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *Tree[T, S] {
	return &Tree[T, S]{newBase[T](hint), natural[T]}
}

// NewFunc returns an empty tree ordered by less.
func NewFunc[T any, S constraints.Unsigned](hint S, less LessFunc[T]) *Tree[T, S] {
	return &Tree[T, S]{newBase[T](hint), less}
}

// NewComparator returns an empty tree ordered by a gods comparator.
func NewComparator[T any, S constraints.Unsigned](hint S, c utils.Comparator) *Tree[T, S] {
	return NewFunc[T](hint, FromComparator[T](c))
}

// From the given keys, in the given insertion order. Repeated keys are ignored.
func From[T cmp.Ordered, S constraints.Unsigned](vs ...T) *Tree[T, S] {
	u := New[T](S(len(vs)))
	u.InsertAll(vs...)
	return u
}

// Collect the keys produced by seq into a new tree.
func Collect[T cmp.Ordered, S constraints.Unsigned](seq iter.Seq[T]) *Tree[T, S] {
	u := New[T, S](0)
	u.InsertSeq(seq)
	return u
}

// Clone returns a copy of u with the same ordering and the same shape.
// Time: O(n*D).
func (u *Tree[T, S]) Clone() *Tree[T, S] {
	c := NewFunc[T](u.sz, u.less)
	c.InsertSeq(u.All(PreOrder))
	return c
}

// Assign makes u a copy of o, keeping o's ordering. Nothing is done if the trees are already equal.
func (u *Tree[T, S]) Assign(o *Tree[T, S]) {
	if u == o || u.Equal(o) {
		return
	}
	u.Clear()
	u.less = o.less
	u.InsertSeq(o.All(PreOrder))
}

// AssignValues replaces the content of u with vs. The ordering is kept.
func (u *Tree[T, S]) AssignValues(vs ...T) {
	u.Clear()
	u.InsertAll(vs...)
}

func (u *Tree[T, S]) Size() S {
	return u.sz
}

func (u *Tree[T, S]) Empty() bool {
	return u.sz == 0
}

// MaxSize is the number of keys the index type can address.
func (u *Tree[T, S]) MaxSize() S {
	return released[S]() - 1
}

// KeyComp returns the ordering of the tree.
func (u *Tree[T, S]) KeyComp() LessFunc[T] {
	return u.less
}

// ValueComp is the same as KeyComp; keys are the values.
func (u *Tree[T, S]) ValueComp() LessFunc[T] {
	return u.less
}

func (u *Tree[T, S]) at(i S, o Order) Iterator[T, S] {
	return Iterator[T, S]{u.base, i, o}
}

// Begin returns the first position of order o.
func (u *Tree[T, S]) Begin(o Order) Iterator[T, S] {
	return u.at(u.begin(o), o)
}

// End returns the end position of order o. It is the same node for every order.
func (u *Tree[T, S]) End(o Order) Iterator[T, S] {
	return u.at(0, o)
}

// RBegin returns the first position of the reverse of order o.
func (u *Tree[T, S]) RBegin(o Order) ReverseIterator[T, S] {
	return u.End(o).Reverse()
}

// REnd returns the end position of the reverse of order o.
func (u *Tree[T, S]) REnd(o Order) ReverseIterator[T, S] {
	return u.Begin(o).Reverse()
}

// All yields the keys in order o. The tree mustn't be modified during the iteration.
func (u *Tree[T, S]) All(o Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := u.begin(o); i != 0; i = u.next(i, o) {
			if !yield(u.vs[i]) {
				return
			}
		}
	}
}

// Backward yields the keys in the reverse of order o, starting from the end position.
func (u *Tree[T, S]) Backward(o Order) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, b := u.prev(0, o), u.begin(o); i != 0; i = u.prev(i, o) {
			if !yield(u.vs[i]) || i == b {
				return
			}
		}
	}
}

// find the index of the node equivalent to v, 0 if none.
func (u *Tree[T, S]) find(v T) S {
	for curI := u.root(); curI != 0; {
		if cv := u.vs[curI]; u.less(v, cv) {
			curI = u.ifs[curI].l
		} else if u.less(cv, v) {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Find returns the in-order position of v, or the end position if v isn't in the tree.
// Time: O(D)
func (u *Tree[T, S]) Find(v T) Iterator[T, S] {
	return u.at(u.find(v), InOrder)
}

// Count returns 1 if v is in the tree, 0 otherwise.
func (u *Tree[T, S]) Count(v T) S {
	if u.find(v) != 0 {
		return 1
	}
	return 0
}

func (u *Tree[T, S]) Contains(v T) bool {
	return u.find(v) != 0
}

// LowerBound returns the in-order position of the least key not less than v, or
// the end position. Every node on the search path is checked as a candidate.
// Time: O(D)
func (u *Tree[T, S]) LowerBound(v T) Iterator[T, S] {
	var best S
	for curI := u.root(); curI != 0; {
		cv := u.vs[curI]
		if !u.less(cv, v) && (best == 0 || u.less(cv, u.vs[best])) {
			best = curI
		}
		if u.less(v, cv) {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return u.at(best, InOrder)
}

// UpperBound returns the in-order position of the least key greater than v, or
// the end position.
// Time: O(D)
func (u *Tree[T, S]) UpperBound(v T) Iterator[T, S] {
	var best S
	for curI := u.root(); curI != 0; {
		cv := u.vs[curI]
		if u.less(v, cv) {
			if best == 0 || u.less(cv, u.vs[best]) {
				best = curI
			}
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	return u.at(best, InOrder)
}

// EqualRange returns LowerBound(v) and UpperBound(v). Keys are unique, so the
// range holds at most one key.
func (u *Tree[T, S]) EqualRange(v T) (Iterator[T, S], Iterator[T, S]) {
	return u.LowerBound(v), u.UpperBound(v)
}

// Insert v into the tree. Returns the in-order position of the key equivalent to
// v and whether v was inserted. If it wasn't, the tree is unchanged.
// Panics with an ErrCapacity error if MaxSize() keys are already stored.
// Time: O(D)
func (u *Tree[T, S]) Insert(v T) (Iterator[T, S], bool) {
	if i := u.find(v); i != 0 {
		return u.at(i, InOrder), false
	}
	leaf := u.alloc(v)
	if curI := u.root(); curI == 0 {
		u.ifs[0] = info[S]{leaf, leaf, leaf}
	} else {
		for {
			if cur := u.getIf(curI); u.less(v, u.vs[curI]) {
				if cur.l == 0 {
					cur.l = leaf
					if u.ifs[0].r == curI {
						u.ifs[0].r = leaf
					}
					break
				}
				curI = cur.l
			} else {
				if cur.r == 0 {
					cur.r = leaf
					break
				}
				curI = cur.r
			}
		}
		u.ifs[leaf].p = curI
		u.resetPostFirst()
	}
	u.sz++
	return u.at(leaf, InOrder), true
}

// InsertAll inserts vs in the given order.
func (u *Tree[T, S]) InsertAll(vs ...T) {
	for _, v := range vs {
		u.Insert(v)
	}
}

// InsertSeq inserts every key produced by seq.
func (u *Tree[T, S]) InsertSeq(seq iter.Seq[T]) {
	for v := range seq {
		u.Insert(v)
	}
}

// InsertRange inserts the keys in [first, last), which may belong to another tree
// but not to u.
func (u *Tree[T, S]) InsertRange(first, last Iterator[T, S]) {
	for ; !first.Equal(last); first = first.Next() {
		u.Insert(first.Value())
	}
}

// Erase the node at it, which must be a live node of u. Returns the position of
// the in-order successor of the erased key, walking in its order.
// If the node has two children, its successor's key moves into its slot and the
// successor's slot is released instead; the returned position is then it itself,
// and iterators to the successor become invalid.
// Time: O(D)
func (u *Tree[T, S]) Erase(it Iterator[T, S]) Iterator[T, S] {
	i := it.i
	next := u.inNext(i)
	n := u.ifs[i]
	if n.l != 0 && n.r != 0 {
		// next is leftmost in n.r, so it has no left child.
		u.vs[i] = u.vs[next]
		u.splice(next, u.ifs[next].r)
		u.addFree(next)
		next = i
	} else {
		c := n.l
		if c == 0 {
			c = n.r
		}
		if u.ifs[0].r == i {
			u.ifs[0].r = next
		}
		u.splice(i, c)
		u.addFree(i)
	}
	if u.sz--; u.sz == 0 {
		u.ifs[0] = info[S]{}
	} else {
		u.resetPostFirst()
	}
	return u.at(next, it.o)
}

// EraseRange erases the in-order run [first, last) and returns last. If last
// is the in-order successor of a node with two children, last's slot is released
// when that node is erased; the returned position is then the node that took
// over last's key.
func (u *Tree[T, S]) EraseRange(first, last Iterator[T, S]) Iterator[T, S] {
	for !first.Equal(last) {
		if u.inNext(first.i) == last.i {
			return u.Erase(first).As(last.o)
		}
		first = u.Erase(first)
	}
	return last
}

// EraseValue erases the key equivalent to v. Returns the number of erased keys, 0 or 1.
func (u *Tree[T, S]) EraseValue(v T) S {
	if i := u.find(v); i != 0 {
		u.Erase(u.at(i, InOrder))
		return 1
	}
	return 0
}

// Remove is the checked version of Erase. It refuses iterators of other trees,
// the end position and erased nodes.
func (u *Tree[T, S]) Remove(it Iterator[T, S]) (Iterator[T, S], error) {
	if it.b != u.base {
		return it, iteratorError(ErrInvalidIterator, uint64(it.i), it.o)
	} else if err := it.Valid(); err != nil {
		return it, err
	}
	return u.Erase(it), nil
}

// Clear removes every key. The arena keeps its capacity. Every iterator except
// the end position becomes invalid.
func (u *Tree[T, S]) Clear() {
	u.clear()
}

// Swap the contents of u and o, including their orderings, in O(1). Iterators
// stay valid and follow their nodes into the other tree.
func (u *Tree[T, S]) Swap(o *Tree[T, S]) {
	u.base, o.base = o.base, u.base
	u.less, o.less = o.less, u.less
}

// Equal reports whether u and o have the same size and the same keys in
// pre-order, that is the same keys in the same shape. Keys are compared with
// u's ordering.
func (u *Tree[T, S]) Equal(o *Tree[T, S]) bool {
	if u.sz != o.sz {
		return false
	}
	for i, j := u.begin(PreOrder), o.begin(PreOrder); i != 0; i, j = u.preNext(i), o.preNext(j) {
		if !u.less.equiv(u.vs[i], o.vs[j]) {
			return false
		}
	}
	return true
}
