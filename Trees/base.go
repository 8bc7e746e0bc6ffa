package Trees

import (
	"golang.org/x/exp/constraints"
)

// Links of a node in the Tree. A link of 0 in l or r means there is no child;
// a p of 0 means the parent is the sentinel, i.e. the node is the root.
// The zero value is meaningful: it is an empty sentinel.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

// base is the node arena shared by a Tree and all of its iterators.
// ifs[0] is the sentinel. Its l is the root, its r caches the in-order first
// node and its p caches the post-order first node; all three are 0 when the
// tree is empty. Released slots are chained through info.l starting at free
// and have their p set to released.
type base[T any, S constraints.Unsigned] struct {
	ifs  []info[S]
	vs   []T // vs[i] is the key held by ifs[i]; vs[0] is never read.
	free S
	sz   S
}

// released marks a slot sitting in the free list. It is never a valid index,
// which is why the index space stops at ^S(0)-1.
func released[S constraints.Unsigned]() S {
	return ^S(0)
}

// maxHint caps the room reserved up front; larger hints grow on demand.
const maxHint = 1 << 20

func newBase[T any, S constraints.Unsigned](hint S) *base[T, S] {
	n := int(min(uint64(hint), maxHint)) + 1
	ifs := make([]info[S], 1, n)
	vs := make([]T, 1, n)
	return &base[T, S]{ifs: ifs, vs: vs}
}

func (u *base[T, S]) getIf(i S) *info[S] {
	return &u.ifs[i]
}

func (u *base[T, S]) root() S {
	return u.ifs[0].l
}

// addFree puts slot a on the free list and drops its key.
func (u *base[T, S]) addFree(a S) {
	u.vs[a] = *new(T)
	u.ifs[a] = info[S]{l: u.free, p: released[S]()}
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	if b != 0 {
		u.free = u.ifs[b].l
	}
	return b
}

// alloc a detached leaf holding v. Holes are filled before appending. Panics
// with ErrCapacity once the index space of S is used up.
func (u *base[T, S]) alloc(v T) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i], u.vs[i] = info[S]{}, v
		return i
	}
	if uint64(len(u.ifs)) >= uint64(released[S]()) {
		panic(capacityError(uint64(len(u.ifs)) - 1))
	}
	u.ifs = append(u.ifs, info[S]{})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// live reports whether i currently refers to a node holding a key.
func (u *base[T, S]) live(i S) bool {
	return i != 0 && int(i) < len(u.ifs) && u.ifs[i].p != released[S]()
}

func (u *base[T, S]) leftmost(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

func (u *base[T, S]) rightmost(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// postFirst descends from i, taking the left child when there is one and the
// right child otherwise, until a leaf. That leaf comes first in post-order.
func (u *base[T, S]) postFirst(i S) S {
	for {
		if n := u.ifs[i]; n.l != 0 {
			i = n.l
		} else if n.r != 0 {
			i = n.r
		} else {
			return i
		}
	}
}

// preLast is the mirror of postFirst, preferring right. That leaf comes last in pre-order.
func (u *base[T, S]) preLast(i S) S {
	for {
		if n := u.ifs[i]; n.r != 0 {
			i = n.r
		} else if n.l != 0 {
			i = n.l
		} else {
			return i
		}
	}
}

// resetPostFirst recomputes the post-order anchor by descent from the root.
func (u *base[T, S]) resetPostFirst() {
	if r := u.root(); r != 0 {
		u.ifs[0].p = u.postFirst(r)
	} else {
		u.ifs[0].p = 0
	}
}

// splice replaces x with c under x's parent. c may be 0.
func (u *base[T, S]) splice(x, c S) {
	p := u.ifs[x].p
	if p == 0 {
		u.ifs[0].l = c
	} else if u.ifs[p].l == x {
		u.ifs[p].l = c
	} else {
		u.ifs[p].r = c
	}
	if c != 0 {
		u.ifs[c].p = p
	}
}

// Clear the arena. Keys are zeroed so they can be collected; capacity is kept.
func (u *base[T, S]) clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:1]
	u.ifs[0] = info[S]{}
	u.free, u.sz = 0, 0
}
