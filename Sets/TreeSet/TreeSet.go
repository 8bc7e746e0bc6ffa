package TreeSet

import (
	"cmp"

	"github.com/g-m-twostay/go-bst/Sets"
	"github.com/g-m-twostay/go-bst/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is a Sets.Set kept in ascending order by a Trees.Tree.
type TreeSet[E any, S constraints.Unsigned] struct {
	t *Trees.Tree[E, S]
}

var _ Sets.Set[int] = (*TreeSet[int, uint])(nil)

func New[E cmp.Ordered, S constraints.Unsigned](hint S) *TreeSet[E, S] {
	return &TreeSet[E, S]{Trees.New[E](hint)}
}

// NewFunc returns a set ordered by less.
func NewFunc[E any, S constraints.Unsigned](hint S, less Trees.LessFunc[E]) *TreeSet[E, S] {
	return &TreeSet[E, S]{Trees.NewFunc[E](hint, less)}
}

// Put e in the set. Returns true if e wasn't in the set.
func (u *TreeSet[E, S]) Put(e E) bool {
	_, in := u.t.Insert(e)
	return in
}

func (u *TreeSet[E, S]) Has(e E) bool {
	return u.t.Contains(e)
}

// Remove e from the set. Returns true if the removal is successful.
func (u *TreeSet[E, S]) Remove(e E) bool {
	return u.t.EraseValue(e) == 1
}

func (u *TreeSet[E, S]) Size() uint {
	return uint(u.t.Size())
}

// Take returns the smallest element without removing it, or the zero value if the set is empty.
func (u *TreeSet[E, S]) Take() (e E) {
	if it := u.t.Begin(Trees.InOrder); !it.IsEnd() {
		e = it.Value()
	}
	return
}

// Range over the elements in ascending order until f returns false.
func (u *TreeSet[E, S]) Range(f func(E) bool) {
	for e := range u.t.All(Trees.InOrder) {
		if !f(e) {
			return
		}
	}
}

// Tree exposes the underlying tree, for bound queries and the other traversal orders.
func (u *TreeSet[E, S]) Tree() *Trees.Tree[E, S] {
	return u.t
}
