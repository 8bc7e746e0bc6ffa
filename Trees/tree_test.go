package Trees

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/ansel1/merry"
)

var rg = *rand.New(rand.NewSource(0))
var cache [4]uint

func (u *Tree[T, S]) _depth(curI S, d byte) {
	cur := u.getIf(curI)
	if cur.l != 0 {
		u._depth(cur.l, d+1)
	}
	if cur.r != 0 {
		u._depth(cur.r, d+1)
	}
	if cur.l == 0 && cur.r == 0 {
		cache[0]++
		cache[1] += uint(d)
	}
}

// depth is the average depth of the leaves.
func (u *Tree[T, S]) depth() float32 {
	if u.root() == 0 {
		return 0
	}
	cache[0], cache[1] = 0, 0
	u._depth(u.root(), 1)
	return float32(cache[1]) / float32(cache[0])
}

// corrupt checks the links, the ordering, the size and the three sentinel
// anchors. Returns a description of the first problem found.
func (u *Tree[T, S]) corrupt() string {
	r := u.root()
	if r == 0 {
		if u.ifs[0] != (info[S]{}) || u.sz != 0 {
			return "empty tree with anchors or size set"
		}
		return ""
	}
	if u.ifs[r].p != 0 {
		return "root has a parent"
	}
	var n S
	var walk func(i S, lo, hi *T) string
	walk = func(i S, lo, hi *T) string {
		n++
		v := u.vs[i]
		if (lo != nil && !u.less(*lo, v)) || (hi != nil && !u.less(v, *hi)) {
			return "ordering violated"
		}
		if c := u.ifs[i].l; c != 0 {
			if u.ifs[c].p != i {
				return "bad parent link"
			}
			if s := walk(c, lo, &v); s != "" {
				return s
			}
		}
		if c := u.ifs[i].r; c != 0 {
			if u.ifs[c].p != i {
				return "bad parent link"
			}
			if s := walk(c, &v, hi); s != "" {
				return s
			}
		}
		return ""
	}
	if s := walk(r, nil, nil); s != "" {
		return s
	}
	if n != u.sz {
		return "size mismatch"
	}
	if u.ifs[0].r != u.leftmost(r) {
		return "stale in-order anchor"
	}
	if u.ifs[0].p != u.postFirst(r) {
		return "stale post-order anchor"
	}
	return ""
}

const (
	tAddN        uint16 = 4000
	tAddValRange        = 8000
)

func TestTree_Insert(t *testing.T) {
	tree := New[int, uint16](1)
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		it, c := tree.Insert(b)
		if !in && !c {
			t.Errorf("failed to insert key %v", b)
		} else if in && c {
			t.Errorf("inserted repeated key %v", b)
		}
		if it.Value() != b || !it.Equal(tree.Find(b)) {
			t.Errorf("wrong position for key %v", b)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if s := tree.corrupt(); s != "" {
		t.Fatal(s)
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k := range content {
		if !tree.Contains(k) || tree.Count(k) != 1 {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for v := range tree.All(InOrder) {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
}

func TestTree_Erase(t *testing.T) {
	tree := New[int, uint16](1)
	content := make(map[int]struct{})
	if tree.EraseValue(0) != 0 {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		tree.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		if b := tree.EraseValue(a[i]); (b == 1) != in {
			t.Errorf("failed to delete key %v", a[i])
		}
		if tree.EraseValue(a[i]) != 0 {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
		if i%97 == 0 {
			if s := tree.corrupt(); s != "" {
				t.Fatalf("after deleting %v: %s", a[i], s)
			}
		}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if s := tree.corrupt(); s != "" {
		t.Fatal(s)
	}
	t.Logf("depth: %f, size: %d.\n", tree.depth(), tree.Size())
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	// released slots are exactly the ones on the free list.
	free := make(map[uint16]struct{})
	for f := tree.free; f != 0; f = tree.ifs[f].l {
		free[f] = struct{}{}
	}
	for i := 1; i < len(tree.ifs); i++ {
		_, in := free[uint16(i)]
		if in == tree.live(uint16(i)) {
			t.Errorf("slot %d: on free list %v, live %v", i, in, tree.live(uint16(i)))
		}
	}
}

func TestTree_InsertErase(t *testing.T) {
	tree := New[int, uint16](0)
	content := make(map[int]struct{})
	for range 4 * int(tAddN) {
		v := rg.Intn(tAddValRange / 8)
		if rg.Uint32()&1 == 0 {
			tree.Insert(v)
			content[v] = struct{}{}
		} else {
			_, in := content[v]
			if b := tree.EraseValue(v); (b == 1) != in {
				t.Fatalf("wrong erase result for key %v", v)
			}
			delete(content, v)
		}
	}
	if s := tree.corrupt(); s != "" {
		t.Fatal(s)
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	// slots are reused, so the arena never holds more than the peak size.
	if len(tree.ifs)-1 > tAddValRange/8 {
		t.Errorf("arena grew to %d slots for %d distinct keys", len(tree.ifs)-1, tAddValRange/8)
	}
	s := slices.Collect(tree.All(InOrder))
	if len(s) != len(content) || !slices.IsSorted(s) {
		t.Errorf("in-order isn't the sorted content")
	}
}

func TestTree_EraseIterator(t *testing.T) {
	tree := New[int, uint16](0)
	for range tAddN {
		tree.Insert(rg.Intn(tAddValRange))
	}
	sorted := slices.Collect(tree.All(InOrder))
	for len(sorted) > 0 {
		k := rg.Intn(len(sorted))
		next := tree.Erase(tree.Find(sorted[k]).As(Orders()[k%3]))
		if next.Order() != Orders()[k%3] {
			t.Fatalf("erase changed the order to %v", next.Order())
		}
		sorted = slices.Delete(sorted, k, k+1)
		if k == len(sorted) {
			if !next.IsEnd() {
				t.Fatalf("erasing the maximum returned %v, want end", next.Value())
			}
		} else if next.Value() != sorted[k] {
			t.Fatalf("erase returned %v, want %v", next.Value(), sorted[k])
		}
		if k%31 == 0 {
			if s := tree.corrupt(); s != "" {
				t.Fatal(s)
			}
		}
	}
	if !tree.Empty() || !tree.Equal(New[int, uint16](0)) {
		t.Fatal("tree isn't empty")
	}
}

func TestTree_EraseRange(t *testing.T) {
	tree := From[int, uint16](50, 25, 75, 12, 37, 62, 87, 6, 18, 31, 43, 56, 68, 81, 93)
	// 31 is the successor of 25, which has two children: erasing 25 moves 31 into its slot.
	last := tree.EraseRange(tree.Find(25), tree.Find(31))
	if last.Value() != 31 {
		t.Fatalf("erase range returned %v, want 31", last.Value())
	}
	got := slices.Collect(tree.All(InOrder))
	if want := []int{6, 12, 18, 31, 37, 43, 50, 56, 62, 68, 75, 81, 87, 93}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	last = tree.EraseRange(tree.LowerBound(40), tree.Find(75))
	if last.Value() != 75 {
		t.Fatalf("erase range returned %v, want 75", last.Value())
	}
	if s := tree.corrupt(); s != "" {
		t.Fatal(s)
	}
	got = slices.Collect(tree.All(InOrder))
	if want := []int{6, 12, 18, 31, 37, 75, 81, 87, 93}; !slices.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if !tree.EraseRange(tree.Begin(InOrder), tree.End(InOrder)).IsEnd() || !tree.Empty() {
		t.Fatal("full range erase left keys")
	}
	if s := tree.corrupt(); s != "" {
		t.Fatal(s)
	}
}

func TestTree_Bounds(t *testing.T) {
	content := make([]int, tAddN)
	for i := range content {
		content[i] = i * 2
	}
	shuffled := slices.Clone(content)
	rg.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	tree := From[int, uint16](shuffled...)
	for i, v := range content {
		if lb := tree.LowerBound(v); lb.Value() != v {
			t.Fatalf("wrong lower bound of %d: %d", v, lb.Value())
		}
		ub := tree.UpperBound(v)
		if i == len(content)-1 {
			if !ub.IsEnd() {
				t.Fatalf("upper bound of the maximum isn't end")
			}
		} else if ub.Value() != content[i+1] {
			t.Fatalf("wrong upper bound of %d: %d", v, ub.Value())
		}
		if i < len(content)-1 {
			lo, hi := tree.EqualRange(v + 1)
			if !lo.Equal(hi) || lo.Value() != content[i+1] {
				t.Fatalf("equal range of absent %d isn't empty at %d", v+1, content[i+1])
			}
		}
		lo, hi := tree.EqualRange(v)
		if !lo.Next().Equal(hi) {
			t.Fatalf("equal range of %d doesn't hold one key", v)
		}
	}
	if lb := tree.LowerBound(-1); lb.Value() != 0 {
		t.Fatalf("wrong lower bound of -1: %d", lb.Value())
	}
	if !tree.LowerBound(2*int(tAddN)).IsEnd() || !tree.UpperBound(2*int(tAddN)).IsEnd() {
		t.Fatal("bounds above the maximum aren't end")
	}
	if !New[int, uint8](0).LowerBound(1).IsEnd() {
		t.Fatal("lower bound in an empty tree isn't end")
	}
}

func TestTree_CopySwapEqual(t *testing.T) {
	a := From[int, uint16](7, 13, 2, 6)
	b := a.Clone()
	if !a.Equal(b) || !b.Equal(a) {
		t.Fatal("clone isn't equal")
	}
	a.EraseValue(7)
	a.Insert(7)
	if a.Equal(b) {
		t.Fatal("different shapes compare equal")
	}
	if !slices.Equal(slices.Collect(a.All(InOrder)), slices.Collect(b.All(InOrder))) {
		t.Fatal("same keys expected")
	}
	a.Assign(b)
	if !a.Equal(b) {
		t.Fatal("assigned tree isn't equal")
	}
	a.Assign(a)

	c := From[int, uint16](18)
	it := a.Find(13)
	a.Swap(c)
	if a.Size() != 1 || !a.Contains(18) || c.Size() != 4 || !c.Contains(13) {
		t.Fatal("swap didn't exchange contents")
	}
	if it.Value() != 13 || !it.Equal(c.Find(13)) || !it.Next().IsEnd() {
		t.Fatal("iterator didn't follow its node")
	}
	c.Insert(10)
	if a.Size() != 1 {
		t.Fatal("trees share state after swap")
	}

	a.Clear()
	if !a.Empty() || a.Size() != 0 || !a.Equal(New[int, uint16](0)) {
		t.Fatal("cleared tree isn't like a new one")
	}
	a.AssignValues(1, 6, 7, 8, 10)
	if a.Size() != 5 || !a.Contains(7) || a.Contains(18) {
		t.Fatal("assign values")
	}
}

func TestTree_Checked(t *testing.T) {
	tree := From[int, uint16](4, 2, 6)
	if _, err := tree.End(InOrder).Get(); !merry.Is(err, ErrEndIterator) {
		t.Fatalf("want end iterator error, got %v", err)
	}
	it := tree.Find(2)
	if v, err := it.Get(); err != nil || v != 2 {
		t.Fatalf("get: %v %v", v, err)
	}
	if _, err := tree.Remove(it); err != nil {
		t.Fatal(err)
	}
	if _, err := tree.Remove(it); !merry.Is(err, ErrInvalidIterator) {
		t.Fatalf("want invalid iterator error, got %v", err)
	}
	if _, err := tree.Remove(From[int, uint16](4).Find(4)); !merry.Is(err, ErrInvalidIterator) {
		t.Fatalf("foreign iterator accepted: %v", err)
	}
	if _, err := tree.Remove(tree.End(PreOrder)); !merry.Is(err, ErrEndIterator) {
		t.Fatalf("end iterator accepted: %v", err)
	}
	if err := (Iterator[int, uint16]{}).Valid(); !merry.Is(err, ErrInvalidIterator) {
		t.Fatalf("zero iterator accepted: %v", err)
	}
	tree.Clear()
	if err := it.Valid(); !merry.Is(err, ErrInvalidIterator) {
		t.Fatalf("iterator valid after clear: %v", err)
	}
}

func TestTree_Capacity(t *testing.T) {
	tree := New[int, uint8](0)
	for i := range int(tree.MaxSize()) {
		tree.Insert(i)
	}
	if tree.Size() != tree.MaxSize() {
		t.Fatalf("size %d, want %d", tree.Size(), tree.MaxSize())
	}
	if _, in := tree.Insert(0); in {
		t.Fatal("repeated key inserted in a full tree")
	}
	func() {
		defer func() {
			if err, _ := recover().(error); !merry.Is(err, ErrCapacity) {
				t.Fatalf("want capacity error, got %v", err)
			}
		}()
		tree.Insert(-1)
	}()
	tree.EraseValue(100)
	if _, in := tree.Insert(-1); !in {
		t.Fatal("released slot not reused")
	}
}

func TestTree_StaleSuccessor(t *testing.T) {
	tree := From[int, uint16](50, 25, 75, 60, 90)
	root, succ := tree.Find(50), tree.Find(60)
	if tree.EraseValue(50) != 1 {
		t.Fatal("failed to erase the root")
	}
	// 60 moved into the root's slot; its own slot was released.
	if err := succ.Valid(); !merry.Is(err, ErrInvalidIterator) {
		t.Fatalf("iterator to the moved successor is still valid: %v", err)
	}
	if err := root.Valid(); err != nil || root.Value() != 60 {
		t.Fatalf("root slot holds %v: %v", root.Value(), err)
	}
	if !tree.Find(60).Equal(root) || !tree.Begin(PreOrder).Equal(root) {
		t.Fatal("60 isn't at the root")
	}
	if _, err := tree.Remove(succ); !merry.Is(err, ErrInvalidIterator) {
		t.Fatalf("released slot accepted: %v", err)
	}
	if s := tree.corrupt(); s != "" {
		t.Fatal(s)
	}
	if got := slices.Collect(tree.All(PreOrder)); !slices.Equal(got, []int{60, 25, 75, 90}) {
		t.Fatalf("pre-order %v", got)
	}
}

func TestTree_HugeHint(t *testing.T) {
	tree := New[int, uint](^uint(0) - 1)
	if cap(tree.ifs) > maxHint+1 || cap(tree.vs) > maxHint+1 {
		t.Fatalf("reserved %d slots", cap(tree.ifs))
	}
	big := New[int, uint64](New[int, uint64](0).MaxSize())
	for i := range 100 {
		tree.Insert(i)
		big.Insert(-i)
	}
	if tree.Size() != 100 || big.Size() != 100 || !big.Contains(-99) {
		t.Fatal("wrong size after inserting into hinted trees")
	}
	if c := NewFunc[string](uint32(1<<31), func(a, b string) bool { return a < b }); cap(c.vs) != maxHint+1 {
		t.Fatalf("reserved %d slots, want %d", cap(c.vs), maxHint+1)
	}
}
