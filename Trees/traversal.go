package Trees

// Successor and predecessor of every traversal order, computed from the links
// alone: no stack, no recursion. Index 0 stands for the sentinel, which is the
// end position of every order. Stepping past either end is a caller error and
// the result is unspecified.

func (u *base[T, S]) next(i S, o Order) S {
	switch o {
	case PreOrder:
		return u.preNext(i)
	case PostOrder:
		return u.postNext(i)
	default:
		return u.inNext(i)
	}
}

func (u *base[T, S]) prev(i S, o Order) S {
	switch o {
	case PreOrder:
		return u.prePrev(i)
	case PostOrder:
		return u.postPrev(i)
	default:
		return u.inPrev(i)
	}
}

// begin returns the first node of order o, or 0 if the tree is empty.
func (u *base[T, S]) begin(o Order) S {
	switch o {
	case PreOrder:
		return u.ifs[0].l
	case PostOrder:
		return u.ifs[0].p
	default:
		return u.ifs[0].r
	}
}

func (u *base[T, S]) inNext(i S) S {
	if r := u.ifs[i].r; r != 0 {
		return u.leftmost(r)
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].r == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

// inPrev also works from the sentinel, whose l is the root.
func (u *base[T, S]) inPrev(i S) S {
	if l := u.ifs[i].l; l != 0 {
		return u.rightmost(l)
	}
	if i == 0 {
		return 0
	}
	p := u.ifs[i].p
	for p != 0 && u.ifs[p].l == i {
		i, p = p, u.ifs[p].p
	}
	return p
}

func (u *base[T, S]) preNext(i S) S {
	n := u.ifs[i]
	if n.l != 0 {
		return n.l
	} else if n.r != 0 {
		return n.r
	}
	// climb to the nearest ancestor entered from its left that also has a right subtree.
	for p := n.p; p != 0; i, p = p, u.ifs[p].p {
		if a := u.ifs[p]; a.l == i && a.r != 0 {
			return a.r
		}
	}
	return 0
}

func (u *base[T, S]) prePrev(i S) S {
	if i == 0 {
		if r := u.root(); r != 0 {
			return u.preLast(r)
		}
		return 0
	}
	p := u.ifs[i].p
	if p == 0 {
		return 0
	}
	if l := u.ifs[p].l; l == 0 || l == i {
		return p
	}
	return u.preLast(u.ifs[p].l)
}

func (u *base[T, S]) postNext(i S) S {
	p := u.ifs[i].p
	if p != 0 {
		if a := u.ifs[p]; a.l == i && a.r != 0 {
			return u.postFirst(a.r)
		}
	}
	return p
}

// postPrev from the sentinel yields the root, which is last in post-order.
func (u *base[T, S]) postPrev(i S) S {
	if i == 0 {
		return u.root()
	}
	n := u.ifs[i]
	if n.r != 0 {
		return n.r
	} else if n.l != 0 {
		return n.l
	}
	// climb to the nearest ancestor that is a right child with a left sibling.
	for p := n.p; p != 0; i, p = p, u.ifs[p].p {
		if a := u.ifs[p]; a.r == i && a.l != 0 {
			return a.l
		}
	}
	return 0
}
