// Package Trees provides Tree, an unbalanced binary search tree holding unique
// keys whose nodes live in an index addressed arena.
//
// A Tree can be walked in three orders from the same links: in-order (ascending
// keys), pre-order (node, left, right) and post-order (left, right, node). Each
// order has a bidirectional Iterator whose end position is a sentinel shared by
// all three orders. Iterators walk the links without any auxiliary memory.
//
// Receivers follow these rules unless noted otherwise:
//   - Lookups of absent keys return the end position or a zero count, never an error.
//   - Stepping an iterator past either end, or reading the value at the end
//     position, is a caller error. The unchecked methods don't detect it; the
//     checked ones (Iterator.Valid, Iterator.Get, Tree.Remove) report it.
//   - Inserting never invalidates iterators. Erasing invalidates iterators to the
//     erased node, and, when the erased node has two children, iterators to its
//     in-order successor, whose key moves into the erased node's slot.
//   - Nothing is safe for concurrent use.
//
// No balancing is done, so the cost of every keyed operation is O(D), where D
// is the depth of the tree, and D can be as large as Size().
package Trees

// Order selects the traversal an Iterator follows. The zero value is InOrder.
type Order uint8

const (
	// InOrder visits left subtree, node, right subtree: ascending keys.
	InOrder Order = iota
	// PreOrder visits node, left subtree, right subtree.
	PreOrder
	// PostOrder visits left subtree, right subtree, node.
	PostOrder
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown order"
}

// Orders returns every traversal order in a new slice.
func Orders() []Order {
	return []Order{InOrder, PreOrder, PostOrder}
}
