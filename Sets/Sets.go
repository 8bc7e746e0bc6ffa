// Package Sets defines the set interface implemented by the containers of this module.
package Sets

// Set of unique elements. Put and Remove report whether the set changed.
// Take returns some element without removing it; ordered implementations
// return their smallest one. Range stops as soon as f returns false.
type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Take() E
	Range(func(E) bool)
}
