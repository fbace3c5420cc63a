// Package flatveb implements a van Emde Boas tree: an ordered set of
// bounded-range integers supporting insert, remove, membership, successor
// and predecessor queries in O(log log U) time, where U is the fixed
// capacity of the set.
//
// # Quick Start
//
//	s := flatveb.New(1 << 24)
//
//	s.Insert(123)  // true: newly added
//	s.Insert(1337) // true
//	s.Insert(123)  // false: already present
//
//	s.Contains(123)      // true
//	v, ok := s.Next(124) // 1337, true
//
//	for v := range flatveb.Values(s) {
//	    // 123, 1337
//	}
//
// # Layout
//
// Recursive set structures are usually built from heap-allocated nodes.
// This implementation instead composes every size class as a single flat
// aggregate: an upper set indexing the non-empty clusters, a fixed-size
// array of lower sets, and a pair of cached extremes. No operation
// allocates or follows a pointer into a substructure, and memory use
// depends only on capacity, never on element count. An empty Tree24
// already occupies a little over 2 MB and does not grow as elements are
// inserted.
//
// The zero value of every concrete type is a valid empty set. New relies
// on this: it obtains zeroed heap storage directly, so even the largest
// size classes (hundreds of megabytes for Tree32) are never materialized
// on the stack.
//
// # Choosing a Size
//
// When the element width is known at compile time, use a concrete type
// (Set16 through Set128 for 4-7 bits, Tree8 through Tree32 above that)
// and avoid the interface indirection entirely. Otherwise New selects the
// smallest sufficient size class at runtime and returns it behind the Set
// interface. Tree32's capacity does not fit a 32-bit uint, so that class
// (and with it MaxBits = 32) exists on 64-bit platforms only.
//
// # Concurrency
//
// Instances are not synchronized. Concurrent read-only access is safe;
// mutation requires external exclusion by the caller.
package flatveb
