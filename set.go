package flatveb

//go:generate go run ./internal/gen

// Set is the uniform contract shared by every base set (Set16 through
// Set128), every composed size class (Tree8 through Tree32) and the
// instances returned by New.
//
// Position arguments must be in [0, Capacity()). Out-of-range positions
// are contract violations, not recoverable errors: they go unchecked in
// normal builds and panic under the vebcheck build tag.
type Set interface {
	// Clear removes all elements.
	Clear()
	// IsEmpty reports whether the set contains no elements.
	IsEmpty() bool
	// Contains reports whether x is in the set.
	Contains(x uint) bool
	// Insert adds x to the set and reports whether it was newly added.
	Insert(x uint) bool
	// Remove deletes x from the set and reports whether it was present.
	Remove(x uint) bool
	// Next returns the smallest element greater than or equal to x, if any.
	Next(x uint) (uint, bool)
	// Prev returns the largest element smaller than or equal to x, if any.
	Prev(x uint) (uint, bool)
	// First returns the minimum element, if any.
	First() (uint, bool)
	// Last returns the maximum element, if any.
	Last() (uint, bool)
	// Capacity returns the number of representable values.
	Capacity() uint
	// Iter returns an ascending iterator over the contents.
	Iter() Iterator
	// Reverse returns a descending iterator over the contents.
	Reverse() ReverseIterator
}
