package flatveb

import "iter"

// Iterator walks a set in ascending order by repeated successor queries.
// It is not restartable; create a new one to traverse again. Mutating the
// set during iteration leaves the traversal unspecified.
type Iterator struct {
	set    Set
	cursor uint
	done   bool
}

// Next returns the next element in ascending order, if any.
func (it *Iterator) Next() (uint, bool) {
	if it.done {
		return 0, false
	}
	v, ok := it.set.Next(it.cursor)
	if !ok {
		it.done = true
		return 0, false
	}
	if v+1 == it.set.Capacity() {
		it.done = true
	} else {
		it.cursor = v + 1
	}
	return v, true
}

// ReverseIterator walks a set in descending order by repeated predecessor
// queries. Same contract as Iterator otherwise.
type ReverseIterator struct {
	set    Set
	cursor uint
	done   bool
}

// Next returns the next element in descending order, if any.
func (it *ReverseIterator) Next() (uint, bool) {
	if it.done {
		return 0, false
	}
	v, ok := it.set.Prev(it.cursor)
	if !ok {
		it.done = true
		return 0, false
	}
	if v == 0 {
		it.done = true
	} else {
		it.cursor = v - 1
	}
	return v, true
}

// Values returns a lazy ascending sequence over the contents of s,
// usable with range-over-func.
func Values(s Set) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		it := s.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Backward returns a lazy descending sequence over the contents of s.
func Backward(s Set) iter.Seq[uint] {
	return func(yield func(uint) bool) {
		it := s.Reverse()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}
