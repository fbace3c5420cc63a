package flatveb

import "math/bits"

// The base cases of the recursion: sets over universes small enough to be
// a single fixed-width bit pattern, one flag bit per value. Extremes are
// not cached here; they fall out of leading/trailing zero counts.

// Set16 is an ordered integer set over the universe [0, 16).
// The zero value is an empty set ready for use.
type Set16 struct {
	bits uint16
}

// Capacity returns the number of representable values.
func (s *Set16) Capacity() uint { return 16 }

// Clear removes all elements.
func (s *Set16) Clear() { s.bits = 0 }

// IsEmpty reports whether the set contains no elements.
func (s *Set16) IsEmpty() bool { return s.bits == 0 }

// Contains reports whether x is in the set.
func (s *Set16) Contains(x uint) bool {
	checkBounds(x, 16)
	return s.bits>>x&1 != 0
}

// Insert adds x to the set and reports whether it was newly added.
func (s *Set16) Insert(x uint) bool {
	checkBounds(x, 16)
	prev := s.bits
	s.bits |= 1 << x
	return s.bits != prev
}

// Remove deletes x from the set and reports whether it was present.
func (s *Set16) Remove(x uint) bool {
	checkBounds(x, 16)
	prev := s.bits
	s.bits &^= 1 << x
	return s.bits != prev
}

// Next returns the smallest element greater than or equal to x, if any.
func (s *Set16) Next(x uint) (uint, bool) {
	checkBounds(x, 16)
	rest := s.bits &^ (1<<x - 1)
	if rest == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros16(rest)), true
}

// Prev returns the largest element smaller than or equal to x, if any.
func (s *Set16) Prev(x uint) (uint, bool) {
	checkBounds(x, 16)
	rest := s.bits
	if x < 15 {
		rest &= 1<<(x+1) - 1
	}
	if rest == 0 {
		return 0, false
	}
	return uint(15 - bits.LeadingZeros16(rest)), true
}

// First returns the minimum element, if any.
func (s *Set16) First() (uint, bool) {
	if s.bits == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros16(s.bits)), true
}

// Last returns the maximum element, if any.
func (s *Set16) Last() (uint, bool) {
	if s.bits == 0 {
		return 0, false
	}
	return uint(15 - bits.LeadingZeros16(s.bits)), true
}

// Iter returns an ascending iterator over the contents.
func (s *Set16) Iter() Iterator { return Iterator{set: s} }

// Reverse returns a descending iterator over the contents.
func (s *Set16) Reverse() ReverseIterator { return ReverseIterator{set: s, cursor: 15} }

// Set32 is an ordered integer set over the universe [0, 32).
// The zero value is an empty set ready for use.
type Set32 struct {
	bits uint32
}

// Capacity returns the number of representable values.
func (s *Set32) Capacity() uint { return 32 }

// Clear removes all elements.
func (s *Set32) Clear() { s.bits = 0 }

// IsEmpty reports whether the set contains no elements.
func (s *Set32) IsEmpty() bool { return s.bits == 0 }

// Contains reports whether x is in the set.
func (s *Set32) Contains(x uint) bool {
	checkBounds(x, 32)
	return s.bits>>x&1 != 0
}

// Insert adds x to the set and reports whether it was newly added.
func (s *Set32) Insert(x uint) bool {
	checkBounds(x, 32)
	prev := s.bits
	s.bits |= 1 << x
	return s.bits != prev
}

// Remove deletes x from the set and reports whether it was present.
func (s *Set32) Remove(x uint) bool {
	checkBounds(x, 32)
	prev := s.bits
	s.bits &^= 1 << x
	return s.bits != prev
}

// Next returns the smallest element greater than or equal to x, if any.
func (s *Set32) Next(x uint) (uint, bool) {
	checkBounds(x, 32)
	rest := s.bits &^ (1<<x - 1)
	if rest == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros32(rest)), true
}

// Prev returns the largest element smaller than or equal to x, if any.
func (s *Set32) Prev(x uint) (uint, bool) {
	checkBounds(x, 32)
	rest := s.bits
	if x < 31 {
		rest &= 1<<(x+1) - 1
	}
	if rest == 0 {
		return 0, false
	}
	return uint(31 - bits.LeadingZeros32(rest)), true
}

// First returns the minimum element, if any.
func (s *Set32) First() (uint, bool) {
	if s.bits == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros32(s.bits)), true
}

// Last returns the maximum element, if any.
func (s *Set32) Last() (uint, bool) {
	if s.bits == 0 {
		return 0, false
	}
	return uint(31 - bits.LeadingZeros32(s.bits)), true
}

// Iter returns an ascending iterator over the contents.
func (s *Set32) Iter() Iterator { return Iterator{set: s} }

// Reverse returns a descending iterator over the contents.
func (s *Set32) Reverse() ReverseIterator { return ReverseIterator{set: s, cursor: 31} }

// Set64 is an ordered integer set over the universe [0, 64).
// The zero value is an empty set ready for use.
type Set64 struct {
	bits uint64
}

// Capacity returns the number of representable values.
func (s *Set64) Capacity() uint { return 64 }

// Clear removes all elements.
func (s *Set64) Clear() { s.bits = 0 }

// IsEmpty reports whether the set contains no elements.
func (s *Set64) IsEmpty() bool { return s.bits == 0 }

// Contains reports whether x is in the set.
func (s *Set64) Contains(x uint) bool {
	checkBounds(x, 64)
	return s.bits>>x&1 != 0
}

// Insert adds x to the set and reports whether it was newly added.
func (s *Set64) Insert(x uint) bool {
	checkBounds(x, 64)
	prev := s.bits
	s.bits |= 1 << x
	return s.bits != prev
}

// Remove deletes x from the set and reports whether it was present.
func (s *Set64) Remove(x uint) bool {
	checkBounds(x, 64)
	prev := s.bits
	s.bits &^= 1 << x
	return s.bits != prev
}

// Next returns the smallest element greater than or equal to x, if any.
func (s *Set64) Next(x uint) (uint, bool) {
	checkBounds(x, 64)
	rest := s.bits &^ (1<<x - 1)
	if rest == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros64(rest)), true
}

// Prev returns the largest element smaller than or equal to x, if any.
func (s *Set64) Prev(x uint) (uint, bool) {
	checkBounds(x, 64)
	rest := s.bits
	if x < 63 {
		rest &= 1<<(x+1) - 1
	}
	if rest == 0 {
		return 0, false
	}
	return uint(63 - bits.LeadingZeros64(rest)), true
}

// First returns the minimum element, if any.
func (s *Set64) First() (uint, bool) {
	if s.bits == 0 {
		return 0, false
	}
	return uint(bits.TrailingZeros64(s.bits)), true
}

// Last returns the maximum element, if any.
func (s *Set64) Last() (uint, bool) {
	if s.bits == 0 {
		return 0, false
	}
	return uint(63 - bits.LeadingZeros64(s.bits)), true
}

// Iter returns an ascending iterator over the contents.
func (s *Set64) Iter() Iterator { return Iterator{set: s} }

// Reverse returns a descending iterator over the contents.
func (s *Set64) Reverse() ReverseIterator { return ReverseIterator{set: s, cursor: 63} }

// Set128 is an ordered integer set over the universe [0, 128), spread over
// two 64-bit words. The zero value is an empty set ready for use.
type Set128 struct {
	lo, hi uint64
}

// Capacity returns the number of representable values.
func (s *Set128) Capacity() uint { return 128 }

// Clear removes all elements.
func (s *Set128) Clear() { s.lo, s.hi = 0, 0 }

// IsEmpty reports whether the set contains no elements.
func (s *Set128) IsEmpty() bool { return s.lo == 0 && s.hi == 0 }

// Contains reports whether x is in the set.
func (s *Set128) Contains(x uint) bool {
	checkBounds(x, 128)
	if x < 64 {
		return s.lo>>x&1 != 0
	}
	return s.hi>>(x-64)&1 != 0
}

// Insert adds x to the set and reports whether it was newly added.
func (s *Set128) Insert(x uint) bool {
	checkBounds(x, 128)
	if x < 64 {
		prev := s.lo
		s.lo |= 1 << x
		return s.lo != prev
	}
	prev := s.hi
	s.hi |= 1 << (x - 64)
	return s.hi != prev
}

// Remove deletes x from the set and reports whether it was present.
func (s *Set128) Remove(x uint) bool {
	checkBounds(x, 128)
	if x < 64 {
		prev := s.lo
		s.lo &^= 1 << x
		return s.lo != prev
	}
	prev := s.hi
	s.hi &^= 1 << (x - 64)
	return s.hi != prev
}

// Next returns the smallest element greater than or equal to x, if any.
func (s *Set128) Next(x uint) (uint, bool) {
	checkBounds(x, 128)
	if x < 64 {
		if rest := s.lo &^ (1<<x - 1); rest != 0 {
			return uint(bits.TrailingZeros64(rest)), true
		}
		if s.hi != 0 {
			return 64 + uint(bits.TrailingZeros64(s.hi)), true
		}
		return 0, false
	}
	rest := s.hi &^ (1<<(x-64) - 1)
	if rest == 0 {
		return 0, false
	}
	return 64 + uint(bits.TrailingZeros64(rest)), true
}

// Prev returns the largest element smaller than or equal to x, if any.
func (s *Set128) Prev(x uint) (uint, bool) {
	checkBounds(x, 128)
	if x >= 64 {
		rest := s.hi
		if x < 127 {
			rest &= 1<<(x-63) - 1
		}
		if rest != 0 {
			return 64 + uint(63-bits.LeadingZeros64(rest)), true
		}
		if s.lo != 0 {
			return uint(63 - bits.LeadingZeros64(s.lo)), true
		}
		return 0, false
	}
	rest := s.lo
	if x < 63 {
		rest &= 1<<(x+1) - 1
	}
	if rest == 0 {
		return 0, false
	}
	return uint(63 - bits.LeadingZeros64(rest)), true
}

// First returns the minimum element, if any.
func (s *Set128) First() (uint, bool) {
	if s.lo != 0 {
		return uint(bits.TrailingZeros64(s.lo)), true
	}
	if s.hi != 0 {
		return 64 + uint(bits.TrailingZeros64(s.hi)), true
	}
	return 0, false
}

// Last returns the maximum element, if any.
func (s *Set128) Last() (uint, bool) {
	if s.hi != 0 {
		return 64 + uint(63-bits.LeadingZeros64(s.hi)), true
	}
	if s.lo != 0 {
		return uint(63 - bits.LeadingZeros64(s.lo)), true
	}
	return 0, false
}

// Iter returns an ascending iterator over the contents.
func (s *Set128) Iter() Iterator { return Iterator{set: s} }

// Reverse returns a descending iterator over the contents.
func (s *Set128) Reverse() ReverseIterator { return ReverseIterator{set: s, cursor: 127} }

// Compile time checks to ensure the base sets satisfy the Set contract.
var (
	_ Set = (*Set16)(nil)
	_ Set = (*Set32)(nil)
	_ Set = (*Set64)(nil)
	_ Set = (*Set128)(nil)
)
