package flatveb

// This file holds the composite-node algorithms shared by every generated
// size class in sizes_gen.go. The generated types keep the flat layout
// (fixed-size lower arrays, no indirection); the bodies live here once, as
// generic functions over pointers into that layout.

// inner is implemented by pointers to every concrete set type composed by
// the generated size classes.
type inner interface {
	Clear()
	IsEmpty() bool
	Contains(x uint) bool
	Insert(x uint) bool
	Remove(x uint) bool
	Next(x uint) (uint, bool)
	Prev(x uint) (uint, bool)
	First() (uint, bool)
	Last() (uint, bool)
}

// innerPtr constrains a type parameter to *L while requiring the full
// operation set on the pointer receiver.
type innerPtr[L any] interface {
	*L
	inner
}

// extremes caches the minimum and maximum of a composite node, stored
// outside the recursive substructure. Values carry a +1 bias so that 0
// means "absent": the zero value of every node is a valid empty set and
// zeroed memory needs no patch pass after allocation.
//
// The cached minimum is never present in the substructure. That invariant
// is what bounds every insert and remove to at most one deep recursive
// call per level.
type extremes struct {
	min uint
	max uint
}

func (e *extremes) isEmpty() bool { return e.min == 0 }

func (e *extremes) first() (uint, bool) {
	if e.min == 0 {
		return 0, false
	}
	return e.min - 1, true
}

func (e *extremes) last() (uint, bool) {
	if e.min == 0 {
		return 0, false
	}
	return e.max - 1, true
}

// split decomposes x into its cluster index and in-cluster offset.
func split(x, lowerBits uint) (ux, lx uint) {
	return x >> lowerBits, x & (1<<lowerBits - 1)
}

func nodeClear[L any, PU inner, PL innerPtr[L]](e *extremes, upper PU, lower []L) {
	upper.Clear()
	for i := range lower {
		PL(&lower[i]).Clear()
	}
	e.min, e.max = 0, 0
}

func nodeContains[L any, PL innerPtr[L]](e *extremes, lower []L, lowerBits, x uint) bool {
	checkBounds(x, uint(len(lower))<<lowerBits)
	if x+1 < e.min || x+1 > e.max {
		return false
	}
	if x+1 == e.min || x+1 == e.max {
		return true
	}
	ux, lx := split(x, lowerBits)
	return PL(&lower[ux]).Contains(lx)
}

func nodeInsert[L any, PU inner, PL innerPtr[L]](e *extremes, upper PU, lower []L, lowerBits, x uint) bool {
	checkBounds(x, uint(len(lower))<<lowerBits)
	if e.min == 0 {
		e.min, e.max = x+1, x+1
		return true
	}

	// A value below the cached minimum displaces it; the old minimum is
	// what descends into the substructure.
	if x+1 < e.min {
		x, e.min = e.min-1, x+1
	}
	if x+1 == e.min {
		return false
	}
	if x+1 > e.max {
		e.max = x + 1
	}

	ux, lx := split(x, lowerBits)
	low := PL(&lower[ux])
	if low.IsEmpty() {
		upper.Insert(ux)
	}
	return low.Insert(lx)
}

func nodeRemove[L any, PU inner, PL innerPtr[L]](e *extremes, upper PU, lower []L, lowerBits, x uint) bool {
	checkBounds(x, uint(len(lower))<<lowerBits)
	if e.min == e.max {
		if e.min == x+1 {
			e.min, e.max = 0, 0
			return true
		}
		return false
	}

	// Removing the minimum promotes the second-smallest element into the
	// cache; that element is then what gets deleted below.
	if x+1 == e.min {
		nx, _ := nodeNext[L, PU, PL](e, upper, lower, lowerBits, x+1)
		x = nx
		e.min = x + 1
	}

	ux, lx := split(x, lowerBits)
	low := PL(&lower[ux])
	if !low.Remove(lx) {
		if checksEnabled && x+1 == e.max {
			panic("flatveb: cached maximum missing from substructure")
		}
		return false
	}
	if low.IsEmpty() {
		upper.Remove(ux)
	}
	if x+1 != e.min && x+1 == e.max {
		pv, _ := nodePrev[L, PU, PL](e, upper, lower, lowerBits, x-1)
		e.max = pv + 1
	}
	return true
}

func nodeNext[L any, PU inner, PL innerPtr[L]](e *extremes, upper PU, lower []L, lowerBits, x uint) (uint, bool) {
	checkBounds(x, uint(len(lower))<<lowerBits)
	if e.min == 0 || x+1 > e.max {
		return 0, false
	}
	if x+1 <= e.min {
		return e.min - 1, true
	}

	ux, lx := split(x, lowerBits)
	low := PL(&lower[ux])
	if last, ok := low.Last(); ok && lx <= last {
		nx, _ := low.Next(lx)
		return ux<<lowerBits + nx, true
	}

	// min < x <= max, so a later non-empty cluster must exist.
	nux, _ := upper.Next(ux + 1)
	first, _ := PL(&lower[nux]).First()
	return nux<<lowerBits + first, true
}

func nodePrev[L any, PU inner, PL innerPtr[L]](e *extremes, upper PU, lower []L, lowerBits, x uint) (uint, bool) {
	checkBounds(x, uint(len(lower))<<lowerBits)
	if e.min == 0 || x+1 < e.min {
		return 0, false
	}

	ux, lx := split(x, lowerBits)
	low := PL(&lower[ux])
	if first, ok := low.First(); ok && lx >= first {
		pv, _ := low.Prev(lx)
		return ux<<lowerBits + pv, true
	}

	if ux > 0 {
		if pux, ok := upper.Prev(ux - 1); ok {
			last, _ := PL(&lower[pux]).Last()
			return pux<<lowerBits + last, true
		}
	}

	// x sits inside or below the lowest populated cluster but is >= min.
	return e.min - 1, true
}
