package flatveb_test

import (
	"fmt"
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
	"github.com/stretchr/testify/require"

	flatveb "github.com/Hegdahl/flat-veb"
	"github.com/Hegdahl/flat-veb/internal/testutil"
)

// referenceSet answers the ordered-set queries from a balanced tree and a
// roaring bitmap; it is the ground truth the vEB structure is checked
// against.
type referenceSet struct {
	m  *treemap.Map
	rb *roaring.Bitmap
}

func newReferenceSet() *referenceSet {
	return &referenceSet{
		m:  treemap.NewWith(utils.UInt64Comparator),
		rb: roaring.New(),
	}
}

func (r *referenceSet) insert(x uint) bool {
	if _, found := r.m.Get(uint64(x)); found {
		return false
	}
	r.m.Put(uint64(x), struct{}{})
	r.rb.Add(uint32(x))
	return true
}

func (r *referenceSet) remove(x uint) bool {
	if _, found := r.m.Get(uint64(x)); !found {
		return false
	}
	r.m.Remove(uint64(x))
	r.rb.Remove(uint32(x))
	return true
}

func (r *referenceSet) contains(x uint) bool {
	_, found := r.m.Get(uint64(x))
	return found
}

func (r *referenceSet) next(x uint) (uint, bool) {
	k, _ := r.m.Ceiling(uint64(x))
	if k == nil {
		return 0, false
	}
	return uint(k.(uint64)), true
}

func (r *referenceSet) prev(x uint) (uint, bool) {
	k, _ := r.m.Floor(uint64(x))
	if k == nil {
		return 0, false
	}
	return uint(k.(uint64)), true
}

func (r *referenceSet) first() (uint, bool) {
	k, _ := r.m.Min()
	if k == nil {
		return 0, false
	}
	return uint(k.(uint64)), true
}

func (r *referenceSet) last() (uint, bool) {
	k, _ := r.m.Max()
	if k == nil {
		return 0, false
	}
	return uint(k.(uint64)), true
}

func TestCrossCheckRandomOps(t *testing.T) {
	cases := []struct {
		bits uint
		ops  int
	}{
		{bits: 4, ops: 2000},
		{bits: 8, ops: 10000},
		{bits: 11, ops: 20000},
		{bits: 14, ops: 20000},
		{bits: 18, ops: 20000},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("bits=%d", tc.bits), func(t *testing.T) {
			rng := testutil.NewRNG(int64(tc.bits))
			s := flatveb.NewWithBits(tc.bits)
			ref := newReferenceSet()
			capacity := s.Capacity()

			for i := 0; i < tc.ops; i++ {
				x := rng.Uint(capacity)
				switch rng.Intn(6) {
				case 0, 1, 2:
					require.Equal(t, ref.insert(x), s.Insert(x), "insert %d", x)
				case 3:
					require.Equal(t, ref.remove(x), s.Remove(x), "remove %d", x)
				case 4:
					require.Equal(t, ref.contains(x), s.Contains(x), "contains %d", x)
				default:
					wantV, wantOK := ref.next(x)
					gotV, gotOK := s.Next(x)
					require.Equal(t, wantOK, gotOK, "next %d", x)
					if wantOK {
						require.Equal(t, wantV, gotV, "next %d", x)
					}

					wantV, wantOK = ref.prev(x)
					gotV, gotOK = s.Prev(x)
					require.Equal(t, wantOK, gotOK, "prev %d", x)
					if wantOK {
						require.Equal(t, wantV, gotV, "prev %d", x)
					}
				}

				// extremes stay in lockstep with the oracle
				wantV, wantOK := ref.first()
				gotV, gotOK := s.First()
				require.Equal(t, wantOK, gotOK)
				if wantOK {
					require.Equal(t, wantV, gotV)
				}
				wantV, wantOK = ref.last()
				gotV, gotOK = s.Last()
				require.Equal(t, wantOK, gotOK)
				if wantOK {
					require.Equal(t, wantV, gotV)
				}
				require.Equal(t, ref.m.Empty(), s.IsEmpty())
			}

			// final ascending sweep matches the roaring bitmap
			it := ref.rb.Iterator()
			for v := range flatveb.Values(s) {
				require.True(t, it.HasNext())
				require.Equal(t, uint(it.Next()), v)
			}
			require.False(t, it.HasNext())

			if !ref.rb.IsEmpty() {
				mn, ok := s.First()
				require.True(t, ok)
				require.Equal(t, uint(ref.rb.Minimum()), mn)
				mx, ok := s.Last()
				require.True(t, ok)
				require.Equal(t, uint(ref.rb.Maximum()), mx)
			}
		})
	}
}

// Successor queries cross-checked against roaring's peekable iterator.
func TestSuccessorAgainstRoaring(t *testing.T) {
	const bits = 12

	rng := testutil.NewRNG(99)
	s := flatveb.NewWithBits(bits)
	rb := roaring.New()

	for _, v := range rng.Uints(1500, 1<<bits) {
		s.Insert(v)
		rb.Add(uint32(v))
	}

	for x := uint(0); x < 1<<bits; x++ {
		it := rb.Iterator()
		it.AdvanceIfNeeded(uint32(x))

		v, ok := s.Next(x)
		require.Equal(t, it.HasNext(), ok, "next %d", x)
		if ok {
			require.Equal(t, uint(it.PeekNext()), v, "next %d", x)
		}
	}
}
