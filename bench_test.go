package flatveb_test

import (
	"testing"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"

	flatveb "github.com/Hegdahl/flat-veb"
	"github.com/Hegdahl/flat-veb/internal/testutil"
)

const benchBits = 20

func benchValues(n int) []uint {
	rng := testutil.NewRNG(7)
	return rng.Uints(n, 1<<benchBits)
}

func BenchmarkInsert(b *testing.B) {
	values := benchValues(1 << 16)
	mask := len(values) - 1

	b.Run("flatveb", func(b *testing.B) {
		s := flatveb.NewWithBits(benchBits)
		b.ReportAllocs()
		for i := 0; b.Loop(); i++ {
			s.Insert(values[i&mask])
		}
	})

	b.Run("roaring", func(b *testing.B) {
		rb := roaring.New()
		b.ReportAllocs()
		for i := 0; b.Loop(); i++ {
			rb.Add(uint32(values[i&mask]))
		}
	})

	b.Run("treemap", func(b *testing.B) {
		m := treemap.NewWith(utils.UInt64Comparator)
		b.ReportAllocs()
		for i := 0; b.Loop(); i++ {
			m.Put(uint64(values[i&mask]), struct{}{})
		}
	})
}

func BenchmarkNext(b *testing.B) {
	values := benchValues(1 << 16)
	mask := len(values) - 1

	s := flatveb.NewWithBits(benchBits)
	rb := roaring.New()
	m := treemap.NewWith(utils.UInt64Comparator)
	for _, v := range values {
		s.Insert(v)
		rb.Add(uint32(v))
		m.Put(uint64(v), struct{}{})
	}

	b.Run("flatveb", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; b.Loop(); i++ {
			s.Next(values[i&mask])
		}
	})

	b.Run("roaring", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; b.Loop(); i++ {
			it := rb.Iterator()
			it.AdvanceIfNeeded(uint32(values[i&mask]))
			if it.HasNext() {
				_ = it.PeekNext()
			}
		}
	})

	b.Run("treemap", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; b.Loop(); i++ {
			m.Ceiling(uint64(values[i&mask]))
		}
	})
}

func BenchmarkRemoveInsertChurn(b *testing.B) {
	values := benchValues(1 << 16)
	mask := len(values) - 1

	s := flatveb.NewWithBits(benchBits)
	for _, v := range values {
		s.Insert(v)
	}

	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		v := values[i&mask]
		s.Remove(v)
		s.Insert(v)
	}
}

func BenchmarkIterate(b *testing.B) {
	s := flatveb.NewWithBits(benchBits)
	for _, v := range benchValues(1 << 14) {
		s.Insert(v)
	}

	b.ReportAllocs()
	for b.Loop() {
		it := s.Iter()
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}
