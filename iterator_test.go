package flatveb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatveb "github.com/Hegdahl/flat-veb"
	"github.com/Hegdahl/flat-veb/internal/testutil"
)

func TestIteratorAscends(t *testing.T) {
	s := flatveb.NewWithBits(10)
	want := []uint{0, 1, 5, 9, 500, 1023}
	for _, v := range want {
		require.True(t, s.Insert(v))
	}

	it := s.Iter()
	for _, w := range want {
		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, w, v)
	}

	// exhausted iterators stay exhausted
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIteratorOnEmptySet(t *testing.T) {
	s := flatveb.New(1 << 8)

	it := s.Iter()
	_, ok := it.Next()
	assert.False(t, ok)

	rit := s.Reverse()
	_, ok = rit.Next()
	assert.False(t, ok)
}

// Iteration must equal a manual successor scan from zero.
func TestIteratorMatchesSuccessorScan(t *testing.T) {
	rng := testutil.NewRNG(5)
	s := flatveb.NewWithBits(13)
	for _, v := range rng.Uints(3000, s.Capacity()) {
		s.Insert(v)
	}

	var want []uint
	for x, ok := s.Next(0); ok; {
		want = append(want, x)
		if x+1 == s.Capacity() {
			break
		}
		x, ok = s.Next(x + 1)
	}

	assert.Equal(t, want, collect(s))
}

func TestReverseIteratorDescends(t *testing.T) {
	s := flatveb.NewWithBits(10)
	asc := []uint{0, 7, 300, 1023}
	for _, v := range asc {
		s.Insert(v)
	}

	it := s.Reverse()
	for i := len(asc) - 1; i >= 0; i-- {
		v, ok := it.Next()
		require.True(t, ok)
		assert.Equal(t, asc[i], v)
	}
	_, ok := it.Next()
	assert.False(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestValuesEarlyBreak(t *testing.T) {
	s := flatveb.New(64)
	for _, v := range []uint{10, 20, 30, 40} {
		s.Insert(v)
	}

	var got []uint
	for v := range flatveb.Values(s) {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []uint{10, 20}, got)
}

func TestBackward(t *testing.T) {
	s := flatveb.New(256)
	for _, v := range []uint{3, 64, 200} {
		s.Insert(v)
	}

	var got []uint
	for v := range flatveb.Backward(s) {
		got = append(got, v)
	}
	assert.Equal(t, []uint{200, 64, 3}, got)
}
