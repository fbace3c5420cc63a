package flatveb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatveb "github.com/Hegdahl/flat-veb"
)

func TestSizeConstants(t *testing.T) {
	tests := []struct {
		bits uint
		s    flatveb.Set
	}{
		{4, new(flatveb.Set16)},
		{5, new(flatveb.Set32)},
		{6, new(flatveb.Set64)},
		{7, new(flatveb.Set128)},
		{8, new(flatveb.Tree8)},
		{9, new(flatveb.Tree9)},
		{10, new(flatveb.Tree10)},
		{11, new(flatveb.Tree11)},
		{12, new(flatveb.Tree12)},
		{13, new(flatveb.Tree13)},
		{14, new(flatveb.Tree14)},
		{15, new(flatveb.Tree15)},
		{16, new(flatveb.Tree16)},
		{17, new(flatveb.Tree17)},
		{18, new(flatveb.Tree18)},
		{19, new(flatveb.Tree19)},
		{20, new(flatveb.Tree20)},
		{21, new(flatveb.Tree21)},
		{22, new(flatveb.Tree22)},
		{23, new(flatveb.Tree23)},
		{24, new(flatveb.Tree24)},
		{25, new(flatveb.Tree25)},
		{26, new(flatveb.Tree26)},
		// the largest classes run to hundreds of megabytes; Capacity is
		// constant per type, so probe it without allocating an instance
		{27, (*flatveb.Tree27)(nil)},
		{28, (*flatveb.Tree28)(nil)},
		{29, (*flatveb.Tree29)(nil)},
		{30, (*flatveb.Tree30)(nil)},
		{31, (*flatveb.Tree31)(nil)},
	}

	for _, tc := range tests {
		assert.Equal(t, uint(1)<<tc.bits, tc.s.Capacity(), "bits %d", tc.bits)
	}
	// Tree32 exists on 64-bit platforms only; see sizes_64bit_test.go
	assert.GreaterOrEqual(t, flatveb.MaxBits, 31)
}

// A large instance is usable straight from the factory: zeroed heap
// storage is already a valid empty set.
func TestLargeInstanceConstruction(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates tens of megabytes")
	}

	s := flatveb.New(1 << 28)
	require.Equal(t, uint(1)<<28, s.Capacity())
	require.True(t, s.IsEmpty())

	require.True(t, s.Insert(0))
	require.True(t, s.Insert(1<<28 - 1))
	require.True(t, s.Insert(123456789))

	assert.Equal(t, []uint{0, 123456789, 1<<28 - 1}, collect(s))

	v, ok := s.Next(1)
	require.True(t, ok)
	assert.Equal(t, uint(123456789), v)
	v, ok = s.Prev(1<<28 - 2)
	require.True(t, ok)
	assert.Equal(t, uint(123456789), v)
}
