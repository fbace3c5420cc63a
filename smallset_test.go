package flatveb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatveb "github.com/Hegdahl/flat-veb"
)

func TestSmallSetBasics(t *testing.T) {
	sets := []struct {
		name   string
		newSet func() flatveb.Set
	}{
		{"Set16", func() flatveb.Set { return new(flatveb.Set16) }},
		{"Set32", func() flatveb.Set { return new(flatveb.Set32) }},
		{"Set64", func() flatveb.Set { return new(flatveb.Set64) }},
		{"Set128", func() flatveb.Set { return new(flatveb.Set128) }},
	}

	for _, tc := range sets {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.newSet()
			w := s.Capacity()

			require.True(t, s.IsEmpty())
			for x := uint(0); x < w; x++ {
				assert.False(t, s.Contains(x))
			}
			_, ok := s.First()
			assert.False(t, ok)
			_, ok = s.Last()
			assert.False(t, ok)
			_, ok = s.Next(0)
			assert.False(t, ok)
			_, ok = s.Prev(w - 1)
			assert.False(t, ok)

			assert.True(t, s.Insert(3))
			assert.False(t, s.Insert(3))
			assert.True(t, s.Insert(0))
			assert.True(t, s.Insert(w - 1))
			require.False(t, s.IsEmpty())

			assert.True(t, s.Contains(0))
			assert.True(t, s.Contains(3))
			assert.True(t, s.Contains(w - 1))
			assert.False(t, s.Contains(1))

			v, ok := s.First()
			require.True(t, ok)
			assert.Equal(t, uint(0), v)
			v, ok = s.Last()
			require.True(t, ok)
			assert.Equal(t, w-1, v)

			// successor and predecessor are inclusive
			v, ok = s.Next(3)
			require.True(t, ok)
			assert.Equal(t, uint(3), v)
			v, ok = s.Prev(3)
			require.True(t, ok)
			assert.Equal(t, uint(3), v)

			v, ok = s.Next(1)
			require.True(t, ok)
			assert.Equal(t, uint(3), v)
			v, ok = s.Prev(w - 2)
			require.True(t, ok)
			assert.Equal(t, uint(3), v)
			v, ok = s.Next(4)
			require.True(t, ok)
			assert.Equal(t, w-1, v)

			assert.True(t, s.Remove(3))
			assert.False(t, s.Remove(3))
			assert.False(t, s.Contains(3))

			s.Clear()
			require.True(t, s.IsEmpty())
			_, ok = s.Next(0)
			assert.False(t, ok)
		})
	}
}

func TestSet128CrossWord(t *testing.T) {
	var s flatveb.Set128

	require.True(t, s.Insert(3))
	require.True(t, s.Insert(70))
	require.True(t, s.Insert(127))

	v, ok := s.Next(4)
	require.True(t, ok)
	assert.Equal(t, uint(70), v)

	v, ok = s.Prev(69)
	require.True(t, ok)
	assert.Equal(t, uint(3), v)

	v, ok = s.Next(71)
	require.True(t, ok)
	assert.Equal(t, uint(127), v)

	v, ok = s.Prev(126)
	require.True(t, ok)
	assert.Equal(t, uint(70), v)

	v, ok = s.First()
	require.True(t, ok)
	assert.Equal(t, uint(3), v)

	v, ok = s.Last()
	require.True(t, ok)
	assert.Equal(t, uint(127), v)

	require.True(t, s.Remove(127))
	v, ok = s.Last()
	require.True(t, ok)
	assert.Equal(t, uint(70), v)
	_, ok = s.Next(71)
	assert.False(t, ok)
}
