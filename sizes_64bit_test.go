//go:build amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm

package flatveb_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flatveb "github.com/Hegdahl/flat-veb"
)

func TestTopSizeClass(t *testing.T) {
	assert.Equal(t, 32, flatveb.MaxBits)
	assert.Equal(t, uint(1)<<32, (*flatveb.Tree32)(nil).Capacity())
}

// Requests above 1<<31 must reach the class registered from init, not
// fall through to the capacity panic.
func TestFactoryReachesTopSizeClass(t *testing.T) {
	if testing.Short() {
		t.Skip("reserves a gigabyte of zeroed address space")
	}

	s := flatveb.New(1<<31 + 1)
	require.Equal(t, uint(1)<<32, s.Capacity())
	require.True(t, s.IsEmpty())

	// only the cached extremes are touched; the substructure stays
	// untouched zero pages
	require.True(t, s.Insert(1<<32 - 1))
	v, ok := s.Next(0)
	require.True(t, ok)
	assert.Equal(t, uint(1)<<32-1, v)
}
