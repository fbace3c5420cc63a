package flatveb_test

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	flatveb "github.com/Hegdahl/flat-veb"
)

func TestNewRoundsUpToSizeClass(t *testing.T) {
	tests := []struct {
		requested uint
		want      uint
	}{
		{0, 16},
		{1, 16},
		{16, 16},
		{17, 32},
		{100, 128},
		{129, 256},
		{1000, 1024},
		{1 << 20, 1 << 20},
		{1<<20 + 1, 1 << 21},
	}

	for _, tc := range tests {
		s := flatveb.New(tc.requested)
		assert.Equal(t, tc.want, s.Capacity(), "requested %d", tc.requested)
	}
}

func TestNewWithBitsExact(t *testing.T) {
	for bits := uint(4); bits <= 20; bits++ {
		s := flatveb.NewWithBits(bits)
		assert.Equal(t, uint(1)<<bits, s.Capacity(), "bits %d", bits)
	}

	// widths below the smallest size class round up to it
	s := flatveb.NewWithBits(2)
	assert.Equal(t, uint(16), s.Capacity())
}

func TestNewPanicsAboveLargestClass(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("capacity not representable on this platform")
	}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, flatveb.ErrCapacityTooLarge)
	}()

	shift := uint(flatveb.MaxBits + 1)
	_ = flatveb.New(uint(1) << shift)
}

func TestNewWithBitsPanicsOnPlatformWidth(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, flatveb.ErrCapacityTooLarge)
	}()

	_ = flatveb.NewWithBits(uint(strconv.IntSize))
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := flatveb.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	s := flatveb.New(1000, flatveb.WithLogger(logger))
	require.Equal(t, uint(1024), s.Capacity())
	assert.Contains(t, buf.String(), "selected size class")

	// nil disables logging instead of crashing
	s = flatveb.New(16, flatveb.WithLogger(nil))
	require.Equal(t, uint(16), s.Capacity())
}

// Read-only access from multiple goroutines is safe as long as nothing
// mutates the set.
func TestConcurrentReaders(t *testing.T) {
	s := flatveb.NewWithBits(16)
	for x := uint(0); x < s.Capacity(); x += 3 {
		s.Insert(x)
	}

	g := new(errgroup.Group)
	for range 8 {
		g.Go(func() error {
			for x := uint(0); x < s.Capacity(); x++ {
				want := x%3 == 0
				if got := s.Contains(x); got != want {
					return fmt.Errorf("contains(%d) = %v, want %v", x, got, want)
				}
				wantNext := (x + 2) / 3 * 3
				if v, ok := s.Next(x); !ok || v != wantNext {
					return fmt.Errorf("next(%d) = %d, %v, want %d", x, v, ok, wantNext)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
