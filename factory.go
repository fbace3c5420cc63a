package flatveb

import (
	"fmt"
	"strconv"
)

// sizeClass pairs a supported bit width with a constructor for its
// concrete type. The table itself lives in sizes_gen.go.
type sizeClass struct {
	bits   uint
	newSet func() Set
}

type options struct {
	logger *Logger
}

// Option configures the factory functions.
type Option func(*options)

// WithLogger configures the logger used to report size-class selection at
// debug level. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// New returns an empty Set able to hold values in [0, capacity), selecting
// the smallest size class whose capacity covers the request. The actual
// capacity, available via Capacity, is the request rounded up to the next
// supported power of two.
//
// The instance is allocated zeroed directly on the heap. Because the zero
// value of every size class is a valid empty set, no follow-up
// initialization pass runs and no stack-resident temporary of the
// instance ever exists, whatever its size.
//
// New panics with an error wrapping ErrCapacityTooLarge if capacity
// exceeds the largest size class (1 << MaxBits).
func New(capacity uint, optFns ...Option) Set {
	o := options{logger: NoopLogger()}
	for _, fn := range optFns {
		fn(&o)
	}

	for _, sc := range sizeClasses {
		if capacity <= 1<<sc.bits {
			s := sc.newSet()
			o.logger.Debug("selected size class",
				"requested", capacity,
				"bits", sc.bits,
				"capacity", uint(1)<<sc.bits,
			)
			return s
		}
	}

	panic(fmt.Errorf("%w: no size class holds %d values (largest is 1<<%d)",
		ErrCapacityTooLarge, capacity, MaxBits))
}

// NewWithBits returns an empty Set able to hold values of the given bit
// width, i.e. values less than 1 << bits. It panics with an error wrapping
// ErrCapacityTooLarge if the resulting capacity is not representable on
// the platform or exceeds the largest size class.
func NewWithBits(bits uint, optFns ...Option) Set {
	if bits >= strconv.IntSize {
		panic(fmt.Errorf("%w: cannot represent 1<<%d on this platform",
			ErrCapacityTooLarge, bits))
	}
	return New(1<<bits, optFns...)
}
