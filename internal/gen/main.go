// Command gen emits sizes_gen.go: the enumerated table of concrete tree
// types for every supported bit width. A width N >= 8 composes an upper
// set of floor(N/2) bits indexing the non-empty clusters with a fixed
// array of 1<<floor(N/2) lower sets of ceil(N/2) bits; the recursion
// bottoms out at the single-word base sets for widths 4 through 7.
//
// The algorithm bodies live once in node.go; the types emitted here are
// thin flat structs plus delegating methods, so growing the supported
// range is a one-line change below.
//
// Widths above 31 bits have capacities that do not fit a 32-bit uint, so
// their types go to sizes_64bit_gen.go behind a 64-bit build constraint
// and register themselves with the size table from an init function.
package main

import (
	"bytes"
	"fmt"
	"log"
	"os"
)

const (
	minTreeBits = 8
	maxBits     = 32

	// widths above this overflow uint on 32-bit platforms
	portableBits = 31

	arch64 = "amd64 || arm64 || loong64 || mips64 || mips64le || ppc64 || ppc64le || riscv64 || s390x || wasm"
)

// typeName returns the concrete type serving a bit width.
func typeName(bits int) string {
	switch bits {
	case 4:
		return "Set16"
	case 5:
		return "Set32"
	case 6:
		return "Set64"
	case 7:
		return "Set128"
	default:
		return fmt.Sprintf("Tree%d", bits)
	}
}

type printer struct{ buf bytes.Buffer }

func (pr *printer) p(format string, args ...any) {
	fmt.Fprintf(&pr.buf, format+"\n", args...)
}

// emitTree writes the struct and delegating method set for one width.
func (pr *printer) emitTree(n int) {
	ub := n / 2
	lb := n - ub
	ut := typeName(ub)
	lt := typeName(lb)
	t := fmt.Sprintf("Tree%d", n)
	p := pr.p

	p("// %s is an ordered integer set over the universe [0, 1<<%d).", t, n)
	p("// The zero value is an empty set ready for use.")
	p("type %s struct {", t)
	p("\tupper %s", ut)
	p("\tlower [%d]%s", 1<<ub, lt)
	p("\text   extremes")
	p("}")
	p("")
	p("// Capacity returns the number of representable values.")
	p("func (t *%s) Capacity() uint { return 1 << %d }", t, n)
	p("")
	p("// Clear removes all elements.")
	p("func (t *%s) Clear() { nodeClear[%s, *%s, *%s](&t.ext, &t.upper, t.lower[:]) }", t, lt, ut, lt)
	p("")
	p("// IsEmpty reports whether the set contains no elements.")
	p("func (t *%s) IsEmpty() bool { return t.ext.isEmpty() }", t)
	p("")
	p("// Contains reports whether x is in the set.")
	p("func (t *%s) Contains(x uint) bool {", t)
	p("\treturn nodeContains[%s, *%s](&t.ext, t.lower[:], %d, x)", lt, lt, lb)
	p("}")
	p("")
	p("// Insert adds x to the set and reports whether it was newly added.")
	p("func (t *%s) Insert(x uint) bool {", t)
	p("\treturn nodeInsert[%s, *%s, *%s](&t.ext, &t.upper, t.lower[:], %d, x)", lt, ut, lt, lb)
	p("}")
	p("")
	p("// Remove deletes x from the set and reports whether it was present.")
	p("func (t *%s) Remove(x uint) bool {", t)
	p("\treturn nodeRemove[%s, *%s, *%s](&t.ext, &t.upper, t.lower[:], %d, x)", lt, ut, lt, lb)
	p("}")
	p("")
	p("// Next returns the smallest element greater than or equal to x, if any.")
	p("func (t *%s) Next(x uint) (uint, bool) {", t)
	p("\treturn nodeNext[%s, *%s, *%s](&t.ext, &t.upper, t.lower[:], %d, x)", lt, ut, lt, lb)
	p("}")
	p("")
	p("// Prev returns the largest element smaller than or equal to x, if any.")
	p("func (t *%s) Prev(x uint) (uint, bool) {", t)
	p("\treturn nodePrev[%s, *%s, *%s](&t.ext, &t.upper, t.lower[:], %d, x)", lt, ut, lt, lb)
	p("}")
	p("")
	p("// First returns the minimum element, if any.")
	p("func (t *%s) First() (uint, bool) { return t.ext.first() }", t)
	p("")
	p("// Last returns the maximum element, if any.")
	p("func (t *%s) Last() (uint, bool) { return t.ext.last() }", t)
	p("")
	p("// Iter returns an ascending iterator over the contents.")
	p("func (t *%s) Iter() Iterator { return Iterator{set: t} }", t)
	p("")
	p("// Reverse returns a descending iterator over the contents.")
	p("func (t *%s) Reverse() ReverseIterator { return ReverseIterator{set: t, cursor: 1<<%d - 1} }", t, n)
	p("")
}

func write(name string, pr *printer) {
	if err := os.WriteFile(name, pr.buf.Bytes(), 0o644); err != nil {
		log.Fatalf("write %s: %v", name, err)
	}
}

func main() {
	pr := &printer{}
	p := pr.p

	p("// Code generated by internal/gen. DO NOT EDIT.")
	p("")
	p("package flatveb")
	p("")
	p(`import "math/bits"`)
	p("")
	p("// MaxBits is the largest supported bit width; New can satisfy any")
	p("// capacity up to 1 << MaxBits. The top size class needs capacities")
	p("// beyond the range of a 32-bit uint, so MaxBits is one smaller on")
	p("// 32-bit platforms.")
	p("const MaxBits = %d + bits.UintSize/32", portableBits-1)
	p("")

	for n := minTreeBits; n <= portableBits; n++ {
		pr.emitTree(n)
	}

	p("// sizeClasses enumerates the supported sizes in ascending capacity")
	p("// order; New selects the first entry covering the requested capacity.")
	p("// Classes that exist only on 64-bit platforms append themselves in")
	p("// sizes_64bit_gen.go.")
	p("var sizeClasses = []sizeClass{")
	for n := 4; n <= portableBits; n++ {
		p("\t{bits: %d, newSet: func() Set { return new(%s) }},", n, typeName(n))
	}
	p("}")
	p("")
	p("// Compile time checks to ensure the composed sizes satisfy the Set contract.")
	p("var (")
	for n := minTreeBits; n <= portableBits; n++ {
		p("\t_ Set = (*Tree%d)(nil)", n)
	}
	p(")")

	write("sizes_gen.go", pr)

	pr = &printer{}
	p = pr.p

	p("// Code generated by internal/gen. DO NOT EDIT.")
	p("")
	p("//go:build %s", arch64)
	p("")
	p("package flatveb")
	p("")

	for n := portableBits + 1; n <= maxBits; n++ {
		pr.emitTree(n)
	}

	p("func init() {")
	for n := portableBits + 1; n <= maxBits; n++ {
		p("\tsizeClasses = append(sizeClasses, sizeClass{bits: %d, newSet: func() Set { return new(%s) }})", n, typeName(n))
	}
	p("}")
	p("")
	p("var (")
	for n := portableBits + 1; n <= maxBits; n++ {
		p("\t_ Set = (*Tree%d)(nil)", n)
	}
	p(")")

	write("sizes_64bit_gen.go", pr)
}
