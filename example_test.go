package flatveb_test

import (
	"fmt"

	flatveb "github.com/Hegdahl/flat-veb"
)

// Example demonstrates the basic operations on a factory-selected set.
func Example() {
	s := flatveb.New(1 << 24)

	fmt.Println(s.Insert(123))
	fmt.Println(s.Insert(1337))
	fmt.Println(s.Insert(123))

	fmt.Println(s.Contains(123))
	fmt.Println(s.Contains(42))

	if v, ok := s.Next(124); ok {
		fmt.Println(v)
	}
	// Output:
	// true
	// true
	// false
	// true
	// false
	// 1337
}

// ExampleValues demonstrates lazy ascending iteration.
func ExampleValues() {
	s := flatveb.New(16)
	s.Insert(2)
	s.Insert(4)
	s.Insert(6)

	for v := range flatveb.Values(s) {
		fmt.Println(v)
	}
	// Output:
	// 2
	// 4
	// 6
}

// ExampleNewWithBits demonstrates selecting a size by element width.
func ExampleNewWithBits() {
	s := flatveb.NewWithBits(10)
	fmt.Println(s.Capacity())
	// Output: 1024
}
