package flatveb

import "fmt"

// checkBounds validates a position argument against the capacity of the
// receiving set. It compiles to nothing unless the vebcheck build tag is
// set (go test -tags vebcheck); out-of-range positions are contract
// violations, not errors the library recovers from.
func checkBounds(x, capacity uint) {
	if !checksEnabled {
		return
	}
	if x >= capacity {
		panic(fmt.Sprintf("flatveb: position %d out of range for capacity %d", x, capacity))
	}
}
