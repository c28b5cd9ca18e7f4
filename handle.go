package genpool

import (
	"fmt"
	"math"
)

// noIndex marks the absence of a roster or dense index.
const noIndex = math.MaxUint32

// Handle is an opaque ticket for a value stored in a Pool.
//
// A Handle is a comparable value type: it can be copied freely, compared
// with ==, and used as a map key. Two handles are equal iff they name the
// same slot and the same generation of that slot.
//
// The zero Handle is the null handle. It never validates against any pool.
type Handle struct {
	slot uint32 // roster index biased by +1; 0 marks the null handle
	gen  uint32
}

// IsNil reports whether h is the null handle.
func (h Handle) IsNil() bool {
	return h.slot == 0
}

// String returns a debug representation of the handle.
func (h Handle) String() string {
	if h.IsNil() {
		return "Handle{nil}"
	}
	return fmt.Sprintf("Handle{slot: %d, gen: %d}", h.slot-1, h.gen)
}
