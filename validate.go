package genpool

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Validate audits the internal consistency of the pool and returns a
// descriptive error naming the first violation found, or nil.
//
// A healthy pool always passes: a failure indicates a bug in the pool
// itself, never caller misuse. Validate walks every slot, so it is O(n);
// it exists for tests and debugging, not for the hot path.
func (p *Pool[T]) Validate() error {
	if len(p.items) != len(p.owners) {
		return fmt.Errorf("genpool: dense length %d != owner length %d", len(p.items), len(p.owners))
	}
	if len(p.items) > len(p.roster) {
		return fmt.Errorf("genpool: %d live values exceed %d roster slots", len(p.items), len(p.roster))
	}

	// Every dense position must be claimed by exactly one roster slot that
	// points straight back at it.
	occupied := bitset.New(uint(len(p.roster)))
	for pos, idx := range p.owners {
		if idx >= uint32(len(p.roster)) {
			return fmt.Errorf("genpool: position %d owned by out-of-range slot %d", pos, idx)
		}
		if occupied.Test(uint(idx)) {
			return fmt.Errorf("genpool: slot %d owns more than one position", idx)
		}
		occupied.Set(uint(idx))

		if ref := p.roster[idx].ref; ref != uint32(pos) {
			return fmt.Errorf("genpool: slot %d points at position %d, expected %d", idx, ref, pos)
		}
	}

	// The free list must visit every remaining slot exactly once and then
	// leave the roster.
	seen := bitset.New(uint(len(p.roster)))
	count := 0
	for cur := p.free; cur < uint32(len(p.roster)); cur = p.roster[cur].ref {
		if occupied.Test(uint(cur)) {
			return fmt.Errorf("genpool: occupied slot %d found on the free list", cur)
		}
		if seen.Test(uint(cur)) {
			return fmt.Errorf("genpool: free list cycles through slot %d", cur)
		}
		seen.Set(uint(cur))
		count++
	}
	if want := len(p.roster) - len(p.items); count != want {
		return fmt.Errorf("genpool: free list has %d slots, expected %d", count, want)
	}

	return nil
}
