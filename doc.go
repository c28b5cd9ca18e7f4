// Package genpool provides a generational object pool: contiguous storage
// for values of a single type, addressed through stable, validity-checked
// handles instead of raw pointers.
//
// Values live in a dense backing array that stays gap-free across removals,
// so iterating the pool touches memory sequentially. Callers hold a Handle,
// an opaque (slot, generation) ticket. Removing a value bumps its slot's
// generation, which permanently invalidates every handle issued for the old
// occupant; dereferencing such a handle reports absence instead of
// returning stale data.
//
// # Quick Start
//
//	pool := genpool.New[string]()
//
//	h := pool.Insert("hello")
//
//	if v, ok := pool.Get(h); ok {
//	    *v = "world"
//	}
//
//	pool.Remove(h)
//	_, ok := pool.Get(h) // ok == false, the handle is stale
//
// # Handles
//
// Handles are small comparable value types. They can be copied freely, used
// as map keys, and kept around after the value they refer to is gone:
// Contains reports validity without side effects, and the zero Handle is
// the null handle, which never validates against any pool.
//
// # Removal and Compaction
//
// Remove swaps the last dense element into the vacated position, keeping
// storage packed in O(1). Dense positions are therefore unstable: never
// cache the result of IndexOf across a mutation. HandleAt reconstructs the
// stable handle for any current dense position, which makes index-based
// iteration safe:
//
//	for i := 0; i < pool.Len(); i++ {
//	    h := pool.HandleAt(i)
//	    // h stays usable even after the element moves
//	}
//
// Or use the iterators:
//
//	for h, v := range pool.All() {
//	    _ = h
//	    _ = v
//	}
//
// # Concurrency
//
// A Pool is not safe for concurrent use, including read-only lookups racing
// with a removal. Callers that share a pool across goroutines must
// serialize access externally or shard pools per worker.
package genpool
