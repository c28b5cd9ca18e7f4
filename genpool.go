package genpool

import "slices"

// entry is one roster slot. While the slot is occupied, ref is the position
// of its value in dense storage. While the slot is free, ref is the index
// of the next free roster slot, or noIndex at the tail of the free list.
type entry struct {
	ref uint32
	gen uint32
}

// Pool is a generational object pool for values of type T.
//
// Values are stored contiguously and stay packed across removals. Callers
// address them through Handles, which remain safe to validate after the
// underlying value is gone. The zero value of Pool is ready to use.
//
// A Pool is not safe for concurrent use.
type Pool[T any] struct {
	items  []T      // dense storage, gap-free
	owners []uint32 // dense position -> owning roster index
	roster []entry
	free   uint32 // head of the free list; >= len(roster) means empty
}

// New creates a new Pool.
func New[T any](optFns ...func(o *Options)) *Pool[T] {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	p := &Pool[T]{free: noIndex}
	if opts.InitialCapacity > 0 {
		p.items = make([]T, 0, opts.InitialCapacity)
		p.owners = make([]uint32, 0, opts.InitialCapacity)
		p.roster = make([]entry, 0, opts.InitialCapacity)
	}

	return p
}

// Len returns the number of live values in the pool.
func (p *Pool[T]) Len() int {
	return len(p.items)
}

// Cap returns the capacity of the dense backing storage.
func (p *Pool[T]) Cap() int {
	return cap(p.items)
}

// Grow reserves backing storage for at least n additional values.
// It never invalidates handles.
func (p *Pool[T]) Grow(n int) {
	if n <= 0 {
		return
	}
	p.items = slices.Grow(p.items, n)
	p.owners = slices.Grow(p.owners, n)
}

// Insert stores v in the pool and returns a handle for it.
//
// The handle stays valid until it is passed to Remove or the pool is
// cleared, no matter how many other values are inserted or removed in
// between. Insert may reallocate backing storage but never invalidates
// existing handles. It panics only when the slot address space is
// exhausted.
func (p *Pool[T]) Insert(v T) Handle {
	if p.free >= uint32(len(p.roster)) {
		p.expandRoster()
	}

	idx := p.free
	e := &p.roster[idx]
	p.free = e.ref

	e.ref = uint32(len(p.items))
	p.items = append(p.items, v)
	p.owners = append(p.owners, idx)

	return Handle{slot: idx + 1, gen: e.gen}
}

// expandRoster appends one fresh roster slot and makes it the head of the
// empty free list.
func (p *Pool[T]) expandRoster() {
	if uint32(len(p.roster)) == noIndex {
		panic("genpool: slot address space exhausted")
	}
	p.free = uint32(len(p.roster))
	p.roster = append(p.roster, entry{ref: noIndex})
}

// Contains reports whether h refers to a live value in the pool.
//
// It is a pure predicate with no side effects, safe to call with any
// handle, including the null handle and handles whose value has since
// been removed.
func (p *Pool[T]) Contains(h Handle) bool {
	idx := h.slot - 1 // wraps to noIndex for the null handle
	return idx < uint32(len(p.roster)) && p.roster[idx].gen == h.gen
}

// Get returns a pointer to the value h refers to.
//
// The pointer is valid only until the next mutation of the pool: a
// removal may relocate the value and an insertion may reallocate storage.
// It returns (nil, false) when h is stale or null.
func (p *Pool[T]) Get(h Handle) (*T, bool) {
	if !p.Contains(h) {
		return nil, false
	}
	return &p.items[p.roster[h.slot-1].ref], true
}

// Value returns a copy of the value h refers to.
// It returns the zero value and false when h does not validate.
func (p *Pool[T]) Value(h Handle) (T, bool) {
	if !p.Contains(h) {
		var zero T
		return zero, false
	}
	return p.items[p.roster[h.slot-1].ref], true
}

// IndexOf returns the current dense position of the value h refers to.
//
// The position is unstable: any Remove may change it. Callers must not
// cache it across mutations. It returns (0, false) when h does not
// validate.
func (p *Pool[T]) IndexOf(h Handle) (int, bool) {
	if !p.Contains(h) {
		return 0, false
	}
	return int(p.roster[h.slot-1].ref), true
}

// HandleAt reconstructs the handle that currently refers to the value at
// dense position i. It returns the null handle when i is out of bounds.
//
// Together with Len, HandleAt supports index-based iteration that can
// hand out stable handles for the values it visits.
func (p *Pool[T]) HandleAt(i int) Handle {
	if i < 0 || i >= len(p.items) {
		return Handle{}
	}
	owner := p.owners[i]
	return Handle{slot: owner + 1, gen: p.roster[owner].gen}
}

// Remove deletes the value h refers to from the pool.
//
// Removal is a silent no-op when h does not validate, which makes it
// idempotent and safe against double-removal and the null handle.
// Removing a value permanently invalidates every handle issued for it and
// relocates the last dense element into the vacated position, so dense
// positions observed before the call are stale afterwards.
func (p *Pool[T]) Remove(h Handle) {
	if !p.Contains(h) {
		return
	}

	idx := h.slot - 1
	pos := p.roster[idx].ref
	last := uint32(len(p.items) - 1)

	if pos != last {
		mover := p.owners[last]
		p.items[pos] = p.items[last]
		p.owners[pos] = mover
		p.roster[mover].ref = pos
	}

	// Zero out for GC before shrinking.
	var zero T
	p.items[last] = zero
	p.items = p.items[:last]
	p.owners = p.owners[:last]

	e := &p.roster[idx]
	e.gen++
	e.ref = p.free
	p.free = idx
}

// Clear removes every value from the pool.
//
// All previously issued handles become invalid, exactly as if each live
// value had been removed individually. Backing capacity is retained.
func (p *Pool[T]) Clear() {
	for _, idx := range p.owners {
		e := &p.roster[idx]
		e.gen++
		e.ref = p.free
		p.free = idx
	}

	clear(p.items) // zero out for GC
	p.items = p.items[:0]
	p.owners = p.owners[:0]
}
