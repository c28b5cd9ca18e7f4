package genpool

import "iter"

// All returns an iterator over the live values in dense order, yielding
// each value's current handle and a pointer to it.
//
// The order is unspecified but stable while no removal occurs. The
// iterator reads the pool directly: mutating the pool during iteration
// carries the same hazards as mutating it inside a manual HandleAt loop.
func (p *Pool[T]) All() iter.Seq2[Handle, *T] {
	return func(yield func(Handle, *T) bool) {
		for i := range p.items {
			owner := p.owners[i]
			h := Handle{slot: owner + 1, gen: p.roster[owner].gen}
			if !yield(h, &p.items[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the live values in dense order.
func (p *Pool[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range p.items {
			if !yield(p.items[i]) {
				return
			}
		}
	}
}
