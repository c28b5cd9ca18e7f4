package genpool

import "fmt"

// Stats is a point-in-time snapshot of pool occupancy.
type Stats struct {
	Live     int // values currently stored
	Free     int // roster slots available for reuse
	Slots    int // roster slots ever created (live + free)
	Capacity int // dense storage capacity
}

// Stats returns current statistics about the pool.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Live:     len(p.items),
		Free:     len(p.roster) - len(p.items),
		Slots:    len(p.roster),
		Capacity: cap(p.items),
	}
}

func (p *Pool[T]) String() string {
	s := p.Stats()
	return fmt.Sprintf("Pool{live: %d, free: %d, slots: %d, cap: %d}", s.Live, s.Free, s.Slots, s.Capacity)
}
