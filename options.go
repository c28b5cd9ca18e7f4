package genpool

// Options contains configuration options for a Pool.
type Options struct {
	// InitialCapacity pre-reserves backing storage for this many values.
	// It is a hint: the pool grows beyond it on demand.
	InitialCapacity int
}

// DefaultOptions contains the default configuration options for a Pool.
var DefaultOptions = Options{
	InitialCapacity: 0,
}
