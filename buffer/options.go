package buffer

// Backing selects where buffer memory comes from.
type Backing uint8

const (
	// Heap allocates from the Go heap.
	Heap Backing = iota
	// Mapped allocates an anonymous memory mapping outside the Go heap.
	Mapped
)

// String returns the string representation of a Backing.
func (b Backing) String() string {
	switch b {
	case Heap:
		return "heap"
	case Mapped:
		return "mapped"
	default:
		return "unknown"
	}
}

type options struct {
	backing Backing
}

// Option configures Allocate.
type Option func(*options)

// WithBacking selects the memory source. The default is Heap.
func WithBacking(b Backing) Option {
	return func(o *options) {
		o.backing = b
	}
}
