package generator

// Options configures grid generation behavior.
type Options struct {
	// Seed makes generation reproducible. 0 picks a time-based seed.
	Seed int64
}

// DefaultOptions returns standard generator options.
func DefaultOptions() *Options {
	return &Options{Seed: 0}
}
