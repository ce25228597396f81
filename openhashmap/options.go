package openhashmap

// the default options applied to the OpenHashMap.
var defaultOptions = []Option{
	WithCapacity(DefaultCapacity),
	WithLoadFactor(DefaultLoadFactor),
	WithShrinkingThresholdRatio(4.0),
	WithShrinkingThresholdCount(64),
}

// Options define options for an OpenHashMap.
type Options struct {
	// The initial capacity of the table (rounded up to a power of two).
	capacity int
	// The maximum fill ratio of the table before it grows.
	loadFactor float64
	// The capacity/size ratio above which deletions trigger shrinking.
	shrinkingThresholdRatio float32
	// The count of deletions since the last rehash that triggers shrinking.
	shrinkingThresholdCount int
}

// applies the given Option.
func (o *Options) apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
}

// WithCapacity defines the initial capacity of the table. The value is rounded up to the next
// power of two.
func WithCapacity(capacity int) Option {
	return func(opts *Options) {
		opts.capacity = capacity
	}
}

// WithLoadFactor defines the maximum fill ratio of the table before it grows. It must lie in
// (0, 1).
func WithLoadFactor(loadFactor float64) Option {
	return func(opts *Options) {
		opts.loadFactor = loadFactor
	}
}

// WithShrinkingThresholdRatio defines the ratio between the table capacity and the current size
// above which a deletion triggers shrinking (set to 0.0 to disable).
func WithShrinkingThresholdRatio(ratio float32) Option {
	return func(opts *Options) {
		opts.shrinkingThresholdRatio = ratio
	}
}

// WithShrinkingThresholdCount defines the count of deletions since the last rehash before
// shrinking is considered (set to 0 to disable).
func WithShrinkingThresholdCount(count int) Option {
	return func(opts *Options) {
		opts.shrinkingThresholdCount = count
	}
}

// Option is a function setting an Options option.
type Option func(opts *Options)
