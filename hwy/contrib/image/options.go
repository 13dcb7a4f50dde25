package image

import "github.com/ajroetker/go-chanscale/hwy"

// Option configures an Engine during creation.
//
// Example:
//
//	// Interleaved strategy on a 17-byte vector, as an odd SVE length would give
//	eng, err := image.NewEngine(
//	    image.WithStrategy(image.StrategyInterleaved),
//	    image.WithLanes(17),
//	)
type Option func(*options)

type options struct {
	strategy Strategy
	lanes    int
	ops      hwy.Ops
}

func defaultOptions() options {
	return options{
		strategy: DefaultStrategy(),
		lanes:    hwy.MaxLanes[uint8](),
		ops:      hwy.CurrentOps(),
	}
}

// WithStrategy selects the strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithLanes sets the vector width in byte lanes, overriding the width
// detected at runtime.
func WithLanes(lanes int) Option {
	return func(o *options) {
		o.lanes = lanes
	}
}

// WithOps sets the primitive implementation used by the vector strategies.
// A nil ops keeps the default.
func WithOps(ops hwy.Ops) Option {
	return func(o *options) {
		if ops != nil {
			o.ops = ops
		}
	}
}
