package image

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/ajroetker/go-chanscale/hwy"
)

// Strategy selects how an Engine computes the transform. For factors on
// the fixed-point grid the vector strategies are within ±1 per byte of
// StrategyScalar; StrategyPlanar and StrategyInterleaved always agree
// exactly.
type Strategy int

const (
	// StrategyScalar uses ScalarAdjuster.
	StrategyScalar Strategy = iota

	// StrategyPlanar uses PlanarAdjuster.
	StrategyPlanar

	// StrategyInterleaved uses InterleavedAdjuster.
	StrategyInterleaved
)

// String returns the strategy name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case StrategyScalar:
		return "scalar"
	case StrategyPlanar:
		return "planar"
	case StrategyInterleaved:
		return "interleaved"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy parses a strategy name, ignoring case and surrounding
// space.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "scalar":
		return StrategyScalar, nil
	case "planar":
		return StrategyPlanar, nil
	case "interleaved":
		return StrategyInterleaved, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// DefaultStrategy returns the strategy named by HWY_ADJUST_STRATEGY. When
// that is unset or invalid it returns StrategyScalar at the scalar dispatch
// level, StrategyPlanar when the vector is narrower than a pixel, and
// StrategyInterleaved otherwise.
func DefaultStrategy() Strategy {
	if name := os.Getenv("HWY_ADJUST_STRATEGY"); name != "" {
		if s, err := ParseStrategy(name); err == nil {
			return s
		}
	}
	switch {
	case hwy.CurrentLevel() == hwy.DispatchScalar:
		return StrategyScalar
	case hwy.MaxLanes[uint8]() < 3:
		return StrategyPlanar
	default:
		return StrategyInterleaved
	}
}

// Adjuster scales the channels of an interleaved RGB buffer in place.
// Implementations ignore a trailing partial pixel and never validate
// shape; Engine does that.
type Adjuster interface {
	Adjust(pix []uint8, f ChannelFactors)
}

var (
	_ Adjuster = ScalarAdjuster{}
	_ Adjuster = (*PlanarAdjuster)(nil)
	_ Adjuster = (*InterleavedAdjuster)(nil)
)

// Engine validates buffers and applies the configured strategy. An
// Engine holds no per-call state and is safe for concurrent use on
// distinct buffers.
type Engine struct {
	strategy Strategy
	ops      hwy.Ops
	lanes    int
	adjuster Adjuster
}

// NewEngine builds an Engine. Without options it uses DefaultStrategy,
// hwy.CurrentOps and hwy.MaxLanes[uint8]().
func NewEngine(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{strategy: o.strategy, ops: o.ops, lanes: o.lanes}
	switch o.strategy {
	case StrategyScalar:
		e.adjuster = ScalarAdjuster{}
	case StrategyPlanar:
		a, err := NewPlanarAdjuster(o.ops, o.lanes)
		if err != nil {
			return nil, err
		}
		e.adjuster = a
	case StrategyInterleaved:
		a, err := NewInterleavedAdjuster(o.ops, o.lanes)
		if err != nil {
			return nil, err
		}
		e.adjuster = a
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, o.strategy)
	}

	Logger().Debug("image: engine ready",
		slog.String("strategy", o.strategy.String()),
		slog.String("ops", o.ops.Name()),
		slog.Int("lanes", o.lanes))
	return e, nil
}

// Strategy returns the configured strategy.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Lanes returns the vector width the engine was built with.
func (e *Engine) Lanes() int { return e.lanes }

// Ops returns the primitive implementation the vector strategies use.
func (e *Engine) Ops() hwy.Ops { return e.ops }

// Adjust scales pix, an interleaved width x height RGB buffer, in place.
//
// Factors are clamped to [0, MaxFactor]. StrategyScalar applies them in
// floating point as given; the vector strategies apply the nearest
// fixed-point value, so their bytes can differ from the scalar result by
// one. If len(pix) != width*height*3, Adjust returns a *ShapeError and pix
// is not modified.
func (e *Engine) Adjust(pix []uint8, width, height int, f ChannelFactors) error {
	if err := CheckShape(len(pix), width, height); err != nil {
		return err
	}

	k := f.Encode()
	Logger().Debug("image: adjust",
		slog.Int("width", width),
		slog.Int("height", height),
		slog.Any("fixed", []int{int(k[0]), int(k[1]), int(k[2])}))

	if e.strategy == StrategyScalar {
		e.adjuster.Adjust(pix, f.Clamp())
	} else {
		e.adjuster.Adjust(pix, f.Quantize())
	}
	return nil
}

// AdjustImage is Adjust on an RGB image.
func (e *Engine) AdjustImage(img *RGB, f ChannelFactors) error {
	if err := img.Validate(); err != nil {
		return err
	}
	return e.Adjust(img.Pix, img.Width, img.Height, f)
}

var defaultEngine = sync.OnceValues(func() (*Engine, error) {
	return NewEngine()
})

// Adjust scales the channels of pix in place with the default engine.
// See Engine.Adjust.
func Adjust(pix []uint8, width, height int, red, green, blue float32) error {
	e, err := defaultEngine()
	if err != nil {
		return err
	}
	return e.Adjust(pix, width, height, ChannelFactors{Red: red, Green: green, Blue: blue})
}
