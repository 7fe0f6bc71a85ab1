package filter

import (
	"errors"
	"fmt"
	"math"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/component"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
)

// Type identifies a filter mask.
type Type int

const (
	TypeLowPass Type = iota
	TypeHighPass
	TypeBandPass
	TypeBandStop
)

// String returns a short lowercase name for the filter type.
func (t Type) String() string {
	switch t {
	case TypeLowPass:
		return "low-pass"
	case TypeHighPass:
		return "high-pass"
	case TypeBandPass:
		return "band-pass"
	case TypeBandStop:
		return "band-stop"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// Errors returned by filter constructors.
var ErrInvalidParameter = errors.New("filter: invalid parameter")

// Filter is an ideal brick-wall frequency mask with closed band edges.
//
// Use the constructors; the zero value has zero gain and passes nothing
// useful.
type Filter struct {
	typ  Type
	low  float64
	high float64
	gain float64
}

// Option configures a filter.
type Option func(*config)

type config struct {
	gain float64
}

func defaultConfig() config {
	return config{gain: 1}
}

// WithGain sets the gain applied to every component kept by Clip.
// Non-finite values are ignored.
func WithGain(g float64) Option {
	return func(c *config) {
		if core.Finite(g) {
			c.gain = g
		}
	}
}

// NewLowPass creates a filter passing frequencies f <= cutoff.
func NewLowPass(cutoff float64, opts ...Option) (Filter, error) {
	if !core.Finite(cutoff) {
		return Filter{}, fmt.Errorf("%w: cutoff must be finite, got %v", ErrInvalidParameter, cutoff)
	}
	cfg := applyOptions(opts)
	return Filter{typ: TypeLowPass, low: math.Inf(-1), high: cutoff, gain: cfg.gain}, nil
}

// NewHighPass creates a filter passing frequencies f >= cutoff.
func NewHighPass(cutoff float64, opts ...Option) (Filter, error) {
	if !core.Finite(cutoff) {
		return Filter{}, fmt.Errorf("%w: cutoff must be finite, got %v", ErrInvalidParameter, cutoff)
	}
	cfg := applyOptions(opts)
	return Filter{typ: TypeHighPass, low: cutoff, high: math.Inf(1), gain: cfg.gain}, nil
}

// NewBandPass creates a filter passing the closed band [low, high].
func NewBandPass(low, high float64, opts ...Option) (Filter, error) {
	if err := validateBand(low, high); err != nil {
		return Filter{}, err
	}
	cfg := applyOptions(opts)
	return Filter{typ: TypeBandPass, low: low, high: high, gain: cfg.gain}, nil
}

// NewBandStop creates a filter rejecting the band [low, high] and passing its
// complement, edges included.
func NewBandStop(low, high float64, opts ...Option) (Filter, error) {
	if err := validateBand(low, high); err != nil {
		return Filter{}, err
	}
	cfg := applyOptions(opts)
	return Filter{typ: TypeBandStop, low: low, high: high, gain: cfg.gain}, nil
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func validateBand(low, high float64) error {
	if !core.Finite(low) || !core.Finite(high) {
		return fmt.Errorf("%w: band edges must be finite, got [%v, %v]", ErrInvalidParameter, low, high)
	}
	if low > high {
		return fmt.Errorf("%w: band edges must be ordered, got [%v, %v]", ErrInvalidParameter, low, high)
	}
	return nil
}

// Type returns the filter mask type.
func (f Filter) Type() Type { return f.typ }

// Gain returns the passband gain.
func (f Filter) Gain() float64 { return f.gain }

// Edges returns the band edges. Low-pass filters report low = -Inf and
// high-pass filters report high = +Inf. For band-stop filters the edges
// delimit the rejected band.
func (f Filter) Edges() (low, high float64) { return f.low, f.high }

// Passes reports whether frequency freq lies in the pass region. All band
// edges are closed, so a band-stop filter passes its exact edges as well.
func (f Filter) Passes(freq float64) bool {
	if math.IsNaN(freq) {
		return false
	}
	if f.typ == TypeBandStop {
		return freq <= f.low || freq >= f.high
	}
	return f.low <= freq && freq <= f.high
}

// Clip restricts a component to the pass region, applying the filter gain.
//
// Pass masks yield at most one component. A band-stop mask can split a
// component into a lower and an upper remainder, returned in that order. A
// degenerate band-stop with low == high removes only impulses sitting on the
// stop frequency; continuous shapes lose a measure-zero slice and pass
// unchanged.
func (f Filter) Clip(c component.Component) []component.Component {
	if f.typ != TypeBandStop {
		kept, ok := c.Clip(f.low, f.high)
		if !ok {
			return nil
		}
		return []component.Component{f.scaled(kept)}
	}

	if f.low == f.high {
		if c.IsImpulse() && c.Center() == f.low {
			return nil
		}
		return []component.Component{f.scaled(c)}
	}

	out := make([]component.Component, 0, 2)
	if lower, ok := c.Clip(math.Inf(-1), f.low); ok {
		out = append(out, f.scaled(lower))
	}
	if upper, ok := c.Clip(f.high, math.Inf(1)); ok {
		out = append(out, f.scaled(upper))
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func (f Filter) scaled(c component.Component) component.Component {
	if f.gain == 1 {
		return c
	}
	return c.Scale(complex(f.gain, 0))
}

// String returns a compact debug representation.
func (f Filter) String() string {
	switch f.typ {
	case TypeLowPass:
		return fmt.Sprintf("low-pass(fc=%g, gain=%g)", f.high, f.gain)
	case TypeHighPass:
		return fmt.Sprintf("high-pass(fc=%g, gain=%g)", f.low, f.gain)
	default:
		return fmt.Sprintf("%v(low=%g, high=%g, gain=%g)", f.typ, f.low, f.high, f.gain)
	}
}
