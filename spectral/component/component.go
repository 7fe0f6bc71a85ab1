package component

import (
	"errors"
	"fmt"
	"math"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
)

// Shape identifies the analytic form of a component.
type Shape int

const (
	ShapeDelta Shape = iota
	ShapeBlock
	ShapeLeftTriangle
	ShapeRightTriangle
	ShapeTriangle
)

// String returns a short lowercase name for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeDelta:
		return "delta"
	case ShapeBlock:
		return "block"
	case ShapeLeftTriangle:
		return "left-triangle"
	case ShapeRightTriangle:
		return "right-triangle"
	case ShapeTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Errors returned by component constructors.
var ErrInvalidParameter = errors.New("component: invalid parameter")

// Component is one analytic piece of a spectrum.
//
// The zero value is a zero-amplitude impulse at 0 Hz.
type Component struct {
	shape     Shape
	center    float64
	halfWidth float64
	amp       complex128
}

// NewDelta creates a Dirac impulse with point mass amp at center.
func NewDelta(center float64, amp complex128) (Component, error) {
	if err := validateParams(center, amp, 0); err != nil {
		return Component{}, err
	}
	return Component{shape: ShapeDelta, center: center, amp: amp}, nil
}

// NewBlock creates a rectangular block of amplitude amp on [center-halfWidth, center+halfWidth].
// A zero half-width yields a point block that evaluates to amp at exactly center.
func NewBlock(center float64, amp complex128, halfWidth float64) (Component, error) {
	if err := validateParams(center, amp, halfWidth); err != nil {
		return Component{}, err
	}
	return Component{shape: ShapeBlock, center: center, halfWidth: halfWidth, amp: amp}, nil
}

// NewTriangle creates a symmetric triangle peaking at center with amplitude
// amp and support [center-halfWidth, center+halfWidth].
func NewTriangle(center float64, amp complex128, halfWidth float64) (Component, error) {
	if err := validateParams(center, amp, halfWidth); err != nil {
		return Component{}, err
	}
	return Component{shape: ShapeTriangle, center: center, halfWidth: halfWidth, amp: amp}, nil
}

// NewLeftTriangle creates the rising flank of a triangle: zero at
// center-halfWidth, peak amp at center.
func NewLeftTriangle(center float64, amp complex128, halfWidth float64) (Component, error) {
	if err := validateParams(center, amp, halfWidth); err != nil {
		return Component{}, err
	}
	return Component{shape: ShapeLeftTriangle, center: center, halfWidth: halfWidth, amp: amp}, nil
}

// NewRightTriangle creates the falling flank of a triangle: peak amp at
// center, zero at center+halfWidth.
func NewRightTriangle(center float64, amp complex128, halfWidth float64) (Component, error) {
	if err := validateParams(center, amp, halfWidth); err != nil {
		return Component{}, err
	}
	return Component{shape: ShapeRightTriangle, center: center, halfWidth: halfWidth, amp: amp}, nil
}

func validateParams(center float64, amp complex128, halfWidth float64) error {
	if !core.Finite(center) {
		return fmt.Errorf("%w: center frequency must be finite, got %v", ErrInvalidParameter, center)
	}
	if !core.FiniteComplex(amp) {
		return fmt.Errorf("%w: amplitude must be finite, got %v", ErrInvalidParameter, amp)
	}
	if !core.Finite(halfWidth) || halfWidth < 0 {
		return fmt.Errorf("%w: half-width must be finite and non-negative, got %v", ErrInvalidParameter, halfWidth)
	}
	return nil
}

// Shape returns the analytic form of the component.
func (c Component) Shape() Shape { return c.shape }

// Center returns the center frequency f0.
func (c Component) Center() float64 { return c.center }

// HalfWidth returns the half-width w. Impulses report 0.
func (c Component) HalfWidth() float64 { return c.halfWidth }

// Amplitude returns the complex amplitude A.
func (c Component) Amplitude() complex128 { return c.amp }

// IsImpulse reports whether the component is a Dirac impulse.
func (c Component) IsImpulse() bool { return c.shape == ShapeDelta }

// Support returns the closed frequency interval outside of which the
// component is identically zero. Impulses report the single point [f0, f0].
func (c Component) Support() (lo, hi float64) {
	switch c.shape {
	case ShapeDelta:
		return c.center, c.center
	case ShapeLeftTriangle:
		return c.center - c.halfWidth, c.center
	case ShapeRightTriangle:
		return c.center, c.center + c.halfWidth
	default:
		return c.center - c.halfWidth, c.center + c.halfWidth
	}
}

// Evaluate returns the pointwise spectral density at frequency f.
//
// Impulses evaluate to zero everywhere; their contribution is a point mass
// reported by Mass. Zero-width triangle shapes evaluate to zero, while a
// zero-width block keeps its amplitude at exactly f0.
func (c Component) Evaluate(f float64) complex128 {
	if math.IsNaN(f) {
		return 0
	}

	switch c.shape {
	case ShapeBlock:
		if f < c.center-c.halfWidth || f > c.center+c.halfWidth {
			return 0
		}
		return c.amp
	case ShapeTriangle:
		if c.halfWidth == 0 {
			return 0
		}
		d := math.Abs(f - c.center)
		if d > c.halfWidth {
			return 0
		}
		return c.amp * complex(1-d/c.halfWidth, 0)
	case ShapeLeftTriangle:
		if c.halfWidth == 0 || f < c.center-c.halfWidth || f > c.center {
			return 0
		}
		return c.amp * complex((f-(c.center-c.halfWidth))/c.halfWidth, 0)
	case ShapeRightTriangle:
		if c.halfWidth == 0 || f < c.center || f > c.center+c.halfWidth {
			return 0
		}
		return c.amp * complex((c.center+c.halfWidth-f)/c.halfWidth, 0)
	default:
		return 0
	}
}

// Mass returns the point mass of an impulse and zero for every other shape.
func (c Component) Mass() complex128 {
	if c.shape == ShapeDelta {
		return c.amp
	}
	return 0
}

// Shift returns a copy moved by df along the frequency axis.
// df must be finite.
func (c Component) Shift(df float64) Component {
	out := c
	out.center = c.center + df
	return out
}

// Scale returns a copy with the amplitude multiplied by k.
// k must be finite.
func (c Component) Scale(k complex128) Component {
	out := c
	out.amp = c.amp * k
	return out
}

// Mirror returns the component reflected about 0 Hz, so that the result
// evaluates at f to the receiver's value at -f.
func (c Component) Mirror() Component {
	out := c
	out.center = -c.center
	switch c.shape {
	case ShapeLeftTriangle:
		out.shape = ShapeRightTriangle
	case ShapeRightTriangle:
		out.shape = ShapeLeftTriangle
	}
	return out
}

// String returns a compact debug representation.
func (c Component) String() string {
	if c.shape == ShapeDelta {
		return fmt.Sprintf("delta(f0=%g, A=%v)", c.center, c.amp)
	}
	return fmt.Sprintf("%v(f0=%g, A=%v, w=%g)", c.shape, c.center, c.amp, c.halfWidth)
}
