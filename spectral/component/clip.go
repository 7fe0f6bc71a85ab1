package component

import (
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
)

// Clip restricts the component to the closed band [lo, hi] and reports
// whether anything survives. Infinite bounds describe half-open bands.
//
// The result is always a single component. Impulses and blocks clip exactly.
// A triangle shape clips exactly when the cut removes its peak side: the
// surviving ramp keeps its slope and the amplitude is re-derived from the
// original law at the cut. Cutting away the zero side keeps the peak and
// re-anchors the base at the cut, which steepens the slope; a cut strictly
// straddling a symmetric peak keeps the peak and the wider flank. In every
// case the support of the result lies inside [lo, hi].
//
// A band that only touches the edge of a continuous support keeps nothing.
func (c Component) Clip(lo, hi float64) (Component, bool) {
	slo, shi := c.Support()
	a, b, ok := core.IntersectInterval(lo, hi, slo, shi)
	if !ok {
		return Component{}, false
	}
	if a == slo && b == shi {
		return c, true
	}
	if a == b {
		// Point supports are either kept whole or rejected above, so this
		// is a continuous shape grazing the band edge.
		return Component{}, false
	}

	switch c.shape {
	case ShapeBlock:
		return Component{shape: ShapeBlock, center: (a + b) / 2, halfWidth: (b - a) / 2, amp: c.amp}, true

	case ShapeTriangle:
		switch {
		case b <= c.center:
			flank := Component{shape: ShapeLeftTriangle, center: c.center, halfWidth: c.halfWidth, amp: c.amp}
			return flank.Clip(a, b)
		case a >= c.center:
			flank := Component{shape: ShapeRightTriangle, center: c.center, halfWidth: c.halfWidth, amp: c.amp}
			return flank.Clip(a, b)
		default:
			la, ra := c.center-a, b-c.center
			switch {
			case la == ra:
				return Component{shape: ShapeTriangle, center: c.center, halfWidth: la, amp: c.amp}, true
			case la > ra:
				return Component{shape: ShapeLeftTriangle, center: c.center, halfWidth: la, amp: c.amp}, true
			default:
				return Component{shape: ShapeRightTriangle, center: c.center, halfWidth: ra, amp: c.amp}, true
			}
		}

	case ShapeLeftTriangle:
		// b <= peak here; the new peak sits at b with the original law value.
		base := c.center - c.halfWidth
		amp := c.amp * complex((b-base)/c.halfWidth, 0)
		return Component{shape: ShapeLeftTriangle, center: b, halfWidth: b - a, amp: amp}, true

	case ShapeRightTriangle:
		// a >= peak here; the new peak sits at a with the original law value.
		base := c.center + c.halfWidth
		amp := c.amp * complex((base-a)/c.halfWidth, 0)
		return Component{shape: ShapeRightTriangle, center: a, halfWidth: b - a, amp: amp}, true

	default:
		return Component{}, false
	}
}
