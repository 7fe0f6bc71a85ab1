package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqual(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.0 + 1e-13, 3.0}

	RequireSliceNearlyEqual(t, a, b, 1e-12)
}

func TestRequireComplexSliceNearlyEqual(t *testing.T) {
	a := []complex128{1, complex(0, 2), complex(3, -3)}
	b := []complex128{1 + 1e-13, complex(0, 2), complex(3, -3)}

	RequireComplexSliceNearlyEqual(t, a, b, 1e-12)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1e300, math.Pi})
}
