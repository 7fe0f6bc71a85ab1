package render

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/component"
)

func mustDelta(t *testing.T, center float64, amp complex128) component.Component {
	t.Helper()
	c, err := component.NewDelta(center, amp)
	if err != nil {
		t.Fatalf("NewDelta: %v", err)
	}
	return c
}

func mustBlock(t *testing.T, center float64, amp complex128, halfWidth float64) component.Component {
	t.Helper()
	c, err := component.NewBlock(center, amp, halfWidth)
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	return c
}

func mustTriangle(t *testing.T, center float64, amp complex128, halfWidth float64) component.Component {
	t.Helper()
	c, err := component.NewTriangle(center, amp, halfWidth)
	if err != nil {
		t.Fatalf("NewTriangle: %v", err)
	}
	return c
}

func mustLeft(t *testing.T, center float64, amp complex128, halfWidth float64) component.Component {
	t.Helper()
	c, err := component.NewLeftTriangle(center, amp, halfWidth)
	if err != nil {
		t.Fatalf("NewLeftTriangle: %v", err)
	}
	return c
}

func mustRight(t *testing.T, center float64, amp complex128, halfWidth float64) component.Component {
	t.Helper()
	c, err := component.NewRightTriangle(center, amp, halfWidth)
	if err != nil {
		t.Fatalf("NewRightTriangle: %v", err)
	}
	return c
}

func TestSegmentsBlock(t *testing.T) {
	block := mustBlock(t, 0, 2+1i, 4)

	want := []Point{{-4, 0}, {-4, 2 + 1i}, {4, 2 + 1i}, {4, 0}}
	if diff := cmp.Diff(want, Segments(block)); diff != "" {
		t.Fatalf("block polyline mismatch (-want +got):\n%s", diff)
	}
}

func TestSegmentsTriangleFamily(t *testing.T) {
	tests := []struct {
		name string
		comp component.Component
		want []Point
	}{
		{
			"symmetric",
			mustTriangle(t, 0, 1, 10),
			[]Point{{-10, 0}, {0, 1}, {10, 0}},
		},
		{
			"left ramp ends with a drop",
			mustLeft(t, 0, 1, 10),
			[]Point{{-10, 0}, {0, 1}, {0, 0}},
		},
		{
			"right ramp starts with a rise",
			mustRight(t, 0, 1, 10),
			[]Point{{0, 0}, {0, 1}, {10, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Segments(tt.comp)); diff != "" {
				t.Fatalf("polyline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSegmentsInKeepsExactEdgeValues(t *testing.T) {
	tri := mustTriangle(t, 0, 1, 10)

	got := SegmentsIn(tri, -5, 5)
	want := []Point{{-5, 0.5}, {0, 1}, {5, 0.5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mid-flank cut mismatch (-want +got):\n%s", diff)
	}

	// The structural clip of the same view re-fits a narrower triangle that
	// is zero at +/-5; the render path must keep the true flank heights.
	clipped, ok := tri.Clip(-5, 5)
	if !ok {
		t.Fatal("Clip(-5, 5) returned no component")
	}
	if clipped.Evaluate(-5) == tri.Evaluate(-5) {
		t.Fatal("test fixture no longer distinguishes clip from render")
	}
}

func TestSegmentsInPeakEdgeCut(t *testing.T) {
	right := mustRight(t, 0, 1, 10)
	got := SegmentsIn(right, 0, 4)
	want := []Point{{0, 0}, {0, 1}, {4, 0.6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("right ramp peak cut mismatch (-want +got):\n%s", diff)
	}

	left := mustLeft(t, 0, 1, 10)
	got = SegmentsIn(left, -4, 0)
	want = []Point{{-4, 0.6}, {0, 1}, {0, 0}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("left ramp peak cut mismatch (-want +got):\n%s", diff)
	}

	// A cut strictly inside the flank gets no vertical edge.
	got = SegmentsIn(right, 2, 6)
	want = []Point{{2, 0.8}, {6, 0.4}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("interior flank cut mismatch (-want +got):\n%s", diff)
	}
}

func TestSegmentsDegenerate(t *testing.T) {
	if Segments(mustDelta(t, 100, 1)) != nil {
		t.Fatal("impulses have no polyline")
	}

	if Segments(mustTriangle(t, 5, 1, 0)) != nil {
		t.Fatal("zero-width triangle has no polyline")
	}

	spike := mustBlock(t, 5, 2, 0)
	want := []Point{{5, 0}, {5, 2}, {5, 2}, {5, 0}}
	if diff := cmp.Diff(want, Segments(spike)); diff != "" {
		t.Fatalf("point block mismatch (-want +got):\n%s", diff)
	}

	block := mustBlock(t, 0, 1, 4)
	if SegmentsIn(block, 10, 20) != nil {
		t.Fatal("disjoint view must yield nil")
	}
	if SegmentsIn(block, math.NaN(), 20) != nil {
		t.Fatal("NaN view must yield nil")
	}

	point := SegmentsIn(block, 2, 2)
	wantPoint := []Point{{2, 0}, {2, 1}, {2, 1}, {2, 0}}
	if diff := cmp.Diff(wantPoint, point); diff != "" {
		t.Fatalf("single-point view mismatch (-want +got):\n%s", diff)
	}
}
