package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/component"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/spectrum"
)

func TestGrid(t *testing.T) {
	got := Grid(0, 100, 5)
	want := []float64{0, 25, 50, 75, 100}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Grid mismatch (-want +got):\n%s", diff)
	}

	if got := Grid(440, 880, 1); len(got) != 1 || got[0] != 440 {
		t.Fatalf("Grid(n=1) = %v, want [440]", got)
	}
	if Grid(0, 1, 0) != nil || Grid(0, 1, -3) != nil {
		t.Fatal("non-positive n must yield nil")
	}
}

func TestGridEndpoints(t *testing.T) {
	g := Grid(-123.25, 987.5, 33)
	if g[0] != -123.25 || g[len(g)-1] != 987.5 {
		t.Fatalf("grid endpoints = %v, %v", g[0], g[len(g)-1])
	}
}

func TestPolyline(t *testing.T) {
	block, err := component.NewBlock(50, 2, 25)
	if err != nil {
		t.Fatalf("NewBlock: %v", err)
	}
	tone, err := component.NewDelta(50, 1)
	if err != nil {
		t.Fatalf("NewDelta: %v", err)
	}
	s := spectrum.New(block, tone)

	grid := Grid(0, 100, 5)
	curve := Polyline(s, grid)

	if len(curve.Freqs) != len(grid) || len(curve.Values) != len(grid) {
		t.Fatalf("curve lengths %d/%d, want %d", len(curve.Freqs), len(curve.Values), len(grid))
	}
	for i, f := range grid {
		if curve.Values[i] != s.Evaluate(f) {
			t.Fatalf("Values[%d] = %v, want %v", i, curve.Values[i], s.Evaluate(f))
		}
	}

	grid[0] = -999
	if curve.Freqs[0] != 0 {
		t.Fatal("curve must not alias the caller's grid")
	}
}

func TestPolylineEmptyGrid(t *testing.T) {
	curve := Polyline(spectrum.Spectrum{}, nil)
	if curve.Freqs != nil || curve.Values != nil {
		t.Fatalf("empty grid must yield a zero curve, got %+v", curve)
	}
}
