// Command specinfo assembles a spectrum on the command line and prints its
// component table.
//
// Usage:
//
//	specinfo [flags] [component ...]
//
// Components are positional arguments of the form shape:center:amp[:halfwidth]:
//
//	delta:100:1
//	block:500:0.5:100
//	triangle:1200:1:200
//	left:0:1:300
//	right:0:1:300
//
// Transforms apply in a fixed order: -scale, -shift, -mirror, then the
// filters (-lowpass, -highpass, -bandpass, -bandstop, in that order), then
// -mix. Without positional arguments a small demonstration spectrum is used.
//
// Examples:
//
//	specinfo delta:100:1 block:500:0.5:100
//	specinfo -lowpass 800 block:500:1:250 delta:900:2
//	specinfo -bandstop 400:600 triangle:500:1:150
//	specinfo -mix 1000:0.5 delta:100:2
//	specinfo -samples 9 -span 0:1000 block:500:1:250
//	specinfo -stats triangle:500:1:150
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/agustin-d-martinez/spectrum-graphics/render"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/component"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/filter"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/spectrum"
	frequencystats "github.com/agustin-d-martinez/spectrum-graphics/stats/frequency"
)

var demoArgs = []string{"delta:100:1", "block:500:0.5:100", "triangle:1200:1:200"}

func main() {
	lowpass := flag.Float64("lowpass", math.NaN(), "low-pass cutoff in Hz")
	highpass := flag.Float64("highpass", math.NaN(), "high-pass cutoff in Hz")
	bandpass := flag.String("bandpass", "", "band-pass edges as lo:hi in Hz")
	bandstop := flag.String("bandstop", "", "band-stop edges as lo:hi in Hz")
	gain := flag.Float64("gain", 1, "passband gain applied by the filters")
	mix := flag.String("mix", "", "heterodyne as fosc[:gain], gain defaults to 0.5")
	scale := flag.Float64("scale", 1, "scale every amplitude")
	shift := flag.Float64("shift", 0, "shift every center frequency in Hz")
	mirror := flag.Bool("mirror", false, "mirror the spectrum about 0 Hz")
	samples := flag.Int("samples", 0, "print n sampled magnitude rows")
	span := flag.String("span", "", "sample span as lo:hi in Hz (default: padded support)")
	stats := flag.Bool("stats", false, "print curve and impulse statistics")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: specinfo [flags] [component ...]\n\n")
		fmt.Fprintf(os.Stderr, "Assembles a spectrum from shape:center:amp[:halfwidth] arguments\n")
		fmt.Fprintf(os.Stderr, "and prints the resulting components, impulse masses and passbands.\n")
		fmt.Fprintf(os.Stderr, "Shapes: delta, block, triangle, left, right.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  specinfo delta:100:1 block:500:0.5:100\n")
		fmt.Fprintf(os.Stderr, "  specinfo -lowpass 800 block:500:1:250 delta:900:2\n")
		fmt.Fprintf(os.Stderr, "  specinfo -bandstop 400:600 -mix 1000:0.5 triangle:500:1:150\n")
		fmt.Fprintf(os.Stderr, "  specinfo -samples 9 -span 0:1000 block:500:1:250\n")
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		args = demoArgs
	}

	comps := parseComponents(args)
	if len(comps) == 0 {
		fmt.Fprintf(os.Stderr, "error: no valid components\n")
		os.Exit(1)
	}

	s := spectrum.New(comps...)
	if *scale != 1 {
		s = s.Scale(complex(*scale, 0))
	}
	if *shift != 0 {
		s = s.Shift(*shift)
	}
	if *mirror {
		s = s.Mirror()
	}

	filters, err := buildFilters(*lowpass, *highpass, *bandpass, *bandstop, *gain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(filters) > 0 {
		s = s.ApplyFilters(filters...)
	}

	if *mix != "" {
		fOsc, mixGain, err := parseMix(*mix)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: -mix: %v\n", err)
			os.Exit(1)
		}
		s = s.Mix(fOsc, mixGain)
	}

	printComponents(s)
	printMasses(s)
	if len(filters) > 0 {
		printPassbands(filters)
	}
	if *samples > 0 {
		printSamples(s, *samples, *span)
	}
	if *stats {
		printStats(s, *samples, *span)
	}
}

func parseComponents(args []string) []component.Component {
	var comps []component.Component
	for _, arg := range args {
		c, err := parseComponent(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: skipping %q: %v\n", arg, err)
			continue
		}
		comps = append(comps, c)
	}
	return comps
}

func parseComponent(arg string) (component.Component, error) {
	parts := strings.Split(arg, ":")
	if len(parts) < 3 {
		return component.Component{}, fmt.Errorf("want shape:center:amp[:halfwidth]")
	}

	shape := strings.ToLower(strings.TrimSpace(parts[0]))
	center, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return component.Component{}, fmt.Errorf("center: %v", err)
	}
	amp, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return component.Component{}, fmt.Errorf("amplitude: %v", err)
	}

	if shape == "delta" {
		if len(parts) != 3 {
			return component.Component{}, fmt.Errorf("delta takes no halfwidth")
		}
		return component.NewDelta(center, complex(amp, 0))
	}

	if len(parts) != 4 {
		return component.Component{}, fmt.Errorf("%s needs a halfwidth", shape)
	}
	halfWidth, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return component.Component{}, fmt.Errorf("halfwidth: %v", err)
	}

	switch shape {
	case "block":
		return component.NewBlock(center, complex(amp, 0), halfWidth)
	case "triangle":
		return component.NewTriangle(center, complex(amp, 0), halfWidth)
	case "left", "left-triangle":
		return component.NewLeftTriangle(center, complex(amp, 0), halfWidth)
	case "right", "right-triangle":
		return component.NewRightTriangle(center, complex(amp, 0), halfWidth)
	}
	return component.Component{}, fmt.Errorf("unknown shape %q", shape)
}

func buildFilters(lowpass, highpass float64, bandpass, bandstop string, gain float64) ([]filter.Filter, error) {
	var filters []filter.Filter

	if !math.IsNaN(lowpass) {
		f, err := filter.NewLowPass(lowpass, filter.WithGain(gain))
		if err != nil {
			return nil, fmt.Errorf("-lowpass: %v", err)
		}
		filters = append(filters, f)
	}
	if !math.IsNaN(highpass) {
		f, err := filter.NewHighPass(highpass, filter.WithGain(gain))
		if err != nil {
			return nil, fmt.Errorf("-highpass: %v", err)
		}
		filters = append(filters, f)
	}
	if bandpass != "" {
		lo, hi, err := parseRange(bandpass)
		if err != nil {
			return nil, fmt.Errorf("-bandpass: %v", err)
		}
		f, err := filter.NewBandPass(lo, hi, filter.WithGain(gain))
		if err != nil {
			return nil, fmt.Errorf("-bandpass: %v", err)
		}
		filters = append(filters, f)
	}
	if bandstop != "" {
		lo, hi, err := parseRange(bandstop)
		if err != nil {
			return nil, fmt.Errorf("-bandstop: %v", err)
		}
		f, err := filter.NewBandStop(lo, hi, filter.WithGain(gain))
		if err != nil {
			return nil, fmt.Errorf("-bandstop: %v", err)
		}
		filters = append(filters, f)
	}

	return filters, nil
}

func parseRange(s string) (lo, hi float64, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("want lo:hi, got %q", s)
	}
	lo, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, err
	}
	hi, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

func parseMix(s string) (fOsc, gain float64, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 1 && len(parts) != 2 {
		return 0, 0, fmt.Errorf("want fosc[:gain], got %q", s)
	}
	fOsc, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, err
	}
	gain = 0.5
	if len(parts) == 2 {
		gain, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, 0, err
		}
	}
	return fOsc, gain, nil
}

func printComponents(s spectrum.Spectrum) {
	if s.Len() == 0 {
		fmt.Println("(no components)")
		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Shape\tCenter [Hz]\tAmplitude\tHalf-width [Hz]\tSupport [Hz]\n")
	fmt.Fprintf(tw, "-----\t-----------\t---------\t---------------\t------------\n")

	for _, c := range s.Components() {
		width := "-"
		if !c.IsImpulse() {
			width = strconv.FormatFloat(c.HalfWidth(), 'g', -1, 64)
		}
		lo, hi := c.Support()
		fmt.Fprintf(tw, "%s\t%g\t%v\t%s\t[%g, %g]\n",
			c.Shape(), c.Center(), c.Amplitude(), width, lo, hi)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printMasses(s spectrum.Spectrum) {
	masses := s.Masses()
	if len(masses) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("Impulse masses:")
	for _, m := range masses {
		fmt.Printf("  %g Hz: %v\n", m.Freq, m.Amp)
	}
}

func printPassbands(filters []filter.Filter) {
	fmt.Println()
	bands := filter.CascadePassbands(filters...)
	if len(bands) == 0 {
		fmt.Println("Passbands: none (the cascade rejects everything)")
		return
	}

	parts := make([]string, len(bands))
	for i, b := range bands {
		parts[i] = fmt.Sprintf("[%g, %g]", b.Low, b.High)
	}
	fmt.Println("Passbands:", strings.Join(parts, " "))
}

// sampleSpan resolves the frequency span to sample, either from the -span
// flag or from the padded support of the spectrum.
func sampleSpan(s spectrum.Spectrum, spanFlag string) (lo, hi float64, ok bool) {
	if spanFlag != "" {
		lo, hi, err := parseRange(spanFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: -span: %v\n", err)
			os.Exit(1)
		}
		return lo, hi, true
	}

	ext, ok := render.Bounds(s)
	if !ok {
		fmt.Fprintf(os.Stderr, "warning: nothing to sample\n")
		return 0, 0, false
	}
	lo, hi = ext.PaddedX(0.1)
	return lo, hi, true
}

func printSamples(s spectrum.Spectrum, n int, spanFlag string) {
	lo, hi, ok := sampleSpan(s, spanFlag)
	if !ok {
		return
	}

	grid := render.Grid(lo, hi, n)
	curve := render.Polyline(s, grid)
	mags := render.Magnitude(curve.Values)

	fmt.Println()
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\t|X(f)|\n")
	fmt.Fprintf(tw, "---------\t------\n")
	for i, f := range curve.Freqs {
		fmt.Fprintf(tw, "%g\t%.6g\n", f, mags[i])
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printStats(s spectrum.Spectrum, n int, spanFlag string) {
	if n <= 0 {
		n = 512
	}

	lo, hi, ok := sampleSpan(s, spanFlag)
	if !ok {
		return
	}

	curve := render.Polyline(s, render.Grid(lo, hi, n))
	st := frequencystats.Calculate(curve)

	fmt.Println()
	fmt.Printf("Curve statistics (%d points over [%g, %g]):\n", n, lo, hi)
	fmt.Printf("  peak       %.6g at %g Hz\n", st.Peak, st.PeakFreq)
	fmt.Printf("  mean       %.6g\n", st.Mean)
	fmt.Printf("  energy     %.6g\n", st.Energy)
	fmt.Printf("  centroid   %.6g Hz\n", st.Centroid)
	fmt.Printf("  spread     %.6g Hz\n", st.Spread)
	fmt.Printf("  flatness   %.3f\n", st.Flatness)
	fmt.Printf("  rolloff    %.6g Hz (85%% energy)\n", st.Rolloff)
	fmt.Printf("  bandwidth  %.6g Hz (3 dB)\n", st.Bandwidth)

	masses := s.Masses()
	if len(masses) == 0 {
		return
	}

	ms := frequencystats.CalculateMasses(masses)
	fmt.Println()
	fmt.Println("Impulse statistics:")
	fmt.Printf("  total      %.6g\n", ms.Total)
	fmt.Printf("  peak       %.6g at %g Hz\n", ms.Peak, ms.PeakFreq)
	fmt.Printf("  centroid   %.6g Hz\n", ms.Centroid)
	fmt.Printf("  spread     %.6g Hz\n", ms.Spread)
}
