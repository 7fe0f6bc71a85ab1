package linespec

import (
	"errors"
	"fmt"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/agustin-d-martinez/spectrum-graphics/spectral/core"
	"github.com/agustin-d-martinez/spectrum-graphics/spectral/spectrum"
)

const defaultMinMagnitude = 1e-12

var (
	// ErrEmptyInput is returned when there is nothing to analyze.
	ErrEmptyInput = errors.New("linespec: empty input")

	// ErrBlockTooSmall is returned when a configured block size cannot hold
	// the input samples.
	ErrBlockTooSmall = errors.New("linespec: block size smaller than input")
)

// Config holds line-spectrum extraction parameters.
//
// BlockSize is the FFT length; zero means the next power of two that holds
// the input. SampleRate maps bins to frequencies; zero means 1 Hz per bin.
// Bins with magnitude below MinMagnitude are dropped; zero picks a tiny
// default that only removes numeric noise, negative keeps every bin.
type Config struct {
	core.ProcessorConfig
	MinMagnitude float64
}

// Analyzer extracts line spectra from sample blocks.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an analyzer with normalized configuration.
func NewAnalyzer(cfg Config) *Analyzer {
	cfg = normalizeConfig(cfg)
	return &Analyzer{cfg: cfg}
}

// NewAnalyzerFromOptions builds an analyzer from processor options, keeping
// every other setting at its default.
func NewAnalyzerFromOptions(opts ...core.ProcessorOption) *Analyzer {
	return NewAnalyzer(Config{ProcessorConfig: core.ApplyProcessorOptions(opts...)})
}

// Analyze is a one-shot extraction from a time-domain block.
func Analyze(samples []float64, cfg Config) (spectrum.Spectrum, error) {
	return NewAnalyzer(cfg).Analyze(samples)
}

// FromBins is a one-shot extraction from full-length FFT output.
func FromBins(bins []complex128, cfg Config) (spectrum.Spectrum, error) {
	return NewAnalyzer(cfg).FromBins(bins)
}

// Analyze transforms samples and returns one impulse per surviving bin.
//
// The block is zero-padded to the FFT length. Impulses are emitted in
// ascending bin order at k*SampleRate/N.
func (a *Analyzer) Analyze(samples []float64) (spectrum.Spectrum, error) {
	if len(samples) == 0 {
		return spectrum.Spectrum{}, ErrEmptyInput
	}

	fftSize := a.cfg.BlockSize
	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(samples))
	}
	if fftSize < len(samples) {
		return spectrum.Spectrum{}, fmt.Errorf("%w: %d < %d", ErrBlockTooSmall, fftSize, len(samples))
	}

	inData := make([]complex128, fftSize)
	for i, s := range samples {
		inData[i] = complex(s, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("linespec: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, inData); err != nil {
		return spectrum.Spectrum{}, fmt.Errorf("linespec: %w", err)
	}

	return a.FromBins(out)
}

// FromBins maps full-length FFT output to a line spectrum.
//
// Bins are taken one-sided: k = 0..N/2, amplitude X[k]/N, doubled for bins
// with a conjugate partner (every interior bin, plus the top bin when N is
// odd). Phase is preserved.
func (a *Analyzer) FromBins(bins []complex128) (spectrum.Spectrum, error) {
	n := len(bins)
	if n == 0 {
		return spectrum.Spectrum{}, ErrEmptyInput
	}

	sampleRate := a.cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = float64(n)
	}

	half := n / 2
	freqs := make([]float64, 0, half+1)
	amps := make([]complex128, 0, half+1)

	for k := 0; k <= half; k++ {
		amp := bins[k] / complex(float64(n), 0)
		if k > 0 && 2*k != n {
			amp *= 2
		}
		if cmplx.Abs(amp) < a.cfg.MinMagnitude {
			continue
		}
		freqs = append(freqs, float64(k)*sampleRate/float64(n))
		amps = append(amps, amp)
	}

	return spectrum.FromSamples(freqs, amps)
}

func normalizeConfig(cfg Config) Config {
	if cfg.BlockSize < 0 {
		cfg.BlockSize = 0
	}

	if cfg.MinMagnitude == 0 {
		cfg.MinMagnitude = defaultMinMagnitude
	}

	if cfg.MinMagnitude < 0 {
		cfg.MinMagnitude = 0
	}

	return cfg
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
