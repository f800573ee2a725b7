package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "runtime"

// PitchMode specifies the pitch detection method.
type PitchMode int

const (
	// PitchSchmitt estimates the period with a Schmitt trigger.
	PitchSchmitt PitchMode = iota
	// PitchFcomb uses a fast harmonic comb filter.
	PitchFcomb
	// PitchMcomb uses spectral flattening, multi-comb filtering and peak
	// histogramming.
	PitchMcomb
	// PitchYin uses the YIN fundamental frequency estimator.
	PitchYin
	// PitchYinFast is the YIN algorithm computed in the spectral domain.
	PitchYinFast
	// PitchYinFFT uses a tapered square difference function computed with a
	// Fourier transform, allowing spectral weighting.
	PitchYinFFT
	// PitchSpecACF uses spectral autocorrelation.
	PitchSpecACF
)

// PitchDefault is the detection method used when no explicit choice is
// given.
const PitchDefault = PitchYinFFT

// String returns the name understood by the native layer.
func (m PitchMode) String() string {
	switch m {
	case PitchSchmitt:
		return "schmitt"
	case PitchFcomb:
		return "fcomb"
	case PitchMcomb:
		return "mcomb"
	case PitchYin:
		return "yin"
	case PitchYinFast:
		return "yinfast"
	case PitchYinFFT:
		return "yinfft"
	case PitchSpecACF:
		return "specacf"
	default:
		return PitchDefault.String()
	}
}

// ParsePitchMode maps a detection method name back to its PitchMode.
func ParsePitchMode(s string) (PitchMode, error) {
	switch s {
	case "schmitt":
		return PitchSchmitt, nil
	case "fcomb":
		return PitchFcomb, nil
	case "mcomb":
		return PitchMcomb, nil
	case "yin":
		return PitchYin, nil
	case "yinfast":
		return PitchYinFast, nil
	case "yinfft":
		return PitchYinFFT, nil
	case "specacf":
		return PitchSpecACF, nil
	default:
		return 0, ErrInvalidArg
	}
}

// PitchUnit specifies the output unit of the pitch tracker.
type PitchUnit int

const (
	// UnitHz reports pitch as a frequency in Hertz.
	UnitHz PitchUnit = iota
	// UnitMidi reports pitch as a fractional midi note number.
	UnitMidi
	// UnitCent reports pitch in cents.
	UnitCent
	// UnitBin reports pitch as a frequency bin.
	UnitBin
)

// PitchUnitDefault is the output unit used when no explicit choice is
// given.
const PitchUnitDefault = UnitHz

// String returns the name understood by the native layer.
func (u PitchUnit) String() string {
	switch u {
	case UnitHz:
		return "hertz"
	case UnitMidi:
		return "midi"
	case UnitCent:
		return "cent"
	case UnitBin:
		return "bin"
	default:
		return PitchUnitDefault.String()
	}
}

// ParsePitchUnit maps a unit name back to its PitchUnit.
func ParsePitchUnit(s string) (PitchUnit, error) {
	switch s {
	case "hertz":
		return UnitHz, nil
	case "midi":
		return UnitMidi, nil
	case "cent":
		return UnitCent, nil
	case "bin":
		return UnitBin, nil
	default:
		return 0, ErrInvalidArg
	}
}

// Pitch tracks the fundamental frequency of a stream of hop-sized frames.
type Pitch struct {
	handle  *C.aubio_pitch_t
	hopSize int
}

// NewPitch creates a pitch detection object.
//
// Parameters:
//   - mode: Pitch detection algorithm
//   - bufSize: Size of the analysis buffer
//   - hopSize: Step size between two consecutive analysis instants
//   - sampleRate: Sampling rate of the input signal in Hz
func NewPitch(mode PitchMode, bufSize, hopSize, sampleRate int) (*Pitch, error) {
	handle := C.new_aubio_pitch(cname(mode.String()),
		C.uint_t(bufSize), C.uint_t(hopSize), C.uint_t(sampleRate))
	if handle == nil {
		return nil, ErrFailedInit
	}
	p := &Pitch{handle: handle, hopSize: hopSize}
	runtime.SetFinalizer(p, (*Pitch).Close)
	return p, nil
}

// WithTolerance sets the yin or yinfft tolerance threshold, for chaining.
func (p *Pitch) WithTolerance(tolerance float32) *Pitch {
	p.SetTolerance(tolerance)
	return p
}

// WithSilence sets the silence threshold, for chaining.
func (p *Pitch) WithSilence(silence float32) *Pitch {
	p.SetSilence(silence)
	return p
}

// WithUnit sets the output unit, for chaining.
func (p *Pitch) WithUnit(unit PitchUnit) *Pitch {
	p.SetUnit(unit)
	return p
}

// GetHop returns the hop size.
func (p *Pitch) GetHop() int { return p.hopSize }

// Process runs pitch detection on one hop of input.
//
// Parameters:
//   - input: Input frame, hopSize samples
//   - out: Output pitch candidates, at least 1 element
func (p *Pitch) Process(input, out []float32) error {
	if p.handle == nil {
		return ErrFailedInit
	}
	if err := checkSize(input, p.hopSize); err != nil {
		return err
	}
	if err := checkSize(out, 1); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_pitch_do(p.handle, fvecPtr(&pin, input), fvecPtr(&pin, out))
	return nil
}

// Detect runs pitch detection on one hop of input and returns the detected
// pitch in the configured unit.
func (p *Pitch) Detect(input []float32) (float32, error) {
	var out [1]float32
	if err := p.Process(input, out[:]); err != nil {
		return 0, err
	}
	return out[0], nil
}

// SetTolerance sets the yin or yinfft tolerance threshold.
func (p *Pitch) SetTolerance(tolerance float32) {
	if p.handle == nil {
		return
	}
	C.aubio_pitch_set_tolerance(p.handle, C.smpl_t(tolerance))
}

// GetTolerance returns the yin or yinfft tolerance threshold.
func (p *Pitch) GetTolerance() float32 {
	if p.handle == nil {
		return 0
	}
	return float32(C.aubio_pitch_get_tolerance(p.handle))
}

// SetSilence sets the silence threshold in dB under which pitch is not
// reported.
func (p *Pitch) SetSilence(silence float32) {
	if p.handle == nil {
		return
	}
	C.aubio_pitch_set_silence(p.handle, C.smpl_t(silence))
}

// GetSilence returns the silence threshold in dB.
func (p *Pitch) GetSilence() float32 {
	if p.handle == nil {
		return 0
	}
	return float32(C.aubio_pitch_get_silence(p.handle))
}

// SetUnit sets the output unit of the detected pitch.
func (p *Pitch) SetUnit(unit PitchUnit) {
	if p.handle == nil {
		return
	}
	C.aubio_pitch_set_unit(p.handle, cname(unit.String()))
}

// GetConfidence returns the confidence of the latest estimate, between 0
// and 1.
func (p *Pitch) GetConfidence() float32 {
	if p.handle == nil {
		return 0
	}
	return float32(C.aubio_pitch_get_confidence(p.handle))
}

// Close releases the pitch tracker resources.
func (p *Pitch) Close() error {
	if p.handle != nil {
		C.del_aubio_pitch(p.handle)
		p.handle = nil
		runtime.SetFinalizer(p, nil)
	}
	return nil
}
