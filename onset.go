package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "runtime"

// OnsetMode specifies the onset detection function.
type OnsetMode int

const (
	// OnsetEnergy computes the local energy of the spectral frame.
	OnsetEnergy OnsetMode = iota
	// OnsetHFC computes the High Frequency Content of the spectral frame,
	// efficient at detecting percussive onsets.
	OnsetHFC
	// OnsetComplex uses the complex domain method.
	OnsetComplex
	// OnsetPhase uses the phase based method.
	OnsetPhase
	// OnsetWPhase uses weighted phase deviation.
	OnsetWPhase
	// OnsetSpecDiff uses the spectral difference method.
	OnsetSpecDiff
	// OnsetKL uses the Kullback-Liebler divergence.
	OnsetKL
	// OnsetMKL uses the modified Kullback-Liebler divergence.
	OnsetMKL
	// OnsetSpecFlux uses spectral flux.
	OnsetSpecFlux
)

// OnsetDefault is the detection function used when no explicit choice is
// given.
const OnsetDefault = OnsetHFC

// String returns the name understood by the native layer.
func (m OnsetMode) String() string {
	switch m {
	case OnsetEnergy:
		return "energy"
	case OnsetHFC:
		return "hfc"
	case OnsetComplex:
		return "complex"
	case OnsetPhase:
		return "phase"
	case OnsetWPhase:
		return "wphase"
	case OnsetSpecDiff:
		return "specdiff"
	case OnsetKL:
		return "kl"
	case OnsetMKL:
		return "mkl"
	case OnsetSpecFlux:
		return "specflux"
	default:
		return OnsetDefault.String()
	}
}

// ParseOnsetMode maps a detection function name back to its OnsetMode.
func ParseOnsetMode(s string) (OnsetMode, error) {
	switch s {
	case "energy":
		return OnsetEnergy, nil
	case "hfc":
		return OnsetHFC, nil
	case "complex":
		return OnsetComplex, nil
	case "phase":
		return OnsetPhase, nil
	case "wphase":
		return OnsetWPhase, nil
	case "specdiff":
		return OnsetSpecDiff, nil
	case "kl":
		return OnsetKL, nil
	case "mkl":
		return OnsetMKL, nil
	case "specflux":
		return OnsetSpecFlux, nil
	default:
		return 0, ErrInvalidArg
	}
}

func (m OnsetMode) specMethodName() string { return m.String() }

// Onset detects the start of sound events in a stream of hop-sized frames.
//
// The detection function is computed per frame and peaks above the
// peak-picking threshold, past the silence gate and the minimum inter-onset
// interval, set the first element of the output vector to a non-zero
// offset; otherwise it stays 0.
type Onset struct {
	handle  *C.aubio_onset_t
	hopSize int
}

// NewOnset creates an onset detection object.
//
// Parameters:
//   - mode: Onset detection function
//   - bufSize: Buffer size for the internal phase vocoder
//   - hopSize: Hop size between two consecutive frames
//   - sampleRate: Sampling rate of the input signal in Hz
func NewOnset(mode OnsetMode, bufSize, hopSize, sampleRate int) (*Onset, error) {
	handle := C.new_aubio_onset(cname(mode.String()),
		C.uint_t(bufSize), C.uint_t(hopSize), C.uint_t(sampleRate))
	if handle == nil {
		return nil, ErrFailedInit
	}
	o := &Onset{handle: handle, hopSize: hopSize}
	runtime.SetFinalizer(o, (*Onset).Close)
	return o, nil
}

// WithAWhitening enables or disables adaptive whitening, for chaining.
func (o *Onset) WithAWhitening(enable bool) *Onset {
	o.SetAWhitening(enable)
	return o
}

// WithCompression sets the log compression lambda, for chaining.
func (o *Onset) WithCompression(lambda float32) *Onset {
	o.SetCompression(lambda)
	return o
}

// WithSilence sets the silence threshold, for chaining.
func (o *Onset) WithSilence(silence float32) *Onset {
	o.SetSilence(silence)
	return o
}

// WithThreshold sets the peak-picking threshold, for chaining.
func (o *Onset) WithThreshold(threshold float32) *Onset {
	o.SetThreshold(threshold)
	return o
}

// WithMinioi sets the minimum inter-onset interval in samples, for
// chaining.
func (o *Onset) WithMinioi(minioi int) *Onset {
	o.SetMinioi(minioi)
	return o
}

// WithMinioiS sets the minimum inter-onset interval in seconds, for
// chaining.
func (o *Onset) WithMinioiS(minioi float32) *Onset {
	o.SetMinioiS(minioi)
	return o
}

// WithMinioiMs sets the minimum inter-onset interval in milliseconds, for
// chaining.
func (o *Onset) WithMinioiMs(minioi float32) *Onset {
	o.SetMinioiMs(minioi)
	return o
}

// WithDelay sets the detection delay in samples, for chaining.
func (o *Onset) WithDelay(delay int) *Onset {
	o.SetDelay(delay)
	return o
}

// WithDelayS sets the detection delay in seconds, for chaining.
func (o *Onset) WithDelayS(delay float32) *Onset {
	o.SetDelayS(delay)
	return o
}

// WithDelayMs sets the detection delay in milliseconds, for chaining.
func (o *Onset) WithDelayMs(delay float32) *Onset {
	o.SetDelayMs(delay)
	return o
}

// GetHop returns the hop size.
func (o *Onset) GetHop() int { return o.hopSize }

// Process runs onset detection on one hop of input.
//
// When no onset is detected, out[0] is set to 0. When an onset is found,
// out[0] is set to offset = 1 + a with a in [0, 1]; the detection time in
// samples is totalFrames + offset*hopSize - delay, or can be read with
// GetLast.
//
// Parameters:
//   - input: Input frame, hopSize samples
//   - out: Output vector of at least 1 element
func (o *Onset) Process(input, out []float32) error {
	if o.handle == nil {
		return ErrFailedInit
	}
	if err := checkSize(input, o.hopSize); err != nil {
		return err
	}
	if err := checkSize(out, 1); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_onset_do(o.handle, fvecPtr(&pin, input), fvecPtr(&pin, out))
	return nil
}

// Detect runs onset detection on one hop of input and returns the raw
// detection output.
func (o *Onset) Detect(input []float32) (float32, error) {
	var out [1]float32
	if err := o.Process(input, out[:]); err != nil {
		return 0, err
	}
	return out[0], nil
}

// GetLast returns the time of the latest detected onset, in samples.
func (o *Onset) GetLast() int {
	if o.handle == nil {
		return 0
	}
	return int(C.aubio_onset_get_last(o.handle))
}

// GetLastS returns the time of the latest detected onset, in seconds.
func (o *Onset) GetLastS() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_last_s(o.handle))
}

// GetLastMs returns the time of the latest detected onset, in milliseconds.
func (o *Onset) GetLastMs() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_last_ms(o.handle))
}

// SetAWhitening enables or disables adaptive whitening of the spectrum.
func (o *Onset) SetAWhitening(enable bool) {
	if o.handle == nil {
		return
	}
	var v C.uint_t
	if enable {
		v = 1
	}
	C.aubio_onset_set_awhitening(o.handle, v)
}

// GetAWhitening reports whether adaptive whitening is enabled.
func (o *Onset) GetAWhitening() bool {
	if o.handle == nil {
		return false
	}
	return C.aubio_onset_get_awhitening(o.handle) > 0
}

// SetCompression sets the log compression lambda; 0 disables compression.
func (o *Onset) SetCompression(lambda float32) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_compression(o.handle, C.smpl_t(lambda))
}

// GetCompression returns the log compression lambda.
func (o *Onset) GetCompression() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_compression(o.handle))
}

// SetSilence sets the silence threshold in dB under which onsets are
// ignored.
func (o *Onset) SetSilence(silence float32) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_silence(o.handle, C.smpl_t(silence))
}

// GetSilence returns the silence threshold in dB.
func (o *Onset) GetSilence() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_silence(o.handle))
}

// GetDescriptor returns the value of the detection function for the latest
// frame.
func (o *Onset) GetDescriptor() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_descriptor(o.handle))
}

// GetThresholdedDescriptor returns the thresholded value of the detection
// function for the latest frame.
func (o *Onset) GetThresholdedDescriptor() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_thresholded_descriptor(o.handle))
}

// SetThreshold sets the peak-picking threshold.
func (o *Onset) SetThreshold(threshold float32) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_threshold(o.handle, C.smpl_t(threshold))
}

// GetThreshold returns the peak-picking threshold.
func (o *Onset) GetThreshold() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_threshold(o.handle))
}

// SetMinioi sets the minimum inter-onset interval in samples.
func (o *Onset) SetMinioi(minioi int) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_minioi(o.handle, C.uint_t(minioi))
}

// GetMinioi returns the minimum inter-onset interval in samples.
func (o *Onset) GetMinioi() int {
	if o.handle == nil {
		return 0
	}
	return int(C.aubio_onset_get_minioi(o.handle))
}

// SetMinioiS sets the minimum inter-onset interval in seconds.
func (o *Onset) SetMinioiS(minioi float32) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_minioi_s(o.handle, C.smpl_t(minioi))
}

// GetMinioiS returns the minimum inter-onset interval in seconds.
func (o *Onset) GetMinioiS() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_minioi_s(o.handle))
}

// SetMinioiMs sets the minimum inter-onset interval in milliseconds.
func (o *Onset) SetMinioiMs(minioi float32) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_minioi_ms(o.handle, C.smpl_t(minioi))
}

// GetMinioiMs returns the minimum inter-onset interval in milliseconds.
func (o *Onset) GetMinioiMs() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_minioi_ms(o.handle))
}

// SetDelay sets the constant detection delay in samples.
func (o *Onset) SetDelay(delay int) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_delay(o.handle, C.uint_t(delay))
}

// GetDelay returns the constant detection delay in samples.
func (o *Onset) GetDelay() int {
	if o.handle == nil {
		return 0
	}
	return int(C.aubio_onset_get_delay(o.handle))
}

// SetDelayS sets the constant detection delay in seconds.
func (o *Onset) SetDelayS(delay float32) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_delay_s(o.handle, C.smpl_t(delay))
}

// GetDelayS returns the constant detection delay in seconds.
func (o *Onset) GetDelayS() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_delay_s(o.handle))
}

// SetDelayMs sets the constant detection delay in milliseconds.
func (o *Onset) SetDelayMs(delay float32) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_delay_ms(o.handle, C.smpl_t(delay))
}

// GetDelayMs returns the constant detection delay in milliseconds.
func (o *Onset) GetDelayMs() float32 {
	if o.handle == nil {
		return 0
	}
	return float32(C.aubio_onset_get_delay_ms(o.handle))
}

// SetDefaultParameters restores the default parameter set of the given
// detection function.
func (o *Onset) SetDefaultParameters(mode OnsetMode) {
	if o.handle == nil {
		return
	}
	C.aubio_onset_set_default_parameters(o.handle, cname(mode.String()))
}

// Reset clears the internal detection state.
func (o *Onset) Reset() {
	if o.handle == nil {
		return
	}
	C.aubio_onset_reset(o.handle)
}

// Close releases the onset detector resources.
func (o *Onset) Close() error {
	if o.handle != nil {
		C.del_aubio_onset(o.handle)
		o.handle = nil
		runtime.SetFinalizer(o, nil)
	}
	return nil
}
