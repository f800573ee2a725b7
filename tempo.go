package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "runtime"

// Tempo tracks beats and estimates the tempo of a stream of hop-sized
// frames.
type Tempo struct {
	handle  *C.aubio_tempo_t
	hopSize int
}

// NewTempo creates a tempo tracking object.
//
// Parameters:
//   - mode: Onset detection function driving the beat tracker
//   - bufSize: Length of the FFT
//   - hopSize: Number of frames between two consecutive runs
//   - sampleRate: Sampling rate of the signal to analyze in Hz
func NewTempo(mode OnsetMode, bufSize, hopSize, sampleRate int) (*Tempo, error) {
	handle := C.new_aubio_tempo(cname(mode.String()),
		C.uint_t(bufSize), C.uint_t(hopSize), C.uint_t(sampleRate))
	if handle == nil {
		return nil, ErrFailedInit
	}
	t := &Tempo{handle: handle, hopSize: hopSize}
	runtime.SetFinalizer(t, (*Tempo).Close)
	return t, nil
}

// WithSilence sets the silence threshold, for chaining.
func (t *Tempo) WithSilence(silence float32) *Tempo {
	t.SetSilence(silence)
	return t
}

// WithThreshold sets the peak-picking threshold, for chaining.
func (t *Tempo) WithThreshold(threshold float32) *Tempo {
	t.SetThreshold(threshold)
	return t
}

// WithDelay sets the detection delay in samples, for chaining.
func (t *Tempo) WithDelay(delay int) *Tempo {
	t.SetDelay(delay)
	return t
}

// GetHop returns the hop size.
func (t *Tempo) GetHop() int { return t.hopSize }

// Process runs beat tracking on one hop of input. out[0] is non-zero when
// a beat falls in the current frame.
//
// Parameters:
//   - input: Input frame, hopSize samples
//   - out: Output vector of at least 1 element
func (t *Tempo) Process(input, out []float32) error {
	if t.handle == nil {
		return ErrFailedInit
	}
	if err := checkSize(input, t.hopSize); err != nil {
		return err
	}
	if err := checkSize(out, 1); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_tempo_do(t.handle, fvecPtr(&pin, input), fvecPtr(&pin, out))
	return nil
}

// Detect runs beat tracking on one hop of input and returns the raw beat
// output.
func (t *Tempo) Detect(input []float32) (float32, error) {
	var out [1]float32
	if err := t.Process(input, out[:]); err != nil {
		return 0, err
	}
	return out[0], nil
}

// GetLast returns the time of the latest detected beat, in samples.
func (t *Tempo) GetLast() int {
	if t.handle == nil {
		return 0
	}
	return int(C.aubio_tempo_get_last(t.handle))
}

// GetLastS returns the time of the latest detected beat, in seconds.
func (t *Tempo) GetLastS() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_last_s(t.handle))
}

// GetLastMs returns the time of the latest detected beat, in milliseconds.
func (t *Tempo) GetLastMs() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_last_ms(t.handle))
}

// SetSilence sets the silence threshold in dB.
func (t *Tempo) SetSilence(silence float32) {
	if t.handle == nil {
		return
	}
	C.aubio_tempo_set_silence(t.handle, C.smpl_t(silence))
}

// GetSilence returns the silence threshold in dB.
func (t *Tempo) GetSilence() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_silence(t.handle))
}

// SetThreshold sets the peak-picking threshold.
func (t *Tempo) SetThreshold(threshold float32) {
	if t.handle == nil {
		return
	}
	C.aubio_tempo_set_threshold(t.handle, C.smpl_t(threshold))
}

// GetThreshold returns the peak-picking threshold.
func (t *Tempo) GetThreshold() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_threshold(t.handle))
}

// GetPeriod returns the current beat period in samples.
func (t *Tempo) GetPeriod() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_period(t.handle))
}

// GetPeriodS returns the current beat period in seconds.
func (t *Tempo) GetPeriodS() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_period_s(t.handle))
}

// GetBpm returns the current estimated tempo in beats per minute, or 0 if
// no consistent value was found yet.
func (t *Tempo) GetBpm() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_bpm(t.handle))
}

// GetConfidence returns the confidence of the current tempo estimate.
func (t *Tempo) GetConfidence() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_confidence(t.handle))
}

// SetTatumSignature sets the number of tatums per beat, between 1 and 64.
func (t *Tempo) SetTatumSignature(signature int) {
	if t.handle == nil {
		return
	}
	C.aubio_tempo_set_tatum_signature(t.handle, C.uint_t(signature))
}

// WasTatum reports whether a tatum fell in the latest frame: 0 for none,
// 1 for a tatum, 2 for a tatum that is also a beat.
func (t *Tempo) WasTatum() int {
	if t.handle == nil {
		return 0
	}
	return int(C.aubio_tempo_was_tatum(t.handle))
}

// GetLastTatum returns the time of the latest tatum, in samples.
func (t *Tempo) GetLastTatum() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_last_tatum(t.handle))
}

// SetDelay sets the constant detection delay in samples.
func (t *Tempo) SetDelay(delay int) {
	if t.handle == nil {
		return
	}
	C.aubio_tempo_set_delay(t.handle, C.sint_t(delay))
}

// GetDelay returns the constant detection delay in samples.
func (t *Tempo) GetDelay() int {
	if t.handle == nil {
		return 0
	}
	return int(C.aubio_tempo_get_delay(t.handle))
}

// SetDelayS sets the constant detection delay in seconds.
func (t *Tempo) SetDelayS(delay float32) {
	if t.handle == nil {
		return
	}
	C.aubio_tempo_set_delay_s(t.handle, C.smpl_t(delay))
}

// GetDelayS returns the constant detection delay in seconds.
func (t *Tempo) GetDelayS() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_delay_s(t.handle))
}

// SetDelayMs sets the constant detection delay in milliseconds.
func (t *Tempo) SetDelayMs(delay float32) {
	if t.handle == nil {
		return
	}
	C.aubio_tempo_set_delay_ms(t.handle, C.smpl_t(delay))
}

// GetDelayMs returns the constant detection delay in milliseconds.
func (t *Tempo) GetDelayMs() float32 {
	if t.handle == nil {
		return 0
	}
	return float32(C.aubio_tempo_get_delay_ms(t.handle))
}

// Close releases the tempo tracker resources.
func (t *Tempo) Close() error {
	if t.handle != nil {
		C.del_aubio_tempo(t.handle)
		t.handle = nil
		runtime.SetFinalizer(t, nil)
	}
	return nil
}
