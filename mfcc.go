package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "runtime"

// MFCC computes Mel-Frequency Cepstrum Coefficients from spectral frames.
//
// The implementation follows the specification established by Malcolm
// Slaney in the Auditory Toolbox (see file mfcc.m).
type MFCC struct {
	handle  *C.aubio_mfcc_t
	bufSize int
	nCoeffs int
}

// NewMFCC creates an MFCC computation object.
//
// Parameters:
//   - bufSize: Size of the analysis buffer (and length of the FFT)
//   - nFilters: Number of mel filters
//   - nCoeffs: Number of output coefficients
//   - sampleRate: Audio sampling rate in Hz
func NewMFCC(bufSize, nFilters, nCoeffs, sampleRate int) (*MFCC, error) {
	handle := C.new_aubio_mfcc(C.uint_t(bufSize), C.uint_t(nFilters),
		C.uint_t(nCoeffs), C.uint_t(sampleRate))
	if handle == nil {
		return nil, ErrFailedInit
	}
	m := &MFCC{handle: handle, bufSize: bufSize, nCoeffs: nCoeffs}
	runtime.SetFinalizer(m, (*MFCC).Close)
	return m, nil
}

// WithPower sets the power parameter, for chaining.
func (m *MFCC) WithPower(power float32) *MFCC {
	m.SetPower(power)
	return m
}

// WithScale sets the scaling parameter, for chaining.
func (m *MFCC) WithScale(scale float32) *MFCC {
	m.SetScale(scale)
	return m
}

// WithMelCoeffs initializes the mel filterbank over fmin..fmax Hz, for
// chaining.
func (m *MFCC) WithMelCoeffs(fmin, fmax float32) *MFCC {
	m.SetMelCoeffs(fmin, fmax)
	return m
}

// WithMelCoeffsHTK initializes the mel filterbank on the HTK scale, for
// chaining.
func (m *MFCC) WithMelCoeffsHTK(fmin, fmax float32) *MFCC {
	m.SetMelCoeffsHTK(fmin, fmax)
	return m
}

// WithMelCoeffsSlaney initializes the mel filterbank with the Auditory
// Toolbox parameters, for chaining.
func (m *MFCC) WithMelCoeffsSlaney() *MFCC {
	m.SetMelCoeffsSlaney()
	return m
}

// Process computes the coefficients of one spectral frame.
//
// Parameters:
//   - input: Input spectrum for a bufSize window
//   - coeffs: Output coefficient buffer, at least nCoeffs elements
func (m *MFCC) Process(input CVec, coeffs []float32) error {
	if m.handle == nil {
		return ErrFailedInit
	}
	if err := input.checkSize(m.bufSize); err != nil {
		return err
	}
	if err := checkSize(coeffs, m.nCoeffs); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_mfcc_do(m.handle, input.cptr(&pin), fvecPtr(&pin, coeffs))
	return nil
}

// SetPower sets the power applied to the spectrum before filtering.
func (m *MFCC) SetPower(power float32) {
	if m.handle == nil {
		return
	}
	C.aubio_mfcc_set_power(m.handle, C.smpl_t(power))
}

// GetPower returns the power parameter.
func (m *MFCC) GetPower() float32 {
	if m.handle == nil {
		return 0
	}
	return float32(C.aubio_mfcc_get_power(m.handle))
}

// SetScale sets the scaling applied to the spectrum before filtering.
func (m *MFCC) SetScale(scale float32) {
	if m.handle == nil {
		return
	}
	C.aubio_mfcc_set_scale(m.handle, C.smpl_t(scale))
}

// GetScale returns the scaling parameter.
func (m *MFCC) GetScale() float32 {
	if m.handle == nil {
		return 0
	}
	return float32(C.aubio_mfcc_get_scale(m.handle))
}

// SetMelCoeffs initializes the filterbank with bands linearly spaced on the
// mel scale from fmin to fmax, in Hz.
func (m *MFCC) SetMelCoeffs(fmin, fmax float32) {
	if m.handle == nil {
		return
	}
	C.aubio_mfcc_set_mel_coeffs(m.handle, C.smpl_t(fmin), C.smpl_t(fmax))
}

// SetMelCoeffsHTK initializes the filterbank with bands linearly spaced on
// the HTK mel scale from fmin to fmax, in Hz.
func (m *MFCC) SetMelCoeffsHTK(fmin, fmax float32) {
	if m.handle == nil {
		return
	}
	C.aubio_mfcc_set_mel_coeffs_htk(m.handle, C.smpl_t(fmin), C.smpl_t(fmax))
}

// SetMelCoeffsSlaney initializes the filterbank to match Malcolm Slaney's
// Auditory Toolbox implementation. The object should have been created
// with nFilters = 40; this is the default filterbank in that case.
func (m *MFCC) SetMelCoeffsSlaney() {
	if m.handle == nil {
		return
	}
	C.aubio_mfcc_set_mel_coeffs_slaney(m.handle)
}

// Close releases the MFCC resources.
func (m *MFCC) Close() error {
	if m.handle != nil {
		C.del_aubio_mfcc(m.handle)
		m.handle = nil
		runtime.SetFinalizer(m, nil)
	}
	return nil
}
