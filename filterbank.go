package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// FilterBank applies a set of frequency-weighting filters to a spectral
// frame, producing one output value per filter: the dot product of the
// frame's magnitudes with each coefficient row.
type FilterBank struct {
	handle   *C.aubio_filterbank_t
	nFilters int
	winSize  int
}

// NewFilterBank creates a filterbank object with an all-zero coefficient
// matrix of nFilters rows and winSize/2+1 columns.
//
// Parameters:
//   - nFilters: Number of filters
//   - winSize: Size of the analysis buffer the input spectra come from
func NewFilterBank(nFilters, winSize int) (*FilterBank, error) {
	handle := C.new_aubio_filterbank(C.uint_t(nFilters), C.uint_t(winSize))
	if handle == nil {
		return nil, ErrFailedInit
	}
	f := &FilterBank{handle: handle, nFilters: nFilters, winSize: winSize}
	runtime.SetFinalizer(f, (*FilterBank).Close)
	return f, nil
}

// SetCoeffs copies the coefficient matrix into the filterbank. The matrix
// must be nFilters rows of winSize/2+1 values each.
func (f *FilterBank) SetCoeffs(filters FMat) error {
	if f.handle == nil {
		return ErrFailedInit
	}
	if sizeCheckEnabled &&
		(filters.Height() != f.nFilters || filters.Length() != f.winSize/2+1) {
		return ErrMismatchSize
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_filterbank_set_coeffs(f.handle, filters.cptr(&pin))
	return nil
}

// GetCoeffs returns a copy of the current coefficient matrix, one row per
// filter.
func (f *FilterBank) GetCoeffs() [][]float32 {
	if f.handle == nil {
		return nil
	}
	fm := C.aubio_filterbank_get_coeffs(f.handle)
	if fm == nil {
		return nil
	}
	rows := unsafe.Slice(fm.data, int(fm.height))
	coeffs := make([][]float32, int(fm.height))
	for i, row := range rows {
		values := unsafe.Slice(row, int(fm.length))
		coeffs[i] = make([]float32, int(fm.length))
		for j, v := range values {
			coeffs[i][j] = float32(v)
		}
	}
	return coeffs
}

// Process filters one spectral frame.
//
// Parameters:
//   - input: Input spectrum of exactly winSize/2+1 bins
//   - output: Output buffer, at least nFilters elements
func (f *FilterBank) Process(input CVec, output []float32) error {
	if f.handle == nil {
		return ErrFailedInit
	}
	if sizeCheckEnabled && input.Size() != f.winSize/2+1 {
		return ErrMismatchSize
	}
	if err := checkSize(output, f.nFilters); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_filterbank_do(f.handle, input.cptr(&pin), fvecPtr(&pin, output))
	return nil
}

// SetNorm enables (1) or disables (0) normalization of filter weights by
// their triangle area.
func (f *FilterBank) SetNorm(norm float32) {
	if f.handle == nil {
		return
	}
	C.aubio_filterbank_set_norm(f.handle, C.smpl_t(norm))
}

// GetNorm returns the normalization parameter.
func (f *FilterBank) GetNorm() float32 {
	if f.handle == nil {
		return 0
	}
	return float32(C.aubio_filterbank_get_norm(f.handle))
}

// SetPower sets the power applied to the input spectrum before filtering.
func (f *FilterBank) SetPower(power float32) {
	if f.handle == nil {
		return
	}
	C.aubio_filterbank_set_power(f.handle, C.smpl_t(power))
}

// GetPower returns the power parameter.
func (f *FilterBank) GetPower() float32 {
	if f.handle == nil {
		return 0
	}
	return float32(C.aubio_filterbank_get_power(f.handle))
}

// SetTriangleBands builds overlapping triangular filters from a list of
// nFilters+2 band edge frequencies, in Hz.
func (f *FilterBank) SetTriangleBands(freqs []float32, sampleRate float32) error {
	if f.handle == nil {
		return ErrFailedInit
	}
	if err := checkSize(freqs, f.nFilters+2); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_filterbank_set_triangle_bands(f.handle, fvecPtr(&pin, freqs),
		C.smpl_t(sampleRate))
	return nil
}

// SetMelCoeffsSlaney fills the filterbank with the 40 mel filters of
// Malcolm Slaney's Auditory Toolbox.
func (f *FilterBank) SetMelCoeffsSlaney(sampleRate float32) {
	if f.handle == nil {
		return
	}
	C.aubio_filterbank_set_mel_coeffs_slaney(f.handle, C.smpl_t(sampleRate))
}

// Close releases the filterbank resources.
func (f *FilterBank) Close() error {
	if f.handle != nil {
		C.del_aubio_filterbank(f.handle)
		f.handle = nil
		runtime.SetFinalizer(f, nil)
	}
	return nil
}
