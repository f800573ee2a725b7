package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import (
	"runtime"
	"unsafe"
)

// Buffer descriptors.
//
// aubio consumes sample memory through small descriptor structs (fvec_t,
// cvec_t, fmat_t) carrying a length and raw data pointers. The binding
// builds those descriptors on the fly around caller-owned slices, pinning
// the backing arrays for the duration of a single native call, so no sample
// is ever copied in or out. Descriptors are never retained past the call
// that consumed them.

// fvecPtr builds a native real-vector descriptor over data. The backing
// array stays pinned until pin.Unpin.
func fvecPtr(pin *runtime.Pinner, data []float32) *C.fvec_t {
	fv := new(C.fvec_t)
	fv.length = C.uint_t(len(data))
	if len(data) > 0 {
		pin.Pin(&data[0])
		fv.data = (*C.smpl_t)(unsafe.Pointer(&data[0]))
	}
	return fv
}

// checkSize validates a real vector against the minimum sample count
// required by the upcoming native call.
func checkSize(data []float32, minSize int) error {
	if sizeCheckEnabled && len(data) < minSize {
		return ErrMismatchSize
	}
	return nil
}

// CVec describes a borrowed one-sided complex spectrum as two equal-length
// real sequences: magnitudes (norm) and phases (phas). A spectrum obtained
// from a window of winSize time-domain samples has winSize/2+1 bins.
//
// A CVec borrows the caller's memory; it allocates nothing and must not
// outlive the slices it was built from.
type CVec struct {
	norm []float32
	phas []float32
}

// CVecFromParts builds a spectrum view from separate norm and phas slices.
// Under strict checking the halves must have identical length.
func CVecFromParts(norm, phas []float32) (CVec, error) {
	if sizeCheckEnabled && len(norm) != len(phas) {
		return CVec{}, ErrMismatchSize
	}
	return CVec{norm: norm, phas: phas}, nil
}

// CVecFromSlice builds a spectrum view over a single buffer split at its
// midpoint: the first half holds norms, the second phases. A buffer of
// winSize+2 floats describes the spectrum of a winSize-sample window.
func CVecFromSlice(buf []float32) CVec {
	half := len(buf) / 2
	return CVec{norm: buf[:half], phas: buf[half : 2*half]}
}

// NewCVec allocates backing storage for the spectrum of a winSize-sample
// window and returns a view over it. Convenience for output spectra.
func NewCVec(winSize int) CVec {
	bins := winSize/2 + 1
	return CVec{norm: make([]float32, bins), phas: make([]float32, bins)}
}

// cvecNorm is a partial spectrum exposing only the magnitude half. Used by
// native calls that read or write norms alone.
func cvecNorm(norm []float32) CVec {
	return CVec{norm: norm}
}

// cvecPhas is a partial spectrum exposing only the phase half.
func cvecPhas(phas []float32) CVec {
	return CVec{phas: phas}
}

// Size returns the number of frequency bins.
func (v CVec) Size() int {
	if v.norm != nil {
		return len(v.norm)
	}
	return len(v.phas)
}

// Norm returns the magnitude half of the spectrum.
func (v CVec) Norm() []float32 { return v.norm }

// Phas returns the phase half of the spectrum.
func (v CVec) Phas() []float32 { return v.phas }

// checkSize validates the spectrum against a minimum expressed in
// time-domain samples: a view of n bins covers a window of (n-1)*2 samples,
// following the one-sided FFT convention used throughout aubio.
func (v CVec) checkSize(minSize int) error {
	if sizeCheckEnabled && (v.Size()-1)*2 < minSize {
		return ErrMismatchSize
	}
	return nil
}

// cptr builds the native descriptor. Absent halves stay NULL, which the
// native layer accepts for calls that touch only one component.
func (v CVec) cptr(pin *runtime.Pinner) *C.cvec_t {
	cv := new(C.cvec_t)
	cv.length = C.uint_t(v.Size())
	if len(v.norm) > 0 {
		pin.Pin(&v.norm[0])
		cv.norm = (*C.smpl_t)(unsafe.Pointer(&v.norm[0]))
	}
	if len(v.phas) > 0 {
		pin.Pin(&v.phas[0])
		cv.phas = (*C.smpl_t)(unsafe.Pointer(&v.phas[0]))
	}
	return cv
}

// FMat describes a borrowed matrix of height channels, each holding length
// samples. aubio addresses it through an array of per-channel pointers.
// Used for filterbank coefficients.
type FMat struct {
	channels [][]float32
	length   int
}

// FMatFromSlices builds a matrix view over the given channels. Under strict
// checking all channels must have the same length.
func FMatFromSlices(channels [][]float32) (FMat, error) {
	length := 0
	if len(channels) > 0 {
		length = len(channels[0])
	}
	if sizeCheckEnabled {
		for _, ch := range channels {
			if len(ch) != length {
				return FMat{}, ErrMismatchSize
			}
		}
	}
	return FMat{channels: channels, length: length}, nil
}

// Height returns the number of channels.
func (m FMat) Height() int { return len(m.channels) }

// Length returns the number of samples per channel.
func (m FMat) Length() int { return m.length }

// Channel returns the samples of one channel.
func (m FMat) Channel(i int) ([]float32, error) {
	if i < 0 || i >= len(m.channels) {
		return nil, ErrInvalidArg
	}
	return m.channels[i], nil
}

// Get returns the sample at the given channel and position.
func (m FMat) Get(channel, position int) (float32, error) {
	if channel < 0 || channel >= len(m.channels) {
		return 0, ErrInvalidArg
	}
	if position < 0 || position >= m.length {
		return 0, ErrInvalidArg
	}
	return m.channels[channel][position], nil
}

// cptr builds the native descriptor: a pinned array of pinned per-channel
// pointers.
func (m FMat) cptr(pin *runtime.Pinner) *C.fmat_t {
	fm := new(C.fmat_t)
	fm.height = C.uint_t(len(m.channels))
	fm.length = C.uint_t(m.length)
	if len(m.channels) == 0 {
		return fm
	}
	rows := make([]*C.smpl_t, len(m.channels))
	for i, ch := range m.channels {
		if len(ch) > 0 {
			pin.Pin(&ch[0])
			rows[i] = (*C.smpl_t)(unsafe.Pointer(&ch[0]))
		}
	}
	pin.Pin(&rows[0])
	fm.data = (**C.smpl_t)(unsafe.Pointer(&rows[0]))
	return fm
}
