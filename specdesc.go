package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "runtime"

// SpecMethod is a spectral description function: either an onset detection
// function (OnsetMode) or a spectral shape descriptor (SpecShape).
type SpecMethod interface {
	specMethodName() string
}

// SpecShape is a spectral shape descriptor.
//
// The descriptors are described in: Geoffroy Peeters, A large set of audio
// features for sound description (similarity and classification) in the
// CUIDADO project, CUIDADO I.S.T. Project Report 2004.
type SpecShape int

const (
	// ShapeCentroid is the barycenter of the spectrum, in bins.
	ShapeCentroid SpecShape = iota
	// ShapeSpread is the variance of the spectral distribution around its
	// centroid.
	ShapeSpread
	// ShapeSkewness is computed from the third order moment of the
	// spectrum.
	ShapeSkewness
	// ShapeKurtosis measures the flatness of the spectrum, from the fourth
	// order moment.
	ShapeKurtosis
	// ShapeSlope is the decreasing rate of the spectral amplitude, from a
	// linear regression.
	ShapeSlope
	// ShapeDecrease is a perceptually motivated decreasing rate.
	ShapeDecrease
	// ShapeRolloff is the bin below which 95% of the spectrum energy is
	// found.
	ShapeRolloff
)

// String returns the name understood by the native layer.
func (s SpecShape) String() string {
	switch s {
	case ShapeCentroid:
		return "centroid"
	case ShapeSpread:
		return "spread"
	case ShapeSkewness:
		return "skewness"
	case ShapeKurtosis:
		return "kurtosis"
	case ShapeSlope:
		return "slope"
	case ShapeDecrease:
		return "decrease"
	case ShapeRolloff:
		return "rolloff"
	default:
		return ShapeCentroid.String()
	}
}

// ParseSpecShape maps a descriptor name back to its SpecShape.
func ParseSpecShape(s string) (SpecShape, error) {
	switch s {
	case "centroid":
		return ShapeCentroid, nil
	case "spread":
		return ShapeSpread, nil
	case "skewness":
		return ShapeSkewness, nil
	case "kurtosis":
		return ShapeKurtosis, nil
	case "slope":
		return ShapeSlope, nil
	case "decrease":
		return ShapeDecrease, nil
	case "rolloff":
		return ShapeRolloff, nil
	default:
		return 0, ErrInvalidArg
	}
}

func (s SpecShape) specMethodName() string { return s.String() }

// SpecDesc computes a scalar description of a spectral frame.
type SpecDesc struct {
	handle  *C.aubio_specdesc_t
	bufSize int
}

// NewSpecDesc creates a spectral description object.
//
// Parameters:
//   - method: Description function, an OnsetMode or a SpecShape
//   - bufSize: Length of the analysis window the input spectra come from
func NewSpecDesc(method SpecMethod, bufSize int) (*SpecDesc, error) {
	handle := C.new_aubio_specdesc(cname(method.specMethodName()), C.uint_t(bufSize))
	if handle == nil {
		return nil, ErrFailedInit
	}
	s := &SpecDesc{handle: handle, bufSize: bufSize}
	runtime.SetFinalizer(s, (*SpecDesc).Close)
	return s, nil
}

// Process computes the description of one spectral frame.
//
// Parameters:
//   - fftgrain: Input spectrum for a bufSize window
//   - desc: Output vector of at least 1 element
func (s *SpecDesc) Process(fftgrain CVec, desc []float32) error {
	if s.handle == nil {
		return ErrFailedInit
	}
	if err := fftgrain.checkSize(s.bufSize); err != nil {
		return err
	}
	if err := checkSize(desc, 1); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_specdesc_do(s.handle, fftgrain.cptr(&pin), fvecPtr(&pin, desc))
	return nil
}

// Describe computes the description of one spectral frame and returns the
// scalar result.
func (s *SpecDesc) Describe(fftgrain CVec) (float32, error) {
	var desc [1]float32
	if err := s.Process(fftgrain, desc[:]); err != nil {
		return 0, err
	}
	return desc[0], nil
}

// Close releases the descriptor resources.
func (s *SpecDesc) Close() error {
	if s.handle != nil {
		C.del_aubio_specdesc(s.handle)
		s.handle = nil
		runtime.SetFinalizer(s, nil)
	}
	return nil
}
