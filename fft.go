package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "runtime"

// FFT computes forward and inverse Fast Fourier Transforms.
//
// Depending on how aubio was compiled, transforms are backed by Ooura,
// FFTW3 or vDSP.
type FFT struct {
	handle  *C.aubio_fft_t
	winSize int
}

// NewFFT creates a new FFT object.
//
// Parameters:
//   - winSize: Length of the analysis window, in samples
func NewFFT(winSize int) (*FFT, error) {
	handle := C.new_aubio_fft(C.uint_t(winSize))
	if handle == nil {
		return nil, ErrFailedInit
	}
	f := &FFT{handle: handle, winSize: winSize}
	runtime.SetFinalizer(f, (*FFT).Close)
	return f, nil
}

// Win returns the window size.
func (f *FFT) Win() int { return f.winSize }

// Bins returns the number of frequency bins of the one-sided spectrum,
// winSize/2+1.
func (f *FFT) Bins() int { return f.winSize/2 + 1 }

// Forward computes the forward transform of a winSize-sample input into a
// norm/phas spectrum.
func (f *FFT) Forward(input []float32, spectrum CVec) error {
	if f.handle == nil {
		return ErrFailedInit
	}
	if err := checkSize(input, f.winSize); err != nil {
		return err
	}
	if err := spectrum.checkSize(f.winSize); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_do(f.handle, fvecPtr(&pin, input), spectrum.cptr(&pin))
	return nil
}

// Inverse computes the inverse transform of a norm/phas spectrum back into
// winSize time-domain samples.
func (f *FFT) Inverse(spectrum CVec, output []float32) error {
	if f.handle == nil {
		return ErrFailedInit
	}
	if err := spectrum.checkSize(f.winSize); err != nil {
		return err
	}
	if err := checkSize(output, f.winSize); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_rdo(f.handle, spectrum.cptr(&pin), fvecPtr(&pin, output))
	return nil
}

// ForwardComplex computes the forward transform into an interleaved
// real/imag buffer of winSize samples.
func (f *FFT) ForwardComplex(input, compspec []float32) error {
	if f.handle == nil {
		return ErrFailedInit
	}
	if err := checkSize(input, f.winSize); err != nil {
		return err
	}
	if err := checkSize(compspec, f.winSize); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_do_complex(f.handle, fvecPtr(&pin, input), fvecPtr(&pin, compspec))
	return nil
}

// InverseComplex computes the inverse transform of an interleaved real/imag
// buffer.
func (f *FFT) InverseComplex(compspec, output []float32) error {
	if f.handle == nil {
		return ErrFailedInit
	}
	if err := checkSize(compspec, f.winSize); err != nil {
		return err
	}
	if err := checkSize(output, f.winSize); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_rdo_complex(f.handle, fvecPtr(&pin, compspec), fvecPtr(&pin, output))
	return nil
}

// Close releases the FFT resources. The object must not be used afterwards.
func (f *FFT) Close() error {
	if f.handle != nil {
		C.del_aubio_fft(f.handle)
		f.handle = nil
		runtime.SetFinalizer(f, nil)
	}
	return nil
}

// FFTGetSpectrum converts an interleaved real/imag buffer to a norm/phas
// spectrum.
func FFTGetSpectrum(compspec []float32, spectrum CVec) error {
	if err := spectrum.checkSize(len(compspec)); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_get_spectrum(fvecPtr(&pin, compspec), spectrum.cptr(&pin))
	return nil
}

// FFTGetRealImag converts a norm/phas spectrum to an interleaved real/imag
// buffer.
func FFTGetRealImag(spectrum CVec, compspec []float32) error {
	if err := checkSize(compspec, (spectrum.Size()-1)*2); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_get_realimag(spectrum.cptr(&pin), fvecPtr(&pin, compspec))
	return nil
}

// FFTGetNorm computes the magnitude component of an interleaved real/imag
// buffer.
func FFTGetNorm(compspec, norm []float32) error {
	v := cvecNorm(norm)
	if err := v.checkSize(len(compspec)); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_get_norm(fvecPtr(&pin, compspec), v.cptr(&pin))
	return nil
}

// FFTGetPhas computes the phase component of an interleaved real/imag
// buffer.
func FFTGetPhas(compspec, phas []float32) error {
	v := cvecPhas(phas)
	if err := v.checkSize(len(compspec)); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_get_phas(fvecPtr(&pin, compspec), v.cptr(&pin))
	return nil
}

// FFTGetReal computes the real part of a norm/phas spectrum.
func FFTGetReal(spectrum CVec, compspec []float32) error {
	if err := checkSize(compspec, (spectrum.Size()-1)*2); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_get_real(spectrum.cptr(&pin), fvecPtr(&pin, compspec))
	return nil
}

// FFTGetImag computes the imaginary part of a norm/phas spectrum.
func FFTGetImag(spectrum CVec, compspec []float32) error {
	if err := checkSize(compspec, (spectrum.Size()-1)*2); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_fft_get_imag(spectrum.cptr(&pin), fvecPtr(&pin, compspec))
	return nil
}
