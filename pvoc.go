package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "runtime"

// PVoc is a phase vocoder: it slides an analysis window over hop-sized
// input frames, producing one norm/phas spectral frame per hop, and can
// resynthesize the time-domain signal by overlap-add.
type PVoc struct {
	handle *C.aubio_pvoc_t
}

// NewPVoc creates a new phase vocoder.
//
// Parameters:
//   - winSize: Size of the analysis buffer (and length of the FFT)
//   - hopSize: Step size between two consecutive analysis frames
func NewPVoc(winSize, hopSize int) (*PVoc, error) {
	handle := C.new_aubio_pvoc(C.uint_t(winSize), C.uint_t(hopSize))
	if handle == nil {
		return nil, ErrFailedInit
	}
	p := &PVoc{handle: handle}
	runtime.SetFinalizer(p, (*PVoc).Close)
	return p, nil
}

// WithWindow selects the analysis window type, for chaining after
// construction.
func (p *PVoc) WithWindow(w WindowType) (*PVoc, error) {
	if err := p.SetWindow(w); err != nil {
		return nil, err
	}
	return p, nil
}

// GetWin returns the window size.
func (p *PVoc) GetWin() int {
	if p.handle == nil {
		return 0
	}
	return int(C.aubio_pvoc_get_win(p.handle))
}

// GetHop returns the hop size.
func (p *PVoc) GetHop() int {
	if p.handle == nil {
		return 0
	}
	return int(C.aubio_pvoc_get_hop(p.handle))
}

// Process computes the spectral frame for one hop of input. The analysis
// buffer is rotated and filled with the new data, windowed, and
// transformed into fftgrain.
//
// Parameters:
//   - input: New input frame, hopSize samples
//   - fftgrain: Output spectral frame for a winSize window
func (p *PVoc) Process(input []float32, fftgrain CVec) error {
	if p.handle == nil {
		return ErrFailedInit
	}
	if err := checkSize(input, p.GetHop()); err != nil {
		return err
	}
	if err := fftgrain.checkSize(p.GetWin()); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_pvoc_do(p.handle, fvecPtr(&pin, input), fftgrain.cptr(&pin))
	return nil
}

// Resynthesize computes one hop of time-domain signal from a spectral
// frame, using overlap-add with the previously synthesized frames.
//
// Parameters:
//   - fftgrain: Input spectral frame for a winSize window
//   - output: Output signal frame, hopSize samples
func (p *PVoc) Resynthesize(fftgrain CVec, output []float32) error {
	if p.handle == nil {
		return ErrFailedInit
	}
	if err := fftgrain.checkSize(p.GetWin()); err != nil {
		return err
	}
	if err := checkSize(output, p.GetHop()); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_pvoc_rdo(p.handle, fftgrain.cptr(&pin), fvecPtr(&pin, output))
	return nil
}

// SetWindow sets the analysis window type. The native layer rejects
// unknown windows with ErrInvalidArg.
func (p *PVoc) SetWindow(w WindowType) error {
	if p.handle == nil {
		return ErrFailedInit
	}
	if C.aubio_pvoc_set_window(p.handle, cname(w.String())) != 0 {
		return ErrInvalidArg
	}
	return nil
}

// Close releases the phase vocoder resources.
func (p *PVoc) Close() error {
	if p.handle != nil {
		C.del_aubio_pvoc(p.handle)
		p.handle = nil
		runtime.SetFinalizer(p, nil)
	}
	return nil
}
