package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import (
	"math"
	"runtime"
)

// ResampleMode selects the resampling quality, trading accuracy for speed.
// The numeric values are passed to the native layer as-is.
type ResampleMode int

const (
	ResampleBestQuality   ResampleMode = 0
	ResampleMediumQuality ResampleMode = 1
	ResampleFastest       ResampleMode = 2
	ResampleOrderHold     ResampleMode = 3
	ResampleLinear        ResampleMode = 4
)

// ResampleDefault is the quality mode used when no explicit choice is
// given.
const ResampleDefault = ResampleBestQuality

// String returns the stable name of the mode.
func (m ResampleMode) String() string {
	switch m {
	case ResampleBestQuality:
		return "best_quality"
	case ResampleMediumQuality:
		return "medium_quality"
	case ResampleFastest:
		return "fastest"
	case ResampleOrderHold:
		return "order_hold"
	case ResampleLinear:
		return "linear"
	default:
		return ResampleDefault.String()
	}
}

// ParseResampleMode maps a mode name back to its ResampleMode.
func ParseResampleMode(s string) (ResampleMode, error) {
	switch s {
	case "best_quality":
		return ResampleBestQuality, nil
	case "medium_quality":
		return ResampleMediumQuality, nil
	case "fastest":
		return ResampleFastest, nil
	case "order_hold":
		return ResampleOrderHold, nil
	case "linear":
		return ResampleLinear, nil
	default:
		return 0, ErrInvalidArg
	}
}

// Resampler converts a signal between sampling rates.
type Resampler struct {
	handle *C.aubio_resampler_t
	ratio  float32
}

// NewResampler creates a resampler object.
//
// Parameters:
//   - ratio: Output sample rate divided by input sample rate
//   - mode: Resampling quality
func NewResampler(ratio float32, mode ResampleMode) (*Resampler, error) {
	handle := C.new_aubio_resampler(C.smpl_t(ratio), C.uint_t(mode))
	if handle == nil {
		return nil, ErrFailedInit
	}
	r := &Resampler{handle: handle, ratio: ratio}
	runtime.SetFinalizer(r, (*Resampler).Close)
	return r, nil
}

// GetRatio returns the conversion ratio.
func (r *Resampler) GetRatio() float32 { return r.ratio }

// Process resamples input into output.
//
// Parameters:
//   - input: Input buffer of N samples
//   - output: Output buffer of at least floor(N*ratio) samples
func (r *Resampler) Process(input, output []float32) error {
	if r.handle == nil {
		return ErrFailedInit
	}
	want := int(math.Floor(float64(len(input)) * float64(r.ratio)))
	if err := checkSize(output, want); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_resampler_do(r.handle, fvecPtr(&pin, input), fvecPtr(&pin, output))
	return nil
}

// Close releases the resampler resources.
func (r *Resampler) Close() error {
	if r.handle != nil {
		C.del_aubio_resampler(r.handle)
		r.handle = nil
		runtime.SetFinalizer(r, nil)
	}
	return nil
}
