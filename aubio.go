// Package aubio provides Go bindings for the aubio audio analysis library.
//
// aubio listens to audio signals and attempts to detect events: when a drum
// is hit, at which frequency a note is played, or at what tempo a rhythmic
// melody runs. The library offers onset detection, pitch tracking, tempo and
// beat tracking, note segmentation, MFCC, spectral descriptors, a phase
// vocoder, FFT, filterbanks and resampling.
//
// # Basic Usage
//
//	import aubio "github.com/aspect-build/aubio-go"
//
//	// Create a pitch tracker
//	pitch, err := aubio.NewPitch(aubio.PitchYinFFT, 2048, 512, 44100)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pitch.Close()
//
//	// Feed hop-sized frames
//	hz, err := pitch.Detect(frame)
//
// Every detector follows the same lifecycle: a fallible constructor with
// fixed frame geometry, repeated Process calls on hop-sized frames, and
// Close to release the native state. Buffers are passed to the native layer
// without copying; the caller keeps ownership of the sample memory.
//
// This binding targets the default single-precision build of aubio
// (smpl_t = float); all sample buffers are []float32.
//
// # Thread Safety
//
// Individual detector instances are NOT thread-safe. Use separate instances
// for different goroutines, or implement your own synchronization. Distinct
// instances never share native state.
package aubio

/*
#cgo pkg-config: aubio
#cgo linux LDFLAGS: -lm

#include <stdlib.h>
#include <aubio/aubio.h>
*/
import "C"
import (
	"sync"
	"unsafe"
)

// Algorithm variant names are handed to the native layer as C strings. They
// are interned here, allocated once and never freed, so a registered name
// stays valid for the whole process however long the native layer reads it.
var cnames sync.Map // string -> *C.char

func cname(s string) *C.char {
	if p, ok := cnames.Load(s); ok {
		return p.(*C.char)
	}
	p := C.CString(s)
	if actual, loaded := cnames.LoadOrStore(s, p); loaded {
		C.free(unsafe.Pointer(p))
		return actual.(*C.char)
	}
	return p
}
