package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "runtime"

// Note is one recognized note event. A note-on carries the detected midi
// pitch and velocity; a note-off carries the pitch being released and a
// velocity of 0.
type Note struct {
	Pitch    float32
	Velocity float32
}

// parseNotes derives note events from the fixed 3-element detector output:
// index 0 holds the midi note turning on (0 if none), index 1 its velocity,
// index 2 the midi note turning off (0 if none). The note-off, when
// present, precedes the note-on.
func parseNotes(values *[3]float32) []Note {
	var notes []Note
	if values[2] != 0 {
		notes = append(notes, Note{Pitch: values[2]})
	}
	if values[0] != 0 {
		notes = append(notes, Note{Pitch: values[0], Velocity: values[1]})
	}
	return notes
}

// Notes segments a stream of hop-sized frames into note-on and note-off
// events, combining onset detection and pitch tracking.
type Notes struct {
	handle  *C.aubio_notes_t
	hopSize int
}

// NewNotes creates a note detection object.
//
// Parameters:
//   - bufSize: Buffer size for the internal phase vocoder
//   - hopSize: Hop size between two consecutive frames
//   - sampleRate: Sampling rate of the input signal in Hz
func NewNotes(bufSize, hopSize, sampleRate int) (*Notes, error) {
	handle := C.new_aubio_notes(cname("default"),
		C.uint_t(bufSize), C.uint_t(hopSize), C.uint_t(sampleRate))
	if handle == nil {
		return nil, ErrFailedInit
	}
	n := &Notes{handle: handle, hopSize: hopSize}
	runtime.SetFinalizer(n, (*Notes).Close)
	return n, nil
}

// WithSilence sets the silence threshold, for chaining.
func (n *Notes) WithSilence(silence float32) *Notes {
	n.SetSilence(silence)
	return n
}

// WithMinioiMs sets the minimum inter-onset interval in milliseconds, for
// chaining.
func (n *Notes) WithMinioiMs(minioi float32) *Notes {
	n.SetMinioiMs(minioi)
	return n
}

// WithReleaseDrop sets the release drop level in dB, for chaining.
func (n *Notes) WithReleaseDrop(releaseDrop float32) *Notes {
	n.SetReleaseDrop(releaseDrop)
	return n
}

// GetHop returns the hop size.
func (n *Notes) GetHop() int { return n.hopSize }

// Process runs note detection on one hop of input.
//
// The output is 3 elements wide: the midi note turning on (0 if none), its
// velocity, and the midi note turning off (0 if none).
//
// Parameters:
//   - input: Input frame, hopSize samples
//   - out: Output vector of at least 3 elements
func (n *Notes) Process(input, out []float32) error {
	if n.handle == nil {
		return ErrFailedInit
	}
	if err := checkSize(input, n.hopSize); err != nil {
		return err
	}
	if err := checkSize(out, 3); err != nil {
		return err
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.aubio_notes_do(n.handle, fvecPtr(&pin, input), fvecPtr(&pin, out))
	return nil
}

// Detect runs note detection on one hop of input and returns the zero to
// two note events derived from the raw output.
func (n *Notes) Detect(input []float32) ([]Note, error) {
	var out [3]float32
	if err := n.Process(input, out[:]); err != nil {
		return nil, err
	}
	return parseNotes(&out), nil
}

// SetSilence sets the silence threshold in dB.
func (n *Notes) SetSilence(silence float32) {
	if n.handle == nil {
		return
	}
	C.aubio_notes_set_silence(n.handle, C.smpl_t(silence))
}

// GetSilence returns the silence threshold in dB.
func (n *Notes) GetSilence() float32 {
	if n.handle == nil {
		return 0
	}
	return float32(C.aubio_notes_get_silence(n.handle))
}

// SetMinioiMs sets the minimum inter-onset interval in milliseconds.
func (n *Notes) SetMinioiMs(minioi float32) {
	if n.handle == nil {
		return
	}
	C.aubio_notes_set_minioi_ms(n.handle, C.smpl_t(minioi))
}

// GetMinioiMs returns the minimum inter-onset interval in milliseconds.
func (n *Notes) GetMinioiMs() float32 {
	if n.handle == nil {
		return 0
	}
	return float32(C.aubio_notes_get_minioi_ms(n.handle))
}

// SetReleaseDrop sets the level drop in dB under the note start level that
// triggers a note-off.
func (n *Notes) SetReleaseDrop(releaseDrop float32) {
	if n.handle == nil {
		return
	}
	C.aubio_notes_set_release_drop(n.handle, C.smpl_t(releaseDrop))
}

// GetReleaseDrop returns the release drop level in dB.
func (n *Notes) GetReleaseDrop() float32 {
	if n.handle == nil {
		return 0
	}
	return float32(C.aubio_notes_get_release_drop(n.handle))
}

// Close releases the note detector resources.
func (n *Notes) Close() error {
	if n.handle != nil {
		C.del_aubio_notes(n.handle)
		n.handle = nil
		runtime.SetFinalizer(n, nil)
	}
	return nil
}
