package aubio

/*
#include <aubio/aubio.h>
*/
import "C"
import "runtime"

// Unwrap2Pi maps a phase value into the range [-pi, pi].
func Unwrap2Pi(phase float32) float32 {
	return float32(C.aubio_unwrap2pi(C.smpl_t(phase)))
}

// BinToMidi converts an FFT bin index to a MIDI note number for the given
// sample rate and FFT size.
func BinToMidi(bin, sampleRate, fftSize float32) float32 {
	return float32(C.aubio_bintomidi(C.smpl_t(bin), C.smpl_t(sampleRate), C.smpl_t(fftSize)))
}

// MidiToBin converts a MIDI note number to an FFT bin index for the given
// sample rate and FFT size.
func MidiToBin(midi, sampleRate, fftSize float32) float32 {
	return float32(C.aubio_miditobin(C.smpl_t(midi), C.smpl_t(sampleRate), C.smpl_t(fftSize)))
}

// BinToFreq converts an FFT bin index to a frequency in Hz.
func BinToFreq(bin, sampleRate, fftSize float32) float32 {
	return float32(C.aubio_bintofreq(C.smpl_t(bin), C.smpl_t(sampleRate), C.smpl_t(fftSize)))
}

// FreqToBin converts a frequency in Hz to an FFT bin index.
func FreqToBin(freq, sampleRate, fftSize float32) float32 {
	return float32(C.aubio_freqtobin(C.smpl_t(freq), C.smpl_t(sampleRate), C.smpl_t(fftSize)))
}

// HzToMel converts a frequency in Hz to a mel value using the Slaney
// scaling, linear below 1000 Hz and logarithmic above.
func HzToMel(freq float32) float32 {
	return float32(C.aubio_hztomel(C.smpl_t(freq)))
}

// MelToHz converts a mel value to a frequency in Hz using the Slaney
// scaling.
func MelToHz(mel float32) float32 {
	return float32(C.aubio_meltohz(C.smpl_t(mel)))
}

// HzToMelHTK converts a frequency in Hz to a mel value using the HTK
// scaling.
func HzToMelHTK(freq float32) float32 {
	return float32(C.aubio_hztomel_htk(C.smpl_t(freq)))
}

// MelToHzHTK converts a mel value to a frequency in Hz using the HTK
// scaling.
func MelToHzHTK(mel float32) float32 {
	return float32(C.aubio_meltohz_htk(C.smpl_t(mel)))
}

// FreqToMidi converts a frequency in Hz to a MIDI note number.
func FreqToMidi(freq float32) float32 {
	return float32(C.aubio_freqtomidi(C.smpl_t(freq)))
}

// MidiToFreq converts a MIDI note number to a frequency in Hz.
func MidiToFreq(midi float32) float32 {
	return float32(C.aubio_miditofreq(C.smpl_t(midi)))
}

// ZeroCrossingRate returns the zero-crossing rate of the input frame.
func ZeroCrossingRate(input []float32) float32 {
	if len(input) == 0 {
		return 0
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	return float32(C.aubio_zero_crossing_rate(fvecPtr(&pin, input)))
}

// LevelLin returns the linear mean energy of the input frame.
func LevelLin(input []float32) float32 {
	if len(input) == 0 {
		return 0
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	return float32(C.aubio_level_lin(fvecPtr(&pin, input)))
}

// DbSpl returns the sound pressure level of the input frame in dB.
func DbSpl(input []float32) float32 {
	if len(input) == 0 {
		return 0
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	return float32(C.aubio_db_spl(fvecPtr(&pin, input)))
}

// SilenceDetection reports whether the input frame is below the given
// threshold in dB.
func SilenceDetection(input []float32, threshold float32) bool {
	if len(input) == 0 {
		return true
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	return C.aubio_silence_detection(fvecPtr(&pin, input), C.smpl_t(threshold)) != 0
}

// LevelDetection returns the level of the input frame in dB if it is
// above the given threshold, and 1.0 otherwise.
func LevelDetection(input []float32, threshold float32) float32 {
	if len(input) == 0 {
		return 1
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	return float32(C.aubio_level_detection(fvecPtr(&pin, input), C.smpl_t(threshold)))
}

// Clamp limits each sample of the buffer, in place, to the range
// [-absMax, absMax].
func Clamp(buf []float32, absMax float32) {
	if len(buf) == 0 {
		return
	}
	var pin runtime.Pinner
	defer pin.Unpin()
	C.fvec_clamp(fvecPtr(&pin, buf), C.smpl_t(absMax))
}
