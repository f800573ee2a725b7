package aubio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMidiFreqConversion(t *testing.T) {
	assert.InDelta(t, 440, MidiToFreq(69), 0.01)
	assert.InDelta(t, 69, FreqToMidi(440), 0.01)
	assert.InDelta(t, 261.63, MidiToFreq(60), 0.01)
}

func TestBinFreqConversion(t *testing.T) {
	const (
		sampleRate = 44100
		fftSize    = 512
	)
	freq := BinToFreq(5, sampleRate, fftSize)
	assert.InDelta(t, 430.66, freq, 0.01)
	assert.InDelta(t, 5, FreqToBin(freq, sampleRate, fftSize), 1e-3)

	midi := BinToMidi(5, sampleRate, fftSize)
	assert.InDelta(t, 5, MidiToBin(midi, sampleRate, fftSize), 1e-3)
}

func TestMelConversion(t *testing.T) {
	assert.InDelta(t, 1000, MelToHz(HzToMel(1000)), 0.1)
	assert.InDelta(t, 1000, MelToHzHTK(HzToMelHTK(1000)), 0.1)
	assert.InDelta(t, 0, HzToMel(0), 1e-6)
}

func TestUnwrap2Pi(t *testing.T) {
	assert.InDelta(t, 0.5*math.Pi, Unwrap2Pi(2.5*math.Pi), 1e-5)
	assert.InDelta(t, 0.25*math.Pi, Unwrap2Pi(0.25*math.Pi), 1e-5)
}

func TestSilenceDetection(t *testing.T) {
	assert.True(t, SilenceDetection(make([]float32, 512), -70))
	assert.False(t, SilenceDetection(makeSine(440, 44100, 512), -70))
	assert.True(t, SilenceDetection(nil, -70))
}

func TestLevelLin(t *testing.T) {
	assert.Zero(t, LevelLin(make([]float32, 512)))
	assert.Greater(t, LevelLin(makeSine(440, 44100, 512)), float32(0))
}

func TestLevelDetection(t *testing.T) {
	// Below the threshold the level collapses to 1.
	assert.InDelta(t, 1, LevelDetection(make([]float32, 512), -70), 1e-6)
	assert.Less(t, LevelDetection(makeSine(440, 44100, 512), -70), float32(0))
}

func TestZeroCrossingRate(t *testing.T) {
	assert.Zero(t, ZeroCrossingRate(make([]float32, 512)))

	alternating := make([]float32, 512)
	for i := range alternating {
		if i%2 == 0 {
			alternating[i] = 1
		} else {
			alternating[i] = -1
		}
	}
	assert.Greater(t, ZeroCrossingRate(alternating), float32(0.9))
}

func TestDbSpl(t *testing.T) {
	level := DbSpl(makeSine(440, 44100, 512))
	assert.False(t, math.IsNaN(float64(level)))
	assert.Less(t, level, float32(0))
}

func TestClamp(t *testing.T) {
	buf := []float32{2, -3, 0.5}
	Clamp(buf, 1)
	assert.Equal(t, []float32{1, -1, 0.5}, buf)
}
