package aubio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPitchModeRoundTrip(t *testing.T) {
	modes := []PitchMode{
		PitchYinFFT, PitchYin, PitchYinFast, PitchMcomb,
		PitchSchmitt, PitchFcomb, PitchSpecACF,
	}
	for _, m := range modes {
		parsed, err := ParsePitchMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParsePitchMode("bogus")
	assert.ErrorIs(t, err, ErrInvalidArg)
}

func TestPitchUnitRoundTrip(t *testing.T) {
	units := []PitchUnit{UnitHz, UnitMidi, UnitCent, UnitBin}
	for _, u := range units {
		parsed, err := ParsePitchUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, parsed)
	}

	_, err := ParsePitchUnit("bogus")
	assert.ErrorIs(t, err, ErrInvalidArg)
}

func TestNewPitchInvalid(t *testing.T) {
	_, err := NewPitch(PitchDefault, 2048, 0, 44100)
	assert.ErrorIs(t, err, ErrFailedInit)
}

func TestPitchDetectSine(t *testing.T) {
	const (
		sampleRate = 44100
		bufSize    = 2048
		hopSize    = 512
		freq       = 440
	)
	p, err := NewPitch(PitchYinFFT, bufSize, hopSize, sampleRate)
	require.NoError(t, err)
	defer p.Close()

	signal := makeSine(freq, sampleRate, sampleRate)
	var detected float32
	for i := 0; i+hopSize <= len(signal); i += hopSize {
		detected, err = p.Detect(signal[i : i+hopSize])
		require.NoError(t, err)
	}
	assert.InDelta(t, freq, detected, 10)
	assert.Greater(t, p.GetConfidence(), float32(0))
	t.Logf("detected %.1f Hz, confidence %.2f", detected, p.GetConfidence())
}

func TestPitchMidiUnit(t *testing.T) {
	const (
		sampleRate = 44100
		hopSize    = 512
	)
	p, err := NewPitch(PitchYinFFT, 2048, hopSize, sampleRate)
	require.NoError(t, err)
	defer p.Close()
	p = p.WithUnit(UnitMidi)

	// A4 is midi note 69.
	signal := makeSine(440, sampleRate, sampleRate)
	var detected float32
	for i := 0; i+hopSize <= len(signal); i += hopSize {
		detected, err = p.Detect(signal[i : i+hopSize])
		require.NoError(t, err)
	}
	assert.InDelta(t, 69, detected, 1)
}

func TestPitchSizeErrors(t *testing.T) {
	p, err := NewPitch(PitchDefault, 2048, 512, 44100)
	require.NoError(t, err)
	defer p.Close()

	out := make([]float32, 1)
	assert.ErrorIs(t, p.Process(make([]float32, 256), out), ErrMismatchSize)
	assert.ErrorIs(t, p.Process(make([]float32, 512), nil), ErrMismatchSize)
}

func TestPitchAccessors(t *testing.T) {
	p, err := NewPitch(PitchYin, 2048, 512, 44100)
	require.NoError(t, err)
	defer p.Close()

	p = p.WithTolerance(0.3).WithSilence(-60)
	assert.InDelta(t, 0.3, p.GetTolerance(), 1e-6)
	assert.InDelta(t, -60, p.GetSilence(), 1e-6)
}
