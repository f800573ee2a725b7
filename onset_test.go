package aubio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnsetModeRoundTrip(t *testing.T) {
	modes := []OnsetMode{
		OnsetEnergy, OnsetSpecDiff, OnsetHFC, OnsetComplex,
		OnsetPhase, OnsetWPhase, OnsetKL, OnsetMKL, OnsetSpecFlux,
	}
	for _, m := range modes {
		parsed, err := ParseOnsetMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseOnsetMode("bogus")
	assert.ErrorIs(t, err, ErrInvalidArg)
}

func TestNewOnsetInvalid(t *testing.T) {
	_, err := NewOnset(OnsetDefault, 1024, 0, 44100)
	assert.ErrorIs(t, err, ErrFailedInit)
}

func TestOnsetSizeErrors(t *testing.T) {
	o, err := NewOnset(OnsetDefault, 1024, 512, 44100)
	require.NoError(t, err)
	defer o.Close()

	out := make([]float32, 1)
	assert.ErrorIs(t, o.Process(make([]float32, 256), out), ErrMismatchSize)
	assert.ErrorIs(t, o.Process(make([]float32, 512), nil), ErrMismatchSize)
	assert.NoError(t, o.Process(make([]float32, 512), out))
}

func TestOnsetDetectClicks(t *testing.T) {
	const (
		sampleRate = 44100
		bufSize    = 1024
		hopSize    = 512
	)
	o, err := NewOnset(OnsetHFC, bufSize, hopSize, sampleRate)
	require.NoError(t, err)
	defer o.Close()

	// Four clicks, one every quarter second.
	signal := makeClicks(sampleRate/4, sampleRate)
	detected := 0
	for i := 0; i+hopSize <= len(signal); i += hopSize {
		v, err := o.Detect(signal[i : i+hopSize])
		require.NoError(t, err)
		if v != 0 {
			detected++
		}
	}
	assert.Greater(t, detected, 0)
	assert.Greater(t, o.GetLast(), 0)
	t.Logf("detected %d onsets, last at %.3fs", detected, o.GetLastS())
}

func TestOnsetAccessors(t *testing.T) {
	o, err := NewOnset(OnsetDefault, 1024, 512, 44100)
	require.NoError(t, err)
	defer o.Close()

	o = o.WithThreshold(0.5).WithSilence(-70).WithMinioiMs(40)
	assert.InDelta(t, 0.5, o.GetThreshold(), 1e-6)
	assert.InDelta(t, -70, o.GetSilence(), 1e-6)
	assert.InDelta(t, 40, o.GetMinioiMs(), 12)

	o.SetDelay(1024)
	assert.Equal(t, 1024, o.GetDelay())

	o.SetAWhitening(true)
	assert.True(t, o.GetAWhitening())
	o.SetAWhitening(false)
	assert.False(t, o.GetAWhitening())

	o.SetCompression(2)
	assert.InDelta(t, 2, o.GetCompression(), 1e-6)

	o.SetDefaultParameters(OnsetSpecFlux)
	o.Reset()
}

func TestOnsetCreateCloseLoop(t *testing.T) {
	for i := 0; i < 1000; i++ {
		o, err := NewOnset(OnsetDefault, 1024, 512, 44100)
		require.NoError(t, err)
		require.NoError(t, o.Close())
	}
}
