package aubio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTempoInvalid(t *testing.T) {
	_, err := NewTempo(OnsetDefault, 1024, 0, 44100)
	assert.ErrorIs(t, err, ErrFailedInit)
}

func TestTempoClickTrack(t *testing.T) {
	const (
		sampleRate = 44100
		bufSize    = 1024
		hopSize    = 512
	)
	tp, err := NewTempo(OnsetDefault, bufSize, hopSize, sampleRate)
	require.NoError(t, err)
	defer tp.Close()

	// 120 bpm click track, ten seconds.
	signal := makeClicks(sampleRate/2, sampleRate*10)
	beats := 0
	for i := 0; i+hopSize <= len(signal); i += hopSize {
		v, err := tp.Detect(signal[i : i+hopSize])
		require.NoError(t, err)
		if v != 0 {
			beats++
		}
	}
	assert.Greater(t, beats, 0)
	assert.Greater(t, tp.GetBpm(), float32(0))
	assert.Greater(t, tp.GetLast(), 0)
	t.Logf("%d beats, %.1f bpm, confidence %.2f", beats, tp.GetBpm(), tp.GetConfidence())
}

func TestTempoSizeErrors(t *testing.T) {
	tp, err := NewTempo(OnsetDefault, 1024, 512, 44100)
	require.NoError(t, err)
	defer tp.Close()

	out := make([]float32, 1)
	assert.ErrorIs(t, tp.Process(make([]float32, 256), out), ErrMismatchSize)
	assert.ErrorIs(t, tp.Process(make([]float32, 512), nil), ErrMismatchSize)
}

func TestTempoAccessors(t *testing.T) {
	tp, err := NewTempo(OnsetDefault, 1024, 512, 44100)
	require.NoError(t, err)
	defer tp.Close()

	tp = tp.WithSilence(-70).WithThreshold(0.4).WithDelay(256)
	assert.InDelta(t, -70, tp.GetSilence(), 1e-6)
	assert.InDelta(t, 0.4, tp.GetThreshold(), 1e-6)
	assert.Equal(t, 256, tp.GetDelay())

	tp.SetTatumSignature(4)
	assert.GreaterOrEqual(t, tp.WasTatum(), 0)
}
