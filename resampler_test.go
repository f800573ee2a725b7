package aubio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResampleModeRoundTrip(t *testing.T) {
	modes := []ResampleMode{
		ResampleBestQuality, ResampleMediumQuality, ResampleFastest,
		ResampleOrderHold, ResampleLinear,
	}
	for _, m := range modes {
		parsed, err := ParseResampleMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}

	_, err := ParseResampleMode("bogus")
	assert.ErrorIs(t, err, ErrInvalidArg)
}

func TestNewResamplerInvalid(t *testing.T) {
	_, err := NewResampler(2.0, ResampleMode(99))
	assert.ErrorIs(t, err, ErrFailedInit)
}

func TestResamplerUpsample(t *testing.T) {
	r, err := NewResampler(2.0, ResampleLinear)
	require.NoError(t, err)
	defer r.Close()

	assert.InDelta(t, 2.0, r.GetRatio(), 1e-6)

	input := makeSine(440, 22050, 256)
	output := make([]float32, 512)
	require.NoError(t, r.Process(input, output))

	var energy float32
	for _, s := range output {
		energy += s * s
	}
	assert.Greater(t, energy, float32(0))
}

func TestResamplerSizeError(t *testing.T) {
	r, err := NewResampler(2.0, ResampleLinear)
	require.NoError(t, err)
	defer r.Close()

	assert.ErrorIs(t, r.Process(make([]float32, 256), make([]float32, 100)), ErrMismatchSize)
}
