package aubio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowTypeRoundTrip(t *testing.T) {
	types := []WindowType{
		WindowOnes, WindowRectangle, WindowHamming, WindowHanning,
		WindowHanningz, WindowBlackman, WindowBlackmanHarris,
		WindowGaussian, WindowWelch, WindowParzen,
	}
	for _, w := range types {
		parsed, err := ParseWindowType(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, parsed)
	}
}

func TestParseWindowTypeInvalid(t *testing.T) {
	_, err := ParseWindowType("bogus")
	assert.ErrorIs(t, err, ErrInvalidArg)
}

func TestWindowDefault(t *testing.T) {
	assert.Equal(t, WindowHanningz, WindowDefault)
	assert.Equal(t, "hanningz", WindowDefault.String())
}
