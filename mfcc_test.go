package aubio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMFCCInvalid(t *testing.T) {
	_, err := NewMFCC(0, 40, 13, 44100)
	assert.ErrorIs(t, err, ErrFailedInit)
}

func TestMFCCProcess(t *testing.T) {
	const (
		sampleRate = 44100
		bufSize    = 512
		hopSize    = 128
		nFilters   = 40
		nCoeffs    = 13
	)
	m, err := NewMFCC(bufSize, nFilters, nCoeffs, sampleRate)
	require.NoError(t, err)
	defer m.Close()

	pv, err := NewPVoc(bufSize, hopSize)
	require.NoError(t, err)
	defer pv.Close()

	signal := makeSine(440, sampleRate, hopSize*8)
	fftgrain := NewCVec(bufSize)
	coeffs := make([]float32, nCoeffs)
	for i := 0; i+hopSize <= len(signal); i += hopSize {
		require.NoError(t, pv.Process(signal[i:i+hopSize], fftgrain))
		require.NoError(t, m.Process(fftgrain, coeffs))
	}
	for i, c := range coeffs {
		assert.False(t, math.IsNaN(float64(c)), "coefficient %d", i)
	}
}

func TestMFCCSizeErrors(t *testing.T) {
	m, err := NewMFCC(512, 40, 13, 44100)
	require.NoError(t, err)
	defer m.Close()

	assert.ErrorIs(t, m.Process(NewCVec(256), make([]float32, 13)), ErrMismatchSize)
	assert.ErrorIs(t, m.Process(NewCVec(512), make([]float32, 8)), ErrMismatchSize)
}

func TestMFCCAccessors(t *testing.T) {
	m, err := NewMFCC(512, 40, 13, 44100)
	require.NoError(t, err)
	defer m.Close()

	m = m.WithPower(2).WithScale(1.5)
	assert.InDelta(t, 2, m.GetPower(), 1e-6)
	assert.InDelta(t, 1.5, m.GetScale(), 1e-6)

	m.SetMelCoeffs(100, 8000)
	m.SetMelCoeffsHTK(100, 8000)
	m.SetMelCoeffsSlaney()
}
