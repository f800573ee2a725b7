package aubio

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNotes(t *testing.T) {
	assert.Empty(t, parseNotes(&[3]float32{0, 0, 0}))

	on := parseNotes(&[3]float32{67, 80, 0})
	require.Len(t, on, 1)
	assert.Equal(t, Note{Pitch: 67, Velocity: 80}, on[0])

	off := parseNotes(&[3]float32{0, 0, 60})
	require.Len(t, off, 1)
	assert.Equal(t, Note{Pitch: 60, Velocity: 0}, off[0])

	// A new note ends the previous one first.
	both := parseNotes(&[3]float32{67, 80, 60})
	require.Len(t, both, 2)
	assert.Equal(t, Note{Pitch: 60, Velocity: 0}, both[0])
	assert.Equal(t, Note{Pitch: 67, Velocity: 80}, both[1])
}

func TestNewNotesInvalid(t *testing.T) {
	_, err := NewNotes(1024, 0, 44100)
	assert.ErrorIs(t, err, ErrFailedInit)
}

func TestNotesProcess(t *testing.T) {
	const (
		sampleRate = 44100
		hopSize    = 256
	)
	n, err := NewNotes(1024, hopSize, sampleRate)
	require.NoError(t, err)
	defer n.Close()

	signal := makeSine(440, sampleRate, sampleRate)
	out := make([]float32, 3)
	for i := 0; i+hopSize <= len(signal); i += hopSize {
		require.NoError(t, n.Process(signal[i:i+hopSize], out))
	}

	_, err = n.Detect(signal[:hopSize])
	require.NoError(t, err)
}

func TestNotesSizeErrors(t *testing.T) {
	n, err := NewNotes(1024, 256, 44100)
	require.NoError(t, err)
	defer n.Close()

	assert.ErrorIs(t, n.Process(make([]float32, 128), make([]float32, 3)), ErrMismatchSize)
	assert.ErrorIs(t, n.Process(make([]float32, 256), make([]float32, 2)), ErrMismatchSize)
}

func TestNotesAccessors(t *testing.T) {
	n, err := NewNotes(1024, 256, 44100)
	require.NoError(t, err)
	defer n.Close()

	n = n.WithSilence(-50).WithMinioiMs(30).WithReleaseDrop(15)
	assert.InDelta(t, -50, n.GetSilence(), 1e-6)
	assert.InDelta(t, 30, n.GetMinioiMs(), 1e-3)
	assert.InDelta(t, 15, n.GetReleaseDrop(), 1e-6)
}
