//go:build aubio_unchecked

package aubio

// Unchecked build: the caller guarantees correct buffer sizing, no
// validation is performed before native calls.
const sizeCheckEnabled = false
