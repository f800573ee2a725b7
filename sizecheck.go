//go:build !aubio_unchecked

package aubio

// sizeCheckEnabled selects the buffer validation policy for the whole
// compiled artifact. The default build validates every buffer before any
// native call and reports ErrMismatchSize on violation. Building with the
// aubio_unchecked tag removes all checks: the native calls then trust the
// caller, and undersized buffers are undefined behavior.
const sizeCheckEnabled = true
