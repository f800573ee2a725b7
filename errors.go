package aubio

import "errors"

// The binding reports every foreseeable failure as one of these values,
// comparable with errors.Is.
var (
	// ErrFailedInit is returned when the native layer cannot instantiate an
	// object for the given geometry, or when a closed object is used.
	ErrFailedInit = errors.New("aubio: failed to initialize object")

	// ErrMismatchSize is returned when a buffer is too small for the
	// operation about to be performed. Detected before any native call.
	ErrMismatchSize = errors.New("aubio: data size mismatch")

	// ErrInvalidArg is returned for unrecognized variant names and
	// out-of-bounds matrix access.
	ErrInvalidArg = errors.New("aubio: invalid argument")
)
