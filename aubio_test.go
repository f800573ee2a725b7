package aubio

import "math"

// makeSine generates n samples of a sine wave at the given frequency.
func makeSine(freq, sampleRate float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = float32(math.Sin(2 * math.Pi * float64(freq) * float64(i) / float64(sampleRate)))
	}
	return out
}

// makeClicks generates n samples of a click track with one unit impulse
// every period samples.
func makeClicks(period, n int) []float32 {
	out := make([]float32, n)
	for i := 0; i < n; i += period {
		out[i] = 1
	}
	return out
}
