package aubio

// WindowType selects the window function applied before a spectral
// transform.
type WindowType int

const (
	WindowOnes WindowType = iota
	WindowRectangle
	WindowHamming
	WindowHanning
	WindowHanningz
	WindowBlackman
	WindowBlackmanHarris
	WindowGaussian
	WindowWelch
	WindowParzen
)

// WindowDefault is the window used when no explicit choice is given.
const WindowDefault = WindowHanningz

// String returns the name understood by the native layer.
func (w WindowType) String() string {
	switch w {
	case WindowOnes:
		return "ones"
	case WindowRectangle:
		return "rectangle"
	case WindowHamming:
		return "hamming"
	case WindowHanning:
		return "hanning"
	case WindowHanningz:
		return "hanningz"
	case WindowBlackman:
		return "blackman"
	case WindowBlackmanHarris:
		return "blackman_harris"
	case WindowGaussian:
		return "gaussian"
	case WindowWelch:
		return "welch"
	case WindowParzen:
		return "parzen"
	default:
		return WindowDefault.String()
	}
}

// ParseWindowType maps a window name back to its WindowType.
func ParseWindowType(s string) (WindowType, error) {
	switch s {
	case "ones":
		return WindowOnes, nil
	case "rectangle":
		return WindowRectangle, nil
	case "hamming":
		return WindowHamming, nil
	case "hanning":
		return WindowHanning, nil
	case "hanningz":
		return WindowHanningz, nil
	case "blackman":
		return WindowBlackman, nil
	case "blackman_harris":
		return WindowBlackmanHarris, nil
	case "gaussian":
		return WindowGaussian, nil
	case "welch":
		return WindowWelch, nil
	case "parzen":
		return WindowParzen, nil
	default:
		return 0, ErrInvalidArg
	}
}
