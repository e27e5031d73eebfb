package deltae

import "math"

// Triplet represents a single colour coordinate with exactly three
// components. Depending on the metric it is interpreted as CIE L*a*b*
// (L*, a*, b*), ICtCp (I, Ct, Cp), or a CAM-UCS coordinate (J', a', b').
// Triplet is a value type; no formula in this package mutates its inputs.
type Triplet [3]float64

// chroma returns the radial magnitude of the a*b* (or equivalent
// chromatic) plane components.
func (t Triplet) chroma() float64 {
	return math.Hypot(t[1], t[2])
}

// hueDegrees returns the angular position in the a*b* plane, in degrees
// normalized to [0, 360). Zero-chroma coordinates yield 0.
func (t Triplet) hueDegrees() float64 {
	if t[1] == 0 && t[2] == 0 {
		return 0
	}
	h := math.Atan2(t[2], t[1]) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// scaled returns the triplet with every component multiplied by the
// given factor.
func (t Triplet) scaled(factor float64) Triplet {
	return Triplet{t[0] * factor, t[1] * factor, t[2] * factor}
}

// TripletsFromFloats reshapes a flat slice of component values into a
// slice of Triplets. The length of the input must be a multiple of
// three; otherwise the function returns an InvalidShapeError naming the
// offending length. The function takes a flat slice of floats and
// returns the reshaped coordinates, or an error.
func TripletsFromFloats(values []float64) ([]Triplet, error) {
	if len(values)%3 != 0 {
		return nil, &InvalidShapeError{
			Reason: "trailing axis must have exactly 3 components",
			LenA:   len(values),
		}
	}
	out := make([]Triplet, len(values)/3)
	for i := range out {
		out[i] = Triplet{values[i*3], values[i*3+1], values[i*3+2]}
	}
	return out, nil
}

// broadcast reconciles the lengths of two coordinate batches under
// standard broadcasting rules: equal lengths pass through unchanged, and
// a batch of length one is repeated to match the other side. The
// function returns an InvalidShapeError when the lengths are
// incompatible.
func broadcast(a, b []Triplet) ([]Triplet, []Triplet, error) {
	switch {
	case len(a) == len(b):
		return a, b, nil
	case len(a) == 1:
		aa := make([]Triplet, len(b))
		for i := range aa {
			aa[i] = a[0]
		}
		return aa, b, nil
	case len(b) == 1:
		bb := make([]Triplet, len(a))
		for i := range bb {
			bb[i] = b[0]
		}
		return a, bb, nil
	default:
		return nil, nil, &InvalidShapeError{
			Reason: "batches are not broadcast-compatible",
			LenA:   len(a),
			LenB:   len(b),
		}
	}
}
