package deltae

import "math"

// DIN99 returns the DIN99 colour difference of ASTM D2244-07 between
// two CIE L*a*b* coordinates: both samples are transformed into the
// DIN99 space, whose logarithmic chroma compression makes plain
// Euclidean distance perceptually uniform for large chroma
// differences, and the distance is taken there. The textiles flag
// rescales the (k_E, k_CH) constants from (1, 1) to (2, 0.5).
func DIN99(lab1, lab2 Triplet, textiles bool) float64 {
	kE, kCH := 1.0, 1.0
	if textiles {
		kE, kCH = 2.0, 0.5
	}
	x := labToDIN99(lab1, kE, kCH)
	y := labToDIN99(lab2, kE, kCH)
	return CIE1976(x, y)
}

// labToDIN99 transforms a CIE L*a*b* coordinate into the DIN99 space:
// logarithmic lightness compression, a 16 degree rotation of the a*b*
// plane with 0.7 compression of the minor axis, then logarithmic
// chroma compression.
func labToDIN99(lab Triplet, kE, kCH float64) Triplet {
	const rot = 16 * math.Pi / 180

	l99 := 105.509 * math.Log(1+0.0158*lab[0]) / kE

	e := lab[1]*math.Cos(rot) + lab[2]*math.Sin(rot)
	f := 0.7 * (-lab[1]*math.Sin(rot) + lab[2]*math.Cos(rot))

	g := math.Hypot(e, f)
	c99 := math.Log(1+0.045*g) / (0.045 * kCH * kE)

	h99 := math.Atan2(f, e)
	return Triplet{l99, c99 * math.Cos(h99), c99 * math.Sin(h99)}
}

func din99(a, b Triplet, p params) float64 { return DIN99(a, b, p.textiles) }
