package deltae

import "math"

// JNDCIE1976 is the just-noticeable difference under the CIE 1976
// metric: two colours closer than ~2.3 are generally indistinguishable
// to an average observer.
const JNDCIE1976 = 2.3

func degToRad(deg float64) float64 { return deg * math.Pi / 180 }

// CIE1976 returns the CIE 1976 colour difference: the Euclidean
// distance between two CIE L*a*b* coordinates. Always defined, and
// symmetric in its arguments.
func CIE1976(lab1, lab2 Triplet) float64 {
	dL := lab1[0] - lab2[0]
	dA := lab1[1] - lab2[1]
	dB := lab1[2] - lab2[2]
	return math.Sqrt(dL*dL + dA*dA + dB*dB)
}

// CIE1994 returns the CIE 1994 colour difference between two CIE
// L*a*b* coordinates: a weighted Euclidean distance in L*, C*, H* with
// chroma-dependent denominators. The textiles flag switches the (K1,
// K2, k_L) constants from the graphic-arts defaults (0.045, 0.015, 1)
// to the textiles set (0.048, 0.014, 2).
//
// The weighting denominators use the first sample's chroma by
// convention, so the metric is not symmetric: CIE1994(a, b) and
// CIE1994(b, a) differ. This asymmetry is part of the published
// standard and is preserved exactly.
func CIE1994(lab1, lab2 Triplet, textiles bool) float64 {
	kL, k1, k2 := 1.0, 0.045, 0.015
	if textiles {
		kL, k1, k2 = 2.0, 0.048, 0.014
	}
	const kC, kH = 1.0, 1.0

	c1 := lab1.chroma()
	c2 := lab2.chroma()

	dL := lab1[0] - lab2[0]
	dC := c1 - c2
	dA := lab1[1] - lab2[1]
	dB := lab1[2] - lab2[2]
	// Hue difference as the Euclidean residual; when C*1 = 0 the
	// denominators reduce to 1 and the term stays defined. The residual
	// is non-negative up to rounding, clamp the cancellation noise.
	dH2 := dA*dA + dB*dB - dC*dC
	if dH2 < 0 {
		dH2 = 0
	}

	sL := 1.0
	sC := 1 + k1*c1
	sH := 1 + k2*c1

	vL := dL / (kL * sL)
	vC := dC / (kC * sC)
	return math.Sqrt(vL*vL + vC*vC + dH2/(kH*sH*kH*sH))
}

// CIE2000 returns the CIE 2000 colour difference between two CIE
// L*a*b* coordinates, including the G-factor correction of the a*
// axis, circular-seam-aware hue averaging, and the blue-region
// rotation term. The textiles flag sets the k_L parametric factor to 2.
//
// All angle arithmetic is carried out in degrees, matching the
// constants of the standard, with conversion to radians only at the
// trigonometric call boundaries.
func CIE2000(lab1, lab2 Triplet, textiles bool) float64 {
	kL, kC, kH := 1.0, 1.0, 1.0
	if textiles {
		kL = 2
	}

	const pow25To7 = 6103515625.0 // 25^7

	l1, a1, b1 := lab1[0], lab1[1], lab1[2]
	l2, a2, b2 := lab2[0], lab2[1], lab2[2]

	// Mean chroma of the uncorrected coordinates drives the G factor
	// that compensates the non-uniformity of the a* axis. The
	// expression is defined even when both chromas are zero.
	cBar := (lab1.chroma() + lab2.chroma()) / 2
	cBar7 := math.Pow(cBar, 7)
	g := 0.5 * (1 - math.Sqrt(cBar7/(cBar7+pow25To7)))

	a1p := a1 * (1 + g)
	a2p := a2 * (1 + g)

	c1p := math.Hypot(a1p, b1)
	c2p := math.Hypot(a2p, b2)

	h1p := hueAngle(b1, a1p)
	h2p := hueAngle(b2, a2p)

	dL := l2 - l1
	dC := c2p - c1p

	// Signed hue difference wrapped into (-180, 180]. Skipping the
	// wrap would flip the sign of near-seam differences.
	var dh float64
	if c1p*c2p != 0 {
		dh = h2p - h1p
		if dh > 180 {
			dh -= 360
		} else if dh < -180 {
			dh += 360
		}
	}
	dH := 2 * math.Sqrt(c1p*c2p) * math.Sin(degToRad(dh/2))

	lBar := (l1 + l2) / 2
	cBarP := (c1p + c2p) / 2

	// Mean hue must lie on the arc between the two hues, averaging
	// across the 0/360 seam when the raw angles are more than 180
	// degrees apart.
	hSum := h1p + h2p
	var hBar float64
	switch {
	case c1p*c2p == 0:
		hBar = hSum
	case math.Abs(h1p-h2p) <= 180:
		hBar = hSum / 2
	case hSum < 360:
		hBar = (hSum + 360) / 2
	default:
		hBar = (hSum - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(degToRad(hBar-30)) +
		0.24*math.Cos(degToRad(2*hBar)) +
		0.32*math.Cos(degToRad(3*hBar+6)) -
		0.20*math.Cos(degToRad(4*hBar-63))

	lBar50 := (lBar - 50) * (lBar - 50)
	sL := 1 + 0.015*lBar50/math.Sqrt(20+lBar50)
	sC := 1 + 0.045*cBarP
	sH := 1 + 0.015*cBarP*t

	dTheta := 30 * math.Exp(-((hBar-275)/25)*((hBar-275)/25))
	cBarP7 := math.Pow(cBarP, 7)
	rC := 2 * math.Sqrt(cBarP7/(cBarP7+pow25To7))
	rT := -math.Sin(degToRad(2*dTheta)) * rC

	vL := dL / (kL * sL)
	vC := dC / (kC * sC)
	vH := dH / (kH * sH)
	return math.Sqrt(vL*vL + vC*vC + vH*vH + rT*vC*vH)
}

// hueAngle returns atan2(b, a) as a degree angle normalized to
// [0, 360), with the zero-chroma case pinned to 0.
func hueAngle(b, a float64) float64 {
	if b == 0 && a == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}

// CMC returns the CMC l:c colour difference between two CIE L*a*b*
// coordinates using the ellipse model of the Colour Measurement
// Committee. The acceptability weights default to (l, c) = (2, 1);
// (1, 1) is the perceptibility variant.
//
// Like CIE 1994, the weighting functions depend only on the first
// sample, so the metric is order-sensitive by definition. The T ellipse
// orientation term switches branches at the 164 and 345 degree hue
// boundaries; the discontinuity there is part of the standard.
func CMC(lab1, lab2 Triplet, l, c float64) float64 {
	l1 := lab1[0]
	c1 := lab1.chroma()
	c2 := lab2.chroma()

	sL := 0.511
	if l1 >= 16 {
		sL = 0.040975 * l1 / (1 + 0.01765*l1)
	}
	sC := 0.0638*c1/(1+0.0131*c1) + 0.638

	c14 := c1 * c1 * c1 * c1
	f := math.Sqrt(c14 / (c14 + 1900))

	h1 := lab1.hueDegrees()
	var t float64
	if h1 >= 164 && h1 <= 345 {
		t = 0.56 + math.Abs(0.2*math.Cos(degToRad(h1+168)))
	} else {
		t = 0.36 + math.Abs(0.4*math.Cos(degToRad(h1+35)))
	}
	sH := sC * (f*t + 1 - f)

	dL := lab1[0] - lab2[0]
	dC := c1 - c2
	dA := lab1[1] - lab2[1]
	dB := lab1[2] - lab2[2]
	dH2 := dA*dA + dB*dB - dC*dC
	if dH2 < 0 {
		dH2 = 0
	}

	vL := dL / (l * sL)
	vC := dC / (c * sC)
	return math.Sqrt(vL*vL + vC*vC + dH2/(sH*sH))
}

// ITP returns the colour difference of ITU-R BT.2124 between two ICtCp
// coordinates: the Euclidean distance over (I, 0.5*Ct, Cp) scaled by
// 720. The inputs must already be ICtCp, not L*a*b*; this formula
// operates in the [0, 1] reference domain.
func ITP(ictcp1, ictcp2 Triplet) float64 {
	dI := ictcp1[0] - ictcp2[0]
	dT := 0.5 * (ictcp1[1] - ictcp2[1])
	dP := ictcp1[2] - ictcp2[2]
	return 720 * math.Sqrt(dI*dI+dT*dT+dP*dP)
}

// HyAB returns the hybrid colour difference of Abasi, Amani Tehran and
// Fairchild (2020): city-block in lightness plus Euclidean in the a*b*
// plane. The mixed norm keeps the metric well-behaved for very large
// colour differences where CIE 2000 saturates. Symmetric.
func HyAB(lab1, lab2 Triplet) float64 {
	dL := math.Abs(lab1[0] - lab2[0])
	return dL + math.Hypot(lab1[1]-lab2[1], lab1[2]-lab2[2])
}

// HyCH returns the chroma-hue hybrid colour difference of Abasi, Amani
// Tehran and Fairchild (2020) for intermediate-magnitude differences:
// the Huang (2015) power function applied to the hybrid distance
// |dL*| + sqrt(dC*^2 + dH*^2). The power-function coefficients default
// to the published 1.43 and 0.7 and are tunable through
// PowerCoefficients.
func HyCH(lab1, lab2 Triplet) float64 {
	return hyCH(lab1, lab2, defaultParams())
}

func hyCH(lab1, lab2 Triplet, p params) float64 {
	dL := math.Abs(lab1[0] - lab2[0])
	dC := lab1.chroma() - lab2.chroma()
	dA := lab1[1] - lab2[1]
	dB := lab1[2] - lab2[2]
	dH2 := dA*dA + dB*dB - dC*dC
	if dH2 < 0 {
		dH2 = 0
	}
	return p.coefficient * math.Pow(dL+math.Sqrt(dC*dC+dH2), p.exponent)
}

// Registry adapters binding the exported formulas to the DistanceFunc
// contract.
func cie1976(a, b Triplet, _ params) float64 { return CIE1976(a, b) }
func cie1994(a, b Triplet, p params) float64 { return CIE1994(a, b, p.textiles) }
func cie2000(a, b Triplet, p params) float64 { return CIE2000(a, b, p.textiles) }
func cmc(a, b Triplet, p params) float64     { return CMC(a, b, p.l, p.c) }
func itp(a, b Triplet, _ params) float64     { return ITP(a, b) }
func hyAB(a, b Triplet, _ params) float64    { return HyAB(a, b) }
