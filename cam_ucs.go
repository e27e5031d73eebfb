package deltae

import "math"

// Lightness scaling coefficients of the Luo, Cui and Li (2006) uniform
// colour spaces. The LCD variant is calibrated for large colour
// differences, SCD for small ones, and UCS is the general-purpose
// compromise. The same presets apply to the CAM16 derivatives per Li
// et al. (2017).
const (
	klLCD = 0.77
	klSCD = 1.24
	klUCS = 1.0
)

// deltaELuo2006 returns the colour difference in a Luo et al. (2006)
// uniform space: Euclidean distance over (J'/K_L, a', b'). The
// coordinates must already be in the uniform space; this engine
// performs no colour-appearance modelling, so CAM02 and CAM16 inputs
// share one implementation and differ only in how the caller produced
// them.
func deltaELuo2006(jab1, jab2 Triplet, kl float64) float64 {
	dJ := (jab1[0] - jab2[0]) / kl
	dA := jab1[1] - jab2[1]
	dB := jab1[2] - jab2[2]
	return math.Sqrt(dJ*dJ + dA*dA + dB*dB)
}

// CAM02LCD returns the CAM02-LCD colour difference between two
// CIECAM02 J'a'b' coordinates.
func CAM02LCD(jab1, jab2 Triplet) float64 { return deltaELuo2006(jab1, jab2, klLCD) }

// CAM02SCD returns the CAM02-SCD colour difference between two
// CIECAM02 J'a'b' coordinates.
func CAM02SCD(jab1, jab2 Triplet) float64 { return deltaELuo2006(jab1, jab2, klSCD) }

// CAM02UCS returns the CAM02-UCS colour difference between two
// CIECAM02 J'a'b' coordinates.
func CAM02UCS(jab1, jab2 Triplet) float64 { return deltaELuo2006(jab1, jab2, klUCS) }

// CAM16LCD returns the CAM16-LCD colour difference between two CAM16
// J'a'b' coordinates.
func CAM16LCD(jab1, jab2 Triplet) float64 { return deltaELuo2006(jab1, jab2, klLCD) }

// CAM16SCD returns the CAM16-SCD colour difference between two CAM16
// J'a'b' coordinates.
func CAM16SCD(jab1, jab2 Triplet) float64 { return deltaELuo2006(jab1, jab2, klSCD) }

// CAM16UCS returns the CAM16-UCS colour difference between two CAM16
// J'a'b' coordinates.
func CAM16UCS(jab1, jab2 Triplet) float64 { return deltaELuo2006(jab1, jab2, klUCS) }

func cam02LCD(a, b Triplet, _ params) float64 { return CAM02LCD(a, b) }
func cam02SCD(a, b Triplet, _ params) float64 { return CAM02SCD(a, b) }
func cam02UCS(a, b Triplet, _ params) float64 { return CAM02UCS(a, b) }
func cam16LCD(a, b Triplet, _ params) float64 { return CAM16LCD(a, b) }
func cam16SCD(a, b Triplet, _ params) float64 { return CAM16SCD(a, b) }
func cam16UCS(a, b Triplet, _ params) float64 { return CAM16UCS(a, b) }
