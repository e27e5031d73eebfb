package deltae

import (
	"errors"
	"math"
)

// ErrStressUndefined is returned when the STRESS regression factor has
// no defined value because the computed and visual difference vectors
// do not overlap anywhere.
var ErrStressUndefined = errors.New("stress index undefined: computed and visual differences share no non-zero pair")

// IndexStressGarcia2007 returns the STRESS index of Garcia et al.
// (2007) between a vector of computed colour differences dE and a
// vector of visual differences dV: the standardized residual sum of
// squares, in percent. Lower is better; comparable formulas are ranked
// by it in the colour-difference literature. The vectors must have
// equal, non-zero length, and must overlap in at least one non-zero
// pair; otherwise the index is undefined and ErrStressUndefined is
// returned.
func IndexStressGarcia2007(dE, dV []float64) (float64, error) {
	if len(dE) == 0 || len(dE) != len(dV) {
		return 0, &InvalidShapeError{
			Reason: "distance vectors must have equal non-zero length",
			LenA:   len(dE),
			LenB:   len(dV),
		}
	}

	var sumE2, sumEV float64
	for i := range dE {
		sumE2 += dE[i] * dE[i]
		sumEV += dE[i] * dV[i]
	}
	// The regression factor F = sumE2/sumEV has no value when every
	// product dE[i]*dV[i] is zero; that never describes a usable
	// formula-versus-observer data set.
	if sumEV == 0 {
		return 0, ErrStressUndefined
	}
	f := sumE2 / sumEV

	var num, den float64
	for i := range dE {
		r := dE[i] - f*dV[i]
		num += r * r
		den += f * f * dV[i] * dV[i]
	}
	return 100 * math.Sqrt(num/den), nil
}

// StressMethods lists the canonical STRESS index method names.
var StressMethods = []string{"Garcia 2007"}

// IndexStress returns the STRESS index between computed and visual
// colour-difference vectors using the named method. "Garcia 2007" is
// the only method currently defined; an empty name selects it. Unknown
// names yield an UnknownMethodError.
func IndexStress(dE, dV []float64, methodName string) (float64, error) {
	if methodName == "" {
		methodName = StressMethods[0]
	}
	if normalizeMethodName(methodName) != normalizeMethodName(StressMethods[0]) {
		return 0, &UnknownMethodError{
			Method: methodName,
			Valid:  append([]string(nil), StressMethods...),
		}
	}
	return IndexStressGarcia2007(dE, dV)
}
