package deltae

import "math"

// Coefficients of the Huang et al. (2015) power function, the
// recommended general-purpose improvement for colour-difference
// formulas.
const (
	huang2015Coefficient = 1.43
	huang2015Exponent    = 0.7
)

// PowerFunctionHuang2015 applies the Huang et al. (2015) power
// function to a colour difference: 1.43 * d^0.7. Compressing large
// distances this way improves the correlation of most formulas with
// visual data.
func PowerFunctionHuang2015(d float64) float64 {
	return huang2015Coefficient * math.Pow(d, huang2015Exponent)
}
