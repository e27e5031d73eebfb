package deltae

// Option names recognized by the built-in formulas. Each registered
// method declares the subset it accepts; the dispatcher silently drops
// anything outside that subset, so a single call site may pass
// formula-specific options without branching per method.
const (
	optTextiles    = "textiles"
	optLightness   = "l"
	optChroma      = "c"
	optCoefficient = "coefficient"
	optExponent    = "exponent"
)

// params carries the parametric factors a formula may consume, already
// filtered down to the options the resolved method accepts and topped up
// with that formula's defaults.
type params struct {
	textiles    bool
	l           float64 // CMC lightness acceptability weight
	c           float64 // CMC chroma acceptability weight
	coefficient float64 // Huang (2015) power-function coefficient
	exponent    float64 // Huang (2015) power-function exponent
}

// defaultParams returns the parametric factors every formula starts
// from: graphic-arts constants, CMC (l, c) = (2, 1) acceptability
// weights, and the Huang (2015) power-function coefficients.
func defaultParams() params {
	return params{
		l:           2,
		c:           1,
		coefficient: huang2015Coefficient,
		exponent:    huang2015Exponent,
	}
}

// Option is a named parametric factor passed to DeltaE. Options carry
// their registry name so the dispatcher can filter them against the
// resolved formula's declared set.
type Option struct {
	name  string
	apply func(*params)
}

// Textiles selects the textiles parametric constants for the formulas
// that define them (CIE 1994, CIE 2000, DIN99) in place of the
// graphic-arts defaults.
func Textiles(on bool) Option {
	return Option{name: optTextiles, apply: func(p *params) { p.textiles = on }}
}

// LightnessWeight sets the CMC lightness acceptability weight l
// (2 by default, 1 for perceptibility tolerancing).
func LightnessWeight(l float64) Option {
	return Option{name: optLightness, apply: func(p *params) { p.l = l }}
}

// ChromaWeight sets the CMC chroma acceptability weight c (1 by default).
func ChromaWeight(c float64) Option {
	return Option{name: optChroma, apply: func(p *params) { p.c = c }}
}

// PowerCoefficients overrides the Huang (2015) power-function
// coefficient and exponent used by the HyCH formula. The defaults are
// 1.43 and 0.7.
func PowerCoefficients(coefficient, exponent float64) Option {
	return Option{name: optCoefficient, apply: func(p *params) {
		p.coefficient = coefficient
		p.exponent = exponent
	}}
}

// filterOptions applies the given options to a fresh params value,
// keeping only those whose name appears in the accepted set. Unknown
// options are dropped, not errors.
func filterOptions(accepts map[string]struct{}, opts []Option) params {
	p := defaultParams()
	for _, opt := range opts {
		if _, ok := accepts[opt.name]; ok {
			opt.apply(&p)
		}
	}
	return p
}
