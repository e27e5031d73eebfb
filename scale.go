package deltae

import "fmt"

// DomainRangeScale is the numeric convention under which input
// magnitudes are interpreted. Formulas are written in their reference
// units (L* in [0, 100], ICtCp in [0, 1]); under a non-reference scale
// the engine rescales inputs to reference units before evaluation.
// Returned distances are always reference-unit distances.
type DomainRangeScale int

const (
	// ScaleReference interprets inputs in their native units.
	ScaleReference DomainRangeScale = iota

	// ScaleOne interprets inputs as normalized to [0, 1].
	ScaleOne

	// ScaleHundred interprets inputs as percentage-like values in
	// [0, 100].
	ScaleHundred
)

// String returns the scale name as used by the configuration surface:
// "reference", "1" or "100".
func (s DomainRangeScale) String() string {
	switch s {
	case ScaleOne:
		return "1"
	case ScaleHundred:
		return "100"
	default:
		return "reference"
	}
}

// ParseDomainRangeScale converts a scale name ("reference", "1", "100")
// to a DomainRangeScale. The function returns an error for any other
// name.
func ParseDomainRangeScale(name string) (DomainRangeScale, error) {
	switch name {
	case "reference", "":
		return ScaleReference, nil
	case "1":
		return ScaleOne, nil
	case "100":
		return ScaleHundred, nil
	default:
		return ScaleReference, fmt.Errorf("unknown domain-range scale %q, valid scales are: reference, 1, 100", name)
	}
}

// inputFactor returns the multiplier that brings a coordinate expressed
// under this scale back into the formula's reference units.
func (s DomainRangeScale) inputFactor(domain inputDomain) float64 {
	switch domain {
	case domainUnit:
		// Reference units already span [0, 1]; only the percentage
		// convention needs rescaling.
		if s == ScaleHundred {
			return 0.01
		}
	default:
		// Reference units span [0, 100]; only the normalized
		// convention needs rescaling.
		if s == ScaleOne {
			return 100
		}
	}
	return 1
}

// SetDomainRangeScale sets the engine's active scale. Administrative
// operation: synchronized against concurrent DeltaE calls, but not part
// of the hot path.
func (e *Engine) SetDomainRangeScale(s DomainRangeScale) {
	e.mu.Lock()
	e.scale = s
	e.mu.Unlock()
}

// DomainRangeScale returns the engine's active scale.
func (e *Engine) DomainRangeScale() DomainRangeScale {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.scale
}

// WithDomainRangeScale runs fn with the given scale active and restores
// the previous scale on exit, so scale changes nest safely.
func (e *Engine) WithDomainRangeScale(s DomainRangeScale, fn func()) {
	prev := e.DomainRangeScale()
	e.SetDomainRangeScale(s)
	defer e.SetDomainRangeScale(prev)
	fn()
}
