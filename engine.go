// Package deltae computes perceptual colour-difference metrics between
// pairs of colour coordinates. A single dispatch entry point selects
// among the standardized formulas (CIE 1976/1994/2000, CMC, DIN99, ITP,
// HyAB, HyCH and the CAM02/CAM16 uniform-space metrics) by name, with
// case- and punctuation-insensitive aliasing, per-formula parametric
// factors, and a process-wide domain-range scale that lets callers work
// in normalized or percentage numeric conventions.
package deltae

import "sync"

// DefaultMethod is the formula selected when no method name is given.
const DefaultMethod = "CIE 2000"

// Engine bundles a method registry with an active domain-range scale.
// All evaluation is pure; the only mutable state is the scale and the
// registry contents, both of which are read-mostly after startup and
// guarded for concurrent use. Multiple independent engines may coexist,
// e.g. for tests that change scales without affecting the default.
type Engine struct {
	registry *Registry

	mu    sync.RWMutex
	scale DomainRangeScale
}

// EngineOption is a functional option for configuring an Engine.
type EngineOption func(*Engine)

// WithScale sets the initial domain-range scale.
func WithScale(s DomainRangeScale) EngineOption {
	return func(e *Engine) { e.scale = s }
}

// NewEngine creates an Engine with every built-in formula registered
// and the reference scale active.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{registry: NewRegistry()}
	registerBuiltins(e.registry)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// registerBuiltins populates a registry with the standard formula set.
// Canonical names and the lowercase aliases follow the historical
// naming of the metrics.
func registerBuiltins(r *Registry) {
	r.Register("CIE 1976", cie1976, domainLab, []string{"cie1976"})
	r.Register("CIE 1994", cie1994, domainLab, []string{"cie1994"}, optTextiles)
	r.Register("CIE 2000", cie2000, domainLab, []string{"cie2000"}, optTextiles)
	r.Register("CMC", cmc, domainLab, nil, optLightness, optChroma)
	r.Register("ITP", itp, domainUnit, nil)
	r.Register("CAM02-LCD", cam02LCD, domainLab, nil)
	r.Register("CAM02-SCD", cam02SCD, domainLab, nil)
	r.Register("CAM02-UCS", cam02UCS, domainLab, nil)
	r.Register("CAM16-LCD", cam16LCD, domainLab, nil)
	r.Register("CAM16-SCD", cam16SCD, domainLab, nil)
	r.Register("CAM16-UCS", cam16UCS, domainLab, nil)
	r.Register("DIN99", din99, domainLab, nil, optTextiles)
	r.Register("HyAB", hyAB, domainLab, nil)
	r.Register("HyCH", hyCH, domainLab, nil, optCoefficient, optExponent)
}

// Registry exposes the engine's method registry so callers can register
// additional formulas or list the valid names.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// DeltaE returns the colour difference between two coordinates using
// the named method. An empty method name selects DefaultMethod. Options
// not accepted by the resolved formula are silently dropped. The only
// failure mode on this path is an UnknownMethodError for a name that
// does not resolve.
func (e *Engine) DeltaE(a, b Triplet, methodName string, opts ...Option) (float64, error) {
	if methodName == "" {
		methodName = DefaultMethod
	}
	m, err := e.registry.Resolve(methodName)
	if err != nil {
		return 0, err
	}
	p := filterOptions(m.accepts, opts)
	factor := e.DomainRangeScale().inputFactor(m.domain)
	if factor != 1 {
		a = a.scaled(factor)
		b = b.scaled(factor)
	}
	return m.fn(a, b, p), nil
}

// DeltaEBatch evaluates the named method over two coordinate batches
// under broadcasting rules (equal lengths, or either side of length
// one) and returns one distance per broadcast pair. Incompatible
// lengths yield an InvalidShapeError.
func (e *Engine) DeltaEBatch(a, b []Triplet, methodName string, opts ...Option) ([]float64, error) {
	if methodName == "" {
		methodName = DefaultMethod
	}
	m, err := e.registry.Resolve(methodName)
	if err != nil {
		return nil, err
	}
	aa, bb, err := broadcast(a, b)
	if err != nil {
		return nil, err
	}
	p := filterOptions(m.accepts, opts)
	factor := e.DomainRangeScale().inputFactor(m.domain)
	out := make([]float64, len(aa))
	for i := range aa {
		x, y := aa[i], bb[i]
		if factor != 1 {
			x = x.scaled(factor)
			y = y.scaled(factor)
		}
		out[i] = m.fn(x, y, p)
	}
	return out, nil
}

// defaultEngine backs the package-level convenience API.
var defaultEngine = NewEngine()

// Default returns the package-level engine used by the top-level DeltaE
// function.
func Default() *Engine {
	return defaultEngine
}

// DeltaE returns the colour difference between two coordinates using
// the named method on the package-level engine. See Engine.DeltaE.
func DeltaE(a, b Triplet, methodName string, opts ...Option) (float64, error) {
	return defaultEngine.DeltaE(a, b, methodName, opts...)
}
