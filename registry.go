package deltae

import (
	"strings"
	"sync"
)

// DistanceFunc is the contract every registered formula satisfies: two
// broadcast-compatible colour coordinates plus the filtered parametric
// factors in, a scalar distance out. Implementations must be pure and
// deterministic.
type DistanceFunc func(a, b Triplet, p params) float64

// inputDomain describes the numeric convention of a formula's native
// input space, which determines how coordinates are rescaled under a
// non-reference DomainRangeScale.
type inputDomain int

const (
	// domainLab covers formulas whose reference inputs span roughly
	// [0, 100] (L*a*b* and CAM-UCS metrics).
	domainLab inputDomain = iota

	// domainUnit covers formulas whose reference inputs span [0, 1]
	// (the ICtCp metric).
	domainUnit
)

// Method bundles a registered formula with its canonical name, the
// option names it accepts, and its input domain. Evaluation goes
// through Engine.DeltaE, which applies option filtering and the active
// domain-range scale; a resolved Method identifies the formula that
// call will use.
type Method struct {
	name    string
	fn      DistanceFunc
	accepts map[string]struct{}
	domain  inputDomain
}

// Name returns the method's canonical name, regardless of which alias
// resolved it.
func (m *Method) Name() string { return m.name }

// Registry maps canonical method names and their aliases to formulas.
// Lookup is case-insensitive and tolerant of whitespace and punctuation,
// so "CIE 2000", "cie2000" and "cie-2000" all resolve to the same
// formula. Registration order is preserved for listing purposes only;
// lookup is not order-dependent.
type Registry struct {
	mu        sync.RWMutex
	methods   map[string]*Method // normalized name -> method
	canonical []string           // canonical names in registration order
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{methods: make(map[string]*Method)}
}

// normalizeMethodName folds a method name to the form used for lookup:
// lower case with spaces, hyphens and underscores removed.
func normalizeMethodName(name string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '\t', '-', '_':
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Register adds a formula under a canonical name with zero or more
// aliases. The accepted option names declare which parametric factors
// the dispatcher forwards to the formula; everything else is filtered
// out before invocation. Registering an existing canonical name
// replaces the previous formula.
func (r *Registry) Register(canonical string, fn DistanceFunc, domain inputDomain, aliases []string, accepts ...string) {
	m := &Method{
		name:    canonical,
		fn:      fn,
		accepts: make(map[string]struct{}, len(accepts)),
		domain:  domain,
	}
	for _, a := range accepts {
		m.accepts[a] = struct{}{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	key := normalizeMethodName(canonical)
	if _, exists := r.methods[key]; !exists {
		r.canonical = append(r.canonical, canonical)
	}
	r.methods[key] = m
	for _, alias := range aliases {
		r.methods[normalizeMethodName(alias)] = m
	}
}

// Resolve looks up a method by canonical name or alias. An unresolvable
// name yields an UnknownMethodError listing the valid canonical names.
func (r *Registry) Resolve(name string) (*Method, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if m, ok := r.methods[normalizeMethodName(name)]; ok {
		return m, nil
	}
	return nil, &UnknownMethodError{
		Method: name,
		Valid:  append([]string(nil), r.canonical...),
	}
}

// Methods returns the canonical method names in registration order.
func (r *Registry) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.canonical...)
}
