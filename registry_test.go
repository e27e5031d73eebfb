package deltae

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMethodName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"CIE 2000", "cie2000"},
		{"cie-2000", "cie2000"},
		{"CIE_2000", "cie2000"},
		{"CAM02-UCS", "cam02ucs"},
		{"HyAB", "hyab"},
		{" DIN99 ", "din99"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeMethodName(tt.in), tt.in)
	}
}

func TestRegistryMethodsOrder(t *testing.T) {
	names := Default().Registry().Methods()

	// Canonical listing preserves registration order; aliases never
	// appear in it.
	require.NotEmpty(t, names)
	assert.Equal(t, "CIE 1976", names[0])
	assert.Equal(t, "CIE 1994", names[1])
	assert.Equal(t, "CIE 2000", names[2])
	assert.NotContains(t, names, "cie2000")
}

func TestRegistryCustomMethod(t *testing.T) {
	r := NewRegistry()
	r.Register("Manhattan", func(a, b Triplet, _ params) float64 {
		var sum float64
		for i := 0; i < 3; i++ {
			d := a[i] - b[i]
			if d < 0 {
				d = -d
			}
			sum += d
		}
		return sum
	}, domainLab, []string{"l1"})

	m, err := r.Resolve("manhattan")
	require.NoError(t, err)
	assert.Equal(t, "Manhattan", m.Name())

	byAlias, err := r.Resolve("L1")
	require.NoError(t, err)
	assert.Same(t, m, byAlias)

	assert.Equal(t, 6.0, m.fn(Triplet{1, 2, 3}, Triplet{2, 4, 6}, defaultParams()))
}

func TestRegistryReplaceKeepsSingleListing(t *testing.T) {
	r := NewRegistry()
	r.Register("Custom", func(a, b Triplet, _ params) float64 { return 1 }, domainLab, nil)
	r.Register("Custom", func(a, b Triplet, _ params) float64 { return 2 }, domainLab, nil)

	assert.Equal(t, []string{"Custom"}, r.Methods())

	m, err := r.Resolve("custom")
	require.NoError(t, err)
	assert.Equal(t, 2.0, m.fn(Triplet{}, Triplet{}, defaultParams()))
}

func TestResolveReportsCanonicalName(t *testing.T) {
	// A Method resolved through any alias identifies itself by its
	// canonical name.
	for _, alias := range []string{"CIE 2000", "cie2000", "cie-2000"} {
		m, err := Default().Registry().Resolve(alias)
		require.NoError(t, err, alias)
		assert.Equal(t, "CIE 2000", m.Name(), alias)
	}
}

func TestRegistryUnknownListsCanonicalNames(t *testing.T) {
	_, err := Default().Registry().Resolve("nope")
	require.Error(t, err)

	unknown, ok := err.(*UnknownMethodError)
	require.True(t, ok)
	assert.Equal(t, Default().Registry().Methods(), unknown.Valid)
}
