package deltae

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTripletsFromFloats(t *testing.T) {
	triplets, err := TripletsFromFloats([]float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, []Triplet{{1, 2, 3}, {4, 5, 6}}, triplets)

	empty, err := TripletsFromFloats(nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTripletsFromFloatsBadShape(t *testing.T) {
	_, err := TripletsFromFloats([]float64{1, 2, 3, 4})
	require.Error(t, err)

	var shape *InvalidShapeError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, 4, shape.LenA)
}

func TestTripletHueDegrees(t *testing.T) {
	tests := []struct {
		lab  Triplet
		want float64
	}{
		{Triplet{50, 1, 0}, 0},
		{Triplet{50, 0, 1}, 90},
		{Triplet{50, -1, 0}, 180},
		{Triplet{50, 0, -1}, 270},
		{Triplet{50, 0, 0}, 0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, tt.lab.hueDegrees(), 1e-12)
	}
}

func TestTripletChroma(t *testing.T) {
	assert.Equal(t, 5.0, Triplet{10, 3, 4}.chroma())
	assert.Equal(t, 0.0, Triplet{10, 0, 0}.chroma())
}

func TestBroadcast(t *testing.T) {
	a := []Triplet{{1, 0, 0}}
	b := []Triplet{{0, 0, 0}, {2, 0, 0}}

	aa, bb, err := broadcast(a, b)
	require.NoError(t, err)
	assert.Equal(t, []Triplet{{1, 0, 0}, {1, 0, 0}}, aa)
	assert.Equal(t, b, bb)

	_, _, err = broadcast(b, append(b, Triplet{}))
	var shape *InvalidShapeError
	require.True(t, errors.As(err, &shape))
}
