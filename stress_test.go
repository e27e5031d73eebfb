package deltae

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexStressGarcia2007(t *testing.T) {
	dE := []float64{2.5, 1.5, 3.0, 0.5}
	dV := []float64{2.0, 1.0, 3.5, 0.8}

	stress, err := IndexStressGarcia2007(dE, dV)
	require.NoError(t, err)
	assert.InDelta(t, 21.579582087694362, stress, 1e-9)
}

func TestIndexStressPerfectAgreement(t *testing.T) {
	// Proportional vectors have zero residual, so the index vanishes
	// regardless of the proportionality constant.
	dE := []float64{1, 2, 3, 4}
	dV := []float64{2, 4, 6, 8}

	stress, err := IndexStressGarcia2007(dE, dV)
	require.NoError(t, err)
	assert.InDelta(t, 0, stress, 1e-12)
}

func TestIndexStressShapeErrors(t *testing.T) {
	_, err := IndexStressGarcia2007([]float64{1, 2}, []float64{1})
	var shape *InvalidShapeError
	require.True(t, errors.As(err, &shape))

	_, err = IndexStressGarcia2007(nil, nil)
	require.True(t, errors.As(err, &shape))
}

func TestIndexStressUndefinedRegression(t *testing.T) {
	// All-zero computed differences against non-zero visual data leave
	// the regression factor without a value; that surfaces as a defined
	// error, never a NaN result.
	_, err := IndexStressGarcia2007([]float64{0, 0, 0}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrStressUndefined)

	_, err = IndexStressGarcia2007([]float64{1, 2, 3}, []float64{0, 0, 0})
	require.ErrorIs(t, err, ErrStressUndefined)
}

func TestIndexStressDispatch(t *testing.T) {
	dE := []float64{1, 2, 3}
	dV := []float64{1.1, 1.9, 3.2}

	byName, err := IndexStress(dE, dV, "Garcia 2007")
	require.NoError(t, err)

	byDefault, err := IndexStress(dE, dV, "")
	require.NoError(t, err)
	assert.Equal(t, byName, byDefault)

	byAlias, err := IndexStress(dE, dV, "garcia2007")
	require.NoError(t, err)
	assert.Equal(t, byName, byAlias)

	_, err = IndexStress(dE, dV, "Garcia 1999")
	var unknown *UnknownMethodError
	require.True(t, errors.As(err, &unknown))
	assert.Contains(t, unknown.Valid, "Garcia 2007")
}
