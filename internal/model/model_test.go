package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestStandardScaler_Transform(t *testing.T) {
	s, err := NewStandardScaler([]float64{10, 0.5, 3}, []float64{2, 0.25, 0})
	require.NoError(t, err)

	X := mat.NewDense(2, 3, []float64{
		14, 0.5, 5,
		10, 1.0, 3,
	})

	out, err := s.Transform(X)
	require.NoError(t, err)

	want := mat.NewDense(2, 3, []float64{
		2, 0, 2,
		0, 2, 0,
	})
	assert.True(t, mat.EqualApprox(want, out, 1e-12), "got %v", mat.Formatted(out))
	// input untouched
	assert.Equal(t, 14.0, X.At(0, 0))
}

func TestStandardScaler_Errors(t *testing.T) {
	_, err := NewStandardScaler([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewStandardScaler(nil, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	s, err := NewStandardScaler([]float64{1, 2}, []float64{1, 1})
	require.NoError(t, err)
	_, err = s.Transform(mat.NewDense(1, 3, []float64{1, 2, 3}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestLogisticRegression_PredictAndProba(t *testing.T) {
	m, err := NewLogisticRegression([]float64{2, -1}, 0.5, []int{0, 1})
	require.NoError(t, err)

	X := mat.NewDense(3, 2, []float64{
		1, 0,   // z = 2.5
		0, 3,   // z = -2.5
		0, 0.5, // z = 0
	})

	labels, err := m.Predict(X)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 0}, labels)

	proba, err := m.PredictProba(X)
	require.NoError(t, err)

	r, c := proba.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)

	p := 1 / (1 + math.Exp(-2.5))
	assert.InDelta(t, p, proba.At(0, 1), 1e-12)
	assert.InDelta(t, 1-p, proba.At(0, 0), 1e-12)
	assert.InDelta(t, 1-p, proba.At(1, 1), 1e-12)
	assert.InDelta(t, 0.5, proba.At(2, 1), 1e-12)

	for i := 0; i < r; i++ {
		assert.InDelta(t, 1.0, proba.At(i, 0)+proba.At(i, 1), 1e-12)
	}
}

func TestLogisticRegression_ExtremeDecisionValues(t *testing.T) {
	m, err := NewLogisticRegression([]float64{1}, 0, []int{0, 1})
	require.NoError(t, err)

	proba, err := m.PredictProba(mat.NewDense(2, 1, []float64{-800, 800}))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v := proba.At(i, j)
			assert.False(t, math.IsNaN(v))
			assert.GreaterOrEqual(t, v, 0.0)
			assert.LessOrEqual(t, v, 1.0)
		}
	}
	assert.Equal(t, 1.0, proba.At(1, 1))
}

func TestLogisticRegression_Errors(t *testing.T) {
	_, err := NewLogisticRegression([]float64{1}, 0, []int{0, 1, 2})
	assert.Error(t, err)

	_, err = NewLogisticRegression(nil, 0, []int{0, 1})
	assert.ErrorIs(t, err, ErrShapeMismatch)

	m, err := NewLogisticRegression([]float64{1, 1}, 0, []int{0, 1})
	require.NoError(t, err)

	_, err = m.Predict(mat.NewDense(1, 3, []float64{1, 2, 3}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
	_, err = m.PredictProba(mat.NewDense(1, 1, []float64{1}))
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestLogisticRegression_ClassesCopy(t *testing.T) {
	m, err := NewLogisticRegression([]float64{1}, 0, []int{0, 1})
	require.NoError(t, err)

	c := m.Classes()
	c[0] = 7

	assert.Equal(t, []int{0, 1}, m.Classes())
}
