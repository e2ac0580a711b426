package model

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// LogisticRegression is a fitted binary logistic model.
type LogisticRegression struct {
	coef      *mat.VecDense
	intercept float64
	classes   []int
}

func NewLogisticRegression(coef []float64, intercept float64, classes []int) (*LogisticRegression, error) {
	if len(coef) == 0 {
		return nil, fmt.Errorf("%w: classifier has no coefficients", ErrShapeMismatch)
	}
	if len(classes) != 2 {
		return nil, fmt.Errorf("binary classifier needs 2 classes, got %d", len(classes))
	}
	w := make([]float64, len(coef))
	copy(w, coef)
	cl := make([]int, 2)
	copy(cl, classes)
	return &LogisticRegression{
		coef:      mat.NewVecDense(len(w), w),
		intercept: intercept,
		classes:   cl,
	}, nil
}

func (m *LogisticRegression) NFeatures() int {
	return m.coef.Len()
}

func (m *LogisticRegression) Classes() []int {
	out := make([]int, len(m.classes))
	copy(out, m.classes)
	return out
}

// DecisionFunction returns X·coef + intercept for each row.
func (m *LogisticRegression) DecisionFunction(X mat.Matrix) ([]float64, error) {
	if err := checkColumns(X, m.coef.Len()); err != nil {
		return nil, err
	}
	r, _ := X.Dims()
	var z mat.VecDense
	z.MulVec(X, m.coef)
	out := make([]float64, r)
	for i := range out {
		out[i] = z.AtVec(i) + m.intercept
	}
	return out, nil
}

// Predict picks the second class when the decision value is positive.
func (m *LogisticRegression) Predict(X mat.Matrix) ([]int, error) {
	z, err := m.DecisionFunction(X)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(z))
	for i, v := range z {
		if v > 0 {
			out[i] = m.classes[1]
		} else {
			out[i] = m.classes[0]
		}
	}
	return out, nil
}

func (m *LogisticRegression) PredictProba(X mat.Matrix) (*mat.Dense, error) {
	z, err := m.DecisionFunction(X)
	if err != nil {
		return nil, err
	}
	out := mat.NewDense(len(z), 2, nil)
	for i, v := range z {
		p := sigmoid(v)
		out.Set(i, 0, 1-p)
		out.Set(i, 1, p)
	}
	return out, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
