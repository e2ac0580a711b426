package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StandardScaler centers each column on Mean and divides by Scale.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

// NewStandardScaler copies the fitted parameters. A zero scale is treated
// as 1, matching how the fitting side stores constant columns.
func NewStandardScaler(mean, scale []float64) (*StandardScaler, error) {
	if len(mean) == 0 {
		return nil, fmt.Errorf("%w: scaler has no features", ErrShapeMismatch)
	}
	if len(mean) != len(scale) {
		return nil, fmt.Errorf("%w: mean has %d entries, scale has %d", ErrShapeMismatch, len(mean), len(scale))
	}
	s := &StandardScaler{
		mean:  make([]float64, len(mean)),
		scale: make([]float64, len(scale)),
	}
	copy(s.mean, mean)
	for j, v := range scale {
		if v == 0 {
			v = 1
		}
		s.scale[j] = v
	}
	return s, nil
}

func (s *StandardScaler) NFeatures() int {
	return len(s.mean)
}

func (s *StandardScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if err := checkColumns(X, len(s.mean)); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, v float64) float64 {
		return (v - s.mean[j]) / s.scale[j]
	}, X)
	return out, nil
}
