// Package model holds pre-fitted inference primitives. Fitting happens
// elsewhere; these types only apply exported parameters.
package model

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var ErrShapeMismatch = errors.New("shape mismatch")

// Transformer is a fitted preprocessing step.
type Transformer interface {
	Transform(X mat.Matrix) (*mat.Dense, error)
	NFeatures() int
}

// Classifier is a fitted binary classifier. PredictProba returns one
// column per class, in class order.
type Classifier interface {
	Predict(X mat.Matrix) ([]int, error)
	PredictProba(X mat.Matrix) (*mat.Dense, error)
	Classes() []int
	NFeatures() int
}

func checkColumns(X mat.Matrix, want int) error {
	_, c := X.Dims()
	if c != want {
		return fmt.Errorf("%w: got %d features, expected %d", ErrShapeMismatch, c, want)
	}
	return nil
}
