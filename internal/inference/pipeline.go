// Package inference runs one feature vector through the scaler and the
// classifier.
package inference

import (
	"fmt"

	"github.com/OldStager01/breast-cancer-predictor/internal/artifacts"
	"github.com/OldStager01/breast-cancer-predictor/internal/features"
	"github.com/OldStager01/breast-cancer-predictor/internal/model"
	"github.com/OldStager01/breast-cancer-predictor/pkg/models"
)

// ErrShapeMismatch is returned when a row does not have one value per feature.
var ErrShapeMismatch = model.ErrShapeMismatch

// Pipeline is stateless past construction and safe for concurrent use.
type Pipeline struct {
	scaler     model.Transformer
	classifier model.Classifier
}

func New(a *artifacts.Artifacts) *Pipeline {
	return &Pipeline{
		scaler:     a.Scaler(),
		classifier: a.Classifier(),
	}
}

// Predict scales v, classifies it and reports the probability of the
// predicted label.
func (p *Pipeline) Predict(v features.Vector) (models.PredictionResult, error) {
	scaled, err := p.scaler.Transform(v.Row())
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("scale: %w", err)
	}

	labels, err := p.classifier.Predict(scaled)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("predict: %w", err)
	}
	label := labels[0]

	proba, err := p.classifier.PredictProba(scaled)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("predict proba: %w", err)
	}

	col := classColumn(p.classifier.Classes(), label)
	if col < 0 || !models.Label(label).Valid() {
		return models.PredictionResult{}, fmt.Errorf("classifier returned unknown label %d", label)
	}

	return models.PredictionResult{
		Label:      models.Label(label),
		Confidence: proba.At(0, col),
	}, nil
}

// PredictRow is Predict for a row given in schema order, as the JSON API
// accepts it. The row is never padded or truncated.
func (p *Pipeline) PredictRow(row []float64) (models.PredictionResult, error) {
	if len(row) != features.Count {
		return models.PredictionResult{}, fmt.Errorf("%w: got %d features, expected %d",
			ErrShapeMismatch, len(row), features.Count)
	}
	var v features.Vector
	copy(v[:], row)
	return p.Predict(v)
}

func classColumn(classes []int, label int) int {
	for i, c := range classes {
		if c == label {
			return i
		}
	}
	return -1
}
