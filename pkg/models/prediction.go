package models

import "fmt"

// Label is the classifier's discrete output.
type Label int

const (
	LabelBenign    Label = 0
	LabelMalignant Label = 1
)

func (l Label) String() string {
	switch l {
	case LabelBenign:
		return "benign"
	case LabelMalignant:
		return "malignant"
	default:
		return fmt.Sprintf("label(%d)", int(l))
	}
}

func (l Label) Valid() bool {
	return l == LabelBenign || l == LabelMalignant
}

// PredictionResult is the classifier's label and the probability it
// assigned to that label.
type PredictionResult struct {
	Label      Label   `json:"label" example:"1"`
	Confidence float64 `json:"confidence" example:"0.9977"`
}
