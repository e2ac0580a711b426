// Package render turns a prediction into the text shown to the user.
package render

import (
	"fmt"

	"github.com/OldStager01/breast-cancer-predictor/pkg/models"
)

type Tone string

const (
	ToneSuccess Tone = "success"
	ToneError   Tone = "error"
)

const (
	BenignMessage    = "Prediction: Benign (Non-cancerous)"
	MalignantMessage = "Prediction: Malignant (Cancerous)"
)

// Verdict is the presentational form of a PredictionResult.
type Verdict struct {
	Label      string `json:"label" example:"malignant"`
	Message    string `json:"message" example:"Prediction: Malignant (Cancerous)"`
	Tone       Tone   `json:"tone" example:"error"`
	Confidence string `json:"confidence" example:"87.16%"`
}

func Render(r models.PredictionResult) Verdict {
	v := Verdict{
		Label:      r.Label.String(),
		Confidence: FormatConfidence(r.Confidence),
	}
	if r.Label == models.LabelBenign {
		v.Message = BenignMessage
		v.Tone = ToneSuccess
	} else {
		v.Message = MalignantMessage
		v.Tone = ToneError
	}
	return v
}

// FormatConfidence renders a probability as a percentage with two decimals.
func FormatConfidence(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}
