package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/breast-cancer-predictor/internal/features"
	"github.com/OldStager01/breast-cancer-predictor/internal/inference"
	"github.com/OldStager01/breast-cancer-predictor/internal/render"
	"github.com/OldStager01/breast-cancer-predictor/pkg/models"
)

type PredictHandler struct {
	predictor Predictor
	recorder  Recorder
}

func NewPredictHandler(predictor Predictor, recorder Recorder) *PredictHandler {
	return &PredictHandler{predictor: predictor, recorder: recorder}
}

// PredictRequest carries one value per schema feature, either keyed by name
// or as a row in schema order. Exactly one of the two must be set.
type PredictRequest struct {
	Features map[string]float64 `json:"features,omitempty" binding:"required_without=Values,dive,min=0"`
	Values   []float64          `json:"values,omitempty" binding:"required_without=Features,dive,min=0"`
}

type PredictResponse struct {
	Label             int         `json:"label" example:"1"`
	LabelName         string      `json:"label_name" example:"malignant"`
	Confidence        float64     `json:"confidence" example:"0.9977"`
	ConfidencePercent string      `json:"confidence_percent" example:"99.77%"`
	Message           string      `json:"message" example:"Prediction: Malignant (Cancerous)"`
	Tone              render.Tone `json:"tone" example:"error"`
}

// Predict classifies a single feature vector
// @Summary Predict benign or malignant
// @Description Scales the 30 features and classifies them with the loaded model
// @Tags prediction
// @Accept json
// @Produce json
// @Param request body PredictRequest true "Feature values keyed by name, or a row in schema order"
// @Success 200 {object} PredictResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/predict [post]
func (h *PredictHandler) Predict(c *gin.Context) {
	var req PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.recorder.IncPredictionErrors(reasonInvalidInput)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	if req.Features != nil && req.Values != nil {
		h.recorder.IncPredictionErrors(reasonInvalidInput)
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid request",
			Details: "set either features or values, not both",
		})
		return
	}

	run := func() (models.PredictionResult, error) {
		return h.predictor.PredictRow(req.Values)
	}
	if req.Features != nil {
		vector, err := features.Assemble(req.Features)
		if err != nil {
			h.recorder.IncPredictionErrors(reasonInvalidInput)
			c.JSON(http.StatusBadRequest, ErrorResponse{
				Error:   "invalid features",
				Details: err.Error(),
			})
			return
		}
		run = func() (models.PredictionResult, error) {
			return h.predictor.Predict(vector)
		}
	}

	result, err := predict(c, h.recorder, run)
	if errors.Is(err, inference.ErrShapeMismatch) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid values",
			Details: err.Error(),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "prediction failed",
		})
		return
	}

	verdict := render.Render(result)
	c.JSON(http.StatusOK, PredictResponse{
		Label:             int(result.Label),
		LabelName:         verdict.Label,
		Confidence:        result.Confidence,
		ConfidencePercent: verdict.Confidence,
		Message:           verdict.Message,
		Tone:              verdict.Tone,
	})
}
