package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/breast-cancer-predictor/internal/features"
	"github.com/OldStager01/breast-cancer-predictor/internal/inference"
	"github.com/OldStager01/breast-cancer-predictor/internal/logger"
	"github.com/OldStager01/breast-cancer-predictor/pkg/models"
)

// Predictor classifies one feature vector, typed or as a raw row in schema
// order.
type Predictor interface {
	Predict(v features.Vector) (models.PredictionResult, error)
	PredictRow(row []float64) (models.PredictionResult, error)
}

// Recorder receives prediction outcomes.
type Recorder interface {
	ObservePrediction(result models.PredictionResult, elapsed time.Duration)
	IncPredictionErrors(reason string)
}

const (
	reasonInvalidInput = "invalid_input"
	reasonInternal     = "internal"
	reasonUnavailable  = "artifacts_unavailable"
)

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid request"`
	Details string `json:"details,omitempty" example:"Key: 'PredictRequest.Features' Error:Field validation for 'Features' failed on the 'required_without' tag"`
}

// predict times and records a single prediction. Shape errors count as
// invalid input; anything else is internal.
func predict(c *gin.Context, rec Recorder, run func() (models.PredictionResult, error)) (models.PredictionResult, error) {
	start := time.Now()
	result, err := run()
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, inference.ErrShapeMismatch) {
			rec.IncPredictionErrors(reasonInvalidInput)
			logger.WarnCtx(c.Request.Context(), "prediction rejected: "+err.Error())
			return models.PredictionResult{}, err
		}
		rec.IncPredictionErrors(reasonInternal)
		logger.ErrorCtxf(c.Request.Context(), "prediction failed: %v", err)
		return models.PredictionResult{}, err
	}

	rec.ObservePrediction(result, elapsed)
	logger.WithFields(map[string]interface{}{
		"trace_id":   logger.TraceIDFromContext(c.Request.Context()),
		"label":      result.Label.String(),
		"confidence": result.Confidence,
		"latency_us": elapsed.Microseconds(),
	}).Info("prediction served")
	return result, nil
}
