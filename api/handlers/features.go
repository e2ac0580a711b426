package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/breast-cancer-predictor/internal/features"
)

type FeatureInfo struct {
	Index       int     `json:"index" example:"0"`
	Name        string  `json:"name" example:"radius_mean"`
	Measurement string  `json:"measurement" example:"radius"`
	Aggregation string  `json:"aggregation" example:"mean"`
	Default     float64 `json:"default" example:"1"`
	Min         float64 `json:"min" example:"0"`
}

type FeaturesResponse struct {
	Count    int           `json:"count" example:"30"`
	Features []FeatureInfo `json:"features"`
}

// ListFeatures returns the feature schema
// @Summary List input features
// @Description Returns the 30 features in the order the model expects them
// @Tags prediction
// @Produce json
// @Success 200 {object} FeaturesResponse
// @Router /api/v1/features [get]
func ListFeatures(c *gin.Context) {
	names := features.Names()
	out := make([]FeatureInfo, 0, len(names))
	for i, name := range names {
		measurement, agg, _ := features.Split(name)
		out = append(out, FeatureInfo{
			Index:       i,
			Name:        name,
			Measurement: measurement,
			Aggregation: string(agg),
			Default:     features.DefaultValue,
			Min:         features.MinValue,
		})
	}
	c.JSON(http.StatusOK, FeaturesResponse{Count: len(out), Features: out})
}
