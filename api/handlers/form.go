package handlers

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/OldStager01/breast-cancer-predictor/internal/features"
	"github.com/OldStager01/breast-cancer-predictor/internal/logger"
	"github.com/OldStager01/breast-cancer-predictor/internal/render"
	"github.com/OldStager01/breast-cancer-predictor/pkg/models"
)

// FormHandler serves the input form and the result of an explicit Predict.
type FormHandler struct {
	predictor Predictor
	recorder  Recorder
}

func NewFormHandler(predictor Predictor, recorder Recorder) *FormHandler {
	return &FormHandler{predictor: predictor, recorder: recorder}
}

func (h *FormHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", newPageView(defaultValues(), nil))
}

func (h *FormHandler) Predict(c *gin.Context) {
	vector, raw, invalid, errs := parseForm(c)
	if len(errs) > 0 {
		h.recorder.IncPredictionErrors(reasonInvalidInput)
		logger.WarnCtx(c.Request.Context(), "prediction form rejected")
		view := newPageView(raw, invalid)
		view.Errors = errs
		c.HTML(http.StatusBadRequest, "index.tmpl", view)
		return
	}

	view := newPageView(raw, nil)
	result, err := predict(c, h.recorder, func() (models.PredictionResult, error) {
		return h.predictor.Predict(vector)
	})
	if err != nil {
		view.Errors = []string{"Prediction failed. Please try again later."}
		c.HTML(http.StatusInternalServerError, "index.tmpl", view)
		return
	}

	verdict := render.Render(result)
	view.Phase = PhaseShowingResult
	view.Result = &verdict
	c.HTML(http.StatusOK, "index.tmpl", view)
}

// parseForm reads one value per feature in schema order. Rejected fields
// keep the submitted text so the user can correct it.
func parseForm(c *gin.Context) (features.Vector, [features.Count]string, map[int]bool, []string) {
	var (
		vector  features.Vector
		raw     [features.Count]string
		invalid = make(map[int]bool)
		errs    []string
	)

	for i, name := range features.Names() {
		text, ok := c.GetPostForm(name)
		text = strings.TrimSpace(text)
		raw[i] = text

		if !ok || text == "" {
			invalid[i] = true
			errs = append(errs, fmt.Sprintf("%s is required", name))
			continue
		}

		v, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			invalid[i] = true
			errs = append(errs, fmt.Sprintf("%s must be a number", name))
			continue
		}
		if v < features.MinValue {
			invalid[i] = true
			errs = append(errs, fmt.Sprintf("%s must be at least %s", name, formatValue(features.MinValue)))
			continue
		}

		vector[i] = v
		raw[i] = formatValue(v)
	}

	return vector, raw, invalid, errs
}
