package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OldStager01/breast-cancer-predictor/api/handlers"
	"github.com/OldStager01/breast-cancer-predictor/internal/artifacts"
	"github.com/OldStager01/breast-cancer-predictor/internal/features"
	"github.com/OldStager01/breast-cancer-predictor/internal/metrics"
	"github.com/OldStager01/breast-cancer-predictor/pkg/config"
)

func testConfig(artifactDir string) *config.Config {
	cfg := config.Default()
	cfg.App.Mode = "test"
	cfg.Artifacts.Dir = artifactDir
	return cfg
}

func newServer(t *testing.T, artifactDir string) *Server {
	t.Helper()
	cfg := testConfig(artifactDir)
	arts, loadErr := artifacts.Load(cfg.Artifacts)
	s, err := NewServer(cfg, arts, loadErr, metrics.New())
	require.NoError(t, err)
	return s
}

// Rows of the Wisconsin Diagnostic Breast Cancer dataset in schema order.
var (
	row842302  = []float64{17.99, 10.38, 122.8, 1001, 0.1184, 0.2776, 0.3001, 0.1471, 0.2419, 0.07871, 1.095, 0.9053, 8.589, 153.4, 0.006399, 0.04904, 0.05373, 0.01587, 0.03003, 0.006193, 25.38, 17.33, 184.6, 2019, 0.1622, 0.6656, 0.7119, 0.2654, 0.4601, 0.1189}
	row8510426 = []float64{13.54, 14.36, 87.46, 566.3, 0.09779, 0.08129, 0.06664, 0.04781, 0.1885, 0.05766, 0.2699, 0.7886, 2.058, 23.56, 0.008462, 0.0146, 0.02387, 0.01315, 0.0198, 0.0023, 15.11, 19.26, 99.7, 711.2, 0.144, 0.1773, 0.239, 0.1288, 0.2977, 0.07259}
)

func rowForm(row []float64) url.Values {
	form := url.Values{}
	for i, name := range features.Names() {
		form.Set(name, strconv.FormatFloat(row[i], 'g', -1, 64))
	}
	return form
}

func referenceForm(overrides map[string]string) url.Values {
	form := url.Values{}
	for _, name := range features.Names() {
		form.Set(name, "1.0")
	}
	for k, v := range overrides {
		form.Set(k, v)
	}
	return form
}

func submit(s *Server, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestServer_EndToEndDiagnoses(t *testing.T) {
	s := newServer(t, filepath.Join("..", "models"))
	require.False(t, s.Blocked())

	tests := []struct {
		name          string
		form          url.Values
		expectMessage string
	}{
		{
			name:          "malignant sample 842302",
			form:          rowForm(row842302),
			expectMessage: "Prediction: Malignant (Cancerous)",
		},
		{
			name:          "benign sample 8510426",
			form:          rowForm(row8510426),
			expectMessage: "Prediction: Benign (Non-cancerous)",
		},
		{
			name: "large mean measurements over default padding",
			form: referenceForm(map[string]string{
				"radius_mean": "17.99", "texture_mean": "10.38", "perimeter_mean": "122.8", "area_mean": "1001.0",
			}),
			expectMessage: "Prediction: Malignant (Cancerous)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := submit(s, tt.form)

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Contains(t, body, tt.expectMessage)
			assert.Contains(t, body, "Confidence: <code>")
		})
	}
}

func TestServer_JSONPredict(t *testing.T) {
	s := newServer(t, filepath.Join("..", "models"))

	byName := make(map[string]float64, features.Count)
	for i, name := range features.Names() {
		byName[name] = row842302[i]
	}

	tests := []struct {
		name        string
		request     handlers.PredictRequest
		expectLabel int
	}{
		{name: "features by name", request: handlers.PredictRequest{Features: byName}, expectLabel: 1},
		{name: "values row", request: handlers.PredictRequest{Values: row8510426}, expectLabel: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.request)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/predict", strings.NewReader(string(data)))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			s.Router().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			var resp handlers.PredictResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectLabel, resp.Label)
			assert.GreaterOrEqual(t, resp.Confidence, 0.5)
			assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
		})
	}
}

func TestServer_BlockedWhenArtifactMissing(t *testing.T) {
	s := newServer(t, t.TempDir())
	require.True(t, s.Blocked())

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, `role="alert"`))
	assert.NotContains(t, body, "<form")

	rec = submit(s, referenceForm(nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Prediction: Malignant")

	rec = httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_AuxiliaryRoutes(t *testing.T) {
	s := newServer(t, filepath.Join("..", "models"))

	for _, path := range []string{"/metrics", "/api/v1/features", "/static/app.css", "/health/live", "/swagger/index.html"} {
		rec := httptest.NewRecorder()
		s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}

	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "predictor_artifacts_loaded 1")
}
