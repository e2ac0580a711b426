package docs

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"

	"github.com/OldStager01/breast-cancer-predictor/api/handlers"
)

type swaggerDoc struct {
	Paths       map[string]map[string]json.RawMessage `json:"paths"`
	Definitions map[string]struct {
		Required   []string                   `json:"required"`
		Properties map[string]json.RawMessage `json:"properties"`
	} `json:"definitions"`
}

func readDoc(t *testing.T) swaggerDoc {
	t.Helper()
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc swaggerDoc
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func jsonFields(v interface{}) []string {
	var names []string
	typ := reflect.TypeOf(v)
	for i := 0; i < typ.NumField(); i++ {
		name := strings.Split(typ.Field(i).Tag.Get("json"), ",")[0]
		names = append(names, name)
	}
	return names
}

func TestDoc_Routes(t *testing.T) {
	doc := readDoc(t)

	assert.Contains(t, doc.Paths["/api/v1/predict"], "post")
	assert.Contains(t, doc.Paths["/api/v1/features"], "get")
	assert.Contains(t, doc.Paths["/health"], "get")
}

func TestDoc_DefinitionsMatchHandlerTypes(t *testing.T) {
	doc := readDoc(t)

	tests := []struct {
		definition string
		value      interface{}
	}{
		{"handlers.PredictRequest", handlers.PredictRequest{}},
		{"handlers.PredictResponse", handlers.PredictResponse{}},
		{"handlers.ErrorResponse", handlers.ErrorResponse{}},
		{"handlers.FeaturesResponse", handlers.FeaturesResponse{}},
		{"handlers.FeatureInfo", handlers.FeatureInfo{}},
		{"handlers.HealthResponse", handlers.HealthResponse{}},
	}

	for _, tt := range tests {
		t.Run(tt.definition, func(t *testing.T) {
			def, ok := doc.Definitions[tt.definition]
			require.True(t, ok)

			var got []string
			for name := range def.Properties {
				got = append(got, name)
			}
			assert.ElementsMatch(t, jsonFields(tt.value), got)
		})
	}
}

func TestDoc_PredictRequestHasNoRequiredField(t *testing.T) {
	doc := readDoc(t)

	assert.Empty(t, doc.Definitions["handlers.PredictRequest"].Required)
}
