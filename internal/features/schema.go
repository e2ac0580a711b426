// Package features defines the ordered tumor-measurement schema that the
// scaler and classifier were fitted on.
package features

import (
	"errors"
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Count is the number of features in the schema.
const Count = 30

const (
	DefaultValue = 1.0
	MinValue     = 0.0
)

var (
	ErrUnknownFeature = errors.New("unknown feature")
	ErrMissingFeature = errors.New("missing feature")
)

type Aggregation string

const (
	AggregationMean  Aggregation = "mean"
	AggregationSE    Aggregation = "se"
	AggregationWorst Aggregation = "worst"
)

// Aggregations in schema order. Each group holds every measurement once.
var Aggregations = []Aggregation{AggregationMean, AggregationSE, AggregationWorst}

// Measurements in schema order within each aggregation group.
var Measurements = []string{
	"radius",
	"texture",
	"perimeter",
	"area",
	"smoothness",
	"compactness",
	"concavity",
	"concave points",
	"symmetry",
	"fractal_dimension",
}

// GroupSize is the number of features per aggregation group.
var GroupSize = len(Measurements)

var names = buildNames()

var index = func() map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i
	}
	return m
}()

func buildNames() []string {
	out := make([]string, 0, len(Aggregations)*len(Measurements))
	for _, agg := range Aggregations {
		for _, m := range Measurements {
			out = append(out, m+"_"+string(agg))
		}
	}
	return out
}

// Names returns the feature names in fitted order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Name returns the feature name at position i.
func Name(i int) string {
	return names[i]
}

// Split returns the measurement and aggregation parts of a feature name.
func Split(name string) (string, Aggregation, error) {
	if _, ok := index[name]; !ok {
		return "", "", fmt.Errorf("%w: %q", ErrUnknownFeature, name)
	}
	cut := strings.LastIndex(name, "_")
	return name[:cut], Aggregation(name[cut+1:]), nil
}

// Vector holds one value per feature, index-aligned to Names.
type Vector [Count]float64

// Defaults returns a vector with every feature at DefaultValue.
func Defaults() Vector {
	var v Vector
	for i := range v {
		v[i] = DefaultValue
	}
	return v
}

// Assemble builds a vector by walking the schema, so map iteration order
// never leaks into feature order.
func Assemble(values map[string]float64) (Vector, error) {
	var v Vector
	for name := range values {
		if _, ok := index[name]; !ok {
			return v, fmt.Errorf("%w: %q", ErrUnknownFeature, name)
		}
	}
	for i, name := range names {
		val, ok := values[name]
		if !ok {
			return v, fmt.Errorf("%w: %q", ErrMissingFeature, name)
		}
		v[i] = val
	}
	return v, nil
}

// Row returns the vector as a single-row matrix.
func (v Vector) Row() *mat.Dense {
	data := make([]float64, Count)
	copy(data, v[:])
	return mat.NewDense(1, Count, data)
}
