package features

// Description is the sidebar explanation for one term.
type Description struct {
	Term string
	Text string
}

var measurementText = map[string]string{
	"radius":            "Mean distance from center to perimeter",
	"texture":           "Standard deviation of pixel intensities",
	"perimeter":         "Length around the tumor",
	"area":              "Total area of the tumor",
	"smoothness":        "Consistency of the shape boundary",
	"compactness":       "Perimeter² / area - 1",
	"concavity":         "Depth of inward curves",
	"concave points":    "Number of inward points",
	"symmetry":          "How symmetrical the tumor is",
	"fractal_dimension": "Shape complexity",
}

var aggregationText = map[Aggregation]string{
	AggregationMean:  "Average across cells",
	AggregationSE:    "Standard error",
	AggregationWorst: "Worst (largest) measurement",
}

// MeasurementDescriptions lists the underlying measurements in schema order.
func MeasurementDescriptions() []Description {
	out := make([]Description, 0, len(Measurements))
	for _, m := range Measurements {
		out = append(out, Description{Term: displayTerm(m), Text: measurementText[m]})
	}
	return out
}

// SuffixDescriptions lists the aggregation suffixes in schema order.
func SuffixDescriptions() []Description {
	out := make([]Description, 0, len(Aggregations))
	for _, a := range Aggregations {
		out = append(out, Description{Term: "_" + string(a), Text: aggregationText[a]})
	}
	return out
}

func displayTerm(m string) string {
	if m == "fractal_dimension" {
		return "fractal dimension"
	}
	return m
}
