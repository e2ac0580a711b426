package handlers

import (
	"fmt"
	"strconv"

	"github.com/OldStager01/breast-cancer-predictor/internal/features"
	"github.com/OldStager01/breast-cancer-predictor/internal/render"
)

const (
	PageTitle     = "Breast Cancer Prediction App"
	LoadedNotice  = "Model and Scaler loaded successfully."
	BlockedNotice = "Failed to load model or scaler. Please ensure the artifact files are in the models directory."

	columnCount = 3
)

// Phase is where the single page sits in its input/result cycle.
type Phase string

const (
	PhaseAwaitingInput Phase = "awaiting_input"
	PhaseShowingResult Phase = "showing_result"
)

type Field struct {
	Name    string
	ID      string
	Value   string
	Invalid bool
}

type FieldGroup struct {
	Aggregation features.Aggregation
	Columns     [][]Field
}

type Sidebar struct {
	Measurements []features.Description
	Suffixes     []features.Description
	Model        string
	Dataset      string
}

type PageView struct {
	PageTitle string
	Notice    string
	Phase     Phase
	Min       string
	Groups    []FieldGroup
	Errors    []string
	Result    *render.Verdict
	Sidebar   Sidebar
}

type BlockedView struct {
	PageTitle string
	Message   string
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func defaultSidebar() Sidebar {
	return Sidebar{
		Measurements: features.MeasurementDescriptions(),
		Suffixes:     features.SuffixDescriptions(),
		Model:        "Logistic Regression",
		Dataset:      "Breast Cancer Wisconsin",
	}
}

// newPageView lays the fields out in schema order, one fieldset per
// aggregation group, spreading features round-robin over the columns.
func newPageView(values [features.Count]string, invalid map[int]bool) PageView {
	groups := make([]FieldGroup, 0, len(features.Aggregations))
	for g, agg := range features.Aggregations {
		group := FieldGroup{
			Aggregation: agg,
			Columns:     make([][]Field, columnCount),
		}
		for k := 0; k < features.GroupSize; k++ {
			i := g*features.GroupSize + k
			group.Columns[i%columnCount] = append(group.Columns[i%columnCount], Field{
				Name:    features.Name(i),
				ID:      fmt.Sprintf("feature-%d", i),
				Value:   values[i],
				Invalid: invalid[i],
			})
		}
		groups = append(groups, group)
	}

	return PageView{
		PageTitle: PageTitle,
		Notice:    LoadedNotice,
		Phase:     PhaseAwaitingInput,
		Min:       formatValue(features.MinValue),
		Groups:    groups,
		Sidebar:   defaultSidebar(),
	}
}

func defaultValues() [features.Count]string {
	var out [features.Count]string
	for i, v := range features.Defaults() {
		out[i] = formatValue(v)
	}
	return out
}
