package artifacts

// FormatVersion is the export layout this build understands.
const FormatVersion = 1

const (
	KindStandardScaler     = "StandardScaler"
	KindLogisticRegression = "LogisticRegression"
)

type header struct {
	FormatVersion  int      `yaml:"format_version"`
	Kind           string   `yaml:"kind"`
	NFeaturesIn    int      `yaml:"n_features_in"`
	FeatureNamesIn []string `yaml:"feature_names_in"`
}

type scalerFile struct {
	header `yaml:",inline"`
	Mean   []float64 `yaml:"mean"`
	Scale  []float64 `yaml:"scale"`
}

type classifierFile struct {
	header    `yaml:",inline"`
	Classes   []int       `yaml:"classes"`
	Coef      [][]float64 `yaml:"coef"`
	Intercept []float64   `yaml:"intercept"`
}
