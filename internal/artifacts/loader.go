// Package artifacts loads the fitted scaler and classifier exports once at
// startup and hands back an immutable handle.
package artifacts

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/OldStager01/breast-cancer-predictor/internal/features"
	"github.com/OldStager01/breast-cancer-predictor/internal/logger"
	"github.com/OldStager01/breast-cancer-predictor/internal/model"
	"github.com/OldStager01/breast-cancer-predictor/pkg/config"
)

const (
	ArtifactScaler     = "scaler"
	ArtifactClassifier = "classifier"
)

// Artifacts is shared read-only by every prediction for the process lifetime.
type Artifacts struct {
	scaler         model.Transformer
	classifier     model.Classifier
	scalerPath     string
	classifierPath string
	loadedAt       time.Time
}

// New wraps already constructed primitives. Both must match the feature schema.
func New(scaler model.Transformer, classifier model.Classifier) (*Artifacts, error) {
	if scaler == nil || classifier == nil {
		return nil, &LoadError{Artifact: "artifacts", Path: "-", Err: errors.New("scaler and classifier are required")}
	}
	if n := scaler.NFeatures(); n != features.Count {
		return nil, &LoadError{Artifact: ArtifactScaler, Path: "-", Err: dimensionError(n)}
	}
	if n := classifier.NFeatures(); n != features.Count {
		return nil, &LoadError{Artifact: ArtifactClassifier, Path: "-", Err: dimensionError(n)}
	}
	return &Artifacts{scaler: scaler, classifier: classifier, loadedAt: time.Now()}, nil
}

// Load reads both artifacts from cfg. It never returns a partial handle.
func Load(cfg config.ArtifactsConfig) (*Artifacts, error) {
	scalerPath := cfg.ScalerPath()
	classifierPath := cfg.ClassifierPath()

	scaler, err := loadScaler(scalerPath)
	if err != nil {
		return nil, &LoadError{Artifact: ArtifactScaler, Path: scalerPath, Err: err}
	}
	logger.WithArtifact(ArtifactScaler, scalerPath).Debug("artifact decoded")

	classifier, err := loadClassifier(classifierPath)
	if err != nil {
		return nil, &LoadError{Artifact: ArtifactClassifier, Path: classifierPath, Err: err}
	}
	logger.WithArtifact(ArtifactClassifier, classifierPath).Debug("artifact decoded")

	return &Artifacts{
		scaler:         scaler,
		classifier:     classifier,
		scalerPath:     scalerPath,
		classifierPath: classifierPath,
		loadedAt:       time.Now(),
	}, nil
}

func (a *Artifacts) Scaler() model.Transformer {
	return a.scaler
}

func (a *Artifacts) Classifier() model.Classifier {
	return a.classifier
}

func (a *Artifacts) LoadedAt() time.Time {
	return a.loadedAt
}

func (a *Artifacts) Paths() (scaler, classifier string) {
	return a.scalerPath, a.classifierPath
}

func loadScaler(path string) (*model.StandardScaler, error) {
	var f scalerFile
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}
	if err := f.header.check(KindStandardScaler); err != nil {
		return nil, err
	}
	if len(f.Mean) != f.NFeaturesIn || len(f.Scale) != f.NFeaturesIn {
		return nil, fmt.Errorf("mean/scale lengths %d/%d do not match n_features_in %d",
			len(f.Mean), len(f.Scale), f.NFeaturesIn)
	}
	return model.NewStandardScaler(f.Mean, f.Scale)
}

func loadClassifier(path string) (*model.LogisticRegression, error) {
	var f classifierFile
	if err := decodeFile(path, &f); err != nil {
		return nil, err
	}
	if err := f.header.check(KindLogisticRegression); err != nil {
		return nil, err
	}
	if !slices.Equal(f.Classes, []int{0, 1}) {
		return nil, fmt.Errorf("classes must be [0 1], got %v", f.Classes)
	}
	if len(f.Coef) != 1 || len(f.Coef[0]) != f.NFeaturesIn {
		return nil, fmt.Errorf("coef must be 1x%d", f.NFeaturesIn)
	}
	if len(f.Intercept) != 1 {
		return nil, fmt.Errorf("intercept must hold exactly one value, got %d", len(f.Intercept))
	}
	return model.NewLogisticRegression(f.Coef[0], f.Intercept[0], f.Classes)
}

func decodeFile(path string, out interface{}) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("file is empty")
		}
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

func (h header) check(kind string) error {
	if h.FormatVersion != FormatVersion {
		return fmt.Errorf("unsupported format_version %d, expected %d", h.FormatVersion, FormatVersion)
	}
	if h.Kind != kind {
		return fmt.Errorf("kind %q, expected %q", h.Kind, kind)
	}
	if h.NFeaturesIn != features.Count {
		return dimensionError(h.NFeaturesIn)
	}
	if len(h.FeatureNamesIn) > 0 && !slices.Equal(h.FeatureNamesIn, features.Names()) {
		return errors.New("feature_names_in does not match the feature schema order")
	}
	return nil
}

func dimensionError(n int) error {
	return fmt.Errorf("%w: fitted on %d features, schema has %d", model.ErrShapeMismatch, n, features.Count)
}
