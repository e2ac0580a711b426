package artifacts

import (
	"errors"
	"fmt"
)

// ErrArtifactLoad marks every failure to produce a usable artifact handle.
var ErrArtifactLoad = errors.New("artifact load failed")

// LoadError names the artifact that could not be loaded.
type LoadError struct {
	Artifact string
	Path     string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s from %s: %v", e.Artifact, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Is(target error) bool {
	return target == ErrArtifactLoad
}
