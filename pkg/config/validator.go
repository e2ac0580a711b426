package config

import (
	"errors"
	"fmt"
	"strings"
)

func (c *Config) Validate() error {
	var errs []error

	// App validation
	if c.App.Name == "" {
		errs = append(errs, errors.New("app.name is required"))
	}

	validModes := map[string]bool{"development": true, "production": true, "test": true}
	if !validModes[c.App.Mode] {
		errs = append(errs, fmt.Errorf("app.mode must be one of: development, production, test"))
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.App.LogLevel] {
		errs = append(errs, fmt.Errorf("app.log_level must be one of: debug, info, warn, error"))
	}

	// API validation
	if c.API.Port <= 0 || c.API.Port > 65535 {
		errs = append(errs, errors.New("api.port must be between 1 and 65535"))
	}
	if c.API.RateLimit <= 0 {
		errs = append(errs, errors.New("api.rate_limit must be positive"))
	}
	if c.API.MaxRequestBytes <= 0 {
		errs = append(errs, errors.New("api.max_request_bytes must be positive"))
	}

	// Artifacts validation
	if c.Artifacts.Dir == "" {
		errs = append(errs, errors.New("artifacts.dir is required"))
	}
	if c.Artifacts.ScalerFile == "" {
		errs = append(errs, errors.New("artifacts.scaler_file is required"))
	}
	if c.Artifacts.ClassifierFile == "" {
		errs = append(errs, errors.New("artifacts.classifier_file is required"))
	}
	if c.Artifacts.ScalerFile != "" && c.Artifacts.ScalerFile == c.Artifacts.ClassifierFile {
		errs = append(errs, errors.New("artifacts.scaler_file and classifier_file must differ"))
	}

	// Metrics validation
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, errors.New("metrics.path must start with /"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %v", errs)
	}

	return nil
}
