package config

import (
	"path/filepath"
	"time"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	API       APIConfig       `mapstructure:"api"`
	Artifacts ArtifactsConfig `mapstructure:"artifacts"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

type AppConfig struct {
	Name            string        `mapstructure:"name"`
	Mode            string        `mapstructure:"mode"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type APIConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	RateLimit       int           `mapstructure:"rate_limit"`
	MaxRequestBytes int64         `mapstructure:"max_request_bytes"`
	EnableSwagger   bool          `mapstructure:"enable_swagger"`
	CORS            CORSConfig    `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
}

// ArtifactsConfig locates the fitted scaler and classifier exports.
type ArtifactsConfig struct {
	Dir            string `mapstructure:"dir"`
	ScalerFile     string `mapstructure:"scaler_file"`
	ClassifierFile string `mapstructure:"classifier_file"`
	ExitOnFailure  bool   `mapstructure:"exit_on_failure"`
}

func (a ArtifactsConfig) ScalerPath() string {
	return filepath.Join(a.Dir, a.ScalerFile)
}

func (a ArtifactsConfig) ClassifierPath() string {
	return filepath.Join(a.Dir, a.ClassifierFile)
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
