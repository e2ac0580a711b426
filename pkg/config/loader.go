package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/predictor")
	}

	v.SetEnvPrefix("PREDICTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment overrides exist.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Defaults are static, unmarshal cannot fail on them.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "breast-cancer-predictor")
	v.SetDefault("app.mode", "development")
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.shutdown_timeout", "30s")

	// API defaults
	v.SetDefault("api.port", 8501)
	v.SetDefault("api.read_timeout", "15s")
	v.SetDefault("api.write_timeout", "15s")
	v.SetDefault("api.idle_timeout", "60s")
	v.SetDefault("api.rate_limit", 120)
	v.SetDefault("api.max_request_bytes", 64*1024)
	v.SetDefault("api.enable_swagger", true)
	v.SetDefault("api.cors.allowed_origins", []string{"*"})
	v.SetDefault("api.cors.allowed_methods", []string{"GET", "POST", "OPTIONS"})
	v.SetDefault("api.cors.allowed_headers", []string{"Origin", "Content-Type", "Accept", "X-Trace-ID"})
	v.SetDefault("api.cors.exposed_headers", []string{"X-Trace-ID"})

	// Artifact defaults
	v.SetDefault("artifacts.dir", "models")
	v.SetDefault("artifacts.scaler_file", "scaler.yaml")
	v.SetDefault("artifacts.classifier_file", "logistic_model.yaml")
	v.SetDefault("artifacts.exit_on_failure", false)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
