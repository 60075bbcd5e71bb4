package config

import (
	"os"
	"strconv"

	"rocfold/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Evaluation EvaluationConfig
	Classifier ClassifierConfig
	Output     OutputConfig
	Server     ServerConfig
}

// EvaluationConfig holds cross-validation and dataset settings
type EvaluationConfig struct {
	Seed            int64 // base seed for noise generation and training
	Folds           int
	NoisePerFeature int // noise columns appended per original feature
	Parallel        bool
}

// ClassifierConfig holds SVM trainer settings
type ClassifierConfig struct {
	C       float64
	Tol     float64
	MaxIter int
}

// OutputConfig holds artifact paths
type OutputConfig struct {
	FigurePath string
	ReportPath string
}

// ServerConfig holds web viewer settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Evaluation: EvaluationConfig{
			Seed:            getEnvInt64OrDefault("ROCFOLD_SEED", 0),
			Folds:           getEnvIntOrDefault("ROCFOLD_FOLDS", 6),
			NoisePerFeature: getEnvIntOrDefault("ROCFOLD_NOISE_PER_FEATURE", 200),
			Parallel:        getEnvBoolOrDefault("ROCFOLD_PARALLEL", false),
		},
		Classifier: ClassifierConfig{
			C:       getEnvFloatOrDefault("ROCFOLD_SVM_C", 1.0),
			Tol:     getEnvFloatOrDefault("ROCFOLD_SVM_TOL", 1e-4),
			MaxIter: getEnvIntOrDefault("ROCFOLD_SVM_MAX_ITER", 1000),
		},
		Output: OutputConfig{
			FigurePath: getEnvOrDefault("ROCFOLD_FIGURE", "roc_crossval.png"),
			ReportPath: getEnvOrDefault("ROCFOLD_REPORT", "roc_crossval.xlsx"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Evaluation.Folds < 2 {
		return errors.ConfigInvalid("ROCFOLD_FOLDS must be at least 2")
	}
	if config.Evaluation.NoisePerFeature < 0 {
		return errors.ConfigInvalid("ROCFOLD_NOISE_PER_FEATURE must not be negative")
	}
	if config.Classifier.C <= 0 {
		return errors.ConfigInvalid("ROCFOLD_SVM_C must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
