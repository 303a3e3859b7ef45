// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Worksheet struct {
		Path  string `mapstructure:"path" yaml:"path"`
		Sheet string `mapstructure:"sheet" yaml:"sheet"`
	} `mapstructure:"worksheet" yaml:"worksheet"`

	Advisor struct {
		Endpoint       string  `mapstructure:"endpoint" yaml:"endpoint"`
		Model          string  `mapstructure:"model" yaml:"model"`
		Temperature    float64 `mapstructure:"temperature" yaml:"temperature"`
		TopP           float64 `mapstructure:"top_p" yaml:"top_p"`
		TimeoutSeconds int     `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	} `mapstructure:"advisor" yaml:"advisor"`

	Mappings struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"mappings" yaml:"mappings"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.nf-control")
	v.AddConfigPath(".nf-control")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("NF")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	// 5. The original worksheet tool configured its endpoint and model through
	// OLLAMA_URL / OLLAMA_MODEL; keep honoring those names unprefixed.
	if err := v.BindEnv("advisor.endpoint", "OLLAMA_URL"); err != nil {
		Logger.Warnf("Failed to bind OLLAMA_URL environment variable: %v", err)
	}
	if err := v.BindEnv("advisor.model", "OLLAMA_MODEL"); err != nil {
		Logger.Warnf("Failed to bind OLLAMA_MODEL environment variable: %v", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("worksheet.path", "Planilha_Controle_Notas_Fiscais.xlsx")
	v.SetDefault("worksheet.sheet", "Notas")

	v.SetDefault("advisor.endpoint", "http://localhost:11434")
	v.SetDefault("advisor.model", "llama3.2")
	v.SetDefault("advisor.temperature", 0.2)
	v.SetDefault("advisor.top_p", 0.9)
	v.SetDefault("advisor.timeout_seconds", 60)

	v.SetDefault("mappings.file", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Worksheet.Path == "" {
		return fmt.Errorf("worksheet.path must not be empty")
	}
	if config.Worksheet.Sheet == "" {
		return fmt.Errorf("worksheet.sheet must not be empty")
	}

	if config.Advisor.Endpoint == "" {
		return fmt.Errorf("advisor.endpoint must not be empty")
	}
	if config.Advisor.Temperature < 0.0 || config.Advisor.Temperature > 1.0 {
		return fmt.Errorf("advisor.temperature must be between 0.0 and 1.0, got: %f", config.Advisor.Temperature)
	}
	if config.Advisor.TopP < 0.0 || config.Advisor.TopP > 1.0 {
		return fmt.Errorf("advisor.top_p must be between 0.0 and 1.0, got: %f", config.Advisor.TopP)
	}
	if config.Advisor.TimeoutSeconds < 1 || config.Advisor.TimeoutSeconds > 300 {
		return fmt.Errorf("advisor.timeout_seconds must be between 1 and 300, got: %d", config.Advisor.TimeoutSeconds)
	}

	return nil
}
