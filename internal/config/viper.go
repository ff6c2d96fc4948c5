package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Server struct {
		Port int    `mapstructure:"port" yaml:"port"`
		Mode string `mapstructure:"mode" yaml:"mode"`
	} `mapstructure:"server" yaml:"server"`

	Data struct {
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"data" yaml:"data"`

	Generate struct {
		TemplateVariant string `mapstructure:"template_variant" yaml:"template_variant"`
		MaterialLabels  string `mapstructure:"material_labels" yaml:"material_labels"`
	} `mapstructure:"generate" yaml:"generate"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional yaml config file, then FCR_* environment
// variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fcr-gen")
	v.AddConfigPath(".fcr-gen")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FCR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars.
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
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

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	v.SetDefault("data.directory", "data/projects")

	v.SetDefault("generate.template_variant", "porcelain")
	v.SetDefault("generate.material_labels", "standard")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Server.Port < 1 || config.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got: %d", config.Server.Port)
	}

	switch config.Generate.TemplateVariant {
	case "porcelain", "description":
	default:
		return fmt.Errorf("invalid template variant: %s (must be 'porcelain' or 'description')",
			config.Generate.TemplateVariant)
	}

	switch config.Generate.MaterialLabels {
	case "standard", "short":
	default:
		return fmt.Errorf("invalid material label set: %s (must be 'standard' or 'short')",
			config.Generate.MaterialLabels)
	}

	return nil
}

// OutputDelimiter returns the configured output CSV delimiter as a rune.
func (c *Config) OutputDelimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}
