// Package config provides configuration management for the shuffle command
// using Viper for loading from files, environment variables, and
// command-line flags.
//
// The configuration system supports YAML files, environment variable
// overrides with the SHUFFLE_ prefix, and validation. It covers the allowed
// word list, logging, the default validation strategy, and batch settings.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	shuffleerrors "github.com/conneroisu/shuffle/internal/errors"
	"github.com/conneroisu/shuffle/internal/logging"
	"github.com/conneroisu/shuffle/internal/shuffle"
)

// Viper keys.
const (
	KeyWordsFile     = "words.file"
	KeyWordsOptional = "words.optional"
	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyCheckStrategy = "check.strategy"
	KeyCheckFormat   = "check.format"
	KeyBatchWorkers  = "batch.workers"
	KeyBatchFormat   = "batch.format"
)

type Config struct {
	Words WordsConfig `mapstructure:"words" yaml:"words"`
	Log   LogConfig   `mapstructure:"log" yaml:"log"`
	Check CheckConfig `mapstructure:"check" yaml:"check"`
	Batch BatchConfig `mapstructure:"batch" yaml:"batch"`
}

type WordsConfig struct {
	// File is a newline-separated list of allowed words. Empty allows every word.
	File string `mapstructure:"file" yaml:"file"`
	// Optional treats a missing File as "allow every word".
	Optional bool `mapstructure:"optional" yaml:"optional"`
}

type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

type CheckConfig struct {
	Strategy string `mapstructure:"strategy" yaml:"strategy"`
	Format   string `mapstructure:"format" yaml:"format"`
}

type BatchConfig struct {
	Workers int    `mapstructure:"workers" yaml:"workers"`
	Format  string `mapstructure:"format" yaml:"format"`
}

var (
	checkFormats = []string{"text", "json", "yaml"}
	batchFormats = []string{"table", "json", "yaml"}
	logFormats   = []string{"text", "json"}
)

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyWordsFile, "")
	v.SetDefault(KeyWordsOptional, true)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "text")
	v.SetDefault(KeyCheckStrategy, string(shuffle.StrategyGreedy))
	v.SetDefault(KeyCheckFormat, "text")
	v.SetDefault(KeyBatchWorkers, runtime.GOMAXPROCS(0))
	v.SetDefault(KeyBatchFormat, "table")
}

// LoadFrom reads and validates the configuration held by v.
func LoadFrom(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, shuffleerrors.NewConfigError(shuffleerrors.ErrCodeConfigInvalid,
			fmt.Sprintf("failed to decode configuration: %v", err))
	}

	config.Log.Level = strings.ToLower(strings.TrimSpace(config.Log.Level))
	config.Log.Format = strings.ToLower(strings.TrimSpace(config.Log.Format))
	config.Check.Strategy = strings.ToLower(strings.TrimSpace(config.Check.Strategy))
	config.Check.Format = strings.ToLower(strings.TrimSpace(config.Check.Format))
	config.Batch.Format = strings.ToLower(strings.TrimSpace(config.Batch.Format))
	if config.Batch.Workers == 0 {
		config.Batch.Workers = runtime.GOMAXPROCS(0)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// validateConfig validates configuration values
func validateConfig(config *Config) error {
	if _, err := logging.ParseLevel(config.Log.Level); err != nil {
		return invalid(KeyLogLevel, err.Error())
	}
	if !oneOf(config.Log.Format, logFormats) {
		return invalid(KeyLogFormat, unsupported(config.Log.Format, logFormats))
	}
	if _, err := shuffle.ParseStrategy(config.Check.Strategy); err != nil {
		return invalid(KeyCheckStrategy, err.Error())
	}
	if !oneOf(config.Check.Format, checkFormats) {
		return invalid(KeyCheckFormat, unsupported(config.Check.Format, checkFormats))
	}
	if config.Batch.Workers < 1 {
		return invalid(KeyBatchWorkers, fmt.Sprintf("workers must be positive, got %d", config.Batch.Workers))
	}
	if !oneOf(config.Batch.Format, batchFormats) {
		return invalid(KeyBatchFormat, unsupported(config.Batch.Format, batchFormats))
	}
	return nil
}

// LoggerConfig translates the log section into a logging configuration.
func (c *Config) LoggerConfig() *logging.LoggerConfig {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		lc.Level = level
	}
	lc.Format = c.Log.Format
	return lc
}

// Strategy returns the configured validation strategy.
func (c *Config) Strategy() shuffle.Strategy {
	s, err := shuffle.ParseStrategy(c.Check.Strategy)
	if err != nil {
		return shuffle.StrategyGreedy
	}
	return s
}

func invalid(key, message string) error {
	return shuffleerrors.NewConfigError(shuffleerrors.ErrCodeConfigInvalid, message).
		WithContext("key", key)
}

func unsupported(value string, supported []string) string {
	return fmt.Sprintf("unsupported value %q (supported: %s)", value, strings.Join(supported, ", "))
}

func oneOf(value string, options []string) bool {
	for _, o := range options {
		if value == o {
			return true
		}
	}
	return false
}
