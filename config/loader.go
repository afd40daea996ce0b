package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. BUCKETS_SEARCH_DEPTH_LIMIT.
const EnvPrefix = "BUCKETS"

// ConfigLoader handles loading configuration from files.
type ConfigLoader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)

	// Decode resolves defaults, the optional file and the environment like
	// LoadWithDefaults but leaves validation to the caller, so that
	// higher-precedence layers such as CLI flags can still be applied.
	Decode(path string) (*Config, error)
}

// viperConfigLoader implements ConfigLoader using Viper.
type viperConfigLoader struct {
	validator ConfigValidator
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader(validator ConfigValidator) ConfigLoader {
	return &viperConfigLoader{
		validator: validator,
	}
}

// Load loads configuration from the YAML file at path, layered over the
// defaults and under BUCKETS_* environment variables.
// Returns an error if the file doesn't exist or cannot be parsed.
func (l *viperConfigLoader) Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.unmarshal(v)
}

// Decode returns the layered configuration for path without validating it.
// A missing or empty path yields defaults and environment overrides.
func (l *viperConfigLoader) Decode(path string) (*Config, error) {
	v, err := layered(path)
	if err != nil {
		return nil, err
	}

	return decode(v)
}

// LoadWithDefaults loads configuration from path.
// If path is empty or the file doesn't exist, defaults and environment
// overrides are used.
func (l *viperConfigLoader) LoadWithDefaults(path string) (*Config, error) {
	v, err := layered(path)
	if err != nil {
		return nil, err
	}

	return l.unmarshal(v)
}

// unmarshal decodes v into a Config and validates it.
func (l *viperConfigLoader) unmarshal(v *viper.Viper) (*Config, error) {
	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	if err = l.validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// layered returns a Viper over defaults and environment, reading path
// when it names an existing file.
func layered(path string) (*viper.Viper, error) {
	v := newViper()
	if path == "" {
		return v, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return v, nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return v, nil
}

// decode unmarshals v into a Config.
func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// newViper returns a Viper instance seeded with DefaultConfig values.
// Every key has a default, so AutomaticEnv can resolve all of them.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("search.start_state", d.Search.StartState)
	v.SetDefault("search.depth_limit", d.Search.DepthLimit)
	v.SetDefault("search.objective_threshold", d.Search.ObjectiveThreshold)
	v.SetDefault("search.max_ids_depth", d.Search.MaxIDSDepth)
	v.SetDefault("search.max_expansions", d.Search.MaxExpansions)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	return v
}
