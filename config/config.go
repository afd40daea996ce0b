// Package config holds the run configuration of the buckets solver:
// start state, DFS depth bound, objective threshold, IDS ceiling and logging.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/buckets/core"
)

// Config is the root configuration.
type Config struct {
	Search  SearchConfig  `mapstructure:"search" yaml:"search"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// SearchConfig contains the parameters shared by the three strategies.
type SearchConfig struct {
	// StartState is the textual "a,b" start state of every search.
	StartState string `mapstructure:"start_state" yaml:"start_state" validate:"required"`

	// DepthLimit is the bound of the depth-limited search. The search keeps
	// no visited set, so its cost grows exponentially with the bound.
	DepthLimit int `mapstructure:"depth_limit" yaml:"depth_limit" validate:"min=0,max=21"`

	// ObjectiveThreshold is the first-bucket level that ends the search.
	ObjectiveThreshold int `mapstructure:"objective_threshold" yaml:"objective_threshold" validate:"min=0"`

	// MaxIDSDepth is the largest bound iterative deepening tries.
	MaxIDSDepth int `mapstructure:"max_ids_depth" yaml:"max_ids_depth" validate:"min=0,max=21"`

	// MaxExpansions bounds BFS; 0 disables the limit.
	MaxExpansions int `mapstructure:"max_expansions" yaml:"max_expansions" validate:"min=0"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=text json"`
}

// Start parses StartState.
func (c *SearchConfig) Start() (core.State, error) {
	return core.ParseState(c.StartState)
}

// Objective returns the goal test for ObjectiveThreshold.
func (c *SearchConfig) Objective() core.Objective {
	return core.FirstBucketEquals(c.ObjectiveThreshold)
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	return out, nil
}
