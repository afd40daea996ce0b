package config

import (
	"github.com/katalvlaran/buckets/core"
	"github.com/katalvlaran/buckets/dfs"
)

// Default values of the classic puzzle run.
const (
	DefaultStartState    = "0,0"
	DefaultDepthLimit    = 7
	DefaultLogLevel      = "warn"
	DefaultLogFormat     = "text"
	DefaultMaxExpansions = 0
)

// DefaultMaxIDSDepth is the iterative-deepening ceiling of the dfs package.
var DefaultMaxIDSDepth = dfs.DefaultIDSMaxDepth

// DefaultConfig returns a Config with the values of the classic puzzle:
// start (0, 0), depth bound 7, objective a == 2.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			StartState:         DefaultStartState,
			DepthLimit:         DefaultDepthLimit,
			ObjectiveThreshold: core.DefaultThreshold,
			MaxIDSDepth:        DefaultMaxIDSDepth,
			MaxExpansions:      DefaultMaxExpansions,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
