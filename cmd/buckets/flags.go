package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/buckets/config"
)

// Flag names.
const (
	flagConfig        = "config"
	flagStart         = "start"
	flagDepth         = "depth"
	flagThreshold     = "threshold"
	flagMaxIDSDepth   = "max-ids-depth"
	flagMaxExpansions = "max-expansions"
	flagLogLevel      = "log-level"
	flagLogFormat     = "log-format"
	flagExplain       = "explain"
)

// GlobalFlags holds persistent flags available to all commands.
type GlobalFlags struct {
	ConfigFile    string
	Start         string
	Depth         int
	Threshold     int
	MaxIDSDepth   int
	MaxExpansions int
	LogLevel      string
	LogFormat     string
	Explain       bool
}

// RegisterGlobalFlags registers persistent flags on the root command.
func RegisterGlobalFlags(cmd *cobra.Command, f *GlobalFlags) {
	d := config.DefaultConfig()
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.ConfigFile, flagConfig, "", "Path to a YAML config file")
	pf.StringVar(&f.Start, flagStart, d.Search.StartState, "Start state as a,b")
	pf.IntVar(&f.Depth, flagDepth, d.Search.DepthLimit, "Depth bound of the depth-limited search (at most 21; cost grows exponentially)")
	pf.IntVar(&f.Threshold, flagThreshold, d.Search.ObjectiveThreshold, "First-bucket level to reach")
	pf.IntVar(&f.MaxIDSDepth, flagMaxIDSDepth, d.Search.MaxIDSDepth, "Largest bound tried by iterative deepening")
	pf.IntVar(&f.MaxExpansions, flagMaxExpansions, d.Search.MaxExpansions, "Expansion limit of BFS (0 = none)")
	pf.StringVar(&f.LogLevel, flagLogLevel, d.Logging.Level, "Log level (debug|info|warn|error)")
	pf.StringVar(&f.LogFormat, flagLogFormat, d.Logging.Format, "Log format (text|json)")
	pf.BoolVar(&f.Explain, flagExplain, false, "Print the operator behind every step")
}

// Apply copies explicitly set flags over cfg; unset flags leave file and
// environment values in place.
func (f *GlobalFlags) Apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed(flagStart) {
		cfg.Search.StartState = f.Start
	}
	if changed(flagDepth) {
		cfg.Search.DepthLimit = f.Depth
	}
	if changed(flagThreshold) {
		cfg.Search.ObjectiveThreshold = f.Threshold
	}
	if changed(flagMaxIDSDepth) {
		cfg.Search.MaxIDSDepth = f.MaxIDSDepth
	}
	if changed(flagMaxExpansions) {
		cfg.Search.MaxExpansions = f.MaxExpansions
	}
	if changed(flagLogLevel) {
		cfg.Logging.Level = f.LogLevel
	}
	if changed(flagLogFormat) {
		cfg.Logging.Format = f.LogFormat
	}
}
