package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/buckets/config"
	"github.com/katalvlaran/buckets/core"
)

// writeConfig writes body to a config.yaml in a temp dir and returns its path.
func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func newLoader() config.ConfigLoader {
	return config.NewConfigLoader(config.NewValidator())
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, config.NewValidator().Validate(cfg))

	start, err := cfg.Search.Start()
	require.NoError(t, err)
	assert.Equal(t, core.State{}, start)
	assert.Equal(t, 7, cfg.Search.DepthLimit)
	assert.Equal(t, 2, cfg.Search.ObjectiveThreshold)
	assert.Equal(t, 21, cfg.Search.MaxIDSDepth)
	assert.True(t, cfg.Search.Objective()(core.State{A: 2, B: 3}))
	assert.False(t, cfg.Search.Objective()(core.State{A: 3, B: 2}))
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
search:
  start_state: "1,2"
  depth_limit: 9
  objective_threshold: 3
logging:
  level: debug
  format: json
`)
	cfg, err := newLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1,2", cfg.Search.StartState)
	assert.Equal(t, 9, cfg.Search.DepthLimit)
	assert.Equal(t, 3, cfg.Search.ObjectiveThreshold)
	// unspecified keys keep their defaults
	assert.Equal(t, config.DefaultMaxIDSDepth, cfg.Search.MaxIDSDepth)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)

	cfg, err := newLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)

	cfg, err = newLoader().LoadWithDefaults("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BUCKETS_SEARCH_DEPTH_LIMIT", "5")
	t.Setenv("BUCKETS_LOGGING_LEVEL", "error")

	cfg, err := newLoader().LoadWithDefaults("")
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Search.DepthLimit)
	assert.Equal(t, "error", cfg.Logging.Level)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]func(c *config.Config){
		"negative depth":     func(c *config.Config) { c.Search.DepthLimit = -1 },
		"negative threshold": func(c *config.Config) { c.Search.ObjectiveThreshold = -1 },
		"threshold too big":  func(c *config.Config) { c.Search.ObjectiveThreshold = 5 },
		"negative ids depth": func(c *config.Config) { c.Search.MaxIDSDepth = -3 },
		"depth too big":      func(c *config.Config) { c.Search.DepthLimit = 30 },
		"ids depth too big":  func(c *config.Config) { c.Search.MaxIDSDepth = 22 },
		"empty start":        func(c *config.Config) { c.Search.StartState = "" },
		"unparsable start":   func(c *config.Config) { c.Search.StartState = "a,b" },
		"start overflows":    func(c *config.Config) { c.Search.StartState = "5,0" },
		"bad level":          func(c *config.Config) { c.Logging.Level = "verbose" },
		"bad format":         func(c *config.Config) { c.Logging.Format = "xml" },
	}
	v := config.NewValidator()
	for name, mutate := range cases {
		cfg := config.DefaultConfig()
		mutate(cfg)
		assert.ErrorIs(t, v.Validate(cfg), config.ErrInvalidConfig, name)
	}
	assert.ErrorIs(t, v.Validate(nil), config.ErrInvalidConfig)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := writeConfig(t, "search:\n  depth_limit: -4\n")
	_, err := newLoader().Load(path)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDecode_SkipsValidation(t *testing.T) {
	t.Setenv("BUCKETS_SEARCH_OBJECTIVE_THRESHOLD", "9")
	path := writeConfig(t, "search:\n  depth_limit: -1\n")

	cfg, err := newLoader().Decode(path)
	require.NoError(t, err)
	assert.Equal(t, -1, cfg.Search.DepthLimit)
	assert.Equal(t, 9, cfg.Search.ObjectiveThreshold)
	assert.ErrorIs(t, config.NewValidator().Validate(cfg), config.ErrInvalidConfig)

	cfg, err = newLoader().Decode(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDepthLimit, cfg.Search.DepthLimit)
	assert.Equal(t, 9, cfg.Search.ObjectiveThreshold)
}

func TestMarshal(t *testing.T) {
	out, err := config.DefaultConfig().Marshal()
	require.NoError(t, err)
	text := string(out)
	assert.Contains(t, text, "start_state:")
	assert.Contains(t, text, "0,0")
	assert.Contains(t, text, "depth_limit: 7")
	assert.Contains(t, text, "objective_threshold: 2")
	assert.Contains(t, text, "format: text")

	// the rendered YAML loads back to the same values
	cfg, err := newLoader().Load(writeConfig(t, text))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}
