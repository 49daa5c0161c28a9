package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, FormatText, cfg.Format)
	assert.Equal(t, 0, cfg.Parallel)
	assert.False(t, cfg.Strict)
	assert.Equal(t, filepath.Join("backend", ".env.example"), cfg.EnvFile)

	loc := cfg.Locator
	assert.Equal(t, []string{"README.md", "readme.md", "Readme.md", "backend/README.md", "docs/README.md", "README"}, loc.Candidates)
	assert.Len(t, loc.Markers, 5)
	assert.Equal(t, "HabitRace Backend", loc.Markers[0])
	assert.Equal(t, "docker-compose up -d", loc.Markers[1])
	assert.Equal(t, "HabitRace Backend", loc.PrimaryMarker)
	assert.Equal(t, "bun dev", loc.SecondaryMarker)
	assert.Equal(t, 2000, loc.MaxScanEntries)
	assert.Contains(t, loc.SkipExtensions, ".png")
	assert.Contains(t, loc.ExcludeDirs, "node_modules")

	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `log_level: debug
format: sarif
parallel: 4
strict: true
skip:
  - spelling
locator:
  candidates:
    - docs/SETUP.md
  max_scan_entries: 50
  exclude_dirs: []
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	cfg, err := LoadConfigFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatSARIF, cfg.Format)
	assert.Equal(t, 4, cfg.Parallel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, []string{"spelling"}, cfg.Skip)
	assert.Equal(t, []string{"docs/SETUP.md"}, cfg.Locator.Candidates)
	assert.Equal(t, 50, cfg.Locator.MaxScanEntries)
	assert.Empty(t, cfg.Locator.ExcludeDirs)

	// untouched defaults survive
	assert.Equal(t, "HabitRace Backend", cfg.Locator.PrimaryMarker)
	assert.Len(t, cfg.Locator.Markers, 5)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("log_level: [unterminated"), 0644))

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestMergeWithFlags(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Skip = []string{"spelling"}

	root := "/srv/app"
	format := FormatYAML
	parallel := 1
	strict := true
	cfg.MergeWithFlags(Flags{
		Root:     &root,
		Format:   &format,
		Parallel: &parallel,
		Strict:   &strict,
		Skip:     []string{"heading:Troubleshooting"},
	})

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, FormatYAML, cfg.Format)
	assert.Equal(t, 1, cfg.Parallel)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"spelling", "heading:Troubleshooting"}, cfg.Skip)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: "log_level"},
		{name: "bad format", mutate: func(c *Config) { c.Format = "html" }, wantErr: "format"},
		{name: "negative parallel", mutate: func(c *Config) { c.Parallel = -1 }, wantErr: "parallel"},
		{name: "single marker", mutate: func(c *Config) { c.Locator.Markers = []string{"x"} }, wantErr: "markers"},
		{name: "zero scan cap", mutate: func(c *Config) { c.Locator.MaxScanEntries = 0 }, wantErr: "max_scan_entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
