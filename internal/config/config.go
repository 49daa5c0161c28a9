package config

import (
	"fmt"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

func init() {
	// report yaml keys in validation errors
	validation.ErrorTag = "yaml"
}

// FileName is the configuration file looked up in the check root.
const FileName = ".docguard.yaml"

// Output formats
const (
	FormatText  = "text"
	FormatYAML  = "yaml"
	FormatSARIF = "sarif"
)

// LocatorConfig controls how the environment README is found
type LocatorConfig struct {
	// Candidates are paths relative to the root tried first, in order
	Candidates []string `yaml:"candidates"`

	// Markers fingerprint the document; the first two are required together
	// for a candidate file match
	Markers []string `yaml:"markers"`

	// PrimaryMarker alone is enough for a candidate match and is required by
	// the bounded scan
	PrimaryMarker string `yaml:"primary_marker"`

	// SecondaryMarker is required alongside PrimaryMarker by the bounded scan
	SecondaryMarker string `yaml:"secondary_marker"`

	// MaxScanEntries caps the bounded scan
	MaxScanEntries int `yaml:"max_scan_entries"`

	// SkipExtensions are never read by the bounded scan
	SkipExtensions []string `yaml:"skip_extensions"`

	// ExcludeDirs are directory names never descended into
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// Config represents docguard configuration options
type Config struct {
	// Root is the directory searched for the README
	Root string `yaml:"root"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Format selects the report format (text, yaml, sarif)
	Format string `yaml:"format"`

	// Output is a file the report is written to instead of stdout
	Output string `yaml:"output"`

	// Parallel bounds concurrent checks (0 = one goroutine per check)
	Parallel int `yaml:"parallel"`

	// Strict enables the extended documentation checks
	Strict bool `yaml:"strict"`

	// Skip lists check names that are not run
	Skip []string `yaml:"skip"`

	// EnvFile is the env example validated by the envfile command,
	// relative to Root
	EnvFile string `yaml:"env_file"`

	// Locator contains document discovery configuration
	Locator LocatorConfig `yaml:"locator"`
}

// DefaultConfig returns a Config with the built-in checklist defaults
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Format:   FormatText,
		Parallel: 0,
		EnvFile:  filepath.Join("backend", ".env.example"),
		Locator:  DefaultLocatorConfig(),
	}
}

// DefaultLocatorConfig returns the fingerprint used for the HabitRace
// backend README.
func DefaultLocatorConfig() LocatorConfig {
	return LocatorConfig{
		Candidates: []string{
			"README.md",
			"readme.md",
			"Readme.md",
			"backend/README.md",
			"docs/README.md",
			"README",
		},
		Markers: []string{
			"HabitRace Backend",
			"docker-compose up -d",
			"bun dev",
			"DATABASE_URL",
			"This project was created using `bun init` in bun v1.2.22",
		},
		PrimaryMarker:   "HabitRace Backend",
		SecondaryMarker: "bun dev",
		MaxScanEntries:  2000,
		SkipExtensions:  []string{".png", ".jpg", ".jpeg", ".gif", ".pdf", ".ico"},
		ExcludeDirs:     []string{".git", "node_modules"},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.merge(&fileCfg)
	return cfg, nil
}

// LoadConfigFromDir loads .docguard.yaml from the specified directory
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, FileName))
}

// merge applies non-zero values from other onto c.
func (c *Config) merge(other *Config) {
	if other.Root != "" {
		c.Root = other.Root
	}
	if other.LogLevel != "" {
		c.LogLevel = other.LogLevel
	}
	if other.Format != "" {
		c.Format = other.Format
	}
	if other.Output != "" {
		c.Output = other.Output
	}
	if other.Parallel != 0 {
		c.Parallel = other.Parallel
	}
	if other.Strict {
		c.Strict = true
	}
	if len(other.Skip) > 0 {
		c.Skip = other.Skip
	}
	if other.EnvFile != "" {
		c.EnvFile = other.EnvFile
	}

	loc := other.Locator
	if len(loc.Candidates) > 0 {
		c.Locator.Candidates = loc.Candidates
	}
	if len(loc.Markers) > 0 {
		c.Locator.Markers = loc.Markers
	}
	if loc.PrimaryMarker != "" {
		c.Locator.PrimaryMarker = loc.PrimaryMarker
	}
	if loc.SecondaryMarker != "" {
		c.Locator.SecondaryMarker = loc.SecondaryMarker
	}
	if loc.MaxScanEntries != 0 {
		c.Locator.MaxScanEntries = loc.MaxScanEntries
	}
	if loc.SkipExtensions != nil {
		c.Locator.SkipExtensions = loc.SkipExtensions
	}
	if loc.ExcludeDirs != nil {
		c.Locator.ExcludeDirs = loc.ExcludeDirs
	}
}

// Flags holds CLI overrides; nil fields leave the configuration untouched.
type Flags struct {
	Root     *string
	LogLevel *string
	Format   *string
	Output   *string
	Parallel *int
	Strict   *bool
	Skip     []string
}

// MergeWithFlags merges CLI flags into the configuration
// This allows CLI flags to take precedence over config file settings
func (c *Config) MergeWithFlags(f Flags) {
	if f.Root != nil {
		c.Root = *f.Root
	}
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.Format != nil {
		c.Format = *f.Format
	}
	if f.Output != nil {
		c.Output = *f.Output
	}
	if f.Parallel != nil {
		c.Parallel = *f.Parallel
	}
	if f.Strict != nil {
		c.Strict = *f.Strict
	}
	if len(f.Skip) > 0 {
		c.Skip = append(c.Skip, f.Skip...)
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.Required,
			validation.In("trace", "debug", "info", "warn", "error")),
		validation.Field(&c.Format, validation.Required,
			validation.In(FormatText, FormatYAML, FormatSARIF)),
		validation.Field(&c.Parallel, validation.Min(0)),
		validation.Field(&c.Locator),
	)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Validate implements validation.Validatable for the nested locator section.
func (l LocatorConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Candidates, validation.Required),
		validation.Field(&l.Markers, validation.Required, validation.Length(2, 0)),
		validation.Field(&l.PrimaryMarker, validation.Required),
		validation.Field(&l.SecondaryMarker, validation.Required),
		validation.Field(&l.MaxScanEntries, validation.Required, validation.Min(1)),
	)
}
