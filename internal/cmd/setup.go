package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/harrison/docguard/internal/config"
	"github.com/harrison/docguard/internal/display"
	"github.com/harrison/docguard/internal/logger"
	"github.com/harrison/docguard/internal/repo"
)

// session is the resolved configuration shared by every subcommand.
type session struct {
	cfg  *config.Config
	root string
	log  logger.Logger
}

// newSession loads configuration and applies CLI flags. Only flags the user
// changed override the config file.
func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()

	rootFlag, _ := flags.GetString("root")
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	base, err := repo.Resolve(rootFlag, cwd)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root: %w", err)
	}

	var cfg *config.Config
	if configPath, _ := flags.GetString("config"); configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(base)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	var f config.Flags
	if flags.Changed("root") {
		f.Root = &base
	}
	f.LogLevel = changedString(cmd, "log-level")
	f.Format = changedString(cmd, "format")
	f.Output = changedString(cmd, "output")
	if flags.Lookup("parallel") != nil && flags.Changed("parallel") {
		v, _ := flags.GetInt("parallel")
		f.Parallel = &v
	}
	if flags.Lookup("strict") != nil && flags.Changed("strict") {
		v, _ := flags.GetBool("strict")
		f.Strict = &v
	}
	if flags.Lookup("skip") != nil {
		f.Skip, _ = flags.GetStringArray("skip")
	}
	cfg.MergeWithFlags(f)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	root := base
	if cfg.Root != "" {
		root = cfg.Root
		if !filepath.IsAbs(root) {
			root = filepath.Join(base, root)
		}
	}

	return &session{
		cfg:  cfg,
		root: filepath.Clean(root),
		log:  logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel),
	}, nil
}

// notFoundWarning explains where the README was looked for.
func (s *session) notFoundWarning() display.Warning {
	files := make([]string, len(s.cfg.Locator.Candidates))
	for i, c := range s.cfg.Locator.Candidates {
		files[i] = filepath.Join(s.root, filepath.FromSlash(c))
	}
	return display.Warning{
		Title: "README not found under " + s.root,
		Message: fmt.Sprintf("No candidate file, markdown file or one of the first %d entries contains the expected markers.",
			s.cfg.Locator.MaxScanEntries),
		Files:      files,
		Suggestion: "Pass --root to point at the repository, or set locator.candidates in " + config.FileName + ".",
	}
}

func changedString(cmd *cobra.Command, name string) *string {
	if cmd.Flags().Lookup(name) == nil || !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// colorOutput reports whether w is a terminal that should get colored text.
func colorOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// addReportFlags registers the flags shared by commands that emit a report.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "", "Report format: text, yaml, sarif (default: text)")
	cmd.Flags().String("output", "", "Write the report to this file instead of stdout")
}
