package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for docguard
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docguard",
		Short: "Check that the backend README still documents the local setup",
		Long: `Docguard finds the backend environment README by content fingerprint and
runs a battery of independent checks against it: required sections, setup
commands, environment variables, links and code block languages.

The search root is --root, else root from .docguard.yaml, else the enclosing
git worktree, else the working directory.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("root", "", "Directory to search for the README")
	cmd.PersistentFlags().String("config", "", "Path to config file (default: <root>/.docguard.yaml)")
	cmd.PersistentFlags().String("log-level", "", "Log level: trace, debug, info, warn, error")

	cmd.AddCommand(NewCheckCommand())
	cmd.AddCommand(NewLocateCommand())
	cmd.AddCommand(NewEnvfileCommand())

	return cmd
}
