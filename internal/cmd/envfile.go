package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/docguard/internal/envfile"
	"github.com/harrison/docguard/internal/report"
)

// NewEnvfileCommand creates the envfile command
func NewEnvfileCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "envfile [path]",
		Short: "Validate an env example file",
		Long: `Parse a dotenv example file and check that the required keys are set,
no key is assigned twice, DATABASE_URL agrees with the DB_* variables and the
ports are in range.

The default path is env_file from the config (backend/.env.example) under the
root.

Exit code: 0 if every check passed, 1 otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEnvfile,
	}
	addReportFlags(cmd)
	return cmd
}

func runEnvfile(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	path := filepath.Join(s.root, s.cfg.EnvFile)
	if len(args) == 1 {
		path = args[0]
	}

	env, err := envfile.Load(path)
	if err != nil {
		return err
	}
	s.log.LogDebug(fmt.Sprintf("parsed %d assignments from %s", len(env.Entries), path))
	s.log.LogTrace("keys: " + strings.Join(env.Keys(), ", "))

	rep := report.New(path, envfile.Validate(env))
	out := cmd.OutOrStdout()
	if err := report.Write(cmd.Context(), rep, s.cfg.Format, s.cfg.Output, out, colorOutput(out)); err != nil {
		return err
	}

	return failedChecks(rep)
}
