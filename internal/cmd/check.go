package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harrison/docguard/internal/checks"
	"github.com/harrison/docguard/internal/locator"
	"github.com/harrison/docguard/internal/report"
)

// ErrChecksFailed is returned when at least one check failed.
var ErrChecksFailed = errors.New("documentation checks failed")

// failedChecks returns ErrChecksFailed naming the failed checks, or nil.
func failedChecks(rep *report.Report) error {
	failed := rep.Failures()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, res := range failed {
		names[i] = res.Name
	}
	return fmt.Errorf("%w: %d of %d failed: %s", ErrChecksFailed, len(failed), rep.Summary.Total, strings.Join(names, ", "))
}

// NewCheckCommand creates the check command
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the README checks",
		Long: `Locate the backend environment README and run every documentation check
against it. Each check reports independently; a missing section fails only the
checks that depend on it.

Exit code: 0 if every check passed, 1 otherwise (including when no README
could be located).

Examples:
  docguard check
  docguard check --root ../habitrace --strict
  docguard check --format sarif --output docguard.sarif
  docguard check --skip spelling --skip "heading:Development Tips"`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}

	addReportFlags(cmd)
	cmd.Flags().Bool("strict", false, "Also run the extended documentation checks")
	cmd.Flags().StringArray("skip", nil, "Check name to skip (repeatable)")
	cmd.Flags().Int("parallel", 0, "Maximum checks run at once (0 = unlimited, 1 = sequential)")
	cmd.Flags().Bool("list", false, "List check names and exit")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	cfg := s.cfg

	all := checks.Standard()
	if cfg.Strict {
		all = append(all, checks.Strict()...)
	}

	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, c := range all {
			fmt.Fprintf(cmd.OutOrStdout(), "%-36s %s\n", c.Name, c.Description)
		}
		return nil
	}

	selected, unknown := checks.Filter(all, cfg.Skip)
	if len(unknown) > 0 {
		s.log.LogWarn(fmt.Sprintf("ignoring unknown check names: %s", strings.Join(unknown, ", ")))
	}

	s.log.LogDebug(fmt.Sprintf("searching %s", s.root))
	doc, err := locator.New(cfg.Locator, s.log).Locate(s.root)
	if err != nil {
		return fmt.Errorf("failed to locate README: %w", err)
	}
	docPath := ""
	if doc == nil {
		s.log.LogError("could not locate environment README with expected markers")
		s.notFoundWarning().Display(cmd.ErrOrStderr(), colorOutput(cmd.ErrOrStderr()))
	} else {
		docPath = doc.Path
		s.log.LogInfo(fmt.Sprintf("checking %s", doc.Path))
	}

	results, err := checks.NewRunner(selected, cfg.Parallel, s.log).Run(cmd.Context(), doc)
	if err != nil {
		return fmt.Errorf("check run interrupted: %w", err)
	}

	rep := report.New(docPath, results)
	out := cmd.OutOrStdout()
	if err := report.Write(cmd.Context(), rep, cfg.Format, cfg.Output, out, colorOutput(out)); err != nil {
		return err
	}
	if cfg.Output != "" {
		s.log.LogInfo(fmt.Sprintf("report written to %s", cfg.Output))
	}

	return failedChecks(rep)
}
