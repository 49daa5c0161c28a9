package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/docguard/internal/locator"
	"github.com/harrison/docguard/internal/markdown"
)

// ErrNotFound is returned when no README matches the fingerprint.
var ErrNotFound = errors.New("could not locate environment README with expected markers")

// NewLocateCommand creates the locate command
func NewLocateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the path of the README that check would use",
		Long: `Run only the discovery pipeline (candidate files, markdown scan, bounded
scan) and print the located path. With --outline, also print the level-2 and
level-3 headings the section checks match against.

Exit code: 0 if found, 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			doc, err := locator.New(s.cfg.Locator, s.log).Locate(s.root)
			if err != nil {
				return fmt.Errorf("failed to locate README: %w", err)
			}
			if doc == nil {
				s.notFoundWarning().Display(cmd.ErrOrStderr(), colorOutput(cmd.ErrOrStderr()))
				return ErrNotFound
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, doc.Path)
			if outline, _ := cmd.Flags().GetBool("outline"); outline {
				for _, h := range markdown.Headings(doc.Text) {
					fmt.Fprintf(out, "%5d  %s\n", h.Line, h)
				}
			}
			return nil
		},
	}
	cmd.Flags().Bool("outline", false, "Also print the document's level-2 and level-3 headings")
	return cmd
}
