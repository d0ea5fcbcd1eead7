package cmd

import (
	"fmt"
	"os"

	"github.com/hyperpolymath/aletheia/core"
	"github.com/hyperpolymath/aletheia/internal/contract"
	"github.com/hyperpolymath/aletheia/internal/outwriter"
	"github.com/hyperpolymath/aletheia/schema"
	"github.com/spf13/cobra"
)

// badgeCmd generates the markdown badge for the achieved compliance level.
var badgeCmd = &cobra.Command{
	Use:   "badge [repo-path]",
	Short: "Generate a markdown RSR badge for a repository",
	Long: `Verify the repository and emit a shields.io markdown badge for the
highest compliance level it achieves. Fails when no level is met.

Examples:
  # Badge for the current directory
  aletheia badge

  # Append the badge to a README
  aletheia badge /path/to/repo --output-file RSR_BADGE.md`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report := core.VerifyRepository(cfg.RepoPath)

		level, achieved := report.HighestLevel()
		if !achieved {
			_, _ = fmt.Fprintln(os.Stderr, "Repository does not meet any compliance level; no badge generated")
			os.Exit(schema.ExitComplianceFailed)
		}

		if err := writeDocument(outwriter.GenerateBadge(level)); err != nil {
			contract.LogFatal("Error writing badge", err)
		}
	},
}

// writeDocument writes a generated markdown document to the configured
// output file, or stdout when none is set.
func writeDocument(doc string) error {
	file, err := contract.SelectOutputFile(cfg.OutputFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if _, err := fmt.Fprintln(file, doc); err != nil {
		return err
	}
	if file != os.Stdout {
		_, _ = fmt.Fprintf(os.Stderr, "Output written to %s\n", cfg.OutputFile)
	}
	return nil
}
