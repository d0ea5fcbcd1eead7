package cmd

import (
	"github.com/hyperpolymath/aletheia/core"
	"github.com/hyperpolymath/aletheia/internal/contract"
	"github.com/hyperpolymath/aletheia/internal/outwriter"
	"github.com/spf13/cobra"
)

// conformityCmd generates the markdown conformity attestation.
var conformityCmd = &cobra.Command{
	Use:   "conformity [repo-path]",
	Short: "Generate a markdown RSR conformity statement for a repository",
	Long: `Verify the repository and emit a markdown conformity statement listing
the achieved level, the per-requirement results, and the expected
self-verification output.

Examples:
  # Conformity statement for the current directory
  aletheia conformity

  # Write the statement to a file
  aletheia conformity --output-file CONFORMITY.md`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report := core.VerifyRepository(cfg.RepoPath)

		if err := writeDocument(outwriter.GenerateConformityDoc(report)); err != nil {
			contract.LogFatal("Error writing conformity statement", err)
		}
	},
}
