package cmd

import (
	"os"

	"github.com/hyperpolymath/aletheia/core"
	"github.com/hyperpolymath/aletheia/internal/contract"
	"github.com/hyperpolymath/aletheia/internal/outwriter"
	"github.com/hyperpolymath/aletheia/schema"
	"github.com/spf13/cobra"
)

// checkCmd runs the compliance verification and renders the report.
var checkCmd = &cobra.Command{
	Use:   "check [repo-path]",
	Short: "Verify a repository against the RSR Bronze compliance checks",
	Long: `Run the fixed battery of RSR checks against a repository and report
pass/fail per item, the aggregate score, and any symlink security warnings.

Exit codes:
  0    Bronze compliance achieved
  1    Bronze compliance not met
  2    Critical security warnings detected
  3    Invalid repository path
  4    Invalid arguments

Examples:
  # Check the current directory
  aletheia check

  # Check a specific repository with JSON output
  aletheia check /path/to/repo --format json

  # One-line result for scripting
  aletheia check --quiet`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		report := core.VerifyRepository(cfg.RepoPath)

		if err := outwriter.WriteReport(report, cfg, version); err != nil {
			contract.LogFatal("Error writing report", err)
		}

		os.Exit(exitCodeForReport(report, cfg))
	},
}

// exitCodeForReport maps report state to the CLI exit code channel.
// Compliance failure is a report state, not an error, so it gets its own
// code rather than an error message.
func exitCodeForReport(report *schema.ComplianceReport, cfg *contract.Config) int {
	switch {
	case report.HasCriticalWarnings():
		return schema.ExitSecurityWarning
	case cfg.FailOnWarning && len(report.Warnings) > 0:
		return schema.ExitSecurityWarning
	case !report.BronzeCompliance():
		return schema.ExitComplianceFailed
	default:
		return schema.ExitSuccess
	}
}
