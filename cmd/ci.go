package cmd

import (
	"fmt"
	"os"

	"github.com/hyperpolymath/aletheia/core"
	"github.com/hyperpolymath/aletheia/internal/cibot"
	"github.com/spf13/cobra"
)

// ciCmd runs verification with platform-native CI output.
var ciCmd = &cobra.Command{
	Use:   "ci [repo-path]",
	Short: "Run the compliance check with CI platform-native output",
	Long: `Detect the current CI platform from the environment and emit the report
in its native structured format: step outputs, annotations, and a job
summary on GitHub Actions; dotenv lines and collapsible sections on
GitLab CI; portable dotenv lines everywhere else.

Exit codes match the check command, so the job fails when compliance
fails.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		platform := cibot.DetectPlatform()
		_, _ = fmt.Fprintf(os.Stderr, "Detected CI platform: %s\n", cibot.PlatformName(platform))

		report := core.VerifyRepository(cfg.RepoPath)
		cibot.EmitReport(os.Stdout, report, platform)

		os.Exit(exitCodeForReport(report, cfg))
	},
}
