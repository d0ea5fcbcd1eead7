package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperpolymath/aletheia/internal/cibot"
	"github.com/hyperpolymath/aletheia/internal/contract"
	"github.com/hyperpolymath/aletheia/schema"
	"github.com/spf13/cobra"
)

// pipelineCmd groups the CI pipeline configuration subcommands.
var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Generate and validate RSR compliance CI pipelines",
	Long: `Manage CI pipeline configurations that run the RSR compliance check on
every push. Supports GitHub Actions, GitLab CI, CircleCI, and Jenkins.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// pipelineGenerateCmd renders a pipeline config for one platform.
var pipelineGenerateCmd = &cobra.Command{
	Use:   "generate <platform>",
	Short: "Generate a compliance pipeline config for a CI platform",
	Long: `Render a ready-to-commit pipeline configuration that installs aletheia
and runs the compliance check.

Platforms: github, gitlab, circle, jenkins

Examples:
  # Print a GitHub Actions workflow to stdout
  aletheia pipeline generate github

  # Write the GitLab config to its conventional location
  aletheia pipeline generate gitlab -o .gitlab-ci.yml

  # Tag the config with a project name and target level
  aletheia pipeline generate github -n myproject -l bronze`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		// The positional argument is the platform, not a repository path.
		return sharedSetup(rootCtx, cmd, nil)
	},
	Run: func(_ *cobra.Command, args []string) {
		platform, ok := cibot.ParsePlatform(args[0])
		if !ok {
			_, _ = fmt.Fprintf(os.Stderr, "Unknown platform: %s (use github, gitlab, circle, or jenkins)\n", args[0])
			os.Exit(schema.ExitInvalidArgs)
		}

		content := cibot.GeneratePipeline(cibot.PipelineOptions{
			Platform:    platform,
			Level:       cfg.TargetLevel,
			ProjectName: cfg.ProjectName,
		})

		if cfg.PipelineOutput == "" {
			fmt.Print(content)
			return
		}
		if err := writePipelineFile(cfg.PipelineOutput, content, cfg.Force); err != nil {
			contract.LogFatal("Error writing pipeline config", err)
		}
		_, _ = fmt.Fprintf(os.Stderr, "Pipeline config written to %s\n", cfg.PipelineOutput)
	},
}

// pipelineValidateCmd checks existing pipeline configs in a repository.
var pipelineValidateCmd = &cobra.Command{
	Use:   "validate [repo-path]",
	Short: "Validate existing compliance pipeline configs",
	Long: `Look for pipeline configurations at their conventional locations and
check that they parse, have the expected structure, and invoke aletheia.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		result := cibot.ValidatePipeline(cfg.RepoPath)

		for _, msg := range result.Errors {
			fmt.Printf("%s %s\n", contract.FailColor.Sprint("[ERROR]"), msg)
		}
		for _, msg := range result.Warnings {
			fmt.Printf("%s %s\n", contract.WarnColor.Sprint("[WARN]"), msg)
		}

		if result.Valid {
			fmt.Println(contract.PassColor.Sprint("Pipeline configuration is valid"))
			return
		}
		os.Exit(schema.ExitComplianceFailed)
	},
}

// pipelineListCmd prints supported platforms and their config locations.
var pipelineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported CI platforms",
	Run: func(_ *cobra.Command, _ []string) {
		platforms := []struct {
			arg      string
			platform schema.CIPlatform
		}{
			{"github", schema.GitHubActionsPlatform},
			{"gitlab", schema.GitLabCIPlatform},
			{"circle", schema.CircleCIPlatform},
			{"jenkins", schema.JenkinsPlatform},
		}

		fmt.Println("Supported CI platforms:")
		for _, p := range platforms {
			fmt.Printf("  %-10s %-16s %s\n", p.arg, cibot.PlatformName(p.platform), cibot.ConfigPath(p.platform))
		}
	},
}

// writePipelineFile writes content to path, creating parent directories.
// Existing files are preserved unless force is set.
func writePipelineFile(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cannot create directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
