// Package cmd defines the command-line interface for aletheia.
package cmd

import (
	"github.com/hyperpolymath/aletheia/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(badgeCmd)
	rootCmd.AddCommand(conformityCmd)
	rootCmd.AddCommand(ciCmd)
	rootCmd.AddCommand(pipelineCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the pipeline subcommands to the parent pipeline command
	pipelineCmd.AddCommand(pipelineGenerateCmd)
	pipelineCmd.AddCommand(pipelineValidateCmd)
	pipelineCmd.AddCommand(pipelineListCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().StringP("format", "f", "human", "Output format: human or json")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Quiet mode: only show pass/fail result")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose mode: show all details")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored output (yes/no)")
	rootCmd.PersistentFlags().Bool("fail-on-warning", false, "Treat any security warning as a failure")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of pipelineGenerateCmd to Viper
	pipelineGenerateCmd.Flags().StringP("name", "n", "", "Project name used in generated configs")
	pipelineGenerateCmd.Flags().StringP("level", "l", "bronze", "RSR level: bronze, silver, gold, or platinum")
	pipelineGenerateCmd.Flags().StringP("pipeline-output", "o", "", "Output path (default: stdout)")
	pipelineGenerateCmd.Flags().Bool("force", false, "Overwrite existing files")
	if err := viper.BindPFlags(pipelineGenerateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding pipeline generate flags", err)
	}
}
