// Package cibot emits platform-native output for CI/CD environments and
// generates pipeline configurations.
package cibot

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hyperpolymath/aletheia/schema"
)

// DetectPlatform identifies the current CI/CD platform from environment
// variables.
func DetectPlatform() schema.CIPlatform {
	switch {
	case os.Getenv("GITHUB_ACTIONS") != "":
		return schema.GitHubActionsPlatform
	case os.Getenv("GITLAB_CI") != "":
		return schema.GitLabCIPlatform
	case os.Getenv("CIRCLECI") != "":
		return schema.CircleCIPlatform
	case os.Getenv("TRAVIS") != "":
		return schema.TravisPlatform
	case os.Getenv("JENKINS_URL") != "":
		return schema.JenkinsPlatform
	default:
		return schema.UnknownPlatform
	}
}

// PlatformName returns a human-readable name for a platform.
func PlatformName(platform schema.CIPlatform) string {
	switch platform {
	case schema.GitHubActionsPlatform:
		return "GitHub Actions"
	case schema.GitLabCIPlatform:
		return "GitLab CI"
	case schema.CircleCIPlatform:
		return "CircleCI"
	case schema.TravisPlatform:
		return "Travis CI"
	case schema.JenkinsPlatform:
		return "Jenkins"
	default:
		return "Unknown"
	}
}

// EmitReport writes the report in the detected platform's native structured
// format. Unknown platforms get the portable dotenv lines only.
func EmitReport(w io.Writer, report *schema.ComplianceReport, platform schema.CIPlatform) {
	switch platform {
	case schema.GitHubActionsPlatform:
		emitGitHubReport(w, report)
	case schema.GitLabCIPlatform:
		emitGitLabReport(w, report)
	default:
		emitDotenv(w, report)
	}
}

// emitDotenv writes the portable key=value summary consumed by dotenv-style
// artifact collectors.
func emitDotenv(w io.Writer, report *schema.ComplianceReport) {
	fmt.Fprintf(w, "ALETHEIA_PASSED=%d\n", report.PassedCount())
	fmt.Fprintf(w, "ALETHEIA_TOTAL=%d\n", report.TotalCount())
	fmt.Fprintf(w, "ALETHEIA_PERCENTAGE=%.1f\n", report.Percentage())
	fmt.Fprintf(w, "ALETHEIA_BRONZE_COMPLIANT=%t\n", report.BronzeCompliance())
	fmt.Fprintf(w, "ALETHEIA_HAS_WARNINGS=%t\n", report.HasCriticalWarnings())
}

// emitGitHubReport sets step outputs, emits annotations for failures and
// warnings, and appends a markdown job summary.
func emitGitHubReport(w io.Writer, report *schema.ComplianceReport) {
	setGitHubOutput(w, "passed", fmt.Sprint(report.PassedCount()))
	setGitHubOutput(w, "total", fmt.Sprint(report.TotalCount()))
	setGitHubOutput(w, "percentage", fmt.Sprintf("%.1f", report.Percentage()))
	setGitHubOutput(w, "bronze_compliant", fmt.Sprint(report.BronzeCompliance()))
	setGitHubOutput(w, "has_warnings", fmt.Sprint(report.HasCriticalWarnings()))

	for _, check := range report.Checks {
		if !check.Passed {
			fmt.Fprintf(w, "::warning::RSR check failed: %s - %s\n", check.Category, check.Item)
		}
	}

	for _, warning := range report.Warnings {
		cmd := "warning"
		if warning.Level == schema.CriticalLevel {
			cmd = "error"
		}
		if warning.Path != "" {
			fmt.Fprintf(w, "::%s file=%s::%s\n", cmd, warning.Path, warning.Message)
		} else {
			fmt.Fprintf(w, "::%s::%s\n", cmd, warning.Message)
		}
	}

	appendGitHubSummary(GitHubSummary(report))
}

// setGitHubOutput appends a step output to the GITHUB_OUTPUT file, falling
// back to the deprecated set-output command when the file is not available.
func setGitHubOutput(w io.Writer, name, value string) {
	if outputFile := os.Getenv("GITHUB_OUTPUT"); outputFile != "" {
		file, err := os.OpenFile(outputFile, os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			defer func() { _ = file.Close() }()
			_, _ = fmt.Fprintf(file, "%s=%s\n", name, value)
			return
		}
	}
	fmt.Fprintf(w, "::set-output name=%s::%s\n", name, value)
}

// appendGitHubSummary appends markdown to the job summary file, if any.
// Best effort: summaries are decorative and never fail the run.
func appendGitHubSummary(markdown string) {
	summaryFile := os.Getenv("GITHUB_STEP_SUMMARY")
	if summaryFile == "" {
		return
	}
	file, err := os.OpenFile(summaryFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer func() { _ = file.Close() }()
	_, _ = fmt.Fprintln(file, markdown)
}

// GitHubSummary renders the markdown job summary for a report.
func GitHubSummary(report *schema.ComplianceReport) string {
	var md strings.Builder
	md.WriteString("## Aletheia RSR Compliance Report\n\n")

	if report.BronzeCompliance() && !report.HasCriticalWarnings() {
		md.WriteString("**Bronze-level RSR compliance: ACHIEVED**\n\n")
	} else {
		md.WriteString("**Bronze-level RSR compliance: NOT MET**\n\n")
	}

	md.WriteString(fmt.Sprintf("**Score**: %d/%d checks passed (%.1f%%)\n\n",
		report.PassedCount(), report.TotalCount(), report.Percentage()))

	md.WriteString("### Checks\n\n")
	md.WriteString("| Category | Item | Status |\n")
	md.WriteString("|----------|------|--------|\n")
	for _, check := range report.Checks {
		status := "FAIL"
		if check.Passed {
			status = "PASS"
		}
		md.WriteString(fmt.Sprintf("| %s | %s | %s |\n", check.Category, check.Item, status))
	}

	if len(report.Warnings) > 0 {
		md.WriteString("\n### Security Warnings\n\n")
		for _, warning := range report.Warnings {
			md.WriteString(fmt.Sprintf("- **%s**: %s\n", warning.Level, warning.Message))
		}
	}

	return md.String()
}

// emitGitLabReport writes dotenv lines plus a collapsible section with
// ANSI-colored per-check results.
func emitGitLabReport(w io.Writer, report *schema.ComplianceReport) {
	emitDotenv(w, report)

	now := time.Now().Unix()
	fmt.Fprintf(w, "\nsection_start:%d:aletheia_report[collapsed=false]\r\x1b[0K\x1b[36mAletheia Report\x1b[0m\n", now)

	for _, check := range report.Checks {
		mark, ansi := "x", "31"
		if check.Passed {
			mark, ansi = "ok", "32"
		}
		fmt.Fprintf(w, "\x1b[%sm[%s]\x1b[0m %s - %s\n", ansi, mark, check.Category, check.Item)
	}

	fmt.Fprintf(w, "section_end:%d:aletheia_report\r\x1b[0K\n", now)
}
