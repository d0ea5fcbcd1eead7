package outwriter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hyperpolymath/aletheia/schema"
)

// rsrStandardURL is the canonical home of the RSR standard definition.
const rsrStandardURL = "https://github.com/hyperpolymath/rhodium-standard-repositories"

// GenerateBadge returns the markdown image badge for an achieved tier.
func GenerateBadge(level schema.Level) string {
	name := level.DisplayName()
	return fmt.Sprintf(
		"[![Rhodium Standard %s](https://img.shields.io/badge/RSR-%s-%s)](%s)",
		name, name, level.BadgeColor(), rsrStandardURL,
	)
}

// GenerateConformityDoc returns a markdown attestation for the report,
// listing per-item pass/fail for the achieved tier.
func GenerateConformityDoc(report *schema.ComplianceReport) string {
	level, achieved := report.HighestLevel()
	levelStr := "Not Met"
	if achieved {
		levelStr = level.DisplayName()
	}

	var doc strings.Builder
	doc.WriteString("# RSR Conformity Statement\n\n")
	doc.WriteString(fmt.Sprintf("**Project**: %s\n", projectName(report.RepositoryPath)))
	doc.WriteString(fmt.Sprintf("**RSR Level**: %s\n", levelStr))
	doc.WriteString(fmt.Sprintf("**Standard**: [Rhodium Standard Repository](%s)\n", rsrStandardURL))
	doc.WriteString(fmt.Sprintf("**Last Verified**: %s\n\n", report.VerifiedAt.Format("2006-01-02")))

	if achieved {
		doc.WriteString(fmt.Sprintf("## %s Requirements Met\n\n", level.DisplayName()))
		doc.WriteString("| Requirement | Status |\n")
		doc.WriteString("|-------------|--------|\n")
		for _, check := range report.Checks {
			if check.RequiredLevel != level {
				continue
			}
			status := "No"
			if check.Passed {
				status = "Yes"
			}
			doc.WriteString(fmt.Sprintf("| %s | %s |\n", check.Item, status))
		}
	}

	doc.WriteString("\n## Verification\n\n")
	doc.WriteString("Run self-verification:\n")
	doc.WriteString("```bash\naletheia check .\n```\n\n")
	doc.WriteString(fmt.Sprintf(
		"Expected output: `%d/%d checks passed (%.1f%%)`\n",
		report.PassedCount(), report.TotalCount(), report.Percentage(),
	))

	return doc.String()
}

// projectName derives a display name from the repository path.
func projectName(repoPath string) string {
	name := filepath.Base(repoPath)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "Unknown"
	}
	return name
}
