package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/hyperpolymath/aletheia/internal/contract"
	"github.com/hyperpolymath/aletheia/schema"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/term"
)

const (
	defaultRuleWidth = 46
	maxRuleWidth     = 80
)

// ruleWidth sizes the horizontal rules to the terminal, capped so wide
// terminals don't get a screen-spanning banner. The default covers
// non-terminal output such as files and CI logs.
func ruleWidth() int {
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return defaultRuleWidth
	}
	return min(detectedWidth, maxRuleWidth)
}

// writeHumanReport writes the grouped category listing, security warnings,
// and the final verdict. The verbose variant adds warning paths, a version
// line, a per-category summary table, and exit code explanations.
func writeHumanReport(w io.Writer, report *schema.ComplianceReport, version string, verbose bool) error {
	rule := strings.Repeat("=", ruleWidth())

	fmt.Fprintln(w, "Aletheia - RSR Compliance Report")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Repository: %s\n", report.RepositoryPath)
	fmt.Fprintf(w, "Verified:   %s\n", report.VerifiedAt.Format(time.RFC3339))
	if verbose {
		fmt.Fprintf(w, "Version:    %s\n", version)
	}

	var current schema.Category
	for _, check := range report.Checks {
		if check.Category != current {
			fmt.Fprintf(w, "\n%s\n", contract.HeaderColor.Sprint(string(check.Category)))
			current = check.Category
		}
		fmt.Fprintf(w, "  %s %s [%s]\n", contract.StatusMark(check.Passed), check.Item, check.RequiredLevel.DisplayName())
	}

	if len(report.Warnings) > 0 {
		fmt.Fprintf(w, "\n%s\n", contract.HeaderColor.Sprintf("Security Warnings (%d total)", len(report.Warnings)))
		for _, warning := range report.Warnings {
			fmt.Fprintf(w, "  %s %s\n", contract.WarningTag(warning.Level), warning.Message)
			if verbose && warning.Path != "" {
				fmt.Fprintf(w, "      Path: %s\n", warning.Path)
			}
		}
	}

	if verbose {
		fmt.Fprintln(w)
		if err := writeCategorySummary(w, report); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Score: %d/%d checks passed (%.1f%%)\n", report.PassedCount(), report.TotalCount(), report.Percentage())

	writeVerdict(w, report, verbose)
	return nil
}

// writeCategorySummary renders a compact per-category pass table.
func writeCategorySummary(w io.Writer, report *schema.ComplianceReport) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Passed", "Total"})

	groups := report.ChecksByCategory()
	var data [][]string
	for _, category := range categoryOrder(report) {
		checks := groups[category]
		passed := 0
		for _, c := range checks {
			if c.Passed {
				passed++
			}
		}
		data = append(data, []string{string(category), fmt.Sprint(passed), fmt.Sprint(len(checks))})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// categoryOrder returns the distinct categories in evaluation order.
func categoryOrder(report *schema.ComplianceReport) []schema.Category {
	var order []schema.Category
	seen := make(map[schema.Category]bool)
	for _, c := range report.Checks {
		if !seen[c.Category] {
			seen[c.Category] = true
			order = append(order, c.Category)
		}
	}
	return order
}

// writeVerdict writes the compliance verdict and, in verbose mode, the exit
// code each state maps to.
func writeVerdict(w io.Writer, report *schema.ComplianceReport, verbose bool) {
	critical := report.HasCriticalWarnings()
	bronze := report.BronzeCompliance()

	if critical {
		fmt.Fprintln(w, contract.CriticalColor.Sprint("CRITICAL: security warnings detected - review required"))
	}

	switch {
	case bronze && !critical:
		fmt.Fprintln(w, contract.PassColor.Sprint("Bronze-level RSR compliance: ACHIEVED"))
		if verbose {
			fmt.Fprintf(w, "   Exit code: %d (success)\n", schema.ExitSuccess)
		}
	case bronze && critical:
		fmt.Fprintln(w, contract.WarnColor.Sprint("Bronze-level RSR compliance: ACHIEVED (with warnings)"))
		if verbose {
			fmt.Fprintf(w, "   Exit code: %d (security warning)\n", schema.ExitSecurityWarning)
		}
	default:
		fmt.Fprintln(w, contract.FailColor.Sprint("Bronze-level RSR compliance: NOT MET"))
		if verbose {
			fmt.Fprintf(w, "   Exit code: %d (compliance failed)\n", schema.ExitComplianceFailed)
		}
	}
}

// writeQuietReport prints the one-line pass/fail token.
func writeQuietReport(w io.Writer, report *schema.ComplianceReport) error {
	switch {
	case report.HasCriticalWarnings():
		fmt.Fprintln(w, "FAIL (security)")
	case report.BronzeCompliance():
		fmt.Fprintln(w, "PASS")
	default:
		fmt.Fprintln(w, "FAIL")
	}
	return nil
}
