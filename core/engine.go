package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperpolymath/aletheia/schema"
)

// Documentation files required at the repository root. README.md is handled
// separately because README.adoc is an accepted alternative.
var requiredDocs = []string{
	"LICENSE.txt",
	"SECURITY.md",
	"CONTRIBUTING.md",
	"CODE_OF_CONDUCT.md",
	"MAINTAINERS.md",
	"CHANGELOG.md",
}

// Files required beneath the .well-known directory.
var wellKnownFiles = []string{"security.txt", "ai.txt", "humans.txt"}

// Build system files required at the repository root.
var buildFiles = []string{"justfile", "flake.nix", ".gitlab-ci.yml"}

// probe is the outcome of one security-aware existence check. Check
// functions return probes instead of mutating a shared report, so the
// engine assembles the final report from returned values.
type probe struct {
	passed   bool
	warnings []schema.SecurityWarning
}

// VerifyRepository runs the fixed battery of checks against a repository
// root and returns the fully populated report. The total check count is
// constant regardless of what the repository contains. Individual probe
// failures degrade to "does not exist"; the run itself never fails, so the
// engine is safe to point at arbitrary, possibly adversarial, trees. The
// caller is responsible for ensuring root is an existing directory.
func VerifyRepository(root string) *schema.ComplianceReport {
	report := schema.NewComplianceReport(root)

	sections := []func(string) ([]schema.CheckResult, []schema.SecurityWarning){
		checkDocumentation,
		checkWellKnown,
		checkBuildSystem,
		checkSourceStructure,
	}
	for _, section := range sections {
		checks, warnings := section(root)
		report.Checks = append(report.Checks, checks...)
		report.Warnings = append(report.Warnings, warnings...)
	}
	return report
}

// checkDocumentation verifies the required documentation files. README.md
// and README.adoc are mutually substitutable but contribute a single check;
// a positive probe on README.md short-circuits the alternative.
func checkDocumentation(root string) ([]schema.CheckResult, []schema.SecurityWarning) {
	var checks []schema.CheckResult
	var warnings []schema.SecurityWarning

	readme := probeFile(root, root, "README.md")
	warnings = append(warnings, readme.warnings...)
	hasReadme := readme.passed
	if !hasReadme {
		adoc := probeFile(root, root, "README.adoc")
		warnings = append(warnings, adoc.warnings...)
		hasReadme = adoc.passed
	}
	checks = append(checks, bronzeCheck(schema.CategoryDocumentation, "README.md", hasReadme))

	for _, doc := range requiredDocs {
		p := probeFile(root, root, doc)
		warnings = append(warnings, p.warnings...)
		checks = append(checks, bronzeCheck(schema.CategoryDocumentation, doc, p.passed))
	}
	return checks, warnings
}

// checkWellKnown verifies the .well-known directory and its required files.
// The three file checks are always appended so the total check count stays
// constant; they fail without probing when the directory itself is absent.
func checkWellKnown(root string) ([]schema.CheckResult, []schema.SecurityWarning) {
	var checks []schema.CheckResult
	var warnings []schema.SecurityWarning

	dir := probeDir(root, root, ".well-known")
	warnings = append(warnings, dir.warnings...)
	checks = append(checks, bronzeCheck(schema.CategoryWellKnown, ".well-known/ directory", dir.passed))

	wellKnownPath := filepath.Join(root, ".well-known")
	for _, name := range wellKnownFiles {
		passed := false
		if dir.passed {
			p := probeFile(root, wellKnownPath, name)
			warnings = append(warnings, p.warnings...)
			passed = p.passed
		}
		checks = append(checks, bronzeCheck(schema.CategoryWellKnown, name, passed))
	}
	return checks, warnings
}

// checkBuildSystem verifies the build system files.
func checkBuildSystem(root string) ([]schema.CheckResult, []schema.SecurityWarning) {
	var checks []schema.CheckResult
	var warnings []schema.SecurityWarning

	for _, name := range buildFiles {
		p := probeFile(root, root, name)
		warnings = append(warnings, p.warnings...)
		checks = append(checks, bronzeCheck(schema.CategoryBuildSystem, name, p.passed))
	}
	return checks, warnings
}

// checkSourceStructure verifies the source layout. Either a tests or a test
// directory satisfies the tests requirement; a positive probe on the plural
// name short-circuits the singular.
func checkSourceStructure(root string) ([]schema.CheckResult, []schema.SecurityWarning) {
	var checks []schema.CheckResult
	var warnings []schema.SecurityWarning

	src := probeDir(root, root, "src")
	warnings = append(warnings, src.warnings...)
	checks = append(checks, bronzeCheck(schema.CategorySourceStructure, "src/ directory", src.passed))

	tests := probeDir(root, root, "tests")
	warnings = append(warnings, tests.warnings...)
	hasTests := tests.passed
	if !hasTests {
		singular := probeDir(root, root, "test")
		warnings = append(warnings, singular.warnings...)
		hasTests = singular.passed
	}
	checks = append(checks, bronzeCheck(schema.CategorySourceStructure, "tests/ directory", hasTests))

	return checks, warnings
}

// probeFile checks for a regular file named name under base, flagging
// symlink anomalies against the repository root. A symlink passes when it
// resolves to a regular file, even an escaping one: existence and safety
// are separate channels, and the escape is surfaced as a critical warning.
func probeFile(root, base, name string) probe {
	path := filepath.Join(base, name)
	sec := Inspect(path, root)

	info, err := os.Stat(path)
	passed := sec.Exists && err == nil && info.Mode().IsRegular()

	return probe{passed: passed, warnings: symlinkWarnings(name, path, sec, false)}
}

// probeDir is the directory counterpart of probeFile.
func probeDir(root, base, name string) probe {
	path := filepath.Join(base, name)
	sec := Inspect(path, root)

	info, err := os.Stat(path)
	passed := sec.Exists && err == nil && info.IsDir()

	return probe{passed: passed, warnings: symlinkWarnings(name, path, sec, true)}
}

// symlinkWarnings translates a path inspection into warnings: critical when
// the link escapes the repository root, informational otherwise.
func symlinkWarnings(item, path string, sec PathCheck, dir bool) []schema.SecurityWarning {
	if !sec.IsSymlink {
		return nil
	}

	kind := "symlink"
	escaped := "Symlink"
	if dir {
		kind = "symlink directory"
		escaped = "Symlink directory"
	}

	if sec.EscapesRoot {
		return []schema.SecurityWarning{{
			Level:   schema.CriticalLevel,
			Message: fmt.Sprintf("%s %q points outside repository to %q", escaped, item, sec.Target),
			Path:    path,
		}}
	}
	return []schema.SecurityWarning{{
		Level:   schema.InfoLevel,
		Message: fmt.Sprintf("%q is a %s (within repository bounds)", item, kind),
		Path:    path,
	}}
}

// bronzeCheck builds a check result tagged with the base tier.
func bronzeCheck(category schema.Category, item string, passed bool) schema.CheckResult {
	return schema.CheckResult{
		Category:      category,
		Item:          item,
		Passed:        passed,
		RequiredLevel: schema.LevelBronze,
	}
}
