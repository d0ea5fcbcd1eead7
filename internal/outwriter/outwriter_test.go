package outwriter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/hyperpolymath/aletheia/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleReport builds a small report with one failure and one warning.
func sampleReport() *schema.ComplianceReport {
	report := schema.NewComplianceReport("/tmp/repo")
	report.Checks = []schema.CheckResult{
		{Category: schema.CategoryDocumentation, Item: "README.md", Passed: true, RequiredLevel: schema.LevelBronze},
		{Category: schema.CategoryDocumentation, Item: "LICENSE.txt", Passed: false, RequiredLevel: schema.LevelBronze},
		{Category: schema.CategoryBuildSystem, Item: "justfile", Passed: true, RequiredLevel: schema.LevelBronze},
	}
	report.Warnings = []schema.SecurityWarning{
		{Level: schema.InfoLevel, Message: `"SECURITY.md" is a symlink (within repository bounds)`, Path: "/tmp/repo/SECURITY.md"},
	}
	return report
}

// passingReport builds a fully passing report.
func passingReport() *schema.ComplianceReport {
	report := schema.NewComplianceReport("/tmp/repo")
	report.Checks = []schema.CheckResult{
		{Category: schema.CategoryDocumentation, Item: "README.md", Passed: true, RequiredLevel: schema.LevelBronze},
	}
	return report
}

// TestWriteHumanReport tests the normal human rendering.
func TestWriteHumanReport(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	require.NoError(t, writeHumanReport(&buf, sampleReport(), "dev", false))
	out := buf.String()

	assert.Contains(t, out, "Aletheia - RSR Compliance Report")
	assert.Contains(t, out, "Repository: /tmp/repo")
	assert.Contains(t, out, "Documentation")
	assert.Contains(t, out, "[PASS] README.md [Bronze]")
	assert.Contains(t, out, "[FAIL] LICENSE.txt [Bronze]")
	assert.Contains(t, out, "Security Warnings (1 total)")
	assert.Contains(t, out, "Score: 2/3 checks passed (66.7%)")
	assert.Contains(t, out, "Bronze-level RSR compliance: NOT MET")
	assert.NotContains(t, out, "Version:")
	assert.NotContains(t, out, "Exit code:")
}

// TestWriteHumanReportVerbose tests the verbose additions.
func TestWriteHumanReportVerbose(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	require.NoError(t, writeHumanReport(&buf, sampleReport(), "1.2.3", true))
	out := buf.String()

	assert.Contains(t, out, "Version:    1.2.3")
	assert.Contains(t, out, "Path: /tmp/repo/SECURITY.md")
	assert.Contains(t, out, "Exit code: 1 (compliance failed)")
}

// TestWriteHumanReportAchieved tests the passing verdict.
func TestWriteHumanReportAchieved(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer

	require.NoError(t, writeHumanReport(&buf, passingReport(), "dev", false))
	assert.Contains(t, buf.String(), "Bronze-level RSR compliance: ACHIEVED")
}

// TestWriteHumanReportCritical tests the critical verdict line.
func TestWriteHumanReportCritical(t *testing.T) {
	color.NoColor = true
	report := passingReport()
	report.Warnings = []schema.SecurityWarning{
		{Level: schema.CriticalLevel, Message: "escape", Path: "/tmp/repo/x"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeHumanReport(&buf, report, "dev", false))
	out := buf.String()

	assert.Contains(t, out, "CRITICAL: security warnings detected")
	assert.Contains(t, out, "ACHIEVED (with warnings)")
}

// TestWriteQuietReport tests the one-line tokens.
func TestWriteQuietReport(t *testing.T) {
	tests := []struct {
		name   string
		report *schema.ComplianceReport
		want   string
	}{
		{name: "pass", report: passingReport(), want: "PASS\n"},
		{name: "fail", report: sampleReport(), want: "FAIL\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeQuietReport(&buf, tt.report))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	t.Run("fail security", func(t *testing.T) {
		report := passingReport()
		report.Warnings = []schema.SecurityWarning{{Level: schema.CriticalLevel, Message: "escape"}}
		var buf bytes.Buffer
		require.NoError(t, writeQuietReport(&buf, report))
		assert.Equal(t, "FAIL (security)\n", buf.String())
	})
}

// TestWriteJSONReport tests the machine-readable rendering.
func TestWriteJSONReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSONReport(&buf, sampleReport(), "1.2.3"))

	var out schema.JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.Equal(t, schema.ToolName, out.Tool)
	assert.Equal(t, "1.2.3", out.Version)
	assert.Equal(t, 2, out.Score.Passed)
	assert.Equal(t, 3, out.Score.Total)
	assert.False(t, out.BronzeCompliant)
	assert.Len(t, out.Checks, 3)
	assert.Len(t, out.Warnings, 1)
}
