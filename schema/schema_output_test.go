package schema

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewJSONReport tests the flattening of a report into its output shape.
func TestNewJSONReport(t *testing.T) {
	report := NewComplianceReport("/tmp/repo")
	report.Checks = []CheckResult{
		{Category: CategoryDocumentation, Item: "README.md", Passed: true, RequiredLevel: LevelBronze},
		{Category: CategoryDocumentation, Item: "LICENSE.txt", Passed: false, RequiredLevel: LevelBronze},
	}
	report.Warnings = []SecurityWarning{
		{Level: CriticalLevel, Message: "escape", Path: "/tmp/repo/LICENSE.txt"},
	}

	out := NewJSONReport(report, "1.2.3")

	assert.Equal(t, ToolName, out.Tool)
	assert.Equal(t, "1.2.3", out.Version)
	assert.Equal(t, "/tmp/repo", out.Repository)
	assert.Equal(t, 1, out.Score.Passed)
	assert.Equal(t, 2, out.Score.Total)
	assert.InDelta(t, 50.0, out.Score.Percentage, 0.01)
	assert.False(t, out.BronzeCompliant)
	assert.True(t, out.HasCriticalWarnings)

	_, err := time.Parse(time.RFC3339, out.VerifiedAt)
	assert.NoError(t, err)
}

// TestNewJSONReportEmptySlices tests that empty reports serialize arrays,
// not nulls.
func TestNewJSONReportEmptySlices(t *testing.T) {
	out := NewJSONReport(NewComplianceReport("/tmp/repo"), "dev")

	data, err := json.Marshal(out)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"checks":[]`)
	assert.Contains(t, string(data), `"warnings":[]`)
}

// TestSecurityWarningPathOmitted tests that an empty path is not serialized.
func TestSecurityWarningPathOmitted(t *testing.T) {
	data, err := json.Marshal(SecurityWarning{Level: InfoLevel, Message: "note"})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "path")
}
