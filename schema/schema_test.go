package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// reportWith builds a report containing the given checks.
func reportWith(checks ...CheckResult) *ComplianceReport {
	report := NewComplianceReport("/tmp/repo")
	report.Checks = checks
	return report
}

func bronze(item string, passed bool) CheckResult {
	return CheckResult{Category: CategoryDocumentation, Item: item, Passed: passed, RequiredLevel: LevelBronze}
}

// TestReportCounts tests the derived score queries.
func TestReportCounts(t *testing.T) {
	report := reportWith(bronze("a", true), bronze("b", false), bronze("c", true))

	assert.Equal(t, 2, report.PassedCount())
	assert.Equal(t, 3, report.TotalCount())
	assert.InDelta(t, 66.7, report.Percentage(), 0.01)
}

// TestPercentageEmptyReport tests the zero-division guard.
func TestPercentageEmptyReport(t *testing.T) {
	report := NewComplianceReport("/tmp/repo")
	assert.Equal(t, 0.0, report.Percentage())
}

// TestLevelCompliance tests per-tier compliance including the vacuous case.
func TestLevelCompliance(t *testing.T) {
	tests := []struct {
		name   string
		checks []CheckResult
		level  Level
		want   bool
	}{
		{
			name:   "all passed",
			checks: []CheckResult{bronze("a", true), bronze("b", true)},
			level:  LevelBronze,
			want:   true,
		},
		{
			name:   "one failed",
			checks: []CheckResult{bronze("a", true), bronze("b", false)},
			level:  LevelBronze,
			want:   false,
		},
		{
			name:   "no checks for tier is vacuously true",
			checks: []CheckResult{bronze("a", false)},
			level:  LevelSilver,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := reportWith(tt.checks...)
			assert.Equal(t, tt.want, report.LevelCompliance(tt.level))
		})
	}
}

// TestHighestLevel tests that achievement requires populated tiers and the
// absence of critical warnings.
func TestHighestLevel(t *testing.T) {
	t.Run("bronze achieved", func(t *testing.T) {
		report := reportWith(bronze("a", true))
		level, achieved := report.HighestLevel()
		assert.True(t, achieved)
		assert.Equal(t, LevelBronze, level)
	})

	t.Run("bronze unmet", func(t *testing.T) {
		report := reportWith(bronze("a", false))
		_, achieved := report.HighestLevel()
		assert.False(t, achieved)
	})

	t.Run("empty silver tier does not count", func(t *testing.T) {
		report := reportWith(bronze("a", true))
		level, achieved := report.HighestLevel()
		assert.True(t, achieved)
		assert.Equal(t, LevelBronze, level)
	})

	t.Run("populated silver tier counts", func(t *testing.T) {
		report := reportWith(
			bronze("a", true),
			CheckResult{Category: CategoryDocumentation, Item: "s", Passed: true, RequiredLevel: LevelSilver},
		)
		level, achieved := report.HighestLevel()
		assert.True(t, achieved)
		assert.Equal(t, LevelSilver, level)
	})

	t.Run("critical warning blocks achievement", func(t *testing.T) {
		report := reportWith(bronze("a", true))
		report.Warnings = []SecurityWarning{{Level: CriticalLevel, Message: "escape"}}
		_, achieved := report.HighestLevel()
		assert.False(t, achieved)
	})
}

// TestHasCriticalWarnings tests severity filtering.
func TestHasCriticalWarnings(t *testing.T) {
	report := NewComplianceReport("/tmp/repo")
	assert.False(t, report.HasCriticalWarnings())

	report.Warnings = append(report.Warnings, SecurityWarning{Level: InfoLevel, Message: "benign"})
	assert.False(t, report.HasCriticalWarnings())

	report.Warnings = append(report.Warnings, SecurityWarning{Level: CriticalLevel, Message: "escape"})
	assert.True(t, report.HasCriticalWarnings())
}

// TestChecksByCategory tests grouping with preserved order.
func TestChecksByCategory(t *testing.T) {
	report := reportWith(
		CheckResult{Category: CategoryDocumentation, Item: "a", RequiredLevel: LevelBronze},
		CheckResult{Category: CategoryBuildSystem, Item: "b", RequiredLevel: LevelBronze},
		CheckResult{Category: CategoryDocumentation, Item: "c", RequiredLevel: LevelBronze},
	)

	groups := report.ChecksByCategory()
	assert.Len(t, groups, 2)
	assert.Equal(t, "a", groups[CategoryDocumentation][0].Item)
	assert.Equal(t, "c", groups[CategoryDocumentation][1].Item)
	assert.Equal(t, "b", groups[CategoryBuildSystem][0].Item)
}

// TestLevelDisplayName tests tier display names.
func TestLevelDisplayName(t *testing.T) {
	assert.Equal(t, "Bronze", LevelBronze.DisplayName())
	assert.Equal(t, "Platinum", LevelPlatinum.DisplayName())
	assert.Equal(t, "Unknown", Level("mystery").DisplayName())
}

// TestLevelBadgeColor tests the shields.io tier colors.
func TestLevelBadgeColor(t *testing.T) {
	assert.Equal(t, "cd7f32", LevelBronze.BadgeColor())
	assert.Equal(t, "lightgrey", Level("mystery").BadgeColor())
}
