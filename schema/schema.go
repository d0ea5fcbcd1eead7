// Package schema has models and shared constants for all parts of aletheia.
package schema

import (
	"math"
	"time"
)

// CheckResult represents one evaluated repository requirement.
// Results are immutable once created and appended in evaluation order,
// which drives the category grouping in report output.
type CheckResult struct {
	Category      Category `json:"category"`
	Item          string   `json:"item"`
	Passed        bool     `json:"passed"`
	RequiredLevel Level    `json:"level"`
}

// SecurityWarning represents one anomaly detected during path inspection.
type SecurityWarning struct {
	Level   WarningLevel `json:"level"`
	Message string       `json:"message"`
	Path    string       `json:"path,omitempty"` // empty when undeterminable
}

// ComplianceReport is the aggregate result of one verification run.
// It is built by a single owner during the run and handed off to
// renderers afterward; all score queries are derived, not stored.
type ComplianceReport struct {
	RepositoryPath string
	VerifiedAt     time.Time
	Checks         []CheckResult
	Warnings       []SecurityWarning
}

// NewComplianceReport creates an empty report for the given repository root.
func NewComplianceReport(repoPath string) *ComplianceReport {
	return &ComplianceReport{
		RepositoryPath: repoPath,
		VerifiedAt:     time.Now().UTC(),
	}
}

// PassedCount returns the number of passing checks.
func (r *ComplianceReport) PassedCount() int {
	count := 0
	for _, c := range r.Checks {
		if c.Passed {
			count++
		}
	}
	return count
}

// TotalCount returns the total number of checks.
func (r *ComplianceReport) TotalCount() int {
	return len(r.Checks)
}

// Percentage returns the pass rate in [0,100], rounded to one decimal.
// An empty report yields 0 rather than a division fault.
func (r *ComplianceReport) Percentage() float64 {
	total := r.TotalCount()
	if total == 0 {
		return 0
	}
	pct := float64(r.PassedCount()) / float64(total) * 100
	return math.Round(pct*10) / 10
}

// LevelCompliance reports whether every check tagged with the given tier
// passed. Tiers with no checks are vacuously satisfied; use HighestLevel
// to decide whether a tier counts as achieved.
func (r *ComplianceReport) LevelCompliance(level Level) bool {
	for _, c := range r.Checks {
		if c.RequiredLevel == level && !c.Passed {
			return false
		}
	}
	return true
}

// BronzeCompliance reports whether the base tier is fully satisfied.
func (r *ComplianceReport) BronzeCompliance() bool {
	return r.LevelCompliance(LevelBronze)
}

// HasCriticalWarnings reports whether any critical security warning exists.
func (r *ComplianceReport) HasCriticalWarnings() bool {
	for _, w := range r.Warnings {
		if w.Level == CriticalLevel {
			return true
		}
	}
	return false
}

// HighestLevel returns the highest tier achieved, or false when Bronze is
// unmet or critical warnings are present. A tier must have at least one
// populated check to count as achieved, so unimplemented tiers never claim
// a higher badge by vacuous satisfaction.
func (r *ComplianceReport) HighestLevel() (Level, bool) {
	if !r.BronzeCompliance() || r.HasCriticalWarnings() {
		return "", false
	}
	achieved := LevelBronze
	for _, level := range Levels[1:] {
		if r.levelPopulated(level) && r.LevelCompliance(level) {
			achieved = level
		} else {
			break
		}
	}
	return achieved, true
}

// levelPopulated reports whether any check is tagged with the given tier.
func (r *ComplianceReport) levelPopulated(level Level) bool {
	for _, c := range r.Checks {
		if c.RequiredLevel == level {
			return true
		}
	}
	return false
}

// ChecksByCategory groups checks by category, preserving evaluation order
// within each group.
func (r *ComplianceReport) ChecksByCategory() map[Category][]CheckResult {
	groups := make(map[Category][]CheckResult)
	for _, c := range r.Checks {
		groups[c.Category] = append(groups[c.Category], c)
	}
	return groups
}
