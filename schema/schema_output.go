package schema

import "time"

// JSONScore is the score object in the machine-readable report.
type JSONScore struct {
	Passed     int     `json:"passed"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}

// JSONReport is the serialization shape consumed by CI tooling.
type JSONReport struct {
	Tool                string            `json:"tool"`
	Version             string            `json:"version"`
	Repository          string            `json:"repository"`
	VerifiedAt          string            `json:"verified_at"`
	Score               JSONScore         `json:"score"`
	BronzeCompliant     bool              `json:"bronze_compliant"`
	HasCriticalWarnings bool              `json:"has_critical_warnings"`
	Checks              []CheckResult     `json:"checks"`
	Warnings            []SecurityWarning `json:"warnings"`
}

// NewJSONReport flattens a compliance report into its JSON output shape.
// Slices are never nil so empty reports serialize as [] rather than null.
func NewJSONReport(r *ComplianceReport, version string) JSONReport {
	checks := r.Checks
	if checks == nil {
		checks = []CheckResult{}
	}
	warnings := r.Warnings
	if warnings == nil {
		warnings = []SecurityWarning{}
	}
	return JSONReport{
		Tool:       ToolName,
		Version:    version,
		Repository: r.RepositoryPath,
		VerifiedAt: r.VerifiedAt.Format(time.RFC3339),
		Score: JSONScore{
			Passed:     r.PassedCount(),
			Total:      r.TotalCount(),
			Percentage: r.Percentage(),
		},
		BronzeCompliant:     r.BronzeCompliance(),
		HasCriticalWarnings: r.HasCriticalWarnings(),
		Checks:              checks,
		Warnings:            warnings,
	}
}
