package schema

// ToolName is the canonical tool identifier used in machine-readable output.
const ToolName = "aletheia"

// Custom string types for type safety.
type (
	// Level represents an RSR compliance tier.
	Level string

	// WarningLevel represents the severity of a security warning.
	WarningLevel string

	// OutputMode represents the format of the output.
	OutputMode string

	// Verbosity represents how much detail the human renderer emits.
	Verbosity string

	// Category represents a check grouping label.
	Category string

	// CIPlatform represents a detected CI/CD platform.
	CIPlatform string
)

// All compliance tiers. Only Bronze has checks today; the higher tiers keep
// the tier-tagged check mechanism open without fabricating requirements.
const (
	LevelBronze   Level = "bronze"
	LevelSilver   Level = "silver"
	LevelGold     Level = "gold"
	LevelPlatinum Level = "platinum"
)

// Levels lists all tiers from lowest to highest.
var Levels = []Level{LevelBronze, LevelSilver, LevelGold, LevelPlatinum}

// DisplayName returns the capitalized tier name used in reports and badges.
func (l Level) DisplayName() string {
	switch l {
	case LevelBronze:
		return "Bronze"
	case LevelSilver:
		return "Silver"
	case LevelGold:
		return "Gold"
	case LevelPlatinum:
		return "Platinum"
	default:
		return "Unknown"
	}
}

// BadgeColor returns the shields.io hex color for the tier badge.
func (l Level) BadgeColor() string {
	switch l {
	case LevelBronze:
		return "cd7f32"
	case LevelSilver:
		return "c0c0c0"
	case LevelGold:
		return "ffd700"
	case LevelPlatinum:
		return "e5e4e2"
	default:
		return "lightgrey"
	}
}

// All warning severities supported.
const (
	InfoLevel     WarningLevel = "info"     // benign anomaly (e.g. in-bounds symlink)
	WarnLevel     WarningLevel = "warning"  // reserved
	CriticalLevel WarningLevel = "critical" // symlink escapes the repository root
)

// All output modes supported.
const (
	HumanOut OutputMode = "human" // default
	JSONOut  OutputMode = "json"
)

// All verbosity levels supported.
const (
	QuietVerbosity   Verbosity = "quiet"
	NormalVerbosity  Verbosity = "normal" // default
	VerboseVerbosity Verbosity = "verbose"
)

// Check categories in evaluation order.
const (
	CategoryDocumentation   Category = "Documentation"
	CategoryWellKnown       Category = "Well-Known"
	CategoryBuildSystem     Category = "Build System"
	CategorySourceStructure Category = "Source Structure"
)

// All CI platforms recognized by the bot integration.
const (
	GitHubActionsPlatform CIPlatform = "github"
	GitLabCIPlatform      CIPlatform = "gitlab"
	CircleCIPlatform      CIPlatform = "circle"
	TravisPlatform        CIPlatform = "travis"
	JenkinsPlatform       CIPlatform = "jenkins"
	UnknownPlatform       CIPlatform = "unknown"
)

// Exit codes surfaced by the CLI based on report state.
const (
	ExitSuccess          = 0 // compliance achieved, no critical warnings
	ExitComplianceFailed = 1 // compliance not met
	ExitSecurityWarning  = 2 // critical security warning present
	ExitInvalidPath      = 3 // repository path missing or not a directory
	ExitInvalidArgs      = 4 // invalid arguments or flag values
)
