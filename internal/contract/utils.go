package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/hyperpolymath/aletheia/schema"
)

// Color variables for console output.
var (
	PassColor     = color.New(color.FgGreen)             // passing checks
	FailColor     = color.New(color.FgRed)               // failing checks
	InfoColor     = color.New(color.FgCyan)              // informational warnings
	WarnColor     = color.New(color.FgYellow)            // reserved warning level
	CriticalColor = color.New(color.FgRed, color.Bold)   // escaping symlinks
	HeaderColor   = color.New(color.FgWhite, color.Bold) // section headers
)

// StatusMark returns the colored pass/fail mark for a check.
func StatusMark(passed bool) string {
	if passed {
		return PassColor.Sprint("[PASS]")
	}
	return FailColor.Sprint("[FAIL]")
}

// WarningTag returns the colored severity tag for a security warning.
func WarningTag(level schema.WarningLevel) string {
	switch level {
	case schema.CriticalLevel:
		return CriticalColor.Sprint("[CRITICAL]")
	case schema.WarnLevel:
		return WarnColor.Sprint("[WARN]")
	default:
		return InfoColor.Sprint("[INFO]")
	}
}

// SelectOutputFile returns the appropriate file handle for output based on
// the provided file path. An empty path means stdout.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Warning %s: %v\n", msg, err)
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "Warning %s\n", msg)
}
