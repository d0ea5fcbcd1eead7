// Package outwriter has output and writer logic for compliance reports.
package outwriter

import (
	"fmt"
	"io"
	"os"

	"github.com/hyperpolymath/aletheia/internal/contract"
	"github.com/hyperpolymath/aletheia/schema"
)

// WriteReport renders a compliance report, dispatching on the configured
// output format and verbosity.
func WriteReport(report *schema.ComplianceReport, cfg *contract.Config, version string) error {
	switch cfg.Format {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONReport(w, report, version)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			switch cfg.Verbosity {
			case schema.QuietVerbosity:
				return writeQuietReport(w, report)
			case schema.VerboseVerbosity:
				return writeHumanReport(w, report, version, true)
			default:
				return writeHumanReport(w, report, version, false)
			}
		}, "Wrote report")
	}
}

// writeWithFile handles the common pattern of opening a file, writing to it,
// and cleaning up. It accepts a writer function that takes an io.Writer and
// returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "%s to %s\n", successMsg, outputFile)
	}
	return nil
}
