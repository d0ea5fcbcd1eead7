package outwriter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/hyperpolymath/aletheia/schema"
)

// writeJSONReport serializes the report into its machine-readable shape.
func writeJSONReport(w io.Writer, report *schema.ComplianceReport, version string) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(schema.NewJSONReport(report, version)); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
