// Package issues provides the issue type recorded for soft conversion problems.
package issues

import (
	"fmt"
	"strings"

	"github.com/erraggy/aws2openapi/internal/severity"
)

// Issue represents a single problem found during conversion.
type Issue struct {
	// Path is the dotted location in the output document (e.g., "components.schemas.Foo.pattern")
	Path string
	// Message is a human-readable description of the issue
	Message string
	// Severity indicates the severity level of the issue
	Severity severity.Severity
	// Operation is the source operation name, when the issue belongs to one
	Operation string
	// Shape is the source shape name, when the issue belongs to one
	Shape string
	// Value is the problematic value (optional)
	Value any
	// Context provides additional information about the issue (optional)
	Context string
}

// String returns a formatted string representation of the issue.
// Uses different symbols based on severity level:
// - "✗" for Error or Critical severity
// - "⚠" for Warning severity
// - "ℹ" for Info severity
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError, severity.SeverityCritical:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	case severity.SeverityInfo:
		symbol = "ℹ"
	default:
		symbol = "?"
	}

	subject := i.Path
	switch {
	case i.Operation != "":
		subject += " (operation " + i.Operation + ")"
	case i.Shape != "":
		subject += " (shape " + i.Shape + ")"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, subject, i.Message)
	if i.Context != "" {
		result += fmt.Sprintf("\n    Context: %s", i.Context)
	}
	return result
}

// FormatPath joins path segments with dots.
func FormatPath(segments ...string) string {
	return strings.Join(segments, ".")
}
