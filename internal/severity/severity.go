// Package severity provides severity level constants for issues reported by
// the converter.
//
//   - SeverityInfo: a documented simplification was applied
//   - SeverityWarning: a lossy fallback was applied
//   - SeverityError: the output is known to be structurally wrong
//   - SeverityCritical: part of the input could not be represented at all
//
// The numeric values do not follow severity order; use Rank to compare.
package severity

import "strings"

// Severity indicates the severity level of a conversion issue.
type Severity int

const (
	// SeverityError indicates the produced document is known to be invalid.
	SeverityError Severity = iota

	// SeverityWarning indicates a lossy fallback, such as a pattern kept only
	// as an extension or an open-ended map enumerated up to a cap.
	SeverityWarning

	// SeverityInfo indicates a documented simplification or a dropped member
	// that had nowhere to go.
	SeverityInfo

	// SeverityCritical indicates input that could not be represented at all.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Rank orders severities from least (0) to most (3) severe. Unknown values rank -1.
func (s Severity) Rank() int {
	switch s {
	case SeverityInfo:
		return 0
	case SeverityWarning:
		return 1
	case SeverityError:
		return 2
	case SeverityCritical:
		return 3
	default:
		return -1
	}
}

// AtLeast reports whether s is as severe as threshold or more.
func (s Severity) AtLeast(threshold Severity) bool {
	return s.Rank() >= threshold.Rank()
}

// Parse converts a level name to a Severity.
func Parse(name string) (Severity, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "info":
		return SeverityInfo, true
	case "warning", "warn":
		return SeverityWarning, true
	case "error":
		return SeverityError, true
	case "critical":
		return SeverityCritical, true
	default:
		return SeverityInfo, false
	}
}
