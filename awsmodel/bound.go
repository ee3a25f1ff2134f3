package awsmodel

import (
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Bound is a min or max constraint. Service descriptions usually carry these as
// numbers, but a few string shapes quote them.
type Bound struct {
	// Number is the numeric value. For quoted bounds this is the leading
	// integer of the text.
	Number float64
	// Text is the raw text when the bound was quoted, empty otherwise.
	Text string
	// Valid is false when quoted text had no leading integer.
	Valid bool
}

// NewBound returns a numeric bound.
func NewBound(n float64) *Bound {
	return &Bound{Number: n, Valid: true}
}

// UnmarshalYAML accepts a number or numeric text.
func (b *Bound) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("awsmodel: bound at line %d must be a scalar", node.Line)
	}
	if node.Tag == "!!str" || node.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) != 0 {
		b.Text = node.Value
		n, ok := leadingInt(node.Value)
		b.Number, b.Valid = float64(n), ok
		return nil
	}
	n, err := strconv.ParseFloat(node.Value, 64)
	if err != nil {
		return fmt.Errorf("awsmodel: bound at line %d: %w", node.Line, err)
	}
	b.Number, b.Valid = n, true
	return nil
}

// Int returns the bound truncated to an integer.
func (b *Bound) Int() int64 {
	return int64(b.Number)
}

// leadingInt parses an optionally signed decimal prefix, ignoring leading
// whitespace and anything after the digits.
func leadingInt(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
