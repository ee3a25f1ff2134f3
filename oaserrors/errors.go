// Package oaserrors provides structured error types for aws2openapi.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish a document the converter
// refused to touch from one whose conversion aborted half way.
//
// # Error Categories
//
//   - ParseError: JSON/YAML decoding failures of service descriptions and companion tables
//   - UnsupportedError: protocol or format version outside the supported set
//   - RouteConflictError: two operations claiming the same route and verb
//   - ConversionError: any other failure while building the OpenAPI document
//   - ConfigError: Invalid configuration or input options
//
// # Usage with errors.Is
//
//	result, err := converter.ConvertWithOptions(converter.WithFilePath("sqs-2012-11-05.normal.json"))
//	if err != nil {
//	    var conflict *oaserrors.RouteConflictError
//	    if errors.As(err, &conflict) {
//	        fmt.Println(conflict.Route, conflict.Existing, conflict.Incoming)
//	    }
//	}
package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrParse indicates a parsing failure occurred.
	ErrParse = errors.New("parse error")

	// ErrUnsupported indicates the document failed the protocol/version precheck.
	ErrUnsupported = errors.New("unsupported service description")

	// ErrRouteConflict indicates two operations mapped to the same route.
	ErrRouteConflict = errors.New("route conflict")

	// ErrConversion indicates a conversion failure.
	ErrConversion = errors.New("conversion error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a service description or one of
// its companion tables.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Line is the line number where the error occurred (0 if unknown)
	Line int
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Line > 0 {
		msg += fmt.Sprintf(" at line %d", e.Line)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// UnsupportedError reports a service description rejected before conversion
// started. No partial output exists when this error is returned.
type UnsupportedError struct {
	// Protocol is the declared wire protocol
	Protocol string
	// Version is the declared format version (empty when absent)
	Version string
	// Message gives more detail
	Message string
}

// Error returns a human-readable error message.
func (e *UnsupportedError) Error() string {
	msg := "unsupported service description"
	if e.Protocol != "" {
		msg += fmt.Sprintf(" (protocol %q", e.Protocol)
		if e.Version != "" {
			msg += fmt.Sprintf(", version %q", e.Version)
		}
		msg += ")"
	} else if e.Version != "" {
		msg += fmt.Sprintf(" (version %q)", e.Version)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Unwrap returns nil as UnsupportedError has no underlying cause.
func (e *UnsupportedError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// RouteConflictError represents two operations attached to the same route key
// and verb where the collision could not be resolved through a shadow route.
type RouteConflictError struct {
	// Route is the route key both operations resolved to
	Route string
	// Method is the lower-case HTTP verb
	Method string
	// Existing is the operationId already attached
	Existing string
	// Incoming is the operationId being attached
	Incoming string
	// Deprecated is true when the conflict is between two deprecated operations
	Deprecated bool
}

// Error returns a human-readable error message.
func (e *RouteConflictError) Error() string {
	msg := "route conflict"
	if e.Deprecated {
		msg = "multiple deprecated operations"
	}
	if e.Method != "" || e.Route != "" {
		msg += fmt.Sprintf(" at %s %s", e.Method, e.Route)
	}
	if e.Existing != "" || e.Incoming != "" {
		msg += fmt.Sprintf(": %s and %s", e.Existing, e.Incoming)
	}
	return msg
}

// Unwrap returns nil as RouteConflictError has no underlying cause.
func (e *RouteConflictError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
// Matches ErrRouteConflict and also ErrConversion, since a conflict aborts
// the conversion.
func (e *RouteConflictError) Is(target error) bool {
	return target == ErrRouteConflict || target == ErrConversion
}

// ConversionError represents a failure while building the OpenAPI document.
type ConversionError struct {
	// Service is the service identifier being converted
	Service string
	// Path is the location in the output document where conversion failed
	Path string
	// Message describes the conversion failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	msg := "conversion error"
	if e.Service != "" {
		msg += " (" + e.Service + ")"
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
