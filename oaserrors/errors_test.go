package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ParseError{
			Path:    "sqs-2012-11-05.normal.json",
			Line:    42,
			Message: "invalid shapes",
			Cause:   errors.New("underlying error"),
		}
		want := "parse error in sqs-2012-11-05.normal.json at line 42: invalid shapes: underlying error"
		if msg := err.Error(); msg != want {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ParseError{}
		if err.Error() != "parse error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ParseError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("Is matches ErrParse only", func(t *testing.T) {
		err := &ParseError{Message: "test"}
		if !errors.Is(err, ErrParse) {
			t.Error("ParseError should match ErrParse")
		}
		if errors.Is(err, ErrConversion) {
			t.Error("ParseError should not match ErrConversion")
		}
	})
}

func TestUnsupportedError(t *testing.T) {
	tests := []struct {
		name string
		err  *UnsupportedError
		want string
	}{
		{"empty", &UnsupportedError{}, "unsupported service description"},
		{"protocol", &UnsupportedError{Protocol: "smithy-rpc-v2-cbor"}, `unsupported service description (protocol "smithy-rpc-v2-cbor")`},
		{"both", &UnsupportedError{Protocol: "json", Version: "1.0"}, `unsupported service description (protocol "json", version "1.0")`},
		{"version only", &UnsupportedError{Version: "3.0", Message: "bad"}, `unsupported service description (version "3.0"): bad`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrUnsupported) {
				t.Error("UnsupportedError should match ErrUnsupported")
			}
		})
	}
}

func TestRouteConflictError(t *testing.T) {
	err := &RouteConflictError{Route: "/#Action=Foo", Method: "get", Existing: "GET_Foo", Incoming: "GET_Bar"}
	if got := err.Error(); got != "route conflict at get /#Action=Foo: GET_Foo and GET_Bar" {
		t.Errorf("unexpected error message: %s", got)
	}
	if !errors.Is(err, ErrRouteConflict) || !errors.Is(err, ErrConversion) {
		t.Error("RouteConflictError should match ErrRouteConflict and ErrConversion")
	}
	if errors.Is(err, ErrParse) {
		t.Error("RouteConflictError should not match ErrParse")
	}

	dep := &RouteConflictError{Route: "/a", Method: "post", Deprecated: true}
	if got := dep.Error(); got != "multiple deprecated operations at post /a" {
		t.Errorf("unexpected error message: %s", got)
	}

	wrapped := fmt.Errorf("converter: %w", err)
	var target *RouteConflictError
	if !errors.As(wrapped, &target) || target.Incoming != "GET_Bar" {
		t.Error("errors.As should extract RouteConflictError")
	}
}

func TestConversionError(t *testing.T) {
	cause := errors.New("boom")
	err := &ConversionError{Service: "s3", Path: "paths./{Bucket}", Message: "failed", Cause: cause}
	if got := err.Error(); got != "conversion error (s3) at paths./{Bucket}: failed: boom" {
		t.Errorf("unexpected error message: %s", got)
	}
	if !errors.Is(err, ErrConversion) || !errors.Is(err, cause) {
		t.Error("ConversionError should match ErrConversion and its cause")
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Option: "MapParameterCap", Value: -1, Message: "must not be negative"}
	if got := err.Error(); got != "configuration error for MapParameterCap (value: -1): must not be negative" {
		t.Errorf("unexpected error message: %s", got)
	}
	if !errors.Is(err, ErrConfig) {
		t.Error("ConfigError should match ErrConfig")
	}
	if err.Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}
