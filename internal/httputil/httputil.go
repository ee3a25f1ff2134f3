// Package httputil provides HTTP-related constants and status code helpers.
package httputil

import (
	"strconv"
	"strings"
)

// HTTP Status Code Constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code
	StatusOK         = 200
)

// HTTP Method Constants
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
	MethodTrace   = "trace"
)

// Methods lists the methods a path item can carry, in output order.
var Methods = []string{MethodGet, MethodPut, MethodPost, MethodDelete, MethodOptions, MethodHead, MethodPatch, MethodTrace}

// Media types produced and consumed by generated documents.
const (
	MediaTypeJSON = "application/json"
	MediaTypeXML  = "text/xml"
)

// ValidateStatusCode checks if a status code string is a numeric code in the
// 100-599 range.
func ValidateStatusCode(code string) bool {
	if len(code) != StatusCodeLength {
		return false
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= MinStatusCode && n <= MaxStatusCode
}

// IsSuccessStatus reports whether code is a 2xx status code.
func IsSuccessStatus(code string) bool {
	return ValidateStatusCode(code) && strings.HasPrefix(code, "2")
}

// NormalizeMethod lower-cases an HTTP method.
func NormalizeMethod(method string) string {
	return strings.ToLower(strings.TrimSpace(method))
}
