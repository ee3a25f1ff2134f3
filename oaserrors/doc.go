// Package oaserrors provides structured error types for the aws2openapi library.
//
// Import path: github.com/erraggy/aws2openapi/oaserrors
//
// # Error Types
//
//   - [ParseError]: a service description or companion table could not be decoded
//   - [UnsupportedError]: the description failed the protocol/version precheck
//   - [RouteConflictError]: two live operations (or two deprecated ones) share a route
//   - [ConversionError]: any other conversion failure
//   - [ConfigError]: Invalid configuration or input options
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrUnsupported]: Matches any [UnsupportedError]
//   - [ErrRouteConflict]: Matches any [RouteConflictError]
//   - [ErrConversion]: Matches any [ConversionError] and any [RouteConflictError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// Extract error details with errors.As():
//
//	var conflict *oaserrors.RouteConflictError
//	if errors.As(err, &conflict) {
//	    fmt.Printf("%s %s claimed by %s and %s\n",
//	        conflict.Method, conflict.Route, conflict.Existing, conflict.Incoming)
//	}
package oaserrors
